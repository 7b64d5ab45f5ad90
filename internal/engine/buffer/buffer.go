package buffer

import (
	"errors"
	"io"
	"strings"
	"sync"

	"golang.org/x/text/encoding"
)

// Errors returned by buffer operations.
var (
	ErrLineOutOfRange = errors.New("line out of range")
	ErrSpanInvalid    = errors.New("invalid span")
)

// LineEnding specifies the line ending style.
type LineEnding uint8

const (
	LineEndingLF   LineEnding = iota // Unix: \n
	LineEndingCRLF                   // Windows: \r\n
)

// Sequence returns the actual line ending characters.
func (le LineEnding) Sequence() string {
	if le == LineEndingCRLF {
		return "\r\n"
	}
	return "\n"
}

// Buffer is a line-addressed text buffer.
// All methods are thread-safe.
type Buffer struct {
	mu         sync.RWMutex
	lines      []string
	revisionID RevisionID
	lineEnding LineEnding
	encoding   encoding.Encoding
}

// NewBuffer creates a new empty buffer with a single empty line.
func NewBuffer(opts ...Option) *Buffer {
	b := &Buffer{
		lines:      []string{""},
		revisionID: NewRevisionID(),
		lineEnding: LineEndingLF,
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// NewBufferFromString creates a buffer with initial content.
// Line endings are normalized; the original style is detected and
// retained for serialization.
func NewBufferFromString(s string, opts ...Option) *Buffer {
	b := NewBuffer(opts...)
	b.setContent(s)
	return b
}

// NewBufferFromReader creates a buffer from an io.Reader, decoding the
// content with the configured encoding first.
func NewBufferFromReader(r io.Reader, opts ...Option) (*Buffer, error) {
	b := NewBuffer(opts...)

	// Read everything up front: decoding and CRLF normalization both
	// need to see sequences that may straddle read boundaries.
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	if b.encoding != nil {
		decoded, err := b.encoding.NewDecoder().Bytes(data)
		if err != nil {
			return nil, err
		}
		data = decoded
	}

	b.setContent(string(data))
	return b, nil
}

// setContent splits text into lines, detecting the dominant line
// ending style so Text can reproduce it.
func (b *Buffer) setContent(s string) {
	if strings.Contains(s, "\r\n") {
		b.lineEnding = LineEndingCRLF
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	b.lines = strings.Split(s, "\n")
	b.revisionID = NewRevisionID()
}

// Read Operations

// Text returns the full buffer content with the buffer's line endings.
func (b *Buffer) Text() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return strings.Join(b.lines, b.lineEnding.Sequence())
}

// LineCount returns the number of lines.
func (b *Buffer) LineCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.lines)
}

// LineText returns the text of a specific line (without newline).
// Out-of-range lines return the empty string.
func (b *Buffer) LineText(line int) string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if line < 0 || line >= len(b.lines) {
		return ""
	}
	return b.lines[line]
}

// Lines returns a copy of all lines.
// The copy is safe to hand to the parser while edits continue.
func (b *Buffer) Lines() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]string, len(b.lines))
	copy(out, b.lines)
	return out
}

// IsEmpty returns true if the buffer holds no text.
func (b *Buffer) IsEmpty() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.lines) == 1 && b.lines[0] == ""
}

// Write Operations

// ReplaceSpan replaces the byte span [StartCol, EndCol) on one line
// with new text, as a single edit.
func (b *Buffer) ReplaceSpan(edit SpanEdit) (EditResult, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if edit.Line < 0 || edit.Line >= len(b.lines) {
		return EditResult{}, ErrLineOutOfRange
	}
	line := b.lines[edit.Line]
	if edit.StartCol < 0 || edit.StartCol > edit.EndCol || edit.EndCol > len(line) {
		return EditResult{}, ErrSpanInvalid
	}

	old := line[edit.StartCol:edit.EndCol]
	b.lines[edit.Line] = line[:edit.StartCol] + edit.NewText + line[edit.EndCol:]
	b.revisionID = NewRevisionID()

	return EditResult{
		OldText:  old,
		NewText:  edit.NewText,
		Revision: b.revisionID,
	}, nil
}

// SetText replaces the entire buffer content.
func (b *Buffer) SetText(s string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.setContent(s)
}

// Buffer State

// RevisionID returns the current revision ID.
func (b *Buffer) RevisionID() RevisionID {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.revisionID
}

// LineEnding returns the buffer's line ending style.
func (b *Buffer) LineEnding() LineEnding {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.lineEnding
}
