package buffer

import (
	"errors"
	"strings"
	"testing"

	"golang.org/x/text/encoding/charmap"
)

func TestNewBuffer(t *testing.T) {
	b := NewBuffer()

	if !b.IsEmpty() {
		t.Error("new buffer should be empty")
	}
	if b.LineCount() != 1 {
		t.Errorf("expected 1 line, got %d", b.LineCount())
	}
}

func TestNewBufferFromString(t *testing.T) {
	text := "line1\nline2\nline3"
	b := NewBufferFromString(text)

	if b.LineCount() != 3 {
		t.Errorf("expected 3 lines, got %d", b.LineCount())
	}
	if b.LineText(0) != "line1" {
		t.Errorf("expected line1, got %q", b.LineText(0))
	}
	if b.LineText(2) != "line3" {
		t.Errorf("expected line3, got %q", b.LineText(2))
	}
	if b.Text() != text {
		t.Errorf("expected %q, got %q", text, b.Text())
	}
}

func TestLineTextOutOfRange(t *testing.T) {
	b := NewBufferFromString("only")

	if got := b.LineText(5); got != "" {
		t.Errorf("out-of-range line = %q, want empty", got)
	}
	if got := b.LineText(-1); got != "" {
		t.Errorf("negative line = %q, want empty", got)
	}
}

func TestCRLFDetection(t *testing.T) {
	b := NewBufferFromString("a\r\nb\r\nc")

	if b.LineEnding() != LineEndingCRLF {
		t.Error("CRLF content should detect CRLF line endings")
	}
	if b.LineCount() != 3 {
		t.Errorf("expected 3 lines, got %d", b.LineCount())
	}
	if b.LineText(1) != "b" {
		t.Errorf("expected b, got %q", b.LineText(1))
	}
	if b.Text() != "a\r\nb\r\nc" {
		t.Errorf("round trip = %q", b.Text())
	}
}

func TestReplaceSpan(t *testing.T) {
	b := NewBufferFromString(`"DATA","BH1","2.50"`)

	res, err := b.ReplaceSpan(SpanEdit{Line: 0, StartCol: 14, EndCol: 18, NewText: "9.99"})
	if err != nil {
		t.Fatalf("ReplaceSpan failed: %v", err)
	}
	if res.OldText != "2.50" {
		t.Errorf("old text = %q, want 2.50", res.OldText)
	}
	if got := b.LineText(0); got != `"DATA","BH1","9.99"` {
		t.Errorf("line = %q", got)
	}
}

func TestReplaceSpanRevisionChanges(t *testing.T) {
	b := NewBufferFromString("abc")
	before := b.RevisionID()

	if _, err := b.ReplaceSpan(SpanEdit{Line: 0, StartCol: 0, EndCol: 1, NewText: "x"}); err != nil {
		t.Fatalf("ReplaceSpan failed: %v", err)
	}
	if b.RevisionID() == before {
		t.Error("revision ID should change after an edit")
	}
}

func TestReplaceSpanErrors(t *testing.T) {
	b := NewBufferFromString("short")

	_, err := b.ReplaceSpan(SpanEdit{Line: 3, StartCol: 0, EndCol: 1})
	if !errors.Is(err, ErrLineOutOfRange) {
		t.Errorf("expected ErrLineOutOfRange, got %v", err)
	}

	_, err = b.ReplaceSpan(SpanEdit{Line: 0, StartCol: 2, EndCol: 1})
	if !errors.Is(err, ErrSpanInvalid) {
		t.Errorf("expected ErrSpanInvalid, got %v", err)
	}

	_, err = b.ReplaceSpan(SpanEdit{Line: 0, StartCol: 0, EndCol: 99})
	if !errors.Is(err, ErrSpanInvalid) {
		t.Errorf("expected ErrSpanInvalid, got %v", err)
	}
}

func TestLinesReturnsCopy(t *testing.T) {
	b := NewBufferFromString("a\nb")

	lines := b.Lines()
	lines[0] = "mutated"

	if b.LineText(0) != "a" {
		t.Error("mutating the returned slice must not affect the buffer")
	}
}

func TestNewBufferFromReader(t *testing.T) {
	b, err := NewBufferFromReader(strings.NewReader("x\ny"))
	if err != nil {
		t.Fatalf("NewBufferFromReader failed: %v", err)
	}
	if b.LineCount() != 2 {
		t.Errorf("expected 2 lines, got %d", b.LineCount())
	}
}

func TestNewBufferFromReaderEncoding(t *testing.T) {
	// 0xB0 is the degree sign in Windows-1252.
	raw := []byte{'5', '0', 0xB0}
	b, err := NewBufferFromReader(strings.NewReader(string(raw)), WithEncoding(charmap.Windows1252))
	if err != nil {
		t.Fatalf("NewBufferFromReader failed: %v", err)
	}
	if got := b.LineText(0); got != "50°" {
		t.Errorf("decoded line = %q, want 50°", got)
	}
}

func TestSetText(t *testing.T) {
	b := NewBufferFromString("old")
	before := b.RevisionID()

	b.SetText("new1\nnew2")

	if b.LineCount() != 2 || b.LineText(0) != "new1" {
		t.Errorf("content not replaced: %q", b.Text())
	}
	if b.RevisionID() == before {
		t.Error("revision ID should change after SetText")
	}
}
