package buffer

import "fmt"

// SpanEdit describes the replacement of a byte span within one line.
// This is the only mutation shape the AGS engine issues: a cell edit
// replaces the quoted content of a single field and never crosses a
// line boundary.
type SpanEdit struct {
	Line     int    // 0-indexed line
	StartCol int    // byte offset of the span start within the line
	EndCol   int    // byte offset one past the span end
	NewText  string // replacement text
}

// String returns a human-readable representation of the edit.
func (e SpanEdit) String() string {
	return fmt.Sprintf("Replace(%d:%d-%d, %q)", e.Line, e.StartCol, e.EndCol, e.NewText)
}

// EditResult describes an applied span edit.
type EditResult struct {
	OldText  string // the text that was replaced
	NewText  string // the text now occupying the span
	Revision RevisionID
}
