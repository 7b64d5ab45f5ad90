package event

import (
	"github.com/dshills/agsedit/internal/ags"
	"github.com/dshills/agsedit/internal/engine/buffer"
)

// BufferChanged reports a text mutation in a bound buffer.
type BufferChanged struct {
	Revision buffer.RevisionID
}

// CursorMoved reports a cursor position change, in buffer coordinates.
type CursorMoved struct {
	Line   int
	Column int
}

// CellEditRequest asks the engine to replace the content of one cell
// of the active group.
type CellEditRequest struct {
	Kind     ags.RowKind
	Row      int
	Col      int
	OldValue string
	NewValue string
}

// NavigateRequest asks the engine to move the buffer cursor to the
// line backing a grid row.
type NavigateRequest struct {
	Kind ags.RowKind
	Row  int
}

// SelectGroupRequest asks the engine to switch the active group.
type SelectGroupRequest struct {
	Group string
}

// HighlightRow instructs the view to highlight one grid row. Only the
// row is addressed; the column is left to the view's own cursor.
type HighlightRow struct {
	Kind ags.RowKind
	Row  int
}

// CursorGoto instructs the host to move the buffer cursor.
type CursorGoto struct {
	Line   int
	Column int
}
