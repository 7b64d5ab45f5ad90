package table

import (
	"strings"

	"github.com/dshills/agsedit/internal/ags"
	"github.com/dshills/agsedit/internal/engine/buffer"
	"github.com/dshills/agsedit/internal/event"
)

// rescanSlack widens the bounded re-scan window beyond the group's
// recorded data-row count, tolerating blank and malformed lines
// between rows without materializing a per-line index.
const rescanSlack = 8

// DocumentProvider supplies the current parsed document for the bound
// buffer. The provider re-parses lazily after buffer changes.
type DocumentProvider interface {
	Parsed() *ags.Document
}

// Engine synchronizes a grid view of the active group with the source
// buffer. One engine is bound to at most one buffer at a time.
type Engine struct {
	docs   DocumentProvider
	bus    *event.Bus
	buf    *buffer.Buffer
	active string
}

// NewEngine creates an engine over a document provider. Render and
// highlight instructions are published on the bus.
func NewEngine(docs DocumentProvider, bus *event.Bus) *Engine {
	return &Engine{docs: docs, bus: bus}
}

// Bind attaches the engine to a buffer. When no group is active the
// engine defaults to the group containing cursorLine, falling back to
// the first group of the document.
func (e *Engine) Bind(buf *buffer.Buffer, cursorLine int) {
	e.buf = buf

	doc := e.docs.Parsed()
	if e.active == "" || doc.Group(e.active) == nil {
		g := ags.GroupForLine(doc, cursorLine)
		if g == nil {
			g = doc.FirstGroup()
		}
		if g != nil {
			e.active = g.Name
		}
	}
	e.publishRender()
}

// ActiveGroup returns the name of the active group, empty when none.
func (e *Engine) ActiveGroup() string {
	return e.active
}

// Render builds the grid for the active group. A missing or unset
// active group yields the explicit empty grid.
func (e *Engine) Render() *Grid {
	if e.active == "" {
		return &Grid{}
	}
	g := e.docs.Parsed().Group(e.active)
	if g == nil {
		return &Grid{}
	}
	return buildGrid(g)
}

// SelectGroup switches the active group and re-renders. Selecting a
// group the document does not contain is a no-op that retains the
// prior selection. The buffer cursor does not move.
func (e *Engine) SelectGroup(name string) {
	if e.docs.Parsed().Group(name) == nil {
		return
	}
	e.active = name
	e.publishRender()
}

// SyncFromCursor resolves the group owning the cursor line, switching
// and re-rendering when it differs from the active group, and emits a
// highlight instruction for the row under the cursor. Only the row is
// addressed; the column is not part of the instruction.
func (e *Engine) SyncFromCursor(line int) {
	doc := e.docs.Parsed()
	g := ags.GroupForLine(doc, line)
	if g == nil {
		return
	}
	if g.Name != e.active {
		e.active = g.Name
		e.publishRender()
	}

	kind, _ := ags.ClassifyLine(e.buf.LineText(line))
	switch kind {
	case ags.RowKindHeading, ags.RowKindUnit, ags.RowKindType:
		e.bus.Publish(event.TopicTableHighlight, event.HighlightRow{Kind: kind, Row: 0})
	case ags.RowKindData:
		ordinal := e.dataOrdinal(g, line)
		if ordinal >= 0 {
			e.bus.Publish(event.TopicTableHighlight, event.HighlightRow{Kind: kind, Row: ordinal})
		}
	}
}

// dataOrdinal counts data-row lines from the group's first data line
// up to the given line.
func (e *Engine) dataOrdinal(g *ags.Group, line int) int {
	for i, dl := range g.DataLines {
		if dl == line {
			return i
		}
	}
	return -1
}

// EditCell replaces the content of one cell of the active group in the
// source buffer. The replacement covers exactly the quoted content of
// the addressed field, not its quote characters. A successful write is
// announced as a buffer change (invalidating the parsed document) and
// followed by a re-render. Unresolvable addresses are silent no-ops.
func (e *Engine) EditCell(req event.CellEditRequest) {
	line := e.resolveLine(req.Kind, req.Row)
	if line < 0 {
		return
	}

	// Field 0 on the physical line is the row-type keyword.
	start, end, ok := fieldSpan(e.buf.LineText(line), req.Col+1)
	if !ok {
		return
	}

	res, err := e.buf.ReplaceSpan(buffer.SpanEdit{
		Line:     line,
		StartCol: start,
		EndCol:   end,
		NewText:  req.NewValue,
	})
	if err != nil {
		return
	}

	e.bus.Publish(event.TopicBufferChanged, event.BufferChanged{Revision: res.Revision})
	e.publishRender()
}

// Navigate resolves the physical line backing a grid row and instructs
// the host to move the buffer cursor there. Unresolvable addresses are
// silent no-ops.
func (e *Engine) Navigate(req event.NavigateRequest) {
	line := e.resolveLine(req.Kind, req.Row)
	if line < 0 {
		return
	}
	e.bus.Publish(event.TopicCursorGoto, event.CursorGoto{Line: line, Column: 0})
}

// resolveLine maps (kind, row) within the active group to a physical
// line, or -1 when the address cannot be resolved.
func (e *Engine) resolveLine(kind ags.RowKind, row int) int {
	if e.buf == nil || e.active == "" {
		return -1
	}
	g := e.docs.Parsed().Group(e.active)
	if g == nil {
		return -1
	}

	switch kind {
	case ags.RowKindHeading:
		return g.HeadingLine
	case ags.RowKindData:
		if row >= 0 && row < len(g.DataLines) {
			return g.DataLines[row]
		}
		return e.rescanLine(g, kind, row)
	case ags.RowKindUnit, ags.RowKindType:
		return e.rescanLine(g, kind, 0)
	default:
		return -1
	}
}

// rescanLine scans forward from the group's declaration line,
// classifying each line by its leading keyword, looking for the
// target row. The scan is bounded by the group's recorded data-row
// count plus slack and stops early at the next group declaration, so
// an ordinal beyond the window resolves to no line at all.
func (e *Engine) rescanLine(g *ags.Group, kind ags.RowKind, ordinal int) int {
	window := g.RecordCount + rescanSlack
	dataSeen := 0

	lineCount := e.buf.LineCount()
	for line := g.StartLine + 1; line < lineCount && window > 0; line, window = line+1, window-1 {
		text := e.buf.LineText(line)
		if strings.TrimSpace(text) == "" {
			continue
		}
		lineKind, _ := ags.ClassifyLine(text)

		if lineKind == ags.RowKindDeclaration {
			return -1
		}
		if lineKind != kind {
			continue
		}
		if kind != ags.RowKindData {
			return line
		}
		if dataSeen == ordinal {
			return line
		}
		dataSeen++
	}
	return -1
}

func (e *Engine) publishRender() {
	e.bus.Publish(event.TopicTableRender, e.Render())
}

// fieldSpan locates the content span of the n-th quoted field on a
// line (0-based), excluding the quote characters. ok is false when the
// line has no such field.
func fieldSpan(line string, n int) (start, end int, ok bool) {
	pos := 0
	for i := 0; ; i++ {
		open := strings.IndexByte(line[pos:], '"')
		if open < 0 {
			return 0, 0, false
		}
		open += pos
		closing := strings.IndexByte(line[open+1:], '"')
		if closing < 0 {
			return 0, 0, false
		}
		closing += open + 1

		if i == n {
			return open + 1, closing, true
		}
		pos = closing + 1
	}
}
