// Package view renders the table grid in a terminal using tcell and
// translates key input into view messages on the application bus.
//
// The view is deliberately thin: it owns presentation state only (grid
// cursor, pending edit text) and never touches the buffer or the
// parsed document directly. Everything it knows arrives as render and
// highlight instructions; everything it wants done leaves as cell-edit,
// navigate, or select-group messages.
package view

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/agsedit/internal/ags"
	"github.com/dshills/agsedit/internal/app"
	"github.com/dshills/agsedit/internal/event"
	"github.com/dshills/agsedit/internal/table"
)

// maxColumnWidth caps a rendered column so one long description cannot
// push the rest of the grid off screen.
const maxColumnWidth = 24

// View is the terminal grid view bound to one application.
type View struct {
	screen tcell.Screen
	app    *app.App

	grid   *table.Grid
	selRow int
	selCol int

	editing  bool
	editText string
}

// New creates a view over the application. The screen is not
// initialized until Run.
func New(a *app.App) (*View, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}

	v := &View{screen: screen, app: a, grid: a.Engine().Render()}

	a.Bus().Subscribe(event.TopicTableRender, func(p any) {
		v.grid = p.(*table.Grid)
		v.clampSelection()
	})
	a.Bus().Subscribe(event.TopicTableHighlight, func(p any) {
		v.applyHighlight(p.(event.HighlightRow))
	})

	return v, nil
}

// Run initializes the terminal and processes events until quit.
func (v *View) Run() error {
	if err := v.screen.Init(); err != nil {
		return err
	}
	defer v.screen.Fini()

	for {
		v.draw()
		ev := v.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			v.screen.Sync()
		case *tcell.EventKey:
			if v.editing {
				if v.handleEditKey(ev) {
					continue
				}
			} else if quit := v.handleKey(ev); quit {
				return nil
			}
		}
	}
}

// handleKey processes one key in browse mode; true means quit.
func (v *View) handleKey(ev *tcell.EventKey) bool {
	switch {
	case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q':
		return true
	case ev.Key() == tcell.KeyUp || ev.Rune() == 'k':
		v.moveSelection(-1, 0)
	case ev.Key() == tcell.KeyDown || ev.Rune() == 'j':
		v.moveSelection(1, 0)
	case ev.Key() == tcell.KeyLeft || ev.Rune() == 'h':
		v.moveSelection(0, -1)
	case ev.Key() == tcell.KeyRight || ev.Rune() == 'l':
		v.moveSelection(0, 1)
	case ev.Key() == tcell.KeyTab:
		v.cycleGroup(1)
	case ev.Key() == tcell.KeyBacktab:
		v.cycleGroup(-1)
	case ev.Key() == tcell.KeyEnter:
		v.beginEdit()
	case ev.Rune() == 'g':
		v.navigateToSelection()
	}
	return false
}

// handleEditKey processes one key while an edit is pending; true means
// the key was consumed.
func (v *View) handleEditKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape:
		v.editing = false
		v.editText = ""
	case tcell.KeyEnter:
		v.commitEdit()
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(v.editText) > 0 {
			v.editText = v.editText[:len(v.editText)-1]
		}
	default:
		if ev.Rune() != 0 {
			v.editText += string(ev.Rune())
		}
	}
	return true
}

func (v *View) moveSelection(dRow, dCol int) {
	v.selRow += dRow
	v.selCol += dCol
	v.clampSelection()
}

func (v *View) clampSelection() {
	if v.grid == nil || len(v.grid.Rows) == 0 {
		v.selRow, v.selCol = 0, 0
		return
	}
	if v.selRow < 0 {
		v.selRow = 0
	}
	if v.selRow >= len(v.grid.Rows) {
		v.selRow = len(v.grid.Rows) - 1
	}
	if v.selCol < 0 {
		v.selCol = 0
	}
	if n := len(v.grid.Rows[0].Cells); v.selCol >= n && n > 0 {
		v.selCol = n - 1
	}
}

// applyHighlight selects the grid row named by a highlight
// instruction. The instruction addresses the row only; the column
// stays wherever the view cursor left it.
func (v *View) applyHighlight(h event.HighlightRow) {
	if v.grid == nil {
		return
	}
	for i, row := range v.grid.Rows {
		if row.Kind == h.Kind && row.Index == h.Row {
			v.selRow = i
			return
		}
	}
}

func (v *View) cycleGroup(delta int) {
	names := v.app.Parsed().GroupNames()
	if len(names) == 0 {
		return
	}

	current := -1
	for i, n := range names {
		if n == v.grid.Group {
			current = i
			break
		}
	}
	next := (current + delta + len(names)) % len(names)
	v.app.Bus().Publish(event.TopicViewSelectGroup, event.SelectGroupRequest{Group: names[next]})
}

func (v *View) beginEdit() {
	row, ok := v.selectedRow()
	if !ok || v.selCol >= len(row.Cells) {
		return
	}
	v.editing = true
	v.editText = row.Cells[v.selCol]
}

func (v *View) commitEdit() {
	row, ok := v.selectedRow()
	if !ok || v.selCol >= len(row.Cells) {
		v.editing = false
		v.editText = ""
		return
	}

	v.app.Bus().Publish(event.TopicViewEdit, event.CellEditRequest{
		Kind:     row.Kind,
		Row:      row.Index,
		Col:      v.selCol,
		OldValue: row.Cells[v.selCol],
		NewValue: v.editText,
	})
	v.editing = false
	v.editText = ""
}

func (v *View) navigateToSelection() {
	row, ok := v.selectedRow()
	if !ok {
		return
	}
	v.app.Bus().Publish(event.TopicViewNavigate, event.NavigateRequest{
		Kind: row.Kind,
		Row:  row.Index,
	})
}

func (v *View) selectedRow() (table.Row, bool) {
	if v.grid == nil || v.selRow >= len(v.grid.Rows) {
		return table.Row{}, false
	}
	return v.grid.Rows[v.selRow], true
}

// Drawing

var (
	styleDefault   = tcell.StyleDefault
	styleTitle     = tcell.StyleDefault.Bold(true)
	styleHeading   = tcell.StyleDefault.Bold(true).Underline(true)
	styleMeta      = tcell.StyleDefault.Dim(true)
	styleSelected  = tcell.StyleDefault.Reverse(true)
	styleStatusBar = tcell.StyleDefault.Reverse(true).Dim(true)
)

func (v *View) draw() {
	v.screen.Clear()
	width, height := v.screen.Size()

	v.drawTitle(width)

	if v.grid == nil || v.grid.IsEmpty() {
		v.drawText(0, 2, styleMeta, "No AGS groups in this file.", width)
		v.drawStatus(width, height)
		v.screen.Show()
		return
	}

	widths := columnWidths(v.grid)
	for i, row := range v.grid.Rows {
		y := 2 + i
		if y >= height-2 {
			break
		}
		v.drawRow(y, row, i == v.selRow, widths, width)
	}

	v.drawStatus(width, height)
	v.screen.Show()
}

func (v *View) drawTitle(width int) {
	title := "agsedit"
	if v.grid != nil && !v.grid.IsEmpty() {
		desc := v.app.Dictionary().Group(v.grid.Group).Description
		if desc != "" {
			title = fmt.Sprintf("agsedit — %s: %s", v.grid.Group, desc)
		} else {
			title = fmt.Sprintf("agsedit — %s", v.grid.Group)
		}
	}
	v.drawText(0, 0, styleTitle, title, width)
}

func (v *View) drawRow(y int, row table.Row, selected bool, widths []int, screenWidth int) {
	rowStyle := styleDefault
	switch row.Kind {
	case ags.RowKindHeading:
		rowStyle = styleHeading
	case ags.RowKindUnit, ags.RowKindType:
		rowStyle = styleMeta
	}

	x := 0
	for col, cell := range row.Cells {
		if col >= len(widths) || x >= screenWidth {
			break
		}
		style := rowStyle
		if selected && col == v.selCol {
			style = styleSelected
		}
		text := pad(cell, widths[col])
		v.drawText(x, y, style, text, screenWidth-x)
		x += widths[col] + 1
	}
}

func (v *View) drawStatus(width, height int) {
	y := height - 1
	var status string

	switch {
	case v.editing:
		status = "edit: " + v.editText + "▏  (enter to apply, esc to cancel)"
	default:
		status = v.columnStatus() + "  —  q quit  tab group  enter edit  g goto source"
	}
	v.drawText(0, y, styleStatusBar, pad(status, width), width)
}

// columnStatus describes the selected column via the dictionary.
func (v *View) columnStatus() string {
	row, ok := v.selectedRow()
	if !ok {
		return ""
	}

	g := v.app.Parsed().Group(v.grid.Group)
	if g == nil || v.selCol >= len(g.Headings) {
		return fmt.Sprintf("%s row %d", row.Kind, row.Index)
	}

	code := g.Headings[v.selCol]
	entry := v.app.Dictionary().Heading(code)
	if entry.Description == "" {
		return code
	}
	if entry.Unit != "" {
		return fmt.Sprintf("%s: %s (%s)", code, entry.Description, entry.Unit)
	}
	return fmt.Sprintf("%s: %s", code, entry.Description)
}

func (v *View) drawText(x, y int, style tcell.Style, text string, maxWidth int) {
	for i, r := range []rune(text) {
		if i >= maxWidth {
			return
		}
		v.screen.SetContent(x+i, y, r, nil, style)
	}
}

// columnWidths sizes each column to its widest cell, capped.
func columnWidths(g *table.Grid) []int {
	var widths []int
	for _, row := range g.Rows {
		for col, cell := range row.Cells {
			for col >= len(widths) {
				widths = append(widths, 0)
			}
			if n := len(cell); n > widths[col] {
				widths[col] = n
			}
		}
	}
	for i := range widths {
		if widths[i] > maxColumnWidth {
			widths[i] = maxColumnWidth
		}
		if widths[i] < 4 {
			widths[i] = 4
		}
	}
	return widths
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	return s + spaces(width-len(s))
}

func spaces(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
