package table

import "github.com/dshills/agsedit/internal/ags"

// Address identifies one logical cell independent of physical line
// layout. Row is 0 for the singleton heading/unit/type rows and the
// 0-based data ordinal otherwise. Col indexes the group's headings.
type Address struct {
	Kind ags.RowKind
	Row  int
	Col  int
}

// Row is one rendered grid row, tagged with the address coordinates it
// maps back to.
type Row struct {
	Kind  ags.RowKind
	Index int
	Cells []string
}

// Grid is the render payload for one group: the heading row first,
// then the unit and type rows when the group has them, then one row
// per data record.
type Grid struct {
	Group string
	Rows  []Row
}

// IsEmpty reports the explicit empty state rendered when no group is
// active (an empty document, or an unbound engine).
func (g *Grid) IsEmpty() bool {
	return g.Group == ""
}

// DataRowCount returns the number of data rows in the grid.
func (g *Grid) DataRowCount() int {
	n := 0
	for _, r := range g.Rows {
		if r.Kind == ags.RowKindData {
			n++
		}
	}
	return n
}

// buildGrid renders a group into a grid.
func buildGrid(g *ags.Group) *Grid {
	grid := &Grid{Group: g.Name}

	grid.Rows = append(grid.Rows, Row{Kind: ags.RowKindHeading, Index: 0, Cells: g.Headings})
	if len(g.Units) > 0 {
		grid.Rows = append(grid.Rows, Row{Kind: ags.RowKindUnit, Index: 0, Cells: g.Units})
	}
	if len(g.Types) > 0 {
		grid.Rows = append(grid.Rows, Row{Kind: ags.RowKindType, Index: 0, Cells: g.Types})
	}
	for i, row := range g.DataRows {
		grid.Rows = append(grid.Rows, Row{Kind: ags.RowKindData, Index: i, Cells: row})
	}

	return grid
}
