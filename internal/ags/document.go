package ags

import (
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Well-known group and heading codes with designated roles.
const (
	// GroupTransmission is the transformation-metadata group. Its
	// HeadingFormatVersion column carries the file format version.
	GroupTransmission = "TRAN"
	// GroupLocation carries one row per investigation point.
	GroupLocation = "LOCA"
	// GroupGeology carries stratum descriptions with depth columns.
	GroupGeology = "GEOL"

	HeadingFormatVersion = "TRAN_AGS"
	HeadingLocationID    = "LOCA_ID"
	HeadingEasting       = "LOCA_NATE"
	HeadingNorthing      = "LOCA_NATN"
	HeadingLocationType  = "LOCA_TYPE"
	HeadingFinalDepth    = "LOCA_FDEP"
	HeadingDepthTop      = "GEOL_TOP"
	HeadingDepthBase     = "GEOL_BASE"
)

// RowKind classifies a physical line by its leading keyword.
type RowKind uint8

const (
	// RowKindNone marks a line with no recognized keyword.
	RowKindNone RowKind = iota
	// RowKindDeclaration opens a new group ("GROUP").
	RowKindDeclaration
	// RowKindHeading carries the column names ("HEADING").
	RowKindHeading
	// RowKindUnit carries the per-column units ("UNIT").
	RowKindUnit
	// RowKindType carries the per-column data types ("TYPE").
	RowKindType
	// RowKindData carries one data record ("DATA").
	RowKindData
)

// String returns the keyword for the row kind.
func (k RowKind) String() string {
	switch k {
	case RowKindDeclaration:
		return "GROUP"
	case RowKindHeading:
		return "HEADING"
	case RowKindUnit:
		return "UNIT"
	case RowKindType:
		return "TYPE"
	case RowKindData:
		return "DATA"
	default:
		return "NONE"
	}
}

// ClassifyKeyword maps a row-type keyword to its RowKind.
// Matching is case-insensitive.
func ClassifyKeyword(keyword string) RowKind {
	switch strings.ToUpper(keyword) {
	case "GROUP":
		return RowKindDeclaration
	case "HEADING":
		return RowKindHeading
	case "UNIT":
		return RowKindUnit
	case "TYPE":
		return RowKindType
	case "DATA":
		return RowKindData
	default:
		return RowKindNone
	}
}

// ClassifyLine extracts a line's fields and classifies it by its first
// field. Returns RowKindNone with nil fields for unclassifiable lines.
func ClassifyLine(line string) (RowKind, []string) {
	fields := Fields(line)
	if len(fields) == 0 {
		return RowKindNone, nil
	}
	kind := ClassifyKeyword(fields[0])
	if kind == RowKindNone {
		return RowKindNone, nil
	}
	return kind, fields
}

// Group is one named data section of the file: a declaration line,
// optional heading/unit/type rows, and zero or more data records.
//
// Within one parse, StartLine < HeadingLine (when known) < the first
// data line, and StartLine < the next group's StartLine in file order.
// Groups are contiguous, non-overlapping line ranges; GroupForLine
// relies on this.
type Group struct {
	// Name is the group code, unique within a document.
	Name string

	// StartLine is the line index of the declaration row.
	StartLine int

	// HeadingLine is the line index of the heading row, -1 if absent.
	HeadingLine int

	// Headings are the column names, excluding the row-type field.
	Headings []string

	// Units and Types align positionally with Headings. Either may be
	// shorter when the row is malformed or absent.
	Units []string
	Types []string

	// DataRows holds one record per DATA line. A record may carry
	// fewer or more fields than Headings; nothing enforces alignment.
	DataRows [][]string

	// DataLines holds the physical line index of each data row,
	// aligned with DataRows.
	DataLines []int

	// RecordCount is len(DataRows), maintained during the parse.
	RecordCount int
}

// HeadingIndex returns the index of the named column within Headings,
// or -1 if the group has no such column. Matching is case-insensitive.
func (g *Group) HeadingIndex(name string) int {
	for i, h := range g.Headings {
		if strings.EqualFold(h, name) {
			return i
		}
	}
	return -1
}

// Value returns the field of row at the named column, with ok=false
// when the column is missing or the row is too short.
func (g *Group) Value(row []string, heading string) (string, bool) {
	idx := g.HeadingIndex(heading)
	if idx < 0 || idx >= len(row) {
		return "", false
	}
	return row[idx], true
}

// Document is the parsed form of one AGS file: an insertion-ordered
// mapping from group name to Group, plus the optional format version
// captured from the transmission group.
type Document struct {
	// Groups maps group name to group, ordered by first occurrence.
	Groups *orderedmap.OrderedMap[string, *Group]

	// FormatVersion is the TRAN_AGS value, empty when absent.
	FormatVersion string
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{Groups: orderedmap.New[string, *Group]()}
}

// Group returns the named group, or nil if absent.
func (d *Document) Group(name string) *Group {
	g, ok := d.Groups.Get(name)
	if !ok {
		return nil
	}
	return g
}

// FirstGroup returns the first group in file order, or nil for an
// empty document.
func (d *Document) FirstGroup() *Group {
	pair := d.Groups.Oldest()
	if pair == nil {
		return nil
	}
	return pair.Value
}

// GroupNames returns the group names in file order.
func (d *Document) GroupNames() []string {
	names := make([]string, 0, d.Groups.Len())
	for pair := d.Groups.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}
