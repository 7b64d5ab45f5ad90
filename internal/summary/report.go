package summary

import (
	"fmt"
	"strings"

	"github.com/dshills/agsedit/internal/ags/dict"
)

// DefaultMatrixLimit is the number of distinct locations above which
// the location-by-group matrix is omitted from the report.
const DefaultMatrixLimit = 25

// depthPlaceholder stands in for an absent depth bound or range.
const depthPlaceholder = "-"

// ReportOptions controls report rendering.
type ReportOptions struct {
	// Dictionary decorates group names with descriptions. May be nil.
	Dictionary *dict.Dictionary

	// MatrixLimit overrides DefaultMatrixLimit when > 0.
	MatrixLimit int
}

// Report renders a Summary as a plain-text report.
func Report(s *Summary, opts ReportOptions) string {
	limit := opts.MatrixLimit
	if limit <= 0 {
		limit = DefaultMatrixLimit
	}

	var b strings.Builder

	b.WriteString("AGS File Summary\n")
	b.WriteString("================\n\n")
	if s.FormatVersion != "" {
		fmt.Fprintf(&b, "Format version: %s\n", s.FormatVersion)
	}
	fmt.Fprintf(&b, "Groups: %d\n", s.TotalGroups)
	fmt.Fprintf(&b, "Records: %d\n\n", s.TotalRecords)

	b.WriteString("Records by group\n")
	b.WriteString("----------------\n")
	for _, gc := range s.GroupCounts {
		desc := ""
		if opts.Dictionary != nil {
			if d := opts.Dictionary.Group(gc.Name).Description; d != "" {
				desc = "  " + d
			}
		}
		fmt.Fprintf(&b, "%-8s %6d%s\n", gc.Name, gc.Count, desc)
	}
	b.WriteString("\n")

	b.WriteString("Locations\n")
	b.WriteString("---------\n")
	if len(s.Locations) == 0 {
		b.WriteString("No locations recorded.\n")
		return b.String()
	}

	fmt.Fprintf(&b, "%-12s %-6s %-12s %-12s %8s %15s\n",
		"ID", "Type", "Easting", "Northing", "Final", "Depth range")
	for _, loc := range s.Locations {
		fmt.Fprintf(&b, "%-12s %-6s %-12s %-12s %8s %15s\n",
			loc.ID,
			orPlaceholder(loc.Type),
			orPlaceholder(loc.Easting),
			orPlaceholder(loc.Northing),
			orPlaceholder(loc.FinalDepth),
			formatRange(loc.Depths))
	}
	b.WriteString("\n")

	b.WriteString("Location types\n")
	b.WriteString("--------------\n")
	for pair := s.TypeAggregates.Oldest(); pair != nil; pair = pair.Next() {
		fmt.Fprintf(&b, "%-6s count %3d  depth %s\n",
			orPlaceholder(pair.Key), pair.Value.Count, formatRange(pair.Value.Depths))
	}
	b.WriteString("\n")

	b.WriteString("Records by location\n")
	b.WriteString("-------------------\n")
	if len(s.Locations) > limit {
		fmt.Fprintf(&b, "Omitted: %d locations exceed the matrix limit of %d.\n",
			len(s.Locations), limit)
		return b.String()
	}
	for pair := s.RecordsByLocation.Oldest(); pair != nil; pair = pair.Next() {
		var cells []string
		for gp := pair.Value.Oldest(); gp != nil; gp = gp.Next() {
			cells = append(cells, fmt.Sprintf("%s:%d", gp.Key, gp.Value))
		}
		fmt.Fprintf(&b, "%-12s %s\n", pair.Key, strings.Join(cells, "  "))
	}

	return b.String()
}

// formatRange renders a depth range, substituting the placeholder for
// absent bounds. A fully absent range is a single placeholder.
func formatRange(r DepthRange) string {
	if !r.Defined() {
		return depthPlaceholder
	}
	min, max := depthPlaceholder, depthPlaceholder
	if r.HasMin {
		min = fmt.Sprintf("%.2f", r.Min)
	}
	if r.HasMax {
		max = fmt.Sprintf("%.2f", r.Max)
	}
	return min + " to " + max
}

func orPlaceholder(s string) string {
	if s == "" {
		return depthPlaceholder
	}
	return s
}
