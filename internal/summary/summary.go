// Package summary derives cross-group statistics from a parsed AGS
// document: per-group record counts, the location inventory, depth
// ranges per location and per location type, and the location-by-group
// record matrix. A Summary is recomputed on demand and never mutated
// in place.
package summary

import (
	"sort"
	"strconv"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/dshills/agsedit/internal/ags"
)

// DepthRange is the {min, max} span of recorded depths. Either bound
// may be independently absent; a bound is only widened, never erased.
type DepthRange struct {
	Min    float64
	Max    float64
	HasMin bool
	HasMax bool
}

// Defined returns true if at least one bound has been recorded.
func (r DepthRange) Defined() bool {
	return r.HasMin || r.HasMax
}

// observe widens the range to include a single depth value.
func (r DepthRange) observe(v float64) DepthRange {
	if !r.HasMin || v < r.Min {
		r.Min = v
		r.HasMin = true
	}
	if !r.HasMax || v > r.Max {
		r.Max = v
		r.HasMax = true
	}
	return r
}

// union widens the range by another range. Absent bounds on either
// side leave the existing bound untouched.
func (r DepthRange) union(o DepthRange) DepthRange {
	if o.HasMin {
		if !r.HasMin || o.Min < r.Min {
			r.Min = o.Min
			r.HasMin = true
		}
	}
	if o.HasMax {
		if !r.HasMax || o.Max > r.Max {
			r.Max = o.Max
			r.HasMax = true
		}
	}
	return r
}

// GroupCount pairs a group name with its record count.
type GroupCount struct {
	Name  string
	Count int
}

// Location is one entry of the location inventory, built from a row of
// the LOCA group. All fields other than ID are optional and empty when
// the source row does not carry them.
type Location struct {
	ID         string
	Easting    string
	Northing   string
	Type       string
	FinalDepth string

	// Depths is the range derived from the GEOL group's rows for this
	// location. Undefined when the location has no geology rows.
	Depths DepthRange
}

// TypeAggregate accumulates the locations sharing one type code.
type TypeAggregate struct {
	Count  int
	Depths DepthRange
}

// Summary is the derived, read-only statistics for one document.
type Summary struct {
	FormatVersion string
	TotalGroups   int
	TotalRecords  int

	// GroupCounts is ordered by count descending; ties keep the order
	// groups first occur in the file.
	GroupCounts []GroupCount

	// Locations follows the LOCA group's row order.
	Locations []Location

	// TypeAggregates maps location-type code to its rollup, keyed in
	// order of first appearance in the inventory.
	TypeAggregates *orderedmap.OrderedMap[string, TypeAggregate]

	// RecordsByLocation maps location ID to per-group record counts.
	// Both levels keep insertion order: locations in group-then-row
	// scan order, groups in file order.
	RecordsByLocation *orderedmap.OrderedMap[string, *orderedmap.OrderedMap[string, int]]
}

// Build derives a Summary from a parsed document.
func Build(doc *ags.Document) *Summary {
	s := &Summary{
		FormatVersion:     doc.FormatVersion,
		TypeAggregates:    orderedmap.New[string, TypeAggregate](),
		RecordsByLocation: orderedmap.New[string, *orderedmap.OrderedMap[string, int]](),
	}

	// Pass 1: per-group counts plus the location-by-group matrix.
	for pair := doc.Groups.Oldest(); pair != nil; pair = pair.Next() {
		g := pair.Value
		s.TotalGroups++
		s.TotalRecords += g.RecordCount
		s.GroupCounts = append(s.GroupCounts, GroupCount{Name: g.Name, Count: g.RecordCount})

		if g.HeadingIndex(ags.HeadingLocationID) < 0 {
			continue
		}
		for _, row := range g.DataRows {
			id, ok := g.Value(row, ags.HeadingLocationID)
			if !ok || id == "" {
				continue
			}
			perGroup, ok := s.RecordsByLocation.Get(id)
			if !ok {
				perGroup = orderedmap.New[string, int]()
				s.RecordsByLocation.Set(id, perGroup)
			}
			n, _ := perGroup.Get(g.Name)
			perGroup.Set(g.Name, n+1)
		}
	}

	sort.SliceStable(s.GroupCounts, func(i, j int) bool {
		return s.GroupCounts[i].Count > s.GroupCounts[j].Count
	})

	// Pass 2: depth ranges per location from the geology group.
	ranges := make(map[string]DepthRange)
	if geol := doc.Group(ags.GroupGeology); geol != nil {
		for _, row := range geol.DataRows {
			id, ok := geol.Value(row, ags.HeadingLocationID)
			if !ok || id == "" {
				continue
			}
			r := ranges[id]
			touched := false
			if top, ok := parseDepth(geol, row, ags.HeadingDepthTop); ok {
				r = r.observe(top)
				touched = true
			}
			if base, ok := parseDepth(geol, row, ags.HeadingDepthBase); ok {
				r = r.observe(base)
				touched = true
			}
			if touched {
				ranges[id] = r
			}
		}
	}

	// Pass 3: the location inventory and per-type rollup.
	if loca := doc.Group(ags.GroupLocation); loca != nil {
		for _, row := range loca.DataRows {
			id, ok := loca.Value(row, ags.HeadingLocationID)
			if !ok || id == "" {
				continue
			}
			loc := Location{
				ID:     id,
				Depths: ranges[id],
			}
			loc.Easting, _ = loca.Value(row, ags.HeadingEasting)
			loc.Northing, _ = loca.Value(row, ags.HeadingNorthing)
			loc.Type, _ = loca.Value(row, ags.HeadingLocationType)
			loc.FinalDepth, _ = loca.Value(row, ags.HeadingFinalDepth)
			s.Locations = append(s.Locations, loc)

			agg, _ := s.TypeAggregates.Get(loc.Type)
			agg.Count++
			agg.Depths = agg.Depths.union(loc.Depths)
			s.TypeAggregates.Set(loc.Type, agg)
		}
	}

	return s
}

// parseDepth reads a numeric depth column from a row. Missing columns
// and non-numeric values report ok=false and are skipped by callers.
func parseDepth(g *ags.Group, row []string, heading string) (float64, bool) {
	raw, ok := g.Value(row, heading)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
