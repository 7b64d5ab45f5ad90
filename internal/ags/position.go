package ags

// ColumnAt resolves which logical column a character offset within a
// line falls in. Column 0 is the row-type field itself; column k for
// k >= 1 is heading column k-1.
//
// The answer is the count of separating commas before the offset, where
// a comma separates only when it occurs outside a quoted span. Quote
// state is a parity flag over the quote characters seen so far, so the
// result is stable for any offset inside the same quoted field.
func ColumnAt(lineText string, offset int) int {
	if offset > len(lineText) {
		offset = len(lineText)
	}

	column := 0
	inQuotes := false
	for i := 0; i < offset; i++ {
		switch lineText[i] {
		case '"':
			inQuotes = !inQuotes
		case ',':
			if !inQuotes {
				column++
			}
		}
	}
	return column
}

// GroupForLine returns the group owning the given line: the group with
// the greatest StartLine that is <= line. Returns nil when no group
// starts at or before the line.
//
// The scan trusts that groups are contiguous, non-overlapping ranges in
// file order; it does not check the line against the next group's
// start. Recomputing per query keeps the index free of staleness under
// edits, at linear cost in the group count.
func GroupForLine(doc *Document, line int) *Group {
	var owner *Group
	best := -1
	for pair := doc.Groups.Oldest(); pair != nil; pair = pair.Next() {
		g := pair.Value
		if g.StartLine <= line && g.StartLine > best {
			owner = g
			best = g.StartLine
		}
	}
	return owner
}
