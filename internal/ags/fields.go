package ags

import "strings"

// Fields extracts the quoted field values from a single line.
//
// Values are the text strictly between pairs of double-quote
// characters, scanned left to right and non-overlapping. Anything
// outside a quote pair (separating commas, whitespace) is ignored. An
// unterminated quote ends extraction; no fields are produced past it.
//
// There is no convention for a literal quote inside a field: an
// embedded quote character truncates the field at that point. The AGS
// sources seen in practice do not use escaped quotes, so this matches
// observed behavior rather than fixing it speculatively.
func Fields(line string) []string {
	var fields []string
	for {
		open := strings.IndexByte(line, '"')
		if open < 0 {
			break
		}
		rest := line[open+1:]
		closing := strings.IndexByte(rest, '"')
		if closing < 0 {
			break
		}
		fields = append(fields, rest[:closing])
		line = rest[closing+1:]
	}
	return fields
}
