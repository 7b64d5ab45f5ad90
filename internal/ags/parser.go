package ags

import (
	"regexp"
	"strings"
)

// groupNamePattern is the identifier form a group code must take for a
// declaration line to open a new group.
var groupNamePattern = regexp.MustCompile(`^\w+$`)

// Parse builds a Document from the lines of an AGS file in one linear
// pass. Line indexes in the result are indexes into lines.
//
// The only parser state is the current group. Lines that are blank,
// unclassifiable, or that require a current group when none is open
// are dropped without error. A later declaration reusing an existing
// group name replaces the earlier group in the mapping but keeps its
// position in group order.
func Parse(lines []string) *Document {
	doc := NewDocument()

	var current *Group
	for lineno, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		kind, fields := ClassifyLine(line)

		switch kind {
		case RowKindDeclaration:
			if len(fields) < 2 || !groupNamePattern.MatchString(fields[1]) {
				continue
			}
			current = &Group{
				Name:        fields[1],
				StartLine:   lineno,
				HeadingLine: -1,
			}
			doc.Groups.Set(current.Name, current)

		case RowKindHeading:
			if current == nil {
				continue
			}
			current.Headings = fields[1:]
			current.HeadingLine = lineno

		case RowKindUnit:
			if current == nil {
				continue
			}
			current.Units = fields[1:]

		case RowKindType:
			if current == nil {
				continue
			}
			current.Types = fields[1:]

		case RowKindData:
			if current == nil {
				continue
			}
			row := fields[1:]
			current.DataRows = append(current.DataRows, row)
			current.DataLines = append(current.DataLines, lineno)
			current.RecordCount++

			if strings.EqualFold(current.Name, GroupTransmission) {
				if v, ok := current.Value(row, HeadingFormatVersion); ok {
					doc.FormatVersion = v
				}
			}
		}
	}

	return doc
}

// ParseString parses complete file text, splitting on newlines.
// Carriage returns are stripped so CRLF input parses identically.
func ParseString(text string) *Document {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return Parse(strings.Split(text, "\n"))
}
