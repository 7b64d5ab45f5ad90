// Package dict provides the read-only AGS data dictionary: lookups
// from group and heading codes to human-readable descriptions and
// optional type/unit/example metadata.
//
// The dictionary ships embedded in the binary as JSON and is queried
// lazily with gjson. Lookups never fail: an unknown code, or a corrupt
// dictionary, yields an entry with empty fields.
package dict

import (
	_ "embed"

	"github.com/tidwall/gjson"
)

//go:embed ags.json
var embedded []byte

// Entry describes one group or heading code.
// Any field other than Code may be empty.
type Entry struct {
	Code        string
	Description string
	Type        string
	Unit        string
	Example     string
}

// Dictionary answers code lookups against a JSON dictionary document.
type Dictionary struct {
	data []byte
}

// Load returns the embedded dictionary.
// A corrupt embedded document degrades to an empty dictionary.
func Load() *Dictionary {
	return LoadBytes(embedded)
}

// LoadBytes builds a dictionary from raw JSON. Invalid JSON yields an
// empty dictionary rather than an error; every lookup against it
// returns empty entries.
func LoadBytes(data []byte) *Dictionary {
	if !gjson.ValidBytes(data) {
		return &Dictionary{}
	}
	return &Dictionary{data: data}
}

// Group returns the entry for a group code.
func (d *Dictionary) Group(code string) Entry {
	return d.lookup("groups", code)
}

// Heading returns the entry for a heading code. Heading codes are
// globally unique in the AGS dictionary, so no group qualifier is
// needed.
func (d *Dictionary) Heading(code string) Entry {
	return d.lookup("headings", code)
}

func (d *Dictionary) lookup(section, code string) Entry {
	entry := Entry{Code: code}
	if len(d.data) == 0 || code == "" {
		return entry
	}

	node := gjson.GetBytes(d.data, section+"."+code)
	if !node.Exists() {
		return entry
	}

	entry.Description = node.Get("description").String()
	entry.Type = node.Get("type").String()
	entry.Unit = node.Get("unit").String()
	entry.Example = node.Get("example").String()
	return entry
}
