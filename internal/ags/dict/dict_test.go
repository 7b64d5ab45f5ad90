package dict

import "testing"

func TestLoadEmbedded(t *testing.T) {
	d := Load()

	entry := d.Group("LOCA")
	if entry.Description == "" {
		t.Error("embedded dictionary should describe LOCA")
	}
	if entry.Code != "LOCA" {
		t.Errorf("code = %q, want LOCA", entry.Code)
	}
}

func TestHeadingLookup(t *testing.T) {
	d := Load()

	entry := d.Heading("LOCA_FDEP")
	if entry.Description == "" {
		t.Error("embedded dictionary should describe LOCA_FDEP")
	}
	if entry.Unit != "m" {
		t.Errorf("unit = %q, want m", entry.Unit)
	}
	if entry.Type != "2DP" {
		t.Errorf("type = %q, want 2DP", entry.Type)
	}
}

func TestUnknownCodesDegrade(t *testing.T) {
	d := Load()

	if got := d.Group("ZZZZ"); got.Description != "" {
		t.Errorf("unknown group description = %q, want empty", got.Description)
	}
	if got := d.Heading("ZZZZ_NOPE"); got.Description != "" {
		t.Errorf("unknown heading description = %q, want empty", got.Description)
	}
	if got := d.Heading(""); got.Description != "" {
		t.Error("empty code should yield empty entry")
	}
}

func TestCorruptDictionaryDegrades(t *testing.T) {
	d := LoadBytes([]byte(`{"groups": {`))

	if got := d.Group("LOCA"); got.Description != "" {
		t.Errorf("corrupt dictionary lookup = %q, want empty", got.Description)
	}
}

func TestLoadBytes(t *testing.T) {
	d := LoadBytes([]byte(`{
		"groups": {"TEST": {"description": "Test group"}},
		"headings": {"TEST_ID": {"description": "Test id", "example": "T1"}}
	}`))

	if got := d.Group("TEST").Description; got != "Test group" {
		t.Errorf("description = %q, want %q", got, "Test group")
	}
	if got := d.Heading("TEST_ID").Example; got != "T1" {
		t.Errorf("example = %q, want %q", got, "T1")
	}
}
