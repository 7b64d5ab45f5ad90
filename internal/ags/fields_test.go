package ags

import (
	"reflect"
	"testing"
)

func TestFields(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{
			name: "simple data row",
			line: `"DATA","BH1","2.50"`,
			want: []string{"DATA", "BH1", "2.50"},
		},
		{
			name: "empty fields preserved",
			line: `"UNIT","","m",""`,
			want: []string{"UNIT", "", "m", ""},
		},
		{
			name: "text outside quotes ignored",
			line: `  "GROUP" , "LOCA" trailing junk`,
			want: []string{"GROUP", "LOCA"},
		},
		{
			name: "no quotes",
			line: `plain text, no fields`,
			want: nil,
		},
		{
			name: "empty line",
			line: "",
			want: nil,
		},
		{
			name: "unterminated quote stops extraction",
			line: `"DATA","BH1","2.5`,
			want: []string{"DATA", "BH1"},
		},
		{
			name: "single unterminated quote yields nothing",
			line: `"DATA`,
			want: nil,
		},
		{
			name: "commas inside quotes are content",
			line: `"DATA","CLAY, stiff, grey"`,
			want: []string{"DATA", "CLAY, stiff, grey"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Fields(tt.line)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Fields(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestFieldsEmbeddedQuoteTruncates(t *testing.T) {
	// An embedded quote has no escape convention: it closes the field
	// early and the remainder re-pairs from the next quote.
	got := Fields(`"DATA","5" pipe","X"`)
	want := []string{"DATA", "5", ","}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Fields = %v, want %v", got, want)
	}
}
