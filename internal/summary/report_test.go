package summary

import (
	"strings"
	"testing"

	"github.com/dshills/agsedit/internal/ags"
	"github.com/dshills/agsedit/internal/ags/dict"
)

func TestReportBasics(t *testing.T) {
	out := Report(buildSample(), ReportOptions{})

	for _, want := range []string{
		"Format version: 4.1",
		"Groups: 4",
		"Records: 10",
		"BH1",
		"0.00 to 3.00",
		"BH2",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q\n%s", want, out)
		}
	}
}

func TestReportAbsentDepthPlaceholder(t *testing.T) {
	out := Report(buildSample(), ReportOptions{})

	// TP1 has no geology rows; its range renders as a placeholder,
	// never as zero.
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "TP1") {
			if !strings.HasSuffix(strings.TrimRight(line, " "), "-") {
				t.Errorf("TP1 line should end with placeholder: %q", line)
			}
			if strings.Contains(line, "0.00 to") {
				t.Errorf("TP1 line must not fabricate a zero range: %q", line)
			}
			return
		}
	}
	t.Fatal("TP1 not found in report")
}

func TestReportZeroLocations(t *testing.T) {
	s := Build(ags.ParseString(`"GROUP","PROJ"
"HEADING","PROJ_ID"
"DATA","1"
`))
	out := Report(s, ReportOptions{})

	if !strings.Contains(out, "No locations recorded.") {
		t.Errorf("report should state there are no locations:\n%s", out)
	}
}

func TestReportMatrixLimit(t *testing.T) {
	out := Report(buildSample(), ReportOptions{MatrixLimit: 2})

	if !strings.Contains(out, "exceed the matrix limit") {
		t.Errorf("matrix should be omitted over the limit:\n%s", out)
	}
	if strings.Contains(out, "GEOL:2") {
		t.Errorf("matrix rows should not render when omitted:\n%s", out)
	}
}

func TestReportMatrixRows(t *testing.T) {
	out := Report(buildSample(), ReportOptions{})

	if !strings.Contains(out, "GEOL:2") {
		t.Errorf("BH1 matrix row should count two geology records:\n%s", out)
	}
	if !strings.Contains(out, "SAMP:2") {
		t.Errorf("BH2 matrix row should count two samples:\n%s", out)
	}
}

func TestReportDictionaryDescriptions(t *testing.T) {
	out := Report(buildSample(), ReportOptions{Dictionary: dict.Load()})

	if !strings.Contains(out, "Location Details") {
		t.Errorf("report should describe LOCA via the dictionary:\n%s", out)
	}
}
