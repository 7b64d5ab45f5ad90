package app

import (
	"io"
	"strings"
	"testing"

	"github.com/dshills/agsedit/internal/ags"
	"github.com/dshills/agsedit/internal/event"
	"github.com/dshills/agsedit/internal/table"
)

func newTestApp(t *testing.T, text string) *App {
	t.Helper()

	a := New(Options{LogOutput: io.Discard, LogLevel: LogLevelError})
	if _, err := a.OpenReader("test.ags", strings.NewReader(text)); err != nil {
		t.Fatalf("OpenReader failed: %v", err)
	}
	return a
}

func TestOpenBindsEngine(t *testing.T) {
	a := newTestApp(t, sampleFile)

	if got := a.Engine().ActiveGroup(); got != "LOCA" {
		t.Errorf("active group = %q, want LOCA", got)
	}
}

func TestCursorMoveSyncsTable(t *testing.T) {
	a := newTestApp(t, sampleFile)

	var highlights []event.HighlightRow
	a.Bus().Subscribe(event.TopicTableHighlight, func(p any) {
		highlights = append(highlights, p.(event.HighlightRow))
	})

	// Line 6 is the second GEOL data row.
	a.Bus().Publish(event.TopicCursorMoved, event.CursorMoved{Line: 6, Column: 3})

	if got := a.Engine().ActiveGroup(); got != "GEOL" {
		t.Errorf("active group = %q, want GEOL", got)
	}
	if len(highlights) != 1 || highlights[0].Row != 1 {
		t.Errorf("highlights = %v, want one for data row 1", highlights)
	}
	if got := a.Documents().Active().Cursor(); got.Line != 6 {
		t.Errorf("cursor line = %d, want 6", got.Line)
	}
}

func TestViewEditRoundTrip(t *testing.T) {
	a := newTestApp(t, sampleFile)

	a.Bus().Publish(event.TopicViewEdit, event.CellEditRequest{
		Kind: ags.RowKindData, Row: 0, Col: 2,
		OldValue: "12.50", NewValue: "14.00",
	})

	doc := a.Documents().Active()
	if got := doc.Buffer.LineText(2); got != `"DATA","BH1","BH","14.00"` {
		t.Errorf("line = %q", got)
	}

	// The buffer change invalidated the cache; the engine and summary
	// observe the new value.
	loca := a.Parsed().Group("LOCA")
	if v, _ := loca.Value(loca.DataRows[0], ags.HeadingFinalDepth); v != "14.00" {
		t.Errorf("parsed value = %q, want 14.00", v)
	}
}

func TestViewEditRerenders(t *testing.T) {
	a := newTestApp(t, sampleFile)

	var grids []*table.Grid
	a.Bus().Subscribe(event.TopicTableRender, func(p any) {
		grids = append(grids, p.(*table.Grid))
	})

	a.Bus().Publish(event.TopicViewEdit, event.CellEditRequest{
		Kind: ags.RowKindData, Row: 0, Col: 0,
		OldValue: "BH1", NewValue: "BH1A",
	})

	if len(grids) != 1 {
		t.Fatalf("render events = %d, want 1", len(grids))
	}
	last := grids[len(grids)-1]
	for _, row := range last.Rows {
		if row.Kind == ags.RowKindData && row.Index == 0 && row.Cells[0] != "BH1A" {
			t.Errorf("rendered cell = %q, want BH1A", row.Cells[0])
		}
	}
}

func TestViewNavigateMovesCursor(t *testing.T) {
	a := newTestApp(t, sampleFile)

	a.Bus().Publish(event.TopicViewNavigate, event.NavigateRequest{
		Kind: ags.RowKindData, Row: 0,
	})

	if got := a.Documents().Active().Cursor(); got.Line != 2 {
		t.Errorf("cursor line = %d, want 2", got.Line)
	}
}

func TestViewSelectGroup(t *testing.T) {
	a := newTestApp(t, sampleFile)

	a.Bus().Publish(event.TopicViewSelectGroup, event.SelectGroupRequest{Group: "GEOL"})
	if got := a.Engine().ActiveGroup(); got != "GEOL" {
		t.Errorf("active group = %q, want GEOL", got)
	}

	// Selecting a missing group keeps the prior selection.
	a.Bus().Publish(event.TopicViewSelectGroup, event.SelectGroupRequest{Group: "NOPE"})
	if got := a.Engine().ActiveGroup(); got != "GEOL" {
		t.Errorf("active group = %q, want GEOL retained", got)
	}
}

func TestSummaryReport(t *testing.T) {
	a := newTestApp(t, sampleFile)

	report, err := a.SummaryReport()
	if err != nil {
		t.Fatalf("SummaryReport failed: %v", err)
	}
	if !strings.Contains(report, "BH1") {
		t.Errorf("report missing location:\n%s", report)
	}
	if !strings.Contains(report, "Location Details") {
		t.Errorf("report missing dictionary description:\n%s", report)
	}
}

func TestSummaryReportNoDocument(t *testing.T) {
	a := New(Options{LogOutput: io.Discard})

	if _, err := a.SummaryReport(); err != ErrNoActiveDocument {
		t.Errorf("err = %v, want ErrNoActiveDocument", err)
	}
}

func TestCloseActiveEvicts(t *testing.T) {
	a := newTestApp(t, sampleFile)

	if err := a.CloseActive(); err != nil {
		t.Fatalf("CloseActive failed: %v", err)
	}
	if a.Documents().Count() != 0 {
		t.Error("document should be evicted")
	}
	if err := a.CloseActive(); err != ErrNoActiveDocument {
		t.Errorf("err = %v, want ErrNoActiveDocument", err)
	}
}

func TestParsedWithNoDocument(t *testing.T) {
	a := New(Options{LogOutput: io.Discard})

	doc := a.Parsed()
	if doc.Groups.Len() != 0 {
		t.Error("no active document should parse to an empty document")
	}
}
