package app

import (
	"strings"
	"testing"
)

func TestLoggerLevelFiltering(t *testing.T) {
	var out strings.Builder
	log := NewLogger(LogLevelWarn, &out)

	log.Debug("hidden")
	log.Info("hidden too")
	log.Warn("shown")
	log.Error("also shown")

	got := out.String()
	if strings.Contains(got, "hidden") {
		t.Errorf("low-level messages leaked: %q", got)
	}
	if !strings.Contains(got, "shown") || !strings.Contains(got, "also shown") {
		t.Errorf("expected warn and error messages: %q", got)
	}
}

func TestLoggerFields(t *testing.T) {
	var out strings.Builder
	log := NewLogger(LogLevelInfo, &out).WithComponent("table").WithField("group", "LOCA")

	log.Info("render")

	got := out.String()
	if !strings.Contains(got, "component=table") || !strings.Contains(got, "group=LOCA") {
		t.Errorf("fields missing: %q", got)
	}
}

func TestLoggerFormatArgs(t *testing.T) {
	var out strings.Builder
	log := NewLogger(LogLevelInfo, &out)

	log.Info("opened %s (%d lines)", "bh.ags", 42)

	if !strings.Contains(out.String(), "opened bh.ags (42 lines)") {
		t.Errorf("formatted message missing: %q", out.String())
	}
}

func TestLoggerDisable(t *testing.T) {
	var out strings.Builder
	log := NewLogger(LogLevelDebug, &out)
	log.Disable()

	log.Error("nope")
	if out.Len() != 0 {
		t.Errorf("disabled logger wrote: %q", out.String())
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
	}{
		{"debug", LogLevelDebug},
		{"INFO", LogLevelInfo},
		{"Warning", LogLevelWarn},
		{"error", LogLevelError},
		{"bogus", LogLevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLogLevel(tt.in); got != tt.want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
