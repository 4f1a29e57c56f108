package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestJSONFormat(t *testing.T) {
	buf := &bytes.Buffer{}
	log := New(Config{Level: "debug", Format: FormatJSON, Output: buf})

	log.Info().Str("component", "engine").Msg("pass finished")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v\n%s", err, buf.String())
	}
	if entry["level"] != "info" || entry["component"] != "engine" || entry["message"] != "pass finished" {
		t.Errorf("entry = %v", entry)
	}
	if _, ok := entry["time"]; !ok {
		t.Error("entry has no timestamp")
	}
}

func TestHumanFormat(t *testing.T) {
	buf := &bytes.Buffer{}
	log := New(Config{Level: "info", Format: FormatHuman, Output: buf})

	log.Warn().Msg("target missing")

	out := buf.String()
	if strings.HasPrefix(out, "{") {
		t.Errorf("human format produced JSON: %s", out)
	}
	if !strings.Contains(out, "target missing") {
		t.Errorf("message missing from output: %s", out)
	}
}

func TestLevelFiltering(t *testing.T) {
	tests := []struct {
		name      string
		configLvl string
		logDebug  bool
		logInfo   bool
		logWarn   bool
	}{
		{"debug passes all", "debug", true, true, true},
		{"info skips debug", "info", false, true, true},
		{"warn skips info", "warn", false, false, true},
		{"error skips warn", "error", false, false, false},
		{"unknown falls back to info", "chatty", false, true, true},
		{"empty falls back to info", "", false, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			log := New(Config{Level: tt.configLvl, Format: FormatJSON, Output: buf})

			check := func(want bool, emit func()) {
				t.Helper()
				buf.Reset()
				emit()
				if got := buf.Len() > 0; got != want {
					t.Errorf("emitted = %v, want %v", got, want)
				}
			}
			check(tt.logDebug, func() { log.Debug().Msg("d") })
			check(tt.logInfo, func() { log.Info().Msg("i") })
			check(tt.logWarn, func() { log.Warn().Msg("w") })
		})
	}
}
