package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestNew_DebugWritesToWriter(t *testing.T) {
	var buf bytes.Buffer
	logger := New(true, &buf, "rp", "1.2.3")

	logger.Debug("Read file")
	if err := Sync(logger, &buf); err != nil {
		t.Fatalf("Sync() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{"DEBUG", "Read file", `"appName": "rp"`, `"appVersion": "1.2.3"`} {
		if !strings.Contains(out, want) {
			t.Errorf("debug output should contain %q: %q", want, out)
		}
	}
}

func TestNew_DisabledIsSilent(t *testing.T) {
	var buf bytes.Buffer
	logger := New(false, &buf, "rp", "dev")

	logger.Debug("hidden")
	logger.Error("also hidden")
	if err := Sync(logger, &buf); err != nil {
		t.Fatalf("Sync() error = %v", err)
	}

	if buf.Len() != 0 {
		t.Errorf("disabled logger wrote %q", buf.String())
	}
}
