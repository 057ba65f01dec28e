package config

import (
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func TestDir_XDGOverride(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg/config")
	if got, want := Dir(), filepath.Join("/xdg/config", "rp"); got != want {
		t.Errorf("Dir() = %q, want %q", got, want)
	}
}

func TestDir_Default(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")

	dir := Dir()
	if dir == "" {
		t.Fatal("Dir() returned empty string")
	}
	if runtime.GOOS != "windows" && filepath.Base(dir) != "rp" {
		t.Errorf("Dir() = %q, want path ending in 'rp'", dir)
	}
}

func TestLocate(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")

	t.Setenv("RP_CONFIG", "")
	if path, explicit := Locate("flag.yaml"); path != "flag.yaml" || !explicit {
		t.Errorf("Locate(flag) = %q, %v, want flag.yaml, true", path, explicit)
	}

	t.Setenv("RP_CONFIG", "env.yaml")
	if path, explicit := Locate(""); path != "env.yaml" || !explicit {
		t.Errorf("Locate() with RP_CONFIG = %q, %v, want env.yaml, true", path, explicit)
	}
	if path, _ := Locate("flag.yaml"); path != "flag.yaml" {
		t.Errorf("flag should win over RP_CONFIG, got %q", path)
	}

	t.Setenv("RP_CONFIG", "")
	want := filepath.Join("/xdg", "rp", FileName)
	if path, explicit := Locate(""); path != want || explicit {
		t.Errorf("Locate() = %q, %v, want %q, false", path, explicit, want)
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `default_template: Review for bugs.
exclude:
  - vendor/
  - "*.lock"
silent: true
debug: true
`)

	cfg, err := Load(path, true)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := File{
		DefaultTemplate: "Review for bugs.",
		Exclude:         []string{"vendor/", "*.lock"},
		Silent:          true,
		Debug:           true,
	}
	if !reflect.DeepEqual(cfg, want) {
		t.Errorf("Load() = %+v, want %+v", cfg, want)
	}
}

func TestLoad_EmptyFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""), true)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !reflect.DeepEqual(cfg, File{}) {
		t.Errorf("Load() = %+v, want zero value", cfg)
	}
}

func TestLoad_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.yaml")

	if _, err := Load(path, false); err != nil {
		t.Errorf("Load(optional) error = %v, want nil", err)
	}
	if _, err := Load(path, true); err == nil {
		t.Error("Load(required) error = nil, want error")
	}
	if _, err := Load("", true); err != nil {
		t.Errorf("Load(\"\") error = %v, want nil", err)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"unknown key", "colour: red\n", "colour"},
		{"wrong type", "silent: [1, 2]\n", "parse"},
		{"malformed", "exclude: [unterminated\n", "parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content), false)
			if err == nil {
				t.Fatal("Load() error = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Load() error = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestDebugFromEnv(t *testing.T) {
	for value, want := range map[string]bool{"1": true, "true": true, "0": false, "": false, "yes": false} {
		t.Setenv("RP_DEBUG", value)
		if got := DebugFromEnv(); got != want {
			t.Errorf("DebugFromEnv() with RP_DEBUG=%q = %v, want %v", value, got, want)
		}
	}
}
