// Package config loads optional rp settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"gopkg.in/yaml.v3"
)

// FileName is the config file name inside Dir().
const FileName = "config.yaml"

// File is the on-disk configuration. Every field is optional.
type File struct {
	DefaultTemplate string   `yaml:"default_template"` // Replaces the built-in default template text.
	Exclude         []string `yaml:"exclude"`          // Patterns for dropping list-file entries.
	Silent          bool     `yaml:"silent"`
	Debug           bool     `yaml:"debug"`
}

// Dir returns the rp configuration directory.
//
// Resolution:
//   - $XDG_CONFIG_HOME/rp if set
//   - %AppData%/rp on Windows
//   - ~/.config/rp otherwise
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "rp")
	}

	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "rp")
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "rp")
}

// Locate picks the config file to load. An explicit flag value wins, then
// $RP_CONFIG, then Dir()/config.yaml. explicit is false only for the default
// location, whose absence is not an error.
func Locate(flagValue string) (path string, explicit bool) {
	if flagValue != "" {
		return flagValue, true
	}
	if env := os.Getenv("RP_CONFIG"); env != "" {
		return env, true
	}
	if dir := Dir(); dir != "" {
		return filepath.Join(dir, FileName), false
	}
	return "", false
}

// Load reads and decodes the config file at path. Unknown keys are rejected.
// A missing file yields an empty File unless required is set.
func Load(path string, required bool) (File, error) {
	var cfg File
	if path == "" {
		return cfg, nil
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to open config file %s: %w", path, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return File{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// DebugFromEnv reports whether $RP_DEBUG holds a true boolean value.
func DebugFromEnv() bool {
	v, err := strconv.ParseBool(os.Getenv("RP_DEBUG"))
	return err == nil && v
}
