package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol/model"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	config := DefaultConfig()
	if err := config.Validate(); err != nil {
		t.Fatal(err)
	}
	if kind, _ := config.Kind(); kind != model.KindPacked {
		t.Fatalf("default encoding = %v", kind)
	}
}

func TestLoadConfigJSON(t *testing.T) {
	path := writeFile(t, "config.json", `{"encoding": "dense", "iterations": 7, "quiet": true}`)
	config, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if config.Encoding != "dense" || config.Iterations != 7 || !config.Quiet {
		t.Fatalf("config = %+v", config)
	}
	// Unset fields keep their defaults
	if config.Render != "digits" || !config.DetectStagnation {
		t.Fatalf("defaults lost: %+v", config)
	}
}

func TestLoadConfigYAML(t *testing.T) {
	path := writeFile(t, "config.yaml", "encoding: packed\ninput_file: tests/tc_3\nrandom_density: 0.5\ncompare: true\npattern: mixed\n")
	config, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if config.InputFile != "tests/tc_3" || config.RandomDensity != 0.5 || !config.Compare || config.Pattern != "mixed" {
		t.Fatalf("config = %+v", config)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file err = %v", err)
	}
	if _, err := LoadConfig(writeFile(t, "bad.json", "{")); err == nil {
		t.Error("expected error for malformed JSON")
	}
	if _, err := LoadConfig(writeFile(t, "bad.yml", "iterations: [")); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"unknown encoding", func(c *Config) { c.Encoding = "sparse" }, model.ErrUnknownEncoding},
		{"unknown renderer", func(c *Config) { c.Render = "svg" }, model.ErrUnknownRenderer},
		{"unknown pattern", func(c *Config) { c.Pattern = "gun" }, model.ErrUnknownPattern},
		{"negative size", func(c *Config) { c.RandomSize = -1 }, ErrInvalidConfig},
		{"size above file maximum", func(c *Config) { c.RandomSize = 1 << 20 }, ErrInvalidConfig},
		{"density above one", func(c *Config) { c.RandomDensity = 1.5 }, ErrInvalidConfig},
	}
	for _, tc := range cases {
		config := DefaultConfig()
		tc.mutate(&config)
		if err := config.Validate(); !errors.Is(err, tc.want) {
			t.Errorf("%s: err = %v, want %v", tc.name, err, tc.want)
		}
	}
}
