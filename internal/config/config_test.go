package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/propq/propq/check"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ConfigFilename), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Check.Trials != check.DefaultTrials {
		t.Errorf("Trials = %d, want %d", cfg.Check.Trials, check.DefaultTrials)
	}
	if cfg.Check.Seed != 0 || cfg.Check.Verbose {
		t.Errorf("unexpected non-default values: %+v", cfg.Check)
	}
	if cfg.Dir != "" {
		t.Errorf("Dir = %q, want empty for defaults", cfg.Dir)
	}
}

func TestLoadFullSection(t *testing.T) {
	dir := writeConfig(t, "[check]\ntrials = 500\nseed = 42\nverbose = true\n")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Check.Trials != 500 {
		t.Errorf("Trials = %d, want 500", cfg.Check.Trials)
	}
	if cfg.Check.Seed != 42 {
		t.Errorf("Seed = %d, want 42", cfg.Check.Seed)
	}
	if !cfg.Check.Verbose {
		t.Error("Verbose = false, want true")
	}
	if cfg.Dir != dir {
		t.Errorf("Dir = %q, want %q", cfg.Dir, dir)
	}
}

func TestLoadPartialSectionKeepsDefaults(t *testing.T) {
	dir := writeConfig(t, "[check]\nseed = 7\n")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Check.Trials != check.DefaultTrials {
		t.Errorf("Trials = %d, want default %d", cfg.Check.Trials, check.DefaultTrials)
	}
	if cfg.Check.Seed != 7 {
		t.Errorf("Seed = %d, want 7", cfg.Check.Seed)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"non-numeric trials", "[check]\ntrials = lots\n"},
		{"zero trials", "[check]\ntrials = 0\n"},
		{"negative trials", "[check]\ntrials = -5\n"},
		{"non-numeric seed", "[check]\nseed = abc\n"},
		{"non-boolean verbose", "[check]\nverbose = maybe\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dir := writeConfig(t, tc.content)
			if _, err := Load(dir); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
