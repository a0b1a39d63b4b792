package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := Load()
	if cfg != Default() {
		t.Errorf("Load() = %+v, want defaults %+v", cfg, Default())
	}
}

func TestLoadReadsFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path := filepath.Join(dir, "edtop", "config.yaml")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("interval_sec: 5\ncompact: true\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := Load()
	if cfg.IntervalSec != 5 || !cfg.Compact {
		t.Errorf("Load() = %+v, want interval 5 compact true", cfg)
	}
}

func TestLoadInvalidYAMLReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path := filepath.Join(dir, "edtop", "config.yaml")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("{not yaml"), 0o644); err != nil {
		t.Fatal(err)
	}

	if cfg := Load(); cfg != Default() {
		t.Errorf("Load() = %+v, want defaults on parse error", cfg)
	}
}

func TestLoadClampsInterval(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path := filepath.Join(dir, "edtop", "config.yaml")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("interval_sec: -3\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if cfg := Load(); cfg.IntervalSec != Default().IntervalSec {
		t.Errorf("IntervalSec = %d, want default %d", cfg.IntervalSec, Default().IntervalSec)
	}
}
