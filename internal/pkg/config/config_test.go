package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	fd, ok := cfg.Sources["fanduel"]
	if !ok {
		t.Fatal("embedded defaults must define the fanduel source")
	}
	if fd.Book != "fanduel" {
		t.Errorf("book: got %s", fd.Book)
	}
	if fd.DefaultUTCOffset != "-05:00" {
		t.Errorf("default offset: got %s", fd.DefaultUTCOffset)
	}
	if len(fd.StatKeywords) == 0 || len(fd.TeamNicknames) == 0 {
		t.Error("keyword dictionaries must not be empty")
	}
	if len(fd.WinColors) == 0 || len(fd.LossColors) == 0 {
		t.Error("icon color lists must not be empty")
	}
}

func TestLoadOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "sources:\n  fanduel:\n    book: fanduel\n    default_utc_offset: \"-06:00\"\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Sources["fanduel"].DefaultUTCOffset != "-06:00" {
		t.Errorf("override not applied: %s", cfg.Sources["fanduel"].DefaultUTCOffset)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestSourceFallback(t *testing.T) {
	cfg := Default()
	sc := cfg.Source("draftkings")
	if sc.Book != "draftkings" {
		t.Errorf("book: got %s", sc.Book)
	}
	if len(sc.StatKeywords) == 0 {
		t.Error("fallback source should inherit default dictionaries")
	}
}
