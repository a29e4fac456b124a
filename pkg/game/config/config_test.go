package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "none", "config.yaml")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(missing) error = %v", err)
	}
	def := Defaults()
	if cfg.Backend != def.Backend || cfg.RadarRange != def.RadarRange || cfg.WindowScale != def.WindowScale {
		t.Errorf("Load(missing) = %+v, want defaults", cfg)
	}
	if Current() != cfg {
		t.Error("Load did not make the config current")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg, _ := Load(path)
	cfg.Backend = BackendTUI
	cfg.Sound = false
	cfg.Bindings = map[string]string{"fire": "f"}
	if err := cfg.SetHighScore(120); err != nil {
		t.Fatalf("SetHighScore: %v", err)
	}
	if err := cfg.SetWindowScale(2); err != nil {
		t.Fatalf("SetWindowScale: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Backend != BackendTUI || got.Sound || got.HighScore != 120 || got.WindowScale != 2 {
		t.Errorf("round trip = %+v", got)
	}
	if got.Bindings["fire"] != "f" {
		t.Errorf("Bindings[fire] = %q, want f", got.Bindings["fire"])
	}
}

func TestSetHighScore_IgnoresLower(t *testing.T) {
	cfg, _ := Load(filepath.Join(t.TempDir(), "c.yaml"))
	cfg.SetHighScore(50)
	cfg.SetHighScore(20)
	if cfg.HighScore != 50 {
		t.Errorf("HighScore = %d, want 50", cfg.HighScore)
	}
}

func TestSetters_RejectOutOfRange(t *testing.T) {
	cfg, _ := Load(filepath.Join(t.TempDir(), "c.yaml"))
	if err := cfg.SetRadarRange(7); err == nil {
		t.Error("SetRadarRange(7) error = nil")
	}
	if err := cfg.SetWindowScale(0); err == nil {
		t.Error("SetWindowScale(0) error = nil")
	}
}

func TestLoad_BadYAMLFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.yaml")
	if err := os.WriteFile(path, []byte("backend: [oops"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err == nil {
		t.Fatal("Load(bad yaml) error = nil")
	}
	if cfg.Backend != BackendEbiten {
		t.Errorf("Backend after bad yaml = %q, want default", cfg.Backend)
	}
}

func TestLoad_NormalisesValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.yaml")
	os.WriteFile(path, []byte("backend: nonsense\nwindow_scale: 40\nradar_range: 9\n"), 0o644)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Backend != BackendEbiten || cfg.WindowScale != 8 || cfg.RadarRange != 4 {
		t.Errorf("normalised = %+v", cfg)
	}
}
