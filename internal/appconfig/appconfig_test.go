// internal/appconfig/appconfig_test.go
package appconfig

import (
	"os"
	"testing"
)

// TestLoad tests the Load function against valid JSON, invalid JSON, and a
// nonexistent file. It uses temporary files to simulate each scenario and
// asserts that parsed fields and the recorded config path come through.
func TestLoad(t *testing.T) {
	validConfig := `{
        "goldenPath": "custom/golden.yaml",
        "reportPath": "custom/report.json",
        "minScore": 0.9,
        "debug": true
    }`
	tmpfile, err := os.CreateTemp("", "config.json")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())
	if _, err := tmpfile.Write([]byte(validConfig)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() with valid config failed: %v", err)
	}
	if cfg.GoldenPath != "custom/golden.yaml" {
		t.Fatalf("expected custom golden path, got %q", cfg.GoldenPath)
	}
	if cfg.MinScore != 0.9 || !cfg.Debug {
		t.Fatalf("unexpected parsed config: %+v", cfg)
	}
	if cfg.ConfigPath != tmpfile.Name() {
		t.Fatalf("expected recorded config path, got %q", cfg.ConfigPath)
	}

	invalidJSON := `{ "goldenPath": `
	tmpfile2, err := os.CreateTemp("", "config.json")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile2.Name())
	if _, err := tmpfile2.Write([]byte(invalidJSON)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile2.Close(); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(tmpfile2.Name()); err == nil {
		t.Fatal("Load() with invalid JSON should have failed")
	}

	if _, err := Load("does/not/exist.json"); err == nil {
		t.Fatal("Load() with nonexistent file should have failed")
	}
}

// TestDefaults verifies the fallback accessors on a zero-value config,
// including the out-of-range guard on the minimum score.
func TestDefaults(t *testing.T) {
	var cfg Config
	if cfg.GoldenPathOrDefault() != DefaultGoldenPath {
		t.Fatalf("expected default golden path, got %q", cfg.GoldenPathOrDefault())
	}
	if cfg.ReportPathOrDefault() != DefaultReportPath {
		t.Fatalf("expected default report path, got %q", cfg.ReportPathOrDefault())
	}
	if cfg.MinScoreOrDefault() != DefaultMinScore {
		t.Fatalf("expected default min score, got %v", cfg.MinScoreOrDefault())
	}

	cfg.MinScore = 1.5
	if cfg.MinScoreOrDefault() != DefaultMinScore {
		t.Fatalf("out-of-range min score should fall back, got %v", cfg.MinScoreOrDefault())
	}
	cfg.MinScore = 0.8
	if cfg.MinScoreOrDefault() != 0.8 {
		t.Fatalf("configured min score should win, got %v", cfg.MinScoreOrDefault())
	}
}
