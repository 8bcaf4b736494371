package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultMatchesBuiltin(t *testing.T) {
	var cfg SurvivalConfig
	if err := yaml.Unmarshal(GetDefaultYAML("survival"), &cfg); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if cfg != DefaultSurvivalConfig() {
		t.Errorf("embedded default drifted from DefaultSurvivalConfig:\n got %+v\nwant %+v", cfg, DefaultSurvivalConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("embedded default is invalid: %v", err)
	}
}

func TestLoadSurvivalCustomPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("hazards:\n  count: 3\nsession:\n  start_lives: 1\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := LoadSurvival(path)
	if err != nil {
		t.Fatalf("LoadSurvival failed: %v", err)
	}
	if source != SourceCustom {
		t.Errorf("source = %q, expected %q", source, SourceCustom)
	}
	if cfg.Hazards.Count != 3 || cfg.Session.StartLives != 1 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Hazards.Size != 40 || cfg.Session.MaxLives != 5 {
		t.Errorf("unspecified keys should keep defaults: %+v", cfg)
	}
}

func TestLoadSurvivalCustomErrors(t *testing.T) {
	dir := t.TempDir()

	if _, _, err := LoadSurvival(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom file should be an error")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("arena: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := LoadSurvival(bad); err == nil {
		t.Error("malformed YAML should be an error")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("session:\n  start_lives: 9\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, _, err := LoadSurvival(invalid)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("start_lives above max_lives should wrap ErrInvalidConfig, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SurvivalConfig)
	}{
		{"zero arena", func(c *SurvivalConfig) { c.Arena.Width = 0 }},
		{"negative hazards", func(c *SurvivalConfig) { c.Hazards.Count = -1 }},
		{"zero pickup period", func(c *SurvivalConfig) { c.Pickup.Period = 0 }},
		{"zero hunter period", func(c *SurvivalConfig) { c.Hunter.Period = 0 }},
		{"lives above cap", func(c *SurvivalConfig) { c.Session.StartLives = 6 }},
		{"unknown hazard policy", func(c *SurvivalConfig) { c.Policy.Hazards = "teleport" }},
		{"unknown hunter policy", func(c *SurvivalConfig) { c.Policy.Hunter = "wander" }},
		{"zero difficulty period", func(c *SurvivalConfig) { c.Difficulty.Period = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSurvivalConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestApplyVariantBelt(t *testing.T) {
	cfg := DefaultSurvivalConfig()
	if err := ApplyVariant(&cfg, VariantBelt); err != nil {
		t.Fatalf("ApplyVariant failed: %v", err)
	}
	if cfg.Policy.Hazards != HazardWrap || cfg.Policy.Hunter != HunterPursuit {
		t.Errorf("belt policies = %+v", cfg.Policy)
	}
	if cfg.Session.MaxLives != 3 {
		t.Errorf("belt max lives = %d, expected 3", cfg.Session.MaxLives)
	}
	if cfg.Arena.Width != 800 {
		t.Error("overlay should keep keys it does not name")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("belt config invalid: %v", err)
	}

	if err := ApplyVariant(&cfg, "spiral"); err == nil {
		t.Error("unknown variant should be an error")
	}
}

func TestApplySurvivalPreset(t *testing.T) {
	tests := []struct {
		preset    DifficultyPreset
		enabled   bool
		step      float64
		startLive int
	}{
		{DifficultyEasy, true, 0.15, 5},
		{DifficultyNormal, true, 0.25, 3},
		{DifficultyHard, true, 0.35, 2},
		{DifficultyFixed, false, 0.25, 3},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultSurvivalConfig()
			ApplySurvivalPreset(&cfg, tc.preset)
			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if cfg.Difficulty.Step != tc.step {
				t.Errorf("Step = %f, expected %f", cfg.Difficulty.Step, tc.step)
			}
			if cfg.Session.StartLives != tc.startLive {
				t.Errorf("StartLives = %d, expected %d", cfg.Session.StartLives, tc.startLive)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset produced invalid config: %v", err)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, err := ParsePreset("hard"); err != nil || p != DifficultyHard {
		t.Errorf("ParsePreset(hard) = %q, %v", p, err)
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("unknown preset should fail")
	}
}
