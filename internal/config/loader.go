package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config sources reported by LoadSurvival.
const (
	SourceCustom   = "custom"
	SourceUser     = "user"
	SourceLocal    = "local"
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

// LoadSurvival loads the survival configuration and reports where it came from.
// Search order: customPath -> ~/.arcade/configs/survival.yaml -> ./configs/survival.yaml ->
// embedded default -> DefaultSurvivalConfig.
// Files are overlaid on the built-in defaults, so a partial file only changes the keys it names.
// Only a custom path that cannot be read, parsed or validated is an error; the other
// locations are skipped when broken.
func LoadSurvival(customPath string) (SurvivalConfig, string, error) {
	if customPath != "" {
		cfg, err := parseFile(customPath)
		if err != nil {
			return cfg, SourceCustom, err
		}
		if err := cfg.Validate(); err != nil {
			return cfg, SourceCustom, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, SourceCustom, nil
	}

	if userCfgPath := userConfigPath("survival.yaml"); userCfgPath != "" {
		if cfg, err := parseFile(userCfgPath); err == nil && cfg.Validate() == nil {
			return cfg, SourceUser, nil
		}
	}

	if cfg, err := parseFile(filepath.Join("configs", "survival.yaml")); err == nil && cfg.Validate() == nil {
		return cfg, SourceLocal, nil
	}

	cfg := DefaultSurvivalConfig()
	if err := yaml.Unmarshal(defaultSurvivalYAML, &cfg); err != nil || cfg.Validate() != nil {
		return DefaultSurvivalConfig(), SourceBuiltin, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// ApplyVariant overlays a named variant onto cfg.
// The classic variant leaves cfg untouched.
func ApplyVariant(cfg *SurvivalConfig, variant string) error {
	switch variant {
	case "", VariantClassic:
		return nil
	case VariantBelt:
		if err := yaml.Unmarshal(beltOverlayYAML, cfg); err != nil {
			return fmt.Errorf("config: failed to apply variant %s: %w", variant, err)
		}
		return nil
	default:
		return fmt.Errorf("config: unknown variant %q", variant)
	}
}

func parseFile(path string) (SurvivalConfig, error) {
	cfg := DefaultSurvivalConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
