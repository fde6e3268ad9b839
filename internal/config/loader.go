package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up in the search directories.
const FileName = "shnek.yaml"

// Load loads the configuration. Values from a file overlay the embedded
// defaults, so a file only needs the keys it changes.
// Search order: customPath -> ~/.shnek/configs/shnek.yaml -> ./configs/shnek.yaml -> embedded default
func Load(customPath string) (Config, error) {
	cfg := DefaultConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	for _, path := range []string{userConfigPath(FileName), filepath.Join("configs", FileName)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		overlay := DefaultConfig()
		if err := yaml.Unmarshal(data, &overlay); err != nil {
			continue
		}
		if overlay.Validate() == nil {
			return overlay, nil
		}
	}

	return cfg, nil
}

// Marshal renders the configuration as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// WriteYAML writes the configuration to path.
func (c Config) WriteYAML(path string) error {
	data, err := c.Marshal()
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating config dir: %w", err)
		}
	}
	return os.WriteFile(path, data, 0644)
}

// Validate reports every parameter that would break the simulation.
func (c Config) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if !(v > 0) || math.IsInf(v, 0) {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}
	positive("space.size", c.Space.Size)
	positive("snake.base_speed", c.Snake.BaseSpeed)
	positive("snake.segment_spacing", c.Snake.SegmentSpacing)
	positive("boost.multiplier", c.Boost.Multiplier)
	positive("boost.debt_threshold", c.Boost.DebtThreshold)
	positive("food.collision_distance", c.Food.CollisionDistance)
	positive("food.bad_lifetime", c.Food.BadLifetime)

	if c.Snake.HeadSpace < 0 {
		errs = append(errs, fmt.Errorf("snake.head_space must not be negative, got %v", c.Snake.HeadSpace))
	}
	if c.Snake.StartLength < 1 {
		errs = append(errs, fmt.Errorf("snake.start_length must be at least 1, got %d", c.Snake.StartLength))
	}
	if c.Food.BadChance < 0 || c.Food.BadChance > 1 {
		errs = append(errs, fmt.Errorf("food.bad_chance must be in [0, 1], got %v", c.Food.BadChance))
	}
	if c.Food.BadQualityDivisor < 1 {
		errs = append(errs, fmt.Errorf("food.bad_quality_divisor must be at least 1, got %d", c.Food.BadQualityDivisor))
	}
	if c.Food.SizeMin > c.Food.SizeMax {
		errs = append(errs, fmt.Errorf("food.size_min %v exceeds size_max %v", c.Food.SizeMin, c.Food.SizeMax))
	}
	if c.History.MaxSegments < 0 {
		errs = append(errs, fmt.Errorf("history.max_segments must not be negative, got %d", c.History.MaxSegments))
	}
	if c.History.MaxSegments > 0 && c.History.MaxSegments < c.Snake.StartLength {
		errs = append(errs, fmt.Errorf("history.max_segments %d is below snake.start_length %d",
			c.History.MaxSegments, c.Snake.StartLength))
	}
	if c.Snake.StartForward == (Vec3{}) || c.Snake.StartUp == (Vec3{}) {
		errs = append(errs, errors.New("snake.start_forward and snake.start_up must be non-zero"))
	}
	return errors.Join(errs...)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".shnek", "configs", filename)
}
