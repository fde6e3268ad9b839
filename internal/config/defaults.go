package config

import (
	_ "embed"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/shnek.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return hardcodedDefaults() // Fallback if embed is broken
	}
	return cfg
}

func hardcodedDefaults() Config {
	return Config{
		Space: SpaceConfig{Size: 100},
		Snake: SnakeConfig{
			BaseSpeed:           30,
			SegmentSpacing:      5,
			HeadSpace:           5,
			StartLength:         3,
			SpawnImmunity:       2.0,
			TailCollisionFactor: 0.8,
			StartForward:        Vec3{1, 0, 0},
			StartUp:             Vec3{0, 1, 0},
		},
		Boost: BoostConfig{Multiplier: 2, DebtThreshold: 3.0},
		Food: FoodConfig{
			CollisionDistance: 10,
			BadLifetime:       30,
			BadChance:         0.4,
			BadMinScore:       5,
			BadQualityDivisor: 5,
			SizeMin:           3,
			SizeMax:           5,
			PoopQuality:       1,
			InitialPosition:   Vec3{10, 0, 0},
			InitialQuality:    1,
		},
		Difficulty: DifficultyConfig{Enabled: true},
		History:    HistoryConfig{MaxSegments: 1024},
	}
}
