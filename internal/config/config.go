// Package config provides YAML-based simulation configuration loading and
// difficulty presets.
package config

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/vovakirdan/shnek/internal/food"
	"github.com/vovakirdan/shnek/internal/snake"
)

// Config contains all tunables of a run.
type Config struct {
	Space      SpaceConfig      `yaml:"space"`
	Snake      SnakeConfig      `yaml:"snake"`
	Boost      BoostConfig      `yaml:"boost"`
	Food       FoodConfig       `yaml:"food"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	History    HistoryConfig    `yaml:"history"`
}

// SpaceConfig defines the toroidal space.
type SpaceConfig struct {
	Size float64 `yaml:"size"` // Side of the cube; opposite faces are identified
}

// SnakeConfig defines snake movement and body parameters.
type SnakeConfig struct {
	BaseSpeed           float64 `yaml:"base_speed"`
	SegmentSpacing      float64 `yaml:"segment_spacing"`
	HeadSpace           float64 `yaml:"head_space"`
	StartLength         int     `yaml:"start_length"`
	SpawnImmunity       float64 `yaml:"spawn_immunity"`
	TailCollisionFactor float64 `yaml:"tail_collision_factor"`
	StartPosition       Vec3    `yaml:"start_position,flow"`
	StartForward        Vec3    `yaml:"start_forward,flow"`
	StartUp             Vec3    `yaml:"start_up,flow"`
}

// BoostConfig defines boost speed and its cost.
type BoostConfig struct {
	Multiplier    float64 `yaml:"multiplier"`
	DebtThreshold float64 `yaml:"debt_threshold"` // Boosted seconds per lost segment
}

// FoodConfig defines food spawning and consumption.
type FoodConfig struct {
	CollisionDistance float64 `yaml:"collision_distance"`
	BadLifetime       float64 `yaml:"bad_lifetime"`
	BadChance         float64 `yaml:"bad_chance"`
	BadMinScore       int     `yaml:"bad_min_score"`
	BadQualityDivisor int     `yaml:"bad_quality_divisor"`
	SizeMin           float64 `yaml:"size_min"`
	SizeMax           float64 `yaml:"size_max"`
	PoopQuality       int     `yaml:"poop_quality"`
	InitialPosition   Vec3    `yaml:"initial_position,flow"`
	InitialQuality    int     `yaml:"initial_quality"`
}

// DifficultyConfig toggles the score-driven food curve.
type DifficultyConfig struct {
	Enabled bool `yaml:"enabled"`
}

// HistoryConfig bounds the head pose history.
type HistoryConfig struct {
	MaxSegments int `yaml:"max_segments"` // 0 keeps the whole run
}

// Vec3 is a YAML-friendly [x, y, z] triple.
type Vec3 [3]float64

// R3 converts to a gonum vector.
func (v Vec3) R3() r3.Vec {
	return r3.Vec{X: v[0], Y: v[1], Z: v[2]}
}

// SnakeParams derives the snake parameters.
func (c Config) SnakeParams() snake.Params {
	return snake.Params{
		SpaceSize:           c.Space.Size,
		BaseSpeed:           c.Snake.BaseSpeed,
		BoostMultiplier:     c.Boost.Multiplier,
		SegmentSpacing:      c.Snake.SegmentSpacing,
		HeadSpace:           c.Snake.HeadSpace,
		SpawnImmunity:       c.Snake.SpawnImmunity,
		TailCollisionFactor: c.Snake.TailCollisionFactor,
		BoostDebtThreshold:  c.Boost.DebtThreshold,
		MaxSegments:         c.History.MaxSegments,
		StartPosition:       c.Snake.StartPosition.R3(),
		StartForward:        c.Snake.StartForward.R3(),
		StartUp:             c.Snake.StartUp.R3(),
	}
}

// FoodParams derives the food factory parameters.
func (c Config) FoodParams() food.Params {
	return food.Params{
		SpaceSize:         c.Space.Size,
		CollisionDistance: c.Food.CollisionDistance,
		BadLifetime:       c.Food.BadLifetime,
		BadChance:         c.Food.BadChance,
		BadMinScore:       c.Food.BadMinScore,
		BadQualityDivisor: c.Food.BadQualityDivisor,
		SizeMin:           c.Food.SizeMin,
		SizeMax:           c.Food.SizeMax,
		PoopQuality:       c.Food.PoopQuality,
		InitialPosition:   c.Food.InitialPosition.R3(),
		InitialQuality:    c.Food.InitialQuality,
		Difficulty:        c.Difficulty.Enabled,
	}
}
