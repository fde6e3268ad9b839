package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfigMatchesHardcoded(t *testing.T) {
	got := DefaultConfig()
	want := hardcodedDefaults()
	if got != want {
		t.Errorf("embedded defaults differ from hardcoded:\n got  %+v\n want %+v", got, want)
	}
	if err := got.Validate(); err != nil {
		t.Errorf("defaults invalid: %v", err)
	}
}

func TestLoadCustomOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "snake:\n  base_speed: 12\nfood:\n  bad_chance: 0\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Snake.BaseSpeed != 12 {
		t.Errorf("base_speed = %v, want 12", cfg.Snake.BaseSpeed)
	}
	if cfg.Food.BadChance != 0 {
		t.Errorf("bad_chance = %v, want 0", cfg.Food.BadChance)
	}
	if cfg.Snake.SegmentSpacing != 5 {
		t.Errorf("segment_spacing = %v, want default 5", cfg.Snake.SegmentSpacing)
	}
	if cfg.Space.Size != 100 {
		t.Errorf("space.size = %v, want default 100", cfg.Space.Size)
	}
}

func TestLoadCustomErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("space: [not, a, map"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("expected parse error")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("space:\n  size: 0\n"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(invalid)
	if err == nil || !strings.Contains(err.Error(), "space.size") {
		t.Errorf("expected space.size validation error, got %v", err)
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Food.InitialPosition = Vec3{1, 2, 3}
	cfg.History.MaxSegments = 0

	path := filepath.Join(t.TempDir(), "nested", FileName)
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != cfg {
		t.Errorf("round trip mismatch:\n got  %+v\n want %+v", got, cfg)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"zero speed", func(c *Config) { c.Snake.BaseSpeed = 0 }, "snake.base_speed"},
		{"negative head space", func(c *Config) { c.Snake.HeadSpace = -1 }, "snake.head_space"},
		{"start length", func(c *Config) { c.Snake.StartLength = 0 }, "snake.start_length"},
		{"bad chance", func(c *Config) { c.Food.BadChance = 1.5 }, "food.bad_chance"},
		{"divisor", func(c *Config) { c.Food.BadQualityDivisor = 0 }, "food.bad_quality_divisor"},
		{"size range", func(c *Config) { c.Food.SizeMin = 6 }, "food.size_min"},
		{"history too short", func(c *Config) { c.History.MaxSegments = 2 }, "history.max_segments"},
		{"zero forward", func(c *Config) { c.Snake.StartForward = Vec3{} }, "snake.start_forward"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("error %q does not mention %s", err, tt.field)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{" HARD ", DifficultyHard, false},
		{"fixed", DifficultyFixed, false},
		{"nightmare", "", true},
	}

	for _, tt := range tests {
		got, err := ParsePreset(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePreset(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParsePreset(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset     DifficultyPreset
		speed      float64
		difficulty bool
	}{
		{DifficultyEasy, 22.5, true},
		{DifficultyNormal, 30, true},
		{DifficultyHard, 37.5, true},
		{DifficultyFixed, 30, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultConfig()
			ApplyPreset(&cfg, tt.preset)
			if cfg.Snake.BaseSpeed != tt.speed {
				t.Errorf("base speed = %v, want %v", cfg.Snake.BaseSpeed, tt.speed)
			}
			if cfg.Difficulty.Enabled != tt.difficulty {
				t.Errorf("difficulty enabled = %v, want %v", cfg.Difficulty.Enabled, tt.difficulty)
			}
		})
	}
}

func TestParamsConversion(t *testing.T) {
	cfg := DefaultConfig()
	sp := cfg.SnakeParams()
	if sp.SpaceSize != 100 || sp.BaseSpeed != 30 || sp.BoostMultiplier != 2 || sp.MaxSegments != 1024 {
		t.Errorf("unexpected snake params %+v", sp)
	}
	if sp.StartForward.X != 1 || sp.StartUp.Y != 1 {
		t.Errorf("unexpected start frame %+v %+v", sp.StartForward, sp.StartUp)
	}

	fp := cfg.FoodParams()
	if fp.CollisionDistance != 10 || fp.InitialPosition.X != 10 || !fp.Difficulty {
		t.Errorf("unexpected food params %+v", fp)
	}
}
