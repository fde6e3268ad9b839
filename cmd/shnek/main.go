// shnek is a headless simulator for a snake flying through a 3D toroidal space.
//
// Usage:
//
//	shnek sim               - Run a headless game with an autopilot
//	shnek pilots            - List available autopilots
//	shnek scores            - Show high scores
//	shnek config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: 60)
//	--seed <value>         - Set RNG seed for reproducible runs
//	--db <path>            - Set database path (default: ~/.shnek/scores.db)
//	--config <path>        - Use a custom config YAML
//	--difficulty <preset>  - easy, normal, hard, fixed
//	--log-level <level>    - debug, info, warn, error
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/shnek/internal/config"
	"github.com/vovakirdan/shnek/internal/core"

	// Import pilots to register them
	_ "github.com/vovakirdan/shnek/internal/pilot"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shnek",
	Short: "Shnek - a snake in a 3D torus",
	Long: `Shnek simulates a snake flying through a cube whose opposite faces
are glued together. The body replays the path of the head, food makes it
grow, boosting costs segments and touching your own tail ends the run.

Available commands:
  sim      - Run a headless game with an autopilot
  pilots   - Show all available autopilots
  scores   - View high scores
  config   - Print the effective configuration

Examples:
  shnek sim --pilot greedy --seconds 120
  shnek sim --pilot wander --telemetry ./out --save
  shnek scores
  shnek config --difficulty hard`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (simulation steps per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.shnek/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(pilotsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger creates the stderr logger at the requested level.
func newLogger() (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "shnek",
		Level:           level,
	})
	return logger, nil
}

// loadConfig loads the config file and applies the difficulty preset.
func loadConfig() (config.Config, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.Config{}, err
	}
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, cfg.Validate()
}

// runtimeConfig builds the runtime config, picking a time-based seed for 0.
func runtimeConfig() core.RuntimeConfig {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return core.RuntimeConfig{
		TickRate: flagFPS,
		Seed:     seed,
	}
}
