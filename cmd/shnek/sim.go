package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/shnek/internal/registry"
	"github.com/vovakirdan/shnek/internal/sim"
	"github.com/vovakirdan/shnek/internal/storage"
)

var (
	flagPilot       string
	flagSeconds     float64
	flagTelemetry   string
	flagSampleEvery int
	flagSave        bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless game with an autopilot",
	Long: `Run one game without a display. An autopilot produces the input,
the run ends at game over or at the time limit.

Pilots:
  cruise - Never steers
  wander - Random rotation bursts
  greedy - Chases the nearest food, boosts when it is far

Examples:
  shnek sim
  shnek sim --pilot wander --seconds 60 --seed 42
  shnek sim --pilot greedy --telemetry ./out --sample-every 30
  shnek sim --difficulty hard --save`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().StringVar(&flagPilot, "pilot", "greedy", "Autopilot ID (see 'shnek pilots')")
	simCmd.Flags().Float64Var(&flagSeconds, "seconds", 120, "Simulated time limit in seconds (0 = until game over)")
	simCmd.Flags().StringVar(&flagTelemetry, "telemetry", "", "Directory for telemetry CSV output")
	simCmd.Flags().IntVar(&flagSampleEvery, "sample-every", 6, "Write one telemetry row every N ticks")
	simCmd.Flags().BoolVar(&flagSave, "save", false, "Save the final score to the database")
}

func runSim(cmd *cobra.Command, args []string) {
	// Check if pilot exists
	if !registry.Exists(flagPilot) {
		fmt.Fprintf(os.Stderr, "Error: unknown pilot %q\n", flagPilot)
		fmt.Fprintln(os.Stderr, "Run 'shnek pilots' to see available pilots.")
		os.Exit(1)
	}

	logger, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	runCfg := sim.DefaultRunnerConfig()
	runCfg.Pilot = flagPilot
	runCfg.Seconds = flagSeconds
	runCfg.Runtime = runtimeConfig()
	runCfg.TelemetryDir = flagTelemetry
	runCfg.SampleEvery = flagSampleEvery

	// Open storage only when saving; continue without it on failure
	var saver sim.ScoreSaver
	if flagSave {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			logger.Warn("could not open scores database", "error", err)
		} else {
			defer store.Close()
			saver = store
		}
	}

	runner, err := sim.NewRunner(cfg, runCfg, saver, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Setup signal handling so Ctrl+C still prints the summary
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	result, err := runner.Run(ctx)
	if err != nil && result.Summary.Ticks == 0 {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err != nil {
		logger.Warn("run finished with error", "error", err)
	}

	printSummary(result, flagTelemetry)
}

func printSummary(r sim.Result, telemetryDir string) {
	s := r.Summary

	outcome := render(goodStyle, "time limit reached")
	if r.State.GameOver {
		outcome = render(badStyle, fmt.Sprintf("game over (%s)", r.Cause))
	}

	pairs := [][2]string{
		{"Pilot", r.Pilot},
		{"Seed", fmt.Sprintf("%d", r.Seed)},
		{"Outcome", outcome},
		{"Score", fmt.Sprintf("%d", r.State.Score)},
		{"Length", fmt.Sprintf("%d (max %d)", r.State.Length, s.MaxLength)},
		{"Time", fmt.Sprintf("%.1fs (%d ticks)", s.SimTimeSec, s.Ticks)},
		{"Food eaten", fmt.Sprintf("%d", s.Eaten)},
		{"Bad food", fmt.Sprintf("%d eaten, %d expired", s.Warnings, s.Expired)},
		{"Boost", fmt.Sprintf("%.0f%% of ticks, %d segments paid", s.BoostedRatio*100, s.BoostCost)},
		{"Nearest food", fmt.Sprintf("mean %.1f ± %.1f, p50 %.1f, p90 %.1f",
			s.NearestMean, s.NearestStd, s.NearestP50, s.NearestP90)},
	}
	if r.ScoreID != 0 {
		pairs = append(pairs, [2]string{"Saved", fmt.Sprintf("score #%d", r.ScoreID)})
	}
	if telemetryDir != "" {
		pairs = append(pairs, [2]string{"Telemetry", telemetryDir})
	}

	body := render(titleStyle, "Run summary") + "\n\n" + keyValues(pairs)
	if styled() {
		fmt.Println(boxStyle.Render(body))
		return
	}
	fmt.Println(body)
}
