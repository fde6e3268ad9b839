// Package sim drives a game headlessly with an autopilot, logging events,
// recording telemetry and saving the final score.
package sim

import (
	"context"
	"fmt"
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/shnek/internal/config"
	"github.com/vovakirdan/shnek/internal/core"
	"github.com/vovakirdan/shnek/internal/game"
	"github.com/vovakirdan/shnek/internal/registry"
	"github.com/vovakirdan/shnek/internal/storage"
	"github.com/vovakirdan/shnek/internal/telemetry"
)

// RunnerConfig holds the options of a headless run.
type RunnerConfig struct {
	// Pilot is the registered autopilot ID.
	Pilot string

	// Seconds is the simulated time limit. 0 runs until game over.
	Seconds float64

	// Runtime provides the tick rate and RNG seed.
	Runtime core.RuntimeConfig

	// TelemetryDir enables CSV output when non-empty.
	TelemetryDir string

	// SampleEvery writes one telemetry row every N ticks.
	SampleEvery int

	// MaxTicks guards against endless runs when Seconds is 0.
	MaxTicks uint64
}

// DefaultRunnerConfig returns a config with sensible defaults.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Pilot:       "greedy",
		Seconds:     120,
		Runtime:     core.DefaultConfig(),
		SampleEvery: 6,
		MaxTicks:    60 * 60 * 60,
	}
}

// ScoreSaver persists finished runs.
type ScoreSaver interface {
	SaveScore(r storage.Run) (int64, error)
}

var _ ScoreSaver = (*storage.Store)(nil)

// Result describes a finished run.
type Result struct {
	Pilot   string
	Seed    int64
	State   core.GameState
	Cause   game.Cause
	Summary telemetry.Summary
	ScoreID int64 // 0 when the score was not saved
}

// Runner runs one game with one pilot.
type Runner struct {
	cfg    RunnerConfig
	game   *game.Game
	pilot  registry.Pilot
	saver  ScoreSaver
	logger *log.Logger
}

// NewRunner creates a runner. saver may be nil to skip persistence; a nil
// logger discards log output.
func NewRunner(gameCfg config.Config, cfg RunnerConfig, saver ScoreSaver, logger *log.Logger) (*Runner, error) {
	pilot, err := registry.Create(cfg.Pilot)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if cfg.Runtime.TickRate <= 0 {
		cfg.Runtime.TickRate = core.DefaultConfig().TickRate
	}
	if cfg.MaxTicks == 0 {
		cfg.MaxTicks = DefaultRunnerConfig().MaxTicks
	}

	return &Runner{
		cfg:    cfg,
		game:   game.New(gameCfg),
		pilot:  pilot,
		saver:  saver,
		logger: logger,
	}, nil
}

// Game exposes the running game.
func (r *Runner) Game() *game.Game { return r.game }

// maxTicks converts the time limit into a tick budget.
func (r *Runner) maxTicks() uint64 {
	if r.cfg.Seconds <= 0 {
		return r.cfg.MaxTicks
	}
	return uint64(math.Ceil(r.cfg.Seconds * float64(r.cfg.Runtime.TickRate)))
}

// Run plays until game over, the time limit or context cancellation.
// Cancellation ends the run early but still returns its result.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	rt := r.cfg.Runtime
	r.game.Reset(rt)
	r.pilot.Reset(rt.Seed)

	rec, err := telemetry.NewRecorder(r.cfg.TelemetryDir, r.cfg.SampleEvery)
	if err != nil {
		return Result{}, err
	}
	defer rec.Close()
	if err := rec.WriteConfig(r.game.Config()); err != nil {
		r.logger.Warn("could not write config snapshot", "error", err)
	}

	r.logger.Info("run started",
		"pilot", r.pilot.ID(),
		"seed", rt.Seed,
		"tick_rate", rt.TickRate,
		"seconds", r.cfg.Seconds,
	)

	collector := telemetry.NewCollector()
	limit := r.maxTicks()

loop:
	for r.game.Tick() < limit {
		select {
		case <-ctx.Done():
			r.logger.Warn("run interrupted", "tick", r.game.Tick())
			break loop
		default:
		}

		in := r.pilot.Next(r.game.Observe())
		if in.Has(core.ActionQuit) {
			break
		}
		res := r.game.Step(in)
		r.logEvents(res)

		sample := telemetry.SampleOf(r.game, res)
		collector.Add(sample)
		collector.AddExpired(res.Events.Expired)
		if err := rec.Record(sample); err != nil {
			return Result{}, err
		}

		if res.State.GameOver {
			break
		}
	}

	summary := collector.Summary()
	if err := rec.WriteSummary(summary); err != nil {
		return Result{}, err
	}

	result := Result{
		Pilot:   r.pilot.ID(),
		Seed:    rt.Seed,
		State:   r.game.State(),
		Cause:   r.game.Cause(),
		Summary: summary,
	}

	r.logger.Info("run finished", append(summary.KeyVals(), "cause", string(result.Cause))...)

	if r.saver != nil {
		id, err := r.saver.SaveScore(storage.Run{
			GameID:   r.game.ID(),
			Pilot:    result.Pilot,
			Score:    result.State.Score,
			Length:   result.State.Length,
			Duration: r.game.Elapsed(),
			Seed:     rt.Seed,
			Cause:    string(result.Cause),
		})
		if err != nil {
			return result, fmt.Errorf("sim: saving score: %w", err)
		}
		result.ScoreID = id
		r.logger.Debug("score saved", "id", id)
	}

	return result, nil
}

// logEvents reports the notable events of one tick.
func (r *Runner) logEvents(res core.StepResult) {
	ev := res.Events
	tick := r.game.Tick()

	if ev.Ate {
		r.logger.Debug("food eaten",
			"tick", tick,
			"count", ev.Eaten,
			"length", res.State.Length,
			"score", res.State.Score,
			"spawned", ev.Spawned,
		)
	}
	if ev.Warning {
		r.logger.Debug("bad food eaten", "tick", tick, "length", res.State.Length)
	}
	if ev.BoostCost > 0 {
		r.logger.Debug("boost cost paid",
			"tick", tick,
			"segments", ev.BoostCost,
		)
	}
	if ev.Expired > 0 {
		r.logger.Debug("bad food expired", "tick", tick, "count", ev.Expired)
	}
	if res.State.GameOver {
		r.logger.Info("game over",
			"tick", tick,
			"cause", string(r.game.Cause()),
			"score", res.State.Score,
		)
	}
}
