// Package game runs the snake and the food factory together in the fixed
// per-tick order: steer, move, boost cost, tail collision, food.
package game

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/vovakirdan/shnek/internal/config"
	"github.com/vovakirdan/shnek/internal/core"
	"github.com/vovakirdan/shnek/internal/food"
	"github.com/vovakirdan/shnek/internal/snake"
	"github.com/vovakirdan/shnek/internal/steer"
)

// ID identifies the game in score storage.
const ID = "shnek"

// Cause records why a run ended.
type Cause string

const (
	CauseNone  Cause = ""
	CauseBoost Cause = "boost" // Boost debt came due at minimum length
	CauseTail  Cause = "tail"  // Head touched the body
)

// Game implements a single run of the toroidal snake.
type Game struct {
	cfg      config.Config
	rng      *rand.Rand
	dt       float64
	tickRate int
	tick     uint64

	snake  *snake.Snake
	food   *food.Factory
	orient *steer.Orientation

	gameOver bool
	paused   bool
	cause    Cause
	distance float64
}

// New creates a game for the given configuration. Call Reset before Step.
func New(cfg config.Config) *Game {
	return &Game{
		cfg:    cfg,
		snake:  snake.New(cfg.SnakeParams(), cfg.Snake.StartLength),
		orient: steer.New(),
	}
}

// ID returns the game identifier.
func (g *Game) ID() string { return ID }

// Title returns the display name.
func (g *Game) Title() string { return "Shnek" }

// Reset initializes/restarts the run.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.tickRate = rc.TickRate
	g.dt = rc.DeltaTime()
	g.tick = 0
	g.gameOver = false
	g.paused = false
	g.cause = CauseNone

	if g.food == nil {
		g.food = food.NewFactory(g.cfg.FoodParams(), g.rng)
	} else {
		g.food.SetRand(g.rng)
		g.food.Reset()
	}

	g.orient.Reset()
	g.snake.Reset()
	g.snake.SetDirection(g.orient.Forward(), g.orient.Up())
	g.snake.Grow(g.cfg.Snake.StartLength)

	g.distance = math.Inf(1)
	if _, d, ok := g.food.Nearest(g.snake.Position(), false); ok {
		g.distance = d
	}
}

// Step advances the run by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	// Handle restart
	if in.Has(core.ActionRestart) && g.gameOver {
		g.Reset(core.RuntimeConfig{
			TickRate: g.tickRate,
			Seed:     g.rng.Int63(),
		})
		return g.result(core.Events{Distance: g.distance})
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}

	if g.gameOver || g.paused {
		return g.result(core.Events{Distance: g.distance})
	}

	g.tick++

	g.orient.Rotate(in, g.dt)
	g.snake.SetDirection(g.orient.Forward(), g.orient.Up())
	g.snake.SetBoost(in.Has(core.ActionBoost))
	g.snake.CheckBoostAndMove(g.dt)

	var ev core.Events
	before := g.snake.Length()
	if g.snake.CheckBoostTime(g.food, g.cfg.Snake.StartLength) {
		ev.BoostCost = before - g.snake.Length()
		g.end(CauseBoost)
		ev.Distance = g.distance
		return g.result(ev)
	}
	ev.BoostCost = before - g.snake.Length()

	if g.snake.CheckTailCollision() {
		g.end(CauseTail)
		ev.Distance = g.distance
		return g.result(ev)
	}

	report := g.food.Check(g.snake)
	g.distance = report.Distance
	ev.Ate = report.Consumed
	ev.Warning = report.Warning
	ev.Distance = report.Distance
	ev.Eaten = len(report.Eaten)
	ev.Expired = report.Expired
	ev.Spawned = report.Spawned

	return g.result(ev)
}

func (g *Game) end(c Cause) {
	g.gameOver = true
	g.cause = c
}

func (g *Game) result(ev core.Events) core.StepResult {
	return core.StepResult{State: g.State(), Events: ev}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.snake.Score(),
		Length:   g.snake.Length(),
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Cause returns why the run ended, or CauseNone while it is running.
func (g *Game) Cause() Cause { return g.cause }

// Tick returns the number of simulated ticks.
func (g *Game) Tick() uint64 { return g.tick }

// Elapsed returns the simulated run time in seconds.
func (g *Game) Elapsed() float64 { return g.snake.TimeMoving() }

// Snake exposes the snake aggregate.
func (g *Game) Snake() *snake.Snake { return g.snake }

// Food exposes the food factory.
func (g *Game) Food() *food.Factory { return g.food }

// Config returns the configuration the game was built with.
func (g *Game) Config() config.Config { return g.cfg }

// Observation is the read-only view an autopilot decides from.
type Observation struct {
	Tick        uint64
	Time        float64
	Position    r3.Vec
	Forward     r3.Vec
	Up          r3.Vec
	Right       r3.Vec
	SpaceSize   float64
	Length      int
	StartLength int
	TimeBoosted float64
	BoostDebt   float64 // Boosted seconds that cost one segment
	Foods       []food.Food
	GameOver    bool
	Paused      bool
}

// Observe captures the current view for an autopilot.
func (g *Game) Observe() Observation {
	return Observation{
		Tick:        g.tick,
		Time:        g.snake.TimeMoving(),
		Position:    g.snake.Position(),
		Forward:     g.orient.Forward(),
		Up:          g.orient.Up(),
		Right:       g.orient.Right(),
		SpaceSize:   g.cfg.Space.Size,
		Length:      g.snake.Length(),
		StartLength: g.cfg.Snake.StartLength,
		TimeBoosted: g.snake.TimeBoosted(),
		BoostDebt:   g.cfg.Boost.DebtThreshold,
		Foods:       g.food.Foods(),
		GameOver:    g.gameOver,
		Paused:      g.paused,
	}
}
