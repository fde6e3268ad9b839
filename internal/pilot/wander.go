package pilot

import (
	"math/rand"

	"github.com/vovakirdan/shnek/internal/core"
	"github.com/vovakirdan/shnek/internal/game"
	"github.com/vovakirdan/shnek/internal/registry"
)

var wanderActions = []core.Action{
	core.ActionYawLeft,
	core.ActionYawRight,
	core.ActionPitchUp,
	core.ActionPitchDown,
	core.ActionRollLeft,
	core.ActionRollRight,
}

// Burst lengths in ticks.
const (
	wanderMinBurst = 10
	wanderMaxBurst = 60
)

// Wander alternates random rotation bursts with straight flight.
type Wander struct {
	rng       *rand.Rand
	action    core.Action
	remaining int
}

func init() {
	registry.Register("wander", func() registry.Pilot { return NewWander() })
}

// NewWander creates a wander pilot seeded with 0.
func NewWander() *Wander {
	w := &Wander{}
	w.Reset(0)
	return w
}

func (*Wander) ID() string    { return "wander" }
func (*Wander) Title() string { return "Wander (random bursts)" }

func (w *Wander) Reset(seed int64) {
	w.rng = rand.New(rand.NewSource(seed))
	w.action = core.ActionNone
	w.remaining = 0
}

func (w *Wander) Next(game.Observation) core.InputFrame {
	if w.remaining <= 0 {
		w.remaining = wanderMinBurst + w.rng.Intn(wanderMaxBurst-wanderMinBurst+1)
		if w.action == core.ActionNone {
			w.action = wanderActions[w.rng.Intn(len(wanderActions))]
		} else {
			w.action = core.ActionNone
		}
	}
	w.remaining--

	in := core.NewInputFrame()
	if w.action != core.ActionNone {
		in.Set(w.action)
	}
	return in
}
