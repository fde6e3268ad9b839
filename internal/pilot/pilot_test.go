package pilot

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/vovakirdan/shnek/internal/config"
	"github.com/vovakirdan/shnek/internal/core"
	"github.com/vovakirdan/shnek/internal/food"
	"github.com/vovakirdan/shnek/internal/game"
	"github.com/vovakirdan/shnek/internal/registry"
)

func observe(target r3.Vec, v food.Variant, length int) game.Observation {
	return game.Observation{
		Position:    r3.Vec{X: 50, Y: 50, Z: 50},
		Forward:     r3.Vec{X: 1},
		Up:          r3.Vec{Y: 1},
		Right:       r3.Vec{Z: 1},
		SpaceSize:   100,
		Length:      length,
		StartLength: 3,
		Foods:       []food.Food{{ID: 1, Variant: v, Position: target, Quality: 1}},
	}
}

func TestPilotsRegistered(t *testing.T) {
	for _, id := range []string{"cruise", "wander", "greedy"} {
		p, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q): %v", id, err)
		}
		if p.ID() != id {
			t.Errorf("Create(%q).ID() = %q", id, p.ID())
		}
	}
}

func TestCruiseNeverSteers(t *testing.T) {
	var c Cruise
	in := c.Next(observe(r3.Vec{X: 50, Y: 90, Z: 50}, food.Normal, 10))
	if len(in.Actions) != 0 {
		t.Errorf("cruise pressed %v", in.Actions)
	}
}

func TestGreedySteering(t *testing.T) {
	tests := []struct {
		name   string
		target r3.Vec
		want   []core.Action
		absent []core.Action
	}{
		{"ahead", r3.Vec{X: 60, Y: 50, Z: 50}, nil,
			[]core.Action{core.ActionYawLeft, core.ActionYawRight, core.ActionPitchUp, core.ActionPitchDown}},
		{"right", r3.Vec{X: 55, Y: 50, Z: 60}, []core.Action{core.ActionYawRight}, []core.Action{core.ActionYawLeft}},
		{"left", r3.Vec{X: 55, Y: 50, Z: 40}, []core.Action{core.ActionYawLeft}, []core.Action{core.ActionYawRight}},
		{"above", r3.Vec{X: 55, Y: 60, Z: 50}, []core.Action{core.ActionPitchUp}, []core.Action{core.ActionPitchDown}},
		{"below", r3.Vec{X: 55, Y: 40, Z: 50}, []core.Action{core.ActionPitchDown}, []core.Action{core.ActionPitchUp}},
		{"astern", r3.Vec{X: 40, Y: 50, Z: 50}, []core.Action{core.ActionYawRight}, nil},
		// Across the seam the food at Z=95 is 5 units to the left of Z=0.
		{"wrapped", r3.Vec{X: 5, Y: 50, Z: 95}, []core.Action{core.ActionYawLeft}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obs := observe(tt.target, food.Normal, 3)
			if tt.name == "wrapped" {
				obs.Position = r3.Vec{X: 0, Y: 50, Z: 0}
			}
			var g Greedy
			in := g.Next(obs)
			for _, a := range tt.want {
				if !in.Has(a) {
					t.Errorf("expected %v, got %v", a, in.Actions)
				}
			}
			for _, a := range tt.absent {
				if in.Has(a) {
					t.Errorf("unexpected %v", a)
				}
			}
		})
	}
}

func TestGreedyIgnoresBadFood(t *testing.T) {
	var g Greedy
	in := g.Next(observe(r3.Vec{X: 55, Y: 50, Z: 60}, food.Bad, 10))
	if len(in.Actions) != 0 {
		t.Errorf("greedy chased bad food: %v", in.Actions)
	}
}

func TestGreedyBoost(t *testing.T) {
	far := r3.Vec{X: 95, Y: 50, Z: 50} // 45 units ahead
	near := r3.Vec{X: 60, Y: 50, Z: 50}

	tests := []struct {
		name   string
		target r3.Vec
		length int
		want   bool
	}{
		{"far with spare", far, 6, true},
		{"far without spare", far, 5, false},
		{"near with spare", near, 10, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var g Greedy
			in := g.Next(observe(tt.target, food.Normal, tt.length))
			if in.Has(core.ActionBoost) != tt.want {
				t.Errorf("boost = %v, want %v", in.Has(core.ActionBoost), tt.want)
			}
		})
	}
}

func TestWanderDeterministic(t *testing.T) {
	a, b := NewWander(), NewWander()
	a.Reset(7)
	b.Reset(7)

	obs := game.Observation{}
	rotating := 0
	for i := range 500 {
		ia, ib := a.Next(obs), b.Next(obs)
		if ia.Rotating() != ib.Rotating() || len(ia.Actions) != len(ib.Actions) {
			t.Fatalf("tick %d: pilots diverged %v vs %v", i, ia.Actions, ib.Actions)
		}
		for act := range ia.Actions {
			if !ib.Has(act) {
				t.Fatalf("tick %d: pilots diverged %v vs %v", i, ia.Actions, ib.Actions)
			}
		}
		if ia.Rotating() {
			rotating++
		}
	}
	if rotating == 0 || rotating == 500 {
		t.Errorf("wander rotated on %d of 500 ticks, want a mix", rotating)
	}
}

func TestGreedyEatsInGame(t *testing.T) {
	g := game.New(config.DefaultConfig())
	g.Reset(core.RuntimeConfig{TickRate: 60, Seed: 3})

	var p Greedy
	eaten := 0
	for range 60 * 60 {
		res := g.Step(p.Next(g.Observe()))
		eaten += res.Events.Eaten
		if res.State.GameOver {
			break
		}
	}
	if eaten < 2 {
		t.Errorf("greedy ate %d food in a minute, want at least 2", eaten)
	}
}
