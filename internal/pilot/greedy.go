package pilot

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/vovakirdan/shnek/internal/core"
	"github.com/vovakirdan/shnek/internal/game"
	"github.com/vovakirdan/shnek/internal/registry"
)

const (
	// greedyBoostDistance is the target distance above which greedy boosts.
	greedyBoostDistance = 40.0
	// greedySpareSegments is how many segments above the start length
	// greedy keeps before it spends any on boost.
	greedySpareSegments = 2
	// greedyAimTolerance is the lateral offset, as a fraction of the target
	// distance, that still counts as straight ahead.
	greedyAimTolerance = 0.05
)

// Greedy always steers toward the nearest growing food, consequences be damned.
type Greedy struct{}

func init() {
	registry.Register("greedy", func() registry.Pilot { return &Greedy{} })
}

func (*Greedy) ID() string    { return "greedy" }
func (*Greedy) Title() string { return "Greedy (nearest food)" }
func (*Greedy) Reset(int64)   {}

func (*Greedy) Next(obs game.Observation) core.InputFrame {
	in := core.NewInputFrame()

	delta, dist, ok := nearestTarget(obs)
	if !ok || dist == 0 {
		return in
	}

	lateral := r3.Dot(delta, obs.Right)
	vertical := r3.Dot(delta, obs.Up)
	ahead := r3.Dot(delta, obs.Forward)
	tol := greedyAimTolerance * dist

	switch {
	case lateral > tol:
		in.Set(core.ActionYawRight)
	case lateral < -tol:
		in.Set(core.ActionYawLeft)
	case ahead < 0 && math.Abs(vertical) <= tol:
		// Dead astern: pick a side.
		in.Set(core.ActionYawRight)
	}

	switch {
	case vertical > tol:
		in.Set(core.ActionPitchUp)
	case vertical < -tol:
		in.Set(core.ActionPitchDown)
	}

	if dist > greedyBoostDistance && obs.Length-obs.StartLength > greedySpareSegments {
		in.Set(core.ActionBoost)
	}
	return in
}

// nearestTarget returns the minimal-image displacement to the closest food
// that makes the snake grow.
func nearestTarget(obs game.Observation) (r3.Vec, float64, bool) {
	var best r3.Vec
	bestDist := math.Inf(1)
	found := false
	for _, f := range obs.Foods {
		if !f.Variant.Grows() {
			continue
		}
		d := core.ToroidalDelta(obs.Position, f.Position, obs.SpaceSize)
		if n := r3.Norm(d); n < bestDist {
			best, bestDist, found = d, n, true
		}
	}
	return best, bestDist, found
}
