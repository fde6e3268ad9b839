package food

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/vovakirdan/shnek/internal/core"
	"github.com/vovakirdan/shnek/internal/snake"
)

// Params holds the tunable spawn and collision parameters.
type Params struct {
	SpaceSize         float64
	CollisionDistance float64 // Head-to-food distance that counts as eating
	BadLifetime       float64 // Seconds a Bad food survives
	BadChance         float64 // Probability of a Bad spawn after eating
	BadMinScore       int     // Bad food only spawns once score exceeds this
	BadQualityDivisor int     // Bad quality is score / divisor (at least 1)
	SizeMin           float64
	SizeMax           float64
	PoopQuality       int
	InitialPosition   r3.Vec // Position of the single food present at start
	InitialQuality    int
	Difficulty        bool // Whether max food and quality scale with score
}

// DefaultParams returns the standard parameter set.
func DefaultParams() Params {
	return Params{
		SpaceSize:         100,
		CollisionDistance: 10,
		BadLifetime:       30,
		BadChance:         0.4,
		BadMinScore:       5,
		BadQualityDivisor: 5,
		SizeMin:           3,
		SizeMax:           5,
		PoopQuality:       1,
		InitialPosition:   r3.Vec{X: 10},
		InitialQuality:    1,
		Difficulty:        true,
	}
}

// Report is the outcome of one collision pass.
type Report struct {
	Distance float64 // Distance to the nearest live food, +Inf when there is none
	Consumed bool    // At least one food was eaten
	Warning  bool    // A Bad food was eaten
	Eaten    []Food
	Expired  int
	Spawned  int
}

// Factory owns all live food, split by variant.
type Factory struct {
	params       Params
	rng          core.Rand
	good         []Food
	bad          []Food
	poop         []Food
	qualityRange [2]int
	maxFood      int
	idCounter    int
}

var _ snake.PoopSpawner = (*Factory)(nil)

// NewFactory creates a factory holding the initial food.
func NewFactory(p Params, rng core.Rand) *Factory {
	f := &Factory{params: p, rng: rng}
	f.Reset()
	return f
}

// Reset drops all food and restores the single initial entity. IDs keep
// increasing across resets.
func (f *Factory) Reset() {
	f.good = f.good[:0]
	f.bad = f.bad[:0]
	f.poop = f.poop[:0]
	f.qualityRange = [2]int{1, 1}
	f.maxFood = 1
	f.good = append(f.good, Food{
		ID:       f.nextID(),
		Variant:  Normal,
		Position: core.Wrap(f.params.InitialPosition, f.params.SpaceSize),
		Front:    r3.Vec{X: 1},
		Up:       r3.Vec{Y: 1},
		Size:     f.params.SizeMin,
		Quality:  max(1, f.params.InitialQuality),
	})
}

func (f *Factory) nextID() int {
	f.idCounter++
	return f.idCounter
}

// SetRand replaces the randomness source.
func (f *Factory) SetRand(rng core.Rand) { f.rng = rng }

// FoodCount returns the number of live Normal food.
func (f *Factory) FoodCount() int { return len(f.good) }

// TotalCount returns the number of live food of every variant.
func (f *Factory) TotalCount() int { return len(f.good) + len(f.bad) + len(f.poop) }

// MaxFood returns the current cap on live Normal food.
func (f *Factory) MaxFood() int { return f.maxFood }

// QualityRange returns the inclusive quality range for new Normal food.
func (f *Factory) QualityRange() (int, int) { return f.qualityRange[0], f.qualityRange[1] }

// FoodsOf returns the live food of one variant. The slice must not be modified.
func (f *Factory) FoodsOf(v Variant) []Food {
	switch v {
	case Normal:
		return f.good
	case Bad:
		return f.bad
	case Poop:
		return f.poop
	default:
		return nil
	}
}

// Foods returns a copy of all live food in variant order.
func (f *Factory) Foods() []Food {
	all := make([]Food, 0, f.TotalCount())
	for _, v := range Variants {
		all = append(all, f.FoodsOf(v)...)
	}
	return all
}

// Nearest returns the live food closest to p, optionally restricted to
// growing variants.
func (f *Factory) Nearest(p r3.Vec, growingOnly bool) (Food, float64, bool) {
	var best Food
	bestDist := math.Inf(1)
	found := false
	for _, v := range Variants {
		if growingOnly && !v.Grows() {
			continue
		}
		for _, food := range f.FoodsOf(v) {
			if d := core.ToroidalDistance(p, food.Position, f.params.SpaceSize); d < bestDist {
				best, bestDist, found = food, d, true
			}
		}
	}
	return best, bestDist, found
}

// CheckFoodCollision runs one collision pass against the snake and returns
// the distance to the nearest food and whether anything was eaten.
func (f *Factory) CheckFoodCollision(s *snake.Snake) (float64, bool) {
	r := f.Check(s)
	return r.Distance, r.Consumed
}

// Check runs one collision pass: expires old Bad food, applies the effect
// of every food within reach of the head, recomputes the difficulty curve
// and, after any consumption, replenishes food.
func (f *Factory) Check(s *snake.Snake) Report {
	r := Report{Distance: math.Inf(1)}
	now := s.TimeMoving()
	head := s.Position()

	for _, v := range Variants {
		live := f.FoodsOf(v)
		kept := live[:0]
		for _, food := range live {
			if food.Expired(now, f.params.BadLifetime) {
				r.Expired++
				continue
			}
			d := core.ToroidalDistance(head, food.Position, f.params.SpaceSize)
			r.Distance = math.Min(r.Distance, d)
			if d < f.params.CollisionDistance {
				f.consume(s, food)
				r.Eaten = append(r.Eaten, food)
				r.Consumed = true
				r.Warning = r.Warning || !v.Grows()
				continue
			}
			kept = append(kept, food)
		}
		f.store(v, kept)
	}

	score := s.Score()
	f.updateDifficulty(score)

	if r.Consumed {
		r.Spawned += f.regenerate(now)
		if f.maybeSpawnBad(score, now) {
			r.Spawned++
		}
	}
	return r
}

func (f *Factory) store(v Variant, foods []Food) {
	switch v {
	case Normal:
		f.good = foods
	case Bad:
		f.bad = foods
	case Poop:
		f.poop = foods
	}
}

// consume applies the effect of eating food to the snake.
func (f *Factory) consume(s *snake.Snake, food Food) {
	switch food.Variant {
	case Normal, Poop:
		s.Grow(food.Quality)
	case Bad:
		s.Shrink(food.Quality)
	}
}

// updateDifficulty recomputes the quality cap and the food cap from score.
func (f *Factory) updateDifficulty(score int) {
	if !f.params.Difficulty {
		f.qualityRange = [2]int{1, 1}
		f.maxFood = 1
		return
	}
	f.qualityRange = [2]int{1, QualityCap(score)}
	f.maxFood = MaxFoodFor(score)
}

// regenerate spawns a batch of Normal food of random size in
// [1, free capacity]; nothing when the cap is already reached.
func (f *Factory) regenerate(now float64) int {
	capacity := f.maxFood - len(f.good)
	if capacity <= 0 {
		return 0
	}
	n := 1 + f.rng.Intn(capacity)
	for range n {
		lo, hi := f.qualityRange[0], f.qualityRange[1]
		quality := lo + f.rng.Intn(hi-lo+1)
		f.good = append(f.good, f.spawnRandom(Normal, quality, now))
	}
	return n
}

// maybeSpawnBad rolls for a Bad food once the score is high enough.
func (f *Factory) maybeSpawnBad(score int, now float64) bool {
	if score <= f.params.BadMinScore {
		return false
	}
	if f.rng.Float64() >= f.params.BadChance {
		return false
	}
	quality := 1
	if f.params.BadQualityDivisor > 0 {
		quality = max(1, score/f.params.BadQualityDivisor)
	}
	f.bad = append(f.bad, f.spawnRandom(Bad, quality, now))
	return true
}

// SpawnPoop drops a Poop food at the given position.
func (f *Factory) SpawnPoop(position r3.Vec, now float64) {
	f.poop = append(f.poop, Food{
		ID:          f.nextID(),
		Variant:     Poop,
		Position:    core.Wrap(position, f.params.SpaceSize),
		Front:       r3.Vec{X: 1},
		Up:          r3.Vec{Y: 1},
		Size:        f.params.SizeMin,
		Quality:     max(1, f.params.PoopQuality),
		TimeCreated: now,
	})
}

// spawnRandom creates a food at a uniformly random position with a random
// size and orientation.
func (f *Factory) spawnRandom(v Variant, quality int, now float64) Food {
	m := f.params.SpaceSize
	pos := r3.Vec{X: f.rng.Float64() * m, Y: f.rng.Float64() * m, Z: f.rng.Float64() * m}
	front := f.randomUnit()
	return Food{
		ID:          f.nextID(),
		Variant:     v,
		Position:    core.Wrap(pos, m),
		Front:       front,
		Up:          orthogonal(front),
		Size:        f.params.SizeMin + f.rng.Float64()*(f.params.SizeMax-f.params.SizeMin),
		Quality:     quality,
		TimeCreated: now,
	}
}

// randomUnit samples a direction uniformly on the unit sphere.
func (f *Factory) randomUnit() r3.Vec {
	z := 2*f.rng.Float64() - 1
	phi := 2 * math.Pi * f.rng.Float64()
	rxy := math.Sqrt(1 - z*z)
	return r3.Vec{X: rxy * math.Cos(phi), Y: rxy * math.Sin(phi), Z: z}
}

// orthogonal returns a unit vector perpendicular to v.
func orthogonal(v r3.Vec) r3.Vec {
	ref := r3.Vec{Y: 1}
	if math.Abs(v.Y) > 0.9 {
		ref = r3.Vec{X: 1}
	}
	return core.Normalize(r3.Cross(v, ref), r3.Vec{Z: 1})
}

// QualityCap is the upper bound of Normal food quality at a score.
func QualityCap(score int) int {
	if score <= 0 {
		return 1
	}
	return int(math.Round(math.Log10(float64(score+1)))) + 1
}

// MaxFoodFor is the cap on live Normal food at a score. log10(0) is
// undefined, so non-positive scores sit at the floor.
func MaxFoodFor(score int) int {
	if score <= 0 {
		return 1
	}
	return int(math.Round(math.Log10(float64(score)*2))) + 1
}
