// Package food implements consumable entities and the factory that spawns,
// expires and resolves collisions for them.
package food

import "gonum.org/v1/gonum/spatial/r3"

// Variant is the closed set of food kinds.
type Variant int

const (
	Normal Variant = iota // Regular food; grows the snake
	Bad                   // Shrinks the snake and expires after a while
	Poop                  // Dropped by boosting; grows the snake
)

// Variants lists every variant in collision-check order.
var Variants = [...]Variant{Normal, Bad, Poop}

// String returns the variant name.
func (v Variant) String() string {
	switch v {
	case Normal:
		return "normal"
	case Bad:
		return "bad"
	case Poop:
		return "poop"
	default:
		return "unknown"
	}
}

// Grows reports whether eating this variant adds segments (true) or
// removes them (false).
func (v Variant) Grows() bool {
	switch v {
	case Bad:
		return false
	default:
		return true
	}
}

// Expires reports whether this variant has a limited lifetime.
func (v Variant) Expires() bool {
	return v == Bad
}

// Food is a consumable entity placed in the space.
type Food struct {
	ID          int
	Variant     Variant
	Position    r3.Vec
	Up          r3.Vec
	Front       r3.Vec
	Size        float64
	Quality     int     // Magnitude of the effect; the sign comes from Variant
	TimeCreated float64 // Run time at spawn
}

// Delta returns the signed length change caused by eating this food.
func (f Food) Delta() int {
	if f.Variant.Grows() {
		return f.Quality
	}
	return -f.Quality
}

// Expired reports whether the food outlived lifetime at run time now.
// Only expiring variants ever expire.
func (f Food) Expired(now, lifetime float64) bool {
	return f.Variant.Expires() && now-f.TimeCreated > lifetime
}
