// Package snake implements the snake head, its pose history and the body
// segments that replay that history at a fixed arc-length lag.
package snake

import "gonum.org/v1/gonum/spatial/r3"

// Params holds the tunable movement and collision parameters of a snake.
type Params struct {
	SpaceSize           float64 // Side of the toroidal cube
	BaseSpeed           float64 // Units per second without boost
	BoostMultiplier     float64 // Speed factor while boosting
	SegmentSpacing      float64 // Arc-length between consecutive segments
	HeadSpace           float64 // Arc-length between head and first segment
	SpawnImmunity       float64 // Seconds after (re)start without tail collision
	TailCollisionFactor float64 // Collision radius as a fraction of SegmentSpacing
	BoostDebtThreshold  float64 // Boosted seconds that cost one segment
	MaxSegments         int     // Longest body the history must serve; 0 = unbounded
	StartPosition       r3.Vec
	StartForward        r3.Vec
	StartUp             r3.Vec
}

// DefaultParams returns the standard parameter set.
func DefaultParams() Params {
	return Params{
		SpaceSize:           100,
		BaseSpeed:           30,
		BoostMultiplier:     2,
		SegmentSpacing:      5,
		HeadSpace:           5,
		SpawnImmunity:       2.0,
		TailCollisionFactor: 0.8,
		BoostDebtThreshold:  3.0,
		MaxSegments:         1024,
		StartForward:        r3.Vec{X: 1},
		StartUp:             r3.Vec{Y: 1},
	}
}

// historyWindow is the longest arc-length lag any of MaxSegments segments
// can need.
func (p Params) historyWindow() float64 {
	if p.MaxSegments <= 0 {
		return 0
	}
	return p.HeadSpace + float64(p.MaxSegments)*p.SegmentSpacing
}
