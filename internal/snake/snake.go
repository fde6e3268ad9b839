package snake

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/vovakirdan/shnek/internal/core"
)

// Chase camera offsets along up and against forward.
const (
	cameraUp   = 5.0
	cameraBack = 5.0
)

// PoopSpawner receives the tail position vacated by a boost-cost pop.
type PoopSpawner interface {
	SpawnPoop(position r3.Vec, now float64)
}

// Snake owns the head, the body chain and the pose history.
type Snake struct {
	params      Params
	head        Head
	segments    []Segment // Head-to-tail order; the head is not part of it
	history     *History
	speed       float64 // Effective speed of the current tick
	travelled   float64 // Head arc length since reset
	boosting    bool
	timeMoving  float64
	timeBoosted float64
	startLength int
}

// New creates a snake at the configured start pose with an empty body.
// startLength is the body length that counts as score zero.
func New(p Params, startLength int) *Snake {
	s := &Snake{
		params:      p,
		history:     NewHistory(p.historyWindow()),
		startLength: max(0, startLength),
	}
	s.Reset()
	return s
}

// Reset clears the body and the history, zeroes the run clocks and puts the
// head back at its start pose.
func (s *Snake) Reset() {
	s.segments = s.segments[:0]
	s.history.Reset()
	s.timeMoving = 0
	s.travelled = 0
	s.timeBoosted = 0
	s.boosting = false
	s.speed = s.params.BaseSpeed
	s.head = Head{
		position:  core.Wrap(s.params.StartPosition, s.params.SpaceSize),
		direction: core.Normalize(s.params.StartForward, r3.Vec{X: 1}),
		up:        core.Normalize(s.params.StartUp, r3.Vec{Y: 1}),
	}
}

// MoveForward advances the run clock by dt, moves the head at the current
// speed, records the new pose and re-resolves every segment from history.
func (s *Snake) MoveForward(dt float64) {
	step := s.speed * dt
	s.timeMoving += dt
	s.travelled += step
	s.head.advance(step, s.params.SpaceSize)
	s.history.Push(s.head.snapshot(s.timeMoving, s.travelled))
	s.resolveSegments()
}

// lag returns how far back along the head path segment i sits.
func (s *Snake) lag(i int) float64 {
	return s.params.HeadSpace + float64(i)*s.params.SegmentSpacing
}

// resolveSegments places each segment at the latest head pose recorded at or
// before its target distance. Targets decrease along the body, so a single
// cursor walks the history backward once per tick.
func (s *Snake) resolveSegments() {
	n := s.history.Len()
	if n == 0 {
		return
	}
	cursor := n - 1
	for i := range s.segments {
		cursor = s.history.seek(cursor, s.travelled-s.lag(i))
		s.segments[i] = segmentFrom(s.history.At(cursor))
	}
}

// SetDirection sets the head heading and up vector. Zero vectors are ignored.
func (s *Snake) SetDirection(forward, up r3.Vec) {
	s.head.direction = core.Normalize(forward, s.head.direction)
	s.head.up = core.Normalize(up, s.head.up)
}

// SetPosition teleports the head. The position is wrapped into the space.
func (s *Snake) SetPosition(p r3.Vec) {
	s.head.position = core.Wrap(p, s.params.SpaceSize)
}

// Position returns the canonical head position.
func (s *Snake) Position() r3.Vec { return s.head.position }

// Direction returns the unit head heading.
func (s *Snake) Direction() r3.Vec { return s.head.direction }

// Up returns the unit head up vector.
func (s *Snake) Up() r3.Vec { return s.head.up }

// CameraAnchor returns the chase camera position: above and behind the head.
// It is not wrapped, so the camera never jumps across the space.
func (s *Snake) CameraAnchor() r3.Vec {
	offset := r3.Sub(r3.Scale(cameraUp, s.head.up), r3.Scale(cameraBack, s.head.direction))
	return r3.Add(s.head.position, offset)
}

// Length returns the number of body segments.
func (s *Snake) Length() int { return len(s.segments) }

// StartLength returns the body length that counts as score zero.
func (s *Snake) StartLength() int { return s.startLength }

// Score returns the segments gained over the start length, never negative.
func (s *Snake) Score() int { return max(0, len(s.segments)-s.startLength) }

// Segments returns the body in head-to-tail order. The slice must not be modified.
func (s *Snake) Segments() []Segment { return s.segments }

// TimeMoving returns the simulated run time.
func (s *Snake) TimeMoving() float64 { return s.timeMoving }

// Travelled returns the head arc length since reset.
func (s *Snake) Travelled() float64 { return s.travelled }

// TimeBoosted returns the boost debt accumulator.
func (s *Snake) TimeBoosted() float64 { return s.timeBoosted }

// Speed returns the effective speed of the last move.
func (s *Snake) Speed() float64 { return s.speed }

// SpaceSize returns the side of the toroidal space the snake lives in.
func (s *Snake) SpaceSize() float64 { return s.params.SpaceSize }

// History exposes the pose log for inspection.
func (s *Snake) History() *History { return s.history }

// AddSegment appends a tail segment one spacing behind the current tail (or
// one head space behind the head) along its heading. The pose is only a
// placeholder until the next MoveForward resolves it from history.
func (s *Snake) AddSegment() {
	base, forward, up, gap := s.head.position, s.head.direction, s.head.up, s.params.HeadSpace
	if n := len(s.segments); n > 0 {
		last := s.segments[n-1]
		base, forward, up, gap = last.Position, last.Forward, last.Up, s.params.SegmentSpacing
	}
	pos := core.Wrap(r3.Sub(base, r3.Scale(gap, forward)), s.params.SpaceSize)
	s.segments = append(s.segments, Segment{Position: pos, Forward: forward, Up: up})
}

// Grow appends n segments.
func (s *Snake) Grow(n int) {
	for range n {
		s.AddSegment()
	}
}

// PopSegment removes the tail segment and returns it. It is a no-op on an
// empty body.
func (s *Snake) PopSegment() (Segment, bool) {
	n := len(s.segments)
	if n == 0 {
		return Segment{}, false
	}
	tail := s.segments[n-1]
	s.segments = s.segments[:n-1]
	return tail, true
}

// Shrink pops up to n segments and returns how many were removed.
func (s *Snake) Shrink(n int) int {
	removed := 0
	for range n {
		if _, ok := s.PopSegment(); !ok {
			break
		}
		removed++
	}
	return removed
}

// SetBoost sets whether the boost control is held.
func (s *Snake) SetBoost(active bool) { s.boosting = active }

// Boosting reports whether the boost control is held.
func (s *Snake) Boosting() bool { return s.boosting }

// CheckBoostAndMove moves the snake for dt, at boosted speed while the boost
// control is held. Boosted time accumulates as debt; it does not decay while
// boost is released.
func (s *Snake) CheckBoostAndMove(dt float64) {
	s.speed = s.params.BaseSpeed
	if s.boosting {
		s.speed *= s.params.BoostMultiplier
		s.timeBoosted += dt
	}
	s.MoveForward(dt)
}

// CheckBoostTime charges the boost debt: every full threshold of boosted
// time costs one tail segment, which is dropped as poop at its position.
// It returns true when debt is due but the body is already at startLen
// segments or fewer, which ends the run.
func (s *Snake) CheckBoostTime(spawner PoopSpawner, startLen int) bool {
	threshold := s.params.BoostDebtThreshold
	if threshold <= 0 {
		return false
	}
	for s.timeBoosted > threshold {
		if len(s.segments) <= startLen {
			return true
		}
		tail, _ := s.PopSegment()
		s.timeBoosted -= threshold
		if spawner != nil {
			spawner.SpawnPoop(tail.Position, s.timeMoving)
		}
	}
	return false
}

// CheckTailCollision reports whether the head touches any body segment.
// It is always false during the spawn immunity window.
func (s *Snake) CheckTailCollision() bool {
	if s.timeMoving < s.params.SpawnImmunity {
		return false
	}
	limit := s.params.SegmentSpacing * s.params.TailCollisionFactor
	for _, seg := range s.segments {
		if core.ToroidalDistance(s.head.position, seg.Position, s.params.SpaceSize) < limit {
			return true
		}
	}
	return false
}
