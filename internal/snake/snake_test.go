package snake

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/vovakirdan/shnek/internal/core"
)

type poopRecorder struct {
	positions []r3.Vec
	times     []float64
}

func (p *poopRecorder) SpawnPoop(position r3.Vec, now float64) {
	p.positions = append(p.positions, position)
	p.times = append(p.times, now)
}

func near(a, b r3.Vec, space float64) bool {
	return core.ToroidalDistance(a, b, space) < 1e-6
}

func TestMoveForwardWraps(t *testing.T) {
	s := New(DefaultParams(), 0)
	s.SetPosition(r3.Vec{X: 99})
	s.SetDirection(r3.Vec{X: 1}, r3.Vec{Y: 1})

	// Distance 2 at base speed 30.
	s.MoveForward(2.0 / 30.0)

	p := s.Position()
	if math.Abs(p.X-1) > 1e-9 || p.Y != 0 || p.Z != 0 {
		t.Errorf("Position() = %v, expected {1 0 0}", p)
	}
}

func TestMoveHead(t *testing.T) {
	p := DefaultParams()
	p.BaseSpeed = 1
	s := New(p, 0)
	s.SetPosition(r3.Vec{X: 5, Y: 10, Z: 15})

	s.SetDirection(r3.Vec{X: 1}, r3.Vec{Y: 1})
	s.MoveForward(5)
	if !near(s.Position(), r3.Vec{X: 10, Y: 10, Z: 15}, 100) {
		t.Errorf("Position() = %v, expected {10 10 15}", s.Position())
	}

	s.SetDirection(r3.Vec{Y: 1}, r3.Vec{X: -1})
	s.MoveForward(150)
	if !near(s.Position(), r3.Vec{X: 10, Y: 60, Z: 15}, 100) {
		t.Errorf("Position() = %v, expected {10 60 15}", s.Position())
	}
}

func TestAddSegmentCountsLength(t *testing.T) {
	s := New(DefaultParams(), 0)
	for n := 1; n <= 7; n++ {
		s.AddSegment()
		if s.Length() != n {
			t.Fatalf("Length() after %d AddSegment() = %d", n, s.Length())
		}
	}
}

func TestAddSegmentPlacement(t *testing.T) {
	s := New(DefaultParams(), 0)
	s.SetPosition(r3.Vec{X: 2, Y: 50, Z: 50})

	s.AddSegment()
	s.AddSegment()

	segs := s.Segments()
	// First segment sits HeadSpace behind the head, wrapped across x=0.
	if !near(segs[0].Position, r3.Vec{X: 97, Y: 50, Z: 50}, 100) {
		t.Errorf("segment 0 at %v, expected {97 50 50}", segs[0].Position)
	}
	if !near(segs[1].Position, r3.Vec{X: 92, Y: 50, Z: 50}, 100) {
		t.Errorf("segment 1 at %v, expected {92 50 50}", segs[1].Position)
	}
}

func TestPopSegmentOnEmptyIsNoop(t *testing.T) {
	s := New(DefaultParams(), 0)
	if _, ok := s.PopSegment(); ok {
		t.Error("PopSegment() on empty body should report false")
	}
	if s.Length() != 0 {
		t.Errorf("Length() = %d, expected 0", s.Length())
	}
	if removed := s.Shrink(3); removed != 0 {
		t.Errorf("Shrink(3) on empty body removed %d", removed)
	}
}

func TestSegmentsReplayHeadPath(t *testing.T) {
	p := DefaultParams()
	p.BaseSpeed = 8
	p.HeadSpace = 1
	p.SegmentSpacing = 2
	s := New(p, 0)
	s.SetPosition(r3.Vec{X: 10, Y: 10, Z: 10})
	s.Grow(3)

	// dt = 0.125 s => 1 unit per tick along +X.
	for i := 0; i < 20; i++ {
		s.MoveForward(0.125)
	}

	// Head at x=30. Segment lags: 1, 3, 5 ticks => 1, 3, 5 units behind.
	want := []float64{29, 27, 25}
	for i, seg := range s.Segments() {
		if math.Abs(seg.Position.X-want[i]) > 1e-6 {
			t.Errorf("segment %d at x=%v, expected %v", i, seg.Position.X, want[i])
		}
		if !near(seg.Forward, r3.Vec{X: 1}, 100) {
			t.Errorf("segment %d forward = %v, expected +X", i, seg.Forward)
		}
	}
}

func TestSegmentsClampToOldestEarly(t *testing.T) {
	p := DefaultParams()
	p.BaseSpeed = 10
	s := New(p, 0)
	s.SetPosition(r3.Vec{X: 10})
	s.Grow(4)

	s.MoveForward(0.1)
	s.MoveForward(0.1)

	oldest, _ := s.History().Oldest()
	for i, seg := range s.Segments() {
		if !near(seg.Position, oldest.Position, 100) {
			t.Errorf("segment %d at %v, expected clamp to oldest %v", i, seg.Position, oldest.Position)
		}
	}
}

func TestSpawnImmunity(t *testing.T) {
	s := New(DefaultParams(), 0)
	s.Grow(5)
	for i := range s.segments {
		s.segments[i].Position = s.Position()
	}

	if s.CheckTailCollision() {
		t.Error("CheckTailCollision() should be false at time 0")
	}

	s.timeMoving = 1.99
	if s.CheckTailCollision() {
		t.Error("CheckTailCollision() should be false before 2 seconds")
	}

	s.timeMoving = 2.0
	if !s.CheckTailCollision() {
		t.Error("CheckTailCollision() should detect overlapping segments after immunity")
	}
}

func TestTailCollisionDistance(t *testing.T) {
	s := New(DefaultParams(), 0)
	s.timeMoving = 10
	s.SetPosition(r3.Vec{X: 50, Y: 50, Z: 50})
	s.Grow(1)

	s.segments[0].Position = r3.Vec{X: 54.1, Y: 50, Z: 50}
	if s.CheckTailCollision() {
		t.Error("segment 4.1 away should not collide (limit 4.0)")
	}

	s.segments[0].Position = r3.Vec{X: 53.9, Y: 50, Z: 50}
	if !s.CheckTailCollision() {
		t.Error("segment 3.9 away should collide (limit 4.0)")
	}
}

func TestStraightRunDoesNotSelfCollide(t *testing.T) {
	s := New(DefaultParams(), 3)
	s.Grow(3)
	for i := 0; i < 180; i++ {
		s.CheckBoostAndMove(1.0 / 60.0)
		if s.CheckTailCollision() {
			t.Fatalf("unexpected tail collision at tick %d", i)
		}
	}
}

func TestSegmentsFollowPathAcrossSpeedChange(t *testing.T) {
	p := DefaultParams()
	p.BaseSpeed = 8
	p.HeadSpace = 2
	p.SegmentSpacing = 2
	s := New(p, 0)
	s.SetPosition(r3.Vec{X: 10, Y: 10, Z: 10})
	s.Grow(3)

	// 1 unit per tick cruising, then 2 units per tick boosted.
	for i := 0; i < 10; i++ {
		s.CheckBoostAndMove(0.125)
	}
	s.SetBoost(true)
	for i := 0; i < 5; i++ {
		s.CheckBoostAndMove(0.125)
	}

	if s.Travelled() != 20 {
		t.Fatalf("Travelled() = %v, expected 20", s.Travelled())
	}
	want := []float64{28, 26, 24}
	for i, seg := range s.Segments() {
		if math.Abs(seg.Position.X-want[i]) > 1e-9 {
			t.Errorf("segment %d at x=%v, expected %v", i, seg.Position.X, want[i])
		}
	}
}

func TestBoostAfterCruiseKeepsBodySpacing(t *testing.T) {
	p := DefaultParams()
	s := New(p, 3)
	s.Grow(3)
	dt := 1.0 / 60.0
	maxGap := p.HeadSpace + p.BaseSpeed*p.BoostMultiplier*dt + 1e-6

	check := func(tick int) {
		t.Helper()
		if s.CheckTailCollision() {
			t.Fatalf("tail collision at tick %d", tick)
		}
		gap := core.ToroidalDistance(s.Position(), s.Segments()[0].Position, p.SpaceSize)
		if gap < p.HeadSpace-1e-6 || gap > maxGap {
			t.Fatalf("tick %d: segment 0 is %v from the head, expected [%v, %v]", tick, gap, p.HeadSpace, maxGap)
		}
	}

	// Cruise past spawn immunity, then hold boost for three seconds.
	for i := 0; i < 180; i++ {
		s.CheckBoostAndMove(dt)
	}
	check(180)
	s.SetBoost(true)
	for i := 181; i <= 360; i++ {
		s.CheckBoostAndMove(dt)
		check(i)
	}
	s.SetBoost(false)
	for i := 361; i <= 420; i++ {
		s.CheckBoostAndMove(dt)
		check(i)
	}
}

func TestBoostAccumulatesDebt(t *testing.T) {
	s := New(DefaultParams(), 0)

	s.SetBoost(true)
	s.CheckBoostAndMove(0.5)
	if s.TimeBoosted() != 0.5 {
		t.Errorf("TimeBoosted() = %v, expected 0.5", s.TimeBoosted())
	}
	if s.Speed() != 60 {
		t.Errorf("Speed() = %v, expected 60 while boosting", s.Speed())
	}

	s.SetBoost(false)
	s.CheckBoostAndMove(0.5)
	if s.TimeBoosted() != 0.5 {
		t.Errorf("TimeBoosted() = %v, expected no decay while released", s.TimeBoosted())
	}
	if s.Speed() != 30 {
		t.Errorf("Speed() = %v, expected base speed", s.Speed())
	}
	if s.TimeMoving() != 1.0 {
		t.Errorf("TimeMoving() = %v, expected 1.0", s.TimeMoving())
	}
}

func TestBoostTimeCostsOneSegment(t *testing.T) {
	s := New(DefaultParams(), 2)
	s.Grow(4)
	s.timeBoosted = 3.5
	tail := s.Segments()[3].Position
	poop := &poopRecorder{}

	if over := s.CheckBoostTime(poop, 2); over {
		t.Fatal("CheckBoostTime() should not end the run above start length")
	}
	if s.Length() != 3 {
		t.Errorf("Length() = %d, expected 3", s.Length())
	}
	if math.Abs(s.TimeBoosted()-0.5) > 1e-12 {
		t.Errorf("TimeBoosted() = %v, expected 0.5", s.TimeBoosted())
	}
	if len(poop.positions) != 1 || poop.positions[0] != tail {
		t.Errorf("poop spawned at %v, expected one at %v", poop.positions, tail)
	}
}

func TestBoostTimeMultiplePops(t *testing.T) {
	s := New(DefaultParams(), 0)
	s.Grow(5)
	s.timeBoosted = 9.5
	poop := &poopRecorder{}

	if s.CheckBoostTime(poop, 0) {
		t.Fatal("CheckBoostTime() should not end the run")
	}
	if s.Length() != 2 {
		t.Errorf("Length() = %d, expected 2 after three pops", s.Length())
	}
	if len(poop.positions) != 3 {
		t.Errorf("spawned %d poops, expected 3", len(poop.positions))
	}
}

func TestBoostTimeAtMinimumLengthEndsRun(t *testing.T) {
	s := New(DefaultParams(), 3)
	s.Grow(3)
	s.timeBoosted = 3.2

	if !s.CheckBoostTime(&poopRecorder{}, 3) {
		t.Error("CheckBoostTime() should signal game over at minimum length")
	}
	if s.Length() != 3 {
		t.Errorf("Length() = %d, expected body untouched", s.Length())
	}
}

func TestBoostTimeBelowThreshold(t *testing.T) {
	s := New(DefaultParams(), 0)
	s.Grow(2)
	s.timeBoosted = 3.0

	if s.CheckBoostTime(nil, 0) {
		t.Error("CheckBoostTime() should be false at exactly the threshold")
	}
	if s.Length() != 2 {
		t.Errorf("Length() = %d, expected 2", s.Length())
	}
}

func TestScore(t *testing.T) {
	s := New(DefaultParams(), 3)
	s.Grow(2)
	if s.Score() != 0 {
		t.Errorf("Score() = %d below start length, expected 0", s.Score())
	}
	s.Grow(4)
	if s.Score() != 3 {
		t.Errorf("Score() = %d, expected 3", s.Score())
	}
}

func TestCameraAnchor(t *testing.T) {
	s := New(DefaultParams(), 0)
	s.SetPosition(r3.Vec{X: 1, Y: 1, Z: 1})

	got := s.CameraAnchor()
	want := r3.Vec{X: -4, Y: 6, Z: 1}
	if r3.Norm(r3.Sub(got, want)) > 1e-9 {
		t.Errorf("CameraAnchor() = %v, expected %v (unwrapped)", got, want)
	}
}

func TestReset(t *testing.T) {
	s := New(DefaultParams(), 0)
	s.Grow(3)
	s.SetBoost(true)
	s.CheckBoostAndMove(1)
	s.SetDirection(r3.Vec{Z: 1}, r3.Vec{Y: 1})

	s.Reset()

	if s.Length() != 0 || s.History().Len() != 0 {
		t.Errorf("Reset() left length=%d history=%d", s.Length(), s.History().Len())
	}
	if s.TimeMoving() != 0 || s.TimeBoosted() != 0 || s.Travelled() != 0 {
		t.Errorf("Reset() left clocks at %v/%v/%v", s.TimeMoving(), s.TimeBoosted(), s.Travelled())
	}
	if !near(s.Direction(), r3.Vec{X: 1}, 100) || !near(s.Position(), r3.Vec{}, 100) {
		t.Errorf("Reset() head at %v facing %v", s.Position(), s.Direction())
	}
}
