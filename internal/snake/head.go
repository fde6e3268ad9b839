package snake

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/vovakirdan/shnek/internal/core"
)

// Head is the continuously moving front of the snake.
type Head struct {
	position  r3.Vec
	direction r3.Vec
	up        r3.Vec
}

// advance moves the head along its direction and wraps it into the space.
func (h *Head) advance(distance, spaceSize float64) {
	h.position = core.Wrap(r3.Add(h.position, r3.Scale(distance, h.direction)), spaceSize)
}

// snapshot records the current pose at time t after travelling dist.
func (h *Head) snapshot(t, dist float64) HeadSnapshot {
	return HeadSnapshot{
		Position:  h.position,
		Direction: h.direction,
		Up:        h.up,
		Time:      t,
		Distance:  dist,
	}
}

// Segment is one body element. Its pose is derived from the head history
// every tick and never simulated on its own.
type Segment struct {
	Position r3.Vec
	Forward  r3.Vec
	Up       r3.Vec
}

func segmentFrom(s HeadSnapshot) Segment {
	return Segment{
		Position: s.Position,
		Forward:  s.Direction,
		Up:       s.Up,
	}
}
