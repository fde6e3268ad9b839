// Package pilot provides autopilots that fly the snake headlessly.
// Each pilot registers itself with the registry in init().
package pilot

import (
	"github.com/vovakirdan/shnek/internal/core"
	"github.com/vovakirdan/shnek/internal/game"
	"github.com/vovakirdan/shnek/internal/registry"
)

// Cruise never steers; the snake flies a straight line around the torus.
type Cruise struct{}

func init() {
	registry.Register("cruise", func() registry.Pilot { return &Cruise{} })
}

func (*Cruise) ID() string    { return "cruise" }
func (*Cruise) Title() string { return "Cruise (straight line)" }
func (*Cruise) Reset(int64)   {}

func (*Cruise) Next(game.Observation) core.InputFrame {
	return core.NewInputFrame()
}
