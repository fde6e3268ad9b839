package game

import "github.com/vovakirdan/shnek/internal/food"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying  GameStateType = "playing"
	StatePaused   GameStateType = "paused"
	StateGameOver GameStateType = "game_over"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick        uint64
	Time        float64
	Score       int
	Length      int
	HeadX       float64
	HeadY       float64
	HeadZ       float64
	TimeBoosted float64
	Normal      int
	Bad         int
	Poop        int
	MaxFood     int
	MaxFoodID   int // Highest live food ID, 0 when none
	State       GameStateType
	Cause       Cause
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	head := g.snake.Position()
	maxID := 0
	for _, f := range g.food.Foods() {
		maxID = max(maxID, f.ID)
	}

	return Snapshot{
		Tick:        g.tick,
		Time:        g.snake.TimeMoving(),
		Score:       g.snake.Score(),
		Length:      g.snake.Length(),
		HeadX:       head.X,
		HeadY:       head.Y,
		HeadZ:       head.Z,
		TimeBoosted: g.snake.TimeBoosted(),
		Normal:      len(g.food.FoodsOf(food.Normal)),
		Bad:         len(g.food.FoodsOf(food.Bad)),
		Poop:        len(g.food.FoodsOf(food.Poop)),
		MaxFood:     g.food.MaxFood(),
		MaxFoodID:   maxID,
		State:       state,
		Cause:       g.cause,
	}
}
