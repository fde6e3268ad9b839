// Package telemetry records per-tick samples of a run to CSV and
// summarizes them at the end.
package telemetry

import (
	"github.com/vovakirdan/shnek/internal/core"
	"github.com/vovakirdan/shnek/internal/food"
	"github.com/vovakirdan/shnek/internal/game"
)

// Sample is one telemetry row.
type Sample struct {
	Tick        uint64  `csv:"tick"`
	SimTimeSec  float64 `csv:"sim_time"`
	Score       int     `csv:"score"`
	Length      int     `csv:"length"`
	HeadX       float64 `csv:"head_x"`
	HeadY       float64 `csv:"head_y"`
	HeadZ       float64 `csv:"head_z"`
	Boosting    bool    `csv:"boosting"`
	TimeBoosted float64 `csv:"time_boosted"`
	Nearest     float64 `csv:"nearest"` // Distance to the nearest food; +Inf when none
	Normal      int     `csv:"normal"`
	Bad         int     `csv:"bad"`
	Poop        int     `csv:"poop"`
	MaxFood     int     `csv:"max_food"`
	QualityCap  int     `csv:"quality_cap"`
	Eaten       int     `csv:"eaten"`
	Warning     bool    `csv:"warning"`
	BoostCost   int     `csv:"boost_cost"`
}

// SampleOf captures the game after a step.
func SampleOf(g *game.Game, res core.StepResult) Sample {
	s := g.Snake()
	f := g.Food()
	head := s.Position()
	_, qcap := f.QualityRange()
	return Sample{
		Tick:        g.Tick(),
		SimTimeSec:  g.Elapsed(),
		Score:       res.State.Score,
		Length:      res.State.Length,
		HeadX:       head.X,
		HeadY:       head.Y,
		HeadZ:       head.Z,
		Boosting:    s.Boosting(),
		TimeBoosted: s.TimeBoosted(),
		Nearest:     res.Events.Distance,
		Normal:      len(f.FoodsOf(food.Normal)),
		Bad:         len(f.FoodsOf(food.Bad)),
		Poop:        len(f.FoodsOf(food.Poop)),
		MaxFood:     f.MaxFood(),
		QualityCap:  qcap,
		Eaten:       res.Events.Eaten,
		Warning:     res.Events.Warning,
		BoostCost:   res.Events.BoostCost,
	}
}
