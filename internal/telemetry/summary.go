package telemetry

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Summary aggregates a whole run.
type Summary struct {
	Ticks        uint64  `csv:"ticks"`
	SimTimeSec   float64 `csv:"sim_time"`
	FinalScore   int     `csv:"final_score"`
	FinalLength  int     `csv:"final_length"`
	MaxLength    int     `csv:"max_length"`
	Eaten        int     `csv:"eaten"`
	Warnings     int     `csv:"warnings"`
	BoostCost    int     `csv:"boost_cost"`
	Expired      int     `csv:"expired"`
	LengthMean   float64 `csv:"length_mean"`
	LengthStd    float64 `csv:"length_std"`
	NearestMean  float64 `csv:"nearest_mean"`
	NearestStd   float64 `csv:"nearest_std"`
	NearestP50   float64 `csv:"nearest_p50"`
	NearestP90   float64 `csv:"nearest_p90"`
	BoostedRatio float64 `csv:"boosted_ratio"` // Share of ticks spent boosting
}

// Collector accumulates every tick of a run, independent of the CSV
// sampling interval.
type Collector struct {
	lengths []float64
	nearest []float64
	boosted int
	summary Summary
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Add folds one tick into the aggregate.
func (c *Collector) Add(s Sample) {
	c.summary.Ticks = s.Tick
	c.summary.SimTimeSec = s.SimTimeSec
	c.summary.FinalScore = s.Score
	c.summary.FinalLength = s.Length
	c.summary.MaxLength = max(c.summary.MaxLength, s.Length)
	c.summary.Eaten += s.Eaten
	c.summary.BoostCost += s.BoostCost
	if s.Warning {
		c.summary.Warnings++
	}
	if s.Boosting {
		c.boosted++
	}

	c.lengths = append(c.lengths, float64(s.Length))
	if !math.IsInf(s.Nearest, 0) && !math.IsNaN(s.Nearest) {
		c.nearest = append(c.nearest, s.Nearest)
	}
}

// AddExpired counts Bad food that timed out.
func (c *Collector) AddExpired(n int) {
	c.summary.Expired += n
}

// Summary computes the run statistics.
func (c *Collector) Summary() Summary {
	s := c.summary
	s.LengthMean, s.LengthStd = meanStd(c.lengths)
	s.NearestMean, s.NearestStd = meanStd(c.nearest)

	if len(c.nearest) > 0 {
		sorted := make([]float64, len(c.nearest))
		copy(sorted, c.nearest)
		sort.Float64s(sorted)
		s.NearestP50 = stat.Quantile(0.5, stat.Empirical, sorted, nil)
		s.NearestP90 = stat.Quantile(0.9, stat.Empirical, sorted, nil)
	}
	if n := len(c.lengths); n > 0 {
		s.BoostedRatio = float64(c.boosted) / float64(n)
	}
	return s
}

// meanStd returns the mean and the sample standard deviation; the deviation
// is 0 for fewer than two values.
func meanStd(values []float64) (mean, std float64) {
	switch len(values) {
	case 0:
		return 0, 0
	case 1:
		return values[0], 0
	}
	return stat.MeanStdDev(values, nil)
}

// KeyVals returns the headline figures as logger key/value pairs.
func (s Summary) KeyVals() []any {
	return []any{
		"ticks", s.Ticks,
		"sim_time", s.SimTimeSec,
		"score", s.FinalScore,
		"length", s.FinalLength,
		"max_length", s.MaxLength,
		"eaten", s.Eaten,
		"warnings", s.Warnings,
		"boost_cost", s.BoostCost,
	}
}
