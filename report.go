package aead

import (
	"math"

	"github.com/beorn7/perks/histogram"
	"github.com/beorn7/perks/quantile"
)

var (
	quantiles       = []float64{0.50, 0.90, 0.99}
	quantilesTarget = map[float64]float64{0.50: 0.01, 0.90: 0.001, 0.99: 0.001}
)

// Stats keeps running min/max/mean/stddev over inserted values.
type Stats struct {
	count                int64
	sum, sumSq, min, max float64
}

func (s *Stats) Update(v float64) {
	s.count++
	s.sum += v
	s.sumSq += v * v
	if v < s.min || s.count == 1 {
		s.min = v
	}
	if v > s.max || s.count == 1 {
		s.max = v
	}
}

func (s *Stats) Stddev() float64 {
	div := float64(s.count * (s.count - 1))
	if div == 0 {
		return 0
	}
	num := (float64(s.count) * s.sumSq) - math.Pow(s.sum, 2)
	return math.Sqrt(num / div)
}

func (s *Stats) Mean() float64 {
	if s.count == 0 {
		return 0
	}
	return s.sum / float64(s.count)
}

func (s *Stats) Min() float64 { return s.min }
func (s *Stats) Max() float64 { return s.max }

func (s *Stats) Reset() {
	s.count = 0
	s.sum = 0
	s.sumSq = 0
	s.min = 0
	s.max = 0
}

// CaseResult accumulates the raw per-iteration nanosecond samples of
// one benchmark case together with their summary statistics.
type CaseResult struct {
	Group      string
	ID         string
	Throughput *Throughput
	Iters      int
	Samples    []float64

	stats     *Stats
	quantile  *quantile.Stream
	histogram *histogram.Histogram
}

func NewCaseResult(group string, cs *Case, iters int) *CaseResult {
	return &CaseResult{
		Group:      group,
		ID:         cs.ID,
		Throughput: cs.Throughput,
		Iters:      iters,
		stats:      &Stats{},
		quantile:   quantile.NewTargeted(quantilesTarget),
		histogram:  histogram.New(8),
	}
}

// Record inserts one raw nanosecond sample.
func (c *CaseResult) Record(v float64) {
	c.Samples = append(c.Samples, v)
	c.stats.Update(v)
	c.quantile.Insert(v)
	c.histogram.Insert(v)
}

// Typical is the representative sample the formatter keys its unit
// choice on.
func (c *CaseResult) Typical() float64 { return c.stats.Mean() }

// Quantile queries the given quantile of the raw samples.
func (c *CaseResult) Quantile(q float64) float64 { return c.quantile.Query(q) }

// MachineResult is the JSON shape appended to the results file.
type MachineResult struct {
	Group   string    `json:"group"`
	Case    string    `json:"case"`
	Unit    string    `json:"unit"`
	Iters   int       `json:"iters"`
	Samples []float64 `json:"samples"`
}

// Machine renders the result for machine consumption. The samples are
// copied so display scaling never touches the recorded batch.
func (c *CaseResult) Machine(f ValueFormatter) MachineResult {
	samples := make([]float64, len(c.Samples))
	copy(samples, c.Samples)
	unit := f.ScaleForMachines(samples)

	return MachineResult{Group: c.Group, Case: c.ID, Unit: unit, Iters: c.Iters, Samples: samples}
}
