package aead

import "time"

// Measurement defines how a single timed block is captured and how the
// captured durations are combined into a value usable by generic
// statistics.
type Measurement interface {
	// Start captures the current instant.
	Start() time.Time
	// End returns the time elapsed since start.
	End(start time.Time) time.Duration
	// Add accumulates two elapsed durations; associative and commutative.
	Add(a, b time.Duration) time.Duration
	// Zero returns the additive identity used as the fold seed.
	Zero() time.Duration
	// ToFloat64 expresses a duration as a float64 nanosecond count.
	ToFloat64(d time.Duration) float64
}

// WallTime measures elapsed wall time through the monotonic clock
// reading carried by time.Now, so wall-clock adjustments do not affect
// the samples.
type WallTime struct{}

func (WallTime) Start() time.Time                     { return time.Now() }
func (WallTime) End(start time.Time) time.Duration    { return time.Since(start) }
func (WallTime) Add(a, b time.Duration) time.Duration { return a + b }
func (WallTime) Zero() time.Duration                  { return 0 }
func (WallTime) ToFloat64(d time.Duration) float64    { return float64(d.Nanoseconds()) }
