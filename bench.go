package aead

import (
	"fmt"
	"os"
	"time"

	"github.com/bingoohuang/gg/pkg/fla9"
	"github.com/bingoohuang/gg/pkg/ss"
)

var (
	pf = os.Getenv("AEAD_PRE")

	pN       = fla9.Int(pf+"n", 0, "Iterations per sample, 0 to derive from the sampling time")
	pSamples = fla9.Int(pf+"samples", 100, "Number of samples to collect per benchmark case")
	pTime    = fla9.Duration(pf+"d", 3*time.Second, "Sampling time per case, examples: -d10s -d3m")
	pWarmup  = fla9.Duration(pf+"warmup", 500*time.Millisecond, "Warm-up time per case")
	pFilter  = fla9.String(pf+"f", "", "Glob filter for case names, e.g. encrypt/*")
	pVerbose = fla9.Count(pf+"v", 0, "Verbose level, e.g. -v -vv")
	pOut     = fla9.String(pf+"out", "", "JSON results filename, empty to skip")
)

// Config defines the bench configuration.
type Config struct {
	N            int
	Samples      int
	SamplingTime time.Duration
	Warmup       time.Duration
	Filter       string
	Verbose      int
	OutFile      string

	Measurement Measurement
	Formatter   ValueFormatter
}

type ConfigFn func(*Config)

// WithMeasurement replaces the timing strategy.
func WithMeasurement(m Measurement) ConfigFn { return func(c *Config) { c.Measurement = m } }

// WithFormatter replaces the display scaling policy.
func WithFormatter(f ValueFormatter) ConfigFn { return func(c *Config) { c.Formatter = f } }

// WithSamples sets the per-case sample count.
func WithSamples(n int) ConfigFn { return func(c *Config) { c.Samples = n } }

// WithConfig with customized config.
func WithConfig(v *Config) ConfigFn { return func(c *Config) { *c = *v } }

// Setup setups defaults and clamps by the config.
func (c *Config) Setup() {
	c.Samples = ss.Ifi(c.Samples <= 0, 100, c.Samples)
	if c.SamplingTime <= 0 {
		c.SamplingTime = 3 * time.Second
	}
	if c.Warmup <= 0 {
		c.Warmup = 500 * time.Millisecond
	}
	if c.Measurement == nil {
		c.Measurement = WallTime{}
	}
	if c.Formatter == nil {
		c.Formatter = GbitsFormatter{}
	}
}

// Description renders a one-line summary of what is about to run.
func (c *Config) Description(groups int, cases int) string {
	desc := fmt.Sprintf(" benchmarking %d case(s) in %d group(s)", cases, groups)
	if c.N > 0 {
		desc += fmt.Sprintf(" with %d iteration(s) per sample", c.N)
	} else {
		desc += fmt.Sprintf(" for %s per case", c.SamplingTime)
	}
	if c.Filter != "" {
		desc += fmt.Sprintf(" (filter %s)", c.Filter)
	}
	return desc + fmt.Sprintf(" collecting %d sample(s).", c.Samples)
}

// B drives the measured iterations of one benchmark case. The function
// passed to Iter is the timed block; everything else the case closure
// does stays outside the measurement.
type B struct {
	N int

	measurement Measurement
	elapsed     time.Duration
}

// Iter invokes fn N times, folding each timed block's elapsed duration
// into a running total.
func (b *B) Iter(fn func()) {
	m := b.measurement
	total := m.Zero()
	for i := 0; i < b.N; i++ {
		start := m.Start()
		fn()
		total = m.Add(total, m.End(start))
	}
	b.elapsed = total
}

// Case is one registered benchmark closure with its throughput
// annotation.
type Case struct {
	ID         string
	Throughput *Throughput
	fn         func(*B)
}

// Group is an ordered collection of cases reported under a common name.
type Group struct {
	Name  string
	cases []*Case
	tp    *Throughput
}

// Throughput annotates the cases registered after this call.
func (g *Group) Throughput(tp Throughput) { g.tp = &tp }

// Bench registers a case; cases run and report in insertion order.
func (g *Group) Bench(id string, fn func(b *B)) {
	g.cases = append(g.cases, &Case{ID: id, Throughput: g.tp, fn: fn})
}

// BenchID builds a case identifier like "encrypt/1420".
func BenchID(name string, arg interface{}) string { return fmt.Sprintf("%s/%v", name, arg) }
