package aead

import (
	"fmt"
	"os"

	"github.com/bingoohuang/gg/pkg/ss"
	"github.com/gobwas/glob"
	"github.com/samber/lo"
	"go.uber.org/multierr"
)

// Runner owns the registered groups and drives them to completion one
// case at a time. Cases are independent; nothing is shared across them
// and no case runs concurrently with another.
type Runner struct {
	conf   *Config
	groups []*Group

	// Output defaults to os.Stdout.
	Output *os.File
}

// NewRunner creates a runner from the command line flags, adjusted by
// the given config functions.
func NewRunner(fns ...ConfigFn) *Runner {
	c := &Config{
		N: *pN, Samples: *pSamples, SamplingTime: *pTime, Warmup: *pWarmup,
		Filter: *pFilter, Verbose: *pVerbose, OutFile: *pOut,
	}
	for _, f := range fns {
		f(c)
	}

	c.Setup()

	return &Runner{conf: c, Output: os.Stdout}
}

// Group registers a named benchmark group.
func (r *Runner) Group(name string) *Group {
	g := &Group{Name: name}
	r.groups = append(r.groups, g)
	return g
}

// Run executes every registered case matching the filter and prints one
// report per group. Each case's sample batch is formatted exactly once.
func (r *Runner) Run() error {
	match := func(string) bool { return true }
	if f := r.conf.Filter; f != "" {
		g, err := glob.Compile(f)
		if err != nil {
			return fmt.Errorf("bad filter %q: %w", f, err)
		}
		match = g.Match
	}

	total := lo.SumBy(r.groups, func(g *Group) int { return len(g.cases) })
	fmt.Fprintln(r.Output, "aead-bench"+r.conf.Description(len(r.groups), total))

	out := NewResultFile(r.conf.OutFile)
	p := &Printer{config: r.conf, out: r.Output}

	var err error
	for _, g := range r.groups {
		var results []*CaseResult
		for _, cs := range g.cases {
			if !match(cs.ID) {
				continue
			}

			res := r.runCase(g.Name, cs)
			results = append(results, res)
			if r.conf.Verbose >= 2 {
				fmt.Fprintf(r.Output, "%s/%s: %d sample(s) of %d iteration(s) collected\n",
					g.Name, cs.ID, len(res.Samples), res.Iters)
			}

			err = multierr.Append(err, out.WriteJSON(res.Machine(r.conf.Formatter)))
		}

		if len(results) > 0 {
			p.PrintGroup(g.Name, results)
		}
	}

	return multierr.Append(err, out.Close())
}

// runCase collects the configured number of samples for one case. A
// sample is the mean per-iteration duration of one iteration batch.
func (r *Runner) runCase(group string, cs *Case) *CaseResult {
	m := r.conf.Measurement

	iters := r.conf.N
	if iters <= 0 {
		iters = r.sizeIterations(cs)
	}

	res := NewCaseResult(group, cs, iters)
	for i := 0; i < r.conf.Samples; i++ {
		b := &B{N: iters, measurement: m}
		cs.fn(b)
		res.Record(m.ToFloat64(b.elapsed) / float64(iters))
	}

	return res
}

// sizeIterations warms the case up for the configured time, doubling
// the batch size as it goes, then sizes one sample batch so the whole
// case roughly fits the sampling time.
func (r *Runner) sizeIterations(cs *Case) int {
	m := r.conf.Measurement

	n := 1
	spent := m.Zero()
	perOp := 0.0
	for spent < r.conf.Warmup {
		b := &B{N: n, measurement: m}
		cs.fn(b)
		spent = m.Add(spent, b.elapsed)
		perOp = m.ToFloat64(b.elapsed) / float64(n)

		if n >= 1<<24 {
			break
		}
		n *= 2
	}

	if perOp <= 0 {
		return 1
	}

	budget := float64(r.conf.SamplingTime.Nanoseconds()) / float64(r.conf.Samples)
	iters := int(budget / perOp)
	return ss.Ifi(iters < 1, 1, iters)
}
