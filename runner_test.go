package aead

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type countingFormatter struct {
	GbitsFormatter
	values, throughputs, machines int
}

func (f *countingFormatter) ScaleValues(typical float64, v []float64) string {
	f.values++
	return f.GbitsFormatter.ScaleValues(typical, v)
}

func (f *countingFormatter) ScaleThroughputs(typical float64, tp Throughput, v []float64) string {
	f.throughputs++
	return f.GbitsFormatter.ScaleThroughputs(typical, tp, v)
}

func (f *countingFormatter) ScaleForMachines(v []float64) string {
	f.machines++
	return f.GbitsFormatter.ScaleForMachines(v)
}

func quickConfig(c *Config) {
	c.N = 2
	c.Samples = 3
	c.Verbose = 0
	c.Filter = ""
	c.OutFile = ""
}

func devNull(t *testing.T) *os.File {
	f, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	assert.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f
}

func TestRunFormatsEachBatchOnce(t *testing.T) {
	cf := &countingFormatter{}
	r := NewRunner(quickConfig, WithFormatter(cf))
	r.Output = devNull(t)

	BenchAEAD(r.Group("chacha20poly1305-Gbps"), newChaCha)
	assert.NoError(t, r.Run())

	assert.Equal(t, 8, cf.values)
	assert.Equal(t, 8, cf.throughputs)
	assert.Equal(t, 8, cf.machines)
}

func TestRunReportsGbits(t *testing.T) {
	out, err := os.CreateTemp(t.TempDir(), "report")
	assert.NoError(t, err)
	defer out.Close()

	r := NewRunner(quickConfig)
	r.Output = out

	BenchAEAD(r.Group("chacha20poly1305-Gbps"), newChaCha)
	assert.NoError(t, r.Run())

	data, err := os.ReadFile(out.Name())
	assert.NoError(t, err)
	assert.Equal(t, 8, strings.Count(string(data), "Gbits/s"))
	assert.Contains(t, string(data), "chacha20poly1305-Gbps")
}

func TestRunFilter(t *testing.T) {
	outFile := filepath.Join(t.TempDir(), "results.json")
	r := NewRunner(quickConfig, func(c *Config) {
		c.Filter = "encrypt/*"
		c.OutFile = outFile
	})
	r.Output = devNull(t)

	BenchAEAD(r.Group("chacha20poly1305-Gbps"), newChaCha)
	assert.NoError(t, r.Run())

	data, err := os.ReadFile(outFile)
	assert.NoError(t, err)

	var results []MachineResult
	assert.NoError(t, json.Unmarshal(data, &results))
	assert.Len(t, results, 4)
	for _, res := range results {
		assert.True(t, strings.HasPrefix(res.Case, "encrypt/"))
		assert.Equal(t, "ns", res.Unit)
		assert.Equal(t, 2, res.Iters)
		assert.Len(t, res.Samples, 3)
	}
}

func TestRunBadFilter(t *testing.T) {
	r := NewRunner(quickConfig, func(c *Config) { c.Filter = "[" })
	r.Output = devNull(t)

	assert.Error(t, r.Run())
}

func TestRunCaseSampleCount(t *testing.T) {
	r := NewRunner(quickConfig)

	g := r.Group("g")
	g.Bench("noop", func(b *B) { b.Iter(func() {}) })

	res := r.runCase(g.Name, g.cases[0])
	assert.Equal(t, 2, res.Iters)
	assert.Len(t, res.Samples, 3)
	for _, s := range res.Samples {
		assert.GreaterOrEqual(t, s, float64(0))
	}
}

func TestSizeIterationsNeverBelowOne(t *testing.T) {
	r := NewRunner(func(c *Config) {
		c.N = 0
		c.Samples = 2
		c.Warmup = 1 // one nanosecond, returns after the first batch
	})

	g := r.Group("g")
	g.Bench("noop", func(b *B) { b.Iter(func() {}) })

	assert.GreaterOrEqual(t, r.sizeIterations(g.cases[0]), 1)
}
