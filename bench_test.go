package aead

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBIter(t *testing.T) {
	b := &B{N: 5, measurement: WallTime{}}

	n := 0
	b.Iter(func() { n++ })
	assert.Equal(t, 5, n)
	assert.GreaterOrEqual(t, b.elapsed, time.Duration(0))
}

func TestConfigSetup(t *testing.T) {
	c := &Config{Samples: -1}
	c.Setup()

	assert.Equal(t, 100, c.Samples)
	assert.Equal(t, 3*time.Second, c.SamplingTime)
	assert.Equal(t, 500*time.Millisecond, c.Warmup)
	assert.IsType(t, WallTime{}, c.Measurement)
	assert.IsType(t, GbitsFormatter{}, c.Formatter)
}

func TestGroupThroughputAnnotation(t *testing.T) {
	g := &Group{Name: "g"}
	g.Bench("a", func(*B) {})
	g.Throughput(Elements(3))
	g.Bench("b", func(*B) {})

	assert.Nil(t, g.cases[0].Throughput)
	assert.Equal(t, Elements(3), *g.cases[1].Throughput)
}

func TestDescription(t *testing.T) {
	c := &Config{N: 10, Samples: 5, Filter: "encrypt/*"}
	c.Setup()

	desc := c.Description(1, 8)
	assert.Contains(t, desc, "8 case(s) in 1 group(s)")
	assert.Contains(t, desc, "10 iteration(s) per sample")
	assert.Contains(t, desc, "filter encrypt/*")
	assert.Contains(t, desc, "5 sample(s)")
}
