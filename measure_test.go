package aead

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWallTimeAdd(t *testing.T) {
	m := WallTime{}

	a, b := 3*time.Millisecond, 700*time.Nanosecond
	assert.Equal(t, m.Add(a, b), m.Add(b, a))
	assert.Equal(t, a, m.Add(a, m.Zero()))
	assert.Equal(t, time.Duration(0), m.Zero())
}

func TestWallTimeToFloat64(t *testing.T) {
	m := WallTime{}

	assert.Equal(t, float64(123000), m.ToFloat64(123*time.Microsecond))
	assert.Equal(t, float64(0), m.ToFloat64(m.Zero()))
	assert.GreaterOrEqual(t, m.ToFloat64(m.End(m.Start())), float64(0))
}

func TestWallTimeEnd(t *testing.T) {
	m := WallTime{}

	start := m.Start()
	time.Sleep(time.Millisecond)
	elapsed := m.End(start)
	assert.GreaterOrEqual(t, elapsed, time.Millisecond)
}
