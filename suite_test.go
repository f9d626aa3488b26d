package aead

import (
	"crypto/cipher"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/chacha20poly1305"
)

func newChaCha() cipher.AEAD {
	a, err := chacha20poly1305.New(make([]byte, chacha20poly1305.KeySize))
	if err != nil {
		panic(err.Error())
	}
	return a
}

func TestBenchAEADSweep(t *testing.T) {
	r := NewRunner()
	g := r.Group("chacha20poly1305-Gbps")
	BenchAEAD(g, newChaCha)

	assert.Len(t, g.cases, 8)

	want := []string{
		"encrypt/64", "decrypt/64",
		"encrypt/512", "decrypt/512",
		"encrypt/1024", "decrypt/1024",
		"encrypt/1420", "decrypt/1420",
	}
	for i, cs := range g.cases {
		assert.Equal(t, want[i], cs.ID)
		if assert.NotNil(t, cs.Throughput) {
			assert.Equal(t, ThroughputBytes, cs.Throughput.Kind)
			assert.Equal(t, float64(PayloadSizes[i/2]), cs.Throughput.Amount)
		}
	}
}

func TestBenchID(t *testing.T) {
	assert.Equal(t, "encrypt/1420", BenchID("encrypt", 1420))
	assert.Equal(t, "decrypt/64", BenchID("decrypt", 64))
}
