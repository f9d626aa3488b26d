package aead

import "crypto/cipher"

// PayloadSizes spans small control messages up to a typical MTU-bound
// packet payload.
var PayloadSizes = []int{64, 512, 1024, 1420}

// BenchAEAD registers one encrypt and one decrypt case per payload
// size, each annotated with byte throughput equal to the size. The
// buffers are zero filled; the cipher only ever sees them through the
// timed block.
//
// The decrypt cases feed the same untouched buffer straight into Open
// and drop the auth error: the ciphertext was never produced by a
// matching Seal, and only the timing of the decrypt path is under test.
func BenchAEAD(g *Group, newCipher func() cipher.AEAD) {
	for _, size := range PayloadSizes {
		buf := make([]byte, size)

		g.Throughput(Bytes(uint64(size)))

		g.Bench(BenchID("encrypt", size), func(b *B) {
			c := newCipher()
			nonce := make([]byte, c.NonceSize())
			b.Iter(func() { c.Seal(nil, nonce, buf, nil) })
		})
		g.Bench(BenchID("decrypt", size), func(b *B) {
			c := newCipher()
			nonce := make([]byte, c.NonceSize())
			b.Iter(func() { _, _ = c.Open(nil, nonce, buf, nil) })
		})
	}
}
