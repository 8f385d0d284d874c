package permute

import (
	"testing"

	"github.com/stretchr/testify/require"

	"permute/internal/seedrng"
)

func TestBoundedVariantRoundTrip(t *testing.T) {
	r := require.New(t)

	sizes := []uint32{17, 100, 1000, 1 << 20, 1<<20 + 1}
	for _, n := range sizes {
		bv := newBoundedVariant(n, seedrng.New(uint64(n)), positiveBoundedRounds32(n), defaultMultiplier32())
		for _, x := range []uint32{0, 1, n / 2, n - 1} {
			y := bv.encode(x)
			r.Less(y, n, "size=%d x=%d", n, x)
			r.Equal(x, bv.decode(y), "size=%d x=%d", n, x)
		}
	}
}

func TestBoundedVariantIsBijectionSmallDomain(t *testing.T) {
	r := require.New(t)

	n := uint32(200)
	bv := newBoundedVariant(n, seedrng.New(99), positiveBoundedRounds32(n), defaultMultiplier32())

	seen := make(map[uint32]bool)
	for x := uint32(0); x < n; x++ {
		y := bv.encode(x)
		r.False(seen[y], "duplicate image %d for domain %d", y, n)
		seen[y] = true
	}
	r.Len(seen, int(n))
}

func TestBoundedVariant64RoundTrip(t *testing.T) {
	r := require.New(t)

	n := uint64(1) << 40
	bv := newBoundedVariant(n, seedrng.New(5), positiveBoundedRounds64(n), defaultMultiplier64())
	for _, x := range []uint64{0, 1, n / 2, n - 1} {
		y := bv.encode(x)
		r.Less(y, n)
		r.Equal(x, bv.decode(y))
	}
}

func TestBoundedVariantRoundsChangeOutput(t *testing.T) {
	n := uint32(512)
	a := newBoundedVariant(n, seedrng.New(88), 1, defaultMultiplier32())
	b := newBoundedVariant(n, seedrng.New(88), 5, defaultMultiplier32())

	differs := false
	for x := uint32(0); x < n; x++ {
		if a.encode(x) != b.encode(x) {
			differs = true
			break
		}
	}
	require.True(t, differs)
}
