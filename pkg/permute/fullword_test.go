package permute

import (
	"testing"

	"github.com/stretchr/testify/require"

	"permute/internal/seedrng"
)

func TestFullWordRoundTrip32(t *testing.T) {
	r := require.New(t)

	c1, c2, s1, s2, s3 := fullWordConstants32()
	fw := newFullWord[uint32](seedrng.New(1), fullWordDefaultRounds, c1, c2, s1, s2, s3)

	for _, x := range []uint32{0, 1, 0xdeadbeef, 0xffffffff, 12345} {
		y := fw.encode(x)
		r.Equal(x, fw.decode(y), "x=%#x", x)
	}
}

func TestFullWordRoundTrip64(t *testing.T) {
	r := require.New(t)

	c1, c2, s1, s2, s3 := fullWordConstants64()
	fw := newFullWord[uint64](seedrng.New(1), fullWordDefaultRounds, c1, c2, s1, s2, s3)

	for _, x := range []uint64{0, 1, 0x0123456789abcdef, 0xffffffffffffffff} {
		y := fw.encode(x)
		r.Equal(x, fw.decode(y), "x=%#x", x)
	}
}

func TestFullWordIsBijectionSample(t *testing.T) {
	r := require.New(t)

	c1, c2, s1, s2, s3 := fullWordConstants32()
	fw := newFullWord[uint32](seedrng.New(2), fullWordDefaultRounds, c1, c2, s1, s2, s3)

	seen := make(map[uint32]bool)
	for x := uint32(0); x < 4096; x++ {
		y := fw.encode(x)
		r.False(seen[y], "duplicate image for x=%d", x)
		seen[y] = true
	}
}
