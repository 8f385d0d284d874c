package permute

import (
	"fmt"

	"permute/internal/seedrng"
)

// Permute32 builds a 32-bit-domain permutation from an explicit RNG,
// dispatching to a concrete variant by size:
//
//	size == -1        -> FullWord
//	size <  -1        -> bounded variant, N = unsigned reinterpretation of size
//	0 <= size <= 16    -> Table
//	size > 16          -> bounded variant, N = size
//
// rounds == 0 means "use the default for the chosen variant's size
// band"; rounds < 0 is a configuration error.
func Permute32(size int32, rng RNG, rounds int) (Permutation32, error) {
	if rounds < 0 {
		return nil, fmt.Errorf("%w: rounds=%d", ErrInvalidRounds, rounds)
	}

	switch {
	case size == -1:
		r := rounds
		if r == 0 {
			r = fullWordDefaultRounds
		}
		c1, c2, s1, s2, s3 := fullWordConstants32()
		eng := newFullWord[uint32](rng, r, c1, c2, s1, s2, s3)
		return &perm32{rawSize: size, full: true, eng: eng}, nil

	case size < -1:
		n := uint32(size)
		r := rounds
		if r == 0 {
			r = reinterpretedBoundedRounds32(n)
		}
		eng := newBoundedVariant(n, rng, r, defaultMultiplier32())
		return &perm32{rawSize: size, n: n, eng: eng}, nil

	case size >= 0 && size <= 16:
		n := uint32(size)
		eng := newTable(n, rng)
		return &perm32{rawSize: size, n: n, eng: eng}, nil

	default: // size > 16
		n := uint32(size)
		r := rounds
		if r == 0 {
			r = positiveBoundedRounds32(n)
		}
		eng := newBoundedVariant(n, rng, r, defaultMultiplier32())
		return &perm32{rawSize: size, n: n, eng: eng}, nil
	}
}

// PermuteSeed32 builds a 32-bit-domain permutation from a 64-bit seed,
// constructing a deterministic RNG to drive it.
func PermuteSeed32(size int32, seed uint64, rounds int) (Permutation32, error) {
	return Permute32(size, seedrng.New(seed), rounds)
}

// Permute64 is the 64-bit-domain counterpart of Permute32.
func Permute64(size int64, rng RNG, rounds int) (Permutation64, error) {
	if rounds < 0 {
		return nil, fmt.Errorf("%w: rounds=%d", ErrInvalidRounds, rounds)
	}

	switch {
	case size == -1:
		r := rounds
		if r == 0 {
			r = fullWordDefaultRounds
		}
		c1, c2, s1, s2, s3 := fullWordConstants64()
		eng := newFullWord[uint64](rng, r, c1, c2, s1, s2, s3)
		return &perm64{rawSize: size, full: true, eng: eng}, nil

	case size < -1:
		n := uint64(size)
		r := rounds
		if r == 0 {
			r = reinterpretedBoundedRounds64(n)
		}
		eng := newBoundedVariant(n, rng, r, defaultMultiplier64())
		return &perm64{rawSize: size, n: n, eng: eng}, nil

	case size >= 0 && size <= 16:
		n := uint64(size)
		eng := newTable(n, rng)
		return &perm64{rawSize: size, n: n, eng: eng}, nil

	default: // size > 16
		n := uint64(size)
		r := rounds
		if r == 0 {
			r = positiveBoundedRounds64(n)
		}
		eng := newBoundedVariant(n, rng, r, defaultMultiplier64())
		return &perm64{rawSize: size, n: n, eng: eng}, nil
	}
}

// PermuteSeed64 is the 64-bit-domain counterpart of PermuteSeed32.
func PermuteSeed64(size int64, seed uint64, rounds int) (Permutation64, error) {
	return Permute64(size, seedrng.New(seed), rounds)
}

const fullWordDefaultRounds = 2

// defaultMultiplier32/64 are the fixed odd per-variant multipliers used
// by the bounded variant (a fixed public constant per variant is
// sufficient since the keys, not the multiplier, carry the
// per-instance randomness). Both are murmur3-family finalizer primes.
// The 64-bit one differs from the 64-bit FullWord constants in
// fullword.go; the 32-bit one is the same value as the 32-bit FullWord c1.
func defaultMultiplier32() uint32 { return 0x85ebca6b }
func defaultMultiplier64() uint64 { return 0xff51afd7ed558ccd }

// positiveBoundedRounds32/reinterpretedBoundedRounds32 implement the
// two 32-bit default-round bands for the bounded variant.
func positiveBoundedRounds32(n uint32) int {
	switch {
	case n <= 1<<10:
		return 3
	case n <= 1<<20:
		return 4
	default:
		return 6
	}
}

func reinterpretedBoundedRounds32(n uint32) int {
	switch {
	case n <= 1<<16:
		return 3
	case n <= 1<<24:
		return 4
	default:
		return 5
	}
}

// positiveBoundedRounds64/reinterpretedBoundedRounds64 extrapolate the
// 32-bit default-round bands to 64-bit words, doubling the bit-width
// thresholds proportionally (see DESIGN.md's open-question decisions).
func positiveBoundedRounds64(n uint64) int {
	switch {
	case n <= 1<<20:
		return 3
	case n <= 1<<40:
		return 4
	default:
		return 6
	}
}

func reinterpretedBoundedRounds64(n uint64) int {
	switch {
	case n <= 1<<32:
		return 3
	case n <= 1<<48:
		return 4
	default:
		return 5
	}
}
