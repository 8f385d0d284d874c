package permute

// fullWord is the FullWord variant: every value of the full W-bit word
// domain is already in range, so there is no cycle walking, only a
// fixed number of two-multiplier, three-xor-shift mixing rounds.
//
// The round shape — xor a round key in, xor-shift/multiply twice more,
// xor-shift once more, xor the second round key in — mirrors the
// SplitMix64/murmur3 finalizer family of avalanche mixers: c1/c2 for
// the 64-bit word are SplitMix64's own mixing constants and shift
// amounts (30/27/31), and c1/c2 for the 32-bit word are murmur3's
// 32-bit finalizer constants.
type fullWord[W Word] struct {
	rounds       int
	c1, c2       W
	c1Inv, c2Inv W
	k1, k2       []W
	s1, s2, s3   uint
}

func newFullWord[W Word](rng RNG, rounds int, c1, c2 W, s1, s2, s3 uint) *fullWord[W] {
	allOnes := ^W(0)

	k1 := make([]W, rounds)
	k2 := make([]W, rounds)
	for i := 0; i < rounds; i++ {
		k1[i] = W(rng.Uint64())
		k2[i] = W(rng.Uint64())
	}

	currentLogger().Debug().
		Int("rounds", rounds).
		Str("variant", "fullword").
		Msg("permute: constructed variant")

	return &fullWord[W]{
		rounds: rounds,
		c1:     c1,
		c2:     c2,
		c1Inv:  invOdd(c1, allOnes),
		c2Inv:  invOdd(c2, allOnes),
		k1:     k1,
		k2:     k2,
		s1:     s1,
		s2:     s2,
		s3:     s3,
	}
}

func (f *fullWord[W]) encode(x W) W {
	for r := 0; r < f.rounds; r++ {
		x ^= f.k1[r]
		x ^= x >> f.s1
		x *= f.c1
		x ^= x >> f.s2
		x *= f.c2
		x ^= x >> f.s3
		x ^= f.k2[r]
	}
	return x
}

func (f *fullWord[W]) decode(y W) W {
	allOnes := ^W(0)
	for r := f.rounds - 1; r >= 0; r-- {
		y ^= f.k2[r]
		y = invXorShift(y, f.s3, width[W](), allOnes)
		y *= f.c2Inv
		y = invXorShift(y, f.s2, width[W](), allOnes)
		y *= f.c1Inv
		y = invXorShift(y, f.s1, width[W](), allOnes)
		y ^= f.k1[r]
	}
	return y
}

// fullWordConstants32/64 are the fixed (multiplier, shift) parameters
// for each word width. They live here, not inside the generic type,
// because Go generics reject a constant conversion that does not fit
// every type in the type set, even on a branch that is never taken for
// the offending type — a 64-bit literal cannot be written as W(...)
// inside code generic over both uint32 and uint64.
func fullWordConstants32() (c1, c2 uint32, s1, s2, s3 uint) {
	return 0x85ebca6b, 0xc2b2ae35, 16, 13, 16
}

func fullWordConstants64() (c1, c2 uint64, s1, s2, s3 uint) {
	return 0xbf58476d1ce4e5b9, 0x94d049bb133111eb, 30, 27, 31
}
