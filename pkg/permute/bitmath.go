package permute

import "math/bits"

// block computes the smallest power-of-two bit block enclosing a
// domain of size n: mask = 2^kBits - 1, kBits = ceil(log2(max(n, 2))),
// rshift = floor(3*kBits/7).
//
// The max(n, 2) guards the degenerate n == 1 case (kBits would
// otherwise be 0); the kBits == width case is special-cased so the
// mask computation never shifts a 1 all the way off the top of the
// word.
func block[W Word](n W) (mask W, kBits uint, rshift uint) {
	w := width[W]()

	v := uint64(n)
	if v < 2 {
		v = 2
	}
	kBits = uint(bits.Len64(v - 1))
	if kBits == 0 {
		kBits = 1
	}
	if kBits > w {
		kBits = w
	}

	if kBits == w {
		mask = ^W(0)
	} else {
		mask = (W(1) << kBits) - 1
	}
	rshift = (kBits * 3) / 7
	return mask, kBits, rshift
}

// invOdd computes the multiplicative inverse of the odd word a modulo
// 2^kBits (represented by mask = 2^kBits - 1) via six rounds of Newton
// iteration. Six rounds double the number of correct bits each time
// starting from one correct bit, so they are always enough to invert
// mod 2^64, and therefore enough for any smaller power-of-two modulus
// too.
func invOdd[W Word](a, mask W) W {
	ia := uint64(a)
	inv := uint64(1)
	for i := 0; i < 6; i++ {
		inv = inv * (2 - ia*inv)
	}
	return W(inv) & mask
}

// invXorShift inverts the in-place update v ^= v >> s on a kBits-wide
// word (mask = 2^kBits - 1, or the all-ones word when kBits equals the
// full word width). The shift amount is doubled on each pass until it
// reaches or exceeds kBits, which is exactly the number of passes
// needed to cancel every bit the forward xor-shift could have mixed in.
func invXorShift[W Word](v W, s uint, kBits uint, mask W) W {
	for s < kBits {
		v ^= v >> s
		s *= 2
	}
	return v & mask
}
