package permute

// boundedVariant is the single-multiplier cycle-walked permutation
// used for every domain size strictly larger than the Table variant's
// range and strictly smaller than the full word: both the
// half-width and full-width bounded rows of the factory table are
// this same generic type, instantiated once per word width. The
// 64-bit bounded variant is simply this type instantiated with
// W = uint64 (see DESIGN.md).
//
// Its cycle-walking structure — compute the bit-block enclosing N,
// repeatedly run the round sequence, retry the whole sequence whenever
// the result lands outside [0, N) — follows the same walking loop as
// a Feistel-network PRP, adapted here to a multiply-add-key-then-xor-shift
// round function instead of a Feistel round.
type boundedVariant[W Word] struct {
	n      W
	kBits  uint
	mask   W
	rshift uint
	rounds int
	keys   []W
	c      W
	cInv   W
}

func newBoundedVariant[W Word](n W, rng RNG, rounds int, c W) *boundedVariant[W] {
	mask, kBits, rshift := block(n)

	keys := make([]W, rounds)
	for i := range keys {
		keys[i] = W(rng.Uint64())
	}

	cInv := invOdd(c, mask)

	currentLogger().Debug().
		Uint64("n", uint64(n)).
		Uint64("kBits", uint64(kBits)).
		Int("rounds", rounds).
		Str("variant", "bounded").
		Msg("permute: constructed variant")

	return &boundedVariant[W]{
		n:      n,
		kBits:  kBits,
		mask:   mask,
		rshift: rshift,
		rounds: rounds,
		keys:   keys,
		c:      c,
		cInv:   cInv,
	}
}

// round applies one forward mix: x <- (x*c + keys[r]) mod 2^kBits, then
// x <- x xor (x >> rshift).
func (b *boundedVariant[W]) round(x W, r int) W {
	x = (x*b.c + b.keys[r]) & b.mask
	x ^= x >> b.rshift
	return x
}

// invRound inverts round: undo the xor-shift, then undo the
// multiply-add.
func (b *boundedVariant[W]) invRound(x W, r int) W {
	x = invXorShift(x, b.rshift, b.kBits, b.mask)
	x = ((x - b.keys[r]) & b.mask) * b.cInv & b.mask
	return x
}

func (b *boundedVariant[W]) encode(x W) W {
	x &= b.mask
	for {
		cur := x
		for r := 0; r < b.rounds; r++ {
			cur = b.round(cur, r)
		}
		if cur < b.n {
			return cur
		}
		x = cur
	}
}

func (b *boundedVariant[W]) decode(y W) W {
	y &= b.mask
	for {
		cur := y
		for r := b.rounds - 1; r >= 0; r-- {
			cur = b.invRound(cur, r)
		}
		if cur < b.n {
			return cur
		}
		y = cur
	}
}

func (b *boundedVariant[W]) domain() W { return b.n }
