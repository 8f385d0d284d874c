package permute

// table is the Table variant: a materialized bijection for tiny
// domains, built once by a Fisher-Yates shuffle of the identity
// permutation. Both encode and decode are a single array lookup.
//
// Identity-initialized forward array, shuffle from the top down
// swapping in a uniformly sampled lower index, inverse array built by
// one pass over the forward array afterward.
type table[W Word] struct {
	n   W
	fwd []W
	inv []W
}

func newTable[W Word](n W, rng RNG) *table[W] {
	size := int(n)
	fwd := make([]W, size)
	for i := range fwd {
		fwd[i] = W(i)
	}
	for i := size - 1; i > 0; i-- {
		j := uniformBelow(rng, uint64(i+1))
		fwd[i], fwd[j] = fwd[j], fwd[i]
	}

	inv := make([]W, size)
	for i, y := range fwd {
		inv[y] = W(i)
	}

	currentLogger().Debug().
		Uint64("n", uint64(n)).
		Str("variant", "table").
		Msg("permute: constructed variant")

	return &table[W]{n: n, fwd: fwd, inv: inv}
}

func (t *table[W]) encode(x W) W { return t.fwd[x] }
func (t *table[W]) decode(y W) W { return t.inv[y] }
func (t *table[W]) domain() W    { return t.n }
