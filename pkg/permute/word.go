package permute

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// Word is the unsigned machine word a permutation variant operates on.
// The same generic core serves both the 32-bit and 64-bit public
// interfaces; only the sign-aware boundary (Permutation32/Permutation64)
// is duplicated.
type Word interface {
	constraints.Unsigned
}

// width reports the bit width of W (32 or 64 for the word types this
// package actually instantiates).
func width[W Word]() uint {
	return uint(bits.Len64(uint64(^W(0))))
}
