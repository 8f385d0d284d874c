package permute

import (
	"fmt"

	"permute/internal/seedrng"
)

// RangePermutation32 shifts a finite base permutation of size
// b-a+1 onto the contiguous window [a, b]:
// Encode(v) = a + base.Encode(v - a), Decode(v) = a + base.Decode(v - a).
// The shift arithmetic intentionally wraps modulo 2^32, exactly
// matching the bit-pattern semantics the base permutation already uses
// at its own domain boundary.
type RangePermutation32 struct {
	base Permutation32
	a    int32
}

func (r *RangePermutation32) Size() int32 { return r.base.Size() }

func (r *RangePermutation32) Encode(v int32) (int32, error) {
	enc, err := r.base.Encode(v - r.a)
	if err != nil {
		return 0, err
	}
	return r.a + enc, nil
}

func (r *RangePermutation32) Decode(v int32) (int32, error) {
	dec, err := r.base.Decode(v - r.a)
	if err != nil {
		return 0, err
	}
	return r.a + dec, nil
}

func (r *RangePermutation32) EncodeUnchecked(v int32) int32 {
	return r.a + r.base.EncodeUnchecked(v-r.a)
}

func (r *RangePermutation32) DecodeUnchecked(v int32) int32 {
	return r.a + r.base.DecodeUnchecked(v-r.a)
}

func (r *RangePermutation32) Iterator(offset int32) Iterator32 {
	return &rangeIterator32{base: r.base.Iterator(offset - r.a), a: r.a}
}

type rangeIterator32 struct {
	base Iterator32
	a    int32
}

func (it *rangeIterator32) HasNext() bool { return it.base.HasNext() }

func (it *rangeIterator32) Next() (int32, error) {
	v, err := it.base.Next()
	if err != nil {
		return 0, err
	}
	return it.a + v, nil
}

// PermuteRange32 validates [a, b] and wraps a finite base permutation
// of size b-a+1 in a RangePermutation32.
func PermuteRange32(a, b int32, rng RNG, rounds int) (Permutation32, error) {
	size, err := rangeSizeArg32(a, b)
	if err != nil {
		return nil, err
	}
	base, err := Permute32(size, rng, rounds)
	if err != nil {
		return nil, err
	}
	return &RangePermutation32{base: base, a: a}, nil
}

// PermuteRangeSeed32 is the seed-driven counterpart of PermuteRange32.
func PermuteRangeSeed32(a, b int32, seed uint64, rounds int) (Permutation32, error) {
	return PermuteRange32(a, b, seedrng.New(seed), rounds)
}

func rangeSizeArg32(a, b int32) (int32, error) {
	if b < a {
		return 0, fmt.Errorf("%w: a=%d b=%d", ErrInvalidRange, a, b)
	}
	diff := uint32(b) - uint32(a)
	if diff >= ^uint32(0)-1 {
		// a..b spans the entire 32-bit word (length 2^32) or all of it
		// but one value (length 2^32-1, whose int32 encoding is the
		// FullWord sentinel -1); neither length has a finite size encoding.
		return 0, fmt.Errorf("%w: a=%d b=%d", ErrRangeOverflow, a, b)
	}
	length := diff + 1
	return int32(length), nil
}
