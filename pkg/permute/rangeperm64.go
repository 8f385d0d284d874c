package permute

import (
	"fmt"

	"permute/internal/seedrng"
)

// RangePermutation64 is the 64-bit-domain counterpart of
// RangePermutation32.
type RangePermutation64 struct {
	base Permutation64
	a    int64
}

func (r *RangePermutation64) Size() int64 { return r.base.Size() }

func (r *RangePermutation64) Encode(v int64) (int64, error) {
	enc, err := r.base.Encode(v - r.a)
	if err != nil {
		return 0, err
	}
	return r.a + enc, nil
}

func (r *RangePermutation64) Decode(v int64) (int64, error) {
	dec, err := r.base.Decode(v - r.a)
	if err != nil {
		return 0, err
	}
	return r.a + dec, nil
}

func (r *RangePermutation64) EncodeUnchecked(v int64) int64 {
	return r.a + r.base.EncodeUnchecked(v-r.a)
}

func (r *RangePermutation64) DecodeUnchecked(v int64) int64 {
	return r.a + r.base.DecodeUnchecked(v-r.a)
}

func (r *RangePermutation64) Iterator(offset int64) Iterator64 {
	return &rangeIterator64{base: r.base.Iterator(offset - r.a), a: r.a}
}

type rangeIterator64 struct {
	base Iterator64
	a    int64
}

func (it *rangeIterator64) HasNext() bool { return it.base.HasNext() }

func (it *rangeIterator64) Next() (int64, error) {
	v, err := it.base.Next()
	if err != nil {
		return 0, err
	}
	return it.a + v, nil
}

// PermuteRange64 validates [a, b] and wraps a finite base permutation
// of size b-a+1 in a RangePermutation64.
func PermuteRange64(a, b int64, rng RNG, rounds int) (Permutation64, error) {
	size, err := rangeSizeArg64(a, b)
	if err != nil {
		return nil, err
	}
	base, err := Permute64(size, rng, rounds)
	if err != nil {
		return nil, err
	}
	return &RangePermutation64{base: base, a: a}, nil
}

// PermuteRangeSeed64 is the seed-driven counterpart of PermuteRange64.
func PermuteRangeSeed64(a, b int64, seed uint64, rounds int) (Permutation64, error) {
	return PermuteRange64(a, b, seedrng.New(seed), rounds)
}

func rangeSizeArg64(a, b int64) (int64, error) {
	if b < a {
		return 0, fmt.Errorf("%w: a=%d b=%d", ErrInvalidRange, a, b)
	}
	diff := uint64(b) - uint64(a)
	if diff >= ^uint64(0)-1 {
		return 0, fmt.Errorf("%w: a=%d b=%d", ErrRangeOverflow, a, b)
	}
	length := diff + 1
	return int64(length), nil
}
