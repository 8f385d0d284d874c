package permute

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPermuteRange32RoundTrip(t *testing.T) {
	r := require.New(t)

	p, err := PermuteRangeSeed32(-100, 199, 1, 0)
	r.NoError(err)
	r.Equal(int32(300), p.Size())

	for x := int32(-100); x <= 199; x++ {
		y, err := p.Encode(x)
		r.NoError(err)
		r.GreaterOrEqual(y, int32(-100))
		r.LessOrEqual(y, int32(199))
		back, err := p.Decode(y)
		r.NoError(err)
		r.Equal(x, back)
	}
}

func TestPermuteRange32RejectsDecreasing(t *testing.T) {
	_, err := PermuteRangeSeed32(10, 5, 1, 0)
	require.ErrorIs(t, err, ErrInvalidRange)
}

func TestPermuteRange32RejectsFullWordSpan(t *testing.T) {
	_, err := PermuteRangeSeed32(math.MinInt32, math.MaxInt32, 1, 0)
	require.ErrorIs(t, err, ErrRangeOverflow)
}

func TestPermuteRange32SingleElement(t *testing.T) {
	r := require.New(t)

	p, err := PermuteRangeSeed32(42, 42, 1, 0)
	r.NoError(err)
	r.Equal(int32(1), p.Size())

	y, err := p.Encode(42)
	r.NoError(err)
	r.Equal(int32(42), y)
}

func TestPermuteRange32Iterator(t *testing.T) {
	r := require.New(t)

	p, err := PermuteRangeSeed32(10, 19, 1, 0)
	r.NoError(err)

	it := p.Iterator(15)
	var got []int32
	for it.HasNext() {
		v, err := it.Next()
		r.NoError(err)
		got = append(got, v)
	}
	r.Len(got, 5)

	for i, x := range []int32{15, 16, 17, 18, 19} {
		want, err := p.Encode(x)
		r.NoError(err)
		r.Equal(want, got[i])
	}
}

func TestPermuteRange32UncheckedMatchesChecked(t *testing.T) {
	r := require.New(t)

	p, err := PermuteRangeSeed32(-5, 5, 1, 0)
	r.NoError(err)

	for x := int32(-5); x <= 5; x++ {
		checked, err := p.Encode(x)
		r.NoError(err)
		r.Equal(checked, p.EncodeUnchecked(x))
	}
}
