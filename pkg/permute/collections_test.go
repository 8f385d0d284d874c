package permute

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPermutedUnpermutedRoundTrip32(t *testing.T) {
	r := require.New(t)

	list := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	p, err := PermuteSeed32(int32(len(list)), 1, 0)
	r.NoError(err)

	permuted, err := Permuted32(list, p)
	r.NoError(err)
	r.ElementsMatch(list, permuted)

	back, err := Unpermuted32(permuted, p)
	r.NoError(err)
	r.Equal(list, back)
}

func TestPermuted32SizeMismatch(t *testing.T) {
	p, err := PermuteSeed32(5, 1, 0)
	require.NoError(t, err)

	_, err = Permuted32([]int{1, 2, 3}, p)
	require.ErrorIs(t, err, ErrSizeMismatch)
}

func TestPermuted32RejectsFullWordPermutation(t *testing.T) {
	p, err := PermuteSeed32(-1, 1, 0)
	require.NoError(t, err)

	_, err = Permuted32([]int{1, 2, 3}, p)
	require.ErrorIs(t, err, ErrSizeMismatch)
}

func TestPermutedUnpermutedRoundTrip64(t *testing.T) {
	r := require.New(t)

	list := []int{10, 20, 30, 40, 50}
	p, err := PermuteSeed64(int64(len(list)), 7, 0)
	r.NoError(err)

	permuted, err := Permuted64(list, p)
	r.NoError(err)
	r.ElementsMatch(list, permuted)

	back, err := Unpermuted64(permuted, p)
	r.NoError(err)
	r.Equal(list, back)
}
