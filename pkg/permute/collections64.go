package permute

import "fmt"

// Permuted64 and Unpermuted64 are the 64-bit-domain counterparts of
// Permuted32/Unpermuted32.
func Permuted64[T any](list []T, perm Permutation64) ([]T, error) {
	n, err := collectionSize64(list, perm)
	if err != nil {
		return nil, err
	}
	out := make([]T, n)
	for i := int64(0); i < int64(n); i++ {
		src, err := perm.Decode(i)
		if err != nil {
			return nil, err
		}
		out[i] = list[src]
	}
	return out, nil
}

func Unpermuted64[T any](list []T, perm Permutation64) ([]T, error) {
	n, err := collectionSize64(list, perm)
	if err != nil {
		return nil, err
	}
	out := make([]T, n)
	for i := int64(0); i < int64(n); i++ {
		src, err := perm.Encode(i)
		if err != nil {
			return nil, err
		}
		out[i] = list[src]
	}
	return out, nil
}

func collectionSize64[T any](list []T, perm Permutation64) (int, error) {
	size := perm.Size()
	if size < 0 {
		return 0, fmt.Errorf("%w: perm size=%d is not finite", ErrSizeMismatch, size)
	}
	if int64(len(list)) != size {
		return 0, fmt.Errorf("%w: perm size=%d list len=%d", ErrSizeMismatch, size, len(list))
	}
	return len(list), nil
}
