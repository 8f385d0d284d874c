package permute

import "fmt"

// Permutation64 is the 64-bit-domain counterpart of Permutation32; see
// its doc comment for the sentinel size encoding.
type Permutation64 interface {
	Size() int64

	Encode(x int64) (int64, error)
	Decode(y int64) (int64, error)

	EncodeUnchecked(x int64) int64
	DecodeUnchecked(y int64) int64

	Iterator(offset int64) Iterator64
}

type engine64 interface {
	encode(uint64) uint64
	decode(uint64) uint64
}

type perm64 struct {
	rawSize int64
	full    bool
	n       uint64
	eng     engine64
}

func (p *perm64) Size() int64 { return p.rawSize }

func (p *perm64) EncodeUnchecked(x int64) int64 {
	return int64(p.eng.encode(uint64(x)))
}

func (p *perm64) DecodeUnchecked(y int64) int64 {
	return int64(p.eng.decode(uint64(y)))
}

func (p *perm64) Encode(x int64) (int64, error) {
	if !p.full && uint64(x) >= p.n {
		return 0, fmt.Errorf("%w: x=%d size=%d", ErrOutOfDomain, x, p.rawSize)
	}
	return p.EncodeUnchecked(x), nil
}

func (p *perm64) Decode(y int64) (int64, error) {
	if !p.full && uint64(y) >= p.n {
		return 0, fmt.Errorf("%w: y=%d size=%d", ErrOutOfDomain, y, p.rawSize)
	}
	return p.DecodeUnchecked(y), nil
}

func (p *perm64) Iterator(offset int64) Iterator64 {
	if p.full {
		return iterWrap64{it: newFullIterator(p.eng.encode, uint64(offset))}
	}
	return iterWrap64{it: newFiniteIterator(p.eng.encode, uint64(offset), p.n)}
}
