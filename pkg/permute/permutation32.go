package permute

import "fmt"

// Permutation32 is a keyed bijection over a domain of up to 2^32
// values, selected and parameterized by the size passed to Permute32
// or PermuteSeed32.
//
// Size uses a signed sentinel encoding: size >= 0 is the
// finite domain [0, size); size == -1 is the full 32-bit word domain;
// size < -1 is a finite domain whose true cardinality is the unsigned
// reinterpretation of size (used when that cardinality does not fit in
// a positive int32).
type Permutation32 interface {
	// Size reports the domain size as supplied to the factory,
	// sentinel-encoded.
	Size() int32

	// Encode maps x to its permuted image, validating that x lies in
	// the domain first.
	Encode(x int32) (int32, error)
	// Decode maps y back to its preimage, validating that y lies in
	// the domain first.
	Decode(y int32) (int32, error)

	// EncodeUnchecked maps x to its permuted image without validating
	// domain membership; the caller must ensure x is in range.
	EncodeUnchecked(x int32) int32
	// DecodeUnchecked maps y back to its preimage without validating
	// domain membership; the caller must ensure y is in range.
	DecodeUnchecked(y int32) int32

	// Iterator returns a fresh, non-restartable sequence of
	// Encode(offset), Encode(offset+1), ... through the end of the
	// domain. For the full-word domain the sequence wraps past the top
	// of the word and ends once every value has been produced.
	Iterator(offset int32) Iterator32
}

// engine32 is the capability set every concrete 32-bit variant
// implements; it stands in for a virtual dispatch table in place of a
// subclass hierarchy.
type engine32 interface {
	encode(uint32) uint32
	decode(uint32) uint32
}

type perm32 struct {
	rawSize int32
	full    bool
	n       uint32
	eng     engine32
}

func (p *perm32) Size() int32 { return p.rawSize }

func (p *perm32) EncodeUnchecked(x int32) int32 {
	return int32(p.eng.encode(uint32(x)))
}

func (p *perm32) DecodeUnchecked(y int32) int32 {
	return int32(p.eng.decode(uint32(y)))
}

func (p *perm32) Encode(x int32) (int32, error) {
	if !p.full && uint32(x) >= p.n {
		return 0, fmt.Errorf("%w: x=%d size=%d", ErrOutOfDomain, x, p.rawSize)
	}
	return p.EncodeUnchecked(x), nil
}

func (p *perm32) Decode(y int32) (int32, error) {
	if !p.full && uint32(y) >= p.n {
		return 0, fmt.Errorf("%w: y=%d size=%d", ErrOutOfDomain, y, p.rawSize)
	}
	return p.DecodeUnchecked(y), nil
}

func (p *perm32) Iterator(offset int32) Iterator32 {
	if p.full {
		return iterWrap32{it: newFullIterator(p.eng.encode, uint32(offset))}
	}
	return iterWrap32{it: newFiniteIterator(p.eng.encode, uint32(offset), p.n)}
}
