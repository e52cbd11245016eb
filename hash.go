// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

package smallvec

import (
	murmur "github.com/aviddiviner/go-murmur"
	"github.com/bits-and-blooms/bitset"
)

// Hash returns a 64 bit murmur (64A) fingerprint of the occupied
// elements' bytes.  Vectors with equal elements hash equally whatever
// their representation or capacity.  Struct padding is included, so
// element types with padding should be written whole.
func (v *Vector[T]) Hash(seed uint64) uint64 {
	return murmur.MurmurHash64A(asBytes(v.Data()), seed)
}

// Mismatch returns the set of indices at which a and b differ.  Indices
// present in only one of them are always included; a nil vector counts
// as empty.
func Mismatch[T comparable](a, b *Vector[T]) *bitset.BitSet {
	var x, y []T
	if a != nil {
		x = a.Data()
	}
	if b != nil {
		y = b.Data()
	}
	n := max(len(x), len(y))
	diff := bitset.New(uint(n))
	for i := 0; i < n; i++ {
		if i >= len(x) || i >= len(y) || x[i] != y[i] {
			diff.Set(uint(i))
		}
	}
	return diff
}
