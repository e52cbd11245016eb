// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

package smallvec

import (
	"iter"
	"unsafe"
)

// Iterator is a random access position over a vector's occupied
// elements, moving forwards or, for RBegin/REnd, backwards.  It is
// stable only until the vector is next mutated.
type Iterator[T comparable] struct {
	elems []T
	pos   int
	step  int
}

// Begin returns an iterator at the first element
func (v *Vector[T]) Begin() Iterator[T] {
	return Iterator[T]{elems: v.Data(), pos: 0, step: 1}
}

// End returns an iterator one past the last element
func (v *Vector[T]) End() Iterator[T] {
	d := v.Data()
	return Iterator[T]{elems: d, pos: len(d), step: 1}
}

// RBegin returns a reverse iterator at the last element
func (v *Vector[T]) RBegin() Iterator[T] {
	d := v.Data()
	return Iterator[T]{elems: d, pos: len(d) - 1, step: -1}
}

// REnd returns a reverse iterator one before the first element
func (v *Vector[T]) REnd() Iterator[T] {
	return Iterator[T]{elems: v.Data(), pos: -1, step: -1}
}

// Next moves one element in the iterator's direction
func (it *Iterator[T]) Next() { it.pos += it.step }

// Prev moves one element against the iterator's direction
func (it *Iterator[T]) Prev() { it.pos -= it.step }

// Advance moves n elements in the iterator's direction
func (it *Iterator[T]) Advance(n int) { it.pos += n * it.step }

// Index is the element index the iterator refers to
func (it Iterator[T]) Index() int { return it.pos }

// Valid reports whether the iterator refers to an element
func (it Iterator[T]) Valid() bool { return it.pos >= 0 && it.pos < len(it.elems) }

// Value returns the current element
func (it Iterator[T]) Value() T { return it.elems[it.pos] }

// Ptr returns the address of the current element
func (it Iterator[T]) Ptr() *T { return &it.elems[it.pos] }

// Equal reports whether both iterators are at the same position of the
// same storage
func (it Iterator[T]) Equal(o Iterator[T]) bool {
	return unsafe.SliceData(it.elems) == unsafe.SliceData(o.elems) &&
		it.pos == o.pos && it.step == o.step
}

// Distance is the number of steps from it to o
func (it Iterator[T]) Distance(o Iterator[T]) int {
	return (o.pos - it.pos) * it.step
}

// All yields index, element pairs from front to back
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, x := range v.Data() {
			if !yield(i, x) {
				return
			}
		}
	}
}

// Backward yields index, element pairs from back to front
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		d := v.Data()
		for i := len(d) - 1; i >= 0; i-- {
			if !yield(i, d[i]) {
				return
			}
		}
	}
}

// Values yields the elements from front to back
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range v.Data() {
			if !yield(x) {
				return
			}
		}
	}
}
