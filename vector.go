// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

package smallvec

import (
	"cmp"
	"fmt"
	"slices"
	"unsafe"
)

// PushBack appends x, promoting or growing storage when full
func (v *Vector[T]) PushBack(x T) {
	r := v.rep()
	n := r.len()
	if n >= r.cap() {
		v.mustEnsureCapacity(n+1, false)
		r = v.rep()
	}
	r.slots()[n] = x
	r.setLen(n + 1)
}

// Append appends every element of xs in order
func (v *Vector[T]) Append(xs ...T) {
	v.MoveInsertSlice(v.Len(), xs)
}

// AppendVector appends the elements of o.  A nil o is ignored.
func (v *Vector[T]) AppendVector(o *Vector[T]) {
	if o == nil {
		return
	}
	v.InsertVector(v.Len(), o)
}

// PopBack removes the last element, if any.  Storage is not reclaimed
// and the vacated slot keeps its value until it is overwritten.
func (v *Vector[T]) PopBack() {
	r := v.rep()
	if n := r.len(); n > 0 {
		r.setLen(n - 1)
	}
}

// Insert writes x at place without moving any other element.  An
// element already at place is overwritten.  When place is at or past
// the end the vector grows to place+1; slots between the old end and
// place keep whatever the storage held.
func (v *Vector[T]) Insert(place int, x T) {
	if place >= v.Len() {
		v.extend(place + 1)
	}
	v.rep().slots()[place] = x
}

// InsertSlice writes xs starting at place without moving any other
// element, overwriting what was there and growing as needed.
func (v *Vector[T]) InsertSlice(place int, xs []T) {
	if len(xs) == 0 {
		return
	}
	xs = v.detach(xs)
	end := place + len(xs)
	if end > v.Len() {
		v.extend(end)
	}
	copy(v.rep().slots()[place:end], xs)
}

// InsertVector is InsertSlice with the elements of o.  A nil o is
// ignored.
func (v *Vector[T]) InsertVector(place int, o *Vector[T]) {
	if o == nil {
		return
	}
	v.InsertSlice(place, o.Data())
}

// MoveInsert inserts x at place, shifting the elements from place to
// the end up by one so that the order of every existing element is
// kept.  When place is past the end it behaves like Insert.
//
// This is the expensive insert: it moves the whole tail.
func (v *Vector[T]) MoveInsert(place int, x T) {
	v.openGap(place, 1)[place] = x
}

// MoveInsertSlice inserts xs at place, shifting the tail up by len(xs)
func (v *Vector[T]) MoveInsertSlice(place int, xs []T) {
	if len(xs) == 0 {
		return
	}
	xs = v.detach(xs)
	copy(v.openGap(place, len(xs))[place:], xs)
}

// MoveInsertVector is MoveInsertSlice with the elements of o.  A nil o
// is ignored.
func (v *Vector[T]) MoveInsertVector(place int, o *Vector[T]) {
	if o == nil {
		return
	}
	v.MoveInsertSlice(place, o.Data())
}

// detach returns xs, or a copy of it when it aliases storage of v that
// the caller is about to move or overwrite
func (v *Vector[T]) detach(xs []T) []T {
	s := v.rep().slots()
	if len(s) == 0 {
		return xs
	}
	lo := uintptr(unsafe.Pointer(unsafe.SliceData(s)))
	hi := lo + uintptr(len(s))*elemSize[T]()
	if p := uintptr(unsafe.Pointer(unsafe.SliceData(xs))); p >= lo && p < hi {
		return slices.Clone(xs)
	}
	return xs
}

// extend grows the occupied count to n
func (v *Vector[T]) extend(n int) {
	v.mustEnsureCapacity(n, false)
	v.rep().setLen(n)
}

// openGap makes room for count elements at place and returns the
// storage slots
func (v *Vector[T]) openGap(place, count int) []T {
	if place < 0 {
		panic(fmt.Sprintf("smallvec: negative insert position %d", place))
	}
	n := v.Len()
	if place >= n {
		v.extend(place + count)
		return v.rep().slots()
	}
	v.mustEnsureCapacity(n+count, false)
	r := v.rep()
	s := r.slots()
	relocate(s[place+count:], s[place:], n-place)
	r.setLen(n + count)
	return s
}

// At returns a pointer to element i.  Indexing at or past the end is
// an implicit resize: the vector grows to i+1 elements first, so the
// slot is always writable.  The pointer is invalidated by any call
// that promotes, demotes or reallocates.
func (v *Vector[T]) At(i int) *T {
	if i >= v.Len() {
		v.extend(i + 1)
	}
	return &v.rep().slots()[i]
}

// Get returns element i, which must be below Len.  It never grows the
// vector.
func (v *Vector[T]) Get(i int) T {
	return v.Data()[i]
}

// TryGet returns element i, or ErrOutOfRange
func (v *Vector[T]) TryGet(i int) (T, error) {
	if n := v.Len(); i < 0 || i >= n {
		var zero T
		return zero, fmt.Errorf("%w: index %d, length %d", ErrOutOfRange, i, n)
	}
	return v.Get(i), nil
}

// Set overwrites element i, which must be below Len
func (v *Vector[T]) Set(i int, x T) {
	v.Data()[i] = x
}

// Erase resets element i, which must be below Len, to the zero value
func (v *Vector[T]) Erase(i int) {
	var zero T
	v.Data()[i] = zero
}

// SwapElements exchanges elements i and j, growing the vector as At
// does if either is past the end
func (v *Vector[T]) SwapElements(i, j int) {
	if i == j {
		return
	}
	if m := max(i, j); m >= v.Len() {
		v.extend(m + 1)
	}
	s := v.Data()
	s[i], s[j] = s[j], s[i]
}

// Resize sets the occupied count to n.  New slots are not zeroed.
// Growing past capacity goes through the growth policy; shrinking a
// heap vector to a size that fits inline demotes it.
func (v *Vector[T]) Resize(n int) {
	if n < 0 {
		panic(fmt.Sprintf("smallvec: negative size %d", n))
	}
	if n < v.Len() {
		v.rep().setLen(n)
		v.mustEnsureCapacity(n, true)
		return
	}
	v.mustEnsureCapacity(n, true)
	v.rep().setLen(n)
}

// Reserve makes room for at least n elements.  It never shrinks.
func (v *Vector[T]) Reserve(n int) {
	if err := v.TryReserve(n); err != nil {
		panic(err)
	}
}

// TryReserve is Reserve, returning ErrCapacityOverflow instead of
// panicking when the storage cannot be allocated
func (v *Vector[T]) TryReserve(n int) error {
	if n <= 0 {
		return nil
	}
	return v.ensureCapacity(n, false)
}

// ShrinkToFit minimizes capacity.  A heap vector whose elements fit
// inline is demoted; otherwise its block is cut to the occupied count.
func (v *Vector[T]) ShrinkToFit() {
	r, ok := v.rep().(heapRep[T])
	if !ok {
		return
	}
	if v.flags&flagAlwaysHeap == 0 && r.len() <= inlineCapacity[T]() {
		v.mustEnsureCapacity(r.len(), true)
		return
	}
	if err := v.fitHeap(r); err != nil {
		panic(err)
	}
}

// Clear drops every element without releasing storage
func (v *Vector[T]) Clear() {
	v.rep().setLen(0)
}

// Free releases any heap block and returns the vector to its initial
// empty state.  Calling it again is a no-op.
func (v *Vector[T]) Free() {
	v.reset()
}

// CopyTo replaces the contents of dst with a deep copy of v.  dst gets
// the same representation and capacity as v.  dst must not be nil.
func (v *Vector[T]) CopyTo(dst *Vector[T]) {
	if dst == nil {
		panic("smallvec: nil copy destination")
	}
	if dst == v {
		return
	}
	dst.Free()
	switch r := v.rep().(type) {
	case inlineRep[T]:
		in := dst.rep()
		relocate(in.slots(), r.slots(), r.len())
		in.setLen(r.len())
	case heapRep[T]:
		block, err := allocate[T](r.cap())
		if err != nil {
			panic(err)
		}
		relocate(block, r.slots(), r.len())
		dst.fp = footprint{}
		dst.count = 0
		dst.flags = dst.flags&^flagInline | flagHeap
		heapRep[T]{dst}.own(block, r.len())
	}
}

// Clone returns a deep copy of v
func (v *Vector[T]) Clone() *Vector[T] {
	c := New[T]()
	v.CopyTo(c)
	return c
}

// MoveFrom takes over the contents of src, including its heap block,
// and leaves src empty.  Whatever v held before is released.  A nil
// src is ignored.
func (v *Vector[T]) MoveFrom(src *Vector[T]) {
	if src == nil || src == v {
		return
	}
	src.init()
	*v = *src
	src.reset()
}

// Swap exchanges the entire contents of v and o
func (v *Vector[T]) Swap(o *Vector[T]) {
	if o == nil {
		return
	}
	v.init()
	o.init()
	*v, *o = *o, *v
}

// RoughParity reports whether v and o have the same length and
// capacity.  Contents are not compared.
func (v *Vector[T]) RoughParity(o *Vector[T]) bool {
	if o == nil {
		return false
	}
	return v.Len() == o.Len() && v.Cap() == o.Cap()
}

// StrictEqualElements reports whether v and o hold equal elements in
// the same order.  Vectors of different lengths are never equal.
func (v *Vector[T]) StrictEqualElements(o *Vector[T]) bool {
	if o == nil {
		return false
	}
	if v == o {
		return true
	}
	a, b := v.Data(), o.Data()
	if len(a) != len(b) {
		return false
	}
	if len(a) > 0 && &a[0] == &b[0] {
		return true
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// StrictEqual reports whether v and o agree in length, capacity and
// contents
func (v *Vector[T]) StrictEqual(o *Vector[T]) bool {
	return v.RoughParity(o) && v.StrictEqualElements(o)
}

// Equal is the cheap structural comparison: it is RoughParity, and
// deliberately ignores contents.  Use StrictEqual to compare elements.
func (v *Vector[T]) Equal(o *Vector[T]) bool {
	return v.RoughParity(o)
}

// Bool reports whether v has storage holding at least one element
func (v *Vector[T]) Bool() bool {
	return v != nil && len(v.Data()) > 0
}

// CompareLen compares the length of v with n, returning -1, 0 or +1
func (v *Vector[T]) CompareLen(n int) int {
	return cmp.Compare(v.Len(), n)
}
