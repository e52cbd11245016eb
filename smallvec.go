// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

// package smallvec implements a growable, contiguous, random access
// vector which supports:
//  1. inline storage of a few elements inside the vector itself
//  2. transparent promotion to an owned heap block, and demotion back
//  3. amortized growth by a fixed factor (see GrowthFactor)
//  4. non-shifting and shifting positional inserts
//
// Elements are relocated byte-wise between the two representations,
// so the element type must not contain pointers (no strings, slices,
// maps, interfaces, channels, funcs or pointers, directly or nested).
// This is verified the first time a vector is used, and a violation
// panics.
//
// A Vector must not be copied by value once it is in use: a copy would
// alias the heap block.  Use Clone, CopyTo, MoveFrom or Swap instead.
package smallvec

import (
	"fmt"
	"unsafe"
)

const (
	// FootprintBytes is the size of the storage area shared by the
	// inline and heap representations
	FootprintBytes = 32

	// InlineBytes is the number of bytes of the footprint available to
	// inline elements.  The first word is reserved for the heap block
	// address, which the garbage collector always scans.
	InlineBytes = FootprintBytes - wordBytes

	wordBytes = 8
	dataWords = InlineBytes / wordBytes
)

// footprint is the physical storage both representations are laid
// over.  The heap view uses block plus all of words; the inline view
// uses words as its element buffer and leaves block nil.
type footprint struct {
	block unsafe.Pointer
	_     [wordBytes - unsafe.Sizeof(unsafe.Pointer(nil))]byte
	words [dataWords]uint64
}

// both representations share one footprint of exactly FootprintBytes
var _ [FootprintBytes - unsafe.Sizeof(footprint{})]struct{}
var _ [unsafe.Sizeof(footprint{}) - FootprintBytes]struct{}

// Mode reports which representation currently holds a vector's
// elements
type Mode uint8

const (
	Inline Mode = iota
	Heap
)

func (m Mode) String() string {
	switch m {
	case Inline:
		return "inline"
	case Heap:
		return "heap"
	}
	return fmt.Sprintf("Mode(%d)", uint8(m))
}

type flags uint8

const (
	flagInline flags = 1 << iota
	flagHeap
	// element type cannot fit even once inline
	flagAlwaysHeap
	flagInitialized
	// reserved, no operation consults it
	flagNeedsSwap
)

func (f flags) String() string {
	s := ""
	for _, x := range []struct {
		f    flags
		name string
	}{
		{flagInline, "inline"},
		{flagHeap, "heap"},
		{flagAlwaysHeap, "always-heap"},
		{flagInitialized, "initialized"},
		{flagNeedsSwap, "needs-swap"},
	} {
		if f&x.f == 0 {
			continue
		}
		if s != "" {
			s += "|"
		}
		s += x.name
	}
	if s == "" {
		return "none"
	}
	return s
}

// Vector is a contiguous sequence of T which lives inline while it is
// small and in an owned heap block once it is not.  The zero value is
// an empty vector ready to use.
type Vector[T comparable] struct {
	_     [0]func() // vectors are not comparable with ==
	flags flags
	// occupied inline slots, meaningful only in Inline mode
	count uint8
	fp    footprint
}

// New returns an empty vector
func New[T comparable]() *Vector[T] {
	v := &Vector[T]{}
	v.init()
	return v
}

// NewWithCapacity returns an empty vector able to hold at least n
// elements without reallocating
func NewWithCapacity[T comparable](n int) *Vector[T] {
	v := New[T]()
	v.Reserve(n)
	return v
}

// Of returns a vector holding a copy of xs
func Of[T comparable](xs ...T) *Vector[T] {
	v := New[T]()
	v.Append(xs...)
	return v
}

// init resolves the layout of T the first time the vector is touched
func (v *Vector[T]) init() {
	if v.flags&flagInitialized != 0 {
		return
	}
	l := LayoutOf[T]()
	v.count = 0
	v.fp = footprint{}
	if l.AlwaysHeap {
		v.flags = flagInitialized | flagHeap | flagAlwaysHeap
	} else {
		v.flags = flagInitialized | flagInline
	}
}

// reset puts the vector back into its initial empty state without
// touching any heap block it may have pointed to.
func (v *Vector[T]) reset() {
	v.flags = 0
	v.init()
}

// Mode reports the active representation
func (v *Vector[T]) Mode() Mode {
	if _, ok := v.rep().(heapRep[T]); ok {
		return Heap
	}
	return Inline
}

// Len returns the number of occupied elements
func (v *Vector[T]) Len() int {
	return v.rep().len()
}

// Cap returns the number of elements the active representation can
// hold before it must be promoted or reallocated
func (v *Vector[T]) Cap() int {
	return v.rep().cap()
}

// Empty reports whether the vector holds no elements
func (v *Vector[T]) Empty() bool {
	return v.Len() == 0
}

// Data returns the occupied elements.  The slice aliases the vector's
// storage: writes through it are visible in the vector, and it is
// invalidated by any call that promotes, demotes or reallocates.
func (v *Vector[T]) Data() []T {
	r := v.rep()
	n := r.len()
	if n == 0 {
		return nil
	}
	return r.slots()[:n:n]
}

// Front returns the first element.  It panics on an empty vector.
func (v *Vector[T]) Front() T {
	return v.Data()[0]
}

// Back returns the last element.  It panics on an empty vector.
func (v *Vector[T]) Back() T {
	d := v.Data()
	return d[len(d)-1]
}

// ElemSize returns the size in bytes of one element
func (v *Vector[T]) ElemSize() int {
	return int(elemSize[T]())
}

// FootprintSize returns the size in bytes of the Vector value itself,
// which never changes whichever representation is active
func (v *Vector[T]) FootprintSize() int {
	return int(unsafe.Sizeof(*v))
}

// MaxSize returns the largest element count a vector of T could be
// asked to hold, regardless of available memory
func (v *Vector[T]) MaxSize() int {
	return maxSize[T]()
}
