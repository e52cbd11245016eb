// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

package smallvec

import "unsafe"

// representation is the view of a vector's footprint through whichever
// layout its tag selects.  inlineRep and heapRep are the only
// implementations, and rep() is the only way to obtain one, so fields
// of the inactive layout cannot be reached by accident.
type representation[T comparable] interface {
	// len is the number of occupied slots
	len() int
	// cap is the number of slots the layout can hold
	cap() int
	setLen(n int)
	// slots is every slot of the layout, occupied or not
	slots() []T
	mode() Mode
}

var (
	_ representation[int] = inlineRep[int]{}
	_ representation[int] = heapRep[int]{}
)

func (v *Vector[T]) rep() representation[T] {
	v.init()
	if v.flags&flagHeap != 0 {
		return heapRep[T]{v}
	}
	return inlineRep[T]{v}
}

// inlineRep: a count byte plus InlineBytes of element buffer
type inlineRep[T comparable] struct {
	v *Vector[T]
}

func (r inlineRep[T]) len() int { return int(r.v.count) }

func (r inlineRep[T]) cap() int { return inlineCapacity[T]() }

func (r inlineRep[T]) setLen(n int) { r.v.count = uint8(n) }

func (r inlineRep[T]) mode() Mode { return Inline }

func (r inlineRep[T]) slots() []T {
	n := inlineCapacity[T]()
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&r.v.fp.words[0])), n)
}

// heapRep word assignments within footprint.words
const (
	heapUsed = iota
	heapAllocated
	// byte offset of one-past-the-last occupied element; a cache of
	// used*sizeof(T), never consulted as the source of truth
	heapLast
)

// heapRep: used, allocated, an owned block of allocated elements and a
// cached end-of-data marker
type heapRep[T comparable] struct {
	v *Vector[T]
}

func (r heapRep[T]) len() int { return int(r.v.fp.words[heapUsed]) }

func (r heapRep[T]) cap() int { return int(r.v.fp.words[heapAllocated]) }

func (r heapRep[T]) setLen(n int) {
	r.v.fp.words[heapUsed] = uint64(n)
	r.v.fp.words[heapLast] = uint64(n) * uint64(elemSize[T]())
}

func (r heapRep[T]) mode() Mode { return Heap }

func (r heapRep[T]) slots() []T {
	if r.v.fp.block == nil {
		return nil
	}
	return unsafe.Slice((*T)(r.v.fp.block), r.cap())
}

// last returns the cached end-of-data offset
func (r heapRep[T]) last() uint64 { return r.v.fp.words[heapLast] }

// own makes block the vector's heap storage, holding used elements.
// Any previous block is released.
func (r heapRep[T]) own(block []T, used int) {
	r.v.fp.block = nil
	if len(block) > 0 {
		r.v.fp.block = unsafe.Pointer(unsafe.SliceData(block))
	}
	r.v.fp.words[heapAllocated] = uint64(len(block))
	r.setLen(used)
}
