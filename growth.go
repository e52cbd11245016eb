// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

package smallvec

import "fmt"

// GrowthFactor is the multiplier applied to a requested extent to pick
// the next heap capacity.  It is used both when promoting inline
// storage and when reallocating a heap block.
const GrowthFactor = 1.6487

// nextCapacity is the capacity allocated for a request of n elements
func nextCapacity(n int) int {
	return int(float64(n)*GrowthFactor) + 1
}

// ensureCapacity makes the vector able to hold requested elements,
// promoting inline storage to the heap or growing the heap block as
// needed.  With shrink set, a heap vector whose request fits inline is
// demoted instead; only ShrinkToFit and Resize ask for that, so that
// popping around the threshold never thrashes between layouts.
func (v *Vector[T]) ensureCapacity(requested int, shrink bool) error {
	switch r := v.rep().(type) {
	case inlineRep[T]:
		if requested > r.cap() {
			return v.promote(r, requested)
		}
	case heapRep[T]:
		if shrink && v.flags&flagAlwaysHeap == 0 && v.fp.block != nil &&
			requested <= inlineCapacity[T]() {
			v.demote(r, requested)
			return nil
		}
		if requested > r.cap() {
			return v.regrow(r, requested)
		}
	}
	return nil
}

func (v *Vector[T]) mustEnsureCapacity(requested int, shrink bool) {
	if err := v.ensureCapacity(requested, shrink); err != nil {
		panic(err)
	}
}

// growSize picks the block size for a request, falling back to the
// exact request when the growth factor would overflow
func growSize[T any](requested int) int {
	n := nextCapacity(requested)
	if n <= requested || n > maxSize[T]() {
		return requested
	}
	return n
}

// promote moves the inline elements into a new heap block
func (v *Vector[T]) promote(r inlineRep[T], requested int) error {
	block, err := allocate[T](growSize[T](requested))
	if err != nil {
		return fmt.Errorf("promoting to %d elements: %w", requested, err)
	}
	used := r.len()
	relocate(block, r.slots(), used)

	v.count = 0
	v.fp = footprint{}
	v.flags = v.flags&^flagInline | flagHeap
	heapRep[T]{v}.own(block, used)
	return nil
}

// demote moves up to requested heap elements back inline and releases
// the block
func (v *Vector[T]) demote(r heapRep[T], requested int) {
	old := r.slots()
	used := min(r.len(), requested)

	v.fp = footprint{}
	v.flags = v.flags&^flagHeap | flagInline
	in := inlineRep[T]{v}
	relocate(in.slots(), old, used)
	in.setLen(used)
}

// regrow replaces the heap block with a larger one
func (v *Vector[T]) regrow(r heapRep[T], requested int) error {
	block, err := allocate[T](growSize[T](requested))
	if err != nil {
		return fmt.Errorf("growing to %d elements: %w", requested, err)
	}
	used := r.len()
	relocate(block, r.slots(), used)
	r.own(block, used)
	return nil
}

// fitHeap reallocates the heap block to exactly the occupied count,
// releasing it entirely when the vector is empty
func (v *Vector[T]) fitHeap(r heapRep[T]) error {
	used := r.len()
	if used == r.cap() {
		return nil
	}
	block, err := allocate[T](used)
	if err != nil {
		return err
	}
	relocate(block, r.slots(), used)
	r.own(block, used)
	return nil
}
