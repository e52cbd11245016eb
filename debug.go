// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

package smallvec

import (
	"fmt"
	"io"
)

// DebugDump writes a textual representation of the vector to w: its
// mode, flags, length and capacity, then every occupied element.
// Runs of zero valued elements are elided.
func (v *Vector[T]) DebugDump(w io.Writer) {
	r := v.rep()
	fmt.Fprintf(w, "\n  %s  len %d  cap %d  flags %s\n", r.mode(), r.len(), r.cap(), v.flags)
	if h, ok := r.(heapRep[T]); ok {
		fmt.Fprintf(w, "  block %p  last +%d\n", v.fp.block, h.last())
	}
	var zero T
	skipped := 0
	for i, x := range v.Data() {
		if x == zero {
			skipped++
			continue
		}
		if skipped > 0 {
			fmt.Fprintf(w, "          ...\n")
			skipped = 0
		}
		fmt.Fprintf(w, "%8d  %v\n", i, x)
	}
	if skipped > 0 {
		fmt.Fprintf(w, "          ...\n")
	}
}

// CheckConsistency verifies the vector's bookkeeping: exactly one
// representation active, occupancy within capacity, the cached end
// marker in step with the used count, and always-heap vectors never
// inline.
func (v *Vector[T]) CheckConsistency() error {
	if v.flags&flagInitialized == 0 {
		if v.flags != 0 || v.count != 0 || v.fp != (footprint{}) {
			return fmt.Errorf("%w: uninitialized vector holds state", ErrInconsistent)
		}
		return nil
	}
	inline, heap := v.flags&flagInline != 0, v.flags&flagHeap != 0
	if inline == heap {
		return fmt.Errorf("%w: flags %s do not select exactly one representation", ErrInconsistent, v.flags)
	}
	alwaysHeap := inlineCapacity[T]() == 0
	if alwaysHeap != (v.flags&flagAlwaysHeap != 0) {
		return fmt.Errorf("%w: always-heap flag is %t for inline capacity %d",
			ErrInconsistent, !alwaysHeap, inlineCapacity[T]())
	}

	switch r := v.rep().(type) {
	case inlineRep[T]:
		if alwaysHeap {
			return fmt.Errorf("%w: always-heap vector is inline", ErrInconsistent)
		}
		if r.len() > r.cap() {
			return fmt.Errorf("%w: %d inline elements, capacity %d", ErrInconsistent, r.len(), r.cap())
		}
		if v.fp.block != nil {
			return fmt.Errorf("%w: inline vector holds a heap block", ErrInconsistent)
		}
	case heapRep[T]:
		if r.len() > r.cap() {
			return fmt.Errorf("%w: %d heap elements, %d allocated", ErrInconsistent, r.len(), r.cap())
		}
		if want := uint64(r.len()) * uint64(elemSize[T]()); r.last() != want {
			return fmt.Errorf("%w: end marker at +%d, expected +%d", ErrInconsistent, r.last(), want)
		}
		if (v.fp.block == nil) != (r.cap() == 0) {
			return fmt.Errorf("%w: %d allocated with block %p", ErrInconsistent, r.cap(), v.fp.block)
		}
		if v.count != 0 {
			return fmt.Errorf("%w: heap vector carries inline count %d", ErrInconsistent, v.count)
		}
	}
	return nil
}
