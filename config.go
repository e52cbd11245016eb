// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

package smallvec

import (
	"fmt"
	"io"
	"reflect"
	"sync"
)

// Layout describes how vectors of one element type use their footprint
type Layout struct {
	// Name of the element type
	Type string
	// Size in bytes of one element
	ElemSize int
	// Number of elements that fit inline, zero when AlwaysHeap
	InlineCapacity int
	// Set when not even one element fits inline, so every vector of
	// this type lives on the heap from construction
	AlwaysHeap bool
}

var layouts sync.Map // reflect.Type -> Layout

// LayoutOf reports the layout of Vector[T].  It panics if T contains
// pointers or has zero size, neither of which a vector can store.
func LayoutOf[T comparable]() Layout {
	t := reflect.TypeFor[T]()
	if l, ok := layouts.Load(t); ok {
		return l.(Layout)
	}
	if hasPointers(t) {
		panic(fmt.Sprintf("smallvec: element type %s contains pointers and cannot be relocated byte-wise", t))
	}
	if t.Size() == 0 {
		panic(fmt.Sprintf("smallvec: element type %s has zero size", t))
	}
	n := inlineCapacity[T]()
	l := Layout{
		Type:           t.String(),
		ElemSize:       int(t.Size()),
		InlineCapacity: n,
		AlwaysHeap:     n == 0,
	}
	layouts.Store(t, l)
	return l
}

// PlanCapacity reports the capacity a vector of this layout will have
// once it has been grown to hold expected elements one push at a time.
func (l Layout) PlanCapacity(expected int) int {
	c := l.InlineCapacity
	for c < expected {
		c = nextCapacity(c + 1)
	}
	return c
}

// GrowthSchedule lists the successive capacities a vector passes
// through while growing one push at a time to at least limit elements.
// The first entry is the initial capacity.
func (l Layout) GrowthSchedule(limit int) []int {
	c := l.InlineCapacity
	sched := []int{c}
	for c < limit {
		c = nextCapacity(c + 1)
		sched = append(sched, c)
	}
	return sched
}

// ExplainIndent writes an indented summary of the layout to w
func (l Layout) ExplainIndent(w io.Writer, indent string) {
	fmt.Fprintf(w, "%selement type %s, %d bytes\n", indent, l.Type, l.ElemSize)
	fmt.Fprintf(w, "%s%2d bytes footprint, %d available inline\n", indent, FootprintBytes, InlineBytes)
	if l.AlwaysHeap {
		fmt.Fprintf(w, "%s   element too large to store inline, always on the heap\n", indent)
	} else {
		fmt.Fprintf(w, "%s%2d elements inline before promotion\n", indent, l.InlineCapacity)
	}
	fmt.Fprintf(w, "%s   growth factor %.4f\n", indent, GrowthFactor)
	first := l.PlanCapacity(l.InlineCapacity + 1)
	fmt.Fprintf(w, "%s   first heap block %d elements (%s)\n", indent, first, humanBytes(uint(first*l.ElemSize)))
}

// Explain writes a summary of the layout to w
func (l Layout) Explain(w io.Writer) {
	l.ExplainIndent(w, "")
}

func humanBytes(bytes uint) string {
	v := float64(bytes)
	suffix := "bytes"
	if v > 1024 {
		v /= 1024.
		suffix = "KB"
		if v > 1024. {
			suffix = "MB"
			v /= 1024.0
			if v > 1024. {
				suffix = "GB"
				v /= 1024.
			}
		}
	}
	if v < 10 {
		return fmt.Sprintf("%0.2f %s", v, suffix)
	} else if v < 100 {
		return fmt.Sprintf("%0.1f %s", v, suffix)
	} else {
		return fmt.Sprintf("%0.0f %s", v, suffix)
	}
}
