// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

package smallvec

import (
	"fmt"
	"math"
	"reflect"
	"runtime"
	"unsafe"
)

func elemSize[T any]() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}

func inlineCapacity[T any]() int {
	return InlineBytes / int(elemSize[T]())
}

func maxSize[T any]() int {
	return math.MaxInt / int(elemSize[T]())
}

// hasPointers reports whether values of t hold anything the garbage
// collector would need to trace, which rules out byte-wise relocation
func hasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return false
	case reflect.Array:
		return t.Len() > 0 && hasPointers(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if hasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	}
	return true
}

// asBytes reinterprets s as its underlying bytes
func asBytes[T any](s []T) []byte {
	if len(s) == 0 {
		return nil
	}
	data := (*byte)(unsafe.Pointer(unsafe.SliceData(s)))
	return unsafe.Slice(data, len(s)*int(elemSize[T]()))
}

// relocate copies n elements from src to dst byte-wise.  The ranges
// may overlap.
func relocate[T any](dst, src []T, n int) {
	if n == 0 {
		return
	}
	copy(asBytes(dst[:n]), asBytes(src[:n]))
}

// allocate returns a fresh block of n elements.  Requests the runtime
// refuses outright are reported as ErrCapacityOverflow; genuine memory
// exhaustion remains fatal.
func allocate[T any](n int) (block []T, err error) {
	if n < 0 || n > maxSize[T]() {
		return nil, fmt.Errorf("%w: %d elements of %d bytes", ErrCapacityOverflow, n, elemSize[T]())
	}
	defer func() {
		if r := recover(); r != nil {
			rerr, ok := r.(runtime.Error)
			if !ok {
				panic(r)
			}
			block = nil
			err = fmt.Errorf("%w: allocating %d elements: %s", ErrCapacityOverflow, n, rerr)
		}
	}()
	return make([]T, n), nil
}
