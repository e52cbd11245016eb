// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

package smallvec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIterators(t *testing.T) {
	for name, v := range map[string]*Vector[int32]{
		"inline": Of[int32](1, 2, 3),
		"heap":   Of[int32](1, 2, 3, 4, 5, 6, 7, 8),
	} {
		t.Run(name, func(t *testing.T) {
			var fwd []int32
			for it, end := v.Begin(), v.End(); !it.Equal(end); it.Next() {
				fwd = append(fwd, it.Value())
			}
			assert.Equal(t, v.Data(), fwd)

			var rev []int32
			for it, end := v.RBegin(), v.REnd(); !it.Equal(end); it.Next() {
				rev = append(rev, it.Value())
			}
			assert.Len(t, rev, v.Len())
			for i, x := range rev {
				assert.Equal(t, v.Get(v.Len()-1-i), x)
			}

			assert.Equal(t, v.Len(), v.Begin().Distance(v.End()))
			assert.Equal(t, v.Len(), v.RBegin().Distance(v.REnd()))
		})
	}
}

func TestIteratorMovement(t *testing.T) {
	v := Of[int32](10, 20, 30, 40)
	it := v.Begin()
	it.Advance(2)
	assert.Equal(t, 2, it.Index())
	assert.Equal(t, int32(30), it.Value())
	it.Prev()
	assert.Equal(t, int32(20), it.Value())

	*it.Ptr() = 21
	assert.Equal(t, int32(21), v.Get(1))

	r := v.RBegin()
	r.Advance(1)
	assert.Equal(t, int32(30), r.Value())
	r.Prev()
	assert.Equal(t, int32(40), r.Value())

	end := v.End()
	assert.False(t, end.Valid())
	end.Prev()
	assert.True(t, end.Valid())
	assert.Equal(t, int32(40), end.Value())

	assert.False(t, v.Begin().Equal(Of[int32](10, 21, 30, 40).Begin()))
}

func TestEmptyIterators(t *testing.T) {
	v := New[int64]()
	assert.True(t, v.Begin().Equal(v.End()))
	assert.True(t, v.RBegin().Equal(v.REnd()))
}

func TestRangeFuncs(t *testing.T) {
	v := Of[int32](1, 2, 3, 4, 5, 6, 7)

	var idx []int
	var vals []int32
	for i, x := range v.All() {
		idx = append(idx, i)
		vals = append(vals, x)
	}
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, idx)
	assert.Equal(t, v.Data(), vals)

	var back []int32
	for i, x := range v.Backward() {
		if i < 4 {
			break
		}
		back = append(back, x)
	}
	assert.Equal(t, []int32{7, 6, 5}, back)

	sum := int32(0)
	for x := range v.Values() {
		sum += x
	}
	assert.Equal(t, int32(28), sum)
}
