// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

package smallvec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextCapacity(t *testing.T) {
	for n, want := range map[int]int{
		0:   1,
		1:   2,
		2:   4,
		3:   5,
		7:   12,
		10:  17,
		13:  22,
		100: 165,
	} {
		assert.Equal(t, want, nextCapacity(n), "nextCapacity(%d)", n)
	}
	for n := 1; n < 10000; n++ {
		require.Greater(t, nextCapacity(n), n)
	}
}

func TestGrowSizeClamps(t *testing.T) {
	assert.Equal(t, 12, growSize[int32](7))
	assert.Equal(t, maxSize[int64](), growSize[int64](maxSize[int64]()))
}

func TestPromoteDemoteRoundTrip(t *testing.T) {
	v := Of[int64](1, 2, 3)
	require.Equal(t, Inline, v.Mode())

	require.NoError(t, v.ensureCapacity(4, false))
	assert.Equal(t, Heap, v.Mode())
	assert.Equal(t, 7, v.Cap())
	assert.Equal(t, []int64{1, 2, 3}, v.Data())
	consistent(t, v)

	// without shrink a small request leaves the heap alone
	require.NoError(t, v.ensureCapacity(2, false))
	assert.Equal(t, Heap, v.Mode())

	require.NoError(t, v.ensureCapacity(2, true))
	assert.Equal(t, Inline, v.Mode())
	assert.Equal(t, []int64{1, 2}, v.Data())
	consistent(t, v)
}

func TestRegrowKeepsElements(t *testing.T) {
	v := New[uint8]()
	for i := 0; i < 255; i++ {
		v.PushBack(uint8(i))
	}
	caps := map[int]bool{}
	w := New[uint8]()
	for i := 0; i < 255; i++ {
		w.PushBack(uint8(i))
		caps[w.Cap()] = true
	}
	assert.Equal(t, v.Data(), w.Data())
	sched := LayoutOf[uint8]().GrowthSchedule(255)
	for _, c := range sched {
		assert.True(t, caps[c], "capacity %d never observed", c)
	}
	assert.Equal(t, len(sched), len(caps))
}
