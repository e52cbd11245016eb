package main

import (
	"fmt"
	"os"

	smallvec "github.com/facebookincubator/go-smallvec"
)

func main() {
	// a handful of int32s live inside the vector itself
	v := smallvec.New[int32]()
	for i := int32(1); i <= 6; i++ {
		v.PushBack(i * i)
	}
	fmt.Printf("%d elements, %s, capacity %d\n", v.Len(), v.Mode(), v.Cap())

	// one more and they move to the heap
	v.PushBack(49)
	fmt.Printf("%d elements, %s, capacity %d\n", v.Len(), v.Mode(), v.Cap())

	// Insert overwrites, MoveInsert shifts
	v.Insert(0, 100)
	v.MoveInsert(1, 200)
	for i, x := range v.All() {
		fmt.Printf("  [%d] %d\n", i, x)
	}

	// back under the inline threshold, shrinking demotes
	v.Resize(3)
	v.ShrinkToFit()
	fmt.Printf("%d elements, %s, capacity %d\n", v.Len(), v.Mode(), v.Cap())

	// Equal only compares length and capacity
	w := smallvec.Of[int32](7, 8, 9)
	fmt.Printf("equal: %t, strictly equal: %t\n", v.Equal(w), v.StrictEqual(w))

	smallvec.LayoutOf[int32]().Explain(os.Stdout)
	v.DebugDump(os.Stdout)
}
