package trackable_test

import (
	"fmt"
	"strings"

	"github.com/joshuapare/heapkit/memory"
	"github.com/joshuapare/heapkit/trackable"
)

// ExampleArrayList builds a small list against a bounded pool, sorts it, and
// releases exactly what was claimed.
func ExampleArrayList() {
	pool := memory.NewPool(1 << 20)

	list, err := trackable.NewArrayList[string](pool)
	if err != nil {
		panic(err)
	}
	defer list.Close()

	if err := list.AddAll("cherry", "apple", "banana"); err != nil {
		panic(err)
	}
	if err := list.Sort(strings.Compare); err != nil {
		panic(err)
	}

	it, err := list.Iterator()
	if err != nil {
		panic(err)
	}
	for it.Next() {
		fmt.Println(it.Value())
	}

	// Output:
	// apple
	// banana
	// cherry
}
