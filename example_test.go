package coroutines_test

import (
	"errors"
	"fmt"

	coroutines "github.com/ismail-yilmaz/CoRoutines"
)

func ExampleNewRoutine() {
	r := coroutines.NewRoutine(func(suspend func()) int {
		suspend()
		suspend()
		return 7
	})

	for {
		more, err := r.Advance()
		if err != nil {
			fmt.Println("failed:", err)
			return
		}
		if !more {
			break
		}
		fmt.Println("suspended")
	}
	fmt.Println("result:", r.Result())
	// Output:
	// suspended
	// suspended
	// result: 7
}

func ExampleNewGenerator() {
	g := coroutines.NewGenerator(func(yield func(int)) {
		for i := 0; i < 4; i++ {
			yield(i)
		}
	})

	for {
		v, err := g.Next()
		if errors.Is(err, coroutines.ErrExhausted) {
			fmt.Println("exhausted")
			return
		}
		fmt.Println(v)
	}
	// Output:
	// 0
	// 1
	// 2
	// 3
	// exhausted
}

func ExampleGenerator_All() {
	g := coroutines.NewGenerator(func(yield func(string)) {
		yield("lazy")
		yield("finite")
		yield("single-pass")
	})

	for s := range g.All() {
		fmt.Println(s)
	}
	// Output:
	// lazy
	// finite
	// single-pass
}
