package coroutines

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllYieldsEverything(t *testing.T) {
	g := rangeGenerator(4)

	var got []int
	for v := range g.All() {
		got = append(got, v)
	}

	assert.Equal(t, []int{0, 1, 2, 3}, got)

	_, err := g.Next()
	assert.ErrorIs(t, err, ErrExhausted)
}

func TestAllEmptyGenerator(t *testing.T) {
	g := NewGenerator(func(yield func(int)) {})

	for range g.All() {
		t.Error("empty generator must yield nothing")
	}
}

func TestAllMatchesNext(t *testing.T) {
	r := require.New(t)

	byNext := rangeGenerator(6)
	byRange := rangeGenerator(6)

	var want []int
	for {
		v, err := byNext.Next()
		if errors.Is(err, ErrExhausted) {
			break
		}
		r.NoError(err)
		want = append(want, v)
	}

	var got []int
	for v := range byRange.All() {
		got = append(got, v)
	}

	r.Equal(want, got, "the sequence adapter and Next must agree on values and order")
}

func TestAllNotRestartable(t *testing.T) {
	g := rangeGenerator(2)

	n := 0
	for range g.All() {
		n++
	}
	require.Equal(t, 2, n)

	for range g.All() {
		t.Error("an exhausted generator must not restart")
	}
}

func TestAllEarlyBreakLeavesGeneratorUsable(t *testing.T) {
	r := require.New(t)

	g := rangeGenerator(5)

	for v := range g.All() {
		if v == 1 {
			break
		}
	}

	v, err := g.Next()
	r.NoError(err)
	r.Equal(2, v, "Next must continue from the element after the break")
}

func TestAllAfterMove(t *testing.T) {
	r := require.New(t)

	src := rangeGenerator(3)
	seq := src.All()

	dst := src.Move()

	r.Panics(func() {
		for range seq {
		}
	}, "a sequence from the old owner must not drive a moved computation")

	var got []int
	for v := range dst.All() {
		got = append(got, v)
	}
	r.Equal([]int{0, 1, 2}, got)

	r.Panics(func() { src.All() }, "obtaining a sequence from an emptied handle panics")
}

func TestAllPropagatesFailure(t *testing.T) {
	r := require.New(t)

	boom := errors.New("iter boom")
	g := NewGenerator(func(yield func(int)) {
		yield(1)
		panic(boom)
	})

	var got []int
	func() {
		defer func() {
			p := recover()
			r.NotNil(p, "a body failure must not end the sequence silently")
			err, ok := p.(error)
			r.True(ok)
			r.ErrorIs(err, boom)
		}()
		for v := range g.All() {
			got = append(got, v)
		}
	}()

	r.Equal([]int{1}, got)
}

func TestAllPropagatesFailureDuringPriming(t *testing.T) {
	g := NewGenerator(func(yield func(int)) {
		panic("prime boom")
	})

	require.Panics(t, func() {
		for range g.All() {
			t.Error("no value should be produced")
		}
	})
}
