package idxgo_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/idxgo"
)

// Arrays promise the same concurrency contract as plain slices: any number
// of readers without coordination. Run with -race.
func TestConcurrentReads(t *testing.T) {
	arr := idxgo.NewArray[dozen, int]()
	for i := range idxgo.All[dozen]() {
		arr.Set(i, i.Int())
	}
	const want = 66 // 0 + 1 + ... + 11

	var g errgroup.Group
	for range 8 {
		g.Go(func() error {
			sum := 0
			for i, item := range arr.All() {
				sum += item
				if got := arr.At(i); got != item {
					return fmt.Errorf("At(%v) = %d during iteration, want %d", i, got, item)
				}
			}
			if sum != want {
				return fmt.Errorf("reader saw sum %d, want %d", sum, want)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}

func TestConcurrentIndexUse(t *testing.T) {
	// Index values are plain data; sharing them across goroutines is free.
	shared := idxgo.Must[dozen](7)

	var g errgroup.Group
	for range 8 {
		g.Go(func() error {
			if shared.Int() != 7 || shared.Pair().Int() != 4 {
				return fmt.Errorf("index %v mutated across goroutines", shared)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}
