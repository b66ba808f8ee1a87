package idxgo_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/idxgo"
)

func TestNewArrayDefaultFill(t *testing.T) {
	arr := idxgo.NewArray[five, uint]()

	assert.Equal(t, 5, arr.Len())
	for _, item := range arr.All() {
		assert.Equal(t, uint(0), item)
	}
}

func TestSetAtPtr(t *testing.T) {
	type player struct {
		score int
	}

	arr := idxgo.NewArray[three, player]()
	i := idxgo.Must[three](1)

	arr.Set(i, player{score: 10})
	assert.Equal(t, 10, arr.At(i).score)

	arr.Ptr(i).score += 5
	assert.Equal(t, 15, arr.At(i).score)

	// Untouched slots keep the zero value.
	assert.Equal(t, 0, arr.At(idxgo.First[three]()).score)
}

func TestWriteReadRoundTrip(t *testing.T) {
	// Default-filled array of unsigned ints, written through iteration.
	arr := idxgo.NewArray[five, uint]()

	n := 0
	for pos := range idxgo.All[five]() {
		arr.Set(pos, uint(20+n))
		n++
	}

	var got []uint
	for item := range arr.Values() {
		got = append(got, item)
	}
	assert.Equal(t, []uint{20, 21, 22, 23, 24}, got)
}

func TestWrap(t *testing.T) {
	backing := []string{"a", "b", "c"}
	arr := idxgo.Wrap[three](backing)

	// Zero transformation: the slice is the storage.
	arr.Set(idxgo.First[three](), "z")
	assert.Equal(t, "z", backing[0])
	backing[2] = "y"
	assert.Equal(t, "y", arr.At(idxgo.Last[three]()))

	assert.Panics(t, func() { idxgo.Wrap[three]([]string{"a", "b"}) })
	assert.Panics(t, func() { idxgo.Wrap[three]([]string{"a", "b", "c", "d"}) })
}

func TestCollect(t *testing.T) {
	src := []int{7, 8, 9}
	arr := idxgo.Collect[three](slices.Values(src))

	// Original order is preserved.
	assert.Equal(t, src, arr.Slice())

	// One item short and one item long are both caller bugs.
	assert.PanicsWithValue(t, "idxgo: sequence yielded 2 of 3 items", func() {
		idxgo.Collect[three](slices.Values([]int{7, 8}))
	})
	assert.PanicsWithValue(t, "idxgo: sequence yielded more than 3 items", func() {
		idxgo.Collect[three](slices.Values([]int{7, 8, 9, 10}))
	})
}

func TestSliceSharing(t *testing.T) {
	arr := idxgo.NewArray[three, int]()

	s := arr.Slice()
	require.Len(t, s, 3)
	s[1] = 42
	assert.Equal(t, 42, arr.At(idxgo.Must[three](1)))

	// Assignment copies the header, not the items.
	alias := arr
	alias.Set(idxgo.First[three](), 7)
	assert.Equal(t, 7, arr.At(idxgo.First[three]()))
}

func TestClone(t *testing.T) {
	arr := idxgo.Wrap[three]([]int{1, 2, 3})

	clone := arr.Clone()
	clone.Set(idxgo.First[three](), 99)

	assert.Equal(t, 99, clone.At(idxgo.First[three]()))
	assert.Equal(t, 1, arr.At(idxgo.First[three]()))
}

func TestArrayIteration(t *testing.T) {
	arr := idxgo.Wrap[three]([]string{"x", "y", "z"})

	var slots []int
	var items []string
	for i, item := range arr.All() {
		slots = append(slots, i.Int())
		items = append(items, item)
		assert.Equal(t, arr.At(i), item)
	}
	assert.Equal(t, []int{0, 1, 2}, slots)
	assert.Equal(t, []string{"x", "y", "z"}, items)

	assert.Equal(t, items, slices.Collect(arr.Values()))
}

// Scoreboard embeds an Array so method promotion exposes the typed
// accessors, the way callers wire indexing onto their own wrapper structs.
type scoreboard struct {
	idxgo.Array[five, int]
}

func TestEmbedding(t *testing.T) {
	board := scoreboard{Array: idxgo.NewArray[five, int]()}

	for i := range idxgo.All[five]() {
		board.Set(i, 10*i.Int())
	}

	assert.Equal(t, 30, board.At(idxgo.Must[five](3)))
	assert.Equal(t, []int{0, 10, 20, 30, 40}, board.Slice())
}

func TestEmptyDomainArray(t *testing.T) {
	arr := idxgo.NewArray[empty, int]()
	assert.Equal(t, 0, arr.Len())
	assert.Empty(t, slices.Collect(arr.Values()))

	// Collecting nothing into an empty domain is the one valid length.
	assert.NotPanics(t, func() {
		idxgo.Collect[empty](slices.Values([]int(nil)))
	})
	assert.Panics(t, func() {
		idxgo.Collect[empty](slices.Values([]int{1}))
	})
}

func TestZeroArrayIsEmpty(t *testing.T) {
	var arr idxgo.Array[three, int]
	assert.Equal(t, 0, arr.Len())
	assert.Empty(t, slices.Collect(arr.Values()))
}
