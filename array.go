package idxgo

import (
	"fmt"
	"iter"
	"slices"
)

// Array stores exactly Size[D] items of type T, addressable only by an
// Index[D]. Because the index type proves its slot is in range, the
// accessors perform no range logic of their own; this is the point of the
// wrapper in hot loops.
//
// Array values share their backing storage when copied, like Go slices.
// Use Clone for an independent array. The zero Array is empty; obtain arrays
// from NewArray, Wrap or Collect.
type Array[D Domain, T any] struct {
	items []T
}

// NewArray returns an array with every slot holding the zero value of T.
func NewArray[D Domain, T any]() Array[D, T] {
	return Array[D, T]{items: make([]T, Size[D]())}
}

// Wrap adopts items as the array's backing storage, with no copying: later
// mutations through the array are visible through the slice and vice versa.
// It panics unless len(items) == Size[D], since a mismatched length is a
// caller bug rather than a runtime condition.
func Wrap[D Domain, T any](items []T) Array[D, T] {
	if n := Size[D](); len(items) != n {
		panic(fmt.Sprintf("idxgo: cannot wrap %d items in an array over a domain of size %d", len(items), n))
	}
	return Array[D, T]{items: items}
}

// Collect drains seq into a fresh array. It panics if the sequence yields
// fewer or more than Size[D] items: a length mismatch signals a logic bug in
// the caller, and truncating or padding silently would hide it.
func Collect[D Domain, T any](seq iter.Seq[T]) Array[D, T] {
	n := Size[D]()
	items := make([]T, 0, n)
	for item := range seq {
		if len(items) == n {
			panic(fmt.Sprintf("idxgo: sequence yielded more than %d items", n))
		}
		items = append(items, item)
	}
	if len(items) != n {
		panic(fmt.Sprintf("idxgo: sequence yielded %d of %d items", len(items), n))
	}
	return Array[D, T]{items: items}
}

// At returns the item in slot i.
func (a Array[D, T]) At(i Index[D]) T {
	return a.items[i.slot]
}

// Ptr returns a pointer to the item in slot i, for in-place mutation of
// struct items.
func (a Array[D, T]) Ptr(i Index[D]) *T {
	return &a.items[i.slot]
}

// Set stores v in slot i.
func (a Array[D, T]) Set(i Index[D], v T) {
	a.items[i.slot] = v
}

// Len returns the number of stored items, Size[D] for any constructed array.
func (a Array[D, T]) Len() int {
	return len(a.items)
}

// Slice returns the backing storage itself, for bulk operations such as
// serialization. The slice always has length Size[D]; writing through it is
// equivalent to Set.
func (a Array[D, T]) Slice() []T {
	return a.items
}

// Clone returns an array with its own copy of the items.
func (a Array[D, T]) Clone() Array[D, T] {
	return Array[D, T]{items: slices.Clone(a.items)}
}

// All returns an iterator over (index, item) pairs in slot order.
func (a Array[D, T]) All() iter.Seq2[Index[D], T] {
	return func(yield func(Index[D], T) bool) {
		for v, item := range a.items {
			if !yield(Index[D]{slot: v}, item) {
				return
			}
		}
	}
}

// Values returns an iterator over the items in slot order.
func (a Array[D, T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range a.items {
			if !yield(item) {
				return
			}
		}
	}
}
