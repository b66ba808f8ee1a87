package indexset

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/idxgo"
)

// Set is a set of indices of domain D, backed by a roaring bitmap.
type Set[D idxgo.Domain] struct {
	rb *roaring.Bitmap
}

// New creates an empty set.
func New[D idxgo.Domain]() *Set[D] {
	return &Set[D]{
		rb: roaring.New(),
	}
}

// Of creates a set holding the given indices.
func Of[D idxgo.Domain](indices ...idxgo.Index[D]) *Set[D] {
	s := New[D]()
	for _, i := range indices {
		s.Add(i)
	}
	return s
}

// Full creates the set of every index in the domain.
func Full[D idxgo.Domain]() *Set[D] {
	s := New[D]()
	if n := idxgo.Size[D](); n > 0 {
		s.rb.AddRange(0, uint64(n))
	}
	return s
}

// Add inserts i into the set.
func (s *Set[D]) Add(i idxgo.Index[D]) {
	s.rb.Add(uint32(i.Int()))
}

// Remove deletes i from the set.
func (s *Set[D]) Remove(i idxgo.Index[D]) {
	s.rb.Remove(uint32(i.Int()))
}

// Contains reports whether i is in the set.
func (s *Set[D]) Contains(i idxgo.Index[D]) bool {
	return s.rb.Contains(uint32(i.Int()))
}

// Len returns the number of indices in the set.
func (s *Set[D]) Len() int {
	return int(s.rb.GetCardinality())
}

// IsEmpty returns true if the set holds no indices.
func (s *Set[D]) IsEmpty() bool {
	return s.rb.IsEmpty()
}

// Clear removes all indices from the set.
func (s *Set[D]) Clear() {
	s.rb.Clear()
}

// Clone returns a deep copy of the set.
func (s *Set[D]) Clone() *Set[D] {
	return &Set[D]{
		rb: s.rb.Clone(),
	}
}

// And keeps only indices present in both sets.
func (s *Set[D]) And(other *Set[D]) {
	s.rb.And(other.rb)
}

// Or adds every index present in other.
func (s *Set[D]) Or(other *Set[D]) {
	s.rb.Or(other.rb)
}

// AndNot removes every index present in other.
func (s *Set[D]) AndNot(other *Set[D]) {
	s.rb.AndNot(other.rb)
}

// Complement flips membership of every index in the domain: indices in the
// set leave it, indices outside it join.
func (s *Set[D]) Complement() {
	s.rb.Flip(0, uint64(idxgo.Size[D]()))
}

// All returns an iterator over the set's indices in ascending slot order.
func (s *Set[D]) All() iter.Seq[idxgo.Index[D]] {
	return func(yield func(idxgo.Index[D]) bool) {
		it := s.rb.Iterator()
		for it.HasNext() {
			if !yield(idxgo.Must[D](int(it.Next()))) {
				return
			}
		}
	}
}
