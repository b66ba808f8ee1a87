package idxgo

import (
	"cmp"
	"iter"
	"strconv"
)

// Domain fixes an index family at compile time. Size is the number of slots;
// the implementing type's identity is what keeps two domains of equal size
// from ever being interchangeable.
//
// Size must be pure and non-negative and must return the same value on every
// call. Implementations are conventionally empty structs:
//
//	type suits struct{}
//
//	func (suits) Size() int { return 4 }
type Domain interface {
	Size() int
}

// Size returns the number of slots in domain D. A negative Size from the
// marker is treated as an empty domain.
func Size[D Domain]() int {
	var d D
	return max(d.Size(), 0)
}

// Index is a position inside domain D, guaranteed to satisfy
// 0 <= Int() < Size[D] for every value obtainable through this package.
//
// Index values are immutable and freely copyable. The zero value is the
// first index of the domain; for an empty domain no valid index exists and
// the zero value must not be used.
type Index[D Domain] struct {
	slot int
}

// New validates a dynamically computed value and returns the index it names.
// It fails with *ErrOutOfBounds unless 0 <= v < Size[D]. This is the only
// non-panicking path from an integer to an index.
func New[D Domain](v int) (Index[D], error) {
	n := Size[D]()
	if v < 0 || v >= n {
		return Index[D]{}, &ErrOutOfBounds{Value: v, Size: n}
	}
	return Index[D]{slot: v}, nil
}

// Must is New for values that are known statically. It panics when v is out
// of range.
//
// Assign the result to package-level variables so that an out-of-range
// literal fails at process start, before any program logic runs:
//
//	var Dealer = idxgo.Must[players](3)
func Must[D Domain](v int) Index[D] {
	i, err := New[D](v)
	if err != nil {
		panic(err)
	}
	return i
}

// Parse reads a plain base-10 index from s: digits only, no sign, no
// surrounding whitespace. Syntactic failures (including values too large for
// int) return *ErrParse wrapping the strconv error; a well-formed number
// outside the domain returns *ErrOutOfBounds.
func Parse[D Domain](s string) (Index[D], error) {
	v, err := strconv.ParseUint(s, 10, strconv.IntSize-1)
	if err != nil {
		return Index[D]{}, &ErrParse{cause: err}
	}
	return New[D](int(v))
}

// First returns the index of slot 0. It panics when the domain is empty,
// since no valid index exists there.
func First[D Domain]() Index[D] {
	if Size[D]() == 0 {
		panic("idxgo: empty domain has no first index")
	}
	return Index[D]{}
}

// Last returns the index of the final slot, Size[D]-1. It panics when the
// domain is empty.
func Last[D Domain]() Index[D] {
	n := Size[D]()
	if n == 0 {
		panic("idxgo: empty domain has no last index")
	}
	return Index[D]{slot: n - 1}
}

// All returns an iterator over every index of the domain in ascending slot
// order. Each range over the result is a fresh pass; the sequence is finite
// and holds no reference to any array.
func All[D Domain]() iter.Seq[Index[D]] {
	return func(yield func(Index[D]) bool) {
		n := Size[D]()
		for v := 0; v < n; v++ {
			if !yield(Index[D]{slot: v}) {
				return
			}
		}
	}
}

// Int returns the slot number the index names.
func (i Index[D]) Int() int {
	return i.slot
}

// Next returns the successor index, or ok=false when i is the last slot.
// Repeated calls past the end keep reporting ok=false.
func (i Index[D]) Next() (Index[D], bool) {
	if i.slot+1 >= Size[D]() {
		return Index[D]{}, false
	}
	return Index[D]{slot: i.slot + 1}, true
}

// Pair returns the index mirrored around the domain's midpoint, slot
// Size[D]-1-Int(). Pair is an involution: i.Pair().Pair() == i, and
// First().Pair() == Last().
func (i Index[D]) Pair() Index[D] {
	n := Size[D]()
	if n == 0 {
		panic("idxgo: zero index of an empty domain")
	}
	return Index[D]{slot: n - 1 - i.slot}
}

// Compare orders indices by slot number. It returns -1, 0 or +1 in the style
// of cmp.Compare. Equality is the native == on Index values.
func (i Index[D]) Compare(other Index[D]) int {
	return cmp.Compare(i.slot, other.slot)
}

// String returns the decimal slot number.
func (i Index[D]) String() string {
	return strconv.Itoa(i.slot)
}

// MarshalText encodes the index as its decimal slot number.
func (i Index[D]) MarshalText() ([]byte, error) {
	return strconv.AppendInt(nil, int64(i.slot), 10), nil
}

// UnmarshalText decodes text through Parse, applying the same range check as
// New.
func (i *Index[D]) UnmarshalText(text []byte) error {
	parsed, err := Parse[D](string(text))
	if err != nil {
		return err
	}
	*i = parsed
	return nil
}
