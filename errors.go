package idxgo

import "fmt"

// ErrOutOfBounds indicates a value outside the domain's valid slot range.
// It is returned by New, and by Parse when the text is a well-formed number
// that names no slot.
type ErrOutOfBounds struct {
	Value int
	Size  int
}

func (e *ErrOutOfBounds) Error() string {
	return fmt.Sprintf("index %d out of bounds for domain of size %d", e.Value, e.Size)
}

// ErrParse indicates text that does not spell a base-10 index at all.
//
// The underlying strconv error can be accessed via errors.Unwrap, so
// errors.Is(err, strconv.ErrSyntax) and errors.Is(err, strconv.ErrRange)
// work as expected.
type ErrParse struct {
	cause error
}

func (e *ErrParse) Error() string {
	return fmt.Sprintf("invalid index text: %v", e.cause)
}

func (e *ErrParse) Unwrap() error { return e.cause }
