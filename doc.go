// Package idxgo provides strongly-typed, bounds-proving array indices and a
// fixed-size array wrapper keyed by them.
//
// An Index is a value that is guaranteed, by construction, to lie inside a
// fixed domain of slots. An Array over the same domain can therefore be
// addressed without any bounds logic of its own, and indices that belong to
// different domains can never be mixed up, even when the domains have the
// same size: the mix-up is a compile error, not a runtime surprise.
//
// # Quick Start
//
// Declare a domain marker, then use it as the type parameter everywhere:
//
//	const NumPlayers = 4
//
//	type players struct{}
//
//	func (players) Size() int { return NumPlayers }
//
//	type PlayerID = idxgo.Index[players]
//
//	scores := idxgo.NewArray[players, int]()
//	for id := range idxgo.All[players]() {
//	    scores.Set(id, 100)
//	}
//
//	id, err := idxgo.New[players](2) // runtime value: checked, returns error
//	first := idxgo.First[players]()  // always valid when the domain is non-empty
//
// # Domains
//
// A Domain is a marker type that plays two roles at once: its Size fixes how
// many slots exist, and the type identity itself distinguishes otherwise
// identical domains. Two domains of equal size are still different types, so
// an Array over one cannot be indexed by an Index over the other.
//
// Size must behave like a constant: pure, non-negative, and identical on
// every call. Domain markers are conventionally empty structs returning a
// package-level constant, which the compiler inlines; a Size that varies
// between calls is a caller bug.
//
// # Static Indices
//
// Go cannot reject an out-of-range integer literal at compile time the way a
// const-generic language can, so the static construction path is Must
// evaluated at package initialization:
//
//	var Dealer = idxgo.Must[players](3)
//
// An out-of-range literal then fails deterministically at process start,
// before any program logic runs. This is a deliberate relaxation of
// build-time rejection; every dynamically computed value still goes through
// New or Parse and gets a typed error instead of a panic.
//
// # Arrays
//
// Array[D, T] holds exactly Size(D) items. It is created through NewArray
// (zero-value fill), Wrap (adopt an existing slice of exactly the right
// length), or Collect (drain an iterator that must yield exactly the right
// number of items). Element access goes through At, Ptr and Set, keyed only
// by Index[D]; the index invariant makes the accessed slot provably in
// range, so the accessors add no range checks of their own.
//
// Array values behave like Go slices on assignment: copies share the same
// backing storage. Use Clone for an independent array, and Slice to reach
// the backing storage for bulk operations such as serialization.
//
// To give your own struct typed indexing, embed an Array and let method
// promotion expose the accessors:
//
//	type Scoreboard struct {
//	    idxgo.Array[players, int]
//	}
//
//	board := Scoreboard{Array: idxgo.NewArray[players, int]()}
//	board.Set(Dealer, 21)
//
// # Iteration
//
// All[D] yields every index of a domain in ascending order; each range over
// it starts a fresh pass. Index.Next steps to the successor and reports
// exhaustion with the usual comma-ok shape. Array.All and Array.Values
// iterate the stored items in slot order.
//
// # Errors
//
// Runtime construction failures are typed and recoverable: *ErrOutOfBounds
// carries the offending value and the domain size, *ErrParse wraps the
// underlying strconv failure. Programming errors panic instead, because they
// indicate a bug at the call site rather than a data-dependent condition:
// calling Must with an out-of-range value, calling First or Last on an empty
// domain, and handing Wrap or Collect the wrong number of items.
//
// # Concurrency
//
// Index values are freely copyable. Arrays add no synchronization of their
// own: concurrent reads are safe, concurrent mutation needs external
// coordination, exactly as for the plain slice they wrap.
//
// # Subpackages
//
//   - indexset: roaring-bitmap sets of indices of one domain, with
//     complement and full-domain operations that only a bounded domain can
//     define.
//   - persistence: versioned binary snapshots of Array values with optional
//     LZ4/ZSTD compression, refusing to load a snapshot into a domain of a
//     different size.
//   - codec: the item-encoding abstraction persistence records in its
//     headers.
package idxgo
