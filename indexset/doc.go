// Package indexset provides sets of indices drawn from a single domain.
//
// A Set[D] only ever holds valid Index[D] values, so membership, iteration
// and set algebra are typed end to end: two sets over different domains
// cannot be combined, and iterating a set always yields indices that are
// safe to use against any Array over the same domain.
//
// Because the domain is bounded, operations that are undefined for an
// unbounded bitmap become well defined here: Full builds the set of every
// index, and Complement flips membership within [0, Size).
//
// Sets are backed by roaring bitmaps and store slots as 32-bit values;
// domains beyond 4 billion slots are out of scope.
//
// A Set is not safe for concurrent mutation; guard it externally like any
// other container.
package indexset
