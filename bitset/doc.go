// Package bitset provides a fixed-width bit array keyed by basic-event
// index, plus the set-algebraic primitives the sop and cutset packages
// build on: and, or, subset, equals, lexical ordering, popcount, and a
// stable textual encoding.
//
// What:
//
//   - Set: an immutable-width value wrapping github.com/bits-and-blooms/bitset,
//     indexed 0..N-1 where N is the basic-event count after CCF expansion.
//   - And/Or/Subset/Equal/LexCompare/PopCount/String operating on Set values.
//
// Why:
//
//   - A group in the normalised Boolean expression layer (package sop) is
//     one bit per basic event; representing it as a fixed-width word-backed
//     bit array makes subset tests (absorption) and popcount (cut-set
//     order) cheap and branch-free compared to a dynamic index set.
//
// Key Types:
//
//   - Set
//
// Complexity:
//
//   - Set/Get: O(1) amortized (word-blocked).
//   - PopCount/And/Or/Subset/Equal: O(N/64).
//   - LexCompare: O(N) (compares bit by bit).
//
// Errors:
//
//   - None. All width/index preconditions are programming errors and
//     panic rather than return an error value (see Set.checkWidth).
package bitset
