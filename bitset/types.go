package bitset

import (
	"fmt"
	"strings"

	bbbitset "github.com/bits-and-blooms/bitset"
)

// Set is a fixed-width bit array over basic-event indices 0..N-1.
//
// All operations that combine two Sets (And, Or, Subset, Equal) require
// equal width; a width mismatch is a programming error and panics, per
// the bit-set layer's documented failure model: "all preconditions are
// programming errors, not runtime failures."
type Set struct {
	n  uint
	bb *bbbitset.BitSet
}

// New returns a zeroed Set of width n.
// Complexity: O(n/64).
func New(n uint) Set {
	return Set{n: n, bb: bbbitset.New(n)}
}

// Width reports the fixed bit-width of s.
func (s Set) Width() uint { return s.n }

// checkWidth panics if o has a different width than s. Called by every
// binary operation before touching the underlying words.
func (s Set) checkWidth(o Set) {
	if s.n != o.n {
		panic(fmt.Sprintf("bitset: width mismatch: %d != %d", s.n, o.n))
	}
}

// checkIndex panics if i is out of [0, s.n).
func (s Set) checkIndex(i uint) {
	if i >= s.n {
		panic(fmt.Sprintf("bitset: index %d out of range [0,%d)", i, s.n))
	}
}

// Set sets bit i to v (v must be 0 or 1). Panics on out-of-range i.
// Complexity: O(1).
func (s Set) Set(i uint, v int) Set {
	s.checkIndex(i)
	if v != 0 {
		s.bb.Set(i)
	} else {
		s.bb.Clear(i)
	}

	return s
}

// Get returns the value of bit i (0 or 1). Panics on out-of-range i.
// Complexity: O(1).
func (s Set) Get(i uint) int {
	s.checkIndex(i)
	if s.bb.Test(i) {
		return 1
	}

	return 0
}

// Clone returns an independent copy of s.
// Complexity: O(n/64).
func (s Set) Clone() Set {
	return Set{n: s.n, bb: s.bb.Clone()}
}

// And returns a new Set that is the bitwise AND of s and o.
// Complexity: O(n/64).
func (s Set) And(o Set) Set {
	s.checkWidth(o)

	return Set{n: s.n, bb: s.bb.Intersection(o.bb)}
}

// Or returns a new Set that is the bitwise OR of s and o.
// Complexity: O(n/64).
func (s Set) Or(o Set) Set {
	s.checkWidth(o)

	return Set{n: s.n, bb: s.bb.Union(o.bb)}
}

// Subset reports whether every bit set in s is also set in o, i.e. s ⊆ o.
// Complexity: O(n/64).
func (s Set) Subset(o Set) bool {
	s.checkWidth(o)

	return o.bb.IsSuperSet(s.bb)
}

// Equal reports whether s and o have identical bits.
// Complexity: O(n/64).
func (s Set) Equal(o Set) bool {
	s.checkWidth(o)

	return s.bb.Equal(o.bb)
}

// PopCount returns the number of set bits in s (the order of the implied
// AND term).
// Complexity: O(n/64).
func (s Set) PopCount() uint {
	return s.bb.Count()
}

// LexCompare gives a total order on Sets of equal width, comparing bit
// values from the highest index (most significant) down to 0. It returns
// -1, 0, or 1 the way strings.Compare does.
//
// This is the order the SOP layer's canonical storage relies on: groups
// of equal popcount are tie-broken by LexCompare so that equality of two
// SOP expressions reduces to structural (slice) equality.
// Complexity: O(n).
func (s Set) LexCompare(o Set) int {
	s.checkWidth(o)
	var i uint
	for i = s.n; i > 0; i-- {
		idx := i - 1
		a, b := s.Get(idx), o.Get(idx)
		if a != b {
			if a < b {
				return -1
			}

			return 1
		}
	}

	return 0
}

// String renders s as a fixed-width string of '0'/'1' characters, most
// significant bit (index n-1) first — the stable textual encoding used by
// the SOP layer's serialise/parse and the legacy .mcs file format.
// Complexity: O(n).
func (s Set) String() string {
	var b strings.Builder
	b.Grow(int(s.n))
	var i uint
	for i = s.n; i > 0; i-- {
		if s.bb.Test(i - 1) {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}

	return b.String()
}

// Parse decodes a fixed-width 0/1 string produced by String back into a
// Set of the matching width. Returns an error if the string contains a
// character other than '0'/'1'.
// Complexity: O(len(str)).
func Parse(str string) (Set, error) {
	n := uint(len(str))
	s := New(n)
	for i, ch := range str {
		var v int
		switch ch {
		case '0':
			v = 0
		case '1':
			v = 1
		default:
			return Set{}, fmt.Errorf("bitset: invalid character %q at position %d", ch, i)
		}
		// String() writes index n-1 first, so character i corresponds
		// to bit index n-1-i.
		s = s.Set(n-1-uint(i), v)
	}

	return s, nil
}
