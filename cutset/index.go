package cutset

import (
	"sort"

	"github.com/rakhimov/scram-sub001/mef"
)

// Index assigns each basic event of a model a stable bit position in
// [0, Len()), lexical-name ordered so two runs over the same model
// produce bit-identical indices (§5 determinism). Every sop.Expr and
// bitset.Set this package, quant, and uncertainty construct for a
// given model shares the same Index.
type Index struct {
	names []string
	pos   map[string]uint
}

// NewIndex builds an Index over every BasicEvent currently owned by m.
// Call it after CCF expansion (package ccf) so auxiliary events are
// included, and before any cut-set or quantification computation.
func NewIndex(m *mef.Model) *Index {
	names := make([]string, 0, len(m.BasicEvents))
	for name := range m.BasicEvents {
		names = append(names, name)
	}
	sort.Strings(names)

	pos := make(map[string]uint, len(names))
	for i, n := range names {
		pos[n] = uint(i)
	}

	return &Index{names: names, pos: pos}
}

// Len returns the basic-event count, the width every Set/Group this
// Index backs must share.
func (ix *Index) Len() uint { return uint(len(ix.names)) }

// Name returns the fully-qualified basic-event name at bit position i.
func (ix *Index) Name(i uint) string { return ix.names[i] }

// Index returns the bit position of name, or false if name is not a
// basic event of the model this Index was built from.
func (ix *Index) Index(name string) (uint, bool) {
	i, ok := ix.pos[name]

	return i, ok
}
