package sop_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rakhimov/scram-sub001/bitset"
	"github.com/rakhimov/scram-sub001/sop"
)

func group(n uint, bits ...uint) sop.Group {
	g := sop.NewGroup(n)
	for _, b := range bits {
		g.Pos = g.Pos.Set(b, 1)
	}

	return g
}

func TestOrGroupAbsorption(t *testing.T) {
	e := sop.New(3, false)
	assert.True(t, e.OrGroup(group(3, 0, 1))) // {0,1}
	// A superset of an existing group is absorbed, not added.
	assert.False(t, e.OrGroup(group(3, 0, 1, 2))) // {0,1,2} absorbed by {0,1}
	assert.Equal(t, 1, e.Count())

	// A subset of an existing group dominates it: {0} replaces {0,1}.
	assert.True(t, e.OrGroup(group(3, 0)))
	assert.Equal(t, 1, e.Count())
	got := e.Groups()[0]
	assert.Equal(t, uint(1), got.Order())
}

func TestOrGroupIdempotentCommutative(t *testing.T) {
	e1 := sop.New(3, false)
	e1.OrGroup(group(3, 0))
	e1.OrGroup(group(3, 1))

	e2 := sop.New(3, false)
	e2.OrGroup(group(3, 1))
	e2.OrGroup(group(3, 0))

	assert.True(t, e1.Equal(e2))

	// Idempotent: re-adding an existing group changes nothing.
	before := e1.Count()
	e1.OrGroup(group(3, 0))
	assert.Equal(t, before, e1.Count())
}

func TestAndExprIdentity(t *testing.T) {
	identity := sop.New(3, false)
	identity.OrGroup(sop.NewGroup(3)) // empty group = Boolean TRUE

	e := sop.New(3, false)
	e.OrGroup(group(3, 0))
	e.OrGroup(group(3, 1))

	got := e.AndExpr(identity, 0)
	assert.True(t, got.Equal(e))
}

func TestAndExprOrderLimit(t *testing.T) {
	a := sop.New(4, false)
	a.OrGroup(group(4, 0))
	a.OrGroup(group(4, 1))
	b := sop.New(4, false)
	b.OrGroup(group(4, 2))
	b.OrGroup(group(4, 3))

	got := a.AndExpr(b, 1)
	// Every pairwise union has order 2 > limit 1, so nothing survives.
	assert.Equal(t, 0, got.Count())

	got2 := a.AndExpr(b, 2)
	assert.Equal(t, 4, got2.Count())
}

func TestEval(t *testing.T) {
	e := sop.New(3, false)
	e.OrGroup(group(3, 0, 1))
	e.OrGroup(group(3, 2))

	assert.True(t, e.Eval([]bool{true, true, false}))
	assert.True(t, e.Eval([]bool{false, false, true}))
	assert.False(t, e.Eval([]bool{true, false, false}))
}

func TestProbabilityExactMatchesPumpValveTree(t *testing.T) {
	// S1: {PumpOne,PumpTwo} {PumpOne,ValveTwo} {PumpTwo,ValveOne} {ValveOne,ValveTwo}
	// index 0=PumpOne 1=PumpTwo 2=ValveOne 3=ValveTwo
	e := sop.New(4, false)
	e.OrGroup(group(4, 0, 1))
	e.OrGroup(group(4, 0, 3))
	e.OrGroup(group(4, 1, 2))
	e.OrGroup(group(4, 2, 3))

	probs := []float64{0.6, 0.7, 0.4, 0.5}
	got := e.Probability(probs, 0, 0)
	assert.InDelta(t, 0.646, got, 0.01)
}

func TestProbabilityRareEventUpperBound(t *testing.T) {
	e := sop.New(4, false)
	e.OrGroup(group(4, 0, 1))
	e.OrGroup(group(4, 0, 3))
	e.OrGroup(group(4, 1, 2))
	e.OrGroup(group(4, 2, 3))
	probs := []float64{0.6, 0.7, 0.4, 0.5}

	rare := 0.0
	for _, g := range e.Groups() {
		rare += sop.GroupProb(g, probs)
	}
	assert.InDelta(t, 1.2, rare, 0.0001) // 0.42+0.30+0.28+0.20: the linear sum exceeds 1
}

func TestSerializeParseRoundTrip(t *testing.T) {
	e := sop.New(4, false)
	e.OrGroup(group(4, 0, 1))
	e.OrGroup(group(4, 2, 3))

	var buf bytes.Buffer
	require.NoError(t, e.Serialize(&buf))

	got, err := sop.Parse(&buf)
	require.NoError(t, err)
	assert.True(t, e.Equal(got))
}

func TestSerializePrimeUnsupported(t *testing.T) {
	e := sop.New(3, true)
	var buf bytes.Buffer
	err := e.Serialize(&buf)
	require.ErrorIs(t, err, sop.ErrPrimeUnsupportedSerialise)
}

func TestParseMalformedLine(t *testing.T) {
	_, err := sop.Parse(bytes.NewBufferString("10x1\n\n"))
	require.ErrorIs(t, err, sop.ErrMalformedLine)
}

func TestPrimeImplicantContainment(t *testing.T) {
	e := sop.New(2, true)
	g1 := sop.NewGroup(2)
	g1.Neg = g1.Neg.Set(0, 1) // ¬x0
	e.OrGroup(g1)

	g2 := sop.NewGroup(2)
	g2.Neg = g2.Neg.Set(0, 1)
	g2.Pos = g2.Pos.Set(1, 1) // ¬x0 ∧ x1, subsumed by ¬x0
	added := e.OrGroup(g2)
	assert.False(t, added)
	assert.Equal(t, 1, e.Count())
}

func TestBitsetStillExported(t *testing.T) {
	// sanity: sop depends on bitset's public API, not internals.
	s := bitset.New(2).Set(0, 1)
	assert.Equal(t, uint(1), s.PopCount())
}
