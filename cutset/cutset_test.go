package cutset_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rakhimov/scram-sub001/cutset"
	"github.com/rakhimov/scram-sub001/expression"
	"github.com/rakhimov/scram-sub001/mef"
	"github.com/rakhimov/scram-sub001/sop"
)

// buildPumpValveModel reproduces scenario S1: Top = (PumpOne OR
// ValveOne) AND (PumpTwo OR ValveTwo), whose expansion is exactly
// {{PumpOne,PumpTwo},{PumpOne,ValveTwo},{PumpTwo,ValveOne},
// {ValveOne,ValveTwo}}.
func buildPumpValveModel(t *testing.T) *mef.Model {
	t.Helper()
	m := mef.NewModel("pump-valve", 1)
	ft, err := m.AddFaultTree("FT", mef.RolePublic)
	require.NoError(t, err)

	for _, n := range []string{"PumpOne", "PumpTwo", "ValveOne", "ValveTwo"} {
		_, err := ft.AddBasicEvent(n, mef.RolePublic, expression.Constant(0.5))
		require.NoError(t, err)
	}

	_, err = ft.AddGate("TrainA", mef.RolePublic, &mef.Formula{
		Connective: mef.ConnOr,
		Args: []mef.Literal{
			{Event: &mef.Ref{Kind: mef.EventBasic, Name: "FT.PumpOne"}},
			{Event: &mef.Ref{Kind: mef.EventBasic, Name: "FT.ValveOne"}},
		},
	})
	require.NoError(t, err)
	_, err = ft.AddGate("TrainB", mef.RolePublic, &mef.Formula{
		Connective: mef.ConnOr,
		Args: []mef.Literal{
			{Event: &mef.Ref{Kind: mef.EventBasic, Name: "FT.PumpTwo"}},
			{Event: &mef.Ref{Kind: mef.EventBasic, Name: "FT.ValveTwo"}},
		},
	})
	require.NoError(t, err)
	_, err = ft.AddGate("Top", mef.RolePublic, &mef.Formula{
		Connective: mef.ConnAnd,
		Args: []mef.Literal{
			{Event: &mef.Ref{Kind: mef.EventGate, Name: "FT.TrainA"}},
			{Event: &mef.Ref{Kind: mef.EventGate, Name: "FT.TrainB"}},
		},
	})
	require.NoError(t, err)

	require.NoError(t, m.Validate())
	require.NoError(t, m.MarkAnalysable())

	return m
}

func TestAlgebraicScenarioS1(t *testing.T) {
	m := buildPumpValveModel(t)
	ix := cutset.NewIndex(m)

	expr, err := cutset.Algebraic{}.Compute(context.Background(), m, ix, "FT.Top", cutset.Options{})
	require.NoError(t, err)
	assert.Equal(t, 4, expr.Count())

	want := map[[2]string]bool{
		{"FT.PumpOne", "FT.PumpTwo"}:  true,
		{"FT.PumpOne", "FT.ValveTwo"}: true,
		{"FT.PumpTwo", "FT.ValveOne"}: true,
		{"FT.ValveOne", "FT.ValveTwo"}: true,
	}
	for _, g := range expr.Groups() {
		names := groupNames(ix, g)
		require.Len(t, names, 2)
		key := [2]string{names[0], names[1]}
		assert.True(t, want[key] || want[[2]string{names[1], names[0]}], "unexpected group %v", names)
	}
}

func TestCombinatorialScenarioS1(t *testing.T) {
	m := buildPumpValveModel(t)
	ix := cutset.NewIndex(m)

	expr, err := cutset.Combinatorial{}.Compute(context.Background(), m, ix, "FT.Top", cutset.Options{MaxOrder: 2})
	require.NoError(t, err)
	assert.Equal(t, 4, expr.Count())
}

func TestAlgebraicAndCombinatorialAgreeOnS1(t *testing.T) {
	m := buildPumpValveModel(t)
	ix := cutset.NewIndex(m)

	alg, err := cutset.Algebraic{}.Compute(context.Background(), m, ix, "FT.Top", cutset.Options{MaxOrder: 2})
	require.NoError(t, err)
	comb, err := cutset.Combinatorial{}.Compute(context.Background(), m, ix, "FT.Top", cutset.Options{MaxOrder: 2})
	require.NoError(t, err)

	assert.True(t, alg.Equal(comb))
}

func TestExprEvalMatchesTopGateOverAllAssignments(t *testing.T) {
	m := buildPumpValveModel(t)
	ix := cutset.NewIndex(m)
	expr, err := cutset.Algebraic{}.Compute(context.Background(), m, ix, "FT.Top", cutset.Options{})
	require.NoError(t, err)

	n := int(ix.Len())
	for mask := 0; mask < 1<<uint(n); mask++ {
		bits := make([]bool, n)
		assignment := make(mef.Assignment, n)
		for i := 0; i < n; i++ {
			if mask&(1<<uint(i)) != 0 {
				bits[i] = true
				assignment[ix.Name(uint(i))] = true
			}
		}
		want, err := m.EvalGate("FT.Top", assignment)
		require.NoError(t, err)
		assert.Equal(t, want, expr.Eval(bits), "mismatch at mask %b", mask)
	}
}

func TestAlgebraicNonCoherentProducesPrimeImplicants(t *testing.T) {
	m := mef.NewModel("non-coherent", 1)
	ft, err := m.AddFaultTree("FT", mef.RolePublic)
	require.NoError(t, err)
	for _, n := range []string{"PumpOne", "PumpTwo", "ValveOne"} {
		_, err := ft.AddBasicEvent(n, mef.RolePublic, expression.Constant(0.5))
		require.NoError(t, err)
	}
	_, err = ft.AddGate("Top", mef.RolePublic, &mef.Formula{
		Connective: mef.ConnOr,
		Args: []mef.Literal{
			{Nested: &mef.Formula{
				Connective: mef.ConnAnd,
				Args: []mef.Literal{
					{Event: &mef.Ref{Kind: mef.EventBasic, Name: "FT.PumpOne"}},
					{Event: &mef.Ref{Kind: mef.EventBasic, Name: "FT.PumpTwo"}},
				},
			}},
			{Nested: &mef.Formula{
				Connective: mef.ConnAnd,
				Args: []mef.Literal{
					{Event: &mef.Ref{Kind: mef.EventBasic, Name: "FT.PumpOne"}, Complement: true},
					{Event: &mef.Ref{Kind: mef.EventBasic, Name: "FT.ValveOne"}},
				},
			}},
		},
	})
	require.NoError(t, err)
	require.NoError(t, m.Validate())
	require.NoError(t, m.MarkAnalysable())

	ix := cutset.NewIndex(m)
	expr, err := cutset.Algebraic{}.Compute(context.Background(), m, ix, "FT.Top", cutset.Options{})
	require.NoError(t, err)

	assert.True(t, expr.Prime())
	assert.Equal(t, 2, expr.Count())
}

func TestCombinatorialRejectsPrimeMode(t *testing.T) {
	m := buildPumpValveModel(t)
	ix := cutset.NewIndex(m)
	_, err := cutset.Combinatorial{}.Compute(context.Background(), m, ix, "FT.Top", cutset.Options{Prime: true})
	require.ErrorIs(t, err, cutset.ErrCombinatorialPrimeUnsupported)
}

func TestAlgebraicRespectsCancellation(t *testing.T) {
	m := buildPumpValveModel(t)
	ix := cutset.NewIndex(m)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := cutset.Algebraic{}.Compute(ctx, m, ix, "FT.Top", cutset.Options{})
	require.ErrorIs(t, err, cutset.ErrCancelled)
}

func groupNames(ix *cutset.Index, g sop.Group) []string {
	var names []string
	for i := uint(0); i < ix.Len(); i++ {
		if g.Pos.Get(i) == 1 {
			names = append(names, ix.Name(i))
		}
	}

	return names
}
