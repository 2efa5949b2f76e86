package quant_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rakhimov/scram-sub001/cutset"
	"github.com/rakhimov/scram-sub001/expression"
	"github.com/rakhimov/scram-sub001/mef"
	"github.com/rakhimov/scram-sub001/quant"
)

// buildS1 reproduces scenario S1's pump/valve tree with its stated
// probabilities: P(PumpOne)=0.6, P(PumpTwo)=0.7, P(ValveOne)=0.4,
// P(ValveTwo)=0.5.
func buildS1(t *testing.T) *mef.Model {
	t.Helper()
	m := mef.NewModel("pump-valve", 1)
	ft, err := m.AddFaultTree("FT", mef.RolePublic)
	require.NoError(t, err)

	probs := map[string]float64{
		"PumpOne": 0.6, "PumpTwo": 0.7, "ValveOne": 0.4, "ValveTwo": 0.5,
	}
	for _, n := range []string{"PumpOne", "PumpTwo", "ValveOne", "ValveTwo"} {
		_, err := ft.AddBasicEvent(n, mef.RolePublic, expression.Constant(probs[n]))
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

func TestQuantifyScenarioS1(t *testing.T) {
	m := buildS1(t)
	ix := cutset.NewIndex(m)
	expr, err := cutset.Algebraic{}.Compute(context.Background(), m, ix, "FT.Top", cutset.Options{})
	require.NoError(t, err)

	probs, err := quant.Probabilities(m, ix, 1)
	require.NoError(t, err)

	result := quant.Quantify(expr, probs, ix, 0)

	assert.InDelta(t, 0.646, result.Exact, 1e-3)
	assert.InDelta(t, 0.766144, result.MCUB, 1e-6)
	assert.False(t, result.NonCoherent)

	fv := result.Importance["FT.PumpOne"].FussellVesely
	assert.InDelta(t, 0.7895, fv, 1e-3)
}

func TestRareEventSumsWithoutCorrection(t *testing.T) {
	m := buildS1(t)
	ix := cutset.NewIndex(m)
	expr, err := cutset.Algebraic{}.Compute(context.Background(), m, ix, "FT.Top", cutset.Options{})
	require.NoError(t, err)
	probs, err := quant.Probabilities(m, ix, 1)
	require.NoError(t, err)

	rare, loose := quant.RareEvent(expr, probs)
	assert.InDelta(t, 0.42+0.3+0.28+0.2, rare, 1e-9)
	assert.True(t, loose)
}

func TestMCUBDetectsNonCoherence(t *testing.T) {
	m := mef.NewModel("non-coherent", 1)
	ft, err := m.AddFaultTree("FT", mef.RolePublic)
	require.NoError(t, err)
	_, err = ft.AddBasicEvent("A", mef.RolePublic, expression.Constant(0.5))
	require.NoError(t, err)
	_, err = ft.AddBasicEvent("B", mef.RolePublic, expression.Constant(0.5))
	require.NoError(t, err)
	_, err = ft.AddGate("Top", mef.RolePublic, &mef.Formula{
		Connective: mef.ConnAnd,
		Args: []mef.Literal{
			{Event: &mef.Ref{Kind: mef.EventBasic, Name: "FT.A"}, Complement: true},
			{Event: &mef.Ref{Kind: mef.EventBasic, Name: "FT.B"}},
		},
	})
	require.NoError(t, err)
	require.NoError(t, m.Validate())
	require.NoError(t, m.MarkAnalysable())

	ix := cutset.NewIndex(m)
	expr, err := cutset.Algebraic{}.Compute(context.Background(), m, ix, "FT.Top", cutset.Options{})
	require.NoError(t, err)
	probs, err := quant.Probabilities(m, ix, 1)
	require.NoError(t, err)

	_, nonCoherent := quant.MCUB(expr, probs)
	assert.True(t, nonCoherent)
}

func TestImportanceLimitsAtProbabilityOne(t *testing.T) {
	m := mef.NewModel("limits", 1)
	ft, err := m.AddFaultTree("FT", mef.RolePublic)
	require.NoError(t, err)
	_, err = ft.AddBasicEvent("Certain", mef.RolePublic, expression.Constant(1))
	require.NoError(t, err)
	_, err = ft.AddBasicEvent("Other", mef.RolePublic, expression.Constant(0.3))
	require.NoError(t, err)
	_, err = ft.AddGate("Top", mef.RolePublic, &mef.Formula{
		Connective: mef.ConnAnd,
		Args: []mef.Literal{
			{Event: &mef.Ref{Kind: mef.EventBasic, Name: "FT.Certain"}},
			{Event: &mef.Ref{Kind: mef.EventBasic, Name: "FT.Other"}},
		},
	})
	require.NoError(t, err)
	require.NoError(t, m.Validate())
	require.NoError(t, m.MarkAnalysable())

	ix := cutset.NewIndex(m)
	expr, err := cutset.Algebraic{}.Compute(context.Background(), m, ix, "FT.Top", cutset.Options{})
	require.NoError(t, err)
	probs, err := quant.Probabilities(m, ix, 1)
	require.NoError(t, err)

	exact := quant.Exact(expr, probs, 0)
	imp := quant.Importances(expr, probs, ix, exact)["FT.Certain"]

	assert.InDelta(t, 1.0, imp.RAW, 1e-9)
	assert.InDelta(t, 0.0, imp.RRW, 1e-9)
	assert.False(t, math.IsInf(imp.Birnbaum, 0))
}

func TestCurveScenarioS2(t *testing.T) {
	m := mef.NewModel("exp-event", 120)
	ft, err := m.AddFaultTree("FT", mef.RolePublic)
	require.NoError(t, err)
	lambda := expression.Constant(1e-5)
	expr := expression.Nary(expression.KindExponential, lambda, expression.MissionTime())
	_, err = ft.AddBasicEvent("Only", mef.RolePublic, expr)
	require.NoError(t, err)
	_, err = ft.AddGate("Top", mef.RolePublic, &mef.Formula{
		Connective: mef.ConnNull,
		Args: []mef.Literal{
			{Event: &mef.Ref{Kind: mef.EventBasic, Name: "FT.Only"}},
		},
	})
	require.NoError(t, err)
	require.NoError(t, m.Validate())
	require.NoError(t, m.MarkAnalysable())

	ix := cutset.NewIndex(m)
	topExpr, err := cutset.Algebraic{}.Compute(context.Background(), m, ix, "FT.Top", cutset.Options{})
	require.NoError(t, err)

	curve, err := quant.Curve(m, ix, topExpr, 120, 5, 0)
	require.NoError(t, err)
	require.Len(t, curve, 6)

	want := []float64{0, 2.399e-4, 4.799e-4, 7.197e-4, 9.595e-4, 1.199e-3}
	for i, w := range want {
		assert.InDelta(t, w, curve[i].Probability, 1e-6)
	}
}

func TestBandOf(t *testing.T) {
	assert.Equal(t, quant.SIL4, quant.BandOf(quant.ModeOnDemand, 5e-5))
	assert.Equal(t, quant.SIL1, quant.BandOf(quant.ModeOnDemand, 5e-2))
	assert.Equal(t, quant.SILOutOfRange, quant.BandOf(quant.ModeOnDemand, 0.5))
}

func TestTimeWeightedBands(t *testing.T) {
	curve := []quant.CurvePoint{
		{Time: 0, Probability: 5e-5},
		{Time: 60, Probability: 5e-4},
		{Time: 120, Probability: 5e-4},
	}
	frac := quant.TimeWeightedBands(quant.ModeOnDemand, curve)
	assert.InDelta(t, 0.5, frac[quant.SIL4], 1e-9)
	assert.InDelta(t, 0.5, frac[quant.SIL3], 1e-9)
}
