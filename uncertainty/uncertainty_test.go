package uncertainty_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rakhimov/scram-sub001/cutset"
	"github.com/rakhimov/scram-sub001/expression"
	"github.com/rakhimov/scram-sub001/mef"
	"github.com/rakhimov/scram-sub001/uncertainty"
)

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

func TestRunConvergesToExactProbability(t *testing.T) {
	m := buildS1(t)
	ix := cutset.NewIndex(m)
	rng := rand.New(rand.NewSource(1))

	report, err := uncertainty.Run(context.Background(), m, ix, "FT.Top", rng, 200000, 1)
	require.NoError(t, err)

	assert.InDelta(t, 0.646, report.TopProbability, 0.02)
}

func TestRunRejectsNonPositiveTrials(t *testing.T) {
	m := buildS1(t)
	ix := cutset.NewIndex(m)
	rng := rand.New(rand.NewSource(1))

	_, err := uncertainty.Run(context.Background(), m, ix, "FT.Top", rng, 0, 1)
	require.ErrorIs(t, err, uncertainty.ErrNoTrials)
}

func TestRunRespectsCancellation(t *testing.T) {
	m := buildS1(t)
	ix := cutset.NewIndex(m)
	rng := rand.New(rand.NewSource(1))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := uncertainty.Run(ctx, m, ix, "FT.Top", rng, 100, 1)
	require.Error(t, err)
}

func TestImportanceSumsAcrossModes(t *testing.T) {
	m := buildS1(t)
	ix := cutset.NewIndex(m)
	rng := rand.New(rand.NewSource(7))

	report, err := uncertainty.Run(context.Background(), m, ix, "FT.Top", rng, 50000, 1)
	require.NoError(t, err)

	assert.Greater(t, report.Importance["FT.PumpOne"], 0.0)
	assert.Greater(t, len(report.Modes), 0)
}

func TestCompressFoldsSupersetsIntoSubsets(t *testing.T) {
	m := buildS1(t)
	ix := cutset.NewIndex(m)
	rng := rand.New(rand.NewSource(3))

	report, err := uncertainty.Run(context.Background(), m, ix, "FT.Top", rng, 50000, 1)
	require.NoError(t, err)

	compressed := uncertainty.Compress(report)
	assert.LessOrEqual(t, len(compressed.Modes), len(report.Modes))

	for i, a := range compressed.Modes {
		for j, b := range compressed.Modes {
			if i == j {
				continue
			}
			assert.False(t, a.Bits.Subset(b.Bits), "mode %v should not be a subset of %v after compression", a.Names, b.Names)
		}
	}
}
