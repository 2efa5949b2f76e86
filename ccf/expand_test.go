package ccf_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rakhimov/scram-sub001/ccf"
	"github.com/rakhimov/scram-sub001/expression"
	"github.com/rakhimov/scram-sub001/mef"
)

func buildBetaFactorModel(t *testing.T) (*mef.Model, *mef.Container, []string) {
	t.Helper()
	m := mef.NewModel("ccf-demo", 1)
	ft, err := m.AddFaultTree("FT", mef.RolePublic)
	require.NoError(t, err)

	names := []string{"A", "B", "C"}
	qualified := make([]string, len(names))
	for i, n := range names {
		_, err := ft.AddBasicEvent(n, mef.RolePublic, expression.Constant(0))
		require.NoError(t, err)
		qualified[i] = "FT." + n
	}

	top := &mef.Formula{
		Connective: mef.ConnOr,
		Args: []mef.Literal{
			{Event: &mef.Ref{Kind: mef.EventBasic, Name: qualified[0]}},
			{Event: &mef.Ref{Kind: mef.EventBasic, Name: qualified[1]}},
			{Event: &mef.Ref{Kind: mef.EventBasic, Name: qualified[2]}},
		},
	}
	_, err = ft.AddGate("Top", mef.RolePublic, top)
	require.NoError(t, err)

	_, err = ft.AddCcfGroup("CCF1", mef.RolePublic, mef.CcfBetaFactor, names,
		expression.Constant(0.01), []mef.CcfFactor{{Level: 2, Value: expression.Constant(0.1)}})
	require.NoError(t, err)

	require.NoError(t, m.Validate())

	return m, ft, qualified
}

func TestExpandBetaFactorScenarioS5(t *testing.T) {
	m, _, _ := buildBetaFactorModel(t)

	require.NoError(t, ccf.Expand(m))
	assert.Equal(t, mef.StagePreprocessed, m.Stage)
	assert.Empty(t, m.CcfGroups)

	var singletons, triples int
	for name, be := range m.BasicEvents {
		if !strings.HasPrefix(name, "FT.CCF1.S") {
			continue
		}
		mean, err := be.Expr.Mean(m, 0)
		require.NoError(t, err)
		if name == "FT.CCF1.S1_2_3" {
			assert.InDelta(t, 0.001, mean, 1e-9)
			triples++

			continue
		}
		assert.InDelta(t, 0.009, mean, 1e-9)
		singletons++
	}
	assert.Equal(t, 3, singletons)
	assert.Equal(t, 1, triples)
}

func TestExpandBetaFactorRewritesMemberLiterals(t *testing.T) {
	m, _, qualified := buildBetaFactorModel(t)
	require.NoError(t, ccf.Expand(m))

	v, err := m.EvalGate("FT.Top", mef.Assignment{"FT.CCF1.S1": true})
	require.NoError(t, err)
	assert.True(t, v)

	for _, orig := range qualified {
		_, stillPresent := m.BasicEvents[orig]
		assert.True(t, stillPresent, "original member stays in the arena, unreferenced by any gate now")
	}
}

func TestExpandRejectsNonValidatedModel(t *testing.T) {
	m := mef.NewModel("m", 1)
	err := ccf.Expand(m)
	require.ErrorIs(t, err, ccf.ErrNotValidated)
}

func TestExpandMGLGeneratesAllSubsets(t *testing.T) {
	m := mef.NewModel("mgl", 1)
	ft, err := m.AddFaultTree("FT", mef.RolePublic)
	require.NoError(t, err)
	names := []string{"A", "B", "C"}
	for _, n := range names {
		_, err := ft.AddBasicEvent(n, mef.RolePublic, expression.Constant(0))
		require.NoError(t, err)
	}
	_, err = ft.AddGate("Top", mef.RolePublic, &mef.Formula{
		Connective: mef.ConnOr,
		Args: []mef.Literal{
			{Event: &mef.Ref{Kind: mef.EventBasic, Name: "FT.A"}},
			{Event: &mef.Ref{Kind: mef.EventBasic, Name: "FT.B"}},
			{Event: &mef.Ref{Kind: mef.EventBasic, Name: "FT.C"}},
		},
	})
	require.NoError(t, err)
	_, err = ft.AddCcfGroup("CCF1", mef.RolePublic, mef.CcfMGL, names, expression.Constant(0.01),
		[]mef.CcfFactor{
			{Level: 2, Value: expression.Constant(0.1)},
			{Level: 3, Value: expression.Constant(0.2)},
		})
	require.NoError(t, err)
	require.NoError(t, m.Validate())

	require.NoError(t, ccf.Expand(m))

	// 3 singletons + 3 pairs + 1 triple = 7 auxiliary events, plus the
	// 3 untouched original members = 10 basic events total.
	assert.Len(t, m.BasicEvents, 10)
}
