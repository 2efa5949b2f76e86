package expression_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rakhimov/scram-sub001/expression"
)

type emptyEnv struct{}

func (emptyEnv) Param(name string) (*expression.Expression, error) {
	return nil, expression.ErrUnknownParam
}

type mapEnv map[string]*expression.Expression

func (m mapEnv) Param(name string) (*expression.Expression, error) {
	if e, ok := m[name]; ok {
		return e, nil
	}

	return nil, expression.ErrUnknownParam
}

func TestExponentialMeanMatchesScenarioS2(t *testing.T) {
	lambda := 1e-5
	expr := expression.Nary(expression.KindExponential, expression.Constant(lambda), expression.MissionTime())
	require.NoError(t, expr.TypeCheck(emptyEnv{}))

	steps := []struct {
		t    float64
		want float64
	}{
		{0, 0},
		{24, 2.399e-4},
		{48, 4.799e-4},
		{72, 7.197e-4},
		{96, 9.595e-4},
		{120, 1.199e-3},
	}
	for _, s := range steps {
		got, err := expr.Mean(emptyEnv{}, s.t)
		require.NoError(t, err)
		assert.InDelta(t, s.want, got, 1e-6)
	}
}

func TestMeanBeforeTypeCheckFails(t *testing.T) {
	expr := expression.Constant(1)
	_, err := expr.Mean(emptyEnv{}, 0)
	require.ErrorIs(t, err, expression.ErrNotTypeChecked)
}

func TestSampleWithoutRNGPanics(t *testing.T) {
	expr := expression.Constant(1)
	require.NoError(t, expr.TypeCheck(emptyEnv{}))
	assert.Panics(t, func() { _, _ = expr.Sample(nil, emptyEnv{}, 0) })
}

func TestParamCycleDetected(t *testing.T) {
	a := expression.ParamRef("b")
	b := expression.ParamRef("a")
	env := mapEnv{"a": a, "b": b}
	err := a.TypeCheck(env)
	require.ErrorIs(t, err, expression.ErrParamCycle)
}

func TestArityValidation(t *testing.T) {
	bad := &expression.Expression{Kind: expression.KindAdd, Args: []*expression.Expression{expression.Constant(1)}}
	err := bad.TypeCheck(emptyEnv{})
	require.ErrorIs(t, err, expression.ErrArity)
}

func TestUniformMeanAndSampleWithinBounds(t *testing.T) {
	expr := expression.Nary(expression.KindUniform, expression.Constant(0.2), expression.Constant(0.4))
	require.NoError(t, expr.TypeCheck(emptyEnv{}))

	mean, err := expr.Mean(emptyEnv{}, 0)
	require.NoError(t, err)
	assert.InDelta(t, 0.3, mean, 1e-9)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 100; i++ {
		v, err := expr.Sample(rng, emptyEnv{}, 0)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, v, 0.2)
		assert.LessOrEqual(t, v, 0.4)
	}
}

func TestGammaMeanMatchesShapeScale(t *testing.T) {
	expr := expression.Nary(expression.KindGamma, expression.Constant(2), expression.Constant(3))
	require.NoError(t, expr.TypeCheck(emptyEnv{}))
	mean, err := expr.Mean(emptyEnv{}, 0)
	require.NoError(t, err)
	assert.InDelta(t, 6.0, mean, 1e-9)
}

func TestHistogramMeanWeightedAverage(t *testing.T) {
	expr := expression.Histogram(
		expression.HistogramBin{Weight: 1, Lo: 0, Hi: 2},
		expression.HistogramBin{Weight: 1, Lo: 2, Hi: 4},
	)
	require.NoError(t, expr.TypeCheck(emptyEnv{}))
	mean, err := expr.Mean(emptyEnv{}, 0)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, mean, 1e-9)
}

func TestDeterministicSampleReproducibleWithSameSeed(t *testing.T) {
	expr := expression.Nary(expression.KindNormal, expression.Constant(0), expression.Constant(1))
	require.NoError(t, expr.TypeCheck(emptyEnv{}))

	r1 := rand.New(rand.NewSource(7))
	r2 := rand.New(rand.NewSource(7))
	v1, err := expr.Sample(r1, emptyEnv{}, 0)
	require.NoError(t, err)
	v2, err := expr.Sample(r2, emptyEnv{}, 0)
	require.NoError(t, err)
	assert.Equal(t, v1, v2)
}
