package analysis

import (
	"context"
	"math/rand"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/rakhimov/scram-sub001/mef"
)

// Metrics is the optional set of prometheus counters/gauges a host may
// register on its own registry to observe progress (§5's "additional
// instrumentation" note). Never required for correctness. Run feeds
// CombinationsEvaluated (through Progress) and MonteCarloTrialsRun;
// nothing in this module adds to InclusionExclusionSum.
type Metrics struct {
	CombinationsEvaluated prometheus.Counter
	MonteCarloTrialsRun   prometheus.Counter
	InclusionExclusionSum prometheus.Counter
}

// NewMetrics builds a fresh, unregistered Metrics value.
func NewMetrics() *Metrics {
	return &Metrics{
		CombinationsEvaluated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "scram_combinations_evaluated_total",
			Help: "Combinatorial cut-set candidate combinations evaluated.",
		}),
		MonteCarloTrialsRun: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "scram_monte_carlo_trials_total",
			Help: "Monte-Carlo uncertainty trials executed.",
		}),
		InclusionExclusionSum: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "scram_inclusion_exclusion_terms_total",
			Help: "Inclusion-exclusion terms summed during quantification.",
		}),
	}
}

// Context is the explicitly-passed analysis context of §5/§9: the
// model, a caller-owned PRNG, a cancellation context.Context, and the
// optional progress/logging/metrics collaborators. Not safe for
// concurrent reuse across analyses — a host running independent
// analyses concurrently constructs one Context per goroutine, each
// wrapping its own Model and its own PRNG.
type Context struct {
	ctx   context.Context
	Model *mef.Model
	RNG   *rand.Rand

	// progress, if set, is called with (done, total) at unspecified
	// granularity from the computing thread; it must be non-blocking.
	progress func(done, total uint64)

	// Logger, if set, receives one Warn() event per §7 warning
	// condition quant/uncertainty report. Logging is additive to the
	// Result.Warnings field, never the only channel.
	Logger *zerolog.Logger

	metrics *Metrics

	// progressDone is the last done value Progress saw, so the
	// combinations counter grows by the difference only.
	progressDone uint64
}

// NewContext builds a Context over an already-built model and an
// already-seeded PRNG. ctx governs cancellation (§5: polled at
// well-defined checkpoints); pass context.Background() for no
// cancellation.
func NewContext(ctx context.Context, m *mef.Model, rng *rand.Rand) (*Context, error) {
	if m == nil || rng == nil {
		return nil, ErrNoContext
	}

	return &Context{ctx: ctx, Model: m, RNG: rng}, nil
}

// WithProgress installs a non-blocking progress callback and returns c
// for chaining.
func (c *Context) WithProgress(fn func(done, total uint64)) *Context {
	c.progress = fn

	return c
}

// WithLogger installs a *zerolog.Logger and returns c for chaining.
func (c *Context) WithLogger(l *zerolog.Logger) *Context {
	c.Logger = l

	return c
}

// WithMetrics installs a Metrics value and returns c for chaining.
func (c *Context) WithMetrics(m *Metrics) *Context {
	c.metrics = m

	return c
}

// Metrics returns the installed Metrics value, or nil if none was set.
func (c *Context) Metrics() *Metrics { return c.metrics }

// Progress invokes the installed callback, if any. Safe to call with no
// callback installed.
func (c *Context) Progress(done, total uint64) {
	if c.progress != nil {
		c.progress(done, total)
	}
	if c.metrics != nil {
		if done <= c.progressDone {
			c.progressDone = 0 // a new computation restarted the count
		}
		c.metrics.CombinationsEvaluated.Add(float64(done - c.progressDone))
		c.progressDone = done
	}
}

// Cancelled reports whether c's context.Context has been cancelled,
// the plain ctx.Err() != nil check every cooperative-cancellation
// checkpoint in cutset/uncertainty polls via ctx directly; exposed here
// too so a host orchestrating outside this package can check the same
// condition.
func (c *Context) Cancelled() bool { return c.ctx.Err() != nil }

// Done returns the underlying context.Context for direct use by
// collaborators (cutset.Engine.Compute, uncertainty.Run) that already
// accept one.
func (c *Context) Done() context.Context { return c.ctx }
