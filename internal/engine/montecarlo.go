package engine

import (
	"context"
	"log/slog"
	"math/rand"
	"runtime"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Cava11/Glosten-and-Milgorm-model/internal/domain"
	"github.com/Cava11/Glosten-and-Milgorm-model/internal/infra"
	"github.com/Cava11/Glosten-and-Milgorm-model/internal/quote"
)

// seedStride decorrelates per-path seeds derived from the base seed.
// Knuth's MMIX multiplier; the exact constant only needs to be odd.
const seedStride = 6364136223846793005

// MonteCarlo runs many independent path simulations and averages the
// per-period observables. Paths never share random state: path i always
// runs on its own source seeded from the base seed, so the averaged
// series are bit-identical for any worker count.
type MonteCarlo struct {
	params  domain.Params
	policy  quote.Policy
	workers int

	// onProgress, when set, is invoked after each completed path with
	// (completed, total). Called from worker goroutines.
	onProgress func(completed, total int)
}

// Option configures a MonteCarlo driver.
type Option func(*MonteCarlo)

// WithWorkers caps the number of concurrent path workers. Values < 1
// fall back to GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(m *MonteCarlo) { m.workers = n }
}

// WithProgress registers a per-path completion callback.
func WithProgress(fn func(completed, total int)) Option {
	return func(m *MonteCarlo) { m.onProgress = fn }
}

// NewMonteCarlo creates a driver for the given parameters and policy.
func NewMonteCarlo(p domain.Params, policy quote.Policy, opts ...Option) *MonteCarlo {
	m := &MonteCarlo{params: p, policy: policy}
	for _, opt := range opts {
		opt(m)
	}
	if m.workers < 1 {
		m.workers = runtime.GOMAXPROCS(0)
	}
	return m
}

// pathSeed derives the seed for path i from the base seed. Overflow
// wraps, which is fine: distinctness is all that matters.
func (m *MonteCarlo) pathSeed(i int) int64 {
	return m.params.Seed + int64(i)*seedStride
}

// Run executes all replications and returns the per-period means.
// Parameters are validated before any simulation work starts.
func (m *MonteCarlo) Run(ctx context.Context) (*domain.AggregateResult, error) {
	if err := m.params.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	p := m.params
	records := make([]domain.PathRecord, p.Paths)

	var completed atomic.Int64
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(m.workers)

	for i := 0; i < p.Paths; i++ {
		i := i
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			sim := NewPathSimulator(p, m.policy)
			rec, err := sim.Run(rand.New(rand.NewSource(m.pathSeed(i))))
			if err != nil {
				return err
			}
			records[i] = rec

			infra.GlobalMetrics.RecordPath(p.Ticks)
			done := int(completed.Add(1))
			if m.onProgress != nil {
				m.onProgress(done, p.Paths)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := reduce(records, p.Ticks)

	slog.Info("Monte Carlo run completed",
		slog.Int("paths", p.Paths),
		slog.Int("ticks", p.Ticks),
		slog.String("policy", m.policy.Name()),
		slog.Duration("elapsed", time.Since(start)))

	return result, nil
}

// reduce folds the collected paths into per-period arithmetic means.
// Sequential on purpose: float summation order stays fixed.
func reduce(records []domain.PathRecord, ticks int) *domain.AggregateResult {
	result := domain.NewAggregateResult(ticks)
	for _, rec := range records {
		for t, tick := range rec.Ticks {
			result.Spread[t] += tick.Spread
			result.Belief[t] += tick.Belief
			result.Fundamental[t] += tick.Fundamental
			result.Ask[t] += tick.Ask
			result.Bid[t] += tick.Bid
		}
	}
	n := float64(len(records))
	for t := 0; t < ticks; t++ {
		result.Spread[t] /= n
		result.Belief[t] /= n
		result.Fundamental[t] /= n
		result.Ask[t] /= n
		result.Bid[t] /= n
	}
	return result
}
