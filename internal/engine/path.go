package engine

import (
	"math/rand"

	"github.com/Cava11/Glosten-and-Milgorm-model/internal/domain"
	"github.com/Cava11/Glosten-and-Milgorm-model/internal/quote"
	"github.com/Cava11/Glosten-and-Milgorm-model/pkg/bayes"
)

// rangeTolerance absorbs float rounding at the ends of the unit interval.
// Anything further out is a genuine invariant violation.
const rangeTolerance = 1e-9

// PathSimulator generates one path of the sequential-trade model. It is a
// pure function of its random source: the same seeded *rand.Rand yields
// the same PathRecord.
//
// Draw order per path is fixed (tests rely on it):
//  1. one Float64 for the fundamental (< 0.5 selects the high state),
//  2. per period, one Float64 for the trader type (< mu is informed),
//     then one more Float64 for the direction only when the trader is
//     uninformed (< 0.5 buys). Informed traders consume no extra draw,
//     their direction is dictated by the fundamental.
type PathSimulator struct {
	params domain.Params
	policy quote.Policy
}

// NewPathSimulator creates a simulator for the given parameters and
// quoting policy. Params are assumed validated.
func NewPathSimulator(p domain.Params, policy quote.Policy) *PathSimulator {
	return &PathSimulator{params: p, policy: policy}
}

// Run simulates one full path of params.Ticks periods.
func (s *PathSimulator) Run(rng *rand.Rand) (domain.PathRecord, error) {
	p := s.params

	v := p.VLow
	if rng.Float64() < 0.5 {
		v = p.VHigh
	}

	rec := domain.PathRecord{
		Fundamental: v,
		Ticks:       make([]domain.Tick, 0, p.Ticks),
	}

	delta := p.Delta0
	for t := 0; t < p.Ticks; t++ {
		kind := domain.TraderNoise
		if rng.Float64() < p.Mu {
			kind = domain.TraderInformed
		}

		var side domain.Side
		if kind == domain.TraderInformed {
			// Informed flow reveals the state: buy high, sell low.
			if v == p.VHigh {
				side = domain.SideBuy
			} else {
				side = domain.SideSell
			}
		} else {
			side = domain.SideSell
			if rng.Float64() < 0.5 {
				side = domain.SideBuy
			}
		}

		next, err := updateBelief(delta, p.Mu, side)
		if err != nil {
			return domain.PathRecord{}, err
		}
		delta = next

		ask, bid := s.policy.Quote(delta)
		rec.Ticks = append(rec.Ticks, domain.Tick{
			Fundamental: v,
			Belief:      delta,
			Ask:         ask,
			Bid:         bid,
			Spread:      ask - bid,
		})
	}

	return rec, nil
}

// updateBelief applies one posterior step and checks the range invariant.
// Bayes' rule keeps the posterior in [0,1] for valid inputs, so a result
// outside the interval is surfaced, never clamped.
func updateBelief(delta, mu float64, side domain.Side) (float64, error) {
	var (
		next float64
		err  error
	)
	switch side {
	case domain.SideBuy:
		next, err = bayes.PosteriorBuy(delta, mu)
	case domain.SideSell:
		next, err = bayes.PosteriorSell(delta, mu)
	}
	if err != nil {
		return 0, &domain.BeliefError{Side: side, Delta: delta, Mu: mu, Err: domain.ErrDegenerateUpdate}
	}
	if next < -rangeTolerance || next > 1+rangeTolerance {
		return 0, &domain.BeliefError{Side: side, Delta: delta, Mu: mu, Err: domain.ErrBeliefOutOfRange}
	}
	return next, nil
}
