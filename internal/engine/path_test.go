package engine_test

import (
	"math"
	"math/rand"
	"reflect"
	"testing"

	"github.com/Cava11/Glosten-and-Milgorm-model/internal/domain"
	"github.com/Cava11/Glosten-and-Milgorm-model/internal/engine"
	"github.com/Cava11/Glosten-and-Milgorm-model/internal/quote"
)

func testParams() domain.Params {
	p := domain.DefaultParams()
	p.Ticks = 200
	p.Paths = 1
	return p
}

func newSim(p domain.Params) *engine.PathSimulator {
	return engine.NewPathSimulator(p, quote.NewSimplified(p))
}

func TestPathRecordShape(t *testing.T) {
	p := testParams()
	rec, err := newSim(p).Run(rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(rec.Ticks) != p.Ticks {
		t.Fatalf("expected %d ticks, got %d", p.Ticks, len(rec.Ticks))
	}
	if rec.Fundamental != p.VHigh && rec.Fundamental != p.VLow {
		t.Fatalf("fundamental %v is neither V_H nor V_L", rec.Fundamental)
	}

	for i, tick := range rec.Ticks {
		// The fundamental is fixed at path start and repeated per tick.
		if tick.Fundamental != rec.Fundamental {
			t.Fatalf("tick %d: fundamental drifted to %v", i, tick.Fundamental)
		}
		if tick.Belief < 0 || tick.Belief > 1 {
			t.Fatalf("tick %d: belief %v left [0,1]", i, tick.Belief)
		}
		if tick.Spread != tick.Ask-tick.Bid {
			t.Fatalf("tick %d: spread %v != ask-bid %v", i, tick.Spread, tick.Ask-tick.Bid)
		}
	}
}

func TestPathDeterminism(t *testing.T) {
	p := testParams()
	sim := newSim(p)

	first, err := sim.Run(rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	second, err := sim.Run(rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("second run failed: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Fatal("same seed produced different paths")
	}
}

// TestPathBeliefMatchesBayes replays the simulator's exact draw sequence
// on a cloned rng and recomputes every posterior from first principles:
//
//	P(buy | V=V_L)  = (1-mu)/2          (only noise traders buy low)
//	P(buy | V=V_H)  = mu + (1-mu)/2
//	P(V_L | buy)    = delta*P(buy|L) / (delta*P(buy|L) + (1-delta)*P(buy|H))
//
// and symmetrically for sells. The engine's closed-form recursion must
// agree tick for tick.
func TestPathBeliefMatchesBayes(t *testing.T) {
	p := testParams()
	p.Ticks = 500
	const seed = 1234

	rec, err := newSim(p).Run(rand.New(rand.NewSource(seed)))
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	// Clone of the engine's draw order: one draw for the fundamental,
	// then per tick one draw for the trader type and one more for the
	// direction only when the trader is uninformed.
	rng := rand.New(rand.NewSource(seed))
	v := p.VLow
	if rng.Float64() < 0.5 {
		v = p.VHigh
	}
	if v != rec.Fundamental {
		t.Fatalf("replay drew fundamental %v, engine recorded %v", v, rec.Fundamental)
	}

	pBuyL := (1 - p.Mu) / 2
	pBuyH := p.Mu + (1-p.Mu)/2
	pSellL := p.Mu + (1-p.Mu)/2
	pSellH := (1 - p.Mu) / 2

	delta := p.Delta0
	for i := 0; i < p.Ticks; i++ {
		informed := rng.Float64() < p.Mu
		buy := false
		if informed {
			buy = v == p.VHigh
		} else {
			buy = rng.Float64() < 0.5
		}

		if buy {
			delta = delta * pBuyL / (delta*pBuyL + (1-delta)*pBuyH)
		} else {
			delta = delta * pSellL / (delta*pSellL + (1-delta)*pSellH)
		}

		// The two formulations are algebraically identical; the loose
		// tolerance only absorbs accumulated float rounding.
		if math.Abs(delta-rec.Ticks[i].Belief) > 1e-9 {
			t.Fatalf("tick %d: engine belief %v, Bayes %v", i, rec.Ticks[i].Belief, delta)
		}
	}
}

func TestPathNearOneInformedShare(t *testing.T) {
	// Numerical boundary: mu just below 1 must not blow up beliefs or
	// quotes anywhere along a path.
	p := testParams()
	p.Mu = 1 - 1e-9

	rec, err := engine.NewPathSimulator(p, quote.NewExact(p)).Run(rand.New(rand.NewSource(11)))
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	for i, tick := range rec.Ticks {
		for name, val := range map[string]float64{
			"belief": tick.Belief,
			"ask":    tick.Ask,
			"bid":    tick.Bid,
			"spread": tick.Spread,
		} {
			if math.IsNaN(val) || math.IsInf(val, 0) {
				t.Fatalf("tick %d: %s = %v", i, name, val)
			}
		}
	}
}
