package quote

import (
	"github.com/Cava11/Glosten-and-Milgorm-model/internal/domain"
	"github.com/Cava11/Glosten-and-Milgorm-model/pkg/bayes"
)

// Exact is the textbook break-even quoting rule: the ask is the expected
// fundamental conditional on the next order being a buy, the bid
// conditional on it being a sell. Each side evaluates the hypothetical
// posterior for that direction and prices
//
//	E[V | dir] = V_L * delta' + V_H * (1 - delta')
//
// which always yields ask >= bid for mu in [0,1).
type Exact struct {
	vHigh float64
	vLow  float64
	mu    float64
}

// NewExact creates the conditional-expectation policy for the given parameters.
func NewExact(p domain.Params) *Exact {
	if p.VHigh <= p.VLow {
		panic("quote: VHigh must exceed VLow")
	}
	return &Exact{vHigh: p.VHigh, vLow: p.VLow, mu: p.Mu}
}

// Name returns the config-facing policy name.
func (e *Exact) Name() string { return PolicyExact }

// Quote returns (ask, bid) as conditional expectations of the fundamental.
func (e *Exact) Quote(delta float64) (ask, bid float64) {
	// Degeneracy is impossible here: mu < 1 is validated upstream, so both
	// hypothetical posteriors are well defined.
	dBuy, err := bayes.PosteriorBuy(delta, e.mu)
	if err != nil {
		panic("quote: " + err.Error())
	}
	dSell, err := bayes.PosteriorSell(delta, e.mu)
	if err != nil {
		panic("quote: " + err.Error())
	}
	ask = e.vLow*dBuy + e.vHigh*(1-dBuy)
	bid = e.vLow*dSell + e.vHigh*(1-dSell)
	return ask, bid
}
