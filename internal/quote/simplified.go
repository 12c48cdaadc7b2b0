package quote

import "github.com/Cava11/Glosten-and-Milgorm-model/internal/domain"

// Simplified is the didactic linearized quoting rule: quotes sit
// symmetrically around the unconditional mid, with an offset proportional
// to mu and the current belief:
//
//	ask = mid + (V_H - V_L) * mu * delta / 2
//	bid = mid - (V_H - V_L) * mu * delta / 2
//
// This is NOT the break-even conditional-expectation rule of the textbook
// model; it is the original author's intentional simplification, kept as a
// selectable policy. Note ask - bid = (V_H - V_L)*mu*delta, so the spread
// collapses as the belief concentrates on the high state.
type Simplified struct {
	mid  float64
	span float64 // V_H - V_L
	mu   float64
}

// NewSimplified creates the simplified policy for the given parameters.
func NewSimplified(p domain.Params) *Simplified {
	if p.VHigh <= p.VLow {
		panic("quote: VHigh must exceed VLow")
	}
	return &Simplified{
		mid:  p.Mid(),
		span: p.VHigh - p.VLow,
		mu:   p.Mu,
	}
}

// Name returns the config-facing policy name.
func (s *Simplified) Name() string { return PolicySimplified }

// Quote returns (ask, bid) around the mid for the given belief.
func (s *Simplified) Quote(delta float64) (ask, bid float64) {
	offset := s.span * s.mu * delta / 2
	return s.mid + offset, s.mid - offset
}
