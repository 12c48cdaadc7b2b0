// Package bayes holds the posterior arithmetic of the sequential-trade
// model. Beliefs are P(V = V_L); mu is the informed trader share.
//
// With informed traders trading toward the true value and noise traders
// buying or selling 50/50, Bayes' rule after one observed order reduces to
// the closed forms below. For mu in [0,1) both denominators are bounded
// below by 1-mu > 0 and the posterior stays inside [0,1]; this is a derived
// property, not enforced by clamping.
package bayes

import "errors"

// minDenominator guards the division. Only mu = 1 can drive the
// denominator to zero, and that parameter value is rejected upstream.
const minDenominator = 1e-15

// ErrDegenerate is returned when the posterior denominator is not strictly
// positive.
var ErrDegenerate = errors.New("bayes: degenerate denominator")

// PosteriorBuy returns P(V = V_L | buy) given the prior delta.
//
//	delta' = delta*(1-mu) / (1 + mu*(1-2*delta))
func PosteriorBuy(delta, mu float64) (float64, error) {
	den := 1 + mu*(1-2*delta)
	if den < minDenominator {
		return 0, ErrDegenerate
	}
	return delta * (1 - mu) / den, nil
}

// PosteriorSell returns P(V = V_L | sell) given the prior delta.
//
//	delta' = delta*(1+mu) / (1 - mu*(1-2*delta))
func PosteriorSell(delta, mu float64) (float64, error) {
	den := 1 - mu*(1-2*delta)
	if den < minDenominator {
		return 0, ErrDegenerate
	}
	return delta * (1 + mu) / den, nil
}
