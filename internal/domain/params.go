package domain

import (
	"errors"
	"fmt"
)

// Params holds the immutable model parameters for one simulation run.
// VHigh/VLow are the two possible fundamental values, Mu is the informed
// trader share and Delta0 the market maker's prior P(V = VLow).
type Params struct {
	VHigh  float64 // High fundamental value
	VLow   float64 // Low fundamental value
	Mu     float64 // Informed trader probability, [0,1)
	Delta0 float64 // Initial belief P(V = VLow), [0,1]
	Ticks  int     // Trading periods per path
	Paths  int     // Monte Carlo replications
	Seed   int64   // Base seed; per-path seeds are derived from it
}

// DefaultParams returns the parameters of the reference setup.
func DefaultParams() Params {
	return Params{
		VHigh:  101,
		VLow:   99,
		Mu:     0.2,
		Delta0: 0.5,
		Ticks:  1000,
		Paths:  1000,
		Seed:   42,
	}
}

// Mid returns the unconditional mid price (VLow + VHigh) / 2.
func (p Params) Mid() float64 {
	return (p.VLow + p.VHigh) / 2
}

// Validate rejects invalid parameters before any simulation work starts.
// Each failure names the offending field via ConfigError.
func (p Params) Validate() error {
	if p.VHigh <= p.VLow {
		return &ConfigError{Field: "v_high", Err: fmt.Errorf("must be greater than v_low (%g <= %g)", p.VHigh, p.VLow)}
	}
	if p.Mu < 0 || p.Mu >= 1 {
		return &ConfigError{Field: "mu", Err: fmt.Errorf("must be in [0,1), got %g", p.Mu)}
	}
	if p.Delta0 < 0 || p.Delta0 > 1 {
		return &ConfigError{Field: "delta0", Err: fmt.Errorf("must be in [0,1], got %g", p.Delta0)}
	}
	if p.Ticks <= 0 {
		return &ConfigError{Field: "ticks", Err: errors.New("must be positive")}
	}
	if p.Paths <= 0 {
		return &ConfigError{Field: "paths", Err: errors.New("must be positive")}
	}
	return nil
}
