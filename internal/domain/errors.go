package domain

import (
	"errors"
	"fmt"
)

// ConfigError represents an invalid configuration value. It is fatal and
// surfaced to the caller before any simulation work begins.
type ConfigError struct {
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	return "config error [" + e.Field + "]: " + e.Err.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// BeliefError represents a numerical degeneracy in the Bayesian update.
// For valid parameters (mu < 1, delta in [0,1]) it can never occur, so any
// occurrence is an internal invariant violation, not a recoverable condition.
type BeliefError struct {
	Side  Side
	Delta float64
	Mu    float64
	Err   error
}

func (e *BeliefError) Error() string {
	return fmt.Sprintf("belief update failed [%s, delta=%g, mu=%g]: %v", e.Side, e.Delta, e.Mu, e.Err)
}

func (e *BeliefError) Unwrap() error {
	return e.Err
}

var (
	// ErrDegenerateUpdate is returned when the posterior denominator is not
	// strictly positive (only reachable at mu = 1).
	ErrDegenerateUpdate = errors.New("degenerate posterior denominator")

	// ErrBeliefOutOfRange is returned when an update leaves [0,1]. Bayes'
	// rule preserves the range for valid inputs, so this signals a defect.
	ErrBeliefOutOfRange = errors.New("posterior left the unit interval")

	// ErrRunNotFound is returned when a persisted run id is unknown.
	ErrRunNotFound = errors.New("simulation run not found")
)
