package quote

import (
	"fmt"

	"github.com/Cava11/Glosten-and-Milgorm-model/internal/domain"
)

// Policy names recognized by ForName.
const (
	PolicySimplified = "simplified"
	PolicyExact      = "exact"
)

// Policy derives ask and bid quotes from the market maker's current belief.
// Implementations must be deterministic in (delta, V_H, V_L, mu) and are
// called once per period by the path simulator.
type Policy interface {
	// Name returns the config-facing policy name.
	Name() string
	// Quote returns (ask, bid) for the given belief P(V = V_L).
	Quote(delta float64) (ask, bid float64)
}

// ForName resolves a quoting policy by its config name.
func ForName(name string, p domain.Params) (Policy, error) {
	switch name {
	case PolicySimplified, "":
		return NewSimplified(p), nil
	case PolicyExact:
		return NewExact(p), nil
	default:
		return nil, &domain.ConfigError{Field: "quoting.policy", Err: fmt.Errorf("unknown policy %q", name)}
	}
}
