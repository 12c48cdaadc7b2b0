package domain

// Side is the direction of a submitted order. It is the only thing the
// market maker observes each period.
type Side int8

const (
	SideBuy Side = iota + 1
	SideSell
)

// String returns the string representation of Side.
func (s Side) String() string {
	switch s {
	case SideBuy:
		return "BUY"
	case SideSell:
		return "SELL"
	default:
		return "UNKNOWN"
	}
}

// TraderKind is the latent per-period trader type. It drives order
// generation but is never observed by the market maker.
type TraderKind int8

const (
	TraderInformed TraderKind = iota + 1
	TraderNoise
)

// String returns the string representation of TraderKind.
func (k TraderKind) String() string {
	switch k {
	case TraderInformed:
		return "INFORMED"
	case TraderNoise:
		return "NOISE"
	default:
		return "UNKNOWN"
	}
}
