package domain

// Tick holds the per-period observables recorded along one path.
// Belief is the post-update posterior P(V = VLow); Spread is always
// Ask - Bid, whatever the quoting policy produced.
type Tick struct {
	Fundamental float64
	Belief      float64
	Ask         float64
	Bid         float64
	Spread      float64
}

// PathRecord is the full history of a single simulated path.
// Fundamental is drawn once at path start and repeated in every Tick so
// that per-period averaging stays aligned across paths.
type PathRecord struct {
	Fundamental float64
	Ticks       []Tick
}

// AggregateResult holds the per-period means across all Monte Carlo
// replications. All slices have the same length (the tick count).
type AggregateResult struct {
	Spread      []float64
	Belief      []float64
	Fundamental []float64
	Ask         []float64
	Bid         []float64
}

// NewAggregateResult allocates zeroed series of length n.
func NewAggregateResult(n int) *AggregateResult {
	return &AggregateResult{
		Spread:      make([]float64, n),
		Belief:      make([]float64, n),
		Fundamental: make([]float64, n),
		Ask:         make([]float64, n),
		Bid:         make([]float64, n),
	}
}

// Len returns the number of periods in the result.
func (r *AggregateResult) Len() int {
	return len(r.Spread)
}
