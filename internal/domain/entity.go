package domain

import (
	"time"
)

// SimulationRun persists the parameters and timing of one Monte Carlo run.
type SimulationRun struct {
	ID         string    `gorm:"primaryKey" json:"id"` // UUID
	VHigh      float64   `json:"v_high"`
	VLow       float64   `json:"v_low"`
	Mu         float64   `json:"mu"`
	Delta0     float64   `json:"delta0"`
	Ticks      int       `json:"ticks"`
	Paths      int       `json:"paths"`
	Seed       int64     `json:"seed"`
	Policy     string    `gorm:"index" json:"policy"` // quoting policy name
	DurationMS int64     `json:"duration_ms"`
	CreatedAt  time.Time `json:"created_at"`
}

// TickAverage is one row of the averaged series belonging to a run.
type TickAverage struct {
	RunID       string  `gorm:"primaryKey;index" json:"run_id"`
	Tick        int     `gorm:"primaryKey;autoIncrement:false" json:"tick"`
	Spread      float64 `json:"spread"`
	Belief      float64 `json:"belief"`
	Fundamental float64 `json:"fundamental"`
	Ask         float64 `json:"ask"`
	Bid         float64 `json:"bid"`
}
