package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/Cava11/Glosten-and-Milgorm-model/internal/domain"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// tickBatchSize bounds insert statement size for long series.
const tickBatchSize = 500

// Storage persists simulation runs and their averaged series.
type Storage struct {
	db *gorm.DB
}

// NewStorage creates a new SQLite storage instance. An empty path resolves
// to the OS user config directory.
func NewStorage(dbPath string) (*Storage, error) {
	if dbPath == "" {
		resolved, err := defaultDBPath()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve DB path: %w", err)
		}
		dbPath = resolved
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create DB directory: %w", err)
	}

	// Connect to SQLite (Pure Go)
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Auto Migration
	if err := db.AutoMigrate(&domain.SimulationRun{}, &domain.TickAverage{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &Storage{db: db}, nil
}

// defaultDBPath resolves the database file path under the user config dir.
func defaultDBPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "GlostenMilgrom", "data", "runs.db"), nil
}

// SaveRun stores a run and its averaged series in one transaction.
// A missing run ID is assigned; the assigned ID is returned.
func (s *Storage) SaveRun(run *domain.SimulationRun, result *domain.AggregateResult) (string, error) {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now()
	}

	rows := make([]domain.TickAverage, result.Len())
	for t := 0; t < result.Len(); t++ {
		rows[t] = domain.TickAverage{
			RunID:       run.ID,
			Tick:        t,
			Spread:      result.Spread[t],
			Belief:      result.Belief[t],
			Fundamental: result.Fundamental[t],
			Ask:         result.Ask[t],
			Bid:         result.Bid[t],
		}
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(run).Error; err != nil {
			return err
		}
		return tx.CreateInBatches(rows, tickBatchSize).Error
	})
	if err != nil {
		return "", err
	}
	return run.ID, nil
}

// GetRun retrieves run metadata by ID.
func (s *Storage) GetRun(id string) (*domain.SimulationRun, error) {
	var run domain.SimulationRun
	err := s.db.First(&run, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrRunNotFound
	}
	if err != nil {
		return nil, err
	}
	return &run, nil
}

// ListRuns retrieves all runs, newest first.
func (s *Storage) ListRuns() ([]domain.SimulationRun, error) {
	var runs []domain.SimulationRun
	err := s.db.Order("created_at DESC").Find(&runs).Error
	return runs, err
}

// LoadSeries reloads the averaged series of a run, in tick order.
func (s *Storage) LoadSeries(runID string) (*domain.AggregateResult, error) {
	var rows []domain.TickAverage
	if err := s.db.Where("run_id = ?", runID).Order("tick ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.ErrRunNotFound
	}

	result := domain.NewAggregateResult(len(rows))
	for i, row := range rows {
		result.Spread[i] = row.Spread
		result.Belief[i] = row.Belief
		result.Fundamental[i] = row.Fundamental
		result.Ask[i] = row.Ask
		result.Bid[i] = row.Bid
	}
	return result, nil
}

// DeleteRun removes a run and its series.
func (s *Storage) DeleteRun(id string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("run_id = ?", id).Delete(&domain.TickAverage{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&domain.SimulationRun{}).Error
	})
}
