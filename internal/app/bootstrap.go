package app

import (
	"errors"
	"io/fs"
	"log/slog"

	"github.com/Cava11/Glosten-and-Milgorm-model/internal/infra"
	"github.com/Cava11/Glosten-and-Milgorm-model/internal/infra/storage"
)

// Bootstrap orchestrates the application startup sequence
type Bootstrap struct {
	Config  *infra.Config
	Storage *storage.Storage
}

// NewBootstrap creates a new Bootstrap instance
func NewBootstrap() *Bootstrap {
	return &Bootstrap{}
}

// Initialize performs core system initialization (config, logger, DB).
// A missing config file is not fatal: the built-in defaults reproduce the
// reference parameter set.
func (b *Bootstrap) Initialize(configPath string) error {
	cfg, err := infra.LoadConfig(configPath)
	if errors.Is(err, fs.ErrNotExist) {
		cfg, err = infra.DefaultConfig()
	}
	if err != nil {
		return err // Let main handle the error
	}
	b.Config = cfg

	logger := infra.NewLogger(cfg)
	slog.SetDefault(logger)

	slog.Info("🚀 Bootstrapping Glosten-Milgrom simulator...",
		slog.String("version", cfg.App.Version))

	if cfg.Output.Persist {
		store, err := storage.NewStorage(cfg.Output.DBPath)
		if err != nil {
			return err
		}
		b.Storage = store
		slog.Info("✅ Database initialized")
	}

	return nil
}
