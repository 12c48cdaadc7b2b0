package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Cava11/Glosten-and-Milgorm-model/internal/app"
	"github.com/Cava11/Glosten-and-Milgorm-model/internal/domain"
	"github.com/Cava11/Glosten-and-Milgorm-model/internal/engine"
	"github.com/Cava11/Glosten-and-Milgorm-model/internal/infra"
	"github.com/Cava11/Glosten-and-Milgorm-model/internal/infra/stream"
	"github.com/Cava11/Glosten-and-Milgorm-model/internal/quote"
	"github.com/Cava11/Glosten-and-Milgorm-model/internal/report"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to the configuration file")
	flag.Parse()

	// 1. System Bootstrapping
	bootstrap := app.NewBootstrap()
	if err := bootstrap.Initialize(*configPath); err != nil {
		slog.Error("❌ Bootstrapping failed", slog.Any("error", err))
		os.Exit(1)
	}
	cfg := bootstrap.Config
	params := cfg.ToParams()

	// 2. Graceful Shutdown Context
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Quoting Policy
	policy, err := quote.ForName(cfg.Quoting.Policy, params)
	if err != nil {
		slog.Error("❌ Invalid quoting policy", slog.Any("error", err))
		os.Exit(1)
	}

	// 4. Optional live stream for chart clients
	var hub *stream.Hub
	if cfg.Stream.Enabled {
		hub = stream.NewHub()
		mux := http.NewServeMux()
		mux.Handle("/ws", hub)
		srv := &http.Server{Addr: cfg.Stream.Listen, Handler: mux}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				slog.Error("Stream server failed", slog.Any("error", err))
			}
		}()
		defer srv.Close()
		defer hub.Close()
		slog.Info("✅ Stream server started", slog.String("listen", cfg.Stream.Listen))
	}

	// 5. Monte Carlo run
	opts := []engine.Option{engine.WithWorkers(cfg.Run.Workers)}
	if hub != nil {
		// Push at most ~100 progress events per run.
		step := params.Paths / 100
		if step < 1 {
			step = 1
		}
		opts = append(opts, engine.WithProgress(func(completed, total int) {
			if completed%step == 0 || completed == total {
				hub.Broadcast(stream.ProgressEvent{Type: "progress", Completed: completed, Total: total})
			}
		}))
	}

	start := time.Now()
	mc := engine.NewMonteCarlo(params, policy, opts...)
	result, err := mc.Run(ctx)
	if err != nil {
		slog.Error("❌ Simulation failed", slog.Any("error", err))
		os.Exit(1)
	}
	elapsed := time.Since(start)
	infra.GlobalMetrics.RecordRun(elapsed)

	// 6. Persist, stream and render the averaged series
	var runID string
	if bootstrap.Storage != nil {
		run := &domain.SimulationRun{
			VHigh:      params.VHigh,
			VLow:       params.VLow,
			Mu:         params.Mu,
			Delta0:     params.Delta0,
			Ticks:      params.Ticks,
			Paths:      params.Paths,
			Seed:       params.Seed,
			Policy:     policy.Name(),
			DurationMS: elapsed.Milliseconds(),
		}
		runID, err = bootstrap.Storage.SaveRun(run, result)
		if err != nil {
			slog.Error("Failed to persist run", slog.Any("error", err))
		} else {
			slog.Info("✅ Run persisted", slog.String("run_id", runID))
		}
	}

	if hub != nil {
		hub.Broadcast(stream.ResultEvent{Type: "result", RunID: runID, Policy: policy.Name(), Series: result})
	}

	if cfg.Output.ChartPath != "" {
		if err := report.Render(result, cfg.Output.ChartPath); err != nil {
			slog.Error("Failed to render chart", slog.Any("error", err))
		} else {
			slog.Info("✅ Chart rendered", slog.String("path", cfg.Output.ChartPath))
		}
	}

	// 7. Final summary
	last := result.Len() - 1
	snap := infra.GlobalMetrics.Snapshot()
	slog.Info("✨ Simulation completed",
		slog.String("final_avg_spread", decimal.NewFromFloat(result.Spread[last]).Round(6).String()),
		slog.String("final_avg_belief", decimal.NewFromFloat(result.Belief[last]).Round(6).String()),
		slog.Uint64("paths", snap.PathsCompleted),
		slog.Uint64("belief_updates", snap.BeliefUpdates),
		slog.Duration("elapsed", elapsed))
}
