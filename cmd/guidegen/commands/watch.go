package commands

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"git.home.luguber.info/inful/guidegen/internal/assemble"
	"git.home.luguber.info/inful/guidegen/internal/docs"
	"git.home.luguber.info/inful/guidegen/internal/watch"
)

// WatchCmd implements the 'watch' command.
type WatchCmd struct {
	SourceDir string        `name:"source-dir" help:"Directory holding the source notes (overrides config)"`
	OutputDir string        `name:"output-dir" help:"Directory for generated files (overrides config)"`
	Debounce  time.Duration `help:"Quiet period after the last change before regenerating" default:"250ms"`
}

func (w *WatchCmd) Run(_ *Global, root *CLI) error {
	cfg, err := loadConfig(root, w.SourceDir, w.OutputDir)
	if err != nil {
		return err
	}

	// Fail fast on a missing source dir instead of watching nothing.
	if _, err := docs.NewDiscovery(cfg.SourceDir, cfg.Structure).Discover(); err != nil {
		return err
	}

	rebuild := func(runID string) error {
		parts, err := docs.NewDiscovery(cfg.SourceDir, cfg.Structure).Discover()
		if err != nil {
			return err
		}
		slog.Debug("Regenerating", "run_id", runID, "documents", docs.CountDocuments(parts))
		_, err = assemble.New(cfg).Generate(parts, cfg.OutputDir, cfg.Variants)
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	slog.Info("Watching for changes", "source", cfg.SourceDir, "debounce", w.Debounce)
	return watch.New(cfg.SourceDir, w.Debounce, rebuild).Run(ctx)
}
