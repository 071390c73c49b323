package commands

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/guidegen/internal/config"
)

// Global context passed to subcommands.
type Global struct {
	Logger *slog.Logger
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"guidegen.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Generate   GenerateCmd   `cmd:"" help:"Generate the combined guide variants from the source notes"`
	Init       InitCmd       `cmd:"" help:"Initialize a new configuration file"`
	Discover   DiscoverCmd   `cmd:"" help:"List the documents that would be aggregated, in final order"`
	Lint       LintCmd       `cmd:"" help:"Lint the source notes"`
	Flashcards FlashcardsCmd `cmd:"" help:"Extract algorithm flashcards from the notes"`
	Watch      WatchCmd      `cmd:"" help:"Regenerate the guide whenever a source note changes"`
}

// AfterApply runs after flag parsing; setup logging once.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// loadConfig loads the configured file (or defaults when it is absent) and
// applies CLI directory overrides.
func loadConfig(root *CLI, sourceDir, outputDir string) (*config.Config, error) {
	cfg, err := config.LoadOrDefault(root.Config)
	if err != nil {
		return nil, err
	}
	if sourceDir != "" {
		cfg.SourceDir = sourceDir
	}
	if outputDir != "" {
		cfg.OutputDir = outputDir
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
