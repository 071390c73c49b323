package commands

import (
	"fmt"
	"log/slog"

	"git.home.luguber.info/inful/guidegen/internal/assemble"
	"git.home.luguber.info/inful/guidegen/internal/config"
	"git.home.luguber.info/inful/guidegen/internal/docs"
)

// GenerateCmd implements the 'generate' command.
type GenerateCmd struct {
	Variant   string `help:"Produce only the named variant (printable or web)" default:""`
	SourceDir string `name:"source-dir" help:"Directory holding the source notes (overrides config)"`
	OutputDir string `name:"output-dir" help:"Directory for generated files (overrides config)"`
}

func (g *GenerateCmd) Run(_ *Global, root *CLI) error {
	cfg, err := loadConfig(root, g.SourceDir, g.OutputDir)
	if err != nil {
		return err
	}

	variants := cfg.Variants
	if g.Variant != "" {
		v, ok := cfg.FindVariant(g.Variant)
		if !ok {
			return fmt.Errorf("unknown variant %q (configured: %s)", g.Variant, variantNames(cfg))
		}
		variants = []config.Variant{v}
	}

	slog.Info("Starting guide generation",
		"source", cfg.SourceDir,
		"output", cfg.OutputDir,
		"variants", len(variants))

	parts, err := docs.NewDiscovery(cfg.SourceDir, cfg.Structure).Discover()
	if err != nil {
		return err
	}
	slog.Info("Documents discovered", "count", docs.CountDocuments(parts))

	written, err := assemble.New(cfg).Generate(parts, cfg.OutputDir, variants)
	if err != nil {
		return err
	}

	for _, path := range written {
		fmt.Println(path)
	}
	return nil
}

func variantNames(cfg *config.Config) string {
	names := ""
	for i, v := range cfg.Variants {
		if i > 0 {
			names += ", "
		}
		names += v.Name
	}
	return names
}
