package commands

import (
	"fmt"
	"path/filepath"

	"git.home.luguber.info/inful/guidegen/internal/docs"
	"git.home.luguber.info/inful/guidegen/internal/slug"
)

// DiscoverCmd implements the 'discover' command: it resolves the final
// document order without writing any output.
type DiscoverCmd struct {
	SourceDir string `name:"source-dir" help:"Directory holding the source notes (overrides config)"`
}

func (d *DiscoverCmd) Run(_ *Global, root *CLI) error {
	cfg, err := loadConfig(root, d.SourceDir, "")
	if err != nil {
		return err
	}

	parts, err := docs.NewDiscovery(cfg.SourceDir, cfg.Structure).Discover()
	if err != nil {
		return err
	}

	slugger := slug.NewSlugger()
	for _, part := range parts {
		if part.Title != "" {
			fmt.Printf("%s\n", part.Title)
		}
		for _, doc := range part.Documents {
			fmt.Printf("  %2d. %-30s %-40s #%s\n", doc.Ordinal+1, filepath.Base(doc.Path), doc.Title, slugger.Slug(doc.Title))
		}
	}
	fmt.Printf("%d documents\n", docs.CountDocuments(parts))
	return nil
}
