package commands

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"git.home.luguber.info/inful/guidegen/internal/assemble"
	"git.home.luguber.info/inful/guidegen/internal/docs"
	"git.home.luguber.info/inful/guidegen/internal/flashcards"
)

// FlashcardsCmd implements the 'flashcards' command.
type FlashcardsCmd struct {
	SourceDir string `name:"source-dir" help:"Directory holding the source notes (overrides config)"`
	OutputDir string `name:"output-dir" help:"Directory for generated files (overrides config)"`
}

func (f *FlashcardsCmd) Run(_ *Global, root *CLI) error {
	cfg, err := loadConfig(root, f.SourceDir, f.OutputDir)
	if err != nil {
		return err
	}

	// The flashcard source is explicitly configured, so a missing or
	// undecodable file is fatal.
	source := filepath.Join(cfg.SourceDir, cfg.Flashcards.Source)
	doc, err := docs.Load(source, "")
	if err != nil {
		return err
	}

	decks := flashcards.ExtractDecks(doc.Body, cfg.Flashcards.Patterns)

	outDir := filepath.Join(cfg.OutputDir, "flashcards")
	written := make([]string, 0, len(decks)+1)
	for _, deck := range decks {
		dest := filepath.Join(outDir, deck.Filename())
		if err := assemble.WriteFileAtomic(dest, flashcards.Render(deck)); err != nil {
			return err
		}
		slog.Info("Deck written", "pattern", deck.Pattern.Name, "cards", len(deck.Cards), "path", dest)
		written = append(written, dest)
	}

	index := filepath.Join(outDir, "index.md")
	if err := assemble.WriteFileAtomic(index, flashcards.RenderIndex(decks)); err != nil {
		return err
	}
	written = append(written, index)

	for _, path := range written {
		fmt.Println(path)
	}
	return nil
}
