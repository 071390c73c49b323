package commands

import (
	"os"

	gerrors "git.home.luguber.info/inful/guidegen/internal/errors"
	"git.home.luguber.info/inful/guidegen/internal/lint"
)

// LintCmd implements the 'lint' command.
type LintCmd struct {
	Fix       bool   `help:"Rewrite source files with emoji stripped"`
	SourceDir string `name:"source-dir" help:"Directory holding the source notes (overrides config)"`
}

func (l *LintCmd) Run(_ *Global, root *CLI) error {
	cfg, err := loadConfig(root, l.SourceDir, "")
	if err != nil {
		return err
	}

	if _, err := os.Stat(cfg.SourceDir); os.IsNotExist(err) {
		return gerrors.SourceNotFound(cfg.SourceDir)
	}

	result, err := lint.NewLinter(l.Fix).LintDir(cfg.SourceDir)
	if err != nil {
		return err
	}

	if err := lint.Format(os.Stdout, result); err != nil {
		return err
	}

	if result.HasErrors() {
		return gerrors.New(gerrors.CategoryLint, gerrors.SeverityError, "lint found errors")
	}
	return nil
}
