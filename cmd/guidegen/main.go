package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/guidegen/cmd/guidegen/commands"
	gerrors "git.home.luguber.info/inful/guidegen/internal/errors"
	"git.home.luguber.info/inful/guidegen/internal/version"
)

func main() {
	cli := &commands.CLI{}
	ctx := kong.Parse(cli,
		kong.Name("guidegen"),
		kong.Description("Aggregate Markdown study notes into combined printable and web editions"),
		kong.UsageOnError(),
		kong.Vars{"version": version.Version},
	)

	global := &commands.Global{Logger: slog.Default()}
	if err := ctx.Run(global, cli); err != nil {
		logFailure(err)
		os.Exit(1)
	}
}

// logFailure emits the one-line error with the structured context fields
// when the error carries them.
func logFailure(err error) {
	var ge *gerrors.GuideGenError
	if errors.As(err, &ge) {
		args := []any{slog.String("category", string(ge.Category))}
		if path, ok := ge.Context["path"]; ok {
			args = append(args, slog.Any("path", path))
		}
		if ge.Cause != nil {
			args = append(args, slog.Any("cause", ge.Cause))
		}
		slog.Error(ge.Message, args...)
		return
	}
	slog.Error("Command failed", "error", err)
}
