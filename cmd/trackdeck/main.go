package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/trackdeck/cmd/trackdeck/commands"
	derrors "git.home.luguber.info/inful/trackdeck/internal/foundation/errors"
	"git.home.luguber.info/inful/trackdeck/internal/version"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, stdout io.Writer) int {
	var cli commands.CLI
	parser, err := kong.New(&cli,
		kong.Name("trackdeck"),
		kong.Description("Render course tracks into Slidev slide decks"),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()},
	)
	if err != nil {
		_, _ = io.WriteString(os.Stderr, err.Error()+"\n")
		return 1
	}

	kctx, err := parser.Parse(args)
	if err != nil {
		parser.Errorf("%s", err)
		return 2
	}

	if err := kctx.Run(&commands.Global{Out: stdout}, &cli); err != nil {
		return derrors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).HandleError(err)
	}
	return 0
}
