package commands

import (
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/trackdeck/internal/config"
)

// Global is shared by all subcommands.
type Global struct {
	// Out receives user-facing output. Logs go to stderr.
	Out io.Writer
}

func (g *Global) out() io.Writer {
	if g == nil || g.Out == nil {
		return os.Stdout
	}
	return g.Out
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"trackdeck.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Slides SlidesCmd `cmd:"" help:"Render the track into Slidev decks"`
	Init   InitCmd   `cmd:"" help:"Initialize a new configuration file"`
	Check  CheckCmd  `cmd:"" help:"Load the track and report problems without rendering"`
}

// AfterApply runs after flag parsing; it installs a logger before any
// configuration is read. Commands replace it once the config is loaded.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	return nil
}

// loadConfig reads the configuration file. A missing file at the default
// location is not an error; defaults are used instead.
func loadConfig(root *CLI) (*config.Config, error) {
	if root.Config == config.DefaultFile {
		if _, err := os.Stat(root.Config); os.IsNotExist(err) {
			slog.Debug("No configuration file, using defaults", "path", root.Config)
			return config.Default(), nil
		}
	}
	return config.Load(root.Config)
}

// newLogger builds the logger described by cfg. verbose forces debug level.
func newLogger(w io.Writer, cfg *config.Config, verbose bool) *slog.Logger {
	level := cfg.Logging.Level.SlogLevel()
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.Logging.Format == config.LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
