package commands

import (
	"fmt"

	"git.home.luguber.info/inful/trackdeck/internal/track"
)

// CheckCmd implements the 'check' command.
type CheckCmd struct {
	Track string `short:"t" help:"Track file (overrides config)"`
}

func (c *CheckCmd) Run(g *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	path := cfg.Resolve(cfg.Track)
	if c.Track != "" {
		path = c.Track
	}

	tr, err := track.Load(path)
	if err != nil {
		return err
	}
	pkg, err := tr.Package()
	if err != nil {
		return err
	}

	out := g.out()
	warnings := tr.Check()
	for _, w := range warnings {
		_, _ = fmt.Fprintf(out, "warning: %s\n", w)
	}
	_, _ = fmt.Fprintf(out, "%s: %d deck(s), %d file(s), %d warning(s)\n",
		tr.Name, len(pkg.Decks), len(tr.Files()), len(warnings))
	return nil
}
