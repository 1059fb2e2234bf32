package slides

import "fmt"

// Package is one set of slide decks, corresponding to a course track.
type Package struct {
	// Name is the track name; its tag form becomes the manifest name.
	Name  string
	Decks []Deck
}

// Deck is a single slide presentation, corresponding to one unit of a module.
type Deck struct {
	Name        string
	ModuleName  string
	ModuleIndex uint
	UnitIndex   uint
	// Template is the path of a deck template. Empty selects the built-in default.
	Template string
	Sections []Section
}

// Prefix returns "<module>_<unit>", used in file names and script keys.
func (d *Deck) Prefix() string {
	return fmt.Sprintf("%d_%d", d.ModuleIndex, d.UnitIndex)
}

// Section is one content fragment of a deck.
type Section struct {
	// Content is the path of the Markdown document holding the section body.
	Content    string
	Objectives []string
	Summary    []string
	// FurtherReading is carried for callers; rendering does not consume it.
	FurtherReading []string
	Images         []string
}
