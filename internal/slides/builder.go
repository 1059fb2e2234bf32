package slides

import (
	"fmt"

	derrors "git.home.luguber.info/inful/trackdeck/internal/foundation/errors"
)

// ErrUncommitted is returned by Build when a deck or section builder was
// opened but its contents never reached the package.
var ErrUncommitted = derrors.ValidationError("slide package has uncommitted decks or sections").Build()

// PackageBuilder accumulates decks for a Package.
type PackageBuilder struct {
	pkg Package
	// pending counts deck and section builders that were opened and not yet added.
	pending int
	// orphaned counts sections added after their deck was already committed.
	orphaned int
}

// NewPackageBuilder starts a package with no decks.
func NewPackageBuilder(name string) *PackageBuilder {
	return &PackageBuilder{pkg: Package{Name: name, Decks: []Deck{}}}
}

// Deck opens a deck builder. The package is not changed until the deck builder's Add is called.
func (b *PackageBuilder) Deck(name, moduleName string, moduleIndex, unitIndex uint, template string) *DeckBuilder {
	b.pending++
	return &DeckBuilder{
		root: b,
		deck: Deck{
			Name:        name,
			ModuleName:  moduleName,
			ModuleIndex: moduleIndex,
			UnitIndex:   unitIndex,
			Template:    template,
			Sections:    []Section{},
		},
	}
}

// Build returns the finished package. It fails with ErrUncommitted when a
// deck or section was opened and never added, rather than dropping it.
func (b *PackageBuilder) Build() (*Package, error) {
	if b.pending > 0 || b.orphaned > 0 {
		return nil, derrors.ValidationError(ErrUncommitted.Message()).
			WithContext("package", b.pkg.Name).
			WithContext("open_builders", b.pending).
			WithContext("orphaned_sections", b.orphaned).
			WithCause(fmt.Errorf("%d builder(s) never added, %d section(s) added after their deck", b.pending, b.orphaned)).
			Build()
	}
	pkg := Package{Name: b.pkg.Name, Decks: make([]Deck, len(b.pkg.Decks))}
	copy(pkg.Decks, b.pkg.Decks)
	return &pkg, nil
}

// DeckBuilder accumulates sections for one deck.
type DeckBuilder struct {
	root      *PackageBuilder
	deck      Deck
	committed bool
}

// Section opens a section builder for the Markdown document at content.
func (d *DeckBuilder) Section(content string) *SectionBuilder {
	d.root.pending++
	return &SectionBuilder{
		deck: d,
		section: Section{
			Content:        content,
			Objectives:     []string{},
			Summary:        []string{},
			FurtherReading: []string{},
			Images:         []string{},
		},
	}
}

// Add commits the deck to the package and returns the package builder.
// Calling Add again has no effect.
func (d *DeckBuilder) Add() *PackageBuilder {
	if !d.committed {
		d.committed = true
		d.root.pending--
		d.root.pkg.Decks = append(d.root.pkg.Decks, d.deck)
	}
	return d.root
}

// SectionBuilder accumulates the lists of one section. Every mutator appends
// one entry and returns the builder.
type SectionBuilder struct {
	deck      *DeckBuilder
	section   Section
	committed bool
}

func (s *SectionBuilder) Objective(text string) *SectionBuilder {
	s.section.Objectives = append(s.section.Objectives, text)
	return s
}

func (s *SectionBuilder) Summary(text string) *SectionBuilder {
	s.section.Summary = append(s.section.Summary, text)
	return s
}

func (s *SectionBuilder) FurtherReading(text string) *SectionBuilder {
	s.section.FurtherReading = append(s.section.FurtherReading, text)
	return s
}

func (s *SectionBuilder) Image(path string) *SectionBuilder {
	s.section.Images = append(s.section.Images, path)
	return s
}

// Add commits the section to its deck and returns the deck builder.
// Calling Add again has no effect.
func (s *SectionBuilder) Add() *DeckBuilder {
	if s.committed {
		return s.deck
	}
	s.committed = true
	root := s.deck.root
	root.pending--
	if s.deck.committed {
		root.orphaned++
		return s.deck
	}
	s.deck.deck.Sections = append(s.deck.deck.Sections, s.section)
	return s.deck
}
