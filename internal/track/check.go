package track

import (
	"fmt"
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/trackdeck/internal/markdown"
)

// Warning is a non-fatal problem found by Check.
type Warning struct {
	// Deck is the "<module>_<unit>" prefix of the affected deck.
	Deck    string
	Path    string
	Line    int
	Message string
}

func (w Warning) String() string {
	if w.Line > 0 {
		return fmt.Sprintf("%s %s:%d: %s", w.Deck, w.Path, w.Line, w.Message)
	}
	return fmt.Sprintf("%s %s: %s", w.Deck, w.Path, w.Message)
}

// Check inspects every content document of the track. Rendered decks only
// carry the images a section declares, so a local image referenced in the
// content but missing from the section's images list yields a warning.
// Unreadable documents are reported as warnings too.
func (t *Track) Check() []Warning {
	warnings := make([]Warning, 0)
	for mi, m := range t.Modules {
		for ui, u := range m.Units {
			deck := fmt.Sprintf("%d_%d", mi+1, ui+1)
			for _, s := range u.Sections {
				warnings = append(warnings, checkSection(deck, s)...)
			}
		}
	}
	return warnings
}

func checkSection(deck string, s Section) []Warning {
	// #nosec G304 -- content paths come from the track file.
	body, err := os.ReadFile(s.Content)
	if err != nil {
		return []Warning{{Deck: deck, Path: s.Content, Message: "content is not readable: " + err.Error()}}
	}

	declared := make(map[string]struct{}, len(s.Images))
	for _, img := range s.Images {
		declared[filepath.Base(img)] = struct{}{}
	}

	var warnings []Warning
	for _, img := range markdown.ExtractImages(body) {
		if !img.IsLocal() {
			continue
		}
		if _, ok := declared[img.BaseName()]; ok {
			continue
		}
		warnings = append(warnings, Warning{
			Deck:    deck,
			Path:    s.Content,
			Line:    img.Line,
			Message: fmt.Sprintf("image %q is not listed in the section's images", img.Destination),
		})
	}
	return warnings
}
