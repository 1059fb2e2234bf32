package slides

import (
	"strings"
)

// slideSeparator is the Slidev horizontal rule that starts a new slide.
const slideSeparator = "---"

// deckText holds the three text accumulators of one deck.
type deckText struct {
	Content    string
	Objectives string
	Summary    string
}

func (t deckText) empty() bool {
	return t.Content == "" && t.Objectives == "" && t.Summary == ""
}

// aggregate concatenates the sections of a deck in order. read loads a
// section's content document.
func aggregate(sections []Section, read func(path string) (string, error)) (deckText, error) {
	var content, objectives, summary strings.Builder

	for i := range sections {
		section := &sections[i]

		raw, err := read(section.Content)
		if err != nil {
			return deckText{}, err
		}
		appendContent(&content, raw)

		for _, objective := range section.Objectives {
			appendBullet(&objectives, objective)
		}
		for _, item := range section.Summary {
			appendBullet(&summary, item)
		}
	}

	return deckText{
		Content:    content.String(),
		Objectives: objectives.String(),
		Summary:    summary.String(),
	}, nil
}

// appendContent adds one trimmed content fragment, starting it on a new slide
// unless it already opens with a separator. Blank fragments add nothing.
func appendContent(b *strings.Builder, raw string) {
	fragment := strings.TrimSpace(raw)
	if fragment == "" {
		return
	}
	if !strings.HasPrefix(fragment, slideSeparator) {
		b.WriteString(slideSeparator + "\n\n")
	}
	b.WriteString(fragment)
	b.WriteString("\n")
}

func appendBullet(b *strings.Builder, item string) {
	b.WriteString("- ")
	b.WriteString(strings.TrimSpace(item))
	b.WriteString("\n")
}
