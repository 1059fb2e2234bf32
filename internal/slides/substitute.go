package slides

import (
	"strconv"
	"strings"
)

// Placeholders recognised in deck templates. Matching is literal and case-sensitive.
const (
	PlaceholderModuleTitle = "#[modmod:mod_title]"
	PlaceholderModuleIndex = "#[modmod:mod_index]"
	PlaceholderUnitIndex   = "#[modmod:unit_index]"
	PlaceholderUnitTitle   = "#[modmod:unit_title]"
	PlaceholderContent     = "#[modmod:content]"
	PlaceholderObjectives  = "#[modmod:objectives]"
	PlaceholderSummary     = "#[modmod:summary]"
	PlaceholderTheme       = "#[modmod:theme]"
)

// substitute replaces every placeholder occurrence in template in a single
// pass. Inserted text is never scanned again, so content that happens to
// contain a placeholder is written out verbatim.
func substitute(template string, deck *Deck, text deckText, theme string) string {
	r := strings.NewReplacer(
		PlaceholderModuleTitle, deck.ModuleName,
		PlaceholderModuleIndex, strconv.FormatUint(uint64(deck.ModuleIndex), 10),
		PlaceholderUnitIndex, strconv.FormatUint(uint64(deck.UnitIndex), 10),
		PlaceholderUnitTitle, deck.Name,
		PlaceholderContent, text.Content,
		PlaceholderObjectives, text.Objectives,
		PlaceholderSummary, text.Summary,
		PlaceholderTheme, theme,
	)
	return r.Replace(template)
}
