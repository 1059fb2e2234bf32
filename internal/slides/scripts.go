package slides

import (
	"fmt"

	"git.home.luguber.info/inful/trackdeck/internal/manifest"
)

// sentinelScript is appended after all generated scripts so that hand-edited
// manifests can keep a trailing comma on every real entry.
const sentinelScript = "_"

// Script key prefixes registered for every rendered deck.
const (
	ScriptDev    = "dev"
	ScriptBuild  = "build"
	ScriptExport = "export"
)

// ScriptKey returns the manifest key of a deck script, e.g. "build-1_2".
func ScriptKey(kind, prefix string) string {
	return kind + "-" + prefix
}

// registerDeckScripts adds the dev, build and export scripts of one deck.
// file is the deck file relative to the slides directory; urlBase has
// already been trimmed of slashes.
func registerDeckScripts(scripts *manifest.Scripts, deck *Deck, slug, file, urlBase string) {
	prefix := deck.Prefix()
	sep := ""
	if urlBase != "" {
		sep = "/"
	}

	scripts.Set(ScriptKey(ScriptDev, prefix), "slidev "+file)
	scripts.Set(ScriptKey(ScriptBuild, prefix), fmt.Sprintf(
		"slidev build --download --out dist/%s --base /%s%sslides/%d_%d/ %s",
		slug, urlBase, sep, deck.ModuleIndex, deck.UnitIndex, file))
	scripts.Set(ScriptKey(ScriptExport, prefix), "slidev export "+file)
}
