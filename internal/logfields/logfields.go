package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyTrack       = "track"
	KeyModule      = "module"
	KeyDeck        = "deck"
	KeyPrefix      = "prefix"
	KeyPath        = "path"
	KeySections    = "sections"
	KeyImages      = "images"
	KeyScripts     = "scripts"
	KeyFingerprint = "fingerprint"
	KeyDurationMS  = "duration_ms"
	KeyError       = "error"
	KeyRunID       = "run_id"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Track(name string) slog.Attr       { return slog.String(KeyTrack, name) }
func Module(name string) slog.Attr      { return slog.String(KeyModule, name) }
func Deck(name string) slog.Attr        { return slog.String(KeyDeck, name) }
func Prefix(p string) slog.Attr         { return slog.String(KeyPrefix, p) }
func Path(p string) slog.Attr           { return slog.String(KeyPath, p) }
func Sections(n int) slog.Attr          { return slog.Int(KeySections, n) }
func Images(n int) slog.Attr            { return slog.Int(KeyImages, n) }
func Scripts(n int) slog.Attr           { return slog.Int(KeyScripts, n) }
func Fingerprint(fp string) slog.Attr   { return slog.String(KeyFingerprint, fp) }
func DurationMS(ms float64) slog.Attr   { return slog.Float64(KeyDurationMS, ms) }
func RunID(id string) slog.Attr         { return slog.String(KeyRunID, id) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
