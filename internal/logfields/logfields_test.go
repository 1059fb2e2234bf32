package logfields

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestHelperKeyNames verifies string-based helper key/value stability.
func TestHelperKeyNames(t *testing.T) {
	cases := []struct {
		name    string
		attrKey string
		attrVal string
		attr    slog.Attr
	}{
		{"Track", KeyTrack, "intro-to-systems", Track("intro-to-systems")},
		{"Module", KeyModule, "Basics", Module("Basics")},
		{"Deck", KeyDeck, "1_1_overview", Deck("1_1_overview")},
		{"Prefix", KeyPrefix, "1_1", Prefix("1_1")},
		{"Path", KeyPath, "/tmp/x", Path("/tmp/x")},
		{"Fingerprint", KeyFingerprint, "abc", Fingerprint("abc")},
		{"RunID", KeyRunID, "6f1c", RunID("6f1c")},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.attrKey, c.attr.Key)
			assert.Equal(t, c.attrVal, c.attr.Value.String())
		})
	}
}

func TestNumericHelpers(t *testing.T) {
	assert.Equal(t, int64(3), Sections(3).Value.Int64())
	assert.Equal(t, int64(2), Images(2).Value.Int64())
	assert.Equal(t, int64(7), Scripts(7).Value.Int64())
	assert.InDelta(t, 12.5, DurationMS(12.5).Value.Float64(), 0.0001)
}

func TestErrorHelper(t *testing.T) {
	assert.Equal(t, "", Error(nil).Value.String())
	assert.Equal(t, "boom", Error(errors.New("boom")).Value.String())
	assert.Equal(t, KeyError, Error(nil).Key)
}
