package metrics

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusRecorder(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)

	pr.ObserveRenderDuration(150 * time.Millisecond)
	pr.IncDeck(DeckWritten)
	pr.IncDeck(DeckWritten)
	pr.IncDeck(DeckSkipped)
	pr.AddImagesCopied(3)
	pr.AddImagesCopied(0)
	pr.IncRenderOutcome(OutcomeSuccess)
	pr.SetDeckFingerprint("1_1_overview", "abc")

	assert.InDelta(t, 2, testutil.ToFloat64(pr.decks.WithLabelValues(string(DeckWritten))), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(pr.decks.WithLabelValues(string(DeckSkipped))), 0)
	assert.InDelta(t, 3, testutil.ToFloat64(pr.imagesCopied), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(pr.outcomes.WithLabelValues(string(OutcomeSuccess))), 0)

	mfs, err := reg.Gather()
	require.NoError(t, err)
	assert.Len(t, mfs, 5)
}

func TestPrometheusRecorder_DeckFingerprintReplacesPrevious(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)

	pr.SetDeckFingerprint("1_1_overview", "first")
	pr.SetDeckFingerprint("1_2_details", "other")
	pr.SetDeckFingerprint("1_1_overview", "second")

	assert.Equal(t, 2, testutil.CollectAndCount(pr.deckInfo))
	assert.InDelta(t, 1, testutil.ToFloat64(pr.deckInfo.WithLabelValues("1_1_overview", "second")), 0)

	path := filepath.Join(t.TempDir(), "trackdeck.prom")
	require.NoError(t, WriteTextfile(path, reg))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `trackdeck_deck_info{deck="1_1_overview",fingerprint="second"} 1`)
	assert.NotContains(t, string(data), `fingerprint="first"`)
}

func TestPrometheusRecorder_NilSafe(t *testing.T) {
	var pr *PrometheusRecorder
	assert.NotPanics(t, func() {
		pr.ObserveRenderDuration(time.Second)
		pr.IncDeck(DeckWritten)
		pr.AddImagesCopied(1)
		pr.IncRenderOutcome(OutcomeFailed)
		pr.SetDeckFingerprint("d", "fp")
	})
}

func TestWriteTextfile(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)
	pr.IncRenderOutcome(OutcomeFailed)

	path := filepath.Join(t.TempDir(), "trackdeck.prom")
	require.NoError(t, WriteTextfile(path, reg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `trackdeck_render_outcomes_total{outcome="failed"} 1`)
}

func TestTestRecorderCounts(t *testing.T) {
	r := newTestRecorder()
	r.IncDeck(DeckSkipped)
	r.AddImagesCopied(2)
	r.SetDeckFingerprint("1_1_d", "fp")
	assert.Equal(t, 1, r.decks[DeckSkipped])
	assert.Equal(t, "fp", r.prints["1_1_d"])
	assert.Equal(t, 2, r.images)
}
