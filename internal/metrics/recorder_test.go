package metrics

import (
	"time"
)

// testRecorder counts calls so other packages' tests can assert on recorded events.
type testRecorder struct {
	durations int
	decks     map[DeckResult]int
	images    int
	outcomes  map[Outcome]int
	prints    map[string]string
}

func newTestRecorder() *testRecorder {
	return &testRecorder{decks: map[DeckResult]int{}, outcomes: map[Outcome]int{}, prints: map[string]string{}}
}

func (t *testRecorder) ObserveRenderDuration(time.Duration) { t.durations++ }
func (t *testRecorder) IncDeck(r DeckResult)                 { t.decks[r]++ }
func (t *testRecorder) AddImagesCopied(n int)                { t.images += n }
func (t *testRecorder) IncRenderOutcome(o Outcome)           { t.outcomes[o]++ }
func (t *testRecorder) SetDeckFingerprint(deck, fp string)  { t.prints[deck] = fp }

var (
	_ Recorder = (*testRecorder)(nil)
	_ Recorder = NoopRecorder{}
	_ Recorder = (*PrometheusRecorder)(nil)
)
