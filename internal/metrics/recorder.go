package metrics

import "time"

// DeckResult enumerates what happened to a single deck during a render.
type DeckResult string

const (
	DeckWritten DeckResult = "written"
	DeckSkipped DeckResult = "skipped"
)

// Outcome enumerates render outcomes.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeFailed  Outcome = "failed"
)

// Recorder defines observability hooks for a render.
type Recorder interface {
	ObserveRenderDuration(d time.Duration)
	IncDeck(result DeckResult)
	AddImagesCopied(n int)
	IncRenderOutcome(outcome Outcome)
	// SetDeckFingerprint records the content fingerprint of a written deck.
	SetDeckFingerprint(deck, fingerprint string)
}

// NoopRecorder is a Recorder that does nothing (default when metrics are not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveRenderDuration(time.Duration) {}
func (NoopRecorder) IncDeck(DeckResult)                  {}
func (NoopRecorder) AddImagesCopied(int)                 {}
func (NoopRecorder) IncRenderOutcome(Outcome)            {}
func (NoopRecorder) SetDeckFingerprint(string, string)   {}
