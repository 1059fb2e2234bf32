package metrics

import (
	"fmt"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

const namespace = "trackdeck"

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	renderDuration prom.Histogram
	decks          *prom.CounterVec
	imagesCopied   prom.Counter
	outcomes       *prom.CounterVec
	deckInfo       *prom.GaugeVec
}

// NewPrometheusRecorder constructs the render metrics and registers them with reg.
// A nil reg gets a fresh private registry.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		renderDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "render_duration_seconds",
			Help:      "Duration of a full slide package render",
			Buckets:   prom.DefBuckets,
		}),
		decks: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "decks_total",
			Help:      "Decks processed by result",
		}, []string{"result"}),
		imagesCopied: prom.NewCounter(prom.CounterOpts{
			Namespace: namespace,
			Name:      "images_copied_total",
			Help:      "Images copied into the shared slides image directory",
		}),
		outcomes: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "render_outcomes_total",
			Help:      "Render outcomes by final status",
		}, []string{"outcome"}),
		deckInfo: prom.NewGaugeVec(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "deck_info",
			Help:      "Content fingerprint of each written deck, always 1",
		}, []string{"deck", "fingerprint"}),
	}
	reg.MustRegister(pr.renderDuration, pr.decks, pr.imagesCopied, pr.outcomes, pr.deckInfo)
	return pr
}

func (p *PrometheusRecorder) ObserveRenderDuration(d time.Duration) {
	if p == nil {
		return
	}
	p.renderDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncDeck(result DeckResult) {
	if p == nil {
		return
	}
	p.decks.WithLabelValues(string(result)).Inc()
}

func (p *PrometheusRecorder) AddImagesCopied(n int) {
	if p == nil || n <= 0 {
		return
	}
	p.imagesCopied.Add(float64(n))
}

func (p *PrometheusRecorder) IncRenderOutcome(outcome Outcome) {
	if p == nil {
		return
	}
	p.outcomes.WithLabelValues(string(outcome)).Inc()
}

// SetDeckFingerprint replaces any earlier fingerprint series for deck.
func (p *PrometheusRecorder) SetDeckFingerprint(deck, fingerprint string) {
	if p == nil {
		return
	}
	p.deckInfo.DeletePartialMatch(prom.Labels{"deck": deck})
	p.deckInfo.WithLabelValues(deck, fingerprint).Set(1)
}

// WriteTextfile writes every metric gathered from g to path in the Prometheus
// text exposition format. The file is replaced atomically.
func WriteTextfile(path string, g prom.Gatherer) error {
	if err := prom.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
