// Package metrics records solver metrics in a Prometheus registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.trai.ch/tabu/internal/core/domain"
	"go.trai.ch/zerr"
)

const namespace = "tabu"

// Decision outcomes.
const (
	OutcomeAccepted  = "accepted"
	OutcomeAspirated = "aspirated"
	OutcomeRejected  = "rejected"
)

// Recorder implements ports.Metrics on its own Prometheus registry.
type Recorder struct {
	registry      *prometheus.Registry
	decisions     *prometheus.CounterVec
	windowBatches *prometheus.GaugeVec
	windowTokens  *prometheus.GaugeVec
	steps         prometheus.Counter
	newBests      prometheus.Counter
	stepScore     *prometheus.GaugeVec
	bestScore     *prometheus.GaugeVec
}

// NewRecorder creates a Recorder and registers its collectors.
func NewRecorder() (*Recorder, error) {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		decisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "acceptor_decisions_total",
			Help:      "Acceptance decisions by acceptor and outcome.",
		}, []string{"acceptor", "outcome"}),
		windowBatches: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "window_batches",
			Help:      "Step batches held in the tabu window.",
		}, []string{"acceptor"}),
		windowTokens: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "window_tokens",
			Help:      "Distinct tokens held in the tabu window.",
		}, []string{"acceptor"}),
		steps: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "steps_total",
			Help:      "Committed steps.",
		}),
		newBests: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "new_best_total",
			Help:      "Steps that improved the best score.",
		}),
		stepScore: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "step_score",
			Help:      "Score of the last committed step.",
		}, []string{"level"}),
		bestScore: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "best_score",
			Help:      "Best score found so far.",
		}, []string{"level"}),
	}

	for _, c := range []prometheus.Collector{
		r.decisions, r.windowBatches, r.windowTokens, r.steps, r.newBests, r.stepScore, r.bestScore,
	} {
		if err := r.registry.Register(c); err != nil {
			return nil, zerr.Wrap(err, "failed to register metric")
		}
	}
	return r, nil
}

// Registry returns the registry holding the solver metrics.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Decision implements ports.Metrics.
func (r *Recorder) Decision(acceptor string, accepted, aspirated bool) {
	outcome := OutcomeRejected
	switch {
	case accepted && aspirated:
		outcome = OutcomeAspirated
	case accepted:
		outcome = OutcomeAccepted
	}
	r.decisions.WithLabelValues(acceptor, outcome).Inc()
}

// Window implements ports.Metrics.
func (r *Recorder) Window(acceptor string, batches, tokens int) {
	r.windowBatches.WithLabelValues(acceptor).Set(float64(batches))
	r.windowTokens.WithLabelValues(acceptor).Set(float64(tokens))
}

// Step implements ports.Metrics.
func (r *Recorder) Step(score domain.Score) {
	r.steps.Inc()
	setScore(r.stepScore, score)
}

// NewBest implements ports.Metrics.
func (r *Recorder) NewBest(score domain.Score) {
	r.newBests.Inc()
	setScore(r.bestScore, score)
}

// WriteTextfile writes the current metrics to path in the text exposition format.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write metrics"), "path", path)
	}
	return nil
}

func setScore(g *prometheus.GaugeVec, score domain.Score) {
	g.WithLabelValues("hard").Set(float64(score.Hard))
	g.WithLabelValues("soft").Set(float64(score.Soft))
}
