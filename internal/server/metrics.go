package server

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Pass outcomes for the evaluation counter.
const (
	outcomeOK          = "ok"
	outcomeSourceError = "source_error"
	outcomeDataError   = "data_error"
)

var (
	passesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "talentboard",
		Name:      "evaluation_passes_total",
		Help:      "Evaluation passes by outcome. Every dashboard request is one pass.",
	}, []string{"outcome"})

	passDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "talentboard",
		Name:      "evaluation_pass_duration_seconds",
		Help:      "Duration of a full fetch-normalize-aggregate pass.",
		Buckets:   prometheus.DefBuckets,
	})
)

func observePass(outcome string, d time.Duration) {
	passesTotal.WithLabelValues(outcome).Inc()
	passDuration.Observe(d.Seconds())
}
