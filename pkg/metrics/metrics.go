package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	interviewSim = "interview_sim"

	// Interview lifecycle metrics
	interviewsStartedTotal   = "interviews_started_total"
	interviewsCompletedTotal = "interviews_completed_total"

	// Completion provider metrics
	completionRequestsTotal      = "completion_requests_total"
	completionRequestDurationSec = "completion_request_duration_seconds"

	// Labels
	completionKindLabel   = "kind"
	completionResultLabel = "result"
)

var completionRequestLabels = []string{
	completionKindLabel,
	completionResultLabel,
}

/**
* Metrics definition
**/
var interviewsStartedTotalMetric = prometheus.NewCounter(
	prometheus.CounterOpts{
		Subsystem: interviewSim,
		Name:      interviewsStartedTotal,
		Help:      "number of interviews created",
	},
)

var interviewsCompletedTotalMetric = prometheus.NewCounter(
	prometheus.CounterOpts{
		Subsystem: interviewSim,
		Name:      interviewsCompletedTotal,
		Help:      "number of interviews closed by an evaluation",
	},
)

var completionRequestsTotalMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: interviewSim,
		Name:      completionRequestsTotal,
		Help:      "number of completion provider calls partitioned by kind and result",
	},
	completionRequestLabels,
)

var completionRequestDurationMetric = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Subsystem: interviewSim,
		Name:      completionRequestDurationSec,
		Help:      "latency of completion provider calls",
		Buckets:   []float64{0.5, 1, 2.5, 5, 10, 30},
	},
	[]string{completionKindLabel},
)

func IncreaseInterviewsStartedMetric() {
	interviewsStartedTotalMetric.Inc()
}

func IncreaseInterviewsCompletedMetric() {
	interviewsCompletedTotalMetric.Inc()
}

func IncreaseCompletionRequestsMetric(kind, result string) {
	completionRequestsTotalMetric.With(prometheus.Labels{
		completionKindLabel:   kind,
		completionResultLabel: result,
	}).Inc()
}

func ObserveCompletionRequestDuration(kind string, seconds float64) {
	completionRequestDurationMetric.With(prometheus.Labels{
		completionKindLabel: kind,
	}).Observe(seconds)
}

func init() {
	registerMetrics()
}

func registerMetrics() {
	prometheus.MustRegister(interviewsStartedTotalMetric)
	prometheus.MustRegister(interviewsCompletedTotalMetric)
	prometheus.MustRegister(completionRequestsTotalMetric)
	prometheus.MustRegister(completionRequestDurationMetric)
}
