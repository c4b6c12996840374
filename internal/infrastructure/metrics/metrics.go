package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	HttpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "postboard_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HttpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "postboard_http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	ActiveRequests = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "postboard_active_requests",
			Help: "Number of requests currently being served",
		},
	)

	cacheLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "postboard_post_list_cache_lookups_total",
			Help: "Post list cache lookups by result",
		},
		[]string{"result"},
	)

	cacheLookupDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "postboard_post_list_cache_lookup_duration_seconds",
			Help:    "Duration of post list cache lookups",
			Buckets: []float64{.0005, .001, .0025, .005, .01, .025, .05, .1},
		},
		[]string{"result"},
	)

	voteTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "postboard_vote_transitions_total",
			Help: "Applied vote toggles by previous and new state",
		},
		[]string{"from", "to"},
	)

	voteCompensations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "postboard_vote_compensations_total",
			Help: "Counter rollbacks applied after a failed vote record write",
		},
		[]string{"result"},
	)
)

func init() {
	prometheus.MustRegister(
		HttpRequestsTotal,
		HttpRequestDuration,
		ActiveRequests,
		cacheLookups,
		cacheLookupDuration,
		voteTransitions,
		voteCompensations,
	)
}

func IncListHit()  { cacheLookups.WithLabelValues("hit").Inc() }
func IncListMiss() { cacheLookups.WithLabelValues("miss").Inc() }

func AddHitDuration(seconds float64)  { cacheLookupDuration.WithLabelValues("hit").Observe(seconds) }
func AddMissDuration(seconds float64) { cacheLookupDuration.WithLabelValues("miss").Observe(seconds) }

// IncVoteTransition counts an applied toggle.
func IncVoteTransition(from, to string) {
	voteTransitions.WithLabelValues(from, to).Inc()
}

// IncVoteCompensation counts a counter rollback; ok is false when the
// rollback itself failed and the post counters are out of step.
func IncVoteCompensation(ok bool) {
	result := "applied"
	if !ok {
		result = "failed"
	}
	voteCompensations.WithLabelValues(result).Inc()
}
