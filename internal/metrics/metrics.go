package metrics

import "github.com/prometheus/client_golang/prometheus"

const namespace = "daystreak"

var (
	RequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests served, by method, route and status.",
	}, []string{"method", "route", "status"})

	RequestDurationSeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Handler duration for HTTP requests.",
		Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
	}, []string{"method", "route"})

	ProfilesCreatedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "profiles_created_total",
		Help:      "Profiles created.",
	})

	ExerciseLogsCreatedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "exercise_logs_created_total",
		Help:      "Exercise logs stored.",
	})

	ProfileCacheLookupsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "profile_cache_lookups_total",
		Help:      "Profile summary cache lookups, by result (hit, miss, error).",
	}, []string{"result"})

	AuthFailuresTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Requests rejected because of a missing or invalid bearer token.",
	})
)

func MustRegister(reg prometheus.Registerer) {
	reg.MustRegister(
		RequestsTotal,
		RequestDurationSeconds,
		ProfilesCreatedTotal,
		ExerciseLogsCreatedTotal,
		ProfileCacheLookupsTotal,
		AuthFailuresTotal,
	)
}
