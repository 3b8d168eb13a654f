package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	PlacesCreated  prometheus.Counter
	PlacesUpdated  prometheus.Counter
	PlacesArchived prometheus.Counter
	EventsCreated  prometheus.Counter
	RatingsCreated prometheus.Counter
	UsersCreated   prometheus.Counter
	SearchRequests prometheus.Counter
	AuthFailures   prometheus.Counter

	RequestDuration *prometheus.HistogramVec
}

// New creates and registers all metrics with the default registry.
func New() *Metrics {
	return NewWith(prometheus.DefaultRegisterer)
}

// NewWith registers the metrics with a specific registerer. Tests pass a
// fresh registry to avoid duplicate registration.
func NewWith(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		PlacesCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "ofdb_places_created_total",
			Help: "Total number of places created",
		}),
		PlacesUpdated: factory.NewCounter(prometheus.CounterOpts{
			Name: "ofdb_places_updated_total",
			Help: "Total number of place revisions submitted",
		}),
		PlacesArchived: factory.NewCounter(prometheus.CounterOpts{
			Name: "ofdb_places_archived_total",
			Help: "Total number of places archived by review",
		}),
		EventsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "ofdb_events_created_total",
			Help: "Total number of events created",
		}),
		RatingsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "ofdb_ratings_created_total",
			Help: "Total number of ratings created",
		}),
		UsersCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "ofdb_users_created_total",
			Help: "Total number of user accounts created",
		}),
		SearchRequests: factory.NewCounter(prometheus.CounterOpts{
			Name: "ofdb_search_requests_total",
			Help: "Total number of search requests served",
		}),
		AuthFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "ofdb_auth_failures_total",
			Help: "Total number of rejected logins and invalid API tokens",
		}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "ofdb_http_request_duration_seconds",
			Help:    "HTTP request latency by method and status class",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "status_class"}),
	}
}
