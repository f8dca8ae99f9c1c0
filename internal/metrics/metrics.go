package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the provider dispatch path. All
// counters are fire-and-forget: they record what happened and never
// influence control flow.
type Metrics struct {
	RequestsCreated   prometheus.Counter
	SendOK            prometheus.Counter
	SendError         prometheus.Counter
	Retries           prometheus.Counter
	MaxRetriesReached prometheus.Counter
}

// New creates a Metrics instance with all dispatch counters registered on
// the given registerer. Pass prometheus.DefaultRegisterer in production and
// a fresh registry in tests.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		RequestsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "fraudcheck_provider_requests_created_total",
			Help: "Total number of provider requests built and signed",
		}),
		SendOK: factory.NewCounter(prometheus.CounterOpts{
			Name: "fraudcheck_provider_send_ok_total",
			Help: "Total number of provider sends that returned a reply",
		}),
		SendError: factory.NewCounter(prometheus.CounterOpts{
			Name: "fraudcheck_provider_send_error_total",
			Help: "Total number of provider sends that failed with an I/O error",
		}),
		Retries: factory.NewCounter(prometheus.CounterOpts{
			Name: "fraudcheck_provider_retries_total",
			Help: "Total number of provider send retries",
		}),
		MaxRetriesReached: factory.NewCounter(prometheus.CounterOpts{
			Name: "fraudcheck_provider_max_retries_reached_total",
			Help: "Total number of sends that exhausted the retry budget",
		}),
	}
}
