package soap

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcomes recorded for each request
const (
	OutcomeSuccess      = "success"
	OutcomeFault        = "fault"
	OutcomeUnauthorized = "unauthorized"
	OutcomeThrottled    = "throttled"
)

// UnknownOperation is the operation label of requests whose body element
// matches no operation of the service, so clients cannot mint new series
const UnknownOperation = "unknown"

// Metrics counts SOAP requests and measures their latency
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them on reg
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "jaxws",
			Subsystem: "soap",
			Name:      "requests_total",
			Help:      "SOAP requests by endpoint, operation and outcome.",
		}, []string{"endpoint", "operation", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "jaxws",
			Subsystem: "soap",
			Name:      "request_duration_seconds",
			Help:      "Time spent handling SOAP requests.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"endpoint", "operation"}),
	}

	for _, c := range []prometheus.Collector{m.requests, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("failed to register soap metrics: %w", err)
		}
	}
	return m, nil
}

func (m *Metrics) observe(endpoint, operation, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(endpoint, operation, outcome).Inc()
	m.duration.WithLabelValues(endpoint, operation).Observe(elapsed.Seconds())
}
