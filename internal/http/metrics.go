package http

import (
	"errors"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/fivetwenty-io/saasapi/internal/constants"
)

// Metrics holds the prometheus collectors of the request pipeline. Clients
// sharing a registerer share the collectors.
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	RetriesTotal    *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with registerer. When
// another client already registered them, the existing collectors are reused.
func NewMetrics(registerer prometheus.Registerer) (*Metrics, error) {
	metrics := &Metrics{
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: constants.MetricsNamespace,
				Name:      "requests_total",
				Help:      "Total number of vendor API calls by vendor, method, status and outcome",
			},
			[]string{"vendor", "method", "status", "outcome"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: constants.MetricsNamespace,
				Name:      "request_duration_seconds",
				Help:      "Vendor API call latency, retries included",
				Buckets:   prometheus.ExponentialBuckets(0.005, 2, 15), // 5ms to ~80s
			},
			[]string{"vendor", "method"},
		),
		RetriesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: constants.MetricsNamespace,
				Name:      "retries_total",
				Help:      "Total number of retried attempts by vendor and method",
			},
			[]string{"vendor", "method"},
		),
	}

	var err error

	metrics.RequestsTotal, err = register(registerer, metrics.RequestsTotal)
	if err != nil {
		return nil, err
	}

	metrics.RequestDuration, err = register(registerer, metrics.RequestDuration)
	if err != nil {
		return nil, err
	}

	metrics.RetriesTotal, err = register(registerer, metrics.RetriesTotal)
	if err != nil {
		return nil, err
	}

	return metrics, nil
}

func register[T prometheus.Collector](registerer prometheus.Registerer, collector T) (T, error) {
	err := registerer.Register(collector)
	if err == nil {
		return collector, nil
	}

	var already prometheus.AlreadyRegisteredError
	if errors.As(err, &already) {
		if existing, ok := already.ExistingCollector.(T); ok {
			return existing, nil
		}
	}

	return collector, err
}

func (m *Metrics) observeCall(vendor, method string, status int, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}

	code := ""
	if status > 0 {
		code = strconv.Itoa(status)
	}

	m.RequestsTotal.WithLabelValues(vendor, method, code, outcome).Inc()
	m.RequestDuration.WithLabelValues(vendor, method).Observe(elapsed.Seconds())
}

func (m *Metrics) observeRetry(vendor, method string) {
	if m == nil {
		return
	}

	m.RetriesTotal.WithLabelValues(vendor, method).Inc()
}
