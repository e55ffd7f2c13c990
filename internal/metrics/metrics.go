package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns a dedicated registry created at process start, so counters
// have an explicit lifecycle instead of living as bare package globals.
type Metrics struct {
	registry *prometheus.Registry

	TokensIssued  prometheus.Counter
	FilesAccepted prometheus.Counter
	FilesRejected prometheus.Counter
}

func New() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		TokensIssued: factory.NewCounter(prometheus.CounterOpts{
			Name: "eventhub_login_tokens_issued_total",
			Help: "Number of JWT tokens issued by the login endpoint.",
		}),
		FilesAccepted: factory.NewCounter(prometheus.CounterOpts{
			Name: "eventhub_upload_files_accepted_total",
			Help: "Number of uploaded files that passed validation and were persisted.",
		}),
		FilesRejected: factory.NewCounter(prometheus.CounterOpts{
			Name: "eventhub_upload_files_rejected_total",
			Help: "Number of uploaded files rejected by content validation.",
		}),
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
