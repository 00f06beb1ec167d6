package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "tracklab"

type Metrics struct {
	Borrows  prometheus.Counter
	Returns  *prometheus.CounterVec
	Voids    prometheus.Counter
	Failures *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Borrows: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "borrows_total",
			Help:      "Borrow transactions created.",
		}),
		Returns: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "returns_total",
			Help:      "Borrow transactions closed by a return, by final condition.",
		}, []string{"condition"}),
		Voids: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "voids_total",
			Help:      "Ongoing borrow transactions voided by an administrator.",
		}),
		Failures: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operation_failures_total",
			Help:      "Failed lending operations by operation and reason.",
		}, []string{"operation", "reason"}),
	}
}

func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
