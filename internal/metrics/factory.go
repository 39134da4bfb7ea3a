// Package metrics exposes the Prometheus collectors shared by the NBP client,
// the order runner and the HTTP API.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	Namespace = "nbpstat"
	Subsystem = ""
	Factory   = promauto.With(prometheus.DefaultRegisterer)
)

func FQName(name string) string {
	return prometheus.BuildFQName(Namespace, Subsystem, name)
}

// Handler serves the default registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}
