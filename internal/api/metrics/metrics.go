// Package metrics defines the custom Prometheus metrics for the client
// registry API. It is the single source of truth for metric names, labels,
// and help strings. Metrics register with the default registry at import
// time via promauto; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "registry"

// ClientsTotal counts client record mutations.
// Label:
//   - operation: "created", "updated", or "deleted"
var ClientsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "clients_total",
		Help:      "Total number of client record mutations, by operation.",
	},
	[]string{"operation"},
)

// IconUploadsTotal counts icon upload attempts.
// Label:
//   - result: "stored" or "rejected" (wrong type or too large)
var IconUploadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "icon_uploads_total",
		Help:      "Total number of icon uploads, by result.",
	},
	[]string{"result"},
)
