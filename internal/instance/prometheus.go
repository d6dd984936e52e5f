package instance

import "github.com/prometheus/client_golang/prometheus"

type Prometheus interface {
	Register(r prometheus.Registerer)

	MessagesAppended() prometheus.Counter
	MessagesCleared() prometheus.Counter
	PresenceUpserts() prometheus.Counter
	PresenceEvictions() prometheus.Counter
	PresenceLive() prometheus.Gauge
}
