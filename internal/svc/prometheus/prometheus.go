package prometheus

import (
	"github.com/plazahq/api/internal/instance"
	"github.com/prometheus/client_golang/prometheus"
)

type Options struct {
	Labels prometheus.Labels
}

func New(o Options) instance.Prometheus {
	return &Instance{
		messagesAppended: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "plaza_messages_appended_total",
			Help:        "Number of messages appended to the board",
			ConstLabels: o.Labels,
		}),
		messagesCleared: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "plaza_messages_cleared_total",
			Help:        "Number of times the board was cleared",
			ConstLabels: o.Labels,
		}),
		presenceUpserts: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "plaza_presence_upserts_total",
			Help:        "Number of position updates received",
			ConstLabels: o.Labels,
		}),
		presenceEvictions: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "plaza_presence_evictions_total",
			Help:        "Number of stale presence entries swept",
			ConstLabels: o.Labels,
		}),
		presenceLive: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "plaza_presence_live",
			Help:        "Presence entries currently held",
			ConstLabels: o.Labels,
		}),
	}
}

type Instance struct {
	messagesAppended  prometheus.Counter
	messagesCleared   prometheus.Counter
	presenceUpserts   prometheus.Counter
	presenceEvictions prometheus.Counter
	presenceLive      prometheus.Gauge
}

func (m *Instance) Register(r prometheus.Registerer) {
	r.MustRegister(
		m.messagesAppended,
		m.messagesCleared,
		m.presenceUpserts,
		m.presenceEvictions,
		m.presenceLive,
	)
}

func (m *Instance) MessagesAppended() prometheus.Counter {
	return m.messagesAppended
}

func (m *Instance) MessagesCleared() prometheus.Counter {
	return m.messagesCleared
}

func (m *Instance) PresenceUpserts() prometheus.Counter {
	return m.presenceUpserts
}

func (m *Instance) PresenceEvictions() prometheus.Counter {
	return m.presenceEvictions
}

func (m *Instance) PresenceLive() prometheus.Gauge {
	return m.presenceLive
}
