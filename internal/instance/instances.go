package instance

type Instances struct {
	Messages   Messages
	Presence   Presence
	Sessions   Sessions
	Prometheus Prometheus
}
