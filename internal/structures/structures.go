package structures

import (
	"time"
)

// Message is one entry in the shared board. IDs are contiguous from zero
// within the current log and are reassigned from zero after a clear.
type Message struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Message  string `json:"message"`
}

// Session is the per-client identity: an opaque id and a display color,
// both immutable for the session's lifetime.
type Session struct {
	UserID string `json:"user_id"`
	Color  string `json:"color"`
}

// PresenceEntry is the last-known position of one session, with the
// freshness timestamp used for stale eviction.
type PresenceEntry struct {
	SessionID  string
	X          float64
	Y          float64
	Z          float64
	Color      string
	LastUpdate time.Time
}

// PresencePosition is the client-facing projection of a presence entry,
// with the freshness timestamp omitted.
type PresencePosition struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Z     float64 `json:"z"`
	Color string  `json:"color"`
}
