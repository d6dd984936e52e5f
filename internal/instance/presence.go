package instance

import (
	"github.com/plazahq/api/internal/structures"
)

type Presence interface {
	// Upsert records the latest position for a session, replacing any
	// previous entry. The session id must be non-empty and the
	// coordinates finite.
	Upsert(sessionID string, x, y, z float64, color string) error

	// Snapshot evicts every entry older than the stale timeout, then
	// returns the surviving entries keyed by session id.
	Snapshot() map[string]structures.PresencePosition

	// Size returns the number of entries currently held, including any
	// not yet swept.
	Size() int
}
