package presence

import (
	"math"
	"sync"
	"time"

	"github.com/plazahq/api/internal/errors"
	"github.com/plazahq/api/internal/instance"
	"github.com/plazahq/api/internal/structures"
)

// DefaultStaleTimeout is how long an entry survives without an update
// before a read sweeps it away.
const DefaultStaleTimeout = time.Second * 120

type Options struct {
	StaleTimeout time.Duration
	Prometheus   instance.Prometheus

	// Now overrides the registry's clock. Leave nil outside of tests.
	Now func() time.Time
}

type presenceInst struct {
	timeout time.Duration
	prom    instance.Prometheus
	now     func() time.Time

	mx      sync.RWMutex
	entries map[string]structures.PresenceEntry
}

func New(opt Options) instance.Presence {
	if opt.StaleTimeout <= 0 {
		opt.StaleTimeout = DefaultStaleTimeout
	}

	if opt.Now == nil {
		opt.Now = time.Now
	}

	return &presenceInst{
		timeout: opt.StaleTimeout,
		prom:    opt.Prometheus,
		now:     opt.Now,
		entries: map[string]structures.PresenceEntry{},
	}
}

func (p *presenceInst) Upsert(sessionID string, x, y, z float64, color string) error {
	if sessionID == "" {
		return errors.ErrNoSession()
	}

	for _, v := range [3]float64{x, y, z} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.ErrValidationRejected().SetDetail("Invalid position data")
		}
	}

	p.mx.Lock()
	defer p.mx.Unlock()

	// last write wins, one entry per session
	p.entries[sessionID] = structures.PresenceEntry{
		SessionID:  sessionID,
		X:          x,
		Y:          y,
		Z:          z,
		Color:      color,
		LastUpdate: p.now(),
	}

	p.prom.PresenceUpserts().Inc()
	p.prom.PresenceLive().Set(float64(len(p.entries)))

	return nil
}

func (p *presenceInst) Snapshot() map[string]structures.PresencePosition {
	now := p.now()

	// the sweep mutates the map, so reads take the write lock
	p.mx.Lock()
	defer p.mx.Unlock()

	out := make(map[string]structures.PresencePosition, len(p.entries))

	for id, entry := range p.entries {
		if now.Sub(entry.LastUpdate) >= p.timeout {
			delete(p.entries, id)
			p.prom.PresenceEvictions().Inc()

			continue
		}

		out[id] = structures.PresencePosition{
			X:     entry.X,
			Y:     entry.Y,
			Z:     entry.Z,
			Color: entry.Color,
		}
	}

	p.prom.PresenceLive().Set(float64(len(p.entries)))

	return out
}

func (p *presenceInst) Size() int {
	p.mx.RLock()
	defer p.mx.RUnlock()

	return len(p.entries)
}
