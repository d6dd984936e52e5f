package presence

import (
	"math"
	"testing"
	"time"

	"github.com/plazahq/api/internal/instance"
	"github.com/plazahq/api/internal/svc/prometheus"
	"github.com/plazahq/api/internal/testutil"
)

// newRegistry returns a registry driven by a settable clock.
func newRegistry(t *testing.T, timeout time.Duration) (instance.Presence, *time.Time) {
	now := time.Now()

	return New(Options{
		StaleTimeout: timeout,
		Prometheus:   prometheus.New(prometheus.Options{}),
		Now:          func() time.Time { return now },
	}), &now
}

func TestUpsertAndSnapshot(t *testing.T) {
	t.Parallel()

	p, _ := newRegistry(t, 0)

	testutil.IsNil(t, p.Upsert("sid", 1.0, 2.0, 3.0, "#ff0000"), "upsert succeeds")

	snap := p.Snapshot()
	testutil.Assert(t, 1, len(snap), "one entry")

	pos, ok := snap["sid"]
	testutil.Assert(t, true, ok, "entry keyed by session id")
	testutil.Assert(t, 1.0, pos.X, "x")
	testutil.Assert(t, 2.0, pos.Y, "y")
	testutil.Assert(t, 3.0, pos.Z, "z")
	testutil.Assert(t, "#ff0000", pos.Color, "color")
}

func TestUpsertOverwrites(t *testing.T) {
	t.Parallel()

	p, _ := newRegistry(t, 0)

	testutil.IsNil(t, p.Upsert("sid", 1.0, 2.0, 3.0, "#ff0000"), "first upsert")
	testutil.IsNil(t, p.Upsert("sid", 4.0, 5.0, 6.0, "#ff0000"), "second upsert")

	snap := p.Snapshot()
	testutil.Assert(t, 1, len(snap), "still one entry per session")
	testutil.Assert(t, 4.0, snap["sid"].X, "latest x wins")
	testutil.Assert(t, 5.0, snap["sid"].Y, "latest y wins")
	testutil.Assert(t, 6.0, snap["sid"].Z, "latest z wins")
}

func TestUpsertRejectsEmptySession(t *testing.T) {
	t.Parallel()

	p, _ := newRegistry(t, 0)

	testutil.IsNotNil(t, p.Upsert("", 1, 2, 3, "#ff0000"), "empty session id is rejected")
	testutil.Assert(t, 0, p.Size(), "rejected upsert leaves no entry")
}

func TestUpsertRejectsNonFiniteCoordinates(t *testing.T) {
	t.Parallel()

	p, _ := newRegistry(t, 0)

	testutil.IsNotNil(t, p.Upsert("sid", math.NaN(), 0, 0, "#ff0000"), "NaN is rejected")
	testutil.IsNotNil(t, p.Upsert("sid", 0, math.Inf(1), 0, "#ff0000"), "+Inf is rejected")
	testutil.IsNotNil(t, p.Upsert("sid", 0, 0, math.Inf(-1), "#ff0000"), "-Inf is rejected")
	testutil.Assert(t, 0, p.Size(), "rejected upserts leave no entry")
}

func TestEvictionBoundary(t *testing.T) {
	t.Parallel()

	p, now := newRegistry(t, DefaultStaleTimeout)
	t0 := *now

	testutil.IsNil(t, p.Upsert("sid", 1, 2, 3, "#ff0000"), "upsert at t0")

	*now = t0.Add(time.Second * 119)
	_, ok := p.Snapshot()["sid"]
	testutil.Assert(t, true, ok, "entry survives at t0+119s")

	*now = t0.Add(time.Second * 120)
	_, ok = p.Snapshot()["sid"]
	testutil.Assert(t, false, ok, "entry evicted at exactly t0+120s")
	testutil.Assert(t, 0, p.Size(), "sweep removed the entry from the map")
}

func TestEvictionAfterTimeout(t *testing.T) {
	t.Parallel()

	p, now := newRegistry(t, DefaultStaleTimeout)
	t0 := *now

	testutil.IsNil(t, p.Upsert("sid", 1, 2, 3, "#ff0000"), "upsert at t0")

	*now = t0.Add(time.Second * 121)
	testutil.Assert(t, 0, len(p.Snapshot()), "entry excluded at t0+121s")
}

func TestUpdateRefreshesFreshness(t *testing.T) {
	t.Parallel()

	p, now := newRegistry(t, DefaultStaleTimeout)
	t0 := *now

	testutil.IsNil(t, p.Upsert("sid", 1, 2, 3, "#ff0000"), "upsert at t0")

	*now = t0.Add(time.Second * 100)
	testutil.IsNil(t, p.Upsert("sid", 4, 5, 6, "#ff0000"), "upsert at t0+100s")

	*now = t0.Add(time.Second * 150)
	_, ok := p.Snapshot()["sid"]
	testutil.Assert(t, true, ok, "refreshed entry survives past the original deadline")
}

func TestSweepOnlyRemovesStaleEntries(t *testing.T) {
	t.Parallel()

	p, now := newRegistry(t, DefaultStaleTimeout)
	t0 := *now

	testutil.IsNil(t, p.Upsert("old", 1, 1, 1, "#111111"), "old entry")

	*now = t0.Add(time.Second * 110)
	testutil.IsNil(t, p.Upsert("fresh", 2, 2, 2, "#222222"), "fresh entry")

	*now = t0.Add(time.Second * 125)
	snap := p.Snapshot()
	testutil.Assert(t, 1, len(snap), "only the fresh entry survives")

	_, ok := snap["fresh"]
	testutil.Assert(t, true, ok, "fresh entry kept")
}
