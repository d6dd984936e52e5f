package messages

import (
	"fmt"
	"os"
	"path"
	"sync"
	"testing"

	"github.com/plazahq/api/internal/instance"
	"github.com/plazahq/api/internal/svc/prometheus"
	"github.com/plazahq/api/internal/testutil"
)

func newStore(t *testing.T) (instance.Messages, string) {
	file := path.Join(t.TempDir(), "messages.json")

	return New(Options{
		File:       file,
		Prometheus: prometheus.New(prometheus.Options{}),
	}), file
}

func TestAppendIDsContiguous(t *testing.T) {
	t.Parallel()

	m, _ := newStore(t)

	for i := 0; i < 5; i++ {
		msg, err := m.Add("alice", fmt.Sprintf("hello %d", i))
		testutil.IsNil(t, err, "append succeeds")
		testutil.Assert(t, i, msg.ID, "id equals log position")
	}

	list := m.List()
	testutil.Assert(t, 5, len(list), "log length")

	for i, msg := range list {
		testutil.Assert(t, i, msg.ID, "ids contiguous in append order")
	}
}

func TestAppendRequiresBothFields(t *testing.T) {
	t.Parallel()

	m, _ := newStore(t)

	_, err := m.Add("", "hi")
	testutil.IsNotNil(t, err, "missing username is rejected")

	_, err = m.Add("alice", "")
	testutil.IsNotNil(t, err, "missing message is rejected")

	testutil.Assert(t, 0, len(m.List()), "rejected appends leave no state")
}

func TestClearResets(t *testing.T) {
	t.Parallel()

	m, _ := newStore(t)

	_, err := m.Add("alice", "one")
	testutil.IsNil(t, err, "append succeeds")
	_, err = m.Add("bob", "two")
	testutil.IsNil(t, err, "append succeeds")

	testutil.IsNil(t, m.Clear(), "clear succeeds")
	testutil.Assert(t, 0, len(m.List()), "log empty after clear")

	msg, err := m.Add("alice", "again")
	testutil.IsNil(t, err, "append after clear succeeds")
	testutil.Assert(t, 0, msg.ID, "ids restart at zero after clear")
}

func TestReloadFromDisk(t *testing.T) {
	t.Parallel()

	m, file := newStore(t)

	_, err := m.Add("alice", "persisted")
	testutil.IsNil(t, err, "append succeeds")

	reloaded := New(Options{
		File:       file,
		Prometheus: prometheus.New(prometheus.Options{}),
	})

	list := reloaded.List()
	testutil.Assert(t, 1, len(list), "log survives a restart")
	testutil.Assert(t, "alice", list[0].Username, "username survives")
	testutil.Assert(t, "persisted", list[0].Message, "message survives")
	testutil.Assert(t, 0, list[0].ID, "id survives")
}

func TestMissingFileStartsEmpty(t *testing.T) {
	t.Parallel()

	m := New(Options{
		File:       path.Join(t.TempDir(), "does-not-exist.json"),
		Prometheus: prometheus.New(prometheus.Options{}),
	})

	testutil.Assert(t, 0, len(m.List()), "absent file is an empty log")
}

func TestCorruptFileStartsEmpty(t *testing.T) {
	t.Parallel()

	file := path.Join(t.TempDir(), "messages.json")
	testutil.IsNil(t, os.WriteFile(file, []byte("{not json"), 0o644), "write fixture")

	m := New(Options{
		File:       file,
		Prometheus: prometheus.New(prometheus.Options{}),
	})

	testutil.Assert(t, 0, len(m.List()), "unreadable file is an empty log")
}

func TestConcurrentAppend(t *testing.T) {
	t.Parallel()

	m, _ := newStore(t)

	const writers = 20

	errs := make(chan error, writers)

	wg := sync.WaitGroup{}
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()

			_, err := m.Add("writer", fmt.Sprintf("entry %d", n))
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		testutil.IsNil(t, err, "concurrent append succeeds")
	}

	list := m.List()
	testutil.Assert(t, writers, len(list), "every append landed")

	for i, msg := range list {
		testutil.Assert(t, i, msg.ID, "no duplicate or gapped ids")
	}
}

func TestPingReportsUnwritableStore(t *testing.T) {
	t.Parallel()

	m, _ := newStore(t)
	testutil.IsNil(t, m.Ping(), "writable store pings clean")

	broken := New(Options{
		File:       path.Join(t.TempDir(), "missing-dir", "messages.json"),
		Prometheus: prometheus.New(prometheus.Options{}),
	})
	testutil.IsNotNil(t, broken.Ping(), "unwritable store reports an error")
}
