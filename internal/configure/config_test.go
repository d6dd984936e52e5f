package configure

import (
	"testing"
	"time"

	"github.com/plazahq/api/internal/testutil"
)

func TestDefaults(t *testing.T) {
	c := defaults()

	testutil.Assert(t, "plaza-session", c.Http.Cookie.Name, "cookie name")
	testutil.Assert(t, true, c.Portal.Enabled, "portal enabled")
	testutil.Assert(t, "messages.json", c.Messages.File, "messages file")
	testutil.Assert(t, time.Second*120, c.Presence.StaleTimeout, "stale timeout")
}
