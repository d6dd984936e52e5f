package session

import (
	"regexp"
	"testing"

	"github.com/plazahq/api/internal/testutil"
)

var colorPattern = regexp.MustCompile(`^#[0-9a-f]{6}$`)

func TestIssueAndVerify(t *testing.T) {
	t.Parallel()

	s, err := New(Options{Secret: "test-secret"})
	testutil.IsNil(t, err, "setup succeeds")

	sess, token, err := s.Issue()
	testutil.IsNil(t, err, "issue succeeds")
	testutil.Assert(t, true, sess.UserID != "", "a user id was assigned")
	testutil.Assert(t, true, colorPattern.MatchString(sess.Color), "color is #rrggbb lowercase hex")
	testutil.Assert(t, true, token != "", "a token was produced")

	// repeated verification returns the identical identity
	for i := 0; i < 3; i++ {
		got, err := s.Verify(token)
		testutil.IsNil(t, err, "verify succeeds")
		testutil.Assert(t, sess, got, "session is stable across verifications")
	}
}

func TestIssuedSessionsAreDistinct(t *testing.T) {
	t.Parallel()

	s, err := New(Options{Secret: "test-secret"})
	testutil.IsNil(t, err, "setup succeeds")

	a, _, err := s.Issue()
	testutil.IsNil(t, err, "first issue")
	b, _, err := s.Issue()
	testutil.IsNil(t, err, "second issue")

	testutil.Assert(t, true, a.UserID != b.UserID, "ids don't collide")
}

func TestVerifyRejectsBadTokens(t *testing.T) {
	t.Parallel()

	s, err := New(Options{Secret: "test-secret"})
	testutil.IsNil(t, err, "setup succeeds")

	_, err = s.Verify("")
	testutil.IsNotNil(t, err, "empty token is rejected")

	_, err = s.Verify("not.a.token")
	testutil.IsNotNil(t, err, "garbage token is rejected")
}

func TestVerifyRejectsForeignTokens(t *testing.T) {
	t.Parallel()

	a, err := New(Options{Secret: "secret-a"})
	testutil.IsNil(t, err, "setup a")
	b, err := New(Options{Secret: "secret-b"})
	testutil.IsNil(t, err, "setup b")

	_, token, err := a.Issue()
	testutil.IsNil(t, err, "issue on a")

	_, err = b.Verify(token)
	testutil.IsNotNil(t, err, "token signed elsewhere is rejected")
}

func TestSecretIsRequired(t *testing.T) {
	t.Parallel()

	_, err := New(Options{})
	testutil.IsNotNil(t, err, "empty secret is refused")
}
