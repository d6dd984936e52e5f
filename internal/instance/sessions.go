package instance

import (
	"github.com/plazahq/api/internal/structures"
)

type Sessions interface {
	// Issue creates a new session with a fresh id and color, returning
	// it along with the signed token to hand to the client.
	Issue() (structures.Session, string, error)

	// Verify decodes a token previously produced by Issue, returning
	// the session unchanged.
	Verify(token string) (structures.Session, error)
}
