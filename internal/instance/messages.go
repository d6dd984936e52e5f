package instance

import (
	"github.com/plazahq/api/internal/structures"
)

type Messages interface {
	// List returns the full log in append order.
	List() []structures.Message

	// Add appends a new message and persists the log. Both fields are
	// required.
	Add(username string, message string) (structures.Message, error)

	// Clear empties the log and persists the empty state.
	Clear() error

	// Ping reports whether the durable store is writable.
	Ping() error
}
