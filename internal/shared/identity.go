package shared

import "github.com/google/uuid"

// Identity is the security context resolved from a session token. It carries
// only what downstream handlers need to scope their queries.
type Identity struct {
	ID         uuid.UUID
	Email      string
	ExternalID string
}
