package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// User represents a locally provisioned account tied to one Firebase identity.
type User struct {
	ID          uuid.UUID
	Email       string
	FirebaseUID string
	DisplayName string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// SessionClaims defines the information stored in a session token. The
// subject registered claim carries the user id.
type SessionClaims struct {
	Email      string `json:"email"`
	ExternalID string `json:"externalId"`
	jwt.RegisteredClaims
}

// UserSummary is the public-safe projection of an account returned on login.
type UserSummary struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"displayName"`
}

// LoginResult pairs a signed session token with the account summary.
type LoginResult struct {
	Token string      `json:"token"`
	User  UserSummary `json:"user"`
}
