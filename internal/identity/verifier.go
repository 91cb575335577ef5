// Package identity verifies external identity assertions.
package identity

import "context"

// Claims carries the verified identity returned by the external provider.
type Claims struct {
	Subject string
	Email   string
	Name    string
}

// Verifier checks an opaque identity assertion and returns the verified
// claims, or fails. Implementations make at most one provider round trip and
// never retry.
type Verifier interface {
	Verify(ctx context.Context, assertion string) (*Claims, error)
}
