package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/coreos/go-oidc/v3/oidc"
)

const firebaseIssuerBase = "https://securetoken.google.com/"

// FirebaseConfig holds the service account credentials for the Firebase
// project whose ID tokens this service accepts.
type FirebaseConfig struct {
	ProjectID   string
	ClientEmail string
	PrivateKey  string
}

// Validate checks that all credential fields are present.
func (c FirebaseConfig) Validate() error {
	if c.ProjectID == "" {
		return errors.New("identity: firebase project id is required")
	}
	if c.ClientEmail == "" {
		return errors.New("identity: firebase client email is required")
	}
	if c.PrivateKey == "" {
		return errors.New("identity: firebase private key is required")
	}
	return nil
}

// FirebaseVerifier validates Firebase ID tokens against the project's
// published signing keys, discovered through the securetoken OIDC endpoint.
// Signature, issuer, audience, and expiry are all checked.
type FirebaseVerifier struct {
	verifier *oidc.IDTokenVerifier
}

// NewFirebaseVerifier performs OIDC discovery for the project issuer. Called
// once at process start; the verifier caches the key set and is safe for
// concurrent use.
func NewFirebaseVerifier(ctx context.Context, cfg FirebaseConfig) (*FirebaseVerifier, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	provider, err := oidc.NewProvider(ctx, firebaseIssuerBase+cfg.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("identity: oidc discovery: %w", err)
	}
	return &FirebaseVerifier{
		verifier: provider.Verifier(&oidc.Config{ClientID: cfg.ProjectID}),
	}, nil
}

// Verify checks the assertion and extracts the identity claims.
func (v *FirebaseVerifier) Verify(ctx context.Context, assertion string) (*Claims, error) {
	token, err := v.verifier.Verify(ctx, assertion)
	if err != nil {
		return nil, fmt.Errorf("identity: verify id token: %w", err)
	}
	var payload struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	if err := token.Claims(&payload); err != nil {
		return nil, fmt.Errorf("identity: decode claims: %w", err)
	}
	return &Claims{Subject: token.Subject, Email: payload.Email, Name: payload.Name}, nil
}

var _ Verifier = (*FirebaseVerifier)(nil)
