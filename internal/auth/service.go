package auth

import (
	"context"
	"errors"
	"time"

	"github.com/tasklane/tasklane/internal/identity"
	"github.com/tasklane/tasklane/internal/shared"
)

const defaultDisplayName = "User"

// Service bridges external identity assertions to local sessions and gates
// protected operations by resolving session tokens back to live accounts.
type Service struct {
	verifier identity.Verifier
	repo     Repository
	tokens   *TokenIssuer
}

// NewService constructs a new Service.
func NewService(verifier identity.Verifier, repo Repository, tokens *TokenIssuer) *Service {
	return &Service{verifier: verifier, repo: repo, tokens: tokens}
}

// Login exchanges an external identity assertion for a signed session token,
// provisioning or updating the local account on the way. Verification
// failures of any kind surface as ErrInvalidCredential without further
// detail; storage failures propagate unchanged.
func (s *Service) Login(ctx context.Context, assertion string) (*LoginResult, error) {
	claims, err := s.verifier.Verify(ctx, assertion)
	if err != nil {
		return nil, shared.ErrInvalidCredential
	}

	user, err := s.provision(ctx, claims)
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(user, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	return &LoginResult{
		Token: token,
		User:  UserSummary{ID: user.ID, Email: user.Email, DisplayName: user.DisplayName},
	}, nil
}

// provision looks up or creates the local account for a verified identity.
// New accounts start active so the very next request can authenticate. An
// existing account whose recorded external subject differs gets only that
// column updated; a matching account is left untouched.
func (s *Service) provision(ctx context.Context, claims *identity.Claims) (*User, error) {
	user, err := s.repo.FindByEmail(ctx, claims.Email)
	switch {
	case errors.Is(err, shared.ErrNotFound):
		name := claims.Name
		if name == "" {
			name = defaultDisplayName
		}
		created := &User{
			Email:       claims.Email,
			FirebaseUID: claims.Subject,
			DisplayName: name,
			IsActive:    true,
		}
		err = s.repo.Create(ctx, created)
		if err == nil {
			return created, nil
		}
		if !errors.Is(err, shared.ErrDuplicate) {
			return nil, err
		}
		// Lost a concurrent first-login race for this email. Re-read the
		// winning row and merge through the update path below.
		user, err = s.repo.FindByEmail(ctx, claims.Email)
		if err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	}

	if user.FirebaseUID != claims.Subject {
		if err := s.repo.UpdateFirebaseUID(ctx, user.ID, claims.Subject); err != nil {
			return nil, err
		}
		user.FirebaseUID = claims.Subject
	}
	return user, nil
}

// ResolveSession validates a session token and re-resolves its subject
// against the user directory. Missing or deactivated accounts fail exactly
// like bad tokens. There is no caching; every call hits the directory.
func (s *Service) ResolveSession(ctx context.Context, token string) (*shared.Identity, error) {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return nil, shared.ErrUnauthenticated
	}
	id, err := claims.UserID()
	if err != nil {
		return nil, shared.ErrUnauthenticated
	}
	user, err := s.repo.FindByID(ctx, id)
	if err != nil || !user.IsActive {
		return nil, shared.ErrUnauthenticated
	}
	return &shared.Identity{ID: user.ID, Email: user.Email, ExternalID: user.FirebaseUID}, nil
}
