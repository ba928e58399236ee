package service

import (
	"context"
	"errors"
	"time"

	"github.com/spec-kit/shift-profile-service/internal/auth"
	"github.com/spec-kit/shift-profile-service/internal/domain"
	"github.com/spec-kit/shift-profile-service/internal/events"
	"github.com/spec-kit/shift-profile-service/internal/repository"
)

// AuthService coordinates credential verification, session issuance and
// request authorization.
type AuthService struct {
	users      repository.UserRepository
	tokens     *auth.TokenManager
	dispatcher events.Dispatcher
	bcryptCost int
}

// AuthDependencies encapsulates requirements for the auth service.
type AuthDependencies struct {
	UserRepo     repository.UserRepository
	TokenManager *auth.TokenManager
	Dispatcher   events.Dispatcher
}

// NewAuthService builds the service.
func NewAuthService(deps AuthDependencies, bcryptCost int) *AuthService {
	return &AuthService{
		users:      deps.UserRepo,
		tokens:     deps.TokenManager,
		dispatcher: deps.Dispatcher,
		bcryptCost: bcryptCost,
	}
}

// Authenticate verifies a username/password pair. Unknown usernames and wrong
// passwords return the same auth.ErrInvalidCredentials so the transport layer
// cannot tell them apart. The call is side-effect free; token issuance is the
// caller's step.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, auth.ErrInvalidCredentials
		}
		return nil, err
	}
	if !auth.VerifyPassword(user.PasswordHash, password) {
		return nil, auth.ErrInvalidCredentials
	}
	return user, nil
}

// IssueSession turns an authenticated identity into a signed bearer token
// with the configured TTL.
func (s *AuthService) IssueSession(user *domain.User) (string, time.Time, error) {
	return s.tokens.Issue(user.Username, 0)
}

// Login composes Authenticate and IssueSession and publishes audit events.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, time.Time, error) {
	user, err := s.Authenticate(ctx, username, password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			s.publish(ctx, events.EventLoginRejected, username, nil)
		}
		return "", time.Time{}, err
	}

	token, expiresAt, err := s.IssueSession(user)
	if err != nil {
		return "", time.Time{}, err
	}

	s.publish(ctx, events.EventLoginSucceeded, user.Username, map[string]any{
		"expires_at": expiresAt,
	})
	return token, expiresAt, nil
}

// Authorize decodes an inbound bearer token, resolves its subject and
// enforces the active-account invariant. Decode failures and unknown subjects
// collapse into auth.ErrInvalidCredentials; only the inactive-account case is
// distinguishable. Unexpected storage faults pass through untouched.
func (s *AuthService) Authorize(ctx context.Context, token string) (*domain.User, error) {
	subject, err := s.tokens.Parse(token)
	if err != nil {
		return nil, auth.ErrInvalidCredentials
	}

	user, err := s.users.GetByUsername(ctx, subject)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, auth.ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.Active() {
		return nil, auth.ErrInactiveUser
	}
	return user, nil
}

// RegisterUser provisions a new identity with a freshly computed hash.
// Duplicate usernames or emails surface as repository.ErrDuplicate.
func (s *AuthService) RegisterUser(ctx context.Context, user *domain.User, password string) error {
	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return err
	}
	user.PasswordHash = hash

	if err := s.users.Create(ctx, user); err != nil {
		return err
	}

	s.publish(ctx, events.EventUserRegistered, user.Username, map[string]any{
		"email": user.Email,
	})
	return nil
}

func (s *AuthService) publish(ctx context.Context, eventType events.EventType, username string, payload map[string]any) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		Type:       eventType,
		Username:   username,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	})
}
