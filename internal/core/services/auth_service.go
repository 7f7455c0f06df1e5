package services

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"community-watch/internal/adapters/persistence/models"
	"community-watch/internal/adapters/persistence/repositories"
	"community-watch/internal/config"
	"community-watch/internal/core/authz"
	"community-watch/internal/core/domain"
	"community-watch/internal/pkg/jwt"
	"community-watch/internal/pkg/metrics"
	"community-watch/internal/pkg/password"

	"github.com/google/uuid"
)

// fallbackDummyHash is a cost-12 bcrypt hash of a random value, used when the
// per-process dummy hash cannot be built
const fallbackDummyHash = "$2a$12$Xa/7g/8FUznRsY8tsvbfVOLUKJnalsLuPtsJkCb/DXsPFdX2ZCqXC"

// AuthService handles login, session resolution and logout
type AuthService struct {
	repos *repositories.Repositories
	cfg   *config.Config

	dummyOnce sync.Once
	dummyHash string
}

// NewAuthService creates a new auth service
func NewAuthService(repos *repositories.Repositories, cfg *config.Config) *AuthService {
	return &AuthService{
		repos: repos,
		cfg:   cfg,
	}
}

// LoginResult is returned by a successful Authenticate
type LoginResult struct {
	Officer   *models.OfficerResponse `json:"officer"`
	Token     string                  `json:"-"`
	ExpiresAt time.Time               `json:"expires_at"`
}

// Authenticate verifies email and password and opens a session.
// Unknown email and wrong password both return domain.ErrInvalidCredentials.
func (s *AuthService) Authenticate(ctx context.Context, email, rawPassword string) (*LoginResult, error) {
	officer, err := s.repos.Officers.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			metrics.Default().ObserveLogin("error")
			return nil, err
		}
		// spend the same bcrypt work as a real comparison
		password.Verify(rawPassword, s.dummyPasswordHash())
		metrics.Default().ObserveLogin("invalid_credentials")
		return nil, domain.ErrInvalidCredentials
	}

	if !password.Verify(rawPassword, officer.PasswordHash) {
		metrics.Default().ObserveLogin("invalid_credentials")
		return nil, domain.ErrInvalidCredentials
	}

	expiresAt := jwt.GetExpiryTime(s.cfg.Session.Hours)
	token, err := jwt.GenerateSessionToken(officer.ID, officer.Role, uuid.New().String(), s.cfg.Session.Secret, expiresAt)
	if err != nil {
		metrics.Default().ObserveLogin("error")
		return nil, err
	}

	session := &models.Session{
		OfficerID: officer.ID,
		Role:      officer.Role,
		TokenHash: password.HashToken(token),
		ExpiresAt: expiresAt,
	}
	if err := s.repos.Sessions.Create(ctx, session); err != nil {
		metrics.Default().ObserveLogin("error")
		return nil, err
	}

	metrics.Default().ObserveLogin("success")
	log.Printf("✅ Officer logged in: %s", officer.Email)

	return &LoginResult{
		Officer:   officer.ToResponse(),
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

// ResolveSession turns a session token into a principal.
// Any invalid, unknown, revoked or expired token yields domain.ErrUnauthenticated.
func (s *AuthService) ResolveSession(ctx context.Context, token string) (domain.Principal, error) {
	if token == "" {
		return domain.Anonymous(), domain.ErrUnauthenticated
	}

	claims, err := jwt.ValidateSessionToken(token, s.cfg.Session.Secret)
	if err != nil {
		return domain.Anonymous(), domain.ErrUnauthenticated
	}

	session, err := s.repos.Sessions.GetByTokenHash(ctx, password.HashToken(token))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Anonymous(), domain.ErrUnauthenticated
		}
		return domain.Anonymous(), err
	}

	if session.IsRevoked() || session.IsExpired() || session.OfficerID != claims.OfficerID {
		return domain.Anonymous(), domain.ErrUnauthenticated
	}

	return domain.Principal{
		OfficerID: session.OfficerID,
		Role:      domain.Role(session.Role),
		SessionID: session.ID,
	}, nil
}

// Logout revokes the session behind token. An unknown token is not an error.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	if err := s.repos.Sessions.RevokeByTokenHash(ctx, password.HashToken(token)); err != nil {
		return err
	}

	log.Printf("✅ Officer logged out")
	return nil
}

// Me returns the officer bound to the caller's session
func (s *AuthService) Me(ctx context.Context, p domain.Principal) (*models.OfficerResponse, error) {
	if err := authz.Check(p, authz.LoginRequired); err != nil {
		return nil, err
	}

	officer, err := s.repos.Officers.GetByIDWithAssignments(ctx, p.OfficerID)
	if err != nil {
		return nil, err
	}
	return officer.ToResponse(), nil
}

// PurgeExpiredSessions deletes expired and revoked session rows
func (s *AuthService) PurgeExpiredSessions(ctx context.Context) (int64, error) {
	return s.repos.Sessions.DeleteExpired(ctx)
}

func (s *AuthService) dummyPasswordHash() string {
	s.dummyOnce.Do(func() {
		hash, err := password.Hash(uuid.New().String())
		if err != nil {
			log.Printf("⚠️ Failed to build dummy password hash, using fallback: %v", err)
			s.dummyHash = fallbackDummyHash
			return
		}
		s.dummyHash = hash
	})
	return s.dummyHash
}
