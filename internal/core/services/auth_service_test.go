package services

import (
	"time"

	"community-watch/internal/adapters/persistence/models"
	"community-watch/internal/core/domain"
	"community-watch/internal/pkg/jwt"
	"community-watch/internal/pkg/password"

	"golang.org/x/crypto/bcrypt"
)

func (s *ServiceSuite) TestAuthenticateRoundTrip() {
	officer := s.insertOfficer(domain.RoleOfficer)

	login, err := s.auth.Authenticate(s.ctx, officer.Email, testPassword)
	s.Require().NoError(err)
	s.NotEmpty(login.Token)
	s.Equal(officer.ID, login.Officer.ID)

	principal, err := s.auth.ResolveSession(s.ctx, login.Token)
	s.Require().NoError(err)
	s.Equal(officer.ID, principal.OfficerID)
	s.Equal(domain.RoleOfficer, principal.Role)
	s.NotZero(principal.SessionID)

	me, err := s.auth.Me(s.ctx, principal)
	s.Require().NoError(err)
	s.Equal(officer.Email, me.Email)
}

func (s *ServiceSuite) TestAuthenticateFailures() {
	officer := s.insertOfficer(domain.RoleOfficer)

	_, err := s.auth.Authenticate(s.ctx, officer.Email, "wrong-password")
	s.ErrorIs(err, domain.ErrInvalidCredentials)

	_, err = s.auth.Authenticate(s.ctx, "nobody@example.com", testPassword)
	s.ErrorIs(err, domain.ErrInvalidCredentials, "unknown email is indistinguishable from a wrong password")

	active, err := s.repos.Sessions.CountActiveByOfficerID(s.ctx, officer.ID)
	s.Require().NoError(err)
	s.Zero(active, "failed logins open no session")

	s.ErrorIs(s.officers.Delete(s.ctx, domain.Anonymous(), officer.ID), domain.ErrUnauthenticated)
	_, err = s.officers.Get(s.ctx, officer.ID)
	s.NoError(err)
}

func (s *ServiceSuite) TestDummyHashFallback() {
	previous := password.Cost
	password.Cost = bcrypt.MaxCost + 1 // GenerateFromPassword rejects this cost
	defer func() { password.Cost = previous }()

	auth := NewAuthService(s.repos, s.cfg)
	hash := auth.dummyPasswordHash()
	s.Equal(fallbackDummyHash, hash)

	cost, err := bcrypt.Cost([]byte(hash))
	s.Require().NoError(err)
	s.Equal(password.DefaultCost, cost)

	_, err = auth.Authenticate(s.ctx, "nobody@example.com", testPassword)
	s.ErrorIs(err, domain.ErrInvalidCredentials)
}

func (s *ServiceSuite) TestResolveSessionRejects() {
	officer := s.insertOfficer(domain.RoleOfficer)

	s.Run("empty token", func() {
		_, err := s.auth.ResolveSession(s.ctx, "")
		s.ErrorIs(err, domain.ErrUnauthenticated)
	})

	s.Run("garbage token", func() {
		_, err := s.auth.ResolveSession(s.ctx, "not-a-token")
		s.ErrorIs(err, domain.ErrUnauthenticated)
	})

	s.Run("signed token without a session row", func() {
		token, err := jwt.GenerateSessionToken(officer.ID, "admin", "forged", s.cfg.Session.Secret, time.Now().Add(time.Hour))
		s.Require().NoError(err)
		_, err = s.auth.ResolveSession(s.ctx, token)
		s.ErrorIs(err, domain.ErrUnauthenticated)
	})

	s.Run("expired session row", func() {
		token, err := jwt.GenerateSessionToken(officer.ID, "officer", "stale", s.cfg.Session.Secret, time.Now().Add(time.Hour))
		s.Require().NoError(err)
		s.Require().NoError(s.repos.Sessions.Create(s.ctx, &models.Session{
			OfficerID: officer.ID,
			Role:      "officer",
			TokenHash: password.HashToken(token),
			ExpiresAt: time.Now().Add(-time.Minute),
		}))
		_, err = s.auth.ResolveSession(s.ctx, token)
		s.ErrorIs(err, domain.ErrUnauthenticated)
	})
}

func (s *ServiceSuite) TestLogoutRevokesSession() {
	officer := s.insertOfficer(domain.RoleOfficer)
	login, err := s.auth.Authenticate(s.ctx, officer.Email, testPassword)
	s.Require().NoError(err)

	s.Require().NoError(s.auth.Logout(s.ctx, login.Token))

	_, err = s.auth.ResolveSession(s.ctx, login.Token)
	s.ErrorIs(err, domain.ErrUnauthenticated)

	s.NoError(s.auth.Logout(s.ctx, ""))
	s.NoError(s.auth.Logout(s.ctx, "unknown"))
}

func (s *ServiceSuite) TestMeRequiresLogin() {
	_, err := s.auth.Me(s.ctx, domain.Anonymous())
	s.ErrorIs(err, domain.ErrUnauthenticated)
}

func (s *ServiceSuite) TestPurgeExpiredSessions() {
	officer := s.insertOfficer(domain.RoleOfficer)
	login, err := s.auth.Authenticate(s.ctx, officer.Email, testPassword)
	s.Require().NoError(err)
	s.Require().NoError(s.repos.Sessions.Create(s.ctx, &models.Session{
		OfficerID: officer.ID, Role: "officer", TokenHash: "old", ExpiresAt: time.Now().Add(-time.Hour),
	}))

	deleted, err := s.auth.PurgeExpiredSessions(s.ctx)
	s.Require().NoError(err)
	s.Equal(int64(1), deleted)

	_, err = s.auth.ResolveSession(s.ctx, login.Token)
	s.NoError(err, "live sessions survive cleanup")
}

func (s *ServiceSuite) TestCronService() {
	_, err := NewCronService(s.auth, "not a schedule")
	s.Error(err)

	cronService, err := NewCronService(s.auth, "@every 1h")
	s.Require().NoError(err)

	officer := s.insertOfficer(domain.RoleOfficer)
	s.Require().NoError(s.repos.Sessions.Create(s.ctx, &models.Session{
		OfficerID: officer.ID, Role: "officer", TokenHash: "old", ExpiresAt: time.Now().Add(-time.Hour),
	}))

	cronService.purgeSessions()

	deleted, err := s.auth.PurgeExpiredSessions(s.ctx)
	s.Require().NoError(err)
	s.Zero(deleted)

	cronService.Start()
	cronService.Stop()
}
