package services

import (
	"time"

	"community-watch/internal/adapters/persistence/models"
	"community-watch/internal/core/domain"
	"community-watch/internal/pkg/password"
)

func (s *ServiceSuite) TestOfficerCreate() {
	s.Run("registers with default role and hashed password", func() {
		input := s.officerInput()
		officer, err := s.officers.Create(s.ctx, domain.Anonymous(), input)
		s.Require().NoError(err)
		s.Equal("officer", officer.Role)

		stored, err := s.repos.Officers.GetByID(s.ctx, officer.ID)
		s.Require().NoError(err)
		s.NotEqual(input.Password, stored.PasswordHash)
		s.True(password.Verify(input.Password, stored.PasswordHash))
	})

	s.Run("normalizes email", func() {
		input := s.officerInput()
		input.Email = "  Mixed.Case@Example.COM "
		officer, err := s.officers.Create(s.ctx, domain.Anonymous(), input)
		s.Require().NoError(err)
		s.Equal("mixed.case@example.com", officer.Email)
	})

	s.Run("rejects short password", func() {
		input := s.officerInput()
		input.Password = "short"
		_, err := s.officers.Create(s.ctx, domain.Anonymous(), input)
		s.assertValidationField(err, "password")
	})
}

func (s *ServiceSuite) TestOfficerBadgeNumberValidation() {
	for _, badge := range []string{"1234567", "1234abcd", "", "12 345678"} {
		before := s.officerCount()
		input := s.officerInput()
		input.BadgeNumber = badge

		_, err := s.officers.Create(s.ctx, domain.Anonymous(), input)
		s.assertValidationField(err, "badge_number")
		s.Equal(before, s.officerCount(), "badge %q must not persist a row", badge)
	}
}

func (s *ServiceSuite) TestOfficerPhoneValidation() {
	s.Run("on create", func() {
		before := s.officerCount()
		input := s.officerInput()
		input.Phone = "071100000"

		_, err := s.officers.Create(s.ctx, domain.Anonymous(), input)
		s.assertValidationField(err, "phone")
		s.Equal(before, s.officerCount())
	})

	s.Run("on update", func() {
		officer := s.insertOfficer(domain.RoleOfficer)
		_, err := s.officers.Update(s.ctx, s.principalFor(officer), officer.ID, &UpdateOfficerInput{
			Name:  s.strPtr("Renamed"),
			Phone: s.strPtr("12345"),
		})
		s.assertValidationField(err, "phone")

		stored, err := s.repos.Officers.GetByID(s.ctx, officer.ID)
		s.Require().NoError(err)
		s.Equal(officer.Phone, stored.Phone)
		s.Equal(officer.Name, stored.Name, "no field of a failed update is applied")
	})
}

func (s *ServiceSuite) TestOfficerEmailUniqueness() {
	first := s.officerInput()
	_, err := s.officers.Create(s.ctx, domain.Anonymous(), first)
	s.Require().NoError(err)
	before := s.officerCount()

	second := s.officerInput()
	second.Email = first.Email
	_, err = s.officers.Create(s.ctx, domain.Anonymous(), second)
	s.Require().ErrorIs(err, domain.ErrDuplicateEntry)

	var uniq *domain.UniquenessError
	s.Require().ErrorAs(err, &uniq)
	s.Equal("email", uniq.Field)
	s.Equal(before, s.officerCount())
}

func (s *ServiceSuite) TestOfficerAdminRegistration() {
	officer := s.insertOfficer(domain.RoleOfficer)

	input := s.officerInput()
	input.Role = "admin"

	_, err := s.officers.Create(s.ctx, domain.Anonymous(), input)
	s.ErrorIs(err, domain.ErrUnauthenticated)

	_, err = s.officers.Create(s.ctx, s.principalFor(officer), input)
	s.ErrorIs(err, domain.ErrForbidden)

	created, err := s.officers.Create(s.ctx, s.admin, input)
	s.Require().NoError(err)
	s.Equal("admin", created.Role)

	bad := s.officerInput()
	bad.Role = "chief"
	_, err = s.officers.Create(s.ctx, s.admin, bad)
	s.assertValidationField(err, "role")
}

func (s *ServiceSuite) TestOfficerUpdateGates() {
	officer := s.insertOfficer(domain.RoleOfficer)
	other := s.insertOfficer(domain.RoleOfficer)

	s.Run("anonymous is rejected", func() {
		_, err := s.officers.Update(s.ctx, domain.Anonymous(), officer.ID, &UpdateOfficerInput{Rank: s.strPtr("Inspector")})
		s.ErrorIs(err, domain.ErrUnauthenticated)
	})

	s.Run("officer updates self", func() {
		updated, err := s.officers.Update(s.ctx, s.principalFor(officer), officer.ID, &UpdateOfficerInput{Rank: s.strPtr("Inspector")})
		s.Require().NoError(err)
		s.Equal("Inspector", updated.Rank)
	})

	s.Run("officer cannot update someone else", func() {
		_, err := s.officers.Update(s.ctx, s.principalFor(officer), other.ID, &UpdateOfficerInput{Rank: s.strPtr("Chief")})
		s.ErrorIs(err, domain.ErrForbidden)
	})

	s.Run("officer cannot promote self", func() {
		_, err := s.officers.Update(s.ctx, s.principalFor(officer), officer.ID, &UpdateOfficerInput{Role: s.strPtr("admin")})
		s.ErrorIs(err, domain.ErrForbidden)
	})

	s.Run("unknown id is not found", func() {
		_, err := s.officers.Update(s.ctx, s.admin, 9999, &UpdateOfficerInput{Rank: s.strPtr("Chief")})
		s.ErrorIs(err, domain.ErrNotFound)
	})

	s.Run("duplicate badge on update", func() {
		_, err := s.officers.Update(s.ctx, s.admin, officer.ID, &UpdateOfficerInput{BadgeNumber: s.strPtr(other.BadgeNumber)})
		s.ErrorIs(err, domain.ErrDuplicateEntry)
	})
}

func (s *ServiceSuite) TestOfficerPasswordUpdateRehashes() {
	officer := s.insertOfficer(domain.RoleOfficer)

	_, err := s.officers.Update(s.ctx, s.principalFor(officer), officer.ID, &UpdateOfficerInput{Password: s.strPtr("new-password-1")})
	s.Require().NoError(err)

	stored, err := s.repos.Officers.GetByID(s.ctx, officer.ID)
	s.Require().NoError(err)
	s.True(password.Verify("new-password-1", stored.PasswordHash))
	s.False(password.Verify(testPassword, stored.PasswordHash))
}

func (s *ServiceSuite) TestOfficerRoleChangeRevokesSessions() {
	officer := s.insertOfficer(domain.RoleOfficer)
	login, err := s.auth.Authenticate(s.ctx, officer.Email, testPassword)
	s.Require().NoError(err)

	updated, err := s.officers.Update(s.ctx, s.admin, officer.ID, &UpdateOfficerInput{Role: s.strPtr("admin")})
	s.Require().NoError(err)
	s.Equal("admin", updated.Role)

	_, err = s.auth.ResolveSession(s.ctx, login.Token)
	s.ErrorIs(err, domain.ErrUnauthenticated)
}

func (s *ServiceSuite) TestOfficerDeleteGates() {
	target := s.insertOfficer(domain.RoleOfficer)
	caller := s.insertOfficer(domain.RoleOfficer)

	s.Run("anonymous gets unauthenticated", func() {
		s.ErrorIs(s.officers.Delete(s.ctx, domain.Anonymous(), target.ID), domain.ErrUnauthenticated)
	})

	s.Run("officer gets forbidden and target survives", func() {
		s.ErrorIs(s.officers.Delete(s.ctx, s.principalFor(caller), target.ID), domain.ErrForbidden)

		list, _, err := s.officers.List(s.ctx, s.page())
		s.Require().NoError(err)
		ids := make([]uint, 0, len(list))
		for _, o := range list {
			ids = append(ids, o.ID)
		}
		s.Contains(ids, target.ID)
	})

	s.Run("admin cannot delete self", func() {
		s.ErrorIs(s.officers.Delete(s.ctx, s.admin, s.admin.OfficerID), domain.ErrCannotDeleteSelf)
	})

	s.Run("admin deletes", func() {
		s.Require().NoError(s.officers.Delete(s.ctx, s.admin, target.ID))
		_, err := s.officers.Get(s.ctx, target.ID)
		s.ErrorIs(err, domain.ErrNotFound)
	})

	s.Run("missing officer is not found", func() {
		s.ErrorIs(s.officers.Delete(s.ctx, s.admin, 9999), domain.ErrNotFound)
	})
}

func (s *ServiceSuite) TestOfficerDeleteCascades() {
	officer := s.insertOfficer(domain.RoleOfficer)
	theft := s.createCategory("Theft")
	report := s.createReport(theft.ID)
	s.createAssignment(report.ID, officer.ID)
	s.Require().NoError(s.repos.Sessions.Create(s.ctx, &models.Session{
		OfficerID: officer.ID, Role: "officer", TokenHash: "h", ExpiresAt: time.Now().Add(time.Hour),
	}))

	s.Require().NoError(s.officers.Delete(s.ctx, s.admin, officer.ID))

	count, err := s.repos.Assignments.Count(s.ctx)
	s.Require().NoError(err)
	s.Zero(count)

	active, err := s.repos.Sessions.CountActiveByOfficerID(s.ctx, officer.ID)
	s.Require().NoError(err)
	s.Zero(active)

	_, err = s.reports.Get(s.ctx, report.ID)
	s.NoError(err, "reports outlive their assigned officers")
}

func (s *ServiceSuite) TestOfficerGetEmbedsAssignments() {
	officer := s.insertOfficer(domain.RoleOfficer)
	theft := s.createCategory("Theft")
	report := s.createReport(theft.ID)
	s.createAssignment(report.ID, officer.ID)

	got, err := s.officers.Get(s.ctx, officer.ID)
	s.Require().NoError(err)
	s.Require().Len(got.Assignments, 1)
	s.Require().NotNil(got.Assignments[0].CrimeReport)
	s.Equal(report.ID, got.Assignments[0].CrimeReport.ID)
}
