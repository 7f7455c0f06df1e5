package services

import (
	"community-watch/internal/core/domain"
)

func (s *ServiceSuite) TestCategoryGates() {
	officer := s.principalFor(s.insertOfficer(domain.RoleOfficer))

	_, err := s.categories.Create(s.ctx, domain.Anonymous(), &CreateCategoryInput{Name: "Theft"})
	s.ErrorIs(err, domain.ErrUnauthenticated)

	_, err = s.categories.Create(s.ctx, officer, &CreateCategoryInput{Name: "Theft"})
	s.ErrorIs(err, domain.ErrForbidden)

	theft := s.createCategory("Theft")

	_, err = s.categories.Update(s.ctx, officer, theft.ID, &UpdateCategoryInput{Name: s.strPtr("Burglary")})
	s.ErrorIs(err, domain.ErrForbidden)

	s.ErrorIs(s.categories.Delete(s.ctx, officer, theft.ID), domain.ErrForbidden)

	_, err = s.categories.Get(s.ctx, theft.ID)
	s.NoError(err)
}

func (s *ServiceSuite) TestCategoryNameUnique() {
	s.createCategory("Theft")
	fraud := s.createCategory("Fraud")

	_, err := s.categories.Create(s.ctx, s.admin, &CreateCategoryInput{Name: "Theft"})
	s.ErrorIs(err, domain.ErrDuplicateEntry)

	_, err = s.categories.Update(s.ctx, s.admin, fraud.ID, &UpdateCategoryInput{Name: s.strPtr("Theft")})
	s.ErrorIs(err, domain.ErrDuplicateEntry)

	_, err = s.categories.Create(s.ctx, s.admin, &CreateCategoryInput{Name: "   "})
	s.assertValidationField(err, "name")
}

func (s *ServiceSuite) TestCategoryUpdateOptionalFields() {
	level := 3
	category, err := s.categories.Create(s.ctx, s.admin, &CreateCategoryInput{
		Name:          "Assault",
		Description:   s.strPtr("Physical harm"),
		SeverityLevel: &level,
	})
	s.Require().NoError(err)

	updated, err := s.categories.Update(s.ctx, s.admin, category.ID, &UpdateCategoryInput{ClearDescription: true})
	s.Require().NoError(err)
	s.Nil(updated.Description)
	s.Require().NotNil(updated.SeverityLevel)
	s.Equal(3, *updated.SeverityLevel)
}

func (s *ServiceSuite) TestCategoryDeleteCascades() {
	officer := s.insertOfficer(domain.RoleOfficer)
	theft := s.createCategory("Theft")
	fraud := s.createCategory("Fraud")
	theftReport := s.createReport(theft.ID)
	otherTheftReport := s.createReport(theft.ID)
	fraudReport := s.createReport(fraud.ID)
	s.createAssignment(theftReport.ID, officer.ID)
	s.createAssignment(otherTheftReport.ID, officer.ID)
	kept := s.createAssignment(fraudReport.ID, officer.ID)

	s.Require().NoError(s.categories.Delete(s.ctx, s.admin, theft.ID))

	for _, id := range []uint{theftReport.ID, otherTheftReport.ID} {
		_, err := s.reports.Get(s.ctx, id)
		s.ErrorIs(err, domain.ErrNotFound)
	}

	assignments, total, err := s.assignments.List(s.ctx, s.page())
	s.Require().NoError(err)
	s.Equal(int64(1), total)
	s.Equal(kept.ID, assignments[0].ID)

	_, err = s.reports.Get(s.ctx, fraudReport.ID)
	s.NoError(err)

	s.ErrorIs(s.categories.Delete(s.ctx, s.admin, theft.ID), domain.ErrNotFound)
}

func (s *ServiceSuite) TestCategoryGetEmbedsReports() {
	theft := s.createCategory("Theft")
	s.createReport(theft.ID)

	got, err := s.categories.Get(s.ctx, theft.ID)
	s.Require().NoError(err)
	s.Len(got.CrimeReports, 1)
}
