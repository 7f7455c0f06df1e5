package services

import (
	"community-watch/internal/core/domain"
)

func (s *ServiceSuite) TestReportDefaultsToOpen() {
	theft := s.createCategory("Theft")
	officer := s.principalFor(s.insertOfficer(domain.RoleOfficer))

	report, err := s.reports.Create(s.ctx, officer, &CreateReportInput{
		Title:           "Stolen bike",
		Description:     "Bike taken from the rack",
		Location:        "Central Market",
		CrimeCategoryID: theft.ID,
	})
	s.Require().NoError(err)
	s.Equal("open", report.Status)

	got, err := s.reports.Get(s.ctx, report.ID)
	s.Require().NoError(err)
	s.Equal("open", got.Status)
	s.Require().NotNil(got.CrimeCategory)
	s.Equal("Theft", got.CrimeCategory.Name)
}

func (s *ServiceSuite) TestReportStatusValidation() {
	theft := s.createCategory("Theft")

	for _, status := range []string{"open", "closed", "pending"} {
		report, err := s.reports.Create(s.ctx, s.admin, &CreateReportInput{
			Title: "t", Description: "d", Location: "l", Status: s.strPtr(status), CrimeCategoryID: theft.ID,
		})
		s.Require().NoError(err)
		s.Equal(status, report.Status)
	}

	for _, status := range []string{"archived", "OPEN", ""} {
		_, err := s.reports.Create(s.ctx, s.admin, &CreateReportInput{
			Title: "t", Description: "d", Location: "l", Status: s.strPtr(status), CrimeCategoryID: theft.ID,
		})
		s.assertValidationField(err, "status")
	}

	_, total, err := s.reports.List(s.ctx, ListReportsInput{}, s.page())
	s.Require().NoError(err)
	s.Equal(int64(3), total)
}

func (s *ServiceSuite) TestReportUpdateStatusValidation() {
	theft := s.createCategory("Theft")
	report := s.createReport(theft.ID)

	_, err := s.reports.Update(s.ctx, s.admin, report.ID, &UpdateReportInput{
		Title:  s.strPtr("Changed"),
		Status: s.strPtr("solved"),
	})
	s.assertValidationField(err, "status")

	got, err := s.reports.Get(s.ctx, report.ID)
	s.Require().NoError(err)
	s.Equal("open", got.Status)
	s.Equal(report.Title, got.Title)

	updated, err := s.reports.Update(s.ctx, s.admin, report.ID, &UpdateReportInput{Status: s.strPtr("closed")})
	s.Require().NoError(err)
	s.Equal("closed", updated.Status)
}

func (s *ServiceSuite) TestReportCategoryReference() {
	theft := s.createCategory("Theft")
	report := s.createReport(theft.ID)

	_, err := s.reports.Create(s.ctx, s.admin, &CreateReportInput{
		Title: "t", Description: "d", Location: "l", CrimeCategoryID: 9999,
	})
	s.assertValidationField(err, "crime_category_id")

	_, err = s.reports.Create(s.ctx, s.admin, &CreateReportInput{Title: "t", Description: "d", Location: "l"})
	s.assertValidationField(err, "crime_category_id")

	_, err = s.reports.Update(s.ctx, s.admin, report.ID, &UpdateReportInput{CrimeCategoryID: s.uintPtr(9999)})
	s.assertValidationField(err, "crime_category_id")
}

func (s *ServiceSuite) TestReportGates() {
	theft := s.createCategory("Theft")
	report := s.createReport(theft.ID)

	_, err := s.reports.Create(s.ctx, domain.Anonymous(), &CreateReportInput{
		Title: "t", Description: "d", Location: "l", CrimeCategoryID: theft.ID,
	})
	s.ErrorIs(err, domain.ErrUnauthenticated)

	_, err = s.reports.Update(s.ctx, domain.Anonymous(), report.ID, &UpdateReportInput{Title: s.strPtr("x")})
	s.ErrorIs(err, domain.ErrUnauthenticated)

	s.ErrorIs(s.reports.Delete(s.ctx, domain.Anonymous(), report.ID), domain.ErrUnauthenticated)

	_, err = s.reports.Get(s.ctx, report.ID)
	s.NoError(err)
}

func (s *ServiceSuite) TestReportDeleteCascadesAssignments() {
	officer := s.insertOfficer(domain.RoleOfficer)
	theft := s.createCategory("Theft")
	report := s.createReport(theft.ID)
	s.createAssignment(report.ID, officer.ID)

	s.Require().NoError(s.reports.Delete(s.ctx, s.principalFor(officer), report.ID))

	count, err := s.repos.Assignments.Count(s.ctx)
	s.Require().NoError(err)
	s.Zero(count)

	s.ErrorIs(s.reports.Delete(s.ctx, s.admin, report.ID), domain.ErrNotFound)
}

func (s *ServiceSuite) TestReportListFilters() {
	theft := s.createCategory("Theft")
	fraud := s.createCategory("Fraud")
	s.createReport(theft.ID)
	s.createReport(fraud.ID)
	closed, err := s.reports.Create(s.ctx, s.admin, &CreateReportInput{
		Title: "t", Description: "d", Location: "l", Status: s.strPtr("closed"), CrimeCategoryID: fraud.ID,
	})
	s.Require().NoError(err)

	list, total, err := s.reports.List(s.ctx, ListReportsInput{Status: "closed"}, s.page())
	s.Require().NoError(err)
	s.Equal(int64(1), total)
	s.Equal(closed.ID, list[0].ID)

	_, total, err = s.reports.List(s.ctx, ListReportsInput{CategoryID: fraud.ID}, s.page())
	s.Require().NoError(err)
	s.Equal(int64(2), total)

	_, _, err = s.reports.List(s.ctx, ListReportsInput{Status: "bogus"}, s.page())
	s.assertValidationField(err, "status")
}

func (s *ServiceSuite) TestReportClearPriority() {
	theft := s.createCategory("Theft")
	report, err := s.reports.Create(s.ctx, s.admin, &CreateReportInput{
		Title: "t", Description: "d", Location: "l", Priority: s.strPtr("high"), CrimeCategoryID: theft.ID,
	})
	s.Require().NoError(err)
	s.Require().NotNil(report.Priority)

	updated, err := s.reports.Update(s.ctx, s.admin, report.ID, &UpdateReportInput{ClearPriority: true})
	s.Require().NoError(err)
	s.Nil(updated.Priority)
}
