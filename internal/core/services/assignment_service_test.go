package services

import (
	"community-watch/internal/core/domain"
)

func (s *ServiceSuite) TestAssignmentGates() {
	officer := s.insertOfficer(domain.RoleOfficer)
	theft := s.createCategory("Theft")
	report := s.createReport(theft.ID)

	input := &CreateAssignmentInput{RoleInCase: "Support Officer", CrimeReportID: report.ID, OfficerID: officer.ID}

	_, err := s.assignments.Create(s.ctx, domain.Anonymous(), input)
	s.ErrorIs(err, domain.ErrUnauthenticated)

	_, err = s.assignments.Create(s.ctx, s.principalFor(officer), input)
	s.ErrorIs(err, domain.ErrForbidden)

	count, err := s.repos.Assignments.Count(s.ctx)
	s.Require().NoError(err)
	s.Zero(count)
}

func (s *ServiceSuite) TestAssignmentAllowsRepeatedPairs() {
	officer := s.insertOfficer(domain.RoleOfficer)
	theft := s.createCategory("Theft")
	report := s.createReport(theft.ID)

	s.createAssignment(report.ID, officer.ID)
	second, err := s.assignments.Create(s.ctx, s.admin, &CreateAssignmentInput{
		RoleInCase: "Support Officer", CrimeReportID: report.ID, OfficerID: officer.ID,
	})
	s.Require().NoError(err)
	s.Equal("Support Officer", second.RoleInCase)

	got, err := s.reports.Get(s.ctx, report.ID)
	s.Require().NoError(err)
	s.Len(got.Assignments, 2)
}

func (s *ServiceSuite) TestAssignmentReferences() {
	officer := s.insertOfficer(domain.RoleOfficer)
	theft := s.createCategory("Theft")
	report := s.createReport(theft.ID)

	_, err := s.assignments.Create(s.ctx, s.admin, &CreateAssignmentInput{RoleInCase: "Lead", CrimeReportID: 9999, OfficerID: officer.ID})
	s.assertValidationField(err, "crime_report_id")

	_, err = s.assignments.Create(s.ctx, s.admin, &CreateAssignmentInput{RoleInCase: "Lead", CrimeReportID: report.ID, OfficerID: 9999})
	s.assertValidationField(err, "officer_id")

	_, err = s.assignments.Create(s.ctx, s.admin, &CreateAssignmentInput{RoleInCase: " ", CrimeReportID: report.ID, OfficerID: officer.ID})
	s.assertValidationField(err, "role_in_case")

	assignment := s.createAssignment(report.ID, officer.ID)
	_, err = s.assignments.Update(s.ctx, s.admin, assignment.ID, &UpdateAssignmentInput{OfficerID: s.uintPtr(9999)})
	s.assertValidationField(err, "officer_id")
}

func (s *ServiceSuite) TestAssignmentUpdateAndDelete() {
	officer := s.insertOfficer(domain.RoleOfficer)
	other := s.insertOfficer(domain.RoleOfficer)
	theft := s.createCategory("Theft")
	report := s.createReport(theft.ID)
	assignment := s.createAssignment(report.ID, officer.ID)

	updated, err := s.assignments.Update(s.ctx, s.admin, assignment.ID, &UpdateAssignmentInput{
		RoleInCase: s.strPtr("Support Officer"),
		OfficerID:  s.uintPtr(other.ID),
	})
	s.Require().NoError(err)
	s.Equal("Support Officer", updated.RoleInCase)
	s.Equal(other.ID, updated.OfficerID)

	got, err := s.assignments.Get(s.ctx, assignment.ID)
	s.Require().NoError(err)
	s.Require().NotNil(got.Officer)
	s.Equal(other.ID, got.Officer.ID)
	s.Require().NotNil(got.CrimeReport)

	s.ErrorIs(s.assignments.Delete(s.ctx, s.principalFor(officer), assignment.ID), domain.ErrForbidden)
	s.Require().NoError(s.assignments.Delete(s.ctx, s.admin, assignment.ID))
	s.ErrorIs(s.assignments.Delete(s.ctx, s.admin, assignment.ID), domain.ErrNotFound)
}
