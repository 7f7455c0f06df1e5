package services

import (
	"community-watch/internal/core/domain"
)

func (s *ServiceSuite) TestDashboard() {
	officer := s.insertOfficer(domain.RoleOfficer)
	theft := s.createCategory("Theft")
	for i := 0; i < 6; i++ {
		s.createReport(theft.ID)
	}
	_, err := s.reports.Create(s.ctx, s.admin, &CreateReportInput{
		Title: "t", Description: "d", Location: "l", Status: s.strPtr("pending"), CrimeCategoryID: theft.ID,
	})
	s.Require().NoError(err)
	report := s.createReport(theft.ID)
	s.createAssignment(report.ID, officer.ID)

	data, err := s.dashboard.GetDashboard(s.ctx)
	s.Require().NoError(err)
	s.Equal(int64(8), data.TotalReports)
	s.Equal(int64(7), data.OpenReports)
	s.Equal(int64(1), data.PendingReports)
	s.Zero(data.ClosedReports)
	s.Equal(int64(2), data.TotalOfficers)
	s.Equal(int64(1), data.TotalAssignments)
	s.Len(data.RecentReports, RecentReportsLimit)
}

func (s *ServiceSuite) TestCheckUpdatableFields() {
	s.NoError(CheckUpdatableFields([]string{"title", "status"}, ReportUpdatableFields))
	s.NoError(CheckUpdatableFields(nil, OfficerUpdatableFields))

	err := CheckUpdatableFields([]string{"name", "id"}, OfficerUpdatableFields)
	s.assertValidationField(err, "id")

	err = CheckUpdatableFields([]string{"assigned_at"}, AssignmentUpdatableFields)
	s.assertValidationField(err, "assigned_at")

	err = CheckUpdatableFields([]string{"created_at"}, CategoryUpdatableFields)
	s.assertValidationField(err, "created_at")
}
