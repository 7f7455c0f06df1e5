package services

import (
	"context"

	"community-watch/internal/adapters/persistence/models"
	"community-watch/internal/adapters/persistence/repositories"
	"community-watch/internal/core/domain"
)

// RecentReportsLimit is how many reports the dashboard shows
const RecentReportsLimit = 5

// DashboardService handles dashboard operations
type DashboardService struct {
	repos *repositories.Repositories
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(repos *repositories.Repositories) *DashboardService {
	return &DashboardService{repos: repos}
}

// DashboardData represents the overview shown on the dashboard
type DashboardData struct {
	// Report Statistics
	TotalReports   int64 `json:"total_reports"`
	OpenReports    int64 `json:"open_reports"`
	PendingReports int64 `json:"pending_reports"`
	ClosedReports  int64 `json:"closed_reports"`

	// Staffing
	TotalOfficers    int64 `json:"total_officers"`
	TotalAssignments int64 `json:"total_assignments"`

	// Recent Activity
	RecentReports []*models.ReportResponse `json:"recent_reports"`
}

// GetDashboard returns dashboard data
func (s *DashboardService) GetDashboard(ctx context.Context) (*DashboardData, error) {
	data := &DashboardData{}

	byStatus, err := s.repos.Reports.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	data.OpenReports = byStatus[string(domain.StatusOpen)]
	data.PendingReports = byStatus[string(domain.StatusPending)]
	data.ClosedReports = byStatus[string(domain.StatusClosed)]
	for _, count := range byStatus {
		data.TotalReports += count
	}

	if data.TotalOfficers, err = s.repos.Officers.Count(ctx); err != nil {
		return nil, err
	}
	if data.TotalAssignments, err = s.repos.Assignments.Count(ctx); err != nil {
		return nil, err
	}

	recent, err := s.repos.Reports.Recent(ctx, RecentReportsLimit)
	if err != nil {
		return nil, err
	}
	data.RecentReports = make([]*models.ReportResponse, len(recent))
	for i, report := range recent {
		data.RecentReports[i] = report.ToResponse()
	}

	return data, nil
}
