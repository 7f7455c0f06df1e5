package services

import (
	"context"
	"log"
	"strings"

	"community-watch/internal/adapters/persistence/models"
	"community-watch/internal/adapters/persistence/repositories"
	"community-watch/internal/core/authz"
	"community-watch/internal/core/domain"
	"community-watch/internal/pkg/metrics"
	"community-watch/internal/pkg/pagination"
)

// ReportService handles crime reports
type ReportService struct {
	repos *repositories.Repositories
}

// NewReportService creates a new report service
func NewReportService(repos *repositories.Repositories) *ReportService {
	return &ReportService{repos: repos}
}

// CreateReportInput represents report filing input
type CreateReportInput struct {
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	Location        string  `json:"location"`
	Status          *string `json:"status"`
	Priority        *string `json:"priority"`
	CrimeCategoryID uint    `json:"crime_category_id"`
}

// UpdateReportInput represents a partial report update
type UpdateReportInput struct {
	Title           *string `json:"title"`
	Description     *string `json:"description"`
	Location        *string `json:"location"`
	Status          *string `json:"status"`
	Priority        *string `json:"priority"`
	CrimeCategoryID *uint   `json:"crime_category_id"`
	ClearPriority   bool    `json:"-"`
}

// ListReportsInput narrows a report listing
type ListReportsInput struct {
	Status     string
	CategoryID uint
}

// List lists reports newest first
func (s *ReportService) List(ctx context.Context, input ListReportsInput, params *pagination.Params) ([]*models.ReportResponse, int64, error) {
	if input.Status != "" {
		if err := domain.ValidateReportStatus(input.Status); err != nil {
			return nil, 0, err
		}
	}

	filter := repositories.ReportFilter{Status: input.Status, CrimeCategoryID: input.CategoryID}
	reports, total, err := s.repos.Reports.List(ctx, filter, params.Offset, params.Limit)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]*models.ReportResponse, len(reports))
	for i, report := range reports {
		responses[i] = report.ToResponse()
	}
	return responses, total, nil
}

// Get gets a report with its category and assignments
func (s *ReportService) Get(ctx context.Context, id uint) (*models.ReportResponse, error) {
	report, err := s.repos.Reports.GetByIDWithRelations(ctx, id)
	if err != nil {
		return nil, err
	}
	return report.ToResponse(), nil
}

// Create files a report. Status defaults to open when omitted.
func (s *ReportService) Create(ctx context.Context, p domain.Principal, input *CreateReportInput) (*models.ReportResponse, error) {
	if err := authz.Check(p, authz.LoginRequired); err != nil {
		return nil, err
	}

	status := string(domain.DefaultReportStatus)
	if input.Status != nil {
		status = *input.Status
	}

	report := &models.CrimeReport{
		Title:           strings.TrimSpace(input.Title),
		Description:     strings.TrimSpace(input.Description),
		Location:        strings.TrimSpace(input.Location),
		Status:          status,
		Priority:        input.Priority,
		CrimeCategoryID: input.CrimeCategoryID,
	}

	err := s.repos.Transaction(ctx, func(tx *repositories.Repositories) error {
		if err := checkCategoryExists(ctx, tx, report.CrimeCategoryID); err != nil {
			return err
		}
		return tx.Reports.Create(ctx, report)
	})
	if err != nil {
		return nil, err
	}

	metrics.Default().IncrementReportsCreated(report.Status)
	log.Printf("✅ Report filed: %q by officer %d", report.Title, p.OfficerID)

	return report.ToResponse(), nil
}

// Update applies a partial update to a report
func (s *ReportService) Update(ctx context.Context, p domain.Principal, id uint, input *UpdateReportInput) (*models.ReportResponse, error) {
	if err := authz.Check(p, authz.LoginRequired); err != nil {
		return nil, err
	}

	var report *models.CrimeReport
	err := s.repos.Transaction(ctx, func(tx *repositories.Repositories) error {
		var err error
		report, err = tx.Reports.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if input.Title != nil {
			report.Title = strings.TrimSpace(*input.Title)
		}
		if input.Description != nil {
			report.Description = strings.TrimSpace(*input.Description)
		}
		if input.Location != nil {
			report.Location = strings.TrimSpace(*input.Location)
		}
		if input.Status != nil {
			report.Status = *input.Status
		}
		if input.ClearPriority {
			report.Priority = nil
		} else if input.Priority != nil {
			report.Priority = input.Priority
		}
		if input.CrimeCategoryID != nil && *input.CrimeCategoryID != report.CrimeCategoryID {
			if err := checkCategoryExists(ctx, tx, *input.CrimeCategoryID); err != nil {
				return err
			}
			report.CrimeCategoryID = *input.CrimeCategoryID
		}

		return tx.Reports.Update(ctx, report)
	})
	if err != nil {
		return nil, err
	}

	return report.ToResponse(), nil
}

// Delete removes a report and its assignments
func (s *ReportService) Delete(ctx context.Context, p domain.Principal, id uint) error {
	if err := authz.Check(p, authz.LoginRequired); err != nil {
		return err
	}

	err := s.repos.Transaction(ctx, func(tx *repositories.Repositories) error {
		if _, err := tx.Reports.GetByID(ctx, id); err != nil {
			return err
		}
		if err := tx.Assignments.DeleteByReportID(ctx, id); err != nil {
			return err
		}
		return tx.Reports.Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	log.Printf("🗑️ Report deleted: %d", id)
	return nil
}

func checkCategoryExists(ctx context.Context, tx *repositories.Repositories, id uint) error {
	if id == 0 {
		return domain.NewValidationError("crime_category_id", "crime_category_id is required")
	}
	exists, err := tx.Categories.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return domain.NewValidationError("crime_category_id", "crime category does not exist")
	}
	return nil
}
