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

// AssignmentService handles officer-to-report assignments
type AssignmentService struct {
	repos *repositories.Repositories
}

// NewAssignmentService creates a new assignment service
func NewAssignmentService(repos *repositories.Repositories) *AssignmentService {
	return &AssignmentService{repos: repos}
}

// CreateAssignmentInput represents assignment creation input
type CreateAssignmentInput struct {
	RoleInCase    string `json:"role_in_case"`
	CrimeReportID uint   `json:"crime_report_id"`
	OfficerID     uint   `json:"officer_id"`
}

// UpdateAssignmentInput represents a partial assignment update
type UpdateAssignmentInput struct {
	RoleInCase    *string `json:"role_in_case"`
	CrimeReportID *uint   `json:"crime_report_id"`
	OfficerID     *uint   `json:"officer_id"`
}

// List lists assignments with officer and report
func (s *AssignmentService) List(ctx context.Context, params *pagination.Params) ([]*models.AssignmentResponse, int64, error) {
	assignments, total, err := s.repos.Assignments.List(ctx, params.Offset, params.Limit)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]*models.AssignmentResponse, len(assignments))
	for i, assignment := range assignments {
		responses[i] = assignment.ToResponse()
	}
	return responses, total, nil
}

// Get gets an assignment with officer and report
func (s *AssignmentService) Get(ctx context.Context, id uint) (*models.AssignmentResponse, error) {
	assignment, err := s.repos.Assignments.GetByIDWithRelations(ctx, id)
	if err != nil {
		return nil, err
	}
	return assignment.ToResponse(), nil
}

// Create assigns an officer to a report
func (s *AssignmentService) Create(ctx context.Context, p domain.Principal, input *CreateAssignmentInput) (*models.AssignmentResponse, error) {
	if err := authz.Check(p, authz.AdminRequired); err != nil {
		return nil, err
	}

	assignment := &models.Assignment{
		RoleInCase:    strings.TrimSpace(input.RoleInCase),
		CrimeReportID: input.CrimeReportID,
		OfficerID:     input.OfficerID,
	}

	err := s.repos.Transaction(ctx, func(tx *repositories.Repositories) error {
		if err := checkAssignmentReferences(ctx, tx, assignment); err != nil {
			return err
		}
		return tx.Assignments.Create(ctx, assignment)
	})
	if err != nil {
		return nil, err
	}

	metrics.Default().IncrementAssignmentsCreated()
	log.Printf("✅ Officer %d assigned to report %d as %s", assignment.OfficerID, assignment.CrimeReportID, assignment.RoleInCase)

	return assignment.ToResponse(), nil
}

// Update applies a partial update to an assignment
func (s *AssignmentService) Update(ctx context.Context, p domain.Principal, id uint, input *UpdateAssignmentInput) (*models.AssignmentResponse, error) {
	if err := authz.Check(p, authz.AdminRequired); err != nil {
		return nil, err
	}

	var assignment *models.Assignment
	err := s.repos.Transaction(ctx, func(tx *repositories.Repositories) error {
		var err error
		assignment, err = tx.Assignments.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if input.RoleInCase != nil {
			assignment.RoleInCase = strings.TrimSpace(*input.RoleInCase)
		}
		if input.CrimeReportID != nil {
			assignment.CrimeReportID = *input.CrimeReportID
		}
		if input.OfficerID != nil {
			assignment.OfficerID = *input.OfficerID
		}

		if err := checkAssignmentReferences(ctx, tx, assignment); err != nil {
			return err
		}
		return tx.Assignments.Update(ctx, assignment)
	})
	if err != nil {
		return nil, err
	}

	return assignment.ToResponse(), nil
}

// Delete removes an assignment
func (s *AssignmentService) Delete(ctx context.Context, p domain.Principal, id uint) error {
	if err := authz.Check(p, authz.AdminRequired); err != nil {
		return err
	}

	err := s.repos.Transaction(ctx, func(tx *repositories.Repositories) error {
		return tx.Assignments.Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	log.Printf("🗑️ Assignment deleted: %d", id)
	return nil
}

// checkAssignmentReferences requires the referenced report and officer to exist
func checkAssignmentReferences(ctx context.Context, tx *repositories.Repositories, assignment *models.Assignment) error {
	if assignment.CrimeReportID == 0 {
		return domain.NewValidationError("crime_report_id", "crime_report_id is required")
	}
	exists, err := tx.Reports.Exists(ctx, assignment.CrimeReportID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.NewValidationError("crime_report_id", "crime report does not exist")
	}

	if assignment.OfficerID == 0 {
		return domain.NewValidationError("officer_id", "officer_id is required")
	}
	exists, err = tx.Officers.Exists(ctx, assignment.OfficerID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.NewValidationError("officer_id", "officer does not exist")
	}
	return nil
}
