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
	"community-watch/internal/pkg/password"
)

// OfficerService handles police officer registration and management
type OfficerService struct {
	repos *repositories.Repositories
}

// NewOfficerService creates a new officer service
func NewOfficerService(repos *repositories.Repositories) *OfficerService {
	return &OfficerService{repos: repos}
}

// CreateOfficerInput represents officer registration input
type CreateOfficerInput struct {
	Name        string `json:"name"`
	BadgeNumber string `json:"badge_number"`
	Rank        string `json:"rank"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Password    string `json:"password"`
	Role        string `json:"role"`
}

// UpdateOfficerInput represents a partial officer update
type UpdateOfficerInput struct {
	Name        *string `json:"name"`
	BadgeNumber *string `json:"badge_number"`
	Rank        *string `json:"rank"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	Password    *string `json:"password"`
	Role        *string `json:"role"`
}

// List lists officers
func (s *OfficerService) List(ctx context.Context, params *pagination.Params) ([]*models.OfficerResponse, int64, error) {
	officers, total, err := s.repos.Officers.List(ctx, params.Offset, params.Limit)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]*models.OfficerResponse, len(officers))
	for i, officer := range officers {
		responses[i] = officer.ToResponse()
	}
	return responses, total, nil
}

// Get gets an officer with their assignments
func (s *OfficerService) Get(ctx context.Context, id uint) (*models.OfficerResponse, error) {
	officer, err := s.repos.Officers.GetByIDWithAssignments(ctx, id)
	if err != nil {
		return nil, err
	}
	return officer.ToResponse(), nil
}

// Create registers a new officer. Registration is public; only an admin may
// register another admin.
func (s *OfficerService) Create(ctx context.Context, p domain.Principal, input *CreateOfficerInput) (*models.OfficerResponse, error) {
	role := strings.TrimSpace(input.Role)
	if role == "" {
		role = string(domain.DefaultRole)
	}
	if err := domain.ValidateRole(role); err != nil {
		return nil, err
	}
	if domain.Role(role) == domain.RoleAdmin {
		if err := authz.Check(p, authz.AdminRequired); err != nil {
			return nil, err
		}
	}

	if !password.ValidatePassword(input.Password) {
		return nil, domain.NewValidationError("password", "password must be at least 8 characters")
	}

	hashedPassword, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	officer := &models.PoliceOfficer{
		Name:         strings.TrimSpace(input.Name),
		BadgeNumber:  strings.TrimSpace(input.BadgeNumber),
		Rank:         strings.TrimSpace(input.Rank),
		Email:        normalizeEmail(input.Email),
		Phone:        strings.TrimSpace(input.Phone),
		PasswordHash: hashedPassword,
		Role:         role,
	}

	err = s.repos.Transaction(ctx, func(tx *repositories.Repositories) error {
		if err := checkOfficerUnique(ctx, tx, officer, 0); err != nil {
			return err
		}
		return tx.Officers.Create(ctx, officer)
	})
	if err != nil {
		return nil, err
	}

	metrics.Default().IncrementOfficersRegistered()
	log.Printf("✅ Officer registered: %s (badge %s)", officer.Email, officer.BadgeNumber)

	return officer.ToResponse(), nil
}

// Update applies a partial update. Officers may update themselves; only an
// admin may update others or change a role.
func (s *OfficerService) Update(ctx context.Context, p domain.Principal, id uint, input *UpdateOfficerInput) (*models.OfficerResponse, error) {
	if err := authz.Check(p, authz.LoginRequired); err != nil {
		return nil, err
	}
	if err := authz.RequireSelfOrAdmin(p, id); err != nil {
		return nil, err
	}

	var (
		officer     *models.PoliceOfficer
		roleChanged bool
	)
	err := s.repos.Transaction(ctx, func(tx *repositories.Repositories) error {
		var err error
		officer, err = tx.Officers.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if input.Role != nil && *input.Role != officer.Role {
			if err := authz.RequireRole(p, domain.RoleAdmin); err != nil {
				return err
			}
			officer.Role = *input.Role
			roleChanged = true
		}
		if input.Name != nil {
			officer.Name = strings.TrimSpace(*input.Name)
		}
		if input.BadgeNumber != nil {
			officer.BadgeNumber = strings.TrimSpace(*input.BadgeNumber)
		}
		if input.Rank != nil {
			officer.Rank = strings.TrimSpace(*input.Rank)
		}
		if input.Email != nil {
			officer.Email = normalizeEmail(*input.Email)
		}
		if input.Phone != nil {
			officer.Phone = strings.TrimSpace(*input.Phone)
		}
		if input.Password != nil {
			if !password.ValidatePassword(*input.Password) {
				return domain.NewValidationError("password", "password must be at least 8 characters")
			}
			hashedPassword, err := password.Hash(*input.Password)
			if err != nil {
				return err
			}
			officer.PasswordHash = hashedPassword
		}

		if err := checkOfficerUnique(ctx, tx, officer, officer.ID); err != nil {
			return err
		}
		if err := tx.Officers.Update(ctx, officer); err != nil {
			return err
		}

		// sessions carry the role granted at login
		if roleChanged {
			return tx.Sessions.RevokeAllByOfficerID(ctx, officer.ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("✅ Officer updated: %d", officer.ID)
	return officer.ToResponse(), nil
}

// Delete removes an officer together with their assignments and sessions
func (s *OfficerService) Delete(ctx context.Context, p domain.Principal, id uint) error {
	if err := authz.Check(p, authz.AdminRequired); err != nil {
		return err
	}
	if p.OfficerID == id {
		return domain.ErrCannotDeleteSelf
	}

	err := s.repos.Transaction(ctx, func(tx *repositories.Repositories) error {
		if _, err := tx.Officers.GetByID(ctx, id); err != nil {
			return err
		}
		if err := tx.Assignments.DeleteByOfficerID(ctx, id); err != nil {
			return err
		}
		if err := tx.Sessions.DeleteByOfficerID(ctx, id); err != nil {
			return err
		}
		return tx.Officers.Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	log.Printf("🗑️ Officer deleted: %d", id)
	return nil
}

// checkOfficerUnique reports which unique column, if any, is already taken
func checkOfficerUnique(ctx context.Context, tx *repositories.Repositories, officer *models.PoliceOfficer, excludeID uint) error {
	columns := []struct {
		name  string
		value string
	}{
		{"badge_number", officer.BadgeNumber},
		{"email", officer.Email},
		{"phone", officer.Phone},
	}

	for _, column := range columns {
		exists, err := tx.Officers.ExistsByField(ctx, column.name, column.value, excludeID)
		if err != nil {
			return err
		}
		if exists {
			return &domain.UniquenessError{Field: column.name}
		}
	}
	return nil
}
