package services

import (
	"context"
	"log"
	"strings"

	"community-watch/internal/adapters/persistence/models"
	"community-watch/internal/adapters/persistence/repositories"
	"community-watch/internal/core/authz"
	"community-watch/internal/core/domain"
	"community-watch/internal/pkg/pagination"
)

// CategoryService handles crime categories
type CategoryService struct {
	repos *repositories.Repositories
}

// NewCategoryService creates a new category service
func NewCategoryService(repos *repositories.Repositories) *CategoryService {
	return &CategoryService{repos: repos}
}

// CreateCategoryInput represents category creation input
type CreateCategoryInput struct {
	Name          string  `json:"name"`
	Description   *string `json:"description"`
	SeverityLevel *int    `json:"severity_level"`
}

// UpdateCategoryInput represents a partial category update.
// The Clear flags set an optional column back to null.
type UpdateCategoryInput struct {
	Name               *string `json:"name"`
	Description        *string `json:"description"`
	SeverityLevel      *int    `json:"severity_level"`
	ClearDescription   bool    `json:"-"`
	ClearSeverityLevel bool    `json:"-"`
}

// List lists categories
func (s *CategoryService) List(ctx context.Context, params *pagination.Params) ([]*models.CategoryResponse, int64, error) {
	categories, total, err := s.repos.Categories.List(ctx, params.Offset, params.Limit)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]*models.CategoryResponse, len(categories))
	for i, category := range categories {
		responses[i] = category.ToResponse()
	}
	return responses, total, nil
}

// Get gets a category with its reports
func (s *CategoryService) Get(ctx context.Context, id uint) (*models.CategoryResponse, error) {
	category, err := s.repos.Categories.GetByIDWithReports(ctx, id)
	if err != nil {
		return nil, err
	}
	return category.ToResponse(), nil
}

// Create creates a category
func (s *CategoryService) Create(ctx context.Context, p domain.Principal, input *CreateCategoryInput) (*models.CategoryResponse, error) {
	if err := authz.Check(p, authz.AdminRequired); err != nil {
		return nil, err
	}

	category := &models.CrimeCategory{
		Name:          strings.TrimSpace(input.Name),
		Description:   input.Description,
		SeverityLevel: input.SeverityLevel,
	}

	err := s.repos.Transaction(ctx, func(tx *repositories.Repositories) error {
		if err := checkCategoryUnique(ctx, tx, category.Name, 0); err != nil {
			return err
		}
		return tx.Categories.Create(ctx, category)
	})
	if err != nil {
		return nil, err
	}

	log.Printf("✅ Category created: %s", category.Name)
	return category.ToResponse(), nil
}

// Update applies a partial update to a category
func (s *CategoryService) Update(ctx context.Context, p domain.Principal, id uint, input *UpdateCategoryInput) (*models.CategoryResponse, error) {
	if err := authz.Check(p, authz.AdminRequired); err != nil {
		return nil, err
	}

	var category *models.CrimeCategory
	err := s.repos.Transaction(ctx, func(tx *repositories.Repositories) error {
		var err error
		category, err = tx.Categories.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if input.Name != nil {
			category.Name = strings.TrimSpace(*input.Name)
			if err := checkCategoryUnique(ctx, tx, category.Name, category.ID); err != nil {
				return err
			}
		}
		if input.ClearDescription {
			category.Description = nil
		} else if input.Description != nil {
			category.Description = input.Description
		}
		if input.ClearSeverityLevel {
			category.SeverityLevel = nil
		} else if input.SeverityLevel != nil {
			category.SeverityLevel = input.SeverityLevel
		}

		return tx.Categories.Update(ctx, category)
	})
	if err != nil {
		return nil, err
	}

	return category.ToResponse(), nil
}

// Delete removes a category, its reports and their assignments
func (s *CategoryService) Delete(ctx context.Context, p domain.Principal, id uint) error {
	if err := authz.Check(p, authz.AdminRequired); err != nil {
		return err
	}

	err := s.repos.Transaction(ctx, func(tx *repositories.Repositories) error {
		if _, err := tx.Categories.GetByID(ctx, id); err != nil {
			return err
		}
		if err := tx.Assignments.DeleteByCategoryID(ctx, id); err != nil {
			return err
		}
		if err := tx.Reports.DeleteByCategoryID(ctx, id); err != nil {
			return err
		}
		return tx.Categories.Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	log.Printf("🗑️ Category deleted: %d", id)
	return nil
}

func checkCategoryUnique(ctx context.Context, tx *repositories.Repositories, name string, excludeID uint) error {
	exists, err := tx.Categories.ExistsByName(ctx, name, excludeID)
	if err != nil {
		return err
	}
	if exists {
		return &domain.UniquenessError{Field: "name"}
	}
	return nil
}
