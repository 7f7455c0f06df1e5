package repositories

import (
	"context"

	"community-watch/internal/adapters/persistence/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const categoryResource = "category"

// categoryRepository implements CategoryRepository interface
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new crime category repository
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

// Create creates a new category
func (r *categoryRepository) Create(ctx context.Context, category *models.CrimeCategory) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(category).Error
	return translate(err, categoryResource, category.ID)
}

// GetByID gets a category by ID
func (r *categoryRepository) GetByID(ctx context.Context, id uint) (*models.CrimeCategory, error) {
	var category models.CrimeCategory
	if err := r.db.WithContext(ctx).First(&category, id).Error; err != nil {
		return nil, translate(err, categoryResource, id)
	}
	return &category, nil
}

// GetByIDWithReports gets a category with its reports
func (r *categoryRepository) GetByIDWithReports(ctx context.Context, id uint) (*models.CrimeCategory, error) {
	var category models.CrimeCategory
	err := r.db.WithContext(ctx).
		Preload("CrimeReports", func(db *gorm.DB) *gorm.DB { return db.Order("created_at DESC") }).
		First(&category, id).Error
	if err != nil {
		return nil, translate(err, categoryResource, id)
	}
	return &category, nil
}

// Update saves all category columns
func (r *categoryRepository) Update(ctx context.Context, category *models.CrimeCategory) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Save(category).Error
	return translate(err, categoryResource, category.ID)
}

// Delete hard deletes a category
func (r *categoryRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.CrimeCategory{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound, categoryResource, id)
	}
	return nil
}

// List lists categories ordered by name
func (r *categoryRepository) List(ctx context.Context, offset, limit int) ([]*models.CrimeCategory, int64, error) {
	var categories []*models.CrimeCategory
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.CrimeCategory{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).Order("name").Offset(offset).Limit(limit).Find(&categories).Error; err != nil {
		return nil, 0, err
	}

	return categories, total, nil
}

// Exists checks if a category exists
func (r *categoryRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.CrimeCategory{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// ExistsByName checks whether another category already uses name
func (r *categoryRepository) ExistsByName(ctx context.Context, name string, excludeID uint) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.CrimeCategory{}).Where("name = ?", name)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}
