package repositories

import (
	"context"
	"fmt"

	"community-watch/internal/adapters/persistence/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const officerResource = "officer"

// officerRepository implements OfficerRepository interface
type officerRepository struct {
	db *gorm.DB
}

// NewOfficerRepository creates a new officer repository
func NewOfficerRepository(db *gorm.DB) OfficerRepository {
	return &officerRepository{db: db}
}

// Create creates a new officer
func (r *officerRepository) Create(ctx context.Context, officer *models.PoliceOfficer) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(officer).Error
	return translate(err, officerResource, officer.ID)
}

// GetByID gets an officer by ID
func (r *officerRepository) GetByID(ctx context.Context, id uint) (*models.PoliceOfficer, error) {
	var officer models.PoliceOfficer
	if err := r.db.WithContext(ctx).First(&officer, id).Error; err != nil {
		return nil, translate(err, officerResource, id)
	}
	return &officer, nil
}

// GetByIDWithAssignments gets an officer with assignments and their reports
func (r *officerRepository) GetByIDWithAssignments(ctx context.Context, id uint) (*models.PoliceOfficer, error) {
	var officer models.PoliceOfficer
	err := r.db.WithContext(ctx).
		Preload("Assignments", func(db *gorm.DB) *gorm.DB { return db.Order("assigned_at DESC") }).
		Preload("Assignments.CrimeReport").
		First(&officer, id).Error
	if err != nil {
		return nil, translate(err, officerResource, id)
	}
	return &officer, nil
}

// GetByEmail gets an officer by email
func (r *officerRepository) GetByEmail(ctx context.Context, email string) (*models.PoliceOfficer, error) {
	var officer models.PoliceOfficer
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&officer).Error; err != nil {
		return nil, translate(err, officerResource, 0)
	}
	return &officer, nil
}

// Update saves all officer columns
func (r *officerRepository) Update(ctx context.Context, officer *models.PoliceOfficer) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Save(officer).Error
	return translate(err, officerResource, officer.ID)
}

// Delete hard deletes an officer
func (r *officerRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.PoliceOfficer{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound, officerResource, id)
	}
	return nil
}

// List lists officers with pagination
func (r *officerRepository) List(ctx context.Context, offset, limit int) ([]*models.PoliceOfficer, int64, error) {
	var officers []*models.PoliceOfficer
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.PoliceOfficer{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).Order("id").Offset(offset).Limit(limit).Find(&officers).Error; err != nil {
		return nil, 0, err
	}

	return officers, total, nil
}

// Count counts all officers
func (r *officerRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.PoliceOfficer{}).Count(&count).Error
	return count, err
}

// Exists checks if an officer exists
func (r *officerRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.PoliceOfficer{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

var officerUniqueColumns = map[string]bool{"badge_number": true, "email": true, "phone": true}

// ExistsByField checks whether another officer already holds value in a unique column
func (r *officerRepository) ExistsByField(ctx context.Context, column, value string, excludeID uint) (bool, error) {
	if !officerUniqueColumns[column] {
		return false, fmt.Errorf("column %q is not a unique officer column", column)
	}

	var count int64
	query := r.db.WithContext(ctx).Model(&models.PoliceOfficer{}).Where(column+" = ?", value)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}
