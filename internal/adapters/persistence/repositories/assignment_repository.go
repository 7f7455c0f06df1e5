package repositories

import (
	"context"

	"community-watch/internal/adapters/persistence/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const assignmentResource = "assignment"

// assignmentRepository implements AssignmentRepository interface
type assignmentRepository struct {
	db *gorm.DB
}

// NewAssignmentRepository creates a new assignment repository
func NewAssignmentRepository(db *gorm.DB) AssignmentRepository {
	return &assignmentRepository{db: db}
}

// Create creates a new assignment
func (r *assignmentRepository) Create(ctx context.Context, assignment *models.Assignment) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(assignment).Error
	return translate(err, assignmentResource, assignment.ID)
}

// GetByID gets an assignment by ID
func (r *assignmentRepository) GetByID(ctx context.Context, id uint) (*models.Assignment, error) {
	var assignment models.Assignment
	if err := r.db.WithContext(ctx).First(&assignment, id).Error; err != nil {
		return nil, translate(err, assignmentResource, id)
	}
	return &assignment, nil
}

// GetByIDWithRelations gets an assignment with its officer and report
func (r *assignmentRepository) GetByIDWithRelations(ctx context.Context, id uint) (*models.Assignment, error) {
	var assignment models.Assignment
	err := r.db.WithContext(ctx).
		Preload("Officer").
		Preload("CrimeReport").
		First(&assignment, id).Error
	if err != nil {
		return nil, translate(err, assignmentResource, id)
	}
	return &assignment, nil
}

// Update saves all assignment columns
func (r *assignmentRepository) Update(ctx context.Context, assignment *models.Assignment) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Save(assignment).Error
	return translate(err, assignmentResource, assignment.ID)
}

// Delete hard deletes an assignment
func (r *assignmentRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Assignment{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound, assignmentResource, id)
	}
	return nil
}

// DeleteByOfficerID deletes every assignment held by an officer
func (r *assignmentRepository) DeleteByOfficerID(ctx context.Context, officerID uint) error {
	return r.db.WithContext(ctx).Where("officer_id = ?", officerID).Delete(&models.Assignment{}).Error
}

// DeleteByReportID deletes every assignment on a report
func (r *assignmentRepository) DeleteByReportID(ctx context.Context, reportID uint) error {
	return r.db.WithContext(ctx).Where("crime_report_id = ?", reportID).Delete(&models.Assignment{}).Error
}

// DeleteByCategoryID deletes every assignment on reports filed under a category
func (r *assignmentRepository) DeleteByCategoryID(ctx context.Context, categoryID uint) error {
	reportIDs := r.db.Model(&models.CrimeReport{}).Select("id").Where("crime_category_id = ?", categoryID)
	return r.db.WithContext(ctx).
		Where("crime_report_id IN (?)", reportIDs).
		Delete(&models.Assignment{}).Error
}

// List lists assignments with their officer and report
func (r *assignmentRepository) List(ctx context.Context, offset, limit int) ([]*models.Assignment, int64, error) {
	var assignments []*models.Assignment
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Assignment{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Preload("Officer").
		Preload("CrimeReport").
		Order("assigned_at DESC").Order("id DESC").
		Offset(offset).Limit(limit).
		Find(&assignments).Error
	if err != nil {
		return nil, 0, err
	}

	return assignments, total, nil
}

// Count counts all assignments
func (r *assignmentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Assignment{}).Count(&count).Error
	return count, err
}
