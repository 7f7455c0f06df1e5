package repositories

import (
	"context"

	"community-watch/internal/adapters/persistence/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const reportResource = "report"

// reportRepository implements ReportRepository interface
type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new crime report repository
func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

// Create creates a new report
func (r *reportRepository) Create(ctx context.Context, report *models.CrimeReport) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(report).Error
	return translate(err, reportResource, report.ID)
}

// GetByID gets a report by ID
func (r *reportRepository) GetByID(ctx context.Context, id uint) (*models.CrimeReport, error) {
	var report models.CrimeReport
	if err := r.db.WithContext(ctx).First(&report, id).Error; err != nil {
		return nil, translate(err, reportResource, id)
	}
	return &report, nil
}

// GetByIDWithRelations gets a report with its category and assigned officers
func (r *reportRepository) GetByIDWithRelations(ctx context.Context, id uint) (*models.CrimeReport, error) {
	var report models.CrimeReport
	err := r.db.WithContext(ctx).
		Preload("CrimeCategory").
		Preload("Assignments", func(db *gorm.DB) *gorm.DB { return db.Order("assigned_at") }).
		Preload("Assignments.Officer").
		First(&report, id).Error
	if err != nil {
		return nil, translate(err, reportResource, id)
	}
	return &report, nil
}

// Update saves all report columns
func (r *reportRepository) Update(ctx context.Context, report *models.CrimeReport) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Save(report).Error
	return translate(err, reportResource, report.ID)
}

// Delete hard deletes a report
func (r *reportRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.CrimeReport{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound, reportResource, id)
	}
	return nil
}

// DeleteByCategoryID deletes every report filed under a category
func (r *reportRepository) DeleteByCategoryID(ctx context.Context, categoryID uint) error {
	return r.db.WithContext(ctx).
		Where("crime_category_id = ?", categoryID).
		Delete(&models.CrimeReport{}).Error
}

// List lists reports newest first, optionally filtered
func (r *reportRepository) List(ctx context.Context, filter ReportFilter, offset, limit int) ([]*models.CrimeReport, int64, error) {
	var reports []*models.CrimeReport
	var total int64

	query := r.db.WithContext(ctx).Model(&models.CrimeReport{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.CrimeCategoryID != 0 {
		query = query.Where("crime_category_id = ?", filter.CrimeCategoryID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Order("created_at DESC").Order("id DESC").Offset(offset).Limit(limit).Find(&reports).Error; err != nil {
		return nil, 0, err
	}

	return reports, total, nil
}

// CountByStatus counts reports grouped by status
func (r *reportRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		Status string
		Count  int64
	}
	err := r.db.WithContext(ctx).
		Model(&models.CrimeReport{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

// Recent returns the newest reports
func (r *reportRepository) Recent(ctx context.Context, limit int) ([]*models.CrimeReport, error) {
	var reports []*models.CrimeReport
	err := r.db.WithContext(ctx).
		Order("created_at DESC").Order("id DESC").
		Limit(limit).
		Find(&reports).Error
	return reports, err
}

// Exists checks if a report exists
func (r *reportRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.CrimeReport{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
