package repositories

import (
	"context"

	"community-watch/internal/adapters/persistence/models"
)

// OfficerRepository defines officer repository interface
type OfficerRepository interface {
	Create(ctx context.Context, officer *models.PoliceOfficer) error
	GetByID(ctx context.Context, id uint) (*models.PoliceOfficer, error)
	GetByIDWithAssignments(ctx context.Context, id uint) (*models.PoliceOfficer, error)
	GetByEmail(ctx context.Context, email string) (*models.PoliceOfficer, error)
	Update(ctx context.Context, officer *models.PoliceOfficer) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, offset, limit int) ([]*models.PoliceOfficer, int64, error)
	Count(ctx context.Context) (int64, error)
	Exists(ctx context.Context, id uint) (bool, error)
	ExistsByField(ctx context.Context, column, value string, excludeID uint) (bool, error)
}

// CategoryRepository defines crime category repository interface
type CategoryRepository interface {
	Create(ctx context.Context, category *models.CrimeCategory) error
	GetByID(ctx context.Context, id uint) (*models.CrimeCategory, error)
	GetByIDWithReports(ctx context.Context, id uint) (*models.CrimeCategory, error)
	Update(ctx context.Context, category *models.CrimeCategory) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, offset, limit int) ([]*models.CrimeCategory, int64, error)
	Exists(ctx context.Context, id uint) (bool, error)
	ExistsByName(ctx context.Context, name string, excludeID uint) (bool, error)
}

// ReportFilter narrows report listings
type ReportFilter struct {
	Status          string
	CrimeCategoryID uint
}

// ReportRepository defines crime report repository interface
type ReportRepository interface {
	Create(ctx context.Context, report *models.CrimeReport) error
	GetByID(ctx context.Context, id uint) (*models.CrimeReport, error)
	GetByIDWithRelations(ctx context.Context, id uint) (*models.CrimeReport, error)
	Update(ctx context.Context, report *models.CrimeReport) error
	Delete(ctx context.Context, id uint) error
	DeleteByCategoryID(ctx context.Context, categoryID uint) error
	List(ctx context.Context, filter ReportFilter, offset, limit int) ([]*models.CrimeReport, int64, error)
	CountByStatus(ctx context.Context) (map[string]int64, error)
	Recent(ctx context.Context, limit int) ([]*models.CrimeReport, error)
	Exists(ctx context.Context, id uint) (bool, error)
}

// AssignmentRepository defines assignment repository interface
type AssignmentRepository interface {
	Create(ctx context.Context, assignment *models.Assignment) error
	GetByID(ctx context.Context, id uint) (*models.Assignment, error)
	GetByIDWithRelations(ctx context.Context, id uint) (*models.Assignment, error)
	Update(ctx context.Context, assignment *models.Assignment) error
	Delete(ctx context.Context, id uint) error
	DeleteByOfficerID(ctx context.Context, officerID uint) error
	DeleteByReportID(ctx context.Context, reportID uint) error
	DeleteByCategoryID(ctx context.Context, categoryID uint) error
	List(ctx context.Context, offset, limit int) ([]*models.Assignment, int64, error)
	Count(ctx context.Context) (int64, error)
}

// SessionRepository defines session repository interface
type SessionRepository interface {
	Create(ctx context.Context, session *models.Session) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.Session, error)
	RevokeByTokenHash(ctx context.Context, tokenHash string) error
	RevokeAllByOfficerID(ctx context.Context, officerID uint) error
	DeleteByOfficerID(ctx context.Context, officerID uint) error
	DeleteExpired(ctx context.Context) (int64, error)
	CountActiveByOfficerID(ctx context.Context, officerID uint) (int64, error)
}
