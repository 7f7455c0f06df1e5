package repositories

import (
	"context"
	"errors"
	"strings"

	"community-watch/internal/core/domain"

	"gorm.io/gorm"
)

// Repositories bundles every repository bound to one connection or transaction
type Repositories struct {
	db          *gorm.DB
	Officers    OfficerRepository
	Categories  CategoryRepository
	Reports     ReportRepository
	Assignments AssignmentRepository
	Sessions    SessionRepository
}

// New creates all repositories on top of db
func New(db *gorm.DB) *Repositories {
	return &Repositories{
		db:          db,
		Officers:    NewOfficerRepository(db),
		Categories:  NewCategoryRepository(db),
		Reports:     NewReportRepository(db),
		Assignments: NewAssignmentRepository(db),
		Sessions:    NewSessionRepository(db),
	}
}

// Transaction runs fn with repositories bound to a single transaction.
// Any error returned by fn rolls the whole transaction back.
func (r *Repositories) Transaction(ctx context.Context, fn func(tx *Repositories) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(New(tx))
	})
}

// Ping checks the underlying connection
func (r *Repositories) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// translate maps store errors onto domain errors
func translate(err error, resource string, id uint) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &domain.NotFoundError{Resource: resource, ID: id}
	}
	if isDuplicateKey(err) {
		return &domain.UniquenessError{Field: duplicateField(err)}
	}
	return err
}

// isDuplicateKey recognizes unique violations across sqlite, postgres and mysql
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate entry") ||
		strings.Contains(msg, "duplicate key")
}

var uniqueColumns = []string{"badge_number", "email", "phone", "name"}

// duplicateField guesses the violated column from the driver message
func duplicateField(err error) string {
	msg := strings.ToLower(err.Error())
	for _, column := range uniqueColumns {
		if strings.Contains(msg, column) {
			return column
		}
	}
	return ""
}
