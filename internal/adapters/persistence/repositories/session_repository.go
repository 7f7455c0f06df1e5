package repositories

import (
	"context"
	"time"

	"community-watch/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

const sessionResource = "session"

// sessionRepository implements SessionRepository interface
type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

// Create creates a new session
func (r *sessionRepository) Create(ctx context.Context, session *models.Session) error {
	return r.db.WithContext(ctx).Create(session).Error
}

// GetByTokenHash gets a live (not revoked) session by its token hash
func (r *sessionRepository) GetByTokenHash(ctx context.Context, tokenHash string) (*models.Session, error) {
	var session models.Session
	err := r.db.WithContext(ctx).
		Where("token_hash = ?", tokenHash).
		Where("revoked_at IS NULL").
		First(&session).Error
	if err != nil {
		return nil, translate(err, sessionResource, 0)
	}
	return &session, nil
}

// RevokeByTokenHash revokes a session by its token hash
func (r *sessionRepository) RevokeByTokenHash(ctx context.Context, tokenHash string) error {
	now := time.Now()
	return r.db.WithContext(ctx).
		Model(&models.Session{}).
		Where("token_hash = ?", tokenHash).
		Where("revoked_at IS NULL").
		Update("revoked_at", &now).Error
}

// RevokeAllByOfficerID revokes every live session of an officer
func (r *sessionRepository) RevokeAllByOfficerID(ctx context.Context, officerID uint) error {
	now := time.Now()
	return r.db.WithContext(ctx).
		Model(&models.Session{}).
		Where("officer_id = ?", officerID).
		Where("revoked_at IS NULL").
		Update("revoked_at", &now).Error
}

// DeleteByOfficerID deletes every session row of an officer
func (r *sessionRepository) DeleteByOfficerID(ctx context.Context, officerID uint) error {
	return r.db.WithContext(ctx).Where("officer_id = ?", officerID).Delete(&models.Session{}).Error
}

// DeleteExpired deletes expired and revoked sessions (cleanup job)
func (r *sessionRepository) DeleteExpired(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("expires_at < ? OR revoked_at IS NOT NULL", time.Now()).
		Delete(&models.Session{})
	return result.RowsAffected, result.Error
}

// CountActiveByOfficerID counts live sessions for an officer
func (r *sessionRepository) CountActiveByOfficerID(ctx context.Context, officerID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Session{}).
		Where("officer_id = ?", officerID).
		Where("revoked_at IS NULL").
		Where("expires_at > ?", time.Now()).
		Count(&count).Error
	return count, err
}
