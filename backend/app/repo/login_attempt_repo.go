package repo

import (
	"time"

	"lost-and-found/backend/app/models"

	"gorm.io/gorm"
)

type LoginAttemptRepository struct{ db *gorm.DB }

func NewLoginAttemptRepository(db *gorm.DB) *LoginAttemptRepository {
	return &LoginAttemptRepository{db: db}
}

func (r *LoginAttemptRepository) Create(a *models.LoginAttempt) error { return r.db.Create(a).Error }

func (r *LoginAttemptRepository) CountSince(t time.Time, success bool) (int64, error) {
	var count int64
	err := r.db.Model(&models.LoginAttempt{}).Where("created_at >= ? AND success = ?", t, success).Count(&count).Error
	return count, err
}

func (r *LoginAttemptRepository) CountByKey(key string) (int64, error) {
	var count int64
	err := r.db.Model(&models.LoginAttempt{}).Where("email_or_student_id = ?", key).Count(&count).Error
	return count, err
}
