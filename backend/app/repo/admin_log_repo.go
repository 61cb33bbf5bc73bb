package repo

import (
	"lost-and-found/backend/app/models"

	"gorm.io/gorm"
)

type AdminLogRepository struct{ db *gorm.DB }

func NewAdminLogRepository(db *gorm.DB) *AdminLogRepository { return &AdminLogRepository{db: db} }

func (r *AdminLogRepository) Create(l *models.AdminLog) error { return r.db.Create(l).Error }

func (r *AdminLogRepository) Latest(limit int) ([]models.AdminLog, error) {
	if limit <= 0 {
		limit = 50
	}
	var logs []models.AdminLog
	err := r.db.Order("id DESC").Limit(limit).Find(&logs).Error
	return logs, err
}
