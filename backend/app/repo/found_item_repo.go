package repo

import (
	"lost-and-found/backend/app/models"

	"gorm.io/gorm"
)

type FoundItemRepository struct{ db *gorm.DB }

func NewFoundItemRepository(db *gorm.DB) *FoundItemRepository { return &FoundItemRepository{db: db} }

func (r *FoundItemRepository) Create(item *models.FoundItem) error { return r.db.Create(item).Error }

func (r *FoundItemRepository) FindByID(id uint) (*models.FoundItem, error) {
	var item models.FoundItem
	if err := r.db.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *FoundItemRepository) List(f ItemFilter) ([]models.FoundItem, error) {
	q := r.db.Model(&models.FoundItem{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where("item_name LIKE ? OR description LIKE ?", like, like)
	}
	var items []models.FoundItem
	err := q.Order("created_at DESC").Find(&items).Error
	return items, err
}

func (r *FoundItemRepository) ListByUser(userID uint) ([]models.FoundItem, error) {
	var items []models.FoundItem
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&items).Error
	return items, err
}

func (r *FoundItemRepository) Updates(id uint, fields map[string]interface{}) error {
	return r.db.Model(&models.FoundItem{}).Where("id = ?", id).Updates(fields).Error
}

func (r *FoundItemRepository) Delete(id uint) (int64, error) {
	res := r.db.Delete(&models.FoundItem{}, id)
	return res.RowsAffected, res.Error
}

func (r *FoundItemRepository) Count() (int64, error) {
	var count int64
	return count, r.db.Model(&models.FoundItem{}).Count(&count).Error
}

func (r *FoundItemRepository) CountByStatus() (map[string]int64, error) {
	return countByStatus(r.db, &models.FoundItem{})
}
