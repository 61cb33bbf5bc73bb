package repo

import (
	"lost-and-found/backend/app/models"

	"gorm.io/gorm"
)

// ItemFilter narrows public item listings.
type ItemFilter struct {
	Status   string
	Category string
	Search   string
}

type LostItemRepository struct{ db *gorm.DB }

func NewLostItemRepository(db *gorm.DB) *LostItemRepository { return &LostItemRepository{db: db} }

func (r *LostItemRepository) Create(item *models.LostItem) error { return r.db.Create(item).Error }

func (r *LostItemRepository) FindByID(id uint) (*models.LostItem, error) {
	var item models.LostItem
	if err := r.db.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *LostItemRepository) List(f ItemFilter) ([]models.LostItem, error) {
	q := r.db.Model(&models.LostItem{})
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
	var items []models.LostItem
	err := q.Order("created_at DESC").Find(&items).Error
	return items, err
}

func (r *LostItemRepository) ListByUser(userID uint) ([]models.LostItem, error) {
	var items []models.LostItem
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&items).Error
	return items, err
}

func (r *LostItemRepository) Updates(id uint, fields map[string]interface{}) error {
	return r.db.Model(&models.LostItem{}).Where("id = ?", id).Updates(fields).Error
}

func (r *LostItemRepository) Delete(id uint) (int64, error) {
	res := r.db.Delete(&models.LostItem{}, id)
	return res.RowsAffected, res.Error
}

func (r *LostItemRepository) Count() (int64, error) {
	var count int64
	return count, r.db.Model(&models.LostItem{}).Count(&count).Error
}

func (r *LostItemRepository) CountByStatus() (map[string]int64, error) {
	return countByStatus(r.db, &models.LostItem{})
}

type statusCount struct {
	Status string
	Count  int64
}

func countByStatus(db *gorm.DB, model interface{}) (map[string]int64, error) {
	var rows []statusCount
	if err := db.Model(model).Select("status, count(*) as count").Group("status").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(rows))
	for _, row := range rows {
		out[row.Status] = row.Count
	}
	return out, nil
}
