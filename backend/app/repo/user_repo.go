package repo

import (
	"time"

	"lost-and-found/backend/app/models"

	"gorm.io/gorm"
)

type UserRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{db: db} }

func (r *UserRepository) Create(u *models.User) error { return r.db.Create(u).Error }

func (r *UserRepository) FindByID(id uint) (*models.User, error) {
	var u models.User
	if err := r.db.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByEmail(email string) (*models.User, error) {
	var u models.User
	if err := r.db.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) CountByEmailOrStudentID(email string, studentID *string) (int64, error) {
	var count int64
	q := r.db.Model(&models.User{})
	if studentID != nil && *studentID != "" {
		q = q.Where("email = ? OR student_id = ?", email, *studentID)
	} else {
		q = q.Where("email = ?", email)
	}
	return count, q.Count(&count).Error
}

func (r *UserRepository) List(role, search string) ([]models.User, error) {
	q := r.db.Model(&models.User{})
	if role != "" {
		q = q.Where("role = ?", role)
	}
	if search != "" {
		like := "%" + search + "%"
		q = q.Where("full_name LIKE ? OR email LIKE ? OR student_id LIKE ?", like, like, like)
	}
	var users []models.User
	err := q.Order("created_at DESC").Find(&users).Error
	return users, err
}

func (r *UserRepository) CountActiveAdmins() (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("role = ? AND is_active = ?", models.RoleAdmin, true).Count(&count).Error
	return count, err
}

// UpdateRole returns the number of affected rows so callers can report a
// missing target as not found.
func (r *UserRepository) UpdateRole(id uint, role string) (int64, error) {
	res := r.db.Model(&models.User{}).Where("id = ?", id).Update("role", role)
	return res.RowsAffected, res.Error
}

func (r *UserRepository) SetActive(id uint, active bool) (int64, error) {
	res := r.db.Model(&models.User{}).Where("id = ?", id).Update("is_active", active)
	return res.RowsAffected, res.Error
}

func (r *UserRepository) UpdatePasswordHash(id uint, hash string) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).Update("password_hash", hash).Error
}

func (r *UserRepository) TouchLastLogin(id uint) error {
	now := time.Now()
	return r.db.Model(&models.User{}).Where("id = ?", id).Update("last_login", &now).Error
}

func (r *UserRepository) Delete(id uint) (int64, error) {
	res := r.db.Delete(&models.User{}, id)
	return res.RowsAffected, res.Error
}

func (r *UserRepository) CountAll() (total, active, admins int64, err error) {
	if err = r.db.Model(&models.User{}).Count(&total).Error; err != nil {
		return
	}
	if err = r.db.Model(&models.User{}).Where("is_active = ?", true).Count(&active).Error; err != nil {
		return
	}
	err = r.db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&admins).Error
	return
}
