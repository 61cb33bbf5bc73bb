package services

import (
	"errors"

	"lost-and-found/backend/app/models"
	"lost-and-found/backend/app/repo"
	"lost-and-found/backend/global"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	users    *repo.UserRepository
	attempts *repo.LoginAttemptRepository
}

func NewUserService(users *repo.UserRepository, attempts *repo.LoginAttemptRepository) *UserService {
	return &UserService{users: users, attempts: attempts}
}

type RegisterInput struct {
	FullName  string
	Email     string
	StudentID *string
	Phone     string
	Password  string
}

// Register creates a student account. Role is never caller-controlled.
func (s *UserService) Register(in RegisterInput) (uint, error) {
	count, err := s.users.CountByEmailOrStudentID(in.Email, in.StudentID)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, ErrDuplicateUser
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}
	u := models.User{
		FullName:     in.FullName,
		Email:        in.Email,
		StudentID:    in.StudentID,
		Phone:        in.Phone,
		PasswordHash: string(hash),
		Role:         models.RoleStudent,
		IsActive:     true,
	}
	if err := s.users.Create(&u); err != nil {
		return 0, err
	}
	return u.ID, nil
}

// Authenticate checks credentials and records exactly one login-attempt row
// per call, whatever the outcome.
func (s *UserService) Authenticate(email, password, ip string) (*models.User, error) {
	u, err := s.users.FindByEmail(email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	success := false
	defer func() {
		attempt := models.LoginAttempt{EmailOrStudentID: email, IPAddress: ip, Success: success}
		if aerr := s.attempts.Create(&attempt); aerr != nil {
			global.Logger.Warn().Err(aerr).Msg("login attempt write failed")
		}
	}()

	if u == nil || errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if !u.IsActive {
		return nil, ErrAccountDeactivated
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	success = true
	if err := s.users.TouchLastLogin(u.ID); err != nil {
		global.Logger.Warn().Err(err).Uint("user", u.ID).Msg("last login update failed")
	}
	return u, nil
}

func (s *UserService) FindByID(id uint) (*models.User, error) {
	u, err := s.users.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return u, err
}

func (s *UserService) ChangePassword(id uint, current, next string) error {
	u, err := s.users.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(current)) != nil {
		return ErrWrongPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.users.UpdatePasswordHash(id, string(hash))
}

// EnsureAdmin seeds a bootstrap admin account if the email is unused.
func (s *UserService) EnsureAdmin(fullName, email, password string) error {
	count, err := s.users.CountByEmailOrStudentID(email, nil)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.users.Create(&models.User{
		FullName: fullName, Email: email, PasswordHash: string(hash),
		Role: models.RoleAdmin, IsActive: true,
	})
}
