package services

import (
	"fmt"
	"strings"
	"testing"

	"lost-and-found/backend/app/models"
	"lost-and-found/backend/app/repo"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := gdb.AutoMigrate(&models.User{}, &models.LostItem{}, &models.FoundItem{}, &models.AdminLog{}, &models.LoginAttempt{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return gdb
}

type fixture struct {
	db       *gorm.DB
	users    *repo.UserRepository
	lost     *repo.LostItemRepository
	found    *repo.FoundItemRepository
	logs     *repo.AdminLogRepository
	attempts *repo.LoginAttemptRepository
	userSvc  *UserService
	itemSvc  *ItemService
	adminSvc *AdminService
	auditSvc *AuditService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gdb := openTestDB(t)
	f := &fixture{
		db:       gdb,
		users:    repo.NewUserRepository(gdb),
		lost:     repo.NewLostItemRepository(gdb),
		found:    repo.NewFoundItemRepository(gdb),
		logs:     repo.NewAdminLogRepository(gdb),
		attempts: repo.NewLoginAttemptRepository(gdb),
	}
	f.auditSvc = NewAuditService(f.logs)
	f.userSvc = NewUserService(f.users, f.attempts)
	f.itemSvc = NewItemService(f.lost, f.found, f.auditSvc)
	f.adminSvc = NewAdminService(f.users, f.lost, f.found, f.attempts, f.auditSvc)
	return f
}

func (f *fixture) seedUser(t *testing.T, email, role string, active bool) *models.User {
	t.Helper()
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	u := models.User{
		FullName: "Test " + email, Email: email,
		PasswordHash: string(hash), Role: role, IsActive: active,
	}
	if err := f.users.Create(&u); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	if !active {
		// GORM's Create omits zero-valued fields with a default tag, so
		// is_active=false must be forced with an explicit column update.
		if err := f.db.Model(&u).Update("is_active", false).Error; err != nil {
			t.Fatalf("seed user deactivate: %v", err)
		}
	}
	return &u
}

func repoFilter(status, category, search string) repo.ItemFilter {
	return repo.ItemFilter{Status: status, Category: category, Search: search}
}

func (f *fixture) countUsers(t *testing.T) int64 {
	t.Helper()
	var n int64
	if err := f.db.Model(&models.User{}).Count(&n).Error; err != nil {
		t.Fatal(err)
	}
	return n
}
