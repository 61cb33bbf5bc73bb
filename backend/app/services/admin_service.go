package services

import (
	"errors"
	"sort"
	"time"

	"lost-and-found/backend/app/models"
	"lost-and-found/backend/app/repo"

	"gorm.io/gorm"
)

type AdminService struct {
	users    *repo.UserRepository
	lost     *repo.LostItemRepository
	found    *repo.FoundItemRepository
	attempts *repo.LoginAttemptRepository
	audit    *AuditService
}

func NewAdminService(users *repo.UserRepository, lost *repo.LostItemRepository, found *repo.FoundItemRepository, attempts *repo.LoginAttemptRepository, audit *AuditService) *AdminService {
	return &AdminService{users: users, lost: lost, found: found, attempts: attempts, audit: audit}
}

func (s *AdminService) ListUsers(role, search string) ([]models.User, error) {
	return s.users.List(role, search)
}

type Statistics struct {
	TotalUsers       int64            `json:"total_users"`
	ActiveUsers      int64            `json:"active_users"`
	BannedUsers      int64            `json:"banned_users"`
	AdminCount       int64            `json:"admin_count"`
	TotalLostItems   int64            `json:"total_lost_items"`
	TotalFoundItems  int64            `json:"total_found_items"`
	LostByStatus     map[string]int64 `json:"lost_by_status"`
	FoundByStatus    map[string]int64 `json:"found_by_status"`
	SuccessfulLogins int64            `json:"successful_logins_today"`
}

func (s *AdminService) Statistics() (*Statistics, error) {
	total, active, admins, err := s.users.CountAll()
	if err != nil {
		return nil, err
	}
	lostTotal, err := s.lost.Count()
	if err != nil {
		return nil, err
	}
	foundTotal, err := s.found.Count()
	if err != nil {
		return nil, err
	}
	lostByStatus, err := s.lost.CountByStatus()
	if err != nil {
		return nil, err
	}
	foundByStatus, err := s.found.CountByStatus()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	logins, err := s.attempts.CountSince(midnight, true)
	if err != nil {
		return nil, err
	}
	return &Statistics{
		TotalUsers:       total,
		ActiveUsers:      active,
		BannedUsers:      total - active,
		AdminCount:       admins,
		TotalLostItems:   lostTotal,
		TotalFoundItems:  foundTotal,
		LostByStatus:     lostByStatus,
		FoundByStatus:    foundByStatus,
		SuccessfulLogins: logins,
	}, nil
}

// Promote grants admin to the target. Acting on your own account is rejected.
func (s *AdminService) Promote(actor Actor, targetID uint) error {
	if targetID == actor.ID {
		return ErrSelfAction
	}
	affected, err := s.users.UpdateRole(targetID, models.RoleAdmin)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	s.audit.Record(actor, models.ActionPromote, &targetID, nil, nil)
	return nil
}

// Demote moves an admin back to student. The active-admin count is checked
// first so the system never configures itself out of its last admin. The
// count and the write are not wrapped in a transaction; two concurrent
// demotions can both observe count > 1 and drain the pool.
func (s *AdminService) Demote(actor Actor, targetID uint) error {
	if targetID == actor.ID {
		return ErrSelfAction
	}
	count, err := s.users.CountActiveAdmins()
	if err != nil {
		return err
	}
	if count <= 1 {
		return ErrLastAdmin
	}
	affected, err := s.users.UpdateRole(targetID, models.RoleStudent)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	s.audit.Record(actor, models.ActionDemote, &targetID, nil, nil)
	return nil
}

// ToggleStatus flips the target's active flag and reports the new state.
func (s *AdminService) ToggleStatus(actor Actor, targetID uint) (bool, error) {
	if targetID == actor.ID {
		return false, ErrSelfAction
	}
	u, err := s.users.FindByID(targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrNotFound
		}
		return false, err
	}
	next := !u.IsActive
	if _, err := s.users.SetActive(targetID, next); err != nil {
		return false, err
	}
	action := models.ActionBan
	if next {
		action = models.ActionUnban
	}
	s.audit.Record(actor, action, &targetID, nil, nil)
	return next, nil
}

func (s *AdminService) DeleteUser(actor Actor, targetID uint) error {
	if targetID == actor.ID {
		return ErrSelfAction
	}
	affected, err := s.users.Delete(targetID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	s.audit.Record(actor, models.ActionDeleteUser, &targetID, nil, nil)
	return nil
}

func (s *AdminService) Logs(limit int) ([]models.AdminLog, error) {
	return s.audit.Latest(limit)
}

// ActivityEntry is one row of the recent-activity feed, an item report
// tagged with its table of origin.
type ActivityEntry struct {
	Type      string    `json:"type"`
	ID        uint      `json:"id"`
	ItemName  string    `json:"item_name"`
	Category  string    `json:"category"`
	Status    string    `json:"status"`
	UserID    uint      `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (s *AdminService) RecentActivity(limit int) ([]ActivityEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	lost, err := s.lost.List(repo.ItemFilter{})
	if err != nil {
		return nil, err
	}
	found, err := s.found.List(repo.ItemFilter{})
	if err != nil {
		return nil, err
	}
	entries := make([]ActivityEntry, 0, len(lost)+len(found))
	for _, it := range lost {
		entries = append(entries, ActivityEntry{Type: "lost", ID: it.ID, ItemName: it.ItemName, Category: it.Category, Status: it.Status, UserID: it.UserID, CreatedAt: it.CreatedAt})
	}
	for _, it := range found {
		entries = append(entries, ActivityEntry{Type: "found", ID: it.ID, ItemName: it.ItemName, Category: it.Category, Status: it.Status, UserID: it.UserID, CreatedAt: it.CreatedAt})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].CreatedAt.After(entries[j].CreatedAt) })
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}
