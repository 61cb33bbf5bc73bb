package services

import (
	"errors"

	jwtutil "lost-and-found/backend/app/jwt"
	"lost-and-found/backend/app/models"
	"lost-and-found/backend/app/repo"

	"gorm.io/gorm"
)

type ItemService struct {
	lost  *repo.LostItemRepository
	found *repo.FoundItemRepository
	audit *AuditService
}

func NewItemService(lost *repo.LostItemRepository, found *repo.FoundItemRepository, audit *AuditService) *ItemService {
	return &ItemService{lost: lost, found: found, audit: audit}
}

// canMutate implements owner-or-admin. It runs only after the target row was
// fetched, so a missing row always surfaces as not-found first.
func canMutate(claims *jwtutil.Claims, ownerID uint) bool {
	return claims.Role == models.RoleAdmin || claims.UserID == ownerID
}

func (s *ItemService) ListLost(f repo.ItemFilter) ([]models.LostItem, error) { return s.lost.List(f) }

func (s *ItemService) GetLost(id uint) (*models.LostItem, error) {
	item, err := s.lost.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return item, err
}

func (s *ItemService) CreateLost(item *models.LostItem) error { return s.lost.Create(item) }

func (s *ItemService) UpdateLost(claims *jwtutil.Claims, id uint, fields map[string]interface{}) error {
	item, err := s.GetLost(id)
	if err != nil {
		return err
	}
	if !canMutate(claims, item.UserID) {
		return ErrForbidden
	}
	return s.lost.Updates(id, fields)
}

func (s *ItemService) DeleteLost(claims *jwtutil.Claims, id uint, ip string) error {
	item, err := s.GetLost(id)
	if err != nil {
		return err
	}
	if !canMutate(claims, item.UserID) {
		return ErrForbidden
	}
	if _, err := s.lost.Delete(id); err != nil {
		return err
	}
	if claims.Role == models.RoleAdmin {
		actor := Actor{ID: claims.UserID, Name: claims.Email, IP: ip}
		s.audit.Record(actor, models.ActionDeleteLostItem, nil, &id, nil)
	}
	return nil
}

func (s *ItemService) ListFound(f repo.ItemFilter) ([]models.FoundItem, error) {
	return s.found.List(f)
}

func (s *ItemService) GetFound(id uint) (*models.FoundItem, error) {
	item, err := s.found.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return item, err
}

func (s *ItemService) CreateFound(item *models.FoundItem) error { return s.found.Create(item) }

func (s *ItemService) UpdateFound(claims *jwtutil.Claims, id uint, fields map[string]interface{}) error {
	item, err := s.GetFound(id)
	if err != nil {
		return err
	}
	if !canMutate(claims, item.UserID) {
		return ErrForbidden
	}
	return s.found.Updates(id, fields)
}

func (s *ItemService) DeleteFound(claims *jwtutil.Claims, id uint, ip string) error {
	item, err := s.GetFound(id)
	if err != nil {
		return err
	}
	if !canMutate(claims, item.UserID) {
		return ErrForbidden
	}
	if _, err := s.found.Delete(id); err != nil {
		return err
	}
	if claims.Role == models.RoleAdmin {
		actor := Actor{ID: claims.UserID, Name: claims.Email, IP: ip}
		s.audit.Record(actor, models.ActionDeleteFoundItem, nil, &id, nil)
	}
	return nil
}

type OwnedItems struct {
	LostItems  []models.LostItem  `json:"lost_items"`
	FoundItems []models.FoundItem `json:"found_items"`
}

func (s *ItemService) OwnedBy(userID uint) (*OwnedItems, error) {
	lost, err := s.lost.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	found, err := s.found.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	return &OwnedItems{LostItems: lost, FoundItems: found}, nil
}
