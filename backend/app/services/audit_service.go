package services

import (
	"encoding/json"

	"lost-and-found/backend/app/models"
	"lost-and-found/backend/app/repo"
	"lost-and-found/backend/global"
)

// Actor identifies the admin performing a privileged mutation.
type Actor struct {
	ID   uint
	Name string
	IP   string
}

type AuditService struct{ logs *repo.AdminLogRepository }

func NewAuditService(logs *repo.AdminLogRepository) *AuditService {
	return &AuditService{logs: logs}
}

// Record appends an admin action. Fire-and-forget: a failed write never
// fails the mutation it describes, it only shows up in the server log.
func (s *AuditService) Record(actor Actor, action string, targetUser, targetItem *uint, details map[string]interface{}) {
	payload := ""
	if details != nil {
		if b, err := json.Marshal(details); err == nil {
			payload = string(b)
		}
	}
	entry := models.AdminLog{
		AdminID:      actor.ID,
		AdminName:    actor.Name,
		Action:       action,
		TargetUserID: targetUser,
		TargetItemID: targetItem,
		Details:      payload,
		IPAddress:    actor.IP,
	}
	if err := s.logs.Create(&entry); err != nil {
		global.Logger.Warn().Err(err).Str("action", action).Msg("audit write failed")
	}
}

func (s *AuditService) Latest(limit int) ([]models.AdminLog, error) {
	return s.logs.Latest(limit)
}
