package models

import "time"

// Admin action tags. The admin_logs table only ever sees these values.
const (
	ActionPromote         = "PROMOTE_TO_ADMIN"
	ActionDemote          = "DEMOTE_TO_STUDENT"
	ActionBan             = "BAN_USER"
	ActionUnban           = "UNBAN_USER"
	ActionDeleteUser      = "DELETE_USER"
	ActionDeleteLostItem  = "DELETE_LOST_ITEM"
	ActionDeleteFoundItem = "DELETE_FOUND_ITEM"
)

// AdminLog rows are append-only; nothing in the application updates or
// deletes them.
type AdminLog struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	AdminID      uint      `gorm:"index;not null" json:"admin_id"`
	AdminName    string    `gorm:"size:191;not null" json:"admin_name"`
	Action       string    `gorm:"size:64;not null" json:"action"`
	TargetUserID *uint     `json:"target_user_id"`
	TargetItemID *uint     `json:"target_item_id"`
	Details      string    `gorm:"type:text" json:"details"`
	IPAddress    string    `gorm:"size:64" json:"ip_address"`
	CreatedAt    time.Time `json:"timestamp"`
}
