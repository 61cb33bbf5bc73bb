package models

import "time"

type LoginAttempt struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	EmailOrStudentID string    `gorm:"size:191;index" json:"email_or_student_id"`
	IPAddress        string    `gorm:"size:64" json:"ip_address"`
	Success          bool      `gorm:"not null" json:"success"`
	CreatedAt        time.Time `json:"created_at"`
}
