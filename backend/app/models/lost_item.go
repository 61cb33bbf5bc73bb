package models

import "time"

type LostItem struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"index" json:"user_id"`
	ItemName      string    `gorm:"size:255;not null" json:"item_name"`
	Category      string    `gorm:"size:64;not null" json:"category"`
	Description   string    `gorm:"type:text;not null" json:"description"`
	DateLost      string    `gorm:"size:32;not null" json:"date_lost"`
	LocationLost  string    `gorm:"size:255;not null" json:"location_lost"`
	StudentName   string    `gorm:"size:255;not null" json:"student_name"`
	ContactNumber string    `gorm:"size:32;not null" json:"contact_number"`
	Email         string    `gorm:"size:191" json:"email"`
	StudentID     string    `gorm:"size:64" json:"student_id"`
	ImageURL      string    `gorm:"size:512" json:"image_url"`
	Status        string    `gorm:"size:32;not null;default:active" json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
