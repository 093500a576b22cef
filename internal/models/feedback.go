package models

import (
	"time"
)

type Feedback struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	ItemID    uint      `json:"item_id" gorm:"not null;index"`
	Username  string    `json:"username" gorm:"not null"`
	Rating    int       `json:"rating" gorm:"not null"` // 1-5
	Comment   string    `json:"comment" gorm:"size:500"`
	CreatedAt time.Time `json:"created_at"`
}
