package models

import (
	"time"
)

type MenuItem struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Price     float64   `json:"price" gorm:"not null"`
	Available bool      `json:"available" gorm:"default:true"`
	// Optional serving window, wall-clock "HH:MM" strings, e.g. "08:00".
	AvailableFrom *string   `json:"available_from" gorm:"size:5"`
	AvailableTo   *string   `json:"available_to" gorm:"size:5"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
