package models

import (
	"time"
)

type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"unique;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Role         string    `json:"role" gorm:"default:'user'"` // user or admin
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleUser  UserRole = "user"
)

// Identity is the authenticated caller of a core operation. It is always
// passed in explicitly; services never look up session state themselves.
type Identity struct {
	Username string
	Role     string
}

func (i Identity) IsAdmin() bool {
	return i.Role == string(RoleAdmin)
}
