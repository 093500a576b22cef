package models

import (
	"time"
)

type Order struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Username string `json:"username" gorm:"not null"`
	// Item name and price are snapshotted at order time; later menu edits
	// must not change placed orders.
	ItemName      string    `json:"item_name" gorm:"not null"`
	TotalPrice    float64   `json:"total_price" gorm:"not null"`
	PickupTime    string    `json:"pickup_time" gorm:"not null"` // e.g. "12:30 PM"
	Status        string    `json:"status" gorm:"default:'Pending'"`
	PaymentStatus string    `json:"payment_status" gorm:"default:'Unpaid'"`
	PaymentMethod string    `json:"payment_method"`
	Token         string    `json:"token" gorm:"size:12"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type OrderStatus string

const (
	OrderPending   OrderStatus = "Pending"
	OrderPreparing OrderStatus = "Preparing"
	OrderReady     OrderStatus = "Ready"
	OrderCompleted OrderStatus = "Completed"
	OrderCancelled OrderStatus = "Cancelled"
)

type PaymentStatus string

const (
	PaymentUnpaid PaymentStatus = "Unpaid"
	PaymentPaid   PaymentStatus = "Paid"
	PaymentFailed PaymentStatus = "Failed"
)

// ValidOrderStatus reports whether s is one of the five known statuses.
func ValidOrderStatus(s string) bool {
	switch OrderStatus(s) {
	case OrderPending, OrderPreparing, OrderReady, OrderCompleted, OrderCancelled:
		return true
	}
	return false
}
