package models

import "time"

// Order is created atomically with a confirmed charge. Card and address
// fields are snapshots of what was submitted at purchase time, not references
// to StoredCard — editing or deleting a card later must not rewrite history.
type Order struct {
	ID          uint   `gorm:"primarykey"`
	Name        string `gorm:"size:120;not null"`
	OrderedItem string `gorm:"size:200;default:'Not Set'"`
	Last4       string `gorm:"size:4"`
	Address     string `gorm:"size:300"`
	PaidStatus  bool   `gorm:"default:false"`
	PaidAt      *time.Time
	TotalPrice  float64 `gorm:"type:decimal(8,2)"`
	IsDelivered bool    `gorm:"default:false"`
	DeliveredAt string  `gorm:"size:200"`
	UserID      uint    `gorm:"not null;index"`
	User        *User   `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
