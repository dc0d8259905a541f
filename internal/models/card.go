package models

import "time"

// StoredCard is the local, redacted projection of a payment card. The full
// PAN never touches this table: Last4 holds exactly the last four digits and
// the remote identifiers point at the processor-held instrument.
//
// A user may store several cards, but only one per last4 — lookups and the
// unique index are both keyed on (user_id, last4).
type StoredCard struct {
	ID              uint   `gorm:"primarykey"`
	Email           string `gorm:"index"`
	NameOnCard      string
	CustomerID      string `gorm:"not null"` // remote customer reference
	PaymentMethodID string `gorm:"not null"` // remote payment method reference
	Last4           string `gorm:"size:4;not null;uniqueIndex:idx_cards_user_last4"`
	ExpMonth        string `gorm:"size:2"`
	ExpYear         string `gorm:"size:4"`
	AddressCity     string
	AddressCountry  string
	AddressState    string
	AddressZip      string `gorm:"size:10"`
	UserID          uint   `gorm:"not null;uniqueIndex:idx_cards_user_last4"`
	User            *User  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
