package repositories

import (
	"errors"

	"vendora/internal/models"
)

var (
	// ErrCardNotFound means no stored card matched (user, last4).
	ErrCardNotFound = errors.New("stored card not found")
	// ErrDuplicateCard means the user already stored a card with that last4.
	ErrDuplicateCard = errors.New("card with this last4 already stored for user")
)

// CardRepository persists the redacted card projections. Every lookup is
// keyed by (user, last4) — there is deliberately no last4-only accessor, so
// a colliding last4 can never cross user boundaries.
type CardRepository interface {
	Create(card *models.StoredCard) error
	GetByUserAndLast4(userID uint, last4 string) (*models.StoredCard, error)
	Update(card *models.StoredCard) error
	DeleteByUserAndLast4(userID uint, last4 string) error
	GetByUserID(userID uint) ([]*models.StoredCard, error)
}
