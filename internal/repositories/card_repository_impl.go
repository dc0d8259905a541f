package repositories

import (
	stderrors "errors"
	"fmt"

	"vendora/internal/models"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type cardRepository struct {
	db *gorm.DB
}

func NewCardRepository(db *gorm.DB) CardRepository {
	return &cardRepository{db: db}
}

func (r *cardRepository) Create(card *models.StoredCard) error {
	if err := r.db.Create(card).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateCard
		}
		return fmt.Errorf("failed to store card: %w", err)
	}
	return nil
}

func (r *cardRepository) GetByUserAndLast4(userID uint, last4 string) (*models.StoredCard, error) {
	var card models.StoredCard
	err := r.db.Where("user_id = ? AND last4 = ?", userID, last4).First(&card).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, fmt.Errorf("failed to get card: %w", err)
	}
	return &card, nil
}

func (r *cardRepository) Update(card *models.StoredCard) error {
	return r.db.Save(card).Error
}

func (r *cardRepository) DeleteByUserAndLast4(userID uint, last4 string) error {
	result := r.db.Where("user_id = ? AND last4 = ?", userID, last4).Delete(&models.StoredCard{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCardNotFound
	}
	return nil
}

func (r *cardRepository) GetByUserID(userID uint) ([]*models.StoredCard, error) {
	var cards []*models.StoredCard
	if err := r.db.Where("user_id = ?", userID).Find(&cards).Error; err != nil {
		return nil, fmt.Errorf("failed to get user cards: %w", err)
	}
	return cards, nil
}

// isUniqueViolation reports whether err is a Postgres unique_violation
// (23505), which for this table means the (user_id, last4) index.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if stderrors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return stderrors.Is(err, gorm.ErrDuplicatedKey)
}
