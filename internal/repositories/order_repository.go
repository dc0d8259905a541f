package repositories

import (
	"fmt"

	"vendora/internal/models"

	"gorm.io/gorm"
)

// OrderRepository persists order snapshots created by confirmed charges.
type OrderRepository interface {
	Create(order *models.Order) error
	GetByUserID(userID uint) ([]*models.Order, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(order *models.Order) error {
	if err := r.db.Create(order).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

func (r *orderRepository) GetByUserID(userID uint) ([]*models.Order, error) {
	var orders []*models.Order
	if err := r.db.Where("user_id = ?", userID).Order("created_at desc").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to get user orders: %w", err)
	}
	return orders, nil
}
