package card

import (
	"context"

	"vendora/internal/gateway"
	"vendora/internal/models"
)

// Service implements the card lifecycle workflows. Each operation is a short
// chain of gateway calls plus at most one local write.
type Service interface {
	CreateCard(ctx context.Context, userID uint, input CreateCardInput) (*CreateCardResult, error)
	RetrieveCard(ctx context.Context, customerID, methodID string) (*gateway.MethodDetail, error)
	UpdateCard(ctx context.Context, userID uint, input UpdateCardInput) (*UpdateCardResult, error)
	DeleteCard(ctx context.Context, userID uint, last4 string) error
	ListCards(ctx context.Context, userID uint) ([]*models.StoredCard, error)
}

// CustomerCache caches email → remote customer ID lookups. Implementations
// must be best-effort; the service treats every failure as a miss.
type CustomerCache interface {
	GetCustomerID(ctx context.Context, email string) (string, bool)
	SetCustomerID(ctx context.Context, email, customerID string)
	InvalidateCustomer(ctx context.Context, email string)
}
