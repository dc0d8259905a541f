package charge

import "context"

// Workflow identifiers and step names for the durable step log.
const (
	Workflow = "charge"

	StepCustomerResolved = "customer_resolved"
	StepIntentConfirmed  = "intent_confirmed"
	StepOrderRecorded    = "order_recorded"
)

// Input carries a charge request. Amount is in decimal currency units;
// CardNumber is only used for the redacted order snapshot.
type Input struct {
	Email           string  `json:"email"`
	Amount          float64 `json:"amount"`
	PaymentMethodID string  `json:"payment_method_id"`
	Name            string  `json:"name"`
	CardNumber      string  `json:"card_number"`
	Address         string  `json:"address"`
	OrderedItem     string  `json:"ordered_item"`
	IsDelivered     bool    `json:"is_delivered"`
	DeliveredAt     string  `json:"delivered_at"`
}

type Result struct {
	CustomerID      string `json:"customer_id"`
	Message         string `json:"message"`
	PaymentIntentID string `json:"payment_intent"`
}

// CustomerCache caches email → remote customer ID lookups.
type CustomerCache interface {
	GetCustomerID(ctx context.Context, email string) (string, bool)
	SetCustomerID(ctx context.Context, email, customerID string)
}
