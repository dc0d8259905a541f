// Package gateway wraps every call to the external payment processor behind
// a narrow interface so orchestrators never touch the SDK directly.
package gateway

import "context"

// Customer is the opaque remote customer reference.
type Customer struct {
	ID    string
	Email string
}

// CardDetail is the non-sensitive card projection returned by the processor.
type CardDetail struct {
	Brand    string `json:"brand"`
	Last4    string `json:"last4"`
	ExpMonth int64  `json:"exp_month"`
	ExpYear  int64  `json:"exp_year"`
}

// MethodDetail describes a remote payment method.
type MethodDetail struct {
	ID         string     `json:"id"`
	NameOnCard string     `json:"name_on_card"`
	Card       CardDetail `json:"card"`
}

// MethodUpdate carries the mutable payment method attributes. Empty fields
// are left unchanged at the processor.
type MethodUpdate struct {
	ExpMonth       string
	ExpYear        string
	NameOnCard     string
	AddressCity    string
	AddressCountry string
	AddressState   string
	AddressZip     string
}

// IntentParams describes a single charge attempt. Amount is in minor units.
type IntentParams struct {
	Amount          int64
	Currency        string
	CustomerID      string
	PaymentMethodID string
	Description     string
}

// PaymentIntent is the processor-side record of a charge attempt.
type PaymentIntent struct {
	ID     string
	Status string
	Amount int64
}

// PaymentGateway is the capability set the orchestrators consume. Every
// method returns domain errors (CARD_REJECTED, GATEWAY_UNREACHABLE,
// GATEWAY_ERROR) rather than raw SDK errors.
type PaymentGateway interface {
	// FindCustomerByEmail returns (nil, nil) when no customer exists.
	FindCustomerByEmail(ctx context.Context, email string) (*Customer, error)
	CreateCustomer(ctx context.Context, email string) (*Customer, error)
	DeleteCustomer(ctx context.Context, customerID string) error

	AttachPaymentMethod(ctx context.Context, methodID, customerID string) error
	SetDefaultPaymentMethod(ctx context.Context, customerID, methodID string) error
	RetrievePaymentMethod(ctx context.Context, methodID string) (*MethodDetail, error)
	ModifyPaymentMethod(ctx context.Context, methodID string, update MethodUpdate) (*MethodDetail, error)
	DetachPaymentMethod(ctx context.Context, methodID string) error

	// CreateAndConfirmPaymentIntent creates an off-session intent and
	// confirms it in the same call.
	CreateAndConfirmPaymentIntent(ctx context.Context, params IntentParams) (*PaymentIntent, error)
}
