package charge

import (
	"context"
	"math"
	"time"

	"vendora/internal/errors"
	"vendora/internal/gateway"
	"vendora/internal/models"
	"vendora/internal/repositories"
	"vendora/internal/workflow"
)

// Service charges an existing customer and records the resulting order.
type Service interface {
	Charge(ctx context.Context, userID uint, input Input) (*Result, error)
}

type service struct {
	gateway  gateway.PaymentGateway
	orders   repositories.OrderRepository
	cache    CustomerCache
	recorder workflow.Recorder
	currency string
}

// NewService creates the charge orchestrator. cache may be nil.
func NewService(
	gw gateway.PaymentGateway,
	orders repositories.OrderRepository,
	cache CustomerCache,
	recorder workflow.Recorder,
	currency string,
) Service {
	return &service{
		gateway:  gw,
		orders:   orders,
		cache:    cache,
		recorder: recorder,
		currency: currency,
	}
}

// Charge confirms an off-session payment intent against a pre-existing
// customer and, on success, persists an order snapshot. Unlike card
// creation, a missing customer is an error here — charging never provisions
// customers implicitly.
func (s *service) Charge(ctx context.Context, userID uint, input Input) (*Result, error) {
	if input.Email == "" {
		return nil, errors.BadRequest("email is required")
	}
	if input.PaymentMethodID == "" {
		return nil, errors.BadRequest("payment method id is required")
	}
	if input.Amount <= 0 {
		return nil, errors.BadRequest("amount must be greater than zero")
	}

	run := s.recorder.Begin(ctx, Workflow, userID)

	customer, err := s.lookupCustomer(ctx, input.Email)
	if err != nil {
		run.Fail(ctx, StepCustomerResolved, err.Error())
		return nil, errors.Wrap(err, "error finding customer")
	}
	if customer == nil {
		run.Fail(ctx, StepCustomerResolved, "no customer for email")
		return nil, errors.NotFound("customer not found")
	}
	run.Step(ctx, StepCustomerResolved)

	intent, err := s.gateway.CreateAndConfirmPaymentIntent(ctx, gateway.IntentParams{
		Amount:          toMinorUnits(input.Amount),
		Currency:        s.currency,
		CustomerID:      customer.ID,
		PaymentMethodID: input.PaymentMethodID,
		Description:     "vendora order payment",
	})
	if err != nil {
		run.Fail(ctx, StepIntentConfirmed, err.Error())
		return nil, errors.Wrap(err, "error processing payment")
	}
	run.Step(ctx, StepIntentConfirmed)

	now := time.Now()
	order := &models.Order{
		Name:        input.Name,
		OrderedItem: input.OrderedItem,
		Last4:       snapshotLast4(input.CardNumber),
		Address:     input.Address,
		PaidStatus:  true,
		PaidAt:      &now,
		TotalPrice:  input.Amount,
		IsDelivered: input.IsDelivered,
		DeliveredAt: input.DeliveredAt,
		UserID:      userID,
	}
	if err := s.orders.Create(order); err != nil {
		// The charge already went through; the step log shows the intent
		// was confirmed without a matching order row.
		run.Fail(ctx, StepOrderRecorded, err.Error())
		return nil, errors.Wrap(err, "error recording order")
	}
	run.Step(ctx, StepOrderRecorded)

	run.Complete(ctx)
	return &Result{
		CustomerID:      customer.ID,
		Message:         "Payment Successful",
		PaymentIntentID: intent.ID,
	}, nil
}

func (s *service) lookupCustomer(ctx context.Context, email string) (*gateway.Customer, error) {
	if s.cache != nil {
		if id, ok := s.cache.GetCustomerID(ctx, email); ok {
			return &gateway.Customer{ID: id, Email: email}, nil
		}
	}

	customer, err := s.gateway.FindCustomerByEmail(ctx, email)
	if err != nil || customer == nil {
		return customer, err
	}

	if s.cache != nil {
		s.cache.SetCustomerID(ctx, email, customer.ID)
	}
	return customer, nil
}

// toMinorUnits converts a decimal amount to the processor's integer minor
// units (19.99 → 1999).
func toMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func snapshotLast4(number string) string {
	if len(number) > 4 {
		return number[len(number)-4:]
	}
	return number
}
