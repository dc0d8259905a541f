package card

import (
	"context"
	stderrors "errors"
	"strconv"

	"vendora/internal/errors"
	"vendora/internal/gateway"
	"vendora/internal/models"
	"vendora/internal/repositories"
	"vendora/internal/workflow"
)

type service struct {
	gateway  gateway.PaymentGateway
	cards    repositories.CardRepository
	cache    CustomerCache
	recorder workflow.Recorder
}

// NewService creates the card lifecycle orchestrator. cache may be nil.
func NewService(
	gw gateway.PaymentGateway,
	cards repositories.CardRepository,
	cache CustomerCache,
	recorder workflow.Recorder,
) Service {
	return &service{
		gateway:  gw,
		cards:    cards,
		cache:    cache,
		recorder: recorder,
	}
}

// CreateCard attaches a payment method to the customer for the given email
// (creating the customer if needed), makes it the invoice default and, when
// requested, persists the redacted card locally. A failure after the attach
// leaves the remote state as-is; the step log records how far the run got.
func (s *service) CreateCard(ctx context.Context, userID uint, input CreateCardInput) (*CreateCardResult, error) {
	if input.Email == "" {
		return nil, errors.BadRequest("email is required")
	}
	if input.PaymentMethodID == "" {
		return nil, errors.BadRequest("payment method id is required")
	}

	run := s.recorder.Begin(ctx, WorkflowCreate, userID)

	customer, err := s.resolveCustomer(ctx, input.Email)
	if err != nil {
		run.Fail(ctx, StepCustomerResolved, err.Error())
		return nil, errors.Wrap(err, "error resolving customer")
	}
	run.Step(ctx, StepCustomerResolved)

	if err := s.gateway.AttachPaymentMethod(ctx, input.PaymentMethodID, customer.ID); err != nil {
		run.Fail(ctx, StepMethodAttached, err.Error())
		return nil, errors.Wrap(err, "error attaching card")
	}
	run.Step(ctx, StepMethodAttached)

	if err := s.gateway.SetDefaultPaymentMethod(ctx, customer.ID, input.PaymentMethodID); err != nil {
		run.Fail(ctx, StepDefaultSet, err.Error())
		return nil, errors.Wrap(err, "error setting default card")
	}
	run.Step(ctx, StepDefaultSet)

	detail, err := s.gateway.RetrievePaymentMethod(ctx, input.PaymentMethodID)
	if err != nil {
		run.Fail(ctx, StepMethodRetrieved, err.Error())
		// The method stays attached remotely either way; only the local
		// half of the save path is missing.
		if input.SaveCard {
			return nil, errors.Wrap(err, "error saving card")
		}
		return nil, errors.Wrap(err, "error retrieving card details")
	}
	run.Step(ctx, StepMethodRetrieved)

	if input.SaveCard {
		stored := &models.StoredCard{
			Email:           input.Email,
			NameOnCard:      detail.NameOnCard,
			CustomerID:      customer.ID,
			PaymentMethodID: input.PaymentMethodID,
			Last4:           detail.Card.Last4,
			ExpMonth:        strconv.FormatInt(detail.Card.ExpMonth, 10),
			ExpYear:         strconv.FormatInt(detail.Card.ExpYear, 10),
			UserID:          userID,
		}
		if err := s.cards.Create(stored); err != nil {
			run.Fail(ctx, StepCardSaved, err.Error())
			if stderrors.Is(err, repositories.ErrDuplicateCard) {
				return nil, errors.DuplicateCard("error saving card: a card with this last4 is already stored")
			}
			return nil, errors.Wrap(err, "error saving card")
		}
		run.Step(ctx, StepCardSaved)
	}

	run.Complete(ctx)
	return &CreateCardResult{
		CustomerID: customer.ID,
		Email:      input.Email,
		Card:       detail,
		Saved:      input.SaveCard,
	}, nil
}

// RetrieveCard fetches the remote payment method detail. Any processor
// failure surfaces as a gateway error.
func (s *service) RetrieveCard(ctx context.Context, customerID, methodID string) (*gateway.MethodDetail, error) {
	if customerID == "" || methodID == "" {
		return nil, errors.BadRequest("customer id and card id are required")
	}

	detail, err := s.gateway.RetrievePaymentMethod(ctx, methodID)
	if err != nil {
		return nil, errors.GatewayError("error retrieving card details: " + err.Error())
	}
	return detail, nil
}

// UpdateCard modifies the remote payment method first; only if that succeeds
// does it refresh the matching local row. A missing local row is not an
// error — the stored card is a cache, the processor is the source of truth.
func (s *service) UpdateCard(ctx context.Context, userID uint, input UpdateCardInput) (*UpdateCardResult, error) {
	if input.PaymentMethodID == "" {
		return nil, errors.BadRequest("card id is required")
	}

	run := s.recorder.Begin(ctx, WorkflowUpdate, userID)

	detail, err := s.gateway.ModifyPaymentMethod(ctx, input.PaymentMethodID, gateway.MethodUpdate{
		ExpMonth:       input.ExpMonth,
		ExpYear:        input.ExpYear,
		NameOnCard:     input.NameOnCard,
		AddressCity:    input.AddressCity,
		AddressCountry: input.AddressCountry,
		AddressState:   input.AddressState,
		AddressZip:     input.AddressZip,
	})
	if err != nil {
		run.Fail(ctx, StepRemoteModified, err.Error())
		return nil, errors.Wrap(err, "error updating card")
	}
	run.Step(ctx, StepRemoteModified)

	result := &UpdateCardResult{Card: detail}
	if input.Last4 == "" {
		run.Complete(ctx)
		return result, nil
	}

	stored, err := s.cards.GetByUserAndLast4(userID, normalizeLast4(input.Last4))
	if err != nil {
		if stderrors.Is(err, repositories.ErrCardNotFound) {
			run.Complete(ctx)
			return result, nil
		}
		run.Fail(ctx, StepLocalUpdated, err.Error())
		return nil, errors.Wrap(err, "error updating stored card")
	}

	applyPartialUpdate(stored, input)
	if err := s.cards.Update(stored); err != nil {
		run.Fail(ctx, StepLocalUpdated, err.Error())
		return nil, errors.Wrap(err, "error updating stored card")
	}
	run.Step(ctx, StepLocalUpdated)

	run.Complete(ctx)
	result.LocalUpdated = true
	return result, nil
}

// DeleteCard removes a stored card and its remote counterparts. Ordering
// matters: the remote detach is the point of no return — if it fails the
// local row survives so the delete can be retried. The customer is deleted
// last because the processor keeps a stale default-payment-method reference
// after a detach; discarding the customer forces the next create flow to
// provision a fresh one with a true default.
func (s *service) DeleteCard(ctx context.Context, userID uint, last4 string) error {
	if last4 == "" {
		return errors.BadRequest("card number is required")
	}
	last4 = normalizeLast4(last4)

	stored, err := s.cards.GetByUserAndLast4(userID, last4)
	if err != nil {
		if stderrors.Is(err, repositories.ErrCardNotFound) {
			return errors.NotFound("card not found in database")
		}
		return errors.Wrap(err, "error locating card")
	}

	run := s.recorder.Begin(ctx, WorkflowDelete, userID)
	run.Step(ctx, StepRowLocated)

	if err := s.gateway.DetachPaymentMethod(ctx, stored.PaymentMethodID); err != nil {
		run.Fail(ctx, StepMethodDetached, err.Error())
		return errors.Wrap(err, "error detaching card")
	}
	run.Step(ctx, StepMethodDetached)

	if err := s.cards.DeleteByUserAndLast4(userID, last4); err != nil {
		run.Fail(ctx, StepLocalDeleted, err.Error())
		return errors.Wrap(err, "error deleting stored card")
	}
	run.Step(ctx, StepLocalDeleted)

	if s.cache != nil {
		s.cache.InvalidateCustomer(ctx, stored.Email)
	}

	if err := s.gateway.DeleteCustomer(ctx, stored.CustomerID); err != nil {
		// The row is gone and the method is detached; there is nothing to
		// roll back. Report the failure and leave the run marked failed.
		run.Fail(ctx, StepCustomerDeleted, err.Error())
		return errors.Wrap(err, "error deleting customer")
	}
	run.Step(ctx, StepCustomerDeleted)

	run.Complete(ctx)
	return nil
}

func (s *service) ListCards(ctx context.Context, userID uint) ([]*models.StoredCard, error) {
	return s.cards.GetByUserID(userID)
}

// resolveCustomer finds the remote customer for an email, creating one if
// none exists. The cache only short-circuits the list call.
func (s *service) resolveCustomer(ctx context.Context, email string) (*gateway.Customer, error) {
	if s.cache != nil {
		if id, ok := s.cache.GetCustomerID(ctx, email); ok {
			return &gateway.Customer{ID: id, Email: email}, nil
		}
	}

	customer, err := s.gateway.FindCustomerByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		customer, err = s.gateway.CreateCustomer(ctx, email)
		if err != nil {
			return nil, err
		}
	}

	if s.cache != nil {
		s.cache.SetCustomerID(ctx, email, customer.ID)
	}
	return customer, nil
}

// applyPartialUpdate copies only the provided fields onto the stored row.
// Last4 is a locator, never a target.
func applyPartialUpdate(stored *models.StoredCard, input UpdateCardInput) {
	if input.NameOnCard != "" {
		stored.NameOnCard = input.NameOnCard
	}
	if input.ExpMonth != "" {
		stored.ExpMonth = input.ExpMonth
	}
	if input.ExpYear != "" {
		stored.ExpYear = input.ExpYear
	}
	if input.AddressCity != "" {
		stored.AddressCity = input.AddressCity
	}
	if input.AddressCountry != "" {
		stored.AddressCountry = input.AddressCountry
	}
	if input.AddressState != "" {
		stored.AddressState = input.AddressState
	}
	if input.AddressZip != "" {
		stored.AddressZip = input.AddressZip
	}
}

// normalizeLast4 accepts either a bare last4 or a longer masked number and
// keeps only the last four digits.
func normalizeLast4(number string) string {
	if len(number) > 4 {
		return number[len(number)-4:]
	}
	return number
}
