package gateway

import (
	"context"
	stderrors "errors"

	"vendora/internal/config"
	"vendora/internal/errors"

	stripe "github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/client"
)

type stripeGateway struct {
	api *client.API
}

// NewStripe builds a gateway backed by the Stripe SDK. The credential lives
// in the injected config, not in the SDK's package-level stripe.Key.
func NewStripe(cfg config.StripeConfig) PaymentGateway {
	api := &client.API{}
	api.Init(cfg.SecretKey, nil)
	return &stripeGateway{api: api}
}

func (g *stripeGateway) FindCustomerByEmail(ctx context.Context, email string) (*Customer, error) {
	params := &stripe.CustomerListParams{Email: stripe.String(email)}
	params.Context = ctx
	params.Limit = stripe.Int64(1)

	iter := g.api.Customers.List(params)
	if iter.Next() {
		c := iter.Customer()
		return &Customer{ID: c.ID, Email: c.Email}, nil
	}
	if err := iter.Err(); err != nil {
		return nil, translate(err)
	}
	return nil, nil
}

func (g *stripeGateway) CreateCustomer(ctx context.Context, email string) (*Customer, error) {
	params := &stripe.CustomerParams{
		Email:       stripe.String(email),
		Description: stripe.String("vendora customer"),
	}
	params.Context = ctx

	c, err := g.api.Customers.New(params)
	if err != nil {
		return nil, translate(err)
	}
	return &Customer{ID: c.ID, Email: c.Email}, nil
}

func (g *stripeGateway) DeleteCustomer(ctx context.Context, customerID string) error {
	params := &stripe.CustomerParams{}
	params.Context = ctx
	if _, err := g.api.Customers.Del(customerID, params); err != nil {
		return translate(err)
	}
	return nil
}

func (g *stripeGateway) AttachPaymentMethod(ctx context.Context, methodID, customerID string) error {
	params := &stripe.PaymentMethodAttachParams{Customer: stripe.String(customerID)}
	params.Context = ctx
	if _, err := g.api.PaymentMethods.Attach(methodID, params); err != nil {
		return translate(err)
	}
	return nil
}

func (g *stripeGateway) SetDefaultPaymentMethod(ctx context.Context, customerID, methodID string) error {
	params := &stripe.CustomerParams{
		InvoiceSettings: &stripe.CustomerInvoiceSettingsParams{
			DefaultPaymentMethod: stripe.String(methodID),
		},
	}
	params.Context = ctx
	if _, err := g.api.Customers.Update(customerID, params); err != nil {
		return translate(err)
	}
	return nil
}

func (g *stripeGateway) RetrievePaymentMethod(ctx context.Context, methodID string) (*MethodDetail, error) {
	params := &stripe.PaymentMethodParams{}
	params.Context = ctx

	pm, err := g.api.PaymentMethods.Get(methodID, params)
	if err != nil {
		return nil, translate(err)
	}
	return methodDetail(pm), nil
}

func (g *stripeGateway) ModifyPaymentMethod(ctx context.Context, methodID string, update MethodUpdate) (*MethodDetail, error) {
	params := &stripe.PaymentMethodParams{}
	params.Context = ctx

	if update.ExpMonth != "" || update.ExpYear != "" {
		card := &stripe.PaymentMethodCardParams{}
		if update.ExpMonth != "" {
			card.ExpMonth = stripe.String(update.ExpMonth)
		}
		if update.ExpYear != "" {
			card.ExpYear = stripe.String(update.ExpYear)
		}
		params.Card = card
	}

	if update.NameOnCard != "" || update.AddressCity != "" || update.AddressCountry != "" ||
		update.AddressState != "" || update.AddressZip != "" {
		billing := &stripe.BillingDetailsParams{}
		if update.NameOnCard != "" {
			billing.Name = stripe.String(update.NameOnCard)
		}
		address := &stripe.AddressParams{}
		hasAddress := false
		if update.AddressCity != "" {
			address.City = stripe.String(update.AddressCity)
			hasAddress = true
		}
		if update.AddressCountry != "" {
			address.Country = stripe.String(update.AddressCountry)
			hasAddress = true
		}
		if update.AddressState != "" {
			address.State = stripe.String(update.AddressState)
			hasAddress = true
		}
		if update.AddressZip != "" {
			address.PostalCode = stripe.String(update.AddressZip)
			hasAddress = true
		}
		if hasAddress {
			billing.Address = address
		}
		params.BillingDetails = billing
	}

	pm, err := g.api.PaymentMethods.Update(methodID, params)
	if err != nil {
		return nil, translate(err)
	}
	return methodDetail(pm), nil
}

func (g *stripeGateway) DetachPaymentMethod(ctx context.Context, methodID string) error {
	params := &stripe.PaymentMethodDetachParams{}
	params.Context = ctx
	if _, err := g.api.PaymentMethods.Detach(methodID, params); err != nil {
		return translate(err)
	}
	return nil
}

func (g *stripeGateway) CreateAndConfirmPaymentIntent(ctx context.Context, p IntentParams) (*PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:        stripe.Int64(p.Amount),
		Currency:      stripe.String(p.Currency),
		Customer:      stripe.String(p.CustomerID),
		PaymentMethod: stripe.String(p.PaymentMethodID),
		OffSession:    stripe.Bool(true),
		Confirm:       stripe.Bool(true),
	}
	if p.Description != "" {
		params.Description = stripe.String(p.Description)
	}
	params.Context = ctx

	pi, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return nil, translate(err)
	}
	return &PaymentIntent{ID: pi.ID, Status: string(pi.Status), Amount: pi.Amount}, nil
}

func methodDetail(pm *stripe.PaymentMethod) *MethodDetail {
	detail := &MethodDetail{ID: pm.ID}
	if pm.BillingDetails != nil {
		detail.NameOnCard = pm.BillingDetails.Name
	}
	if pm.Card != nil {
		detail.Card = CardDetail{
			Brand:    string(pm.Card.Brand),
			Last4:    pm.Card.Last4,
			ExpMonth: int64(pm.Card.ExpMonth),
			ExpYear:  int64(pm.Card.ExpYear),
		}
	}
	return detail
}

// translate maps SDK errors to the domain taxonomy. Card-level declines are
// user-correctable, other processor responses are not, and anything that is
// not a processor response at all is treated as a transport failure.
func translate(err error) error {
	var stripeErr *stripe.Error
	if stderrors.As(err, &stripeErr) {
		if stripeErr.Type == stripe.ErrorTypeCard {
			msg := stripeErr.Msg
			if msg == "" {
				msg = "card was declined"
			}
			return errors.CardRejected(msg)
		}
		return errors.GatewayError(stripeErr.Msg)
	}
	return errors.GatewayUnreachable("network error, failed to reach payment processor")
}
