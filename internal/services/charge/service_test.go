package charge

import (
	"context"
	"testing"

	"vendora/internal/errors"
	"vendora/internal/gateway"
	"vendora/internal/models"
	"vendora/internal/workflow"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) FindCustomerByEmail(ctx context.Context, email string) (*gateway.Customer, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gateway.Customer), args.Error(1)
}

func (m *MockGateway) CreateCustomer(ctx context.Context, email string) (*gateway.Customer, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gateway.Customer), args.Error(1)
}

func (m *MockGateway) DeleteCustomer(ctx context.Context, customerID string) error {
	return m.Called(ctx, customerID).Error(0)
}

func (m *MockGateway) AttachPaymentMethod(ctx context.Context, methodID, customerID string) error {
	return m.Called(ctx, methodID, customerID).Error(0)
}

func (m *MockGateway) SetDefaultPaymentMethod(ctx context.Context, customerID, methodID string) error {
	return m.Called(ctx, customerID, methodID).Error(0)
}

func (m *MockGateway) RetrievePaymentMethod(ctx context.Context, methodID string) (*gateway.MethodDetail, error) {
	args := m.Called(ctx, methodID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gateway.MethodDetail), args.Error(1)
}

func (m *MockGateway) ModifyPaymentMethod(ctx context.Context, methodID string, update gateway.MethodUpdate) (*gateway.MethodDetail, error) {
	args := m.Called(ctx, methodID, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gateway.MethodDetail), args.Error(1)
}

func (m *MockGateway) DetachPaymentMethod(ctx context.Context, methodID string) error {
	return m.Called(ctx, methodID).Error(0)
}

func (m *MockGateway) CreateAndConfirmPaymentIntent(ctx context.Context, params gateway.IntentParams) (*gateway.PaymentIntent, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gateway.PaymentIntent), args.Error(1)
}

type MockOrderRepo struct {
	mock.Mock
}

func (m *MockOrderRepo) Create(order *models.Order) error {
	return m.Called(order).Error(0)
}

func (m *MockOrderRepo) GetByUserID(userID uint) ([]*models.Order, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Order), args.Error(1)
}

func newTestService(gw *MockGateway, orders *MockOrderRepo) Service {
	return NewService(gw, orders, nil, workflow.NoopRecorder{}, "usd")
}

func assertCode(t *testing.T, err error, code string) {
	t.Helper()
	derr, ok := errors.As(err)
	assert.True(t, ok, "expected a domain error, got %v", err)
	assert.Equal(t, code, derr.Code)
}

func validInput() Input {
	return Input{
		Email:           "a@b.com",
		Amount:          19.99,
		PaymentMethodID: "pm_1",
		Name:            "Jane Doe",
		CardNumber:      "4242424242424242",
		Address:         "12 Main St",
		OrderedItem:     "Mechanical keyboard",
	}
}

func TestChargeService_Charge(t *testing.T) {
	customer := &gateway.Customer{ID: "cus_1", Email: "a@b.com"}

	t.Run("converts amount to minor units and snapshots the order", func(t *testing.T) {
		gw := new(MockGateway)
		orders := new(MockOrderRepo)

		gw.On("FindCustomerByEmail", mock.Anything, "a@b.com").Return(customer, nil)
		gw.On("CreateAndConfirmPaymentIntent", mock.Anything, mock.MatchedBy(func(p gateway.IntentParams) bool {
			return p.Amount == 1999 && p.Currency == "usd" &&
				p.CustomerID == "cus_1" && p.PaymentMethodID == "pm_1"
		})).Return(&gateway.PaymentIntent{ID: "pi_1", Status: "succeeded", Amount: 1999}, nil)
		orders.On("Create", mock.MatchedBy(func(o *models.Order) bool {
			return o.PaidStatus && o.PaidAt != nil && o.TotalPrice == 19.99 &&
				o.Last4 == "4242" && o.UserID == 7 && o.OrderedItem == "Mechanical keyboard"
		})).Return(nil)

		result, err := newTestService(gw, orders).Charge(context.Background(), 7, validInput())

		assert.NoError(t, err)
		assert.Equal(t, "cus_1", result.CustomerID)
		assert.Equal(t, "Payment Successful", result.Message)
		assert.Equal(t, "pi_1", result.PaymentIntentID)
		gw.AssertExpectations(t)
		orders.AssertExpectations(t)
	})

	t.Run("unknown customer fails without creating one or an order", func(t *testing.T) {
		gw := new(MockGateway)
		orders := new(MockOrderRepo)

		gw.On("FindCustomerByEmail", mock.Anything, "a@b.com").Return(nil, nil)

		_, err := newTestService(gw, orders).Charge(context.Background(), 7, validInput())

		assertCode(t, err, errors.CodeNotFound)
		gw.AssertNotCalled(t, "CreateCustomer", mock.Anything, mock.Anything)
		gw.AssertNotCalled(t, "CreateAndConfirmPaymentIntent", mock.Anything, mock.Anything)
		orders.AssertNotCalled(t, "Create", mock.Anything)
	})

	t.Run("declined card creates no order", func(t *testing.T) {
		gw := new(MockGateway)
		orders := new(MockOrderRepo)

		gw.On("FindCustomerByEmail", mock.Anything, "a@b.com").Return(customer, nil)
		gw.On("CreateAndConfirmPaymentIntent", mock.Anything, mock.Anything).
			Return(nil, errors.CardRejected("insufficient funds"))

		_, err := newTestService(gw, orders).Charge(context.Background(), 7, validInput())

		assertCode(t, err, errors.CodeCardRejected)
		orders.AssertNotCalled(t, "Create", mock.Anything)
	})

	t.Run("generic processor fault surfaces as gateway error", func(t *testing.T) {
		gw := new(MockGateway)
		orders := new(MockOrderRepo)

		gw.On("FindCustomerByEmail", mock.Anything, "a@b.com").Return(customer, nil)
		gw.On("CreateAndConfirmPaymentIntent", mock.Anything, mock.Anything).
			Return(nil, errors.GatewayError("unexpected processor state"))

		_, err := newTestService(gw, orders).Charge(context.Background(), 7, validInput())

		assertCode(t, err, errors.CodeGatewayError)
		orders.AssertNotCalled(t, "Create", mock.Anything)
	})

	t.Run("network failure is retryable by the caller", func(t *testing.T) {
		gw := new(MockGateway)
		orders := new(MockOrderRepo)

		gw.On("FindCustomerByEmail", mock.Anything, "a@b.com").Return(customer, nil)
		gw.On("CreateAndConfirmPaymentIntent", mock.Anything, mock.Anything).
			Return(nil, errors.GatewayUnreachable("connection timed out"))

		_, err := newTestService(gw, orders).Charge(context.Background(), 7, validInput())

		assertCode(t, err, errors.CodeGatewayUnreachable)
	})

	t.Run("validation failures short-circuit before remote calls", func(t *testing.T) {
		tests := []struct {
			name   string
			mutate func(*Input)
		}{
			{"missing email", func(i *Input) { i.Email = "" }},
			{"missing payment method", func(i *Input) { i.PaymentMethodID = "" }},
			{"zero amount", func(i *Input) { i.Amount = 0 }},
			{"negative amount", func(i *Input) { i.Amount = -5 }},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				gw := new(MockGateway)
				input := validInput()
				tt.mutate(&input)

				_, err := newTestService(gw, new(MockOrderRepo)).Charge(context.Background(), 7, input)

				assertCode(t, err, errors.CodeBadRequest)
				gw.AssertNotCalled(t, "FindCustomerByEmail", mock.Anything, mock.Anything)
			})
		}
	})
}

func TestToMinorUnits(t *testing.T) {
	assert.Equal(t, int64(1999), toMinorUnits(19.99))
	assert.Equal(t, int64(500), toMinorUnits(5))
	assert.Equal(t, int64(10), toMinorUnits(0.1))
	assert.Equal(t, int64(2000), toMinorUnits(19.999))
}
