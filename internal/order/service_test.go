package order

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/patriciamaedppuaso/Elective4-ETR/internal/utils"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CreateCheckout(ctx context.Context, input CheckoutInput) (*Order, error) {
	args := m.Called(ctx, input)
	if order, ok := args.Get(0).(*Order); ok {
		return order, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepository) GetOrders(ctx context.Context, userID uint, status string, limit, page int) ([]*Order, int, error) {
	args := m.Called(ctx, userID, status, limit, page)
	if orders, ok := args.Get(0).([]*Order); ok {
		return orders, args.Int(1), args.Error(2)
	}
	return nil, args.Int(1), args.Error(2)
}

func (m *MockRepository) CountByStatus(ctx context.Context, userID uint) (StatusCounts, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(StatusCounts), args.Error(1)
}

func (m *MockRepository) GetOrderDetail(ctx context.Context, orderID uint) (*Order, error) {
	args := m.Called(ctx, orderID)
	if order, ok := args.Get(0).(*Order); ok {
		return order, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepository) GetAdminOrders(ctx context.Context, filter AdminFilter) ([]*Order, error) {
	args := m.Called(ctx, filter)
	if orders, ok := args.Get(0).([]*Order); ok {
		return orders, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepository) ApproveOrder(ctx context.Context, orderID uint) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

func (m *MockRepository) DeclineOrder(ctx context.Context, orderID uint, reason string) error {
	args := m.Called(ctx, orderID, reason)
	return args.Error(0)
}

func (m *MockRepository) ForceStatus(ctx context.Context, orderID uint, status Status) error {
	args := m.Called(ctx, orderID, status)
	return args.Error(0)
}

func TestService_Checkout(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		input := CheckoutInput{
			UserID:        1,
			PaymentMethod: "Cash on Delivery",
			SelectedIDs:   []uint{8},
		}
		placed := &Order{
			ID:     30,
			UserID: 1,
			Status: StatusPending,
			Lines: []Line{
				{ProductID: 8, Quantity: 2, Price: decimal.RequireFromString("1500.00")},
			},
		}
		repo.On("CreateCheckout", ctx, input).Return(placed, nil)

		order, err := svc.Checkout(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, uint(30), order.ID)
		repo.AssertExpectations(t)
	})

	t.Run("empty selection never reaches the repository", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		_, err := svc.Checkout(ctx, CheckoutInput{
			UserID:        1,
			PaymentMethod: "Cash on Delivery",
		})

		assert.ErrorIs(t, err, ErrEmptySelection)
		repo.AssertNotCalled(t, "CreateCheckout", mock.Anything, mock.Anything)
	})

	t.Run("non-positive quantity override never reaches the repository", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		_, err := svc.Checkout(ctx, CheckoutInput{
			UserID:        1,
			PaymentMethod: "Cash on Delivery",
			SelectedIDs:   []uint{8},
			Overrides:     map[uint]int{8: -2},
		})
		assert.ErrorIs(t, err, ErrInvalidQuantity)

		_, err = svc.Checkout(ctx, CheckoutInput{
			UserID:        1,
			PaymentMethod: "Cash on Delivery",
			SelectedIDs:   []uint{8},
			Overrides:     map[uint]int{8: 0},
		})
		assert.ErrorIs(t, err, ErrInvalidQuantity)

		repo.AssertNotCalled(t, "CreateCheckout", mock.Anything, mock.Anything)
	})

	t.Run("online payment requires proof", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		_, err := svc.Checkout(ctx, CheckoutInput{
			UserID:        1,
			PaymentMethod: PaymentMethodOnline,
			SelectedIDs:   []uint{8},
		})
		assert.ErrorIs(t, err, ErrMissingProof)

		_, err = svc.Checkout(ctx, CheckoutInput{
			UserID:        1,
			PaymentMethod: PaymentMethodOnline,
			PaymentProof:  utils.StrPtr(""),
			SelectedIDs:   []uint{8},
		})
		assert.ErrorIs(t, err, ErrMissingProof)

		repo.AssertNotCalled(t, "CreateCheckout", mock.Anything, mock.Anything)
	})

	t.Run("online payment with proof passes through", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		input := CheckoutInput{
			UserID:        1,
			PaymentMethod: PaymentMethodOnline,
			PaymentProof:  utils.StrPtr("payments/abc.png"),
			SelectedIDs:   []uint{8},
		}
		repo.On("CreateCheckout", ctx, input).Return(&Order{ID: 31, Status: StatusPending}, nil)

		_, err := svc.Checkout(ctx, input)
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("stock error propagates untouched", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		stockErr := &InsufficientStockError{ProductID: 9, ProductName: "Mouse", Available: 2}
		repo.On("CreateCheckout", ctx, mock.Anything).Return(nil, stockErr)

		_, err := svc.Checkout(ctx, CheckoutInput{
			UserID:        1,
			PaymentMethod: "Cash on Delivery",
			SelectedIDs:   []uint{9},
		})

		var got *InsufficientStockError
		require.ErrorAs(t, err, &got)
		assert.Equal(t, "not enough stock for Mouse: max available 2", got.Error())
	})
}

func TestService_ListMine(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults to the processing bucket", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetOrders", ctx, uint(1), StatusProcessing, listPageSize, 1).
			Return([]*Order{{ID: 30}}, 11, nil)
		repo.On("CountByStatus", ctx, uint(1)).
			Return(StatusCounts{Processing: 11}, nil)

		result, err := svc.ListMine(ctx, 1, "", 0)
		require.NoError(t, err)
		assert.Equal(t, 1, result.Page)
		assert.Equal(t, 2, result.TotalPages)
		assert.Equal(t, 11, result.Counts.Processing)
		repo.AssertExpectations(t)
	})

	t.Run("rejects unknown bucket", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		_, err := svc.ListMine(ctx, 1, "Refunded", 1)
		assert.ErrorIs(t, err, ErrInvalidStatus)
		repo.AssertNotCalled(t, "GetOrders",
			mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestService_Detail(t *testing.T) {
	ctx := context.Background()

	t.Run("owner sees own order", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetOrderDetail", ctx, uint(30)).Return(&Order{ID: 30, UserID: 1}, nil)

		order, err := svc.Detail(ctx, 1, 30, false)
		require.NoError(t, err)
		assert.Equal(t, uint(30), order.ID)
	})

	t.Run("other customer is rejected", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetOrderDetail", ctx, uint(30)).Return(&Order{ID: 30, UserID: 1}, nil)

		_, err := svc.Detail(ctx, 2, 30, false)
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("admin sees any order", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetOrderDetail", ctx, uint(30)).Return(&Order{ID: 30, UserID: 1}, nil)

		_, err := svc.Detail(ctx, 2, 30, true)
		assert.NoError(t, err)
	})

	t.Run("missing order", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetOrderDetail", ctx, uint(99)).Return(nil, ErrOrderNotFound)

		_, err := svc.Detail(ctx, 1, 99, true)
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})
}

func TestService_StatusTransitions(t *testing.T) {
	ctx := context.Background()

	t.Run("approve delegates", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("ApproveOrder", ctx, uint(30)).Return(nil)
		assert.NoError(t, svc.Approve(ctx, 30))
		repo.AssertExpectations(t)
	})

	t.Run("decline needs a reason", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		err := svc.Decline(ctx, 30, "")
		assert.ErrorIs(t, err, ErrMissingReason)
		repo.AssertNotCalled(t, "DeclineOrder", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("decline with reason delegates", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("DeclineOrder", ctx, uint(30), "damaged packaging").Return(nil)
		assert.NoError(t, svc.Decline(ctx, 30, "damaged packaging"))
	})

	t.Run("force update validates the target status", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		err := svc.ForceStatus(ctx, 30, "Processing")
		assert.ErrorIs(t, err, ErrInvalidStatus)
		repo.AssertNotCalled(t, "ForceStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("force update delegates with a valid status", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("ForceStatus", ctx, uint(30), StatusShipped).Return(nil)
		assert.NoError(t, svc.ForceStatus(ctx, 30, "Shipped"))
	})
}
