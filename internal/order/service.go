package order

import (
	"context"

	"go.uber.org/zap"

	"github.com/patriciamaedppuaso/Elective4-ETR/internal/logger"
)

type Service interface {
	Checkout(ctx context.Context, input CheckoutInput) (*Order, error)
	ListMine(ctx context.Context, userID uint, status string, page int) (*ListResult, error)
	Detail(ctx context.Context, userID, orderID uint, isAdmin bool) (*Order, error)
	AdminList(ctx context.Context, filter AdminFilter) ([]*Order, error)
	Approve(ctx context.Context, orderID uint) error
	Decline(ctx context.Context, orderID uint, reason string) error
	ForceStatus(ctx context.Context, orderID uint, status string) error
}

// listPageSize is the customer order listing page size.
const listPageSize = 10

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Checkout validates before any state mutation, then hands the whole
// multi-row protocol to one repository transaction.
func (s *service) Checkout(ctx context.Context, input CheckoutInput) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Checkout"),
		zap.Uint("user_id", input.UserID),
		zap.String("payment_method", input.PaymentMethod),
		zap.Int("selected", len(input.SelectedIDs)),
	)

	if len(input.SelectedIDs) == 0 {
		log.Warn("empty selection")
		return nil, ErrEmptySelection
	}

	for id, qty := range input.Overrides {
		if qty <= 0 {
			log.Warn("non-positive quantity override",
				zap.Uint("product_id", id),
				zap.Int("quantity", qty),
			)
			return nil, ErrInvalidQuantity
		}
	}

	if input.PaymentMethod == PaymentMethodOnline {
		if input.PaymentProof == nil || *input.PaymentProof == "" {
			log.Warn("missing payment proof")
			return nil, ErrMissingProof
		}
	}

	order, err := s.repo.CreateCheckout(ctx, input)
	if err != nil {
		log.Warn("checkout failed", zap.Error(err))
		return nil, err
	}

	log.Info("order placed",
		zap.Uint("order_id", order.ID),
		zap.String("total", order.Total().StringFixed(2)),
	)

	return order, nil
}

func (s *service) ListMine(ctx context.Context, userID uint, status string, page int) (*ListResult, error) {
	if status == "" {
		status = StatusProcessing
	}
	if status != StatusProcessing && !Status(status).Valid() {
		return nil, ErrInvalidStatus
	}
	if page <= 0 {
		page = 1
	}

	orders, total, err := s.repo.GetOrders(ctx, userID, status, listPageSize, page)
	if err != nil {
		return nil, err
	}

	counts, err := s.repo.CountByStatus(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &ListResult{
		Orders:     orders,
		Counts:     counts,
		Page:       page,
		TotalPages: (total + listPageSize - 1) / listPageSize,
	}, nil
}

// Detail returns an order with its lines; customers only see their own.
func (s *service) Detail(ctx context.Context, userID, orderID uint, isAdmin bool) (*Order, error) {
	order, err := s.repo.GetOrderDetail(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !isAdmin && order.UserID != userID {
		return nil, ErrUnauthorized
	}

	return order, nil
}

func (s *service) AdminList(ctx context.Context, filter AdminFilter) ([]*Order, error) {
	return s.repo.GetAdminOrders(ctx, filter)
}

func (s *service) Approve(ctx context.Context, orderID uint) error {
	return s.repo.ApproveOrder(ctx, orderID)
}

func (s *service) Decline(ctx context.Context, orderID uint, reason string) error {
	if reason == "" {
		return ErrMissingReason
	}
	return s.repo.DeclineOrder(ctx, orderID, reason)
}

func (s *service) ForceStatus(ctx context.Context, orderID uint, status string) error {
	if !Status(status).Valid() {
		return ErrInvalidStatus
	}
	return s.repo.ForceStatus(ctx, orderID, Status(status))
}
