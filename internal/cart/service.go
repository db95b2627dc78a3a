package cart

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/patriciamaedppuaso/Elective4-ETR/internal/logger"
)

type Service interface {
	AddItem(ctx context.Context, userID, productID uint) error
	SetQuantity(ctx context.Context, userID, productID uint, quantity int) error
	RemoveItem(ctx context.Context, userID, productID uint) error
	ListItems(ctx context.Context, userID uint) (*CartView, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// AddItem increments an existing line by one, or starts a new line at
// quantity one. Stock is not checked here; checkout enforces it.
func (s *service) AddItem(ctx context.Context, userID, productID uint) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "AddItem"),
		zap.Uint("user_id", userID),
		zap.Uint("product_id", productID),
	)

	line, err := s.repo.GetLine(ctx, userID, productID)
	if err != nil {
		log.Error("failed to load cart line", zap.Error(err))
		return err
	}

	if line != nil {
		return s.repo.IncrementLine(ctx, userID, productID)
	}

	return s.repo.InsertLine(ctx, userID, productID, 1)
}

// SetQuantity updates a line for quantity > 0 and deletes it otherwise.
// Idempotent: a missing line is not an error.
func (s *service) SetQuantity(ctx context.Context, userID, productID uint, quantity int) error {
	if quantity <= 0 {
		_, err := s.repo.DeleteLine(ctx, userID, productID)
		return err
	}

	err := s.repo.UpdateQuantity(ctx, userID, productID, quantity)
	if errors.Is(err, ErrLineNotFound) {
		return nil
	}
	return err
}

func (s *service) RemoveItem(ctx context.Context, userID, productID uint) error {
	_, err := s.repo.DeleteLine(ctx, userID, productID)
	return err
}

func (s *service) ListItems(ctx context.Context, userID uint) (*CartView, error) {
	items, err := s.repo.GetItems(ctx, userID)
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Subtotal)
	}

	return &CartView{Items: items, Total: total}, nil
}
