package inventory

import (
	"context"

	"go.uber.org/zap"

	"github.com/patriciamaedppuaso/Elective4-ETR/internal/logger"
)

type Service interface {
	Adjust(ctx context.Context, input AdjustInput) (*LogEntry, error)
	ListLogs(ctx context.Context) ([]*LogEntry, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Adjust validates the request before touching the stock counter. ADD and
// REMOVE need a positive quantity; ADJUST accepts zero as a valid new level.
func (s *service) Adjust(ctx context.Context, input AdjustInput) (*LogEntry, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Adjust"),
		zap.Uint("product_id", input.ProductID),
		zap.String("change_type", string(input.ChangeType)),
	)

	if !input.ChangeType.Valid() {
		log.Warn("unknown change type")
		return nil, ErrInvalidChangeType
	}

	if input.Quantity < 0 || (input.Quantity == 0 && input.ChangeType != ChangeAdjust) {
		log.Warn("rejected quantity", zap.Int("quantity", input.Quantity))
		return nil, ErrInvalidQuantity
	}

	entry, err := s.repo.AdjustStock(ctx, input)
	if err != nil {
		log.Warn("adjustment failed", zap.Error(err))
		return nil, err
	}

	return entry, nil
}

func (s *service) ListLogs(ctx context.Context) ([]*LogEntry, error) {
	return s.repo.GetLogs(ctx)
}
