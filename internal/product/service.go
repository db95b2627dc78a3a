package product

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/patriciamaedppuaso/Elective4-ETR/internal/logger"
)

type Service interface {
	List(ctx context.Context, filter Filter, page int) (*ListResult, error)
	Get(ctx context.Context, id uint) (*Product, error)
	Brands(ctx context.Context) ([]string, error)
	Create(ctx context.Context, params CreateParams) (*Product, error)
	Update(ctx context.Context, id uint, params UpdateParams) error
	Delete(ctx context.Context, id uint) error
}

// pageSize is the catalog page size.
const pageSize = 20

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context, filter Filter, page int) (*ListResult, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "List"),
		zap.Int("page", page),
	)

	if page <= 0 {
		page = 1
	}

	products, total, err := s.repo.GetProducts(ctx, filter, pageSize, page)
	if err != nil {
		log.Error("failed to fetch products", zap.Error(err))
		return nil, err
	}

	return &ListResult{
		Products:   products,
		Total:      total,
		Page:       page,
		TotalPages: (total + pageSize - 1) / pageSize,
	}, nil
}

func (s *service) Get(ctx context.Context, id uint) (*Product, error) {
	return s.repo.GetProduct(ctx, id)
}

func (s *service) Brands(ctx context.Context) ([]string, error) {
	return s.repo.GetBrands(ctx)
}

func (s *service) Create(ctx context.Context, params CreateParams) (*Product, error) {
	if params.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidProduct)
	}
	if params.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price cannot be negative", ErrInvalidProduct)
	}
	if params.Stock < 0 {
		return nil, fmt.Errorf("%w: stock cannot be negative", ErrInvalidProduct)
	}
	if params.CategoryID == 0 {
		return nil, fmt.Errorf("%w: category is required", ErrInvalidProduct)
	}

	return s.repo.CreateProduct(ctx, params)
}

func (s *service) Update(ctx context.Context, id uint, params UpdateParams) error {
	if params.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidProduct)
	}
	if params.Price.IsNegative() {
		return fmt.Errorf("%w: price cannot be negative", ErrInvalidProduct)
	}
	if params.Stock < 0 {
		return fmt.Errorf("%w: stock cannot be negative", ErrInvalidProduct)
	}

	return s.repo.UpdateProduct(ctx, id, params)
}

func (s *service) Delete(ctx context.Context, id uint) error {
	return s.repo.DeleteProduct(ctx, id)
}
