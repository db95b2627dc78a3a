package product

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetProducts(ctx context.Context, filter Filter, limit, page int) ([]*Product, int, error) {
	args := m.Called(ctx, filter, limit, page)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*Product), args.Int(1), args.Error(2)
}

func (m *MockRepository) GetProduct(ctx context.Context, id uint) (*Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Product), args.Error(1)
}

func (m *MockRepository) GetBrands(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockRepository) CreateProduct(ctx context.Context, params CreateParams) (*Product, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Product), args.Error(1)
}

func (m *MockRepository) UpdateProduct(ctx context.Context, id uint, params UpdateParams) error {
	args := m.Called(ctx, id, params)
	return args.Error(0)
}

func (m *MockRepository) DeleteProduct(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestService_List(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo)

	products := []*Product{{ID: 1, Name: "Keyboard"}}
	repo.On("GetProducts", mock.Anything, Filter{}, pageSize, 1).Return(products, 41, nil)

	res, err := svc.List(context.Background(), Filter{}, 0) // page normalized to 1
	require.NoError(t, err)
	assert.Equal(t, 41, res.Total)
	assert.Equal(t, 3, res.TotalPages)
	assert.Equal(t, 1, res.Page)
	repo.AssertExpectations(t)
}

func TestService_Create_Validation(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo)

	t.Run("missing name", func(t *testing.T) {
		_, err := svc.Create(context.Background(), CreateParams{CategoryID: 1})
		assert.ErrorIs(t, err, ErrInvalidProduct)
	})

	t.Run("negative price", func(t *testing.T) {
		_, err := svc.Create(context.Background(), CreateParams{
			Name: "X", CategoryID: 1, Price: decimal.NewFromInt(-5),
		})
		assert.ErrorIs(t, err, ErrInvalidProduct)
	})

	t.Run("negative stock", func(t *testing.T) {
		_, err := svc.Create(context.Background(), CreateParams{
			Name: "X", CategoryID: 1, Stock: -1,
		})
		assert.ErrorIs(t, err, ErrInvalidProduct)
	})

	t.Run("missing category", func(t *testing.T) {
		_, err := svc.Create(context.Background(), CreateParams{Name: "X"})
		assert.ErrorIs(t, err, ErrInvalidProduct)
	})

	// repo must never be touched on validation failure
	repo.AssertNotCalled(t, "CreateProduct", mock.Anything, mock.Anything)
}

func TestService_Create_Success(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo)

	params := CreateParams{Name: "Mouse", CategoryID: 2, Price: decimal.NewFromInt(499), Stock: 5}
	repo.On("CreateProduct", mock.Anything, params).Return(&Product{ID: 9, Name: "Mouse"}, nil)

	p, err := svc.Create(context.Background(), params)
	require.NoError(t, err)
	assert.Equal(t, uint(9), p.ID)
	repo.AssertExpectations(t)
}

func TestService_Update_Validation(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo)

	err := svc.Update(context.Background(), 1, UpdateParams{Name: ""})
	assert.ErrorIs(t, err, ErrInvalidProduct)
	repo.AssertNotCalled(t, "UpdateProduct", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Delete_PassesThroughReferenceError(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo)

	repo.On("DeleteProduct", mock.Anything, uint(3)).Return(ErrProductReferenced)

	err := svc.Delete(context.Background(), 3)
	assert.ErrorIs(t, err, ErrProductReferenced)
}
