package inventory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) AdjustStock(ctx context.Context, input AdjustInput) (*LogEntry, error) {
	args := m.Called(ctx, input)
	if entry, ok := args.Get(0).(*LogEntry); ok {
		return entry, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepository) GetLogs(ctx context.Context) ([]*LogEntry, error) {
	args := m.Called(ctx)
	if entries, ok := args.Get(0).([]*LogEntry); ok {
		return entries, args.Error(1)
	}
	return nil, args.Error(1)
}

func TestService_Adjust(t *testing.T) {
	ctx := context.Background()

	t.Run("valid adjustment delegates", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		input := AdjustInput{ProductID: 8, ChangeType: ChangeAdd, Quantity: 5, Remarks: "restock"}
		repo.On("AdjustStock", ctx, input).
			Return(&LogEntry{ID: 1, PreviousStock: 10, NewStock: 15}, nil)

		entry, err := svc.Adjust(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, 15, entry.NewStock)
		repo.AssertExpectations(t)
	})

	t.Run("unknown change type never reaches the repository", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		_, err := svc.Adjust(ctx, AdjustInput{ProductID: 8, ChangeType: "TRANSFER", Quantity: 1})
		assert.ErrorIs(t, err, ErrInvalidChangeType)
		repo.AssertNotCalled(t, "AdjustStock", mock.Anything, mock.Anything)
	})

	t.Run("negative quantity is rejected", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		_, err := svc.Adjust(ctx, AdjustInput{ProductID: 8, ChangeType: ChangeRemove, Quantity: -1})
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})

	t.Run("zero quantity only valid for adjust", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		_, err := svc.Adjust(ctx, AdjustInput{ProductID: 8, ChangeType: ChangeAdd, Quantity: 0})
		assert.ErrorIs(t, err, ErrInvalidQuantity)

		input := AdjustInput{ProductID: 8, ChangeType: ChangeAdjust, Quantity: 0}
		repo.On("AdjustStock", ctx, input).
			Return(&LogEntry{ID: 2, PreviousStock: 10, NewStock: 0}, nil)

		entry, err := svc.Adjust(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, 0, entry.NewStock)
	})
}

func TestService_ListLogs(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo)

	repo.On("GetLogs", mock.Anything).
		Return([]*LogEntry{{ID: 3, ProductName: "Keyboard"}}, nil)

	entries, err := svc.ListLogs(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Keyboard", entries[0].ProductName)
}
