package service

import (
	"context"
	"testing"

	"github.com/dapperDewan/Hoop-Hub-sub000/internal/domain"
	"github.com/dapperDewan/Hoop-Hub-sub000/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBudgetService_CanAfford(t *testing.T) {
	repo := mocks.NewMockOwnerRepo(t)
	svc := NewBudgetService(repo)

	repo.EXPECT().GetByID(mock.Anything, "o1").Return(&domain.Owner{ID: "o1", Budget: 500}, nil)

	ok, err := svc.CanAfford(context.Background(), "o1", 500)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.CanAfford(context.Background(), "o1", 501)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBudgetService_Charge_Success(t *testing.T) {
	repo := mocks.NewMockOwnerRepo(t)
	svc := NewBudgetService(repo)

	repo.EXPECT().Charge(mock.Anything, "o1", int64(300)).Return(int64(200), nil)

	remaining, err := svc.Charge(context.Background(), "o1", 300)

	require.NoError(t, err)
	assert.Equal(t, int64(200), remaining)
}

func TestBudgetService_Charge_Insufficient(t *testing.T) {
	repo := mocks.NewMockOwnerRepo(t)
	svc := NewBudgetService(repo)

	repo.EXPECT().Charge(mock.Anything, "o1", int64(9000)).Return(int64(0), domain.ErrInsufficientFunds)

	_, err := svc.Charge(context.Background(), "o1", 9000)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
}

func TestBudgetService_Charge_NegativeAmount(t *testing.T) {
	repo := mocks.NewMockOwnerRepo(t)
	svc := NewBudgetService(repo)

	_, err := svc.Charge(context.Background(), "o1", -1)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBudgetService_Credit_Success(t *testing.T) {
	repo := mocks.NewMockOwnerRepo(t)
	svc := NewBudgetService(repo)

	repo.EXPECT().Credit(mock.Anything, "o1", int64(100)).Return(int64(600), nil)

	balance, err := svc.Credit(context.Background(), "o1", 100)

	require.NoError(t, err)
	assert.Equal(t, int64(600), balance)
}

func TestBudgetService_Credit_NegativeAmount(t *testing.T) {
	repo := mocks.NewMockOwnerRepo(t)
	svc := NewBudgetService(repo)

	_, err := svc.Credit(context.Background(), "o1", -10)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}
