package service

import (
	"context"
	"fmt"

	"github.com/dapperDewan/Hoop-Hub-sub000/internal/domain"
	"github.com/dapperDewan/Hoop-Hub-sub000/internal/service/ports"
)

// BudgetService is the budget authority: every balance read or mutation goes
// through it, and the underlying repository applies mutations as single
// guarded updates.
type BudgetService struct {
	ownerRepo ports.OwnerRepo
}

func NewBudgetService(ownerRepo ports.OwnerRepo) *BudgetService {
	return &BudgetService{ownerRepo: ownerRepo}
}

func (s *BudgetService) CanAfford(ctx context.Context, ownerID string, amount int64) (bool, error) {
	owner, err := s.ownerRepo.GetByID(ctx, ownerID)
	if err != nil {
		return false, fmt.Errorf("get owner: %w", err)
	}

	return owner.Budget >= amount, nil
}

func (s *BudgetService) Charge(ctx context.Context, ownerID string, amount int64) (int64, error) {
	if amount < 0 {
		return 0, fmt.Errorf("%w: charge amount must be non-negative", domain.ErrValidation)
	}

	return s.ownerRepo.Charge(ctx, ownerID, amount)
}

// Credit raises the balance; it serves both compensation refunds and admin
// budget grants.
func (s *BudgetService) Credit(ctx context.Context, ownerID string, amount int64) (int64, error) {
	if amount < 0 {
		return 0, fmt.Errorf("%w: credit amount must be non-negative", domain.ErrValidation)
	}

	return s.ownerRepo.Credit(ctx, ownerID, amount)
}
