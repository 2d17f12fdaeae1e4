package service

import (
	"context"
	"fmt"

	"github.com/dapperDewan/Hoop-Hub-sub000/internal/domain"
	"github.com/dapperDewan/Hoop-Hub-sub000/internal/service/ports"
	"github.com/google/uuid"
)

type OwnerService struct {
	repo ports.OwnerRepo
}

func NewOwnerService(repo ports.OwnerRepo) *OwnerService {
	return &OwnerService{repo: repo}
}

func (s *OwnerService) Create(ctx context.Context, input domain.CreateOwnerInput) (*domain.Owner, error) {
	if input.DisplayName == "" {
		return nil, fmt.Errorf("%w: display_name is required", domain.ErrValidation)
	}
	if input.InitialBudget < 0 {
		return nil, fmt.Errorf("%w: initial budget must be non-negative", domain.ErrValidation)
	}

	owner := &domain.Owner{
		ID:             uuid.New().String(),
		DisplayName:    input.DisplayName,
		Budget:         input.InitialBudget,
		TelegramChatID: input.TelegramChatID,
	}

	if err := s.repo.Create(ctx, owner); err != nil {
		return nil, fmt.Errorf("create owner: %w", err)
	}

	return owner, nil
}

func (s *OwnerService) GetByID(ctx context.Context, id string) (*domain.Owner, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *OwnerService) List(ctx context.Context) ([]*domain.Owner, error) {
	return s.repo.List(ctx)
}
