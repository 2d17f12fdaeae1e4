package service

import (
	"context"
	"fmt"
	"time"

	"github.com/dapperDewan/Hoop-Hub-sub000/internal/domain"
	"github.com/dapperDewan/Hoop-Hub-sub000/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

type ResourceService struct {
	repo    ports.ResourceRepo
	sweeper *SweeperService
	now     func() time.Time
}

func NewResourceService(repo ports.ResourceRepo, log logger.Logger, now func() time.Time) *ResourceService {
	if now == nil {
		now = time.Now
	}
	return &ResourceService{
		repo:    repo,
		sweeper: NewSweeperService(repo, log, now),
		now:     now,
	}
}

func (s *ResourceService) Create(ctx context.Context, input domain.CreateResourceInput) (*domain.Resource, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.Price < 0 {
		return nil, fmt.Errorf("%w: price must be non-negative", domain.ErrValidation)
	}
	if input.Kind != domain.KindPlayer && input.Kind != domain.KindCoach {
		return nil, fmt.Errorf("%w: kind must be player or coach", domain.ErrValidation)
	}

	resource := &domain.Resource{
		ID:    uuid.New().String(),
		Kind:  input.Kind,
		Name:  input.Name,
		Price: input.Price,
	}

	if err := s.repo.Create(ctx, resource); err != nil {
		return nil, fmt.Errorf("create resource: %w", err)
	}

	return resource, nil
}

// List sweeps first so no resource shows up as locked past its window.
func (s *ResourceService) List(ctx context.Context, kind domain.ResourceKind) ([]*domain.Resource, error) {
	if kind != "" && kind != domain.KindPlayer && kind != domain.KindCoach {
		return nil, fmt.Errorf("%w: kind must be player or coach", domain.ErrValidation)
	}

	if _, err := s.sweeper.ReclaimAll(ctx); err != nil {
		return nil, err
	}

	return s.repo.List(ctx, kind)
}

func (s *ResourceService) GetAvailability(ctx context.Context, resourceID string) (*domain.ResourceAvailability, error) {
	if err := s.sweeper.ReclaimResource(ctx, resourceID); err != nil {
		return nil, fmt.Errorf("reclaim resource: %w", err)
	}

	resource, err := s.repo.GetByID(ctx, resourceID)
	if err != nil {
		return nil, err
	}

	availability := &domain.ResourceAvailability{
		ResourceID: resource.ID,
		Available:  !resource.Locked(s.now().UTC()),
	}
	if !availability.Available {
		availability.CurrentOwnerID = resource.CurrentOwnerID
		availability.LockedUntil = resource.LockedUntil
	}

	return availability, nil
}
