package service

import (
	"context"
	"fmt"
	"time"

	"github.com/dapperDewan/Hoop-Hub-sub000/internal/domain"
	"github.com/dapperDewan/Hoop-Hub-sub000/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// SweeperService reclaims resources whose lock period has elapsed. It only
// clears the cached owner/lock columns; the underlying allocations stay as
// history, expiry being a derived fact. Every reclaim is idempotent.
type SweeperService struct {
	resourceRepo ports.ResourceRepo
	logger       logger.Logger
	now          func() time.Time
}

func NewSweeperService(resourceRepo ports.ResourceRepo, log logger.Logger, now func() time.Time) *SweeperService {
	if now == nil {
		now = time.Now
	}
	return &SweeperService{
		resourceRepo: resourceRepo,
		logger:       log,
		now:          now,
	}
}

func (s *SweeperService) ReclaimAll(ctx context.Context) ([]*domain.Resource, error) {
	reclaimed, err := s.resourceRepo.ReclaimExpired(ctx, s.now().UTC())
	if err != nil {
		return nil, fmt.Errorf("reclaim expired: %w", err)
	}

	if len(reclaimed) > 0 {
		s.logger.Info("expired locks reclaimed",
			logger.Int("count", len(reclaimed)),
		)
	}

	return reclaimed, nil
}

func (s *SweeperService) ReclaimResource(ctx context.Context, resourceID string) error {
	return s.resourceRepo.ReclaimExpiredByID(ctx, resourceID, s.now().UTC())
}

func (s *SweeperService) ReclaimOwner(ctx context.Context, ownerID string) error {
	return s.resourceRepo.ReclaimExpiredByOwner(ctx, ownerID, s.now().UTC())
}
