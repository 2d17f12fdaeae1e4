package scheduler

import (
	"context"
	"time"

	"github.com/dapperDewan/Hoop-Hub-sub000/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type lockReclaimer interface {
	ReclaimAll(ctx context.Context) ([]*domain.Resource, error)
}

// Scheduler periodically reclaims expired resource locks. Reads already sweep
// lazily; the ticker keeps availability fresh for paths that never read.
type Scheduler struct {
	sweeper  lockReclaimer
	interval time.Duration
	logger   logger.Logger
}

func New(sweeper lockReclaimer, interval time.Duration, logger logger.Logger) *Scheduler {
	return &Scheduler{
		sweeper:  sweeper,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	reclaimed, err := s.sweeper.ReclaimAll(ctx)
	if err != nil {
		s.logger.Error("failed to reclaim expired locks",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, r := range reclaimed {
		s.logger.Info("lock expired",
			logger.String("resource_id", r.ID),
			logger.String("name", r.Name),
		)
	}
}
