package ports

import (
	"context"
	"time"

	"github.com/dapperDewan/Hoop-Hub-sub000/internal/domain"
)

type ResourceRepo interface {
	Create(ctx context.Context, r *domain.Resource) error
	GetByID(ctx context.Context, id string) (*domain.Resource, error)
	List(ctx context.Context, kind domain.ResourceKind) ([]*domain.Resource, error)
	ListHeldByOwner(ctx context.Context, ownerID string, now time.Time) ([]*domain.Resource, error)

	// Reclaim* clear expired owner/lock cache columns. All are idempotent.
	ReclaimExpired(ctx context.Context, now time.Time) ([]*domain.Resource, error)
	ReclaimExpiredByID(ctx context.Context, resourceID string, now time.Time) error
	ReclaimExpiredByOwner(ctx context.Context, ownerID string, now time.Time) error
}
