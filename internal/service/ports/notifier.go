package ports

import (
	"context"

	"github.com/dapperDewan/Hoop-Hub-sub000/internal/domain"
)

type AllocationNotifier interface {
	NotifyPurchaseCompleted(ctx context.Context, owner *domain.Owner, resource *domain.Resource, alloc *domain.Allocation)
	NotifyBookingApproved(ctx context.Context, owner *domain.Owner, resource *domain.Resource, alloc *domain.Allocation)
	NotifyBookingRejected(ctx context.Context, owner *domain.Owner, resource *domain.Resource)
}
