package ports

import (
	"context"
	"time"

	"github.com/dapperDewan/Hoop-Hub-sub000/internal/domain"
)

type AllocationRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Allocation, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Allocation, error)
	ListBookedByResource(ctx context.Context, resourceID string) ([]*domain.Allocation, error)
	ListActiveByOwnerAndKind(ctx context.Context, ownerID string, kind domain.ResourceKind, now time.Time) ([]*domain.Allocation, error)

	// CreatePurchase runs the direct-purchase transaction: lock the resource
	// row, re-check overlap and owner caps, charge the owner, insert the
	// booked allocation and refresh the resource cache as one unit.
	CreatePurchase(ctx context.Context, a *domain.Allocation) error

	// CreatePending inserts an approval-gated request with no budget effect.
	CreatePending(ctx context.Context, a *domain.Allocation) error

	// Approve transitions pending -> booked after re-checking overlap and the
	// owner coach cap, charging the owner in the same transaction.
	Approve(ctx context.Context, id string, now time.Time) (*domain.Allocation, error)

	// Reject transitions pending -> rejected with no budget effect.
	Reject(ctx context.Context, id string) (*domain.Allocation, error)

	// ReplaceRoster swaps an owner's whole player set in one transaction:
	// releases dropped resources, acquires new ones, charges the total.
	ReplaceRoster(ctx context.Context, ownerID string, resourceIDs []string, now time.Time) (*domain.RosterChange, error)
}
