package ports

import (
	"context"

	"github.com/dapperDewan/Hoop-Hub-sub000/internal/domain"
)

type OwnerRepo interface {
	Create(ctx context.Context, o *domain.Owner) error
	GetByID(ctx context.Context, id string) (*domain.Owner, error)
	List(ctx context.Context) ([]*domain.Owner, error)

	// Charge and Credit are the only budget mutators. Both apply a single
	// guarded read-modify-write and return the new balance; Charge fails with
	// domain.ErrInsufficientFunds when amount exceeds the balance.
	Charge(ctx context.Context, ownerID string, amount int64) (int64, error)
	Credit(ctx context.Context, ownerID string, amount int64) (int64, error)
}
