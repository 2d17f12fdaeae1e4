package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dapperDewan/Hoop-Hub-sub000/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type OwnerRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewOwnerRepo(db *dbpg.DB) *OwnerRepository {
	return &OwnerRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// rowQuerier is satisfied by both *sql.DB and *sql.Tx, so the budget mutators
// below stay the single place that writes owners.budget.
type rowQuerier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// chargeOwner is the guarded read-modify-write for debits. The WHERE clause
// rejects overdrafts, so two concurrent charges can never both read a stale
// balance.
func chargeOwner(ctx context.Context, q rowQuerier, ownerID string, amount int64) (int64, error) {
	query := `UPDATE owners
			  SET budget = budget - $2, updated_at = now()
			  WHERE id = $1 AND budget >= $2
			  RETURNING budget`

	var balance int64
	if err := q.QueryRowContext(ctx, query, ownerID, amount).Scan(&balance); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Различаем: владелец не найден или не хватает бюджета
			var exists bool
			checkErr := q.QueryRowContext(ctx,
				`SELECT EXISTS (SELECT 1 FROM owners WHERE id = $1)`, ownerID,
			).Scan(&exists)
			if checkErr != nil {
				return 0, fmt.Errorf("check owner: %w", checkErr)
			}
			if !exists {
				return 0, domain.ErrOwnerNotFound
			}
			return 0, domain.ErrInsufficientFunds
		}
		return 0, fmt.Errorf("charge owner: %w", err)
	}

	return balance, nil
}

func creditOwner(ctx context.Context, q rowQuerier, ownerID string, amount int64) (int64, error) {
	query := `UPDATE owners
			  SET budget = budget + $2, updated_at = now()
			  WHERE id = $1
			  RETURNING budget`

	var balance int64
	if err := q.QueryRowContext(ctx, query, ownerID, amount).Scan(&balance); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, domain.ErrOwnerNotFound
		}
		return 0, fmt.Errorf("credit owner: %w", err)
	}

	return balance, nil
}

func (r *OwnerRepository) Create(ctx context.Context, o *domain.Owner) error {
	query := `INSERT INTO owners (id, display_name, budget, telegram_chat_id, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`
	now := time.Now().UTC()
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		o.ID, o.DisplayName, o.Budget, o.TelegramChatID, now, now,
	)
	if err != nil {
		return fmt.Errorf("insert owner: %w", err)
	}

	return nil
}

func (r *OwnerRepository) GetByID(ctx context.Context, id string) (*domain.Owner, error) {
	query := `SELECT id, display_name, budget, telegram_chat_id, created_at, updated_at
			  FROM owners
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get owner: %w", err)
	}

	var o domain.Owner
	if err = row.Scan(&o.ID, &o.DisplayName, &o.Budget, &o.TelegramChatID, &o.CreatedAt, &o.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrOwnerNotFound
		}
		return nil, fmt.Errorf("scan owner: %w", err)
	}

	return &o, nil
}

func (r *OwnerRepository) List(ctx context.Context) ([]*domain.Owner, error) {
	query := `SELECT id, display_name, budget, telegram_chat_id, created_at, updated_at
			  FROM owners
			  ORDER BY display_name`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list owners: %w", err)
	}
	defer rows.Close()

	var res []*domain.Owner
	for rows.Next() {
		var o domain.Owner
		if err = rows.Scan(&o.ID, &o.DisplayName, &o.Budget, &o.TelegramChatID, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan owner: %w", err)
		}
		res = append(res, &o)
	}

	return res, rows.Err()
}

func (r *OwnerRepository) Charge(ctx context.Context, ownerID string, amount int64) (int64, error) {
	return chargeOwner(ctx, r.db.Master, ownerID, amount)
}

func (r *OwnerRepository) Credit(ctx context.Context, ownerID string, amount int64) (int64, error) {
	return creditOwner(ctx, r.db.Master, ownerID, amount)
}
