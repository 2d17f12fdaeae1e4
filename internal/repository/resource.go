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

type ResourceRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewResourceRepo(db *dbpg.DB) *ResourceRepository {
	return &ResourceRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

const resourceColumns = `id, kind, name, price, current_owner_id, locked_until, created_at, updated_at`

func scanResource(row interface{ Scan(...any) error }) (*domain.Resource, error) {
	var r domain.Resource
	err := row.Scan(
		&r.ID, &r.Kind, &r.Name, &r.Price,
		&r.CurrentOwnerID, &r.LockedUntil, &r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (r *ResourceRepository) Create(ctx context.Context, res *domain.Resource) error {
	query := `INSERT INTO resources (id, kind, name, price, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`
	now := time.Now().UTC()
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		res.ID, res.Kind, res.Name, res.Price, now, now,
	)
	if err != nil {
		return fmt.Errorf("insert resource: %w", err)
	}

	return nil
}

func (r *ResourceRepository) GetByID(ctx context.Context, id string) (*domain.Resource, error) {
	query := `SELECT ` + resourceColumns + `
			  FROM resources
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get resource: %w", err)
	}

	res, err := scanResource(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrResourceNotFound
		}
		return nil, fmt.Errorf("scan resource: %w", err)
	}

	return res, nil
}

// List returns resources, optionally filtered by kind (empty kind = all).
func (r *ResourceRepository) List(ctx context.Context, kind domain.ResourceKind) ([]*domain.Resource, error) {
	query := `SELECT ` + resourceColumns + `
			  FROM resources
			  WHERE ($1 = '' OR kind = $1)
			  ORDER BY name`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, string(kind))
	if err != nil {
		return nil, fmt.Errorf("list resources: %w", err)
	}
	defer rows.Close()

	var res []*domain.Resource
	for rows.Next() {
		item, err := scanResource(rows)
		if err != nil {
			return nil, fmt.Errorf("scan resource: %w", err)
		}
		res = append(res, item)
	}

	return res, rows.Err()
}

func (r *ResourceRepository) ListHeldByOwner(ctx context.Context, ownerID string, now time.Time) ([]*domain.Resource, error) {
	query := `SELECT ` + resourceColumns + `
			  FROM resources
			  WHERE current_owner_id = $1 AND locked_until > $2
			  ORDER BY name`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, ownerID, now)
	if err != nil {
		return nil, fmt.Errorf("list held resources: %w", err)
	}
	defer rows.Close()

	var res []*domain.Resource
	for rows.Next() {
		item, err := scanResource(rows)
		if err != nil {
			return nil, fmt.Errorf("scan resource: %w", err)
		}
		res = append(res, item)
	}

	return res, rows.Err()
}

// ReclaimExpired clears the owner/lock cache on every resource whose lock has
// elapsed and returns what was reclaimed, then pulls any booking whose window
// has since begun into the cache. Running it again is a no-op.
func (r *ResourceRepository) ReclaimExpired(ctx context.Context, now time.Time) ([]*domain.Resource, error) {
	query := `UPDATE resources
			  SET current_owner_id = NULL, locked_until = NULL, updated_at = now()
			  WHERE locked_until IS NOT NULL AND locked_until <= $1
			  RETURNING ` + resourceColumns

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, now)
	if err != nil {
		return nil, fmt.Errorf("reclaim expired: %w", err)
	}
	defer rows.Close()

	var res []*domain.Resource
	for rows.Next() {
		item, err := scanResource(rows)
		if err != nil {
			return nil, fmt.Errorf("scan reclaimed resource: %w", err)
		}
		res = append(res, item)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if err = r.promoteActive(ctx, now, "", ""); err != nil {
		return nil, err
	}

	return res, nil
}

func (r *ResourceRepository) ReclaimExpiredByID(ctx context.Context, resourceID string, now time.Time) error {
	query := `UPDATE resources
			  SET current_owner_id = NULL, locked_until = NULL, updated_at = now()
			  WHERE id = $1 AND locked_until IS NOT NULL AND locked_until <= $2`

	if _, err := r.db.ExecWithRetry(ctx, r.strategy, query, resourceID, now); err != nil {
		return fmt.Errorf("reclaim resource: %w", err)
	}

	return r.promoteActive(ctx, now, resourceID, "")
}

func (r *ResourceRepository) ReclaimExpiredByOwner(ctx context.Context, ownerID string, now time.Time) error {
	query := `UPDATE resources
			  SET current_owner_id = NULL, locked_until = NULL, updated_at = now()
			  WHERE current_owner_id = $1 AND locked_until IS NOT NULL AND locked_until <= $2`

	if _, err := r.db.ExecWithRetry(ctx, r.strategy, query, ownerID, now); err != nil {
		return fmt.Errorf("reclaim owner resources: %w", err)
	}

	return r.promoteActive(ctx, now, "", ownerID)
}

// promoteActive syncs the cache columns with bookings active at now. The
// cache is only ever written from the allocations table, never invented: a
// purchase booked for a future window enters the cache here once the window
// starts. Empty resourceID/ownerID mean no filter.
func (r *ResourceRepository) promoteActive(ctx context.Context, now time.Time, resourceID, ownerID string) error {
	query := `UPDATE resources r
			  SET current_owner_id = a.owner_id, locked_until = a.end_date, updated_at = now()
			  FROM allocations a
			  WHERE a.resource_id = r.id
			    AND a.status = $1
			    AND a.start_date <= $2 AND a.end_date >= $2
			    AND ($3 = '' OR r.id::text = $3)
			    AND ($4 = '' OR a.owner_id::text = $4)
			    AND (r.current_owner_id IS DISTINCT FROM a.owner_id
			         OR r.locked_until IS DISTINCT FROM a.end_date)`

	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		domain.AllocationStatusBooked, now, resourceID, ownerID,
	)
	if err != nil {
		return fmt.Errorf("promote active allocations: %w", err)
	}

	return nil
}
