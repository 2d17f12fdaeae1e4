package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/dapperDewan/Hoop-Hub-sub000/internal/domain"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

func newAllocationID() string { return uuid.New().String() }

type AllocationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewAllocationRepo(db *dbpg.DB) *AllocationRepository {
	return &AllocationRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

const allocationColumns = `id, resource_id, owner_id, kind, start_date, end_date, price_paid, status, created_at, updated_at`

func scanAllocation(row interface{ Scan(...any) error }) (*domain.Allocation, error) {
	var a domain.Allocation
	err := row.Scan(
		&a.ID, &a.ResourceID, &a.OwnerID, &a.Kind,
		&a.StartDate, &a.EndDate, &a.PricePaid, &a.Status,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AllocationRepository) GetByID(ctx context.Context, id string) (*domain.Allocation, error) {
	query := `SELECT ` + allocationColumns + `
			  FROM allocations
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get allocation: %w", err)
	}

	a, err := scanAllocation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAllocationNotFound
		}
		return nil, fmt.Errorf("scan allocation: %w", err)
	}

	return a, nil
}

func (r *AllocationRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Allocation, error) {
	query := `SELECT ` + allocationColumns + `
			  FROM allocations
			  WHERE owner_id = $1
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list allocations by owner: %w", err)
	}
	defer rows.Close()

	return collectAllocations(rows)
}

func (r *AllocationRepository) ListBookedByResource(ctx context.Context, resourceID string) ([]*domain.Allocation, error) {
	query := `SELECT ` + allocationColumns + `
			  FROM allocations
			  WHERE resource_id = $1 AND status = ANY($2)
			  ORDER BY start_date`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, resourceID, pq.Array(domain.BlockingStatuses))
	if err != nil {
		return nil, fmt.Errorf("list allocations by resource: %w", err)
	}
	defer rows.Close()

	return collectAllocations(rows)
}

func (r *AllocationRepository) ListActiveByOwnerAndKind(
	ctx context.Context,
	ownerID string,
	kind domain.ResourceKind,
	now time.Time,
) ([]*domain.Allocation, error) {
	query := `SELECT ` + allocationColumns + `
			  FROM allocations
			  WHERE owner_id = $1 AND kind = $2 AND status = $3 AND end_date >= $4
			  ORDER BY start_date`

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		ownerID, kind, domain.AllocationStatusBooked, now,
	)
	if err != nil {
		return nil, fmt.Errorf("list active allocations: %w", err)
	}
	defer rows.Close()

	return collectAllocations(rows)
}

func collectAllocations(rows *sql.Rows) ([]*domain.Allocation, error) {
	var res []*domain.Allocation
	for rows.Next() {
		a, err := scanAllocation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan allocation: %w", err)
		}
		res = append(res, a)
	}
	return res, rows.Err()
}

// CreatePurchase is the direct-purchase transaction. The owner row lock
// serializes the cap check across the owner's concurrent purchases, the
// resource row lock serializes racing buyers of the same resource; both
// checks and the insert commit as one unit. Owner is locked before resource,
// the same order ReplaceRoster uses.
func (r *AllocationRepository) CreatePurchase(ctx context.Context, a *domain.Allocation) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err = lockOwner(ctx, tx, a.OwnerID); err != nil {
		return err
	}

	if err = lockResource(ctx, tx, a.ResourceID); err != nil {
		return err
	}

	if err = checkNoOverlap(ctx, tx, a.ResourceID, "", a.StartDate, a.EndDate); err != nil {
		return err
	}

	if err = checkOwnerCaps(ctx, tx, a.OwnerID, a.Kind, a.StartDate, a.EndDate); err != nil {
		return err
	}

	if _, err = chargeOwner(ctx, tx, a.OwnerID, a.PricePaid); err != nil {
		return err
	}

	if err = insertAllocation(ctx, tx, a); err != nil {
		return err
	}

	if err = refreshResourceCache(ctx, tx, a.ResourceID, a.CreatedAt); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *AllocationRepository) CreatePending(ctx context.Context, a *domain.Allocation) error {
	query := `INSERT INTO allocations (id, resource_id, owner_id, kind, start_date, end_date, price_paid, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		a.ID, a.ResourceID, a.OwnerID, a.Kind,
		a.StartDate, a.EndDate, a.PricePaid, a.Status,
		a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			// FK нарушен: ресурс или владелец удалён между проверкой и вставкой
			if pgErr.Constraint == "allocations_owner_id_fkey" {
				return domain.ErrOwnerNotFound
			}
			return domain.ErrResourceNotFound
		}
		return fmt.Errorf("insert pending allocation: %w", err)
	}

	return nil
}

// Approve re-validates availability against allocations booked while this one
// sat pending, enforces the owner coach cap, charges the owner and flips the
// status, all inside one transaction.
func (r *AllocationRepository) Approve(ctx context.Context, id string, now time.Time) (*domain.Allocation, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	a, err := lockAllocation(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	if a.Status != domain.AllocationStatusPending {
		return nil, domain.ErrInvalidState
	}
	if a.EndDate.Before(now) {
		// окно заявки уже прошло, подтверждать нечего
		return nil, domain.ErrInvalidState
	}

	if err = lockOwner(ctx, tx, a.OwnerID); err != nil {
		return nil, err
	}

	if err = lockResource(ctx, tx, a.ResourceID); err != nil {
		return nil, err
	}

	// Пока заявка ждала, окно мог занять другой владелец
	if err = checkNoOverlap(ctx, tx, a.ResourceID, a.ID, a.StartDate, a.EndDate); err != nil {
		return nil, err
	}

	if err = checkOwnerCaps(ctx, tx, a.OwnerID, a.Kind, a.StartDate, a.EndDate); err != nil {
		return nil, err
	}

	if _, err = chargeOwner(ctx, tx, a.OwnerID, a.PricePaid); err != nil {
		return nil, err
	}

	query := `UPDATE allocations
			  SET status = $2, updated_at = now()
			  WHERE id = $1
			  RETURNING updated_at`
	if err = tx.QueryRowContext(ctx, query, a.ID, domain.AllocationStatusBooked).Scan(&a.UpdatedAt); err != nil {
		return nil, fmt.Errorf("approve allocation: %w", err)
	}
	a.Status = domain.AllocationStatusBooked

	if err = refreshResourceCache(ctx, tx, a.ResourceID, now); err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit approve: %w", err)
	}

	return a, nil
}

func (r *AllocationRepository) Reject(ctx context.Context, id string) (*domain.Allocation, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	a, err := lockAllocation(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	if a.Status != domain.AllocationStatusPending {
		return nil, domain.ErrInvalidState
	}

	query := `UPDATE allocations
			  SET status = $2, updated_at = now()
			  WHERE id = $1
			  RETURNING updated_at`
	if err = tx.QueryRowContext(ctx, query, a.ID, domain.AllocationStatusRejected).Scan(&a.UpdatedAt); err != nil {
		return nil, fmt.Errorf("reject allocation: %w", err)
	}
	a.Status = domain.AllocationStatusRejected

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit reject: %w", err)
	}

	return a, nil
}

// ReplaceRoster swaps the owner's whole player set as one transaction. The
// owner row lock serializes batches for the same owner; resource rows are
// locked in sorted id order so two concurrent batches cannot deadlock.
func (r *AllocationRepository) ReplaceRoster(
	ctx context.Context,
	ownerID string,
	resourceIDs []string,
	now time.Time,
) (*domain.RosterChange, error) {
	if len(resourceIDs) > domain.RosterCap {
		return nil, domain.ErrTooManyResources
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err = lockOwner(ctx, tx, ownerID); err != nil {
		return nil, err
	}

	requested := make(map[string]*domain.Resource, len(resourceIDs))
	ids := append([]string(nil), resourceIDs...)
	sort.Strings(ids)
	for _, id := range ids {
		if _, ok := requested[id]; ok {
			return nil, fmt.Errorf("%w: duplicate resource %s", domain.ErrValidation, id)
		}
		res, err := lockResourceRow(ctx, tx, id)
		if err != nil {
			return nil, err
		}
		if res.Kind != domain.KindPlayer {
			return nil, fmt.Errorf("%w: resource %s is not a player", domain.ErrValidation, id)
		}
		requested[id] = res
	}

	// Текущий состав игроков владельца
	held, err := listHeldPlayers(ctx, tx, ownerID, now)
	if err != nil {
		return nil, err
	}
	heldSet := make(map[string]struct{}, len(held))
	for _, id := range held {
		heldSet[id] = struct{}{}
	}

	// New acquisitions are checked against allocations, not the cache: a
	// booked window that has not started yet still blocks the batch.
	end := now.Add(domain.LockDuration)
	var totalCost int64
	for _, id := range ids {
		res := requested[id]
		if _, kept := heldSet[id]; kept {
			continue // already owned, free of charge
		}
		if err = checkNoOverlap(ctx, tx, res.ID, "", now, end); err != nil {
			return nil, err
		}
		totalCost += res.Price
	}

	remaining, err := chargeOwner(ctx, tx, ownerID, totalCost)
	if err != nil {
		return nil, err
	}

	// Release players dropped from the roster.
	keep := make(map[string]struct{}, len(requested))
	for id := range requested {
		keep[id] = struct{}{}
	}
	for _, id := range held {
		if _, ok := keep[id]; ok {
			continue
		}
		if err = releaseResource(ctx, tx, id, ownerID, now); err != nil {
			return nil, err
		}
	}

	// Acquire the new players with a fresh 30-day lock.
	for _, id := range ids {
		if _, kept := heldSet[id]; kept {
			continue
		}
		res := requested[id]
		a := &domain.Allocation{
			ID:         newAllocationID(),
			ResourceID: res.ID,
			OwnerID:    ownerID,
			Kind:       domain.KindPlayer,
			StartDate:  now,
			EndDate:    end,
			PricePaid:  res.Price,
			Status:     domain.AllocationStatusBooked,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if err = insertAllocation(ctx, tx, a); err != nil {
			return nil, err
		}
		if err = refreshResourceCache(ctx, tx, res.ID, now); err != nil {
			return nil, err
		}
	}

	// Итоговый активный состав
	query := `SELECT ` + allocationColumns + `
			  FROM allocations
			  WHERE owner_id = $1 AND kind = $2 AND status = $3 AND end_date >= $4
			  ORDER BY start_date`
	rows, err := tx.QueryContext(ctx, query, ownerID, domain.KindPlayer, domain.AllocationStatusBooked, now)
	if err != nil {
		return nil, fmt.Errorf("list roster: %w", err)
	}
	allocations, err := collectAllocations(rows)
	rows.Close()
	if err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit roster: %w", err)
	}

	return &domain.RosterChange{
		Allocations:     allocations,
		TotalCost:       totalCost,
		RemainingBudget: remaining,
	}, nil
}

// --- transaction helpers ---

func lockResource(ctx context.Context, tx *sql.Tx, resourceID string) error {
	var id string
	err := tx.QueryRowContext(ctx,
		`SELECT id FROM resources WHERE id = $1 FOR UPDATE`, resourceID,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrResourceNotFound
		}
		return fmt.Errorf("lock resource: %w", err)
	}
	return nil
}

func lockResourceRow(ctx context.Context, tx *sql.Tx, resourceID string) (*domain.Resource, error) {
	row := tx.QueryRowContext(ctx,
		`SELECT `+resourceColumns+` FROM resources WHERE id = $1 FOR UPDATE`, resourceID,
	)
	res, err := scanResource(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrResourceNotFound
		}
		return nil, fmt.Errorf("lock resource: %w", err)
	}
	return res, nil
}

func lockOwner(ctx context.Context, tx *sql.Tx, ownerID string) error {
	var id string
	err := tx.QueryRowContext(ctx,
		`SELECT id FROM owners WHERE id = $1 FOR UPDATE`, ownerID,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrOwnerNotFound
		}
		return fmt.Errorf("lock owner: %w", err)
	}
	return nil
}

func lockAllocation(ctx context.Context, tx *sql.Tx, id string) (*domain.Allocation, error) {
	row := tx.QueryRowContext(ctx,
		`SELECT `+allocationColumns+` FROM allocations WHERE id = $1 FOR UPDATE`, id,
	)
	a, err := scanAllocation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAllocationNotFound
		}
		return nil, fmt.Errorf("lock allocation: %w", err)
	}
	return a, nil
}

// checkNoOverlap rejects when any booked allocation for the resource overlaps
// [start, end] inclusively. excludeID skips the allocation being approved.
func checkNoOverlap(ctx context.Context, tx *sql.Tx, resourceID, excludeID string, start, end time.Time) error {
	if excludeID == "" {
		excludeID = uuid.Nil.String() // колонка uuid, пустая строка не кастуется
	}

	query := `SELECT owner_id, end_date
			  FROM allocations
			  WHERE resource_id = $1
			    AND id <> $2
			    AND status = $3
			    AND NOT (end_date < $4 OR start_date > $5)
			  ORDER BY end_date DESC
			  LIMIT 1`

	var holderID string
	var lockedUntil time.Time
	err := tx.QueryRowContext(
		ctx, query,
		resourceID, excludeID, domain.AllocationStatusBooked, start, end,
	).Scan(&holderID, &lockedUntil)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("check overlap: %w", err)
	}

	return &domain.ResourceLockedError{
		ResourceID:  resourceID,
		HolderID:    holderID,
		LockedUntil: lockedUntil,
	}
}

// checkOwnerCaps enforces the per-kind concurrency caps: at most one coach,
// at most RosterCap players held at once.
func checkOwnerCaps(ctx context.Context, tx *sql.Tx, ownerID string, kind domain.ResourceKind, start, end time.Time) error {
	query := `SELECT COUNT(*)
			  FROM allocations
			  WHERE owner_id = $1
			    AND kind = $2
			    AND status = $3
			    AND NOT (end_date < $4 OR start_date > $5)`

	var count int
	err := tx.QueryRowContext(
		ctx, query,
		ownerID, kind, domain.AllocationStatusBooked, start, end,
	).Scan(&count)
	if err != nil {
		return fmt.Errorf("count owner allocations: %w", err)
	}

	switch kind {
	case domain.KindCoach:
		if count >= domain.CoachCap {
			return domain.ErrOwnerAlreadyHolds
		}
	case domain.KindPlayer:
		if count >= domain.RosterCap {
			return domain.ErrTooManyResources
		}
	}

	return nil
}

func insertAllocation(ctx context.Context, tx *sql.Tx, a *domain.Allocation) error {
	query := `INSERT INTO allocations (id, resource_id, owner_id, kind, start_date, end_date, price_paid, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := tx.ExecContext(
		ctx, query,
		a.ID, a.ResourceID, a.OwnerID, a.Kind,
		a.StartDate, a.EndDate, a.PricePaid, a.Status,
		a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert allocation: %w", err)
	}
	return nil
}

// refreshResourceCache rewrites the denormalized owner/lock columns from the
// allocation active at now. A future-dated booking must not evict the current
// holder; when nothing is active both columns go NULL.
func refreshResourceCache(ctx context.Context, tx *sql.Tx, resourceID string, now time.Time) error {
	query := `UPDATE resources
			  SET current_owner_id = (SELECT owner_id
									  FROM allocations
									  WHERE resource_id = $1 AND status = $2
										AND start_date <= $3 AND end_date >= $3
									  ORDER BY end_date DESC
									  LIMIT 1),
				  locked_until = (SELECT end_date
								  FROM allocations
								  WHERE resource_id = $1 AND status = $2
									AND start_date <= $3 AND end_date >= $3
								  ORDER BY end_date DESC
								  LIMIT 1),
				  updated_at = now()
			  WHERE id = $1`
	if _, err := tx.ExecContext(ctx, query, resourceID, domain.AllocationStatusBooked, now); err != nil {
		return fmt.Errorf("refresh resource cache: %w", err)
	}
	return nil
}

func releaseResource(ctx context.Context, tx *sql.Tx, resourceID, ownerID string, now time.Time) error {
	query := `UPDATE allocations
			  SET status = $4, updated_at = now()
			  WHERE resource_id = $1 AND owner_id = $2 AND status = $3 AND end_date >= $5`
	_, err := tx.ExecContext(
		ctx, query,
		resourceID, ownerID, domain.AllocationStatusBooked,
		domain.AllocationStatusCancelled, now,
	)
	if err != nil {
		return fmt.Errorf("cancel allocation: %w", err)
	}

	return refreshResourceCache(ctx, tx, resourceID, now)
}

func listHeldPlayers(ctx context.Context, tx *sql.Tx, ownerID string, now time.Time) ([]string, error) {
	query := `SELECT id
			  FROM resources
			  WHERE current_owner_id = $1 AND kind = $2 AND locked_until > $3
			  ORDER BY id
			  FOR UPDATE`

	rows, err := tx.QueryContext(ctx, query, ownerID, domain.KindPlayer, now)
	if err != nil {
		return nil, fmt.Errorf("list held players: %w", err)
	}
	defer rows.Close()

	var res []string
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan held player: %w", err)
		}
		res = append(res, id)
	}

	return res, rows.Err()
}
