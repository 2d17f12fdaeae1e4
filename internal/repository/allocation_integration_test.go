//go:build integration

package repository

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/dapperDewan/Hoop-Hub-sub000/internal/domain"
	"github.com/google/uuid"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/wb-go/wbf/dbpg"
)

// setupTestDB starts a disposable PostgreSQL container, applies the
// migrations and returns a connected pool. The container is terminated via
// t.Cleanup.
func setupTestDB(t *testing.T) *dbpg.DB {
	t.Helper()

	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("rosterledger"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, container.Terminate(ctx)) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	mdb, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	require.NoError(t, goose.Up(mdb, "../../migrations"))
	require.NoError(t, mdb.Close())

	db, err := dbpg.New(dsn, nil, &dbpg.Options{MaxOpenConns: 5, MaxIdleConns: 2})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Master.Close() })

	return db
}

func insertOwner(t *testing.T, db *dbpg.DB, budget int64) string {
	t.Helper()
	id := uuid.New().String()
	_, err := db.Master.Exec(
		`INSERT INTO owners (id, display_name, budget) VALUES ($1, $2, $3)`,
		id, "owner-"+id[:8], budget,
	)
	require.NoError(t, err)
	return id
}

func insertResource(t *testing.T, db *dbpg.DB, kind domain.ResourceKind, price int64) string {
	t.Helper()
	id := uuid.New().String()
	_, err := db.Master.Exec(
		`INSERT INTO resources (id, kind, name, price) VALUES ($1, $2, $3, $4)`,
		id, kind, "resource-"+id[:8], price,
	)
	require.NoError(t, err)
	return id
}

func ownerBudget(t *testing.T, db *dbpg.DB, ownerID string) int64 {
	t.Helper()
	var budget int64
	err := db.Master.QueryRow(`SELECT budget FROM owners WHERE id = $1`, ownerID).Scan(&budget)
	require.NoError(t, err)
	return budget
}

func countBooked(t *testing.T, db *dbpg.DB, ownerID string, kind domain.ResourceKind) int {
	t.Helper()
	var count int
	err := db.Master.QueryRow(
		`SELECT COUNT(*) FROM allocations WHERE owner_id = $1 AND kind = $2 AND status = $3`,
		ownerID, kind, domain.AllocationStatusBooked,
	).Scan(&count)
	require.NoError(t, err)
	return count
}

func bookedAllocation(resourceID, ownerID string, kind domain.ResourceKind, price int64, start, created time.Time) *domain.Allocation {
	return &domain.Allocation{
		ID:         uuid.New().String(),
		ResourceID: resourceID,
		OwnerID:    ownerID,
		Kind:       kind,
		StartDate:  start,
		EndDate:    start.Add(domain.LockDuration),
		PricePaid:  price,
		Status:     domain.AllocationStatusBooked,
		CreatedAt:  created,
		UpdatedAt:  created,
	}
}

func TestIntegration_CreatePurchase_InclusiveWindowBoundary(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAllocationRepo(db)
	ctx := context.Background()
	now := time.Now().UTC()

	ownerA := insertOwner(t, db, 10000)
	ownerB := insertOwner(t, db, 10000)
	resourceID := insertResource(t, db, domain.KindPlayer, 500)

	first := bookedAllocation(resourceID, ownerA, domain.KindPlayer, 500, now, now)
	require.NoError(t, repo.CreatePurchase(ctx, first))

	// Window starting exactly at the existing end date still conflicts.
	touching := bookedAllocation(resourceID, ownerB, domain.KindPlayer, 500, first.EndDate, now)
	err := repo.CreatePurchase(ctx, touching)
	require.ErrorIs(t, err, domain.ErrResourceUnavailable)

	var locked *domain.ResourceLockedError
	require.ErrorAs(t, err, &locked)
	assert.Equal(t, ownerA, locked.HolderID)

	// One second past the boundary is free.
	after := bookedAllocation(resourceID, ownerB, domain.KindPlayer, 500, first.EndDate.Add(time.Second), now)
	require.NoError(t, repo.CreatePurchase(ctx, after))
}

func TestIntegration_CreatePurchase_BudgetGuard(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAllocationRepo(db)
	ctx := context.Background()
	now := time.Now().UTC()

	ownerID := insertOwner(t, db, 300)
	resourceID := insertResource(t, db, domain.KindPlayer, 500)

	err := repo.CreatePurchase(ctx, bookedAllocation(resourceID, ownerID, domain.KindPlayer, 500, now, now))
	require.ErrorIs(t, err, domain.ErrInsufficientFunds)

	assert.Equal(t, int64(300), ownerBudget(t, db, ownerID))
	assert.Zero(t, countBooked(t, db, ownerID, domain.KindPlayer))
}

func TestIntegration_CreatePurchase_CoachCapUnderConcurrency(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAllocationRepo(db)
	ctx := context.Background()
	now := time.Now().UTC()

	ownerID := insertOwner(t, db, 100000)
	coach1 := insertResource(t, db, domain.KindCoach, 500)
	coach2 := insertResource(t, db, domain.KindCoach, 500)

	errs := make([]error, 2)
	var wg sync.WaitGroup
	for i, resourceID := range []string{coach1, coach2} {
		wg.Add(1)
		go func(i int, resourceID string) {
			defer wg.Done()
			errs[i] = repo.CreatePurchase(ctx, bookedAllocation(resourceID, ownerID, domain.KindCoach, 500, now, now))
		}(i, resourceID)
	}
	wg.Wait()

	// The owner row lock serializes the two transactions, so the loser
	// re-counts after the winner committed.
	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		require.ErrorIs(t, err, domain.ErrOwnerAlreadyHolds)
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, countBooked(t, db, ownerID, domain.KindCoach))
	assert.Equal(t, int64(100000-500), ownerBudget(t, db, ownerID))
}

func TestIntegration_CreatePurchase_FutureWindowLeavesHolderCached(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAllocationRepo(db)
	resourceRepo := NewResourceRepo(db)
	ctx := context.Background()
	now := time.Now().UTC()

	ownerA := insertOwner(t, db, 10000)
	ownerB := insertOwner(t, db, 10000)
	resourceID := insertResource(t, db, domain.KindPlayer, 500)

	current := bookedAllocation(resourceID, ownerA, domain.KindPlayer, 500, now, now)
	require.NoError(t, repo.CreatePurchase(ctx, current))

	futureStart := now.Add(40 * 24 * time.Hour)
	future := bookedAllocation(resourceID, ownerB, domain.KindPlayer, 500, futureStart, now)
	require.NoError(t, repo.CreatePurchase(ctx, future))

	var cachedOwner sql.NullString
	var lockedUntil sql.NullTime
	err := db.Master.QueryRow(
		`SELECT current_owner_id, locked_until FROM resources WHERE id = $1`, resourceID,
	).Scan(&cachedOwner, &lockedUntil)
	require.NoError(t, err)
	require.True(t, cachedOwner.Valid, "cache must still name the current holder")
	assert.Equal(t, ownerA, cachedOwner.String)
	assert.WithinDuration(t, current.EndDate, lockedUntil.Time, time.Second)

	held, err := resourceRepo.ListHeldByOwner(ctx, ownerA, now)
	require.NoError(t, err)
	require.Len(t, held, 1)
	assert.Equal(t, resourceID, held[0].ID)

	// Once the current lock expires and the future window begins, the sweep
	// hands the cache over to the future holder.
	later := futureStart.Add(24 * time.Hour)
	_, err = resourceRepo.ReclaimExpired(ctx, later)
	require.NoError(t, err)

	err = db.Master.QueryRow(
		`SELECT current_owner_id, locked_until FROM resources WHERE id = $1`, resourceID,
	).Scan(&cachedOwner, &lockedUntil)
	require.NoError(t, err)
	require.True(t, cachedOwner.Valid)
	assert.Equal(t, ownerB, cachedOwner.String)
	assert.WithinDuration(t, future.EndDate, lockedUntil.Time, time.Second)
}

func TestIntegration_Approve_ExpiredWindow(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAllocationRepo(db)
	ctx := context.Background()
	now := time.Now().UTC()

	ownerID := insertOwner(t, db, 10000)
	resourceID := insertResource(t, db, domain.KindCoach, 500)

	stale := bookedAllocation(resourceID, ownerID, domain.KindCoach, 500, now.Add(-40*24*time.Hour), now.Add(-40*24*time.Hour))
	stale.Status = domain.AllocationStatusPending
	require.NoError(t, repo.CreatePending(ctx, stale))

	_, err := repo.Approve(ctx, stale.ID, now)
	require.ErrorIs(t, err, domain.ErrInvalidState)

	assert.Equal(t, int64(10000), ownerBudget(t, db, ownerID))
}

func TestIntegration_ReplaceRoster_FutureBookingBlocks(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAllocationRepo(db)
	ctx := context.Background()
	now := time.Now().UTC()

	ownerA := insertOwner(t, db, 10000)
	ownerB := insertOwner(t, db, 10000)
	resourceID := insertResource(t, db, domain.KindPlayer, 500)

	// B holds a window that has not started yet; the cache is still empty.
	future := bookedAllocation(resourceID, ownerB, domain.KindPlayer, 500, now.Add(5*24*time.Hour), now)
	require.NoError(t, repo.CreatePurchase(ctx, future))

	_, err := repo.ReplaceRoster(ctx, ownerA, []string{resourceID}, now)
	require.ErrorIs(t, err, domain.ErrResourceUnavailable)

	var locked *domain.ResourceLockedError
	require.ErrorAs(t, err, &locked)
	assert.Equal(t, ownerB, locked.HolderID)

	assert.Equal(t, int64(10000), ownerBudget(t, db, ownerA))
	assert.Zero(t, countBooked(t, db, ownerA, domain.KindPlayer))
}
