package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dapperDewan/Hoop-Hub-sub000/internal/domain"
	"github.com/dapperDewan/Hoop-Hub-sub000/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

// AllocationService orchestrates purchases, approval-gated bookings and whole
// roster swaps. Pre-checks here produce friendly errors early; the repository
// transactions re-validate everything before committing, so a race between
// two requests can only lose, never double-allocate.
type AllocationService struct {
	allocRepo    ports.AllocationRepo
	resourceRepo ports.ResourceRepo
	ownerRepo    ports.OwnerRepo
	availability *AvailabilityService
	budget       *BudgetService
	sweeper      *SweeperService
	notifier     ports.AllocationNotifier
	logger       logger.Logger
	now          func() time.Time
}

func NewAllocationService(
	allocRepo ports.AllocationRepo,
	resourceRepo ports.ResourceRepo,
	ownerRepo ports.OwnerRepo,
	notifier ports.AllocationNotifier,
	log logger.Logger,
	now func() time.Time,
) *AllocationService {
	if now == nil {
		now = time.Now
	}
	return &AllocationService{
		allocRepo:    allocRepo,
		resourceRepo: resourceRepo,
		ownerRepo:    ownerRepo,
		availability: NewAvailabilityService(allocRepo),
		budget:       NewBudgetService(ownerRepo),
		sweeper:      NewSweeperService(resourceRepo, log, now),
		notifier:     notifier,
		logger:       log,
		now:          now,
	}
}

// Purchase is the direct flow: requested -> {completed | rejected}. Start
// defaults to now; the window is always start + 30 days.
func (s *AllocationService) Purchase(ctx context.Context, ownerID, resourceID string, start *time.Time) (*domain.Allocation, error) {
	now := s.now().UTC()

	if err := s.sweeper.ReclaimResource(ctx, resourceID); err != nil {
		return nil, fmt.Errorf("reclaim resource: %w", err)
	}

	resource, err := s.resourceRepo.GetByID(ctx, resourceID)
	if err != nil {
		return nil, fmt.Errorf("check resource: %w", err)
	}

	owner, err := s.ownerRepo.GetByID(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("check owner: %w", err)
	}

	windowStart := now
	if start != nil && start.After(now) {
		windowStart = start.UTC()
	}
	windowEnd := windowStart.Add(domain.LockDuration)

	available, err := s.availability.IsAvailable(ctx, resourceID, windowStart, windowEnd)
	if err != nil {
		return nil, err
	}
	if !available {
		return nil, s.lockedError(ctx, resource, windowStart, windowEnd)
	}

	if err = s.checkCaps(ctx, ownerID, resource.Kind, windowStart, windowEnd); err != nil {
		return nil, err
	}

	affordable, err := s.budget.CanAfford(ctx, ownerID, resource.Price)
	if err != nil {
		return nil, err
	}
	if !affordable {
		return nil, domain.ErrInsufficientFunds
	}

	alloc := &domain.Allocation{
		ID:         uuid.New().String(),
		ResourceID: resourceID,
		OwnerID:    ownerID,
		Kind:       resource.Kind,
		StartDate:  windowStart,
		EndDate:    windowEnd,
		PricePaid:  resource.Price,
		Status:     domain.AllocationStatusBooked,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	// Создание брони и списание бюджета — одна транзакция
	if err = s.allocRepo.CreatePurchase(ctx, alloc); err != nil {
		if isLedgerError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrPurchaseFailed, err)
	}

	s.logger.Info("resource purchased",
		logger.String("allocation_id", alloc.ID),
		logger.String("resource_id", resourceID),
		logger.String("owner_id", ownerID),
		logger.Int64("price_paid", alloc.PricePaid),
	)

	go s.notifier.NotifyPurchaseCompleted(context.WithoutCancel(ctx), owner, resource, alloc)

	return alloc, nil
}

// RequestBooking creates a pending allocation with no budget effect. Pending
// requests do not block other buyers; approval re-validates the window.
func (s *AllocationService) RequestBooking(ctx context.Context, ownerID, resourceID string, start time.Time) (*domain.Allocation, error) {
	now := s.now().UTC()

	resource, err := s.resourceRepo.GetByID(ctx, resourceID)
	if err != nil {
		return nil, fmt.Errorf("check resource: %w", err)
	}

	if _, err = s.ownerRepo.GetByID(ctx, ownerID); err != nil {
		return nil, fmt.Errorf("check owner: %w", err)
	}

	windowStart := now
	if start.After(now) {
		windowStart = start.UTC()
	}

	alloc := &domain.Allocation{
		ID:         uuid.New().String(),
		ResourceID: resourceID,
		OwnerID:    ownerID,
		Kind:       resource.Kind,
		StartDate:  windowStart,
		EndDate:    windowStart.Add(domain.LockDuration),
		PricePaid:  resource.Price,
		Status:     domain.AllocationStatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err = s.allocRepo.CreatePending(ctx, alloc); err != nil {
		return nil, fmt.Errorf("create pending allocation: %w", err)
	}

	s.logger.Info("booking requested",
		logger.String("allocation_id", alloc.ID),
		logger.String("resource_id", resourceID),
		logger.String("owner_id", ownerID),
	)

	return alloc, nil
}

// ApproveBooking transitions pending -> booked. The repository re-checks the
// window (another owner could have booked it while this one sat pending),
// enforces the coach cap and charges the owner inside one transaction.
func (s *AllocationService) ApproveBooking(ctx context.Context, allocationID string) (*domain.Allocation, error) {
	alloc, err := s.allocRepo.Approve(ctx, allocationID, s.now().UTC())
	if err != nil {
		return nil, err
	}

	s.logger.Info("booking approved",
		logger.String("allocation_id", alloc.ID),
		logger.String("resource_id", alloc.ResourceID),
		logger.String("owner_id", alloc.OwnerID),
	)

	s.notifyAsync(ctx, alloc, true)

	return alloc, nil
}

// RejectBooking transitions pending -> rejected with no budget effect.
func (s *AllocationService) RejectBooking(ctx context.Context, allocationID string) (*domain.Allocation, error) {
	alloc, err := s.allocRepo.Reject(ctx, allocationID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("booking rejected",
		logger.String("allocation_id", alloc.ID),
		logger.String("resource_id", alloc.ResourceID),
		logger.String("owner_id", alloc.OwnerID),
	)

	s.notifyAsync(ctx, alloc, false)

	return alloc, nil
}

// ReplaceRoster swaps the owner's whole player set in one call. Resources the
// owner already holds carry over free of charge; a resource locked by someone
// else rejects the entire batch.
func (s *AllocationService) ReplaceRoster(ctx context.Context, ownerID string, resourceIDs []string) (*domain.RosterChange, error) {
	if len(resourceIDs) > domain.RosterCap {
		return nil, domain.ErrTooManyResources
	}

	if _, err := s.ownerRepo.GetByID(ctx, ownerID); err != nil {
		return nil, fmt.Errorf("check owner: %w", err)
	}

	change, err := s.allocRepo.ReplaceRoster(ctx, ownerID, resourceIDs, s.now().UTC())
	if err != nil {
		if isLedgerError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrPurchaseFailed, err)
	}

	s.logger.Info("roster replaced",
		logger.String("owner_id", ownerID),
		logger.Int("roster_size", len(change.Allocations)),
		logger.Int64("total_cost", change.TotalCost),
		logger.Int64("remaining_budget", change.RemainingBudget),
	)

	return change, nil
}

// ListHeldResources reclaims the owner's expired locks first, so the answer
// never includes a resource whose window has elapsed.
func (s *AllocationService) ListHeldResources(ctx context.Context, ownerID string) ([]*domain.Resource, error) {
	if err := s.sweeper.ReclaimOwner(ctx, ownerID); err != nil {
		return nil, fmt.Errorf("reclaim owner resources: %w", err)
	}

	if _, err := s.ownerRepo.GetByID(ctx, ownerID); err != nil {
		return nil, fmt.Errorf("check owner: %w", err)
	}

	return s.resourceRepo.ListHeldByOwner(ctx, ownerID, s.now().UTC())
}

func (s *AllocationService) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Allocation, error) {
	return s.allocRepo.ListByOwner(ctx, ownerID)
}

func (s *AllocationService) checkCaps(ctx context.Context, ownerID string, kind domain.ResourceKind, start, end time.Time) error {
	active, err := s.allocRepo.ListActiveByOwnerAndKind(ctx, ownerID, kind, s.now().UTC())
	if err != nil {
		return fmt.Errorf("list active allocations: %w", err)
	}

	overlapping := 0
	for _, a := range active {
		if a.Overlaps(start, end) {
			overlapping++
		}
	}

	switch kind {
	case domain.KindCoach:
		if overlapping >= domain.CoachCap {
			return domain.ErrOwnerAlreadyHolds
		}
	case domain.KindPlayer:
		if overlapping >= domain.RosterCap {
			return domain.ErrTooManyResources
		}
	}

	return nil
}

// lockedError builds the caller-facing unavailability error, naming the
// current holder when known.
func (s *AllocationService) lockedError(ctx context.Context, resource *domain.Resource, start, end time.Time) error {
	conflict, err := s.availability.Conflict(ctx, resource.ID, start, end)
	if err == nil && conflict != nil {
		return &domain.ResourceLockedError{
			ResourceID:  resource.ID,
			HolderID:    conflict.OwnerID,
			LockedUntil: conflict.EndDate,
		}
	}

	return &domain.ResourceLockedError{ResourceID: resource.ID}
}

func (s *AllocationService) notifyAsync(ctx context.Context, alloc *domain.Allocation, approved bool) {
	owner, err := s.ownerRepo.GetByID(ctx, alloc.OwnerID)
	if err != nil {
		s.logger.Error("failed to get owner for notification",
			logger.String("owner_id", alloc.OwnerID),
			logger.String("error", err.Error()),
		)
		return
	}

	resource, err := s.resourceRepo.GetByID(ctx, alloc.ResourceID)
	if err != nil {
		s.logger.Error("failed to get resource for notification",
			logger.String("resource_id", alloc.ResourceID),
			logger.String("error", err.Error()),
		)
		return
	}

	if approved {
		go s.notifier.NotifyBookingApproved(context.WithoutCancel(ctx), owner, resource, alloc)
	} else {
		go s.notifier.NotifyBookingRejected(context.WithoutCancel(ctx), owner, resource)
	}
}

// isLedgerError reports whether err is one of the expected, caller-facing
// ledger errors rather than a store failure.
func isLedgerError(err error) bool {
	for _, target := range []error{
		domain.ErrResourceNotFound,
		domain.ErrOwnerNotFound,
		domain.ErrAllocationNotFound,
		domain.ErrResourceUnavailable,
		domain.ErrInsufficientFunds,
		domain.ErrOwnerAlreadyHolds,
		domain.ErrTooManyResources,
		domain.ErrInvalidState,
		domain.ErrValidation,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
