package service

import (
	"context"
	"fmt"
	"time"

	"github.com/dapperDewan/Hoop-Hub-sub000/internal/domain"
	"github.com/dapperDewan/Hoop-Hub-sub000/internal/service/ports"
)

// AvailabilityService answers whether a resource is free for a window.
// Only booked allocations block; a pending request does not reserve the slot.
// This is the read-side pre-check: the authoritative re-check runs inside the
// allocation repository's transactions.
type AvailabilityService struct {
	allocRepo ports.AllocationRepo
}

func NewAvailabilityService(allocRepo ports.AllocationRepo) *AvailabilityService {
	return &AvailabilityService{allocRepo: allocRepo}
}

func (s *AvailabilityService) IsAvailable(ctx context.Context, resourceID string, start, end time.Time) (bool, error) {
	allocs, err := s.allocRepo.ListBookedByResource(ctx, resourceID)
	if err != nil {
		return false, fmt.Errorf("list booked allocations: %w", err)
	}

	for _, a := range allocs {
		if a.Overlaps(start, end) {
			return false, nil
		}
	}

	return true, nil
}

// Conflict returns the booked allocation that blocks the window, if any.
func (s *AvailabilityService) Conflict(ctx context.Context, resourceID string, start, end time.Time) (*domain.Allocation, error) {
	allocs, err := s.allocRepo.ListBookedByResource(ctx, resourceID)
	if err != nil {
		return nil, fmt.Errorf("list booked allocations: %w", err)
	}

	for _, a := range allocs {
		if a.Overlaps(start, end) {
			return a, nil
		}
	}

	return nil, nil
}
