package service

import (
	"context"
	"testing"
	"time"

	"github.com/dapperDewan/Hoop-Hub-sub000/internal/domain"
	"github.com/dapperDewan/Hoop-Hub-sub000/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAvailabilityService_IsAvailable_Free(t *testing.T) {
	repo := mocks.NewMockAllocationRepo(t)
	svc := NewAvailabilityService(repo)

	repo.EXPECT().ListBookedByResource(mock.Anything, "r1").Return(nil, nil)

	ok, err := svc.IsAvailable(context.Background(), "r1", testNow, testNow.Add(domain.LockDuration))

	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAvailabilityService_IsAvailable_Blocked(t *testing.T) {
	repo := mocks.NewMockAllocationRepo(t)
	svc := NewAvailabilityService(repo)

	booked := &domain.Allocation{
		ID:        "a1",
		OwnerID:   "o2",
		Status:    domain.AllocationStatusBooked,
		StartDate: testNow.Add(-5 * 24 * time.Hour),
		EndDate:   testNow.Add(25 * 24 * time.Hour),
	}
	repo.EXPECT().ListBookedByResource(mock.Anything, "r1").Return([]*domain.Allocation{booked}, nil)

	ok, err := svc.IsAvailable(context.Background(), "r1", testNow, testNow.Add(domain.LockDuration))

	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAvailabilityService_IsAvailable_TouchingWindowsBlock(t *testing.T) {
	repo := mocks.NewMockAllocationRepo(t)
	svc := NewAvailabilityService(repo)

	end := testNow.Add(10 * 24 * time.Hour)
	booked := &domain.Allocation{
		ID:        "a1",
		Status:    domain.AllocationStatusBooked,
		StartDate: testNow.Add(-20 * 24 * time.Hour),
		EndDate:   end,
	}
	repo.EXPECT().ListBookedByResource(mock.Anything, "r1").Return([]*domain.Allocation{booked}, nil)

	// Window starting exactly at the existing end still conflicts.
	ok, err := svc.IsAvailable(context.Background(), "r1", end, end.Add(domain.LockDuration))

	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAvailabilityService_Conflict_ReturnsBlocker(t *testing.T) {
	repo := mocks.NewMockAllocationRepo(t)
	svc := NewAvailabilityService(repo)

	booked := &domain.Allocation{
		ID:        "a1",
		OwnerID:   "o2",
		Status:    domain.AllocationStatusBooked,
		StartDate: testNow,
		EndDate:   testNow.Add(domain.LockDuration),
	}
	repo.EXPECT().ListBookedByResource(mock.Anything, "r1").Return([]*domain.Allocation{booked}, nil)

	conflict, err := svc.Conflict(context.Background(), "r1", testNow, testNow.Add(time.Hour))

	require.NoError(t, err)
	require.NotNil(t, conflict)
	assert.Equal(t, "o2", conflict.OwnerID)
}

func TestAvailabilityService_Conflict_None(t *testing.T) {
	repo := mocks.NewMockAllocationRepo(t)
	svc := NewAvailabilityService(repo)

	repo.EXPECT().ListBookedByResource(mock.Anything, "r1").Return(nil, nil)

	conflict, err := svc.Conflict(context.Background(), "r1", testNow, testNow.Add(time.Hour))

	require.NoError(t, err)
	assert.Nil(t, conflict)
}
