package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWindowsOverlap(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	day := 24 * time.Hour

	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd time.Time
		want                       bool
	}{
		{"disjoint before", base, base.Add(5 * day), base.Add(10 * day), base.Add(15 * day), false},
		{"disjoint after", base.Add(10 * day), base.Add(15 * day), base, base.Add(5 * day), false},
		{"full containment", base, base.Add(30 * day), base.Add(5 * day), base.Add(10 * day), true},
		{"partial overlap", base, base.Add(10 * day), base.Add(5 * day), base.Add(15 * day), true},
		{"touching endpoints overlap", base, base.Add(5 * day), base.Add(5 * day), base.Add(10 * day), true},
		{"identical windows", base, base.Add(30 * day), base, base.Add(30 * day), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WindowsOverlap(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
		})
	}
}

func TestAllocation_ActiveAt(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	booked := &Allocation{
		Status:    AllocationStatusBooked,
		StartDate: now.Add(-10 * 24 * time.Hour),
		EndDate:   now.Add(20 * 24 * time.Hour),
	}
	assert.True(t, booked.ActiveAt(now))
	assert.True(t, booked.ActiveAt(booked.EndDate), "active up to and including end date")
	assert.False(t, booked.ActiveAt(booked.EndDate.Add(time.Second)))

	pending := &Allocation{Status: AllocationStatusPending, StartDate: now, EndDate: now.Add(LockDuration)}
	assert.False(t, pending.ActiveAt(now), "pending never counts as active")

	cancelled := &Allocation{Status: AllocationStatusCancelled, StartDate: now, EndDate: now.Add(LockDuration)}
	assert.False(t, cancelled.ActiveAt(now))
}

func TestResource_Locked(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	owner := "o1"

	free := &Resource{}
	assert.False(t, free.Locked(now))

	until := now.Add(24 * time.Hour)
	held := &Resource{CurrentOwnerID: &owner, LockedUntil: &until}
	assert.True(t, held.Locked(now))
	assert.True(t, held.HeldBy("o1", now))
	assert.False(t, held.HeldBy("o2", now))

	expired := now.Add(-time.Second)
	stale := &Resource{CurrentOwnerID: &owner, LockedUntil: &expired}
	assert.False(t, stale.Locked(now))
	assert.False(t, stale.HeldBy("o1", now))
}

func TestResourceLockedError_MatchesSentinel(t *testing.T) {
	err := &ResourceLockedError{
		ResourceID:  "r1",
		HolderID:    "o1",
		LockedUntil: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
	}

	assert.True(t, errors.Is(err, ErrResourceUnavailable))
	assert.Contains(t, err.Error(), "o1")
	assert.Contains(t, err.Error(), "2025-07-01")

	var locked *ResourceLockedError
	assert.True(t, errors.As(error(err), &locked))
}
