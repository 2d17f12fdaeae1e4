package domain

import "time"

type AllocationStatus string

const (
	AllocationStatusPending   AllocationStatus = "pending"
	AllocationStatusBooked    AllocationStatus = "booked"
	AllocationStatusRejected  AllocationStatus = "rejected"
	AllocationStatusCancelled AllocationStatus = "cancelled"
)

// BlockingStatuses are the statuses that reserve a resource for a window.
// A pending request does not block availability.
var BlockingStatuses = []AllocationStatus{AllocationStatusBooked}

// Allocation records that an owner holds (or requested) a resource for a
// window. PricePaid is a snapshot; later price changes do not touch it.
// Expiry is derived by comparing EndDate to now, never stored as a status.
type Allocation struct {
	ID         string           `json:"id"`
	ResourceID string           `json:"resource_id"`
	OwnerID    string           `json:"owner_id"`
	Kind       ResourceKind     `json:"kind"`
	StartDate  time.Time        `json:"start_date"`
	EndDate    time.Time        `json:"end_date"`
	PricePaid  int64            `json:"price_paid"`
	Status     AllocationStatus `json:"status"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

// ActiveAt reports whether the allocation is in effect at now.
func (a *Allocation) ActiveAt(now time.Time) bool {
	return a.Status == AllocationStatusBooked && !now.After(a.EndDate)
}

// Overlaps applies the inclusive overlap test to the allocation's window.
func (a *Allocation) Overlaps(start, end time.Time) bool {
	return WindowsOverlap(a.StartDate, a.EndDate, start, end)
}

// WindowsOverlap is the inclusive interval overlap test: windows touching at
// a single instant do overlap.
func WindowsOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !(aEnd.Before(bStart) || aStart.After(bEnd))
}

// RosterChange is the result of replacing an owner's whole roster in one call.
type RosterChange struct {
	Allocations     []*Allocation `json:"allocations"`
	TotalCost       int64         `json:"total_cost"`
	RemainingBudget int64         `json:"remaining_budget"`
}
