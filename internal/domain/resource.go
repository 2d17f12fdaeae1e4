package domain

import "time"

type ResourceKind string

const (
	KindPlayer ResourceKind = "player"
	KindCoach  ResourceKind = "coach"
)

// LockDuration is how long a purchased or booked resource stays with its owner.
const LockDuration = 30 * 24 * time.Hour

// Caps on concurrently held resources per owner.
const (
	RosterCap = 10
	CoachCap  = 1
)

// Resource is a player or coach. CurrentOwnerID and LockedUntil are a cache of
// the latest active allocation; allocations stay the source of truth.
type Resource struct {
	ID             string       `json:"id"`
	Kind           ResourceKind `json:"kind"`
	Name           string       `json:"name"`
	Price          int64        `json:"price"`
	CurrentOwnerID *string      `json:"current_owner_id"`
	LockedUntil    *time.Time   `json:"locked_until"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

// Locked reports whether the cached lock is still in effect at now.
func (r *Resource) Locked(now time.Time) bool {
	return r.LockedUntil != nil && now.Before(*r.LockedUntil)
}

// HeldBy reports whether ownerID holds the resource at now.
func (r *Resource) HeldBy(ownerID string, now time.Time) bool {
	return r.Locked(now) && r.CurrentOwnerID != nil && *r.CurrentOwnerID == ownerID
}

type CreateResourceInput struct {
	Kind  ResourceKind
	Name  string
	Price int64
}

// ResourceAvailability is the read-side answer for a single resource.
type ResourceAvailability struct {
	ResourceID     string     `json:"resource_id"`
	Available      bool       `json:"available"`
	CurrentOwnerID *string    `json:"current_owner_id,omitempty"`
	LockedUntil    *time.Time `json:"locked_until,omitempty"`
}
