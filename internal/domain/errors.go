package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrResourceNotFound   = errors.New("resource not found")
	ErrOwnerNotFound      = errors.New("owner not found")
	ErrAllocationNotFound = errors.New("allocation not found")
)

var (
	ErrResourceUnavailable = errors.New("resource is unavailable for the requested window")
	ErrInsufficientFunds   = errors.New("insufficient funds")
	ErrOwnerAlreadyHolds   = errors.New("owner already holds a resource of this kind")
	ErrTooManyResources    = errors.New("requested roster exceeds the cap")
	ErrInvalidState        = errors.New("operation is not valid for the allocation status")
	ErrPurchaseFailed      = errors.New("purchase failed")
)

var (
	ErrValidation = errors.New("validation error")
)

// ResourceLockedError carries who holds the resource and until when, so the
// caller can render "locked until X". Matches ErrResourceUnavailable.
type ResourceLockedError struct {
	ResourceID  string
	HolderID    string
	LockedUntil time.Time
}

func (e *ResourceLockedError) Error() string {
	if e.HolderID == "" {
		return fmt.Sprintf("resource %s is unavailable for the requested window", e.ResourceID)
	}
	return fmt.Sprintf("resource %s is held by owner %s until %s",
		e.ResourceID, e.HolderID, e.LockedUntil.Format(time.RFC3339))
}

func (e *ResourceLockedError) Is(target error) bool {
	return target == ErrResourceUnavailable
}
