package dto

import (
	"time"

	"github.com/dapperDewan/Hoop-Hub-sub000/internal/domain"
)

type ResourceResponse struct {
	ID             string  `json:"id"`
	Kind           string  `json:"kind"`
	Name           string  `json:"name"`
	Price          int64   `json:"price"`
	CurrentOwnerID *string `json:"current_owner_id,omitempty"`
	LockedUntil    *string `json:"locked_until,omitempty"`
	CreatedAt      string  `json:"created_at"`
}

type AvailabilityResponse struct {
	ResourceID     string  `json:"resource_id"`
	Available      bool    `json:"available"`
	CurrentOwnerID *string `json:"current_owner_id,omitempty"`
	LockedUntil    *string `json:"locked_until,omitempty"`
}

type OwnerResponse struct {
	ID             string `json:"id"`
	DisplayName    string `json:"display_name"`
	Budget         int64  `json:"budget"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type AllocationResponse struct {
	ID         string `json:"id"`
	ResourceID string `json:"resource_id"`
	OwnerID    string `json:"owner_id"`
	Kind       string `json:"kind"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	PricePaid  int64  `json:"price_paid"`
	Status     string `json:"status"`
	CreatedAt  string `json:"created_at"`
}

type RosterChangeResponse struct {
	Allocations     []AllocationResponse `json:"allocations"`
	TotalCost       int64                `json:"total_cost"`
	RemainingBudget int64                `json:"remaining_budget"`
}

type BudgetResponse struct {
	OwnerID string `json:"owner_id"`
	Budget  int64  `json:"budget"`
}

type ErrorResponse struct {
	Error       string  `json:"error"`
	HolderID    *string `json:"holder_id,omitempty"`
	LockedUntil *string `json:"locked_until,omitempty"`
}

func ToResourceResponse(r *domain.Resource) ResourceResponse {
	return ResourceResponse{
		ID:             r.ID,
		Kind:           string(r.Kind),
		Name:           r.Name,
		Price:          r.Price,
		CurrentOwnerID: r.CurrentOwnerID,
		LockedUntil:    formatTimePtr(r.LockedUntil),
		CreatedAt:      r.CreatedAt.Format(time.RFC3339),
	}
}

func ToAvailabilityResponse(a *domain.ResourceAvailability) AvailabilityResponse {
	return AvailabilityResponse{
		ResourceID:     a.ResourceID,
		Available:      a.Available,
		CurrentOwnerID: a.CurrentOwnerID,
		LockedUntil:    formatTimePtr(a.LockedUntil),
	}
}

func ToOwnerResponse(o *domain.Owner) OwnerResponse {
	return OwnerResponse{
		ID:             o.ID,
		DisplayName:    o.DisplayName,
		Budget:         o.Budget,
		TelegramChatID: o.TelegramChatID,
		CreatedAt:      o.CreatedAt.Format(time.RFC3339),
	}
}

func ToAllocationResponse(a *domain.Allocation) AllocationResponse {
	return AllocationResponse{
		ID:         a.ID,
		ResourceID: a.ResourceID,
		OwnerID:    a.OwnerID,
		Kind:       string(a.Kind),
		StartDate:  a.StartDate.Format(time.RFC3339),
		EndDate:    a.EndDate.Format(time.RFC3339),
		PricePaid:  a.PricePaid,
		Status:     string(a.Status),
		CreatedAt:  a.CreatedAt.Format(time.RFC3339),
	}
}

func ToRosterChangeResponse(c *domain.RosterChange) RosterChangeResponse {
	allocations := make([]AllocationResponse, 0, len(c.Allocations))
	for _, a := range c.Allocations {
		allocations = append(allocations, ToAllocationResponse(a))
	}

	return RosterChangeResponse{
		Allocations:     allocations,
		TotalCost:       c.TotalCost,
		RemainingBudget: c.RemainingBudget,
	}
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
