package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dapperDewan/Hoop-Hub-sub000/internal/domain"
	"github.com/dapperDewan/Hoop-Hub-sub000/internal/handler/dto"
	"github.com/dapperDewan/Hoop-Hub-sub000/internal/middleware"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

type ResourceSvc interface {
	Create(ctx context.Context, input domain.CreateResourceInput) (*domain.Resource, error)
	List(ctx context.Context, kind domain.ResourceKind) ([]*domain.Resource, error)
	GetAvailability(ctx context.Context, resourceID string) (*domain.ResourceAvailability, error)
}

type OwnerSvc interface {
	Create(ctx context.Context, input domain.CreateOwnerInput) (*domain.Owner, error)
	List(ctx context.Context) ([]*domain.Owner, error)
}

type AllocationSvc interface {
	Purchase(ctx context.Context, ownerID, resourceID string, start *time.Time) (*domain.Allocation, error)
	RequestBooking(ctx context.Context, ownerID, resourceID string, start time.Time) (*domain.Allocation, error)
	ApproveBooking(ctx context.Context, allocationID string) (*domain.Allocation, error)
	RejectBooking(ctx context.Context, allocationID string) (*domain.Allocation, error)
	ReplaceRoster(ctx context.Context, ownerID string, resourceIDs []string) (*domain.RosterChange, error)
	ListHeldResources(ctx context.Context, ownerID string) ([]*domain.Resource, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Allocation, error)
}

type BudgetSvc interface {
	Credit(ctx context.Context, ownerID string, amount int64) (int64, error)
}

type Handler struct {
	resourceService   ResourceSvc
	ownerService      OwnerSvc
	allocationService AllocationSvc
	budgetService     BudgetSvc
}

func NewHandler(resourceService ResourceSvc, ownerService OwnerSvc, allocationService AllocationSvc, budgetService BudgetSvc) *Handler {
	return &Handler{
		resourceService:   resourceService,
		ownerService:      ownerService,
		allocationService: allocationService,
		budgetService:     budgetService,
	}
}

// Resources

func (h *Handler) CreateResource(c *ginext.Context) {
	var req dto.CreateResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	resource, err := h.resourceService.Create(c.Request.Context(), domain.CreateResourceInput{
		Kind:  domain.ResourceKind(req.Kind),
		Name:  req.Name,
		Price: req.Price,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToResourceResponse(resource))
}

func (h *Handler) ListResources(c *ginext.Context) {
	kind := domain.ResourceKind(c.Query("kind"))

	resources, err := h.resourceService.List(c.Request.Context(), kind)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ResourceResponse, 0, len(resources))
	for _, r := range resources {
		resp = append(resp, dto.ToResourceResponse(r))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetResourceAvailability(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid resource id"})
		return
	}

	availability, err := h.resourceService.GetAvailability(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAvailabilityResponse(availability))
}

// Allocations

func (h *Handler) PurchaseResource(c *ginext.Context) {
	resourceID := c.Param("id")
	if _, err := uuid.Parse(resourceID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid resource id"})
		return
	}

	var req dto.PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if !h.actorMayActFor(c, req.OwnerID) {
		return
	}

	var start *time.Time
	if req.StartDate != "" {
		parsed, err := time.Parse(time.RFC3339, req.StartDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "invalid start_date format, expected RFC3339",
			})
			return
		}
		start = &parsed
	}

	alloc, err := h.allocationService.Purchase(c.Request.Context(), req.OwnerID, resourceID, start)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToAllocationResponse(alloc))
}

func (h *Handler) RequestBooking(c *ginext.Context) {
	resourceID := c.Param("id")
	if _, err := uuid.Parse(resourceID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid resource id"})
		return
	}

	var req dto.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if !h.actorMayActFor(c, req.OwnerID) {
		return
	}

	var start time.Time
	if req.StartDate != "" {
		parsed, err := time.Parse(time.RFC3339, req.StartDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "invalid start_date format, expected RFC3339",
			})
			return
		}
		start = parsed
	}

	alloc, err := h.allocationService.RequestBooking(c.Request.Context(), req.OwnerID, resourceID, start)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToAllocationResponse(alloc))
}

func (h *Handler) ApproveBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid allocation id"})
		return
	}

	alloc, err := h.allocationService.ApproveBooking(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAllocationResponse(alloc))
}

func (h *Handler) RejectBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid allocation id"})
		return
	}

	alloc, err := h.allocationService.RejectBooking(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAllocationResponse(alloc))
}

// Owners

func (h *Handler) CreateOwner(c *ginext.Context) {
	var req dto.CreateOwnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	owner, err := h.ownerService.Create(c.Request.Context(), domain.CreateOwnerInput{
		DisplayName:    req.DisplayName,
		InitialBudget:  req.InitialBudget,
		TelegramChatID: req.TelegramChatID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToOwnerResponse(owner))
}

func (h *Handler) ListOwners(c *ginext.Context) {
	owners, err := h.ownerService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.OwnerResponse, 0, len(owners))
	for _, o := range owners {
		resp = append(resp, dto.ToOwnerResponse(o))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ListHeldResources(c *ginext.Context) {
	ownerID := c.Param("id")
	if _, err := uuid.Parse(ownerID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid owner id"})
		return
	}

	resources, err := h.allocationService.ListHeldResources(c.Request.Context(), ownerID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ResourceResponse, 0, len(resources))
	for _, r := range resources {
		resp = append(resp, dto.ToResourceResponse(r))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ListOwnerAllocations(c *ginext.Context) {
	ownerID := c.Param("id")
	if _, err := uuid.Parse(ownerID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid owner id"})
		return
	}

	allocations, err := h.allocationService.ListByOwner(c.Request.Context(), ownerID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.AllocationResponse, 0, len(allocations))
	for _, a := range allocations {
		resp = append(resp, dto.ToAllocationResponse(a))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ReplaceRoster(c *ginext.Context) {
	ownerID := c.Param("id")
	if _, err := uuid.Parse(ownerID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid owner id"})
		return
	}

	if !h.actorMayActFor(c, ownerID) {
		return
	}

	var req dto.ReplaceRosterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	change, err := h.allocationService.ReplaceRoster(c.Request.Context(), ownerID, req.ResourceIDs)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRosterChangeResponse(change))
}

func (h *Handler) CreditBudget(c *ginext.Context) {
	ownerID := c.Param("id")
	if _, err := uuid.Parse(ownerID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid owner id"})
		return
	}

	var req dto.CreditBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	balance, err := h.budgetService.Credit(c.Request.Context(), ownerID, req.Amount)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.BudgetResponse{OwnerID: ownerID, Budget: balance})
}

// actorMayActFor rejects owner-scoped writes when the forwarded principal is
// neither that owner nor an admin.
func (h *Handler) actorMayActFor(c *ginext.Context, ownerID string) bool {
	if middleware.ActorRole(c) == middleware.RoleAdmin {
		return true
	}
	if middleware.ActorID(c) == ownerID {
		return true
	}

	c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Error: "forbidden"})
	return false
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	var locked *domain.ResourceLockedError
	if errors.As(err, &locked) {
		resp := dto.ErrorResponse{Error: err.Error()}
		if locked.HolderID != "" {
			resp.HolderID = &locked.HolderID
			until := locked.LockedUntil.Format(time.RFC3339)
			resp.LockedUntil = &until
		}
		c.JSON(http.StatusConflict, resp)
		return
	}

	switch {
	case errors.Is(err, domain.ErrResourceNotFound),
		errors.Is(err, domain.ErrOwnerNotFound),
		errors.Is(err, domain.ErrAllocationNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrResourceUnavailable),
		errors.Is(err, domain.ErrInsufficientFunds),
		errors.Is(err, domain.ErrOwnerAlreadyHolds),
		errors.Is(err, domain.ErrInvalidState):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrTooManyResources),
		errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
