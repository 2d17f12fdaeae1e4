package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dapperDewan/Hoop-Hub-sub000/internal/domain"
	"github.com/dapperDewan/Hoop-Hub-sub000/internal/handler/dto"
	hmocks "github.com/dapperDewan/Hoop-Hub-sub000/internal/handler/mocks"
	"github.com/dapperDewan/Hoop-Hub-sub000/internal/middleware"
	"github.com/dapperDewan/Hoop-Hub-sub000/internal/router"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T) (*hmocks.MockResourceSvc, *hmocks.MockOwnerSvc, *hmocks.MockAllocationSvc, *hmocks.MockBudgetSvc, http.Handler) {
	t.Helper()
	resourceSvc := hmocks.NewMockResourceSvc(t)
	ownerSvc := hmocks.NewMockOwnerSvc(t)
	allocationSvc := hmocks.NewMockAllocationSvc(t)
	budgetSvc := hmocks.NewMockBudgetSvc(t)

	h := NewHandler(resourceSvc, ownerSvc, allocationSvc, budgetSvc)
	r := router.InitRouter("test", h, middleware.Principal())

	return resourceSvc, ownerSvc, allocationSvc, budgetSvc, r
}

func asActor(req *http.Request, actorID, role string) {
	req.Header.Set(middleware.HeaderActorID, actorID)
	req.Header.Set(middleware.HeaderActorRole, role)
}

// --- Resources ---

func TestHandler_CreateResource_Success(t *testing.T) {
	resourceSvc, _, _, _, r := setupRouter(t)

	resource := &domain.Resource{
		ID:        uuid.New().String(),
		Kind:      domain.KindPlayer,
		Name:      "Point Guard",
		Price:     500,
		CreatedAt: time.Now(),
	}
	resourceSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(resource, nil)

	body, _ := json.Marshal(dto.CreateResourceRequest{Kind: "player", Name: "Point Guard", Price: 500})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/resources", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	asActor(req, uuid.New().String(), middleware.RoleAdmin)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.ResourceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Point Guard", resp.Name)
	assert.Equal(t, "player", resp.Kind)
}

func TestHandler_CreateResource_RequiresAdmin(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	body := []byte(`{"kind":"player","name":"X","price":100}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/resources", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	asActor(req, uuid.New().String(), middleware.RoleOwner)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_CreateResource_BadKind(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	body := []byte(`{"kind":"mascot","name":"X","price":100}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/resources", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	asActor(req, uuid.New().String(), middleware.RoleAdmin)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListResources_Success(t *testing.T) {
	resourceSvc, _, _, _, r := setupRouter(t)

	resources := []*domain.Resource{
		{ID: "r1", Kind: domain.KindPlayer, Name: "PG", CreatedAt: time.Now()},
		{ID: "r2", Kind: domain.KindCoach, Name: "Head Coach", CreatedAt: time.Now()},
	}
	resourceSvc.EXPECT().List(mock.Anything, domain.ResourceKind("")).Return(resources, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/resources", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.ResourceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestHandler_ListResources_KindFilter(t *testing.T) {
	resourceSvc, _, _, _, r := setupRouter(t)

	resourceSvc.EXPECT().List(mock.Anything, domain.KindCoach).Return(nil, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/resources?kind=coach", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_GetResourceAvailability_Success(t *testing.T) {
	resourceSvc, _, _, _, r := setupRouter(t)

	resourceID := uuid.New().String()
	resourceSvc.EXPECT().GetAvailability(mock.Anything, resourceID).Return(&domain.ResourceAvailability{
		ResourceID: resourceID,
		Available:  true,
	}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/resources/"+resourceID+"/availability", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.AvailabilityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Available)
}

func TestHandler_GetResourceAvailability_InvalidID(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/resources/not-a-uuid/availability", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Purchases and bookings ---

func TestHandler_PurchaseResource_Success(t *testing.T) {
	_, _, allocationSvc, _, r := setupRouter(t)

	resourceID := uuid.New().String()
	ownerID := uuid.New().String()
	alloc := &domain.Allocation{
		ID:         uuid.New().String(),
		ResourceID: resourceID,
		OwnerID:    ownerID,
		Kind:       domain.KindPlayer,
		Status:     domain.AllocationStatusBooked,
		PricePaid:  500,
		CreatedAt:  time.Now(),
	}

	allocationSvc.EXPECT().Purchase(mock.Anything, ownerID, resourceID, mock.Anything).Return(alloc, nil)

	body, _ := json.Marshal(dto.PurchaseRequest{OwnerID: ownerID})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/resources/"+resourceID+"/purchase", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	asActor(req, ownerID, middleware.RoleOwner)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.AllocationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "booked", resp.Status)
	assert.Equal(t, int64(500), resp.PricePaid)
}

func TestHandler_PurchaseResource_ForAnotherOwner(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	resourceID := uuid.New().String()
	body, _ := json.Marshal(dto.PurchaseRequest{OwnerID: uuid.New().String()})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/resources/"+resourceID+"/purchase", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	asActor(req, uuid.New().String(), middleware.RoleOwner) // not the owner in the body
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_PurchaseResource_Locked(t *testing.T) {
	_, _, allocationSvc, _, r := setupRouter(t)

	resourceID := uuid.New().String()
	ownerID := uuid.New().String()
	lockedErr := &domain.ResourceLockedError{
		ResourceID:  resourceID,
		HolderID:    "o2",
		LockedUntil: time.Now().Add(10 * 24 * time.Hour),
	}

	allocationSvc.EXPECT().Purchase(mock.Anything, ownerID, resourceID, mock.Anything).Return(nil, lockedErr)

	body, _ := json.Marshal(dto.PurchaseRequest{OwnerID: ownerID})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/resources/"+resourceID+"/purchase", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	asActor(req, ownerID, middleware.RoleOwner)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.HolderID)
	assert.Equal(t, "o2", *resp.HolderID)
	assert.NotNil(t, resp.LockedUntil)
}

func TestHandler_PurchaseResource_InsufficientFunds(t *testing.T) {
	_, _, allocationSvc, _, r := setupRouter(t)

	resourceID := uuid.New().String()
	ownerID := uuid.New().String()

	allocationSvc.EXPECT().Purchase(mock.Anything, ownerID, resourceID, mock.Anything).Return(nil, domain.ErrInsufficientFunds)

	body, _ := json.Marshal(dto.PurchaseRequest{OwnerID: ownerID})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/resources/"+resourceID+"/purchase", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	asActor(req, ownerID, middleware.RoleOwner)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_PurchaseResource_BadStartDate(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	resourceID := uuid.New().String()
	ownerID := uuid.New().String()
	body := []byte(`{"owner_id":"` + ownerID + `","start_date":"tomorrow"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/resources/"+resourceID+"/purchase", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	asActor(req, ownerID, middleware.RoleOwner)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_RequestBooking_Success(t *testing.T) {
	_, _, allocationSvc, _, r := setupRouter(t)

	resourceID := uuid.New().String()
	ownerID := uuid.New().String()
	alloc := &domain.Allocation{
		ID:         uuid.New().String(),
		ResourceID: resourceID,
		OwnerID:    ownerID,
		Status:     domain.AllocationStatusPending,
		CreatedAt:  time.Now(),
	}

	allocationSvc.EXPECT().RequestBooking(mock.Anything, ownerID, resourceID, mock.Anything).Return(alloc, nil)

	body, _ := json.Marshal(dto.BookingRequest{OwnerID: ownerID})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/resources/"+resourceID+"/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	asActor(req, ownerID, middleware.RoleOwner)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.AllocationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "pending", resp.Status)
}

func TestHandler_ApproveBooking_Success(t *testing.T) {
	_, _, allocationSvc, _, r := setupRouter(t)

	allocationID := uuid.New().String()
	alloc := &domain.Allocation{
		ID:        allocationID,
		Status:    domain.AllocationStatusBooked,
		CreatedAt: time.Now(),
	}

	allocationSvc.EXPECT().ApproveBooking(mock.Anything, allocationID).Return(alloc, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/"+allocationID+"/approve", nil)
	asActor(req, uuid.New().String(), middleware.RoleAdmin)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_ApproveBooking_RequiresAdmin(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/"+uuid.New().String()+"/approve", nil)
	asActor(req, uuid.New().String(), middleware.RoleOwner)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_ApproveBooking_WindowTaken(t *testing.T) {
	_, _, allocationSvc, _, r := setupRouter(t)

	allocationID := uuid.New().String()
	allocationSvc.EXPECT().ApproveBooking(mock.Anything, allocationID).Return(nil, domain.ErrResourceUnavailable)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/"+allocationID+"/approve", nil)
	asActor(req, uuid.New().String(), middleware.RoleAdmin)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_RejectBooking_NotPending(t *testing.T) {
	_, _, allocationSvc, _, r := setupRouter(t)

	allocationID := uuid.New().String()
	allocationSvc.EXPECT().RejectBooking(mock.Anything, allocationID).Return(nil, domain.ErrInvalidState)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/"+allocationID+"/reject", nil)
	asActor(req, uuid.New().String(), middleware.RoleAdmin)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

// --- Owners ---

func TestHandler_CreateOwner_Success(t *testing.T) {
	_, ownerSvc, _, _, r := setupRouter(t)

	owner := &domain.Owner{
		ID:          uuid.New().String(),
		DisplayName: "alice",
		Budget:      1000,
		CreatedAt:   time.Now(),
	}
	ownerSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(owner, nil)

	body, _ := json.Marshal(dto.CreateOwnerRequest{DisplayName: "alice", InitialBudget: 1000})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/owners", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	asActor(req, uuid.New().String(), middleware.RoleAdmin)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.OwnerResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "alice", resp.DisplayName)
	assert.Equal(t, int64(1000), resp.Budget)
}

func TestHandler_CreateOwner_BadRequest(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	body := []byte(`{}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/owners", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	asActor(req, uuid.New().String(), middleware.RoleAdmin)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListOwners_Success(t *testing.T) {
	_, ownerSvc, _, _, r := setupRouter(t)

	owners := []*domain.Owner{
		{ID: "o1", DisplayName: "alice", CreatedAt: time.Now()},
	}
	ownerSvc.EXPECT().List(mock.Anything).Return(owners, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/owners", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.OwnerResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestHandler_ListHeldResources_Success(t *testing.T) {
	_, _, allocationSvc, _, r := setupRouter(t)

	ownerID := uuid.New().String()
	resources := []*domain.Resource{
		{ID: "r1", Kind: domain.KindPlayer, Name: "PG", CreatedAt: time.Now()},
	}
	allocationSvc.EXPECT().ListHeldResources(mock.Anything, ownerID).Return(resources, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/owners/"+ownerID+"/resources", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.ResourceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestHandler_ListOwnerAllocations_NotFound(t *testing.T) {
	_, _, allocationSvc, _, r := setupRouter(t)

	ownerID := uuid.New().String()
	allocationSvc.EXPECT().ListByOwner(mock.Anything, ownerID).Return(nil, domain.ErrOwnerNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/owners/"+ownerID+"/allocations", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ReplaceRoster_Success(t *testing.T) {
	_, _, allocationSvc, _, r := setupRouter(t)

	ownerID := uuid.New().String()
	ids := []string{uuid.New().String(), uuid.New().String()}
	change := &domain.RosterChange{
		Allocations:     []*domain.Allocation{{ID: "a1"}, {ID: "a2"}},
		TotalCost:       700,
		RemainingBudget: 300,
	}

	allocationSvc.EXPECT().ReplaceRoster(mock.Anything, ownerID, ids).Return(change, nil)

	body, _ := json.Marshal(dto.ReplaceRosterRequest{ResourceIDs: ids})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/owners/"+ownerID+"/roster", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	asActor(req, ownerID, middleware.RoleOwner)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.RosterChangeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Allocations, 2)
	assert.Equal(t, int64(700), resp.TotalCost)
}

func TestHandler_ReplaceRoster_ForAnotherOwner(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	body, _ := json.Marshal(dto.ReplaceRosterRequest{ResourceIDs: []string{uuid.New().String()}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/owners/"+uuid.New().String()+"/roster", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	asActor(req, uuid.New().String(), middleware.RoleOwner)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_ReplaceRoster_TooMany(t *testing.T) {
	_, _, allocationSvc, _, r := setupRouter(t)

	ownerID := uuid.New().String()
	ids := make([]string, domain.RosterCap+1)
	for i := range ids {
		ids[i] = uuid.New().String()
	}

	allocationSvc.EXPECT().ReplaceRoster(mock.Anything, ownerID, ids).Return(nil, domain.ErrTooManyResources)

	body, _ := json.Marshal(dto.ReplaceRosterRequest{ResourceIDs: ids})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/owners/"+ownerID+"/roster", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	asActor(req, ownerID, middleware.RoleOwner)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreditBudget_Success(t *testing.T) {
	_, _, _, budgetSvc, r := setupRouter(t)

	ownerID := uuid.New().String()
	budgetSvc.EXPECT().Credit(mock.Anything, ownerID, int64(500)).Return(int64(1500), nil)

	body, _ := json.Marshal(dto.CreditBudgetRequest{Amount: 500})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/owners/"+ownerID+"/budget", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	asActor(req, uuid.New().String(), middleware.RoleAdmin)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BudgetResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(1500), resp.Budget)
}

func TestHandler_CreditBudget_NonPositiveAmount(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	ownerID := uuid.New().String()
	body := []byte(`{"amount":0}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/owners/"+ownerID+"/budget", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	asActor(req, uuid.New().String(), middleware.RoleAdmin)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_HandleError_InternalError(t *testing.T) {
	resourceSvc, _, _, _, r := setupRouter(t)

	resourceID := uuid.New().String()
	resourceSvc.EXPECT().GetAvailability(mock.Anything, resourceID).Return(nil, assert.AnError)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/resources/"+resourceID+"/availability", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
