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

func TestResourceService_Create_Success(t *testing.T) {
	repo := mocks.NewMockResourceRepo(t)
	svc := NewResourceService(repo, newTestLogger(t), fixedClock)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	resource, err := svc.Create(context.Background(), domain.CreateResourceInput{
		Kind:  domain.KindPlayer,
		Name:  "Shooting Guard",
		Price: 250,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.KindPlayer, resource.Kind)
	assert.Equal(t, int64(250), resource.Price)
	assert.NotEmpty(t, resource.ID)
}

func TestResourceService_Create_Validation(t *testing.T) {
	repo := mocks.NewMockResourceRepo(t)
	svc := NewResourceService(repo, newTestLogger(t), fixedClock)

	cases := []struct {
		name  string
		input domain.CreateResourceInput
	}{
		{"empty name", domain.CreateResourceInput{Kind: domain.KindPlayer, Price: 100}},
		{"negative price", domain.CreateResourceInput{Kind: domain.KindPlayer, Name: "x", Price: -1}},
		{"bad kind", domain.CreateResourceInput{Kind: "mascot", Name: "x", Price: 100}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tc.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestResourceService_List_SweepsFirst(t *testing.T) {
	repo := mocks.NewMockResourceRepo(t)
	svc := NewResourceService(repo, newTestLogger(t), fixedClock)

	resources := []*domain.Resource{{ID: "r1", Kind: domain.KindPlayer}}

	repo.EXPECT().ReclaimExpired(mock.Anything, testNow).Return(nil, nil)
	repo.EXPECT().List(mock.Anything, domain.KindPlayer).Return(resources, nil)

	result, err := svc.List(context.Background(), domain.KindPlayer)

	require.NoError(t, err)
	assert.Len(t, result, 1)
}

func TestResourceService_List_BadKind(t *testing.T) {
	repo := mocks.NewMockResourceRepo(t)
	svc := NewResourceService(repo, newTestLogger(t), fixedClock)

	_, err := svc.List(context.Background(), "mascot")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestResourceService_GetAvailability_Free(t *testing.T) {
	repo := mocks.NewMockResourceRepo(t)
	svc := NewResourceService(repo, newTestLogger(t), fixedClock)

	repo.EXPECT().ReclaimExpiredByID(mock.Anything, "r1", testNow).Return(nil)
	repo.EXPECT().GetByID(mock.Anything, "r1").Return(&domain.Resource{ID: "r1"}, nil)

	availability, err := svc.GetAvailability(context.Background(), "r1")

	require.NoError(t, err)
	assert.True(t, availability.Available)
	assert.Nil(t, availability.CurrentOwnerID)
}

func TestResourceService_GetAvailability_Locked(t *testing.T) {
	repo := mocks.NewMockResourceRepo(t)
	svc := NewResourceService(repo, newTestLogger(t), fixedClock)

	holder := "o1"
	until := testNow.Add(10 * 24 * time.Hour)
	locked := &domain.Resource{
		ID:             "r1",
		CurrentOwnerID: &holder,
		LockedUntil:    &until,
	}

	repo.EXPECT().ReclaimExpiredByID(mock.Anything, "r1", testNow).Return(nil)
	repo.EXPECT().GetByID(mock.Anything, "r1").Return(locked, nil)

	availability, err := svc.GetAvailability(context.Background(), "r1")

	require.NoError(t, err)
	assert.False(t, availability.Available)
	require.NotNil(t, availability.CurrentOwnerID)
	assert.Equal(t, "o1", *availability.CurrentOwnerID)
	assert.Equal(t, until, *availability.LockedUntil)
}

func TestResourceService_GetAvailability_NotFound(t *testing.T) {
	repo := mocks.NewMockResourceRepo(t)
	svc := NewResourceService(repo, newTestLogger(t), fixedClock)

	repo.EXPECT().ReclaimExpiredByID(mock.Anything, "missing", testNow).Return(nil)
	repo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrResourceNotFound)

	_, err := svc.GetAvailability(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrResourceNotFound)
}
