package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/futig/fitplan-backend/internal/entity"
)

func savedPlan(name string, createdAt time.Time) entity.SavedPlan {
	return entity.SavedPlan{
		ID:        uuid.New().String(),
		Profile:   entity.Profile{Name: name, Age: 30, Goal: entity.GoalStrength},
		Plan:      entity.Plan{Workout: "w", Diet: "d", Tips: "t", Motivation: "m"},
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}

func TestPlanMemoryCRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewPlanMemory()
	now := time.Now()

	older, err := repo.Create(ctx, savedPlan("Ann", now.Add(-time.Hour)))
	require.NoError(t, err)
	newer, err := repo.Create(ctx, savedPlan("Bob", now))
	require.NoError(t, err)

	got, err := repo.Get(ctx, older.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ann", got.Profile.Name)

	list, err := repo.List(ctx, 0, 10)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, newer.ID, list[0].ID)
	assert.Equal(t, older.ID, list[1].ID)

	page, err := repo.List(ctx, 1, 10)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, older.ID, page[0].ID)

	empty, err := repo.List(ctx, 5, 10)
	require.NoError(t, err)
	assert.Empty(t, empty)

	require.NoError(t, repo.Delete(ctx, older.ID))
	_, err = repo.Get(ctx, older.ID)
	assert.ErrorIs(t, err, entity.ErrPlanNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, older.ID), entity.ErrPlanNotFound)
}

func TestPlanMemoryRejectsMalformedID(t *testing.T) {
	repo := NewPlanMemory()

	_, err := repo.Get(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, entity.ErrInvalidParameter)
}

func TestPlanMemoryReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewPlanMemory()

	created, err := repo.Create(ctx, savedPlan("Ann", time.Now()))
	require.NoError(t, err)
	created.Profile.Name = "Mallory"

	got, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ann", got.Profile.Name)
}
