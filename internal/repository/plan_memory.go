package repository

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/futig/fitplan-backend/internal/entity"
	"github.com/patrickmn/go-cache"
)

// PlanMemory keeps saved plans in process memory. It is used when no database is configured.
type PlanMemory struct {
	mu    sync.Mutex
	cache *cache.Cache
}

func NewPlanMemory() *PlanMemory {
	return &PlanMemory{cache: cache.New(cache.NoExpiration, 0)}
}

func (r *PlanMemory) Create(_ context.Context, plan entity.SavedPlan) (*entity.SavedPlan, error) {
	if _, err := parseID(plan.ID); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored := plan
	r.cache.Set(plan.ID, &stored, cache.NoExpiration)

	result := stored
	return &result, nil
}

func (r *PlanMemory) Get(_ context.Context, id string) (*entity.SavedPlan, error) {
	if _, err := parseID(id); err != nil {
		return nil, err
	}

	v, ok := r.cache.Get(id)
	if !ok {
		return nil, entity.ErrPlanNotFound
	}

	result := *v.(*entity.SavedPlan)
	return &result, nil
}

func (r *PlanMemory) List(_ context.Context, skip, limit int) ([]*entity.SavedPlan, error) {
	items := r.cache.Items()

	plans := make([]*entity.SavedPlan, 0, len(items))
	for _, item := range items {
		plan := *item.Object.(*entity.SavedPlan)
		plans = append(plans, &plan)
	}

	slices.SortFunc(plans, func(a, b *entity.SavedPlan) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})

	if skip >= len(plans) {
		return []*entity.SavedPlan{}, nil
	}
	end := min(skip+limit, len(plans))
	return plans[skip:end], nil
}

func (r *PlanMemory) Delete(_ context.Context, id string) error {
	if _, err := parseID(id); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.cache.Get(id); !ok {
		return entity.ErrPlanNotFound
	}
	r.cache.Delete(id)
	return nil
}
