package library

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/futig/fitplan-backend/internal/entity"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUsecase struct {
	plans []*entity.SavedPlan
	err   error

	gotSkip, gotLimit int
}

func (f *fakeUsecase) Save(_ context.Context, req *entity.SavePlanRequest) (*entity.SavedPlan, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &entity.SavedPlan{ID: "p1", Profile: req.Profile, Plan: req.Plan}, nil
}

func (f *fakeUsecase) Get(_ context.Context, id string) (*entity.SavedPlan, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &entity.SavedPlan{ID: id}, nil
}

func (f *fakeUsecase) List(_ context.Context, skip, limit int) ([]*entity.SavedPlan, error) {
	f.gotSkip, f.gotLimit = skip, limit
	return f.plans, f.err
}

func (f *fakeUsecase) Delete(context.Context, string) error {
	return f.err
}

func serve(uc LibraryUsecase, method, path, body string) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	RegisterRoutes(r, NewHandler(uc, 1<<20))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(body)))
	return rec
}

func TestSavePlan(t *testing.T) {
	body := `{"profile":{"name":"Ann","age":30,"goal":"Strength"},"plan":{"workout":"Day 1","fullPlan":"raw"}}`
	rec := serve(&fakeUsecase{}, http.MethodPost, "/api/plans/", body)

	require.Equal(t, http.StatusCreated, rec.Code)
	var saved entity.SavedPlan
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &saved))
	assert.Equal(t, "p1", saved.ID)
	assert.Equal(t, "Ann", saved.Profile.Name)
	assert.Equal(t, "Day 1", saved.Plan.Workout)
}

func TestListPlans(t *testing.T) {
	t.Run("passes paging", func(t *testing.T) {
		uc := &fakeUsecase{plans: []*entity.SavedPlan{{ID: "a"}, {ID: "b"}}}
		rec := serve(uc, http.MethodGet, "/api/plans/?skip=5&limit=2", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 5, uc.gotSkip)
		assert.Equal(t, 2, uc.gotLimit)

		var plans []entity.SavedPlan
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &plans))
		assert.Len(t, plans, 2)
	})

	t.Run("empty library is an empty array", func(t *testing.T) {
		rec := serve(&fakeUsecase{}, http.MethodGet, "/api/plans/", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})
}

func TestErrorStatuses(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		err        error
		wantStatus int
	}{
		{"not found", http.MethodGet, "/api/plans/nope", "", fmt.Errorf("%w: nope", entity.ErrPlanNotFound), http.StatusNotFound},
		{"delete not found", http.MethodDelete, "/api/plans/nope", "", entity.ErrPlanNotFound, http.StatusNotFound},
		{"malformed id", http.MethodGet, "/api/plans/nope", "", fmt.Errorf("%w: id", entity.ErrInvalidParameter), http.StatusBadRequest},
		{"invalid profile", http.MethodPost, "/api/plans/", `{"profile":{}}`, fmt.Errorf("%w: name", entity.ErrMissingField), http.StatusBadRequest},
		{"malformed body", http.MethodPost, "/api/plans/", `{`, nil, http.StatusBadRequest},
		{"storage failure", http.MethodGet, "/api/plans/", "", fmt.Errorf("connection refused"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := serve(&fakeUsecase{err: tc.err}, tc.method, tc.path, tc.body)
			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}

func TestDeletePlan(t *testing.T) {
	rec := serve(&fakeUsecase{}, http.MethodDelete, "/api/plans/p1", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
