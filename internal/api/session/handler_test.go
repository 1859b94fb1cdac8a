package session

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
	dto   *entity.SessionDTO
	saved *entity.SavedPlan
	err   error

	gotID      string
	gotProfile *entity.Profile
}

func (f *fakeUsecase) Create(context.Context) *entity.SessionDTO {
	return &entity.SessionDTO{ID: "new", State: entity.RequestStatusIdle}
}

func (f *fakeUsecase) Get(_ context.Context, id string) (*entity.SessionDTO, error) {
	f.gotID = id
	return f.dto, f.err
}

func (f *fakeUsecase) Generate(_ context.Context, id string, profile *entity.Profile) (*entity.SessionDTO, error) {
	f.gotID, f.gotProfile = id, profile
	return f.dto, f.err
}

func (f *fakeUsecase) Retry(_ context.Context, id string) (*entity.SessionDTO, error) {
	f.gotID = id
	return f.dto, f.err
}

func (f *fakeUsecase) Save(_ context.Context, id string) (*entity.SavedPlan, error) {
	f.gotID = id
	return f.saved, f.err
}

func (f *fakeUsecase) Delete(_ context.Context, id string) error {
	f.gotID = id
	return f.err
}

func serve(uc SessionUsecase, method, path, body string) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	RegisterRoutes(r, NewHandler(uc, 1<<20))

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestCreateSession(t *testing.T) {
	rec := serve(&fakeUsecase{}, http.MethodPost, "/api/sessions/", "")

	require.Equal(t, http.StatusCreated, rec.Code)
	var dto entity.SessionDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dto))
	assert.Equal(t, "new", dto.ID)
	assert.Equal(t, entity.RequestStatusIdle, dto.State)
	assert.False(t, dto.CanRetry)
}

func TestGeneratePlan(t *testing.T) {
	uc := &fakeUsecase{dto: &entity.SessionDTO{ID: "s1", State: entity.RequestStatusLoading}}
	rec := serve(uc, http.MethodPost, "/api/sessions/s1/generate", `{"name":"Ann","age":30,"goal":"Strength"}`)

	require.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "s1", uc.gotID)
	require.NotNil(t, uc.gotProfile)
	assert.Equal(t, "Ann", uc.gotProfile.Name)

	var dto entity.SessionDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dto))
	assert.Equal(t, entity.RequestStatusLoading, dto.State)
}

func TestGeneratePlanMalformedBody(t *testing.T) {
	uc := &fakeUsecase{}
	rec := serve(uc, http.MethodPost, "/api/sessions/s1/generate", `not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.gotProfile)
}

func TestUsecaseErrorStatuses(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		err        error
		wantStatus int
	}{
		{"unknown session", http.MethodGet, "/api/sessions/x", fmt.Errorf("%w: x", entity.ErrSessionNotFound), http.StatusNotFound},
		{"in flight", http.MethodPost, "/api/sessions/x/retry", entity.ErrRequestInFlight, http.StatusConflict},
		{"retry disabled", http.MethodPost, "/api/sessions/x/retry", entity.ErrRetryDisabled, http.StatusConflict},
		{"nothing to retry", http.MethodPost, "/api/sessions/x/retry", entity.ErrNothingToRetry, http.StatusConflict},
		{"no plan to save", http.MethodPost, "/api/sessions/x/save", entity.ErrNoPlan, http.StatusConflict},
		{"invalid saved plan", http.MethodPost, "/api/sessions/x/save", fmt.Errorf("save plan: %w", entity.ErrInvalidParameter), http.StatusBadRequest},
		{"unexpected", http.MethodDelete, "/api/sessions/x", fmt.Errorf("disk on fire"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := serve(&fakeUsecase{err: tc.err}, tc.method, tc.path, "")

			require.Equal(t, tc.wantStatus, rec.Code)
			var resp entity.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, http.StatusText(tc.wantStatus), resp.Error)
		})
	}
}

func TestSaveAndDelete(t *testing.T) {
	uc := &fakeUsecase{saved: &entity.SavedPlan{ID: "p1"}}

	rec := serve(uc, http.MethodPost, "/api/sessions/s1/save", "")
	require.Equal(t, http.StatusCreated, rec.Code)
	var saved entity.SavedPlan
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &saved))
	assert.Equal(t, "p1", saved.ID)

	rec = serve(uc, http.MethodDelete, "/api/sessions/s1", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "s1", uc.gotID)
}
