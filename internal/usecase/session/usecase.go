package session

import (
	"context"
	"fmt"
	"time"

	"github.com/futig/fitplan-backend/internal/entity"
	"github.com/futig/fitplan-backend/internal/pkg/classifier"
	"github.com/futig/fitplan-backend/internal/pkg/logger"
	"github.com/google/uuid"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// SessionUsecase exposes per-session plan requests. Generation runs in the
// background; callers observe it through Get or Await.
type SessionUsecase struct {
	store      *Store
	planner    Planner
	saver      PlanSaver
	classifier *classifier.Classifier
	logger     *zap.Logger
}

func NewUsecase(
	store *Store,
	planner Planner,
	saver PlanSaver,
	credential entity.Credential,
	logger *zap.Logger,
) *SessionUsecase {
	return &SessionUsecase{
		store:      store,
		planner:    planner,
		saver:      saver,
		classifier: classifier.New(credential, "fitness plan"),
		logger:     logger,
	}
}

// Create starts a new idle session.
func (uc *SessionUsecase) Create(ctx context.Context) *entity.SessionDTO {
	return uc.Open(ctx, uuid.New().String())
}

// Open returns the session with the given id, creating it when absent.
// Front-ends with their own identity (a chat id) use it instead of Create.
func (uc *SessionUsecase) Open(ctx context.Context, id string) *entity.SessionDTO {
	if s, ok := uc.store.Get(id); ok {
		return toDTO(s.ID, s.Machine.Snapshot())
	}

	s := &Session{ID: id, CreatedAt: time.Now(), Machine: NewMachine()}
	uc.store.Put(s)

	ctxzap.Info(ctx, "session created", zap.String("session_id", id))

	return toDTO(s.ID, s.Machine.Snapshot())
}

func (uc *SessionUsecase) Get(_ context.Context, id string) (*entity.SessionDTO, error) {
	s, err := uc.session(id)
	if err != nil {
		return nil, err
	}
	return toDTO(s.ID, s.Machine.Snapshot()), nil
}

// Generate enters Loading and runs the pipeline for profile in the background.
func (uc *SessionUsecase) Generate(ctx context.Context, id string, profile *entity.Profile) (*entity.SessionDTO, error) {
	s, err := uc.session(id)
	if err != nil {
		return nil, err
	}

	runCtx, cancel := uc.runContext(ctx, id)
	token, err := s.Machine.Begin(profile, cancel)
	if err != nil {
		cancel()
		return nil, err
	}

	go uc.run(runCtx, s.Machine, token, profile)

	return toDTO(s.ID, s.Machine.Snapshot()), nil
}

// Retry repeats the previous request with the same profile.
func (uc *SessionUsecase) Retry(ctx context.Context, id string) (*entity.SessionDTO, error) {
	s, err := uc.session(id)
	if err != nil {
		return nil, err
	}

	runCtx, cancel := uc.runContext(ctx, id)
	token, profile, err := s.Machine.BeginRetry(cancel)
	if err != nil {
		cancel()
		return nil, err
	}

	ctxzap.Info(ctx, "retrying plan request", zap.String("session_id", id))

	go uc.run(runCtx, s.Machine, token, profile)

	return toDTO(s.ID, s.Machine.Snapshot()), nil
}

// Await blocks until the current request settles or ctx is done.
func (uc *SessionUsecase) Await(ctx context.Context, id string) (*entity.SessionDTO, error) {
	s, err := uc.session(id)
	if err != nil {
		return nil, err
	}

	select {
	case <-s.Machine.Done():
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	return toDTO(s.ID, s.Machine.Snapshot()), nil
}

// Save archives the session's successful plan in the plan library.
func (uc *SessionUsecase) Save(ctx context.Context, id string) (*entity.SavedPlan, error) {
	s, err := uc.session(id)
	if err != nil {
		return nil, err
	}

	state := s.Machine.Snapshot()
	profile := s.Machine.Profile()
	if state.Status != entity.RequestStatusSuccess || state.Plan == nil || profile == nil {
		return nil, entity.ErrNoPlan
	}

	saved, err := uc.saver.Save(ctx, &entity.SavePlanRequest{Profile: *profile, Plan: *state.Plan})
	if err != nil {
		return nil, fmt.Errorf("save plan: %w", err)
	}

	return saved, nil
}

// Delete discards the session, abandoning any in-flight request.
func (uc *SessionUsecase) Delete(ctx context.Context, id string) error {
	if !uc.store.Delete(id) {
		return entity.ErrSessionNotFound
	}
	ctxzap.Info(ctx, "session deleted", zap.String("session_id", id))
	return nil
}

func (uc *SessionUsecase) session(id string) (*Session, error) {
	s, ok := uc.store.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", entity.ErrSessionNotFound, id)
	}
	return s, nil
}

// runContext outlives the request that started generation but keeps its logger.
func (uc *SessionUsecase) runContext(ctx context.Context, id string) (context.Context, context.CancelFunc) {
	runCtx := logger.AddFields(logger.Detach(ctx), zap.String("session_id", id))
	return context.WithCancel(runCtx)
}

func (uc *SessionUsecase) run(ctx context.Context, m *Machine, token uint64, profile *entity.Profile) {
	defer func() {
		if r := recover(); r != nil {
			ctxzap.Error(ctx, "plan generation panicked", zap.Any("panic", r))
			m.Fail(token, uc.classifier.Classify(fmt.Errorf("panic: %v", r)))
		}
	}()

	plan, err := uc.planner.Generate(ctx, profile)
	if err != nil {
		if !m.Fail(token, uc.classifier.Classify(err)) {
			ctxzap.Info(ctx, "stale plan failure discarded")
		}
		return
	}

	if !m.Succeed(token, plan) {
		ctxzap.Info(ctx, "stale plan result discarded")
	}
}

func toDTO(id string, state entity.RequestState) *entity.SessionDTO {
	dto := &entity.SessionDTO{
		ID:       id,
		State:    state.Status,
		Plan:     state.Plan,
		Error:    state.Error,
		CanRetry: state.CanRetry(),
	}
	if state.Error != nil {
		dto.Outcome = state.Error.Outcome()
	}
	return dto
}
