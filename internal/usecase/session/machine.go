package session

import (
	"context"
	"sync"

	"github.com/futig/fitplan-backend/internal/entity"
)

// Machine is the plan request state machine of one session.
//
//	Idle | Success | Error --Begin--> Loading
//	Success | Error(!needsSetup) --BeginRetry--> Loading
//	Loading --Succeed--> Success(plan)
//	Loading --Fail--> Error(kind)
//
// Every Begin issues a new token; Succeed and Fail carrying an older token are
// discarded, so at most one request per session can land its result.
type Machine struct {
	mu      sync.Mutex
	state   entity.RequestState
	profile *entity.Profile
	token   uint64
	cancel  context.CancelFunc
	done    chan struct{}
}

func NewMachine() *Machine {
	done := make(chan struct{})
	close(done)
	return &Machine{
		state: entity.RequestState{Status: entity.RequestStatusIdle},
		done:  done,
	}
}

// Snapshot returns the current state.
func (m *Machine) Snapshot() entity.RequestState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Profile returns the profile of the latest request, nil before the first one.
func (m *Machine) Profile() *entity.Profile {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.profile
}

// Done is closed once the current request settles. It is already closed outside Loading.
func (m *Machine) Done() <-chan struct{} {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.done
}

// Begin enters Loading for a fresh request, discarding the previous payload.
func (m *Machine) Begin(profile *entity.Profile, cancel context.CancelFunc) (uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state.Status == entity.RequestStatusLoading {
		return 0, entity.ErrRequestInFlight
	}

	return m.enterLoading(profile, cancel), nil
}

// BeginRetry re-enters Loading with the previous profile. Retry is refused while
// a request is in flight, before any request, and after a failure that needs setup.
func (m *Machine) BeginRetry(cancel context.CancelFunc) (uint64, *entity.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch {
	case m.state.Status == entity.RequestStatusLoading:
		return 0, nil, entity.ErrRequestInFlight
	case m.profile == nil || m.state.Status == entity.RequestStatusIdle:
		return 0, nil, entity.ErrNothingToRetry
	case !m.state.CanRetry():
		return 0, nil, entity.ErrRetryDisabled
	}

	profile := m.profile
	return m.enterLoading(profile, cancel), profile, nil
}

func (m *Machine) enterLoading(profile *entity.Profile, cancel context.CancelFunc) uint64 {
	m.token++
	m.profile = profile
	m.cancel = cancel
	m.done = make(chan struct{})
	m.state = entity.RequestState{Status: entity.RequestStatusLoading}
	return m.token
}

// Succeed settles the request identified by token with a plan.
// It reports false when the token is stale and the result was discarded.
func (m *Machine) Succeed(token uint64, plan *entity.Plan) bool {
	return m.settle(token, entity.RequestState{Status: entity.RequestStatusSuccess, Plan: plan})
}

// Fail settles the request identified by token with a classified error.
func (m *Machine) Fail(token uint64, appErr *entity.AppError) bool {
	return m.settle(token, entity.RequestState{Status: entity.RequestStatusError, Error: appErr})
}

func (m *Machine) settle(token uint64, next entity.RequestState) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if token != m.token || m.state.Status != entity.RequestStatusLoading {
		return false
	}

	m.state = next
	m.release()
	return true
}

// Abandon cancels the in-flight request, if any, and makes its result stale.
// The session is expected to be discarded afterwards.
func (m *Machine) Abandon() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.token++
	m.release()
}

func (m *Machine) release() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	select {
	case <-m.done:
	default:
		close(m.done)
	}
}
