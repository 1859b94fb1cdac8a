package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/futig/fitplan-backend/internal/entity"
)

func noop() {}

var (
	upstreamErr = &entity.AppError{Kind: entity.ErrorKindUpstream, Message: "try again"}
	setupErr    = &entity.AppError{Kind: entity.ErrorKindInvalidCredential, Message: "bad key", NeedsSetup: true}
	testProfile = &entity.Profile{Name: "Ann", Age: 30, Goal: entity.GoalStrength}
	testPlan    = &entity.Plan{Workout: "w", Diet: "d", Tips: "t", Motivation: "m"}
)

func TestMachineHappyPath(t *testing.T) {
	m := NewMachine()
	assert.Equal(t, entity.RequestStatusIdle, m.Snapshot().Status)
	assert.False(t, m.Snapshot().CanRetry())

	token, err := m.Begin(testProfile, noop)
	require.NoError(t, err)
	assert.Equal(t, entity.RequestStatusLoading, m.Snapshot().Status)

	require.True(t, m.Succeed(token, testPlan))
	state := m.Snapshot()
	assert.Equal(t, entity.RequestStatusSuccess, state.Status)
	assert.Same(t, testPlan, state.Plan)
	assert.Nil(t, state.Error)
}

func TestMachineSingleRequestInFlight(t *testing.T) {
	m := NewMachine()
	_, err := m.Begin(testProfile, noop)
	require.NoError(t, err)

	_, err = m.Begin(testProfile, noop)
	assert.ErrorIs(t, err, entity.ErrRequestInFlight)

	_, _, err = m.BeginRetry(noop)
	assert.ErrorIs(t, err, entity.ErrRequestInFlight)
}

func TestMachineRetryRules(t *testing.T) {
	tests := []struct {
		name    string
		settle  func(m *Machine, token uint64)
		wantErr error
	}{
		{name: "retry after upstream failure", settle: func(m *Machine, tok uint64) { m.Fail(tok, upstreamErr) }},
		{name: "retry after success", settle: func(m *Machine, tok uint64) { m.Succeed(tok, testPlan) }},
		{name: "retry disabled after setup failure", settle: func(m *Machine, tok uint64) { m.Fail(tok, setupErr) }, wantErr: entity.ErrRetryDisabled},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := NewMachine()
			token, err := m.Begin(testProfile, noop)
			require.NoError(t, err)
			tc.settle(m, token)

			_, profile, err := m.BeginRetry(noop)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Equal(t, entity.RequestStatusError, m.Snapshot().Status)
				return
			}
			require.NoError(t, err)
			assert.Same(t, testProfile, profile)
			assert.Equal(t, entity.RequestStatusLoading, m.Snapshot().Status)
			assert.Nil(t, m.Snapshot().Plan)
			assert.Nil(t, m.Snapshot().Error)
		})
	}
}

func TestMachineNothingToRetry(t *testing.T) {
	_, _, err := NewMachine().BeginRetry(noop)
	assert.ErrorIs(t, err, entity.ErrNothingToRetry)
}

func TestMachineFreshGenerateAfterSetupFailure(t *testing.T) {
	m := NewMachine()
	token, _ := m.Begin(testProfile, noop)
	m.Fail(token, setupErr)

	_, err := m.Begin(testProfile, noop)
	assert.NoError(t, err)
}

func TestMachineDiscardsStaleResults(t *testing.T) {
	m := NewMachine()
	first, _ := m.Begin(testProfile, noop)
	require.True(t, m.Fail(first, upstreamErr))

	second, _, err := m.BeginRetry(noop)
	require.NoError(t, err)

	assert.False(t, m.Succeed(first, testPlan))
	assert.Equal(t, entity.RequestStatusLoading, m.Snapshot().Status)

	assert.True(t, m.Succeed(second, testPlan))
	assert.False(t, m.Fail(second, upstreamErr))
	assert.Equal(t, entity.RequestStatusSuccess, m.Snapshot().Status)
}

func TestMachineAbandonCancelsAndCloses(t *testing.T) {
	m := NewMachine()
	cancelled := false
	token, _ := m.Begin(testProfile, func() { cancelled = true })
	done := m.Done()

	m.Abandon()

	assert.True(t, cancelled)
	assert.False(t, m.Succeed(token, testPlan))
	select {
	case <-done:
	default:
		t.Fatal("done channel not closed")
	}
}
