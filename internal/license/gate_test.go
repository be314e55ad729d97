package license

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	app_errors "omnichat/client/internal/errors"
	"omnichat/client/internal/model"
	"omnichat/client/internal/repository/mocks"
)

type mockActivator struct {
	mock.Mock
}

func (m *mockActivator) Activate(ctx context.Context, key, instanceName string) (*Result, error) {
	args := m.Called(ctx, key, instanceName)
	res, _ := args.Get(0).(*Result)
	return res, args.Error(1)
}

func (m *mockActivator) Deactivate(ctx context.Context, key, instanceID string) (*Result, error) {
	args := m.Called(ctx, key, instanceID)
	res, _ := args.Get(0).(*Result)
	return res, args.Error(1)
}

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time { return c.t }

func newTestGate(t *testing.T, clock *fakeClock) (*Gate, *mocks.MockRepository, *mockActivator) {
	t.Helper()
	repo := mocks.NewMockRepository(t)
	activator := &mockActivator{}
	t.Cleanup(func() { activator.AssertExpectations(t) })
	gate := NewGate(repo, activator, Config{
		InstanceName:    "test-host",
		GracePeriodDays: 7,
		Now:             clock.Now,
		Location:        time.UTC,
	})
	return gate, repo, activator
}

func hasValue(key, value string) interface{} {
	return mock.MatchedBy(func(m map[string]string) bool { return m[key] == value })
}

func TestGate_FirstLoadPersistsInstallTime(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{t: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)}
	gate, repo, _ := newTestGate(t, clock)

	repo.On("GetSettings", ctx).Return(map[string]string{}, nil).Once()
	repo.On("SaveSettings", ctx, hasValue(keyInstalledAt, "2024-03-01T10:00:00Z")).Return(nil).Once()

	require.NoError(t, gate.Load(ctx))

	state := gate.State()
	assert.Equal(t, model.LicenseInactive, state.Status)
	assert.True(t, state.InstalledAt.Equal(clock.t))
	assert.Equal(t, 7, gate.GraceDaysRemaining())
	assert.False(t, gate.RequiresActivation())
}

func TestGate_LoadKeepsStoredInstallTime(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{t: time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC)}
	gate, repo, _ := newTestGate(t, clock)

	// No SaveSettings expectation: nothing is rewritten.
	repo.On("GetSettings", ctx).Return(map[string]string{
		keyInstalledAt: "2024-03-01T10:00:00Z",
		keyStatus:      "inactive",
	}, nil).Once()

	require.NoError(t, gate.Load(ctx))
	assert.Equal(t, 3, gate.GraceDaysRemaining())
}

func TestGate_LoadTurnsInterruptedCheckIntoUnverified(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{t: time.Date(2024, 3, 2, 9, 0, 0, 0, time.UTC)}
	gate, repo, _ := newTestGate(t, clock)

	repo.On("GetSettings", ctx).Return(map[string]string{
		keyInstalledAt: "2024-03-01T10:00:00Z",
		keyStatus:      "checking",
	}, nil).Once()
	repo.On("SaveSettings", ctx, hasValue(keyStatus, "unverified")).Return(nil).Once()

	require.NoError(t, gate.Load(ctx))
	assert.Equal(t, model.LicenseUnverified, gate.State().Status)
}

func TestGate_LoadError(t *testing.T) {
	ctx := context.Background()
	gate, repo, _ := newTestGate(t, &fakeClock{t: time.Now()})
	repo.On("GetSettings", ctx).Return(nil, errors.New("disk I/O error")).Once()

	assert.Error(t, gate.Load(ctx))
}

func TestGate_GraceDaysNeverIncrease(t *testing.T) {
	ctx := context.Background()
	installed := time.Date(2024, 3, 1, 23, 30, 0, 0, time.UTC)
	clock := &fakeClock{t: installed}
	gate, repo, _ := newTestGate(t, clock)

	repo.On("GetSettings", ctx).Return(map[string]string{
		keyInstalledAt: installed.Format(time.RFC3339),
	}, nil).Once()
	require.NoError(t, gate.Load(ctx))

	previous := gate.GraceDaysRemaining()
	assert.Equal(t, 7, previous)
	for i := 0; i < 12*24; i++ {
		clock.t = clock.t.Add(time.Hour)
		current := gate.GraceDaysRemaining()
		assert.LessOrEqual(t, current, previous, "at %s", clock.t)
		assert.GreaterOrEqual(t, current, 0)
		previous = current
	}
	assert.Equal(t, 0, previous)
}

func TestGate_GraceCountsCalendarDays(t *testing.T) {
	ctx := context.Background()
	installed := time.Date(2024, 3, 1, 23, 50, 0, 0, time.UTC)
	clock := &fakeClock{t: installed}
	gate, repo, _ := newTestGate(t, clock)

	repo.On("GetSettings", ctx).Return(map[string]string{
		keyInstalledAt: installed.Format(time.RFC3339),
	}, nil).Once()
	require.NoError(t, gate.Load(ctx))

	// Twenty minutes later it is already the next day.
	clock.t = installed.Add(20 * time.Minute)
	assert.Equal(t, 6, gate.GraceDaysRemaining())

	// Sixth calendar day after install: one day left.
	clock.t = time.Date(2024, 3, 7, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, 1, gate.GraceDaysRemaining())
	assert.False(t, gate.RequiresActivation())

	// The seventh midnight ends the trial.
	clock.t = time.Date(2024, 3, 8, 0, 0, 1, 0, time.UTC)
	assert.Equal(t, 0, gate.GraceDaysRemaining())
	assert.True(t, gate.RequiresActivation())
}

func TestGate_ExpiredTrialBlocksActions(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{t: time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC)}
	gate, repo, _ := newTestGate(t, clock)

	repo.On("GetSettings", ctx).Return(map[string]string{
		keyInstalledAt: "2024-03-01T12:00:00Z",
		keyStatus:      "inactive",
	}, nil).Once()
	require.NoError(t, gate.Load(ctx))

	assert.Equal(t, 0, gate.GraceDaysRemaining())
	assert.True(t, gate.RequiresActivation())
	assert.ErrorIs(t, gate.Check("send"), app_errors.ErrActivationRequired)
	assert.ErrorIs(t, gate.Check("send"), app_errors.ErrPermission)
}

func TestGate_ActiveLicenseIsNeverBlocked(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{t: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	gate, repo, _ := newTestGate(t, clock)

	repo.On("GetSettings", ctx).Return(map[string]string{
		keyInstalledAt: "2024-03-01T12:00:00Z",
		keyStatus:      "active",
		keyKey:         "KEY-1",
		keyInstanceID:  "inst-1",
	}, nil).Once()
	require.NoError(t, gate.Load(ctx))

	assert.False(t, gate.RequiresActivation())
	assert.NoError(t, gate.Check("compare"))
	assert.Equal(t, "inst-1", gate.State().InstanceID)
}

func loadedGate(t *testing.T, settings map[string]string) (*Gate, *mocks.MockRepository, *mockActivator, *fakeClock) {
	t.Helper()
	clock := &fakeClock{t: time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)}
	gate, repo, activator := newTestGate(t, clock)
	if settings[keyInstalledAt] == "" {
		settings[keyInstalledAt] = "2024-03-01T12:00:00Z"
	}
	repo.On("GetSettings", mock.Anything).Return(settings, nil).Once()
	require.NoError(t, gate.Load(context.Background()))
	return gate, repo, activator, clock
}

func TestGate_ActivateSuccess(t *testing.T) {
	ctx := context.Background()
	gate, repo, activator, _ := loadedGate(t, map[string]string{})

	repo.On("SaveSettings", ctx, map[string]string{keyStatus: "checking"}).Return(nil).Once()
	activator.On("Activate", ctx, "KEY-123", "test-host").
		Return(&Result{Success: true, Message: "License activated successfully!", InstanceID: "inst-9"}, nil).Once()
	repo.On("SaveSettings", ctx, map[string]string{
		keyStatus:      "active",
		keyMessage:     "License activated successfully!",
		keyKey:         "KEY-123",
		keyInstanceID:  "inst-9",
		keyActivatedAt: "2024-03-20T12:00:00Z",
	}).Return(nil).Once()

	state, err := gate.Activate(ctx, "  KEY-123 ")
	require.NoError(t, err)
	assert.Equal(t, model.LicenseActive, state.Status)
	assert.Equal(t, "inst-9", state.InstanceID)
	require.NotNil(t, state.ActivatedAt)
	assert.False(t, gate.RequiresActivation())
}

func TestGate_ActivateRejected(t *testing.T) {
	ctx := context.Background()
	gate, repo, activator, _ := loadedGate(t, map[string]string{})

	repo.On("SaveSettings", ctx, map[string]string{keyStatus: "checking"}).Return(nil).Once()
	activator.On("Activate", ctx, "BAD", "test-host").
		Return(&Result{Success: false, Message: "This license key has expired."}, nil).Once()
	repo.On("SaveSettings", ctx, map[string]string{
		keyStatus:  "error",
		keyMessage: "This license key has expired.",
	}).Return(nil).Once()

	state, err := gate.Activate(ctx, "BAD")
	require.NoError(t, err)
	assert.Equal(t, model.LicenseError, state.Status)
	assert.Equal(t, "This license key has expired.", state.Message)
	assert.True(t, gate.RequiresActivation())
}

func TestGate_ActivateTransportFailure(t *testing.T) {
	ctx := context.Background()
	gate, repo, activator, _ := loadedGate(t, map[string]string{})

	repo.On("SaveSettings", ctx, map[string]string{keyStatus: "checking"}).Return(nil).Once()
	activator.On("Activate", ctx, "KEY", "test-host").Return(nil, errors.New("dial tcp: no route to host")).Once()
	repo.On("SaveSettings", ctx, map[string]string{
		keyStatus:  "error",
		keyMessage: connectivityMessage,
	}).Return(nil).Once()

	state, err := gate.Activate(ctx, "KEY")
	require.NoError(t, err)
	assert.Equal(t, model.LicenseError, state.Status)
	assert.Equal(t, connectivityMessage, state.Message)
}

func TestGate_ActivateRequiresKey(t *testing.T) {
	gate, _, _, _ := loadedGate(t, map[string]string{})

	_, err := gate.Activate(context.Background(), "   ")
	assert.ErrorIs(t, err, app_errors.ErrValidation)
	assert.Equal(t, model.LicenseInactive, gate.State().Status)
}

func TestGate_Deactivate(t *testing.T) {
	ctx := context.Background()
	gate, repo, activator, _ := loadedGate(t, map[string]string{
		keyStatus:     "active",
		keyKey:        "KEY-1",
		keyInstanceID: "inst-1",
	})

	activator.On("Deactivate", ctx, "KEY-1", "inst-1").
		Return(&Result{Success: true, Message: "License deactivated. You can activate on another device."}, nil).Once()
	repo.On("SaveSettings", ctx, hasValue(keyStatus, "inactive")).Return(nil).Once()
	repo.On("DeleteSettings", ctx, keyKey, keyInstanceID, keyActivatedAt).Return(nil).Once()

	state, err := gate.Deactivate(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.LicenseInactive, state.Status)
	assert.Empty(t, state.InstanceID)
	assert.Empty(t, gate.State().Key)
}

func TestGate_DeactivateRejected(t *testing.T) {
	ctx := context.Background()
	gate, repo, activator, _ := loadedGate(t, map[string]string{
		keyStatus:     "active",
		keyKey:        "KEY-1",
		keyInstanceID: "inst-1",
	})

	activator.On("Deactivate", ctx, "KEY-1", "inst-1").
		Return(&Result{Success: false, Message: "instance_id not found"}, nil).Once()
	repo.On("SaveSettings", ctx, map[string]string{keyStatus: "error", keyMessage: "instance_id not found"}).Return(nil).Once()

	state, err := gate.Deactivate(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.LicenseError, state.Status)
	assert.Equal(t, "KEY-1", gate.State().Key, "the key is kept so deactivation can be retried")
}

func TestGate_DeactivateWithoutActivation(t *testing.T) {
	gate, _, _, _ := loadedGate(t, map[string]string{})

	_, err := gate.Deactivate(context.Background())
	assert.ErrorIs(t, err, app_errors.ErrValidation)
}
