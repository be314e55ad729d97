// Package license implements the trial period and activation gate.
package license

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	app_errors "omnichat/client/internal/errors"
	"omnichat/client/internal/metrics"
	"omnichat/client/internal/model"
	"omnichat/client/internal/repository"
)

// Settings keys used to persist the license state.
const (
	keyInstalledAt = "installed_at"
	keyStatus      = "license_status"
	keyKey         = "license_key"
	keyMessage     = "license_message"
	keyInstanceID  = "license_instance_id"
	keyActivatedAt = "license_activated_at"
)

const DefaultGracePeriodDays = 7

const connectivityMessage = "Could not reach the license server. Check your internet connection and try again."

// Config holds the gate's fixed parameters.
type Config struct {
	InstanceName    string
	GracePeriodDays int
	// Now and Location default to time.Now and time.Local.
	Now      func() time.Time
	Location *time.Location
}

// Gate decides whether gated actions may run and drives activation.
type Gate struct {
	mu           sync.Mutex
	repo         repository.Repository
	activator    Activator
	instanceName string
	now          func() time.Time
	loc          *time.Location
	state        model.LicenseState
	loaded       bool
}

func NewGate(repo repository.Repository, activator Activator, cfg Config) *Gate {
	if cfg.GracePeriodDays <= 0 {
		cfg.GracePeriodDays = DefaultGracePeriodDays
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	return &Gate{
		repo:         repo,
		activator:    activator,
		instanceName: cfg.InstanceName,
		now:          cfg.Now,
		loc:          cfg.Location,
		state: model.LicenseState{
			Status:          model.LicenseInactive,
			GracePeriodDays: cfg.GracePeriodDays,
		},
	}
}

// Load restores the persisted state. The install timestamp is written on the
// first run and never recomputed afterwards.
func (g *Gate) Load(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	settings, err := g.repo.GetSettings(ctx)
	if err != nil {
		return fmt.Errorf("failed to load license state: %w", err)
	}

	toSave := map[string]string{}

	installedAt, err := time.Parse(time.RFC3339, settings[keyInstalledAt])
	if err != nil {
		if settings[keyInstalledAt] != "" {
			slog.Warn("Stored install timestamp is unreadable, resetting", "value", settings[keyInstalledAt])
		}
		installedAt = g.now()
		toSave[keyInstalledAt] = installedAt.Format(time.RFC3339)
	}

	status := model.LicenseStatus(settings[keyStatus])
	switch status {
	case model.LicenseActive, model.LicenseInactive, model.LicenseUnverified, model.LicenseError:
	case model.LicenseChecking:
		// A check was interrupted by shutdown; its result is unknown.
		status = model.LicenseUnverified
		toSave[keyStatus] = string(status)
	default:
		status = model.LicenseInactive
	}

	g.state.Status = status
	g.state.InstalledAt = installedAt
	g.state.Key = settings[keyKey]
	g.state.Message = settings[keyMessage]
	g.state.InstanceID = settings[keyInstanceID]
	g.state.ActivatedAt = nil
	if raw := settings[keyActivatedAt]; raw != "" {
		if at, err := time.Parse(time.RFC3339, raw); err == nil {
			g.state.ActivatedAt = &at
		}
	}
	g.loaded = true

	if len(toSave) > 0 {
		if err := g.repo.SaveSettings(ctx, toSave); err != nil {
			return fmt.Errorf("failed to persist license state: %w", err)
		}
	}

	slog.Info("License state loaded",
		"status", g.state.Status,
		"installed_at", g.state.InstalledAt,
		"grace_days_remaining", g.graceDaysRemainingLocked())
	return nil
}

// State returns a copy of the current state.
func (g *Gate) State() model.LicenseState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.stateLocked()
}

// GraceDaysRemaining counts down whole local calendar days since install.
func (g *Gate) GraceDaysRemaining() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.graceDaysRemainingLocked()
}

func (g *Gate) graceDaysRemainingLocked() int {
	if !g.loaded {
		return g.state.GracePeriodDays
	}
	remaining := g.state.GracePeriodDays - calendarDaysBetween(g.state.InstalledAt, g.now(), g.loc)
	if remaining < 0 {
		return 0
	}
	if remaining > g.state.GracePeriodDays {
		return g.state.GracePeriodDays
	}
	return remaining
}

// calendarDaysBetween counts date boundaries crossed from a to b in loc.
func calendarDaysBetween(a, b time.Time, loc *time.Location) int {
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	from := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	to := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from).Hours() / 24)
}

// RequiresActivation is false for an active license and otherwise true once
// the grace period is used up.
func (g *Gate) RequiresActivation() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state.Status == model.LicenseActive {
		return false
	}
	return g.graceDaysRemainingLocked() == 0
}

// Check returns ErrActivationRequired when action may not run.
func (g *Gate) Check(action string) error {
	if !g.RequiresActivation() {
		return nil
	}
	metrics.GateBlocksTotal.WithLabelValues(action).Inc()
	slog.Info("Action blocked, license activation required", "action", action)
	return app_errors.ErrActivationRequired
}

// Activate validates key with the license server. Rejections and transport
// failures end in the error status; the returned error is reserved for bad
// input, a check already running, or persistence failures.
func (g *Gate) Activate(ctx context.Context, key string) (model.LicenseState, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return g.State(), fmt.Errorf("%w: license key is required", app_errors.ErrValidation)
	}

	g.mu.Lock()
	if g.state.Status == model.LicenseChecking {
		g.mu.Unlock()
		return g.State(), fmt.Errorf("%w: a license check is already running", app_errors.ErrConflict)
	}
	g.state.Status = model.LicenseChecking
	err := g.repo.SaveSettings(ctx, map[string]string{keyStatus: string(model.LicenseChecking)})
	g.mu.Unlock()
	if err != nil {
		slog.Error("Failed to persist license status", "status", model.LicenseChecking, "error", err)
	}

	result, callErr := g.activator.Activate(ctx, key, g.instanceName)

	g.mu.Lock()
	defer g.mu.Unlock()

	toSave := map[string]string{}
	switch {
	case callErr != nil:
		slog.Warn("License activation request failed", "error", callErr)
		g.state.Status = model.LicenseError
		g.state.Message = connectivityMessage
	case result.Success:
		now := g.now()
		g.state.Status = model.LicenseActive
		g.state.Key = key
		g.state.Message = result.Message
		g.state.InstanceID = result.InstanceID
		g.state.ActivatedAt = &now
		toSave[keyKey] = key
		toSave[keyInstanceID] = result.InstanceID
		toSave[keyActivatedAt] = now.Format(time.RFC3339)
		slog.Info("License activated", "instance_id", result.InstanceID)
	default:
		g.state.Status = model.LicenseError
		g.state.Message = result.Message
		slog.Info("License activation rejected", "message", result.Message)
	}
	toSave[keyStatus] = string(g.state.Status)
	toSave[keyMessage] = g.state.Message

	if err := g.repo.SaveSettings(ctx, toSave); err != nil {
		return g.stateLocked(), fmt.Errorf("failed to persist license state: %w", err)
	}
	return g.stateLocked(), nil
}

// Deactivate releases this installation's activation so the key can be used
// on another device.
func (g *Gate) Deactivate(ctx context.Context) (model.LicenseState, error) {
	g.mu.Lock()
	key, instanceID := g.state.Key, g.state.InstanceID
	g.mu.Unlock()
	if key == "" || instanceID == "" {
		return g.State(), fmt.Errorf("%w: no activated license on this device", app_errors.ErrValidation)
	}

	result, callErr := g.activator.Deactivate(ctx, key, instanceID)

	g.mu.Lock()
	defer g.mu.Unlock()

	if callErr == nil && result.Success {
		g.state.Status = model.LicenseInactive
		g.state.Key = ""
		g.state.InstanceID = ""
		g.state.ActivatedAt = nil
		g.state.Message = result.Message
		slog.Info("License deactivated")

		err := g.repo.SaveSettings(ctx, map[string]string{
			keyStatus:  string(model.LicenseInactive),
			keyMessage: result.Message,
		})
		if err == nil {
			err = g.repo.DeleteSettings(ctx, keyKey, keyInstanceID, keyActivatedAt)
		}
		if err != nil {
			return g.stateLocked(), fmt.Errorf("failed to persist license state: %w", err)
		}
		return g.stateLocked(), nil
	}

	g.state.Status = model.LicenseError
	if callErr != nil {
		slog.Warn("License deactivation request failed", "error", callErr)
		g.state.Message = connectivityMessage
	} else {
		g.state.Message = result.Message
	}
	err := g.repo.SaveSettings(ctx, map[string]string{
		keyStatus:  string(g.state.Status),
		keyMessage: g.state.Message,
	})
	if err != nil {
		return g.stateLocked(), fmt.Errorf("failed to persist license state: %w", err)
	}
	return g.stateLocked(), nil
}

func (g *Gate) stateLocked() model.LicenseState {
	state := g.state
	if state.ActivatedAt != nil {
		at := *state.ActivatedAt
		state.ActivatedAt = &at
	}
	return state
}
