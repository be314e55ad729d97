package model

import "time"

// LicenseStatus is the activation state of the installation.
type LicenseStatus string

const (
	LicenseInactive   LicenseStatus = "inactive"
	LicenseChecking   LicenseStatus = "checking"
	LicenseActive     LicenseStatus = "active"
	LicenseUnverified LicenseStatus = "unverified"
	LicenseError      LicenseStatus = "error"
)

// LicenseState is the persisted trial/activation state.
type LicenseState struct {
	Status          LicenseStatus `json:"status"`
	InstalledAt     time.Time     `json:"installed_at"`
	GracePeriodDays int           `json:"grace_period_days"`
	Message         string        `json:"message,omitempty"`
	InstanceID      string        `json:"instance_id,omitempty"`
	ActivatedAt     *time.Time    `json:"activated_at,omitempty"`
	// The key itself is never sent to the UI.
	Key string `json:"-"`
}
