package repository

import (
	"context"
)

// Repository defines the storage operations for local client state
// (license/trial data and provider API keys). Conversations and messages are
// owned by the backend and never stored here.
type Repository interface {
	GetSetting(ctx context.Context, key string) (string, error)
	GetSettings(ctx context.Context) (map[string]string, error)
	SaveSettings(ctx context.Context, values map[string]string) error
	DeleteSettings(ctx context.Context, keys ...string) error
}
