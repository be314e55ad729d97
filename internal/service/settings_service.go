package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	app_errors "omnichat/client/internal/errors"
	"omnichat/client/internal/repository"
)

const apiKeyPrefix = "api_key_"

// SettingsService manages the per-provider API keys stored in the local database.
type SettingsService struct {
	repo   repository.Repository
	models *ModelService
}

func NewSettingsService(repo repository.Repository, models *ModelService) *SettingsService {
	return &SettingsService{repo: repo, models: models}
}

// APIKey returns the stored key for provider. A missing key is a validation
// error, since nothing can be sent to that provider without one.
func (s *SettingsService) APIKey(ctx context.Context, provider string) (string, error) {
	provider, err := s.models.NormalizeProvider(provider)
	if err != nil {
		return "", err
	}
	key, err := s.repo.GetSetting(ctx, apiKeyPrefix+provider)
	if errors.Is(err, repository.ErrNotFound) || (err == nil && key == "") {
		return "", fmt.Errorf("%w: no API key configured for %s", app_errors.ErrValidation, provider)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read API key: %w", err)
	}
	return key, nil
}

func (s *SettingsService) SetAPIKey(ctx context.Context, provider, apiKey string) error {
	provider, err := s.models.NormalizeProvider(provider)
	if err != nil {
		return err
	}
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return fmt.Errorf("%w: API key cannot be empty", app_errors.ErrValidation)
	}
	if err := s.repo.SaveSettings(ctx, map[string]string{apiKeyPrefix + provider: apiKey}); err != nil {
		return fmt.Errorf("failed to save API key: %w", err)
	}
	slog.Info("API key stored", "provider", provider)
	return nil
}

func (s *SettingsService) DeleteAPIKey(ctx context.Context, provider string) error {
	provider, err := s.models.NormalizeProvider(provider)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteSettings(ctx, apiKeyPrefix+provider); err != nil {
		return fmt.Errorf("failed to delete API key: %w", err)
	}
	slog.Info("API key removed", "provider", provider)
	return nil
}

// Providers lists the catalog and marks which providers have a stored key.
func (s *SettingsService) Providers(ctx context.Context) ([]ProviderInfo, error) {
	settings, err := s.repo.GetSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}
	providers := s.models.List()
	for i := range providers {
		providers[i].Configured = settings[apiKeyPrefix+providers[i].Name] != ""
	}
	return providers, nil
}
