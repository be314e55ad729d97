package service

import (
	"fmt"
	"strings"

	app_errors "omnichat/client/internal/errors"
)

// ModelInfo describes one model a provider serves.
type ModelInfo struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Provider  string `json:"provider"`
	MaxTokens int    `json:"max_tokens"`
}

// ProviderInfo is a provider with its models and whether an API key is stored.
type ProviderInfo struct {
	Name       string      `json:"name"`
	Models     []ModelInfo `json:"models"`
	Configured bool        `json:"configured"`
}

var catalog = []ProviderInfo{
	{Name: "anthropic", Models: []ModelInfo{{ID: "claude-sonnet-4-20250514", Name: "Claude Sonnet 4", Provider: "anthropic", MaxTokens: 8192}}},
	{Name: "openai", Models: []ModelInfo{{ID: "gpt-4o", Name: "GPT-4o", Provider: "openai", MaxTokens: 4096}}},
	{Name: "gemini", Models: []ModelInfo{{ID: "gemini-2.0-flash-exp", Name: "Gemini 2.0 Flash", Provider: "gemini", MaxTokens: 8192}}},
	{Name: "deepseek", Models: []ModelInfo{{ID: "deepseek-chat", Name: "DeepSeek Chat", Provider: "deepseek", MaxTokens: 4096}}},
}

// ModelService is the static catalog of supported providers and models.
type ModelService struct{}

func NewModelService() *ModelService {
	return &ModelService{}
}

// List returns a copy of the catalog.
func (s *ModelService) List() []ProviderInfo {
	out := make([]ProviderInfo, 0, len(catalog))
	for _, p := range catalog {
		p.Models = append([]ModelInfo{}, p.Models...)
		out = append(out, p)
	}
	return out
}

// NormalizeProvider lowercases name and checks it is a known provider.
func (s *ModelService) NormalizeProvider(name string) (string, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, p := range catalog {
		if p.Name == name {
			return name, nil
		}
	}
	return "", fmt.Errorf("%w: unknown provider '%s'", app_errors.ErrValidation, name)
}

// Resolve validates a provider/model pair. An empty model selects the
// provider's first model. Models outside the catalog are passed through,
// since providers add models faster than the catalog is updated.
func (s *ModelService) Resolve(provider, modelID string) (string, string, error) {
	provider, err := s.NormalizeProvider(provider)
	if err != nil {
		return "", "", err
	}
	modelID = strings.TrimSpace(modelID)
	if modelID != "" {
		return provider, modelID, nil
	}
	for _, p := range catalog {
		if p.Name == provider && len(p.Models) > 0 {
			return provider, p.Models[0].ID, nil
		}
	}
	return "", "", fmt.Errorf("%w: provider '%s' has no models", app_errors.ErrValidation, provider)
}
