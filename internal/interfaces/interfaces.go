package interfaces

import (
	"context"

	"omnichat/client/internal/model"
	"omnichat/client/internal/service"
	"omnichat/client/internal/store"
)

// These are the contracts the API layer depends on, so handlers can be tested
// against mocks instead of a live engine.

// ChatService is the conversation engine as seen by the control API.
type ChatService interface {
	State() store.Snapshot
	Subscribe() (<-chan struct{}, func())
	DismissError()
	Turns() []model.Turn

	RefreshConversations(ctx context.Context) error
	SelectConversation(ctx context.Context, id string) ([]model.Message, error)
	CreateConversation(ctx context.Context, title string) (*model.Conversation, error)
	DeleteConversation(ctx context.Context, id string) error
	CloneConversation(ctx context.Context, id, title string) (*model.Conversation, error)
	SearchConversations(ctx context.Context, query string) ([]model.ConversationSearchResult, error)
	ExportConversation(ctx context.Context, id, path string) error

	UpdateTitle(ctx context.Context, id, title string) error
	SetPinned(ctx context.Context, id string, pinned bool) error
	SetTags(ctx context.Context, id string, tags []string) error
	SetFolder(ctx context.Context, id string, folder *string) error

	Send(ctx context.Context, req service.SendRequest) (*service.SendResult, error)
	Cancel() bool
	Regenerate(ctx context.Context, req service.GenerateRequest) (*model.Message, error)
	Compare(ctx context.Context, req service.GenerateRequest) (*model.Message, error)
	EditLastUserMessage(ctx context.Context, content string, req service.GenerateRequest) (*model.Message, error)

	SelectBuckets(ids []string) []string
	Transcribe(ctx context.Context, wavBase64 string) (string, error)
}

// LicenseService exposes the trial and activation state.
type LicenseService interface {
	State() model.LicenseState
	GraceDaysRemaining() int
	RequiresActivation() bool
	Activate(ctx context.Context, key string) (model.LicenseState, error)
	Deactivate(ctx context.Context) (model.LicenseState, error)
}

// SettingsService manages provider API keys.
type SettingsService interface {
	Providers(ctx context.Context) ([]service.ProviderInfo, error)
	SetAPIKey(ctx context.Context, provider, apiKey string) error
	DeleteAPIKey(ctx context.Context, provider string) error
}
