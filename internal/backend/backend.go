package backend

import (
	"context"

	"omnichat/client/internal/model"
)

// Backend is the contract of the process that owns persisted conversations,
// executes provider calls and pushes streaming events.
type Backend interface {
	GetConversations(ctx context.Context) ([]model.Conversation, error)
	GetMessages(ctx context.Context, conversationID string) ([]model.Message, error)
	CreateConversation(ctx context.Context, title string) (*model.Conversation, error)
	DeleteConversation(ctx context.Context, conversationID string) error
	CloneConversation(ctx context.Context, conversationID, title string) (*model.Conversation, error)

	UpdateConversationPinned(ctx context.Context, conversationID string, pinned bool) error
	UpdateConversationTags(ctx context.Context, conversationID string, tags []string) error
	UpdateConversationFolder(ctx context.Context, conversationID string, folder *string) error
	UpdateConversationTitle(ctx context.Context, conversationID, title string) error
	UpdateMessageContent(ctx context.Context, messageID, content string) error

	SendMessage(ctx context.Context, req *ChatRequest) (*ChatResponse, error)
	SendMessageStream(ctx context.Context, req *ChatRequest) (*StreamStartResponse, error)
	RegenerateLastAssistant(ctx context.Context, req *ChatRequest) (*RegenerateResponse, error)
	CompareResponse(ctx context.Context, req *ChatRequest) (*ChatResponse, error)

	SearchConversations(ctx context.Context, query string) ([]model.ConversationSearchResult, error)
	ExportConversationMarkdown(ctx context.Context, conversationID, path string) error

	SearchBucket(ctx context.Context, bucketID, query string, topK int) ([]SearchHit, error)
	TranscribeAudio(ctx context.Context, wavBase64 string) (string, error)
}

// ChatRequest is the payload shared by send, stream, regenerate and compare.
type ChatRequest struct {
	ConversationID string                  `json:"conversation_id"`
	Content        string                  `json:"content,omitempty"`
	Provider       string                  `json:"provider"`
	Model          string                  `json:"model"`
	APIKey         string                  `json:"api_key"`
	Context        string                  `json:"context,omitempty"`
	Sources        []model.SourceReference `json:"sources,omitempty"`
}

// StreamStartResponse identifies the assistant placeholder of a started stream.
// UserMessageID is the id the backend stored the user message under, when it reports one.
type StreamStartResponse struct {
	MessageID      string `json:"message_id"`
	ConversationID string `json:"conversation_id"`
	Provider       string `json:"provider"`
	Model          string `json:"model"`
	UserMessageID  string `json:"user_message_id,omitempty"`
}

type ChatResponse struct {
	Message        model.Message `json:"message"`
	ConversationID string        `json:"conversation_id"`
}

type RegenerateResponse struct {
	Message           model.Message `json:"message"`
	ConversationID    string        `json:"conversation_id"`
	ReplacedMessageID string        `json:"replaced_message_id"`
}

// SearchHit is one retrieval result from a knowledge bucket.
type SearchHit struct {
	Content  string  `json:"content"`
	Filename string  `json:"filename"`
	Score    float64 `json:"score"`
}
