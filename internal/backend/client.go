package backend

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	app_errors "omnichat/client/internal/errors"
	"omnichat/client/internal/model"
)

type httpBackend struct {
	client *resty.Client
}

// NewHTTPBackend returns a Backend that invokes commands as
// `POST {baseURL}/invoke/{command}` with a JSON argument object.
func NewHTTPBackend(baseURL string, timeout time.Duration) Backend {
	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", "OmniChat-Client/1.0").
		SetTimeout(timeout)
	return &httpBackend{client: client}
}

// RemoteError is a command failure reported by the backend.
type RemoteError struct {
	Command    string
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s failed (%d): %s", e.Command, e.StatusCode, e.Message)
}

// Unwrap lets callers use errors.Is with the shared sentinels.
func (e *RemoteError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusNotFound:
		return app_errors.ErrNotFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return app_errors.ErrValidation
	case http.StatusConflict:
		return app_errors.ErrConflict
	default:
		return nil
	}
}

type errorBody struct {
	Error string `json:"error"`
}

func (b *httpBackend) invoke(ctx context.Context, command string, args interface{}, result interface{}) error {
	if args == nil {
		args = struct{}{}
	}
	req := b.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(args).
		SetError(&errorBody{})
	if result != nil {
		req.SetResult(result)
	}

	resp, err := req.Post("/invoke/" + command)
	if err != nil {
		return fmt.Errorf("%s request failed: %w", command, err)
	}
	if resp.IsError() {
		message := strings.TrimSpace(resp.String())
		if body, ok := resp.Error().(*errorBody); ok && body.Error != "" {
			message = body.Error
		}
		return &RemoteError{Command: command, StatusCode: resp.StatusCode(), Message: message}
	}
	return nil
}

func (b *httpBackend) GetConversations(ctx context.Context) ([]model.Conversation, error) {
	var out []model.Conversation
	if err := b.invoke(ctx, "get_conversations", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (b *httpBackend) GetMessages(ctx context.Context, conversationID string) ([]model.Message, error) {
	var out []model.Message
	args := map[string]string{"conversation_id": conversationID}
	if err := b.invoke(ctx, "get_messages", args, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (b *httpBackend) CreateConversation(ctx context.Context, title string) (*model.Conversation, error) {
	var out model.Conversation
	if err := b.invoke(ctx, "create_conversation", map[string]string{"title": title}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (b *httpBackend) DeleteConversation(ctx context.Context, conversationID string) error {
	return b.invoke(ctx, "delete_conversation", map[string]string{"conversation_id": conversationID}, nil)
}

func (b *httpBackend) CloneConversation(ctx context.Context, conversationID, title string) (*model.Conversation, error) {
	var out model.Conversation
	args := map[string]string{"conversation_id": conversationID, "title": title}
	if err := b.invoke(ctx, "clone_conversation", args, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (b *httpBackend) UpdateConversationPinned(ctx context.Context, conversationID string, pinned bool) error {
	args := map[string]interface{}{"conversation_id": conversationID, "pinned": pinned}
	return b.invoke(ctx, "update_conversation_pinned", args, nil)
}

func (b *httpBackend) UpdateConversationTags(ctx context.Context, conversationID string, tags []string) error {
	if tags == nil {
		tags = []string{}
	}
	args := map[string]interface{}{"conversation_id": conversationID, "tags": tags}
	return b.invoke(ctx, "update_conversation_tags", args, nil)
}

func (b *httpBackend) UpdateConversationFolder(ctx context.Context, conversationID string, folder *string) error {
	args := map[string]interface{}{"conversation_id": conversationID, "folder": folder}
	return b.invoke(ctx, "update_conversation_folder", args, nil)
}

func (b *httpBackend) UpdateConversationTitle(ctx context.Context, conversationID, title string) error {
	args := map[string]string{"conversation_id": conversationID, "title": title}
	return b.invoke(ctx, "update_conversation_title", args, nil)
}

func (b *httpBackend) UpdateMessageContent(ctx context.Context, messageID, content string) error {
	args := map[string]string{"message_id": messageID, "content": content}
	return b.invoke(ctx, "update_message_content", args, nil)
}

func (b *httpBackend) SendMessage(ctx context.Context, req *ChatRequest) (*ChatResponse, error) {
	var out ChatResponse
	if err := b.invoke(ctx, "send_message", map[string]interface{}{"request": req}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (b *httpBackend) SendMessageStream(ctx context.Context, req *ChatRequest) (*StreamStartResponse, error) {
	var out StreamStartResponse
	if err := b.invoke(ctx, "send_message_stream", map[string]interface{}{"request": req}, &out); err != nil {
		return nil, err
	}
	if out.MessageID == "" {
		return nil, fmt.Errorf("send_message_stream returned no message_id")
	}
	return &out, nil
}

func (b *httpBackend) RegenerateLastAssistant(ctx context.Context, req *ChatRequest) (*RegenerateResponse, error) {
	var out RegenerateResponse
	if err := b.invoke(ctx, "regenerate_last_assistant", map[string]interface{}{"request": req}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (b *httpBackend) CompareResponse(ctx context.Context, req *ChatRequest) (*ChatResponse, error) {
	var out ChatResponse
	if err := b.invoke(ctx, "compare_response", map[string]interface{}{"request": req}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (b *httpBackend) SearchConversations(ctx context.Context, query string) ([]model.ConversationSearchResult, error) {
	var out []model.ConversationSearchResult
	if err := b.invoke(ctx, "search_conversations", map[string]string{"query": query}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (b *httpBackend) ExportConversationMarkdown(ctx context.Context, conversationID, path string) error {
	args := map[string]string{"conversation_id": conversationID, "file_path": path}
	return b.invoke(ctx, "export_conversation_markdown", args, nil)
}

func (b *httpBackend) SearchBucket(ctx context.Context, bucketID, query string, topK int) ([]SearchHit, error) {
	var out []SearchHit
	args := map[string]interface{}{"bucket_id": bucketID, "query": query, "top_k": topK}
	if err := b.invoke(ctx, "search_bucket", args, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (b *httpBackend) TranscribeAudio(ctx context.Context, wavBase64 string) (string, error) {
	var out string
	if err := b.invoke(ctx, "transcribe_audio", map[string]string{"wav_base64": wavBase64}, &out); err != nil {
		return "", err
	}
	return out, nil
}
