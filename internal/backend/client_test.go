package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	app_errors "omnichat/client/internal/errors"
)

// TestHTTPBackend verifies that commands are sent as POST /invoke/{command}
// with the expected arguments and that responses and failures are decoded.
//
// TECHNIQUE: an httptest server stands in for the backend process, so the
// client is exercised over a real HTTP round-trip without any external service.
func TestHTTPBackend(t *testing.T) {
	var capturedPath string
	var capturedBody map[string]json.RawMessage

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedPath = r.URL.Path
		capturedBody = nil
		_ = json.NewDecoder(r.Body).Decode(&capturedBody)

		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/invoke/send_message_stream":
			_, _ = w.Write([]byte(`{"message_id":"asst-1","conversation_id":"conv-1","provider":"openai","model":"gpt-4o","user_message_id":"user-1"}`))
		case "/invoke/get_messages":
			_, _ = w.Write([]byte(`[{"id":"m1","conversation_id":"conv-1","role":"user","content":"hi","provider":"openai","model":"gpt-4o","created_at":"2026-01-01T10:00:00Z"}]`))
		case "/invoke/regenerate_last_assistant":
			_, _ = w.Write([]byte(`{"message":{"id":"m3","role":"assistant","content":"again"},"conversation_id":"conv-1","replaced_message_id":"m2"}`))
		case "/invoke/search_bucket":
			_, _ = w.Write([]byte(`[{"content":"chunk","filename":"notes.md","score":0.8}]`))
		case "/invoke/transcribe_audio":
			_, _ = w.Write([]byte(`"hello world"`))
		case "/invoke/update_conversation_pinned":
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`null`))
		case "/invoke/delete_conversation":
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":"Conversation not found"}`))
		default:
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error":"boom"}`))
		}
	}))
	defer server.Close()

	b := NewHTTPBackend(server.URL+"/", 5*time.Second)
	ctx := context.Background()

	t.Run("SendMessageStream", func(t *testing.T) {
		resp, err := b.SendMessageStream(ctx, &ChatRequest{ConversationID: "conv-1", Content: "hi", Provider: "openai", Model: "gpt-4o", APIKey: "sk"})
		require.NoError(t, err)
		assert.Equal(t, "/invoke/send_message_stream", capturedPath)
		assert.Equal(t, "asst-1", resp.MessageID)
		assert.Equal(t, "user-1", resp.UserMessageID)

		var req map[string]interface{}
		require.NoError(t, json.Unmarshal(capturedBody["request"], &req))
		assert.Equal(t, "hi", req["content"])
		assert.NotContains(t, req, "context", "absent context must not be sent")
	})

	t.Run("GetMessages decodes confirmed ids", func(t *testing.T) {
		msgs, err := b.GetMessages(ctx, "conv-1")
		require.NoError(t, err)
		require.Len(t, msgs, 1)
		assert.Equal(t, "m1", msgs[0].ID.String())
		assert.False(t, msgs[0].ID.IsPending())
		assert.JSONEq(t, `"conv-1"`, string(capturedBody["conversation_id"]))
	})

	t.Run("RegenerateLastAssistant", func(t *testing.T) {
		resp, err := b.RegenerateLastAssistant(ctx, &ChatRequest{ConversationID: "conv-1"})
		require.NoError(t, err)
		assert.Equal(t, "m2", resp.ReplacedMessageID)
		assert.Equal(t, "m3", resp.Message.ID.String())
	})

	t.Run("SearchBucket", func(t *testing.T) {
		hits, err := b.SearchBucket(ctx, "bucket-a", "query", 5)
		require.NoError(t, err)
		assert.Equal(t, []SearchHit{{Content: "chunk", Filename: "notes.md", Score: 0.8}}, hits)
		assert.JSONEq(t, `5`, string(capturedBody["top_k"]))
	})

	t.Run("TranscribeAudio", func(t *testing.T) {
		text, err := b.TranscribeAudio(ctx, "UklGRg==")
		require.NoError(t, err)
		assert.Equal(t, "hello world", text)
	})

	t.Run("Command without result", func(t *testing.T) {
		require.NoError(t, b.UpdateConversationPinned(ctx, "conv-1", true))
		assert.JSONEq(t, `true`, string(capturedBody["pinned"]))
	})

	t.Run("Remote not found maps to ErrNotFound", func(t *testing.T) {
		err := b.DeleteConversation(ctx, "missing")
		require.Error(t, err)
		assert.True(t, errors.Is(err, app_errors.ErrNotFound))

		var remote *RemoteError
		require.ErrorAs(t, err, &remote)
		assert.Equal(t, "Conversation not found", remote.Message)
	})

	t.Run("Remote failure keeps the server message", func(t *testing.T) {
		_, err := b.CompareResponse(ctx, &ChatRequest{ConversationID: "conv-1"})
		require.Error(t, err)
		assert.ErrorContains(t, err, "boom")
	})
}

func TestHTTPBackend_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	b := NewHTTPBackend(url, time.Second)
	_, err := b.GetConversations(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "get_conversations request failed")
}
