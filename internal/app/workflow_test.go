package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"omnichat/client/internal/model"
)

// fakeBackend speaks the invoke protocol for the commands a chat round trip
// uses and pushes stream events over /events.
type fakeBackend struct {
	upgrader websocket.Upgrader
	conns    chan *websocket.Conn

	mu            sync.Mutex
	conversations []model.Conversation
	streamReq     map[string]interface{}
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{conns: make(chan *websocket.Conn, 1)}
}

func (f *fakeBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path == "/events" {
		conn, err := f.upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		f.conns <- conn
		return
	}

	var args map[string]interface{}
	_ = json.NewDecoder(r.Body).Decode(&args)

	f.mu.Lock()
	defer f.mu.Unlock()

	var result interface{}
	switch strings.TrimPrefix(r.URL.Path, "/invoke/") {
	case "get_conversations":
		result = append([]model.Conversation{}, f.conversations...)
	case "create_conversation":
		conv := model.Conversation{ID: "c1", Title: args["title"].(string), CreatedAt: time.Now(), UpdatedAt: time.Now()}
		f.conversations = append(f.conversations, conv)
		result = conv
	case "send_message_stream":
		f.streamReq, _ = args["request"].(map[string]interface{})
		result = map[string]string{"message_id": "a1", "conversation_id": "c1", "user_message_id": "u1"}
	case "update_conversation_title":
		for i := range f.conversations {
			if f.conversations[i].ID == args["conversation_id"] {
				f.conversations[i].Title = args["title"].(string)
			}
		}
		result = map[string]string{}
	default:
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "unknown command"})
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(result)
}

func (f *fakeBackend) title(id string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.conversations {
		if c.ID == id {
			return c.Title
		}
	}
	return ""
}

func push(t *testing.T, conn *websocket.Conn, event string, payload model.StreamEvent) {
	t.Helper()
	require.NoError(t, conn.WriteJSON(map[string]interface{}{"event": event, "payload": payload}))
}

func doRequest(app *App, method, path, body string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	app.Server.Handler.ServeHTTP(rr, httptest.NewRequest(method, path, strings.NewReader(body)))
	return rr
}

func TestFullChatWorkflow(t *testing.T) {
	fake := newFakeBackend()
	backendServer := httptest.NewServer(fake)
	defer backendServer.Close()

	app, err := NewApp(newTestConfig(t, backendServer.URL))
	require.NoError(t, err)
	defer func() { require.NoError(t, app.Close()) }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go app.listener.Run(ctx)
	loadConversations(ctx, app.Chat)

	var conn *websocket.Conn
	select {
	case conn = <-fake.conns:
	case <-time.After(5 * time.Second):
		t.Fatal("event listener did not connect")
	}
	defer conn.Close()

	t.Run("StoreAPIKey", func(t *testing.T) {
		rr := doRequest(app, http.MethodPut, "/api/v1/settings/api-keys/openai", `{"api_key":"sk-test"}`)
		require.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("SendStartsStream", func(t *testing.T) {
		rr := doRequest(app, http.MethodPost, "/api/v1/messages", `{"content":"What is 2+2?","provider":"openai"}`)
		require.Equal(t, http.StatusAccepted, rr.Code, rr.Body.String())

		state := app.Chat.State()
		assert.Equal(t, "c1", state.SelectedConversationID)
		assert.Equal(t, model.PhaseStreaming, state.Phase)

		fake.mu.Lock()
		assert.Equal(t, "sk-test", fake.streamReq["api_key"])
		assert.Equal(t, "gpt-4o", fake.streamReq["model"])
		fake.mu.Unlock()
	})

	t.Run("PushedChunksCompleteTheReply", func(t *testing.T) {
		push(t, conn, model.EventStreamChunk, model.StreamEvent{ConversationID: "c1", MessageID: "a1", Delta: "2+2 "})
		push(t, conn, model.EventStreamChunk, model.StreamEvent{ConversationID: "c1", MessageID: "old", Delta: "stale"})
		push(t, conn, model.EventStreamChunk, model.StreamEvent{ConversationID: "c1", MessageID: "a1", Delta: "is 4.", Done: true})

		require.Eventually(t, func() bool {
			return app.Chat.State().Phase == model.PhaseIdle
		}, 5*time.Second, 10*time.Millisecond)

		messages := app.Chat.State().Messages
		require.Len(t, messages, 2)
		assert.Equal(t, "u1", messages[0].ID.String())
		assert.Equal(t, "2+2 is 4.", messages[1].Content)
	})

	t.Run("FirstMessageTitlesTheConversation", func(t *testing.T) {
		require.Eventually(t, func() bool {
			return fake.title("c1") == "What is 2+2?"
		}, 5*time.Second, 10*time.Millisecond)

		app.Chat.Wait()
		rr := doRequest(app, http.MethodGet, "/api/v1/state", "")
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"title":"What is 2+2?"`)
	})
}
