package backend

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"omnichat/client/internal/model"
)

func TestDecodeEvent(t *testing.T) {
	tests := []struct {
		name   string
		frame  string
		wantOK bool
		want   model.StreamEvent
	}{
		{
			name:   "chunk",
			frame:  `{"event":"stream-chunk","payload":{"message_id":"m1","conversation_id":"c1","delta":"Hel","done":false}}`,
			wantOK: true,
			want:   model.StreamEvent{Type: model.EventStreamChunk, MessageID: "m1", ConversationID: "c1", Delta: "Hel"},
		},
		{
			name:   "error",
			frame:  `{"event":"stream-error","payload":{"message_id":"m1","conversation_id":"c1","delta":"rate limited"}}`,
			wantOK: true,
			want:   model.StreamEvent{Type: model.EventStreamError, MessageID: "m1", ConversationID: "c1", Delta: "rate limited"},
		},
		{name: "unknown event", frame: `{"event":"bucket-indexed","payload":{}}`},
		{name: "malformed frame", frame: `{not json`},
		{name: "malformed payload", frame: `{"event":"stream-chunk","payload":"oops"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := decodeEvent([]byte(tt.frame))
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestEventListener_PublishesFrames(t *testing.T) {
	upgrader := websocket.Upgrader{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		frames := []string{
			`{"event":"stream-chunk","payload":{"message_id":"m1","conversation_id":"c1","delta":"Hel","done":false}}`,
			`{"event":"heartbeat","payload":{}}`,
			`{"event":"stream-chunk","payload":{"message_id":"m1","conversation_id":"c1","delta":"lo","done":true}}`,
		}
		for _, f := range frames {
			if err := conn.WriteMessage(websocket.TextMessage, []byte(f)); err != nil {
				return
			}
		}
		// Keep the connection open until the client goes away.
		_, _, _ = conn.ReadMessage()
	}))
	defer server.Close()

	hub := NewHub()
	sub := hub.Subscribe()
	defer sub.Close()

	ctx, cancel := context.WithCancel(context.Background())
	listener := NewEventListener("ws"+strings.TrimPrefix(server.URL, "http"), hub)
	finished := make(chan struct{})
	go func() {
		listener.Run(ctx)
		close(finished)
	}()

	var received []model.StreamEvent
	for len(received) < 2 {
		select {
		case ev := <-sub.Events():
			received = append(received, ev)
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out after %d events", len(received))
		}
	}

	require.Len(t, received, 2)
	assert.Equal(t, "Hel", received[0].Delta)
	assert.True(t, received[1].Done)

	cancel()
	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatal("listener did not stop after cancellation")
	}
}
