package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/gorilla/websocket"

	"omnichat/client/internal/model"
)

// envelope is a single push frame: {"event": "stream-chunk", "payload": {...}}.
type envelope struct {
	Event   string          `json:"event"`
	Payload json.RawMessage `json:"payload"`
}

// EventListener keeps a WebSocket connection to the backend open and
// publishes every decoded stream event to a Hub.
type EventListener struct {
	url     string
	hub     *Hub
	dialer  *websocket.Dialer
	backoff time.Duration
}

func NewEventListener(url string, hub *Hub) *EventListener {
	return &EventListener{
		url:     url,
		hub:     hub,
		dialer:  websocket.DefaultDialer,
		backoff: 3 * time.Second,
	}
}

// Run reads events until ctx is cancelled, reconnecting after the backoff
// whenever the connection drops.
func (l *EventListener) Run(ctx context.Context) {
	for {
		err := l.listen(ctx)
		if ctx.Err() != nil {
			return
		}
		slog.Warn("Backend event connection lost, reconnecting", "url", l.url, "retry_in", l.backoff, "error", err)
		select {
		case <-ctx.Done():
			return
		case <-time.After(l.backoff):
		}
	}
}

func (l *EventListener) listen(ctx context.Context) error {
	conn, _, err := l.dialer.DialContext(ctx, l.url, nil)
	if err != nil {
		return fmt.Errorf("dial: %w", err)
	}
	defer conn.Close()
	slog.Info("Connected to backend event stream", "url", l.url)

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			_ = conn.Close()
		case <-stop:
		}
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return fmt.Errorf("read: %w", err)
		}
		ev, ok := decodeEvent(data)
		if !ok {
			continue
		}
		l.hub.Publish(ev)
	}
}

func decodeEvent(data []byte) (model.StreamEvent, bool) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		slog.Warn("Discarding malformed backend event", "error", err)
		return model.StreamEvent{}, false
	}
	if env.Event != model.EventStreamChunk && env.Event != model.EventStreamError {
		slog.Debug("Ignoring backend event", "event", env.Event)
		return model.StreamEvent{}, false
	}
	var ev model.StreamEvent
	if err := json.Unmarshal(env.Payload, &ev); err != nil {
		slog.Warn("Discarding backend event with malformed payload", "event", env.Event, "error", err)
		return model.StreamEvent{}, false
	}
	ev.Type = env.Event
	return ev, true
}
