package model

// Push event names emitted by the backend.
const (
	EventStreamChunk = "stream-chunk"
	EventStreamError = "stream-error"
)

// StreamEvent is one push event for an in-flight assistant response.
// For stream-error events Delta carries the error text.
type StreamEvent struct {
	Type           string `json:"-"`
	MessageID      string `json:"message_id"`
	ConversationID string `json:"conversation_id"`
	Delta          string `json:"delta"`
	Done           bool   `json:"done"`
}

// IsError reports whether the event terminates the stream with an error.
func (e StreamEvent) IsError() bool { return e.Type == EventStreamError }

// Phase is the lifecycle state of the streaming engine.
type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhaseSending    Phase = "sending"
	PhaseStreaming  Phase = "streaming"
	PhaseGenerating Phase = "generating"
)

// StreamingSession tracks the single in-flight streamed assistant response.
type StreamingSession struct {
	ConversationID     string `json:"conversation_id"`
	MessageID          string `json:"message_id"`
	AccumulatedContent string `json:"accumulated_content"`
	Active             bool   `json:"active"`
}
