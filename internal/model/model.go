package model

import (
	"time"
)

// Message roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// DefaultConversationTitle is the placeholder title of a conversation that has
// not been auto-titled or renamed yet.
const DefaultConversationTitle = "New Chat"

// Conversation stores metadata about a conversation.
type Conversation struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Pinned    bool      `json:"pinned"`
	Tags      []string  `json:"tags"`
	Folder    *string   `json:"folder,omitempty"`
}

// HasDefaultTitle reports whether the conversation still carries the placeholder title.
func (c Conversation) HasDefaultTitle() bool {
	return c.Title == "" || c.Title == DefaultConversationTitle
}

// SourceReference is a retrieval citation attached to an assistant message.
type SourceReference struct {
	Filename string  `json:"filename"`
	Score    float64 `json:"score"`
	Content  string  `json:"content"`
}

// Message stores a single message in a conversation.
type Message struct {
	ID             MessageID         `json:"id"`
	ConversationID string            `json:"conversation_id"`
	Role           string            `json:"role"`
	Content        string            `json:"content"`
	Provider       string            `json:"provider"`
	Model          string            `json:"model"`
	CreatedAt      time.Time         `json:"created_at"`
	Sources        []SourceReference `json:"sources,omitempty"`
}

// ConversationSearchResult is a single hit of a conversation search.
type ConversationSearchResult struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	UpdatedAt time.Time `json:"updated_at"`
	Snippet   string    `json:"snippet"`
	Pinned    bool      `json:"pinned"`
	Tags      []string  `json:"tags"`
}

// Turn is one user message plus every assistant reply generated for it.
type Turn struct {
	User       Message   `json:"user"`
	Assistants []Message `json:"assistants"`
}
