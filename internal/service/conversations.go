package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	app_errors "omnichat/client/internal/errors"
	"omnichat/client/internal/model"
)

// RefreshConversations reloads the conversation list. Concurrent refreshes
// share one backend call.
func (s *ChatService) RefreshConversations(ctx context.Context) error {
	_, err, shared := s.refreshGroup.Do("conversations", func() (interface{}, error) {
		conversations, err := s.backend.GetConversations(ctx)
		if err != nil {
			return nil, err
		}
		s.store.SetConversations(conversations)
		return nil, nil
	})
	if err != nil {
		return fmt.Errorf("failed to load conversations: %w", err)
	}
	if shared {
		slog.Debug("Conversation refresh coalesced")
	}
	return nil
}

// refreshAsync reloads the conversation list in the background; failures are only logged.
func (s *ChatService) refreshAsync() {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := s.RefreshConversations(context.Background()); err != nil {
			slog.Warn("Background conversation refresh failed", "error", err)
		}
	}()
}

// SelectConversation switches to id and loads its messages. Cached messages
// are shown until the load completes. Switching away abandons an in-flight
// stream.
func (s *ChatService) SelectConversation(ctx context.Context, id string) ([]model.Message, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: conversation id is required", app_errors.ErrValidation)
	}

	s.mu.Lock()
	if _, ok := s.store.Conversation(id); !ok {
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: conversation %s", app_errors.ErrNotFound, id)
	}
	if s.store.SelectedConversationID() == id {
		if s.inFlightLocked(id) {
			// Reloading now would wipe the in-flight reply.
			messages := s.store.Messages()
			s.mu.Unlock()
			return messages, nil
		}
	} else {
		s.abandonLocked("abandoned")
		s.store.Select(id)
	}
	s.mu.Unlock()

	messages, err := s.backend.GetMessages(ctx, id)
	if err != nil {
		s.store.SetError(fmt.Sprintf("Failed to load messages: %v", err))
		return nil, fmt.Errorf("failed to load messages: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.store.SelectedConversationID() == id && s.inFlightLocked(id) {
		return s.store.Messages(), nil
	}
	s.store.SetMessages(id, messages)
	return messages, nil
}

// inFlightLocked reports whether a send, stream or generation is writing
// into conversation id.
func (s *ChatService) inFlightLocked(id string) bool {
	switch s.store.Phase() {
	case model.PhaseSending:
		return s.store.SelectedConversationID() == id
	case model.PhaseStreaming:
		session, ok := s.store.Session()
		return ok && session.ConversationID == id
	case model.PhaseGenerating:
		return s.generatingFor == id
	default:
		return false
	}
}

// CreateConversation creates and selects a new conversation.
func (s *ChatService) CreateConversation(ctx context.Context, title string) (*model.Conversation, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		title = model.DefaultConversationTitle
	}
	conv, err := s.backend.CreateConversation(ctx, title)
	if err != nil {
		s.store.SetError(fmt.Sprintf("Failed to create conversation: %v", err))
		return nil, fmt.Errorf("failed to create conversation: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.abandonLocked("abandoned")
	s.store.UpsertConversation(*conv)
	s.store.Select(conv.ID)
	s.store.SetMessages(conv.ID, nil)
	slog.Info("Conversation created", "conversation_id", conv.ID)
	return conv, nil
}

// DeleteConversation deletes id on the backend, then locally. Deleting the
// selected conversation clears the selection.
func (s *ChatService) DeleteConversation(ctx context.Context, id string) error {
	if err := s.backend.DeleteConversation(ctx, id); err != nil {
		s.store.SetError(fmt.Sprintf("Failed to delete conversation: %v", err))
		return fmt.Errorf("failed to delete conversation: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.store.SelectedConversationID() == id {
		s.abandonLocked("abandoned")
	}
	s.store.RemoveConversation(id)
	slog.Info("Conversation deleted", "conversation_id", id)
	return nil
}

// CloneConversation copies id on the backend and adds the copy to the list.
func (s *ChatService) CloneConversation(ctx context.Context, id, title string) (*model.Conversation, error) {
	source, ok := s.store.Conversation(id)
	if !ok {
		return nil, fmt.Errorf("%w: conversation %s", app_errors.ErrNotFound, id)
	}
	title = strings.TrimSpace(title)
	if title == "" {
		title = source.Title + " (copy)"
	}
	clone, err := s.backend.CloneConversation(ctx, id, title)
	if err != nil {
		s.store.SetError(fmt.Sprintf("Failed to clone conversation: %v", err))
		return nil, fmt.Errorf("failed to clone conversation: %w", err)
	}
	s.store.UpsertConversation(*clone)
	return clone, nil
}

// SearchConversations returns matches for query. A blank query matches nothing.
func (s *ChatService) SearchConversations(ctx context.Context, query string) ([]model.ConversationSearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []model.ConversationSearchResult{}, nil
	}
	results, err := s.backend.SearchConversations(ctx, query)
	if err != nil {
		s.store.SetError(fmt.Sprintf("Search failed: %v", err))
		return nil, fmt.Errorf("search failed: %w", err)
	}
	if results == nil {
		results = []model.ConversationSearchResult{}
	}
	return results, nil
}

// ExportConversation writes id as markdown to path.
func (s *ChatService) ExportConversation(ctx context.Context, id, path string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return fmt.Errorf("%w: export path is required", app_errors.ErrValidation)
	}
	if err := s.backend.ExportConversationMarkdown(ctx, id, path); err != nil {
		s.store.SetError(fmt.Sprintf("Export failed: %v", err))
		return fmt.Errorf("export failed: %w", err)
	}
	slog.Info("Conversation exported", "conversation_id", id, "path", path)
	return nil
}

// SelectBuckets sets the knowledge buckets used to ground later requests.
func (s *ChatService) SelectBuckets(ids []string) []string {
	s.store.SetSelectedBuckets(ids)
	return s.store.SelectedBuckets()
}
