package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	app_errors "omnichat/client/internal/errors"
	"omnichat/client/internal/model"
)

const maxTitleLength = 50

// Metadata edits show immediately and are then persisted. A failed save is
// reported but the local change is kept.
func (s *ChatService) mutateConversation(ctx context.Context, id, field string, apply func(c *model.Conversation), persist func(ctx context.Context) error) error {
	if !s.store.UpdateConversation(id, apply) {
		return fmt.Errorf("%w: conversation %s", app_errors.ErrNotFound, id)
	}
	if err := persist(ctx); err != nil {
		slog.Error("Failed to persist conversation change", "conversation_id", id, "field", field, "error", err)
		s.store.SetError(fmt.Sprintf("Failed to update %s: %v", field, err))
		return fmt.Errorf("failed to update %s: %w", field, err)
	}
	return nil
}

func (s *ChatService) SetPinned(ctx context.Context, id string, pinned bool) error {
	return s.mutateConversation(ctx, id, "pinned",
		func(c *model.Conversation) { c.Pinned = pinned },
		func(ctx context.Context) error { return s.backend.UpdateConversationPinned(ctx, id, pinned) })
}

// SetTags replaces the tag set. Tags are trimmed and deduplicated.
func (s *ChatService) SetTags(ctx context.Context, id string, tags []string) error {
	normalized := normalizeTags(tags)
	return s.mutateConversation(ctx, id, "tags",
		func(c *model.Conversation) { c.Tags = append([]string{}, normalized...) },
		func(ctx context.Context) error { return s.backend.UpdateConversationTags(ctx, id, normalized) })
}

// SetFolder moves the conversation into folder; nil or blank removes it from any folder.
func (s *ChatService) SetFolder(ctx context.Context, id string, folder *string) error {
	var value *string
	if folder != nil {
		if trimmed := strings.TrimSpace(*folder); trimmed != "" {
			value = &trimmed
		}
	}
	return s.mutateConversation(ctx, id, "folder",
		func(c *model.Conversation) {
			c.Folder = nil
			if value != nil {
				v := *value
				c.Folder = &v
			}
		},
		func(ctx context.Context) error { return s.backend.UpdateConversationFolder(ctx, id, value) })
}

func (s *ChatService) UpdateTitle(ctx context.Context, id, title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return fmt.Errorf("%w: title cannot be empty", app_errors.ErrValidation)
	}
	return s.mutateConversation(ctx, id, "title",
		func(c *model.Conversation) { c.Title = title },
		func(ctx context.Context) error { return s.backend.UpdateConversationTitle(ctx, id, title) })
}

// autoTitleLocked names a conversation after its first message while it
// still has the default title. The update runs in the background.
func (s *ChatService) autoTitleLocked(conversationID, content string) {
	conv, ok := s.store.Conversation(conversationID)
	if !ok || !conv.HasDefaultTitle() {
		return
	}
	title := deriveTitle(content)
	if title == "" {
		return
	}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := s.UpdateTitle(context.Background(), conversationID, title); err != nil {
			slog.Warn("Auto-title failed", "conversation_id", conversationID, "error", err)
		}
	}()
}

// deriveTitle shortens content to at most maxTitleLength characters, cutting
// at the last word boundary and marking the cut with "...".
func deriveTitle(content string) string {
	text := strings.Join(strings.Fields(content), " ")
	runes := []rune(text)
	if len(runes) <= maxTitleLength {
		return text
	}
	cut := string(runes[:maxTitleLength])
	if i := strings.LastIndex(cut, " "); i > 0 {
		cut = cut[:i]
	}
	return strings.TrimRight(cut, " ,.;:") + "..."
}

func normalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		key := strings.ToLower(tag)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, tag)
	}
	return out
}
