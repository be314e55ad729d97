package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"omnichat/client/internal/backend"
	app_errors "omnichat/client/internal/errors"
	"omnichat/client/internal/metrics"
	"omnichat/client/internal/model"
)

// GenerateRequest selects the provider and model for a regenerate or compare.
type GenerateRequest struct {
	Provider string
	Model    string
}

type generation struct {
	kind           string
	conversationID string
	request        *backend.ChatRequest
	sources        []model.SourceReference
}

// prepareGeneration runs the checks shared by regenerate and compare and
// moves the engine to the generating phase. require reports whether the
// selected conversation has what the operation needs.
func (s *ChatService) prepareGeneration(ctx context.Context, kind string, req GenerateRequest, require func([]model.Message) error) (*generation, error) {
	provider, modelID, err := s.models.Resolve(req.Provider, req.Model)
	if err != nil {
		return nil, err
	}
	if err := s.gate.Check(kind); err != nil {
		return nil, err
	}
	apiKey, err := s.keys.APIKey(ctx, provider)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if phase := s.store.Phase(); phase != model.PhaseIdle {
		s.mu.Unlock()
		slog.Info("Ignoring request while a response is in progress", "kind", kind, "phase", phase)
		return nil, app_errors.ErrBusy
	}
	conversationID := s.store.SelectedConversationID()
	if conversationID == "" {
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: no conversation selected", app_errors.ErrValidation)
	}
	messages := s.store.Messages()
	if err := require(messages); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	s.store.ClearError()
	s.store.SetPhase(model.PhaseGenerating)
	s.generatingFor = conversationID
	buckets := s.store.SelectedBuckets()
	s.mu.Unlock()

	g := &generation{
		kind:           kind,
		conversationID: conversationID,
		request: &backend.ChatRequest{
			ConversationID: conversationID,
			Provider:       provider,
			Model:          modelID,
			APIKey:         apiKey,
		},
	}
	if last, ok := lastOfRole(messages, model.RoleUser); ok {
		if grounding := s.buildContext(ctx, last.Content, buckets); grounding != nil {
			g.request.Context = grounding.Context
			g.request.Sources = grounding.Sources
			g.sources = grounding.Sources
		}
	}
	return g, nil
}

// finishGenerationLocked returns the engine to idle and records the outcome.
func (s *ChatService) finishGenerationLocked(g *generation, err error) {
	if s.store.Phase() == model.PhaseGenerating {
		s.store.SetPhase(model.PhaseIdle)
	}
	s.generatingFor = ""
	status := "success"
	if err != nil {
		status = "error"
	}
	metrics.GenerationsTotal.WithLabelValues(g.kind, status).Inc()
}

// Regenerate replaces the last assistant reply with a new one. Only the
// message the backend names as replaced is removed.
func (s *ChatService) Regenerate(ctx context.Context, req GenerateRequest) (*model.Message, error) {
	g, err := s.prepareGeneration(ctx, "regenerate", req, func(messages []model.Message) error {
		if _, ok := lastOfRole(messages, model.RoleAssistant); !ok {
			return app_errors.ErrNothingToRegenerate
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp, err := s.backend.RegenerateLastAssistant(ctx, g.request)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.finishGenerationLocked(g, err)
	if err != nil {
		s.store.SetError(fmt.Sprintf("Failed to regenerate response: %v", err))
		return nil, fmt.Errorf("failed to regenerate response: %w", err)
	}

	reply := withSources(resp.Message, g.sources)
	if s.store.SelectedConversationID() == g.conversationID {
		if !s.store.RemoveMessage(resp.ReplacedMessageID) {
			slog.Warn("Replaced message not found locally", "message_id", resp.ReplacedMessageID)
		}
		s.store.AppendMessage(reply)
	}
	slog.Info("Response regenerated", "conversation_id", g.conversationID, "replaced", resp.ReplacedMessageID)
	return &reply, nil
}

// Compare asks another provider or model to answer the last user message and
// appends the reply next to the existing ones.
func (s *ChatService) Compare(ctx context.Context, req GenerateRequest) (*model.Message, error) {
	g, err := s.prepareGeneration(ctx, "compare", req, func(messages []model.Message) error {
		if _, ok := lastOfRole(messages, model.RoleUser); !ok {
			return app_errors.ErrNothingToCompare
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp, err := s.backend.CompareResponse(ctx, g.request)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.finishGenerationLocked(g, err)
	if err != nil {
		s.store.SetError(fmt.Sprintf("Failed to compare response: %v", err))
		return nil, fmt.Errorf("failed to compare response: %w", err)
	}

	reply := withSources(resp.Message, g.sources)
	if s.store.SelectedConversationID() == g.conversationID {
		s.store.AppendMessage(reply)
	}
	slog.Info("Comparison added", "conversation_id", g.conversationID, "provider", reply.Provider, "model", reply.Model)
	return &reply, nil
}

// EditLastUserMessage saves new content for the last user message and asks
// for a fresh reply: a regenerate when a reply already follows it, otherwise
// a compare. An edit made while the streamed reply has no text yet drops
// that reply and compares.
func (s *ChatService) EditLastUserMessage(ctx context.Context, content string, req GenerateRequest) (*model.Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("%w: message cannot be empty", app_errors.ErrValidation)
	}
	if err := s.gate.Check("edit"); err != nil {
		return nil, err
	}

	s.mu.Lock()
	messages := s.store.Messages()
	placeholder := ""
	switch s.store.Phase() {
	case model.PhaseIdle:
	case model.PhaseStreaming:
		session, ok := s.store.Session()
		if !ok || session.AccumulatedContent != "" {
			s.mu.Unlock()
			return nil, app_errors.ErrBusy
		}
		// No reply text has arrived yet, so the edit supersedes the reply.
		placeholder = session.MessageID
		messages = withoutMessage(messages, placeholder)
	default:
		s.mu.Unlock()
		return nil, app_errors.ErrBusy
	}
	idx := lastIndexOfRole(messages, model.RoleUser)
	if idx < 0 {
		s.mu.Unlock()
		return nil, app_errors.ErrNothingToCompare
	}
	target := messages[idx]
	if target.ID.IsPending() {
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: message is still being sent", app_errors.ErrConflict)
	}
	replied := false
	for _, m := range messages[idx+1:] {
		if m.Role == model.RoleAssistant {
			replied = true
			break
		}
	}
	if placeholder != "" {
		slog.Info("Edit supersedes the pending reply", "message_id", placeholder)
		s.endSessionLocked("abandoned")
		s.store.RemoveMessage(placeholder)
	}
	s.store.UpdateMessageContent(target.ID.String(), content)
	s.mu.Unlock()

	if err := s.backend.UpdateMessageContent(ctx, target.ID.String(), content); err != nil {
		// Without the saved edit the next reply would answer the old text.
		s.store.UpdateMessageContent(target.ID.String(), target.Content)
		s.store.SetError(fmt.Sprintf("Failed to save edited message: %v", err))
		return nil, fmt.Errorf("failed to save edited message: %w", err)
	}

	if replied {
		return s.Regenerate(ctx, req)
	}
	return s.Compare(ctx, req)
}

// Turns groups the selected conversation's messages into turns.
func (s *ChatService) Turns() []model.Turn {
	return TurnsOf(s.store.Messages())
}

// TurnsOf groups messages into turns: each user message starts a turn and
// collects the assistant messages that follow it. Assistant messages before
// the first user message belong to no turn and are dropped.
func TurnsOf(messages []model.Message) []model.Turn {
	turns := []model.Turn{}
	for _, m := range messages {
		switch m.Role {
		case model.RoleUser:
			turns = append(turns, model.Turn{User: m, Assistants: []model.Message{}})
		case model.RoleAssistant:
			if len(turns) == 0 {
				continue
			}
			last := &turns[len(turns)-1]
			last.Assistants = append(last.Assistants, m)
		}
	}
	return turns
}

func lastIndexOfRole(messages []model.Message, role string) int {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == role {
			return i
		}
	}
	return -1
}

func lastOfRole(messages []model.Message, role string) (model.Message, bool) {
	if i := lastIndexOfRole(messages, role); i >= 0 {
		return messages[i], true
	}
	return model.Message{}, false
}

func withoutMessage(messages []model.Message, id string) []model.Message {
	out := make([]model.Message, 0, len(messages))
	for _, m := range messages {
		if !m.ID.Is(id) {
			out = append(out, m)
		}
	}
	return out
}

func withSources(m model.Message, sources []model.SourceReference) model.Message {
	if len(m.Sources) == 0 && len(sources) > 0 {
		m.Sources = sources
	}
	return m
}
