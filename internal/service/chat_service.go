package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"omnichat/client/internal/backend"
	app_errors "omnichat/client/internal/errors"
	"omnichat/client/internal/metrics"
	"omnichat/client/internal/model"
	"omnichat/client/internal/rag"
	"omnichat/client/internal/store"
)

// maxEarlyEvents bounds the events buffered while a stream start is in flight.
const maxEarlyEvents = 512

// LicenseGate refuses gated actions once activation is required.
type LicenseGate interface {
	Check(action string) error
}

// ContextBuilder produces knowledge grounding for a query.
type ContextBuilder interface {
	Build(ctx context.Context, query string, bucketIDs []string) *rag.Grounding
}

// KeyStore resolves the API key for a provider.
type KeyStore interface {
	APIKey(ctx context.Context, provider string) (string, error)
}

// ChatService is the conversation engine. Every engine transition runs under
// mu; the store is only written while mu is held, except for metadata edits
// and list refreshes, which touch nothing the engine reads.
type ChatService struct {
	mu      sync.Mutex
	store   *store.Store
	backend backend.Backend
	hub     *backend.Hub
	gate    LicenseGate
	builder ContextBuilder
	keys    KeyStore
	models  *ModelService

	// attempt identifies the current send; cancelling or switching away
	// while a start call is in flight bumps it.
	attempt uint64
	sub     *backend.Subscription
	early   []model.StreamEvent
	// generatingFor is the conversation a regenerate or compare is running in.
	generatingFor string

	refreshGroup singleflight.Group
	wg           sync.WaitGroup

	now   func() time.Time
	newID func() string
}

func NewChatService(
	st *store.Store,
	be backend.Backend,
	hub *backend.Hub,
	gate LicenseGate,
	builder ContextBuilder,
	keys KeyStore,
	models *ModelService,
) *ChatService {
	return &ChatService{
		store:   st,
		backend: be,
		hub:     hub,
		gate:    gate,
		builder: builder,
		keys:    keys,
		models:  models,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// SendRequest is a user message to send to the selected conversation.
type SendRequest struct {
	Content  string
	Provider string
	Model    string
	// Blocking waits for the complete reply instead of streaming it.
	Blocking bool
}

type SendResult struct {
	ConversationID     string `json:"conversation_id"`
	UserMessageID      string `json:"user_message_id"`
	AssistantMessageID string `json:"assistant_message_id,omitempty"`
}

// State returns a snapshot of the store.
func (s *ChatService) State() store.Snapshot {
	return s.store.Snapshot()
}

// Subscribe forwards to the store's change notifications.
func (s *ChatService) Subscribe() (<-chan struct{}, func()) {
	return s.store.Subscribe()
}

// DismissError clears the error slot.
func (s *ChatService) DismissError() {
	s.store.ClearError()
}

// Wait blocks until background refreshes and title updates have finished.
func (s *ChatService) Wait() {
	s.wg.Wait()
}

// Send appends the user message optimistically and starts a reply. When no
// conversation is selected a new one is created first. A send while another
// response is in progress is rejected with ErrBusy and changes nothing.
func (s *ChatService) Send(ctx context.Context, req SendRequest) (*SendResult, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, fmt.Errorf("%w: message cannot be empty", app_errors.ErrValidation)
	}
	provider, modelID, err := s.models.Resolve(req.Provider, req.Model)
	if err != nil {
		return nil, err
	}
	if err := s.gate.Check("send"); err != nil {
		return nil, err
	}
	apiKey, err := s.keys.APIKey(ctx, provider)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if phase := s.store.Phase(); phase != model.PhaseIdle {
		s.mu.Unlock()
		slog.Info("Ignoring send while a response is in progress", "phase", phase)
		return nil, app_errors.ErrBusy
	}
	s.store.SetPhase(model.PhaseSending)
	s.attempt++
	attempt := s.attempt
	conversationID := s.store.SelectedConversationID()
	s.mu.Unlock()

	if conversationID == "" {
		conversationID, err = s.createForSend(ctx, attempt)
		if err != nil {
			return nil, err
		}
	}

	s.mu.Lock()
	if s.attempt != attempt {
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: send was cancelled", app_errors.ErrConflict)
	}
	tempID := s.newID()
	firstMessage := lastIndexOfRole(s.store.Messages(), model.RoleUser) < 0
	s.store.ClearError()
	s.store.AppendMessage(model.Message{
		ID:             model.PendingID(tempID),
		ConversationID: conversationID,
		Role:           model.RoleUser,
		Content:        content,
		Provider:       provider,
		Model:          modelID,
		CreatedAt:      s.now(),
	})
	if !req.Blocking {
		// Subscribe before the start call so no early chunk is missed.
		s.sub = s.hub.Subscribe()
		go s.pump(s.sub)
	}
	buckets := s.store.SelectedBuckets()
	s.mu.Unlock()

	chatReq := &backend.ChatRequest{
		ConversationID: conversationID,
		Content:        content,
		Provider:       provider,
		Model:          modelID,
		APIKey:         apiKey,
	}
	grounding := s.buildContext(ctx, content, buckets)
	if grounding != nil {
		chatReq.Context = grounding.Context
		chatReq.Sources = grounding.Sources
	}

	if req.Blocking {
		return s.sendBlocking(ctx, attempt, tempID, chatReq, grounding, firstMessage)
	}

	slog.Debug("Starting stream", "conversation_id", conversationID, "provider", provider, "model", modelID)
	resp, err := s.backend.SendMessageStream(ctx, chatReq)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.store.RemoveMessage(tempID)
		if s.attempt == attempt {
			s.closeSubLocked()
			s.store.SetPhase(model.PhaseIdle)
		}
		s.store.SetError(fmt.Sprintf("Failed to send message: %v", err))
		metrics.StreamsTotal.WithLabelValues("start_failed").Inc()
		slog.Error("Failed to start stream", "conversation_id", conversationID, "error", err)
		return nil, fmt.Errorf("failed to start stream: %w", err)
	}

	if resp.UserMessageID == "" {
		slog.Debug("Backend did not report the stored user message id, keeping the temporary one", "temp_id", tempID)
	}
	s.store.ConfirmMessage(tempID, resp.UserMessageID)
	result := &SendResult{ConversationID: conversationID, UserMessageID: tempID}
	if resp.UserMessageID != "" {
		result.UserMessageID = resp.UserMessageID
	}
	if resp.ConversationID != "" && resp.ConversationID != conversationID {
		slog.Warn("Stream started for a different conversation than requested",
			"requested", conversationID, "reported", resp.ConversationID)
	}

	if s.attempt != attempt {
		slog.Info("Stream started after the send was abandoned", "message_id", resp.MessageID)
		return result, nil
	}

	assistant := model.Message{
		ID:             model.ConfirmedID(resp.MessageID),
		ConversationID: conversationID,
		Role:           model.RoleAssistant,
		Provider:       firstNonEmpty(resp.Provider, provider),
		Model:          firstNonEmpty(resp.Model, modelID),
		CreatedAt:      s.now(),
	}
	if grounding != nil {
		assistant.Sources = grounding.Sources
	}
	s.store.AppendMessage(assistant)
	s.store.SetSession(model.StreamingSession{
		ConversationID: conversationID,
		MessageID:      resp.MessageID,
		Active:         true,
	})
	s.store.SetPhase(model.PhaseStreaming)
	metrics.StreamsTotal.WithLabelValues("started").Inc()
	slog.Info("Stream started", "conversation_id", conversationID, "message_id", resp.MessageID)

	early := s.early
	s.early = nil
	for _, ev := range early {
		s.applyEventLocked(ev)
	}

	if firstMessage {
		s.autoTitleLocked(conversationID, content)
	}
	result.AssistantMessageID = resp.MessageID
	return result, nil
}

// createForSend creates the conversation a send without a selection goes to.
func (s *ChatService) createForSend(ctx context.Context, attempt uint64) (string, error) {
	conv, err := s.backend.CreateConversation(ctx, model.DefaultConversationTitle)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		if s.attempt == attempt {
			s.store.SetPhase(model.PhaseIdle)
		}
		s.store.SetError(fmt.Sprintf("Failed to create conversation: %v", err))
		return "", fmt.Errorf("failed to create conversation: %w", err)
	}
	s.store.UpsertConversation(*conv)
	if s.attempt != attempt {
		return "", fmt.Errorf("%w: send was cancelled", app_errors.ErrConflict)
	}
	s.store.Select(conv.ID)
	s.store.SetMessages(conv.ID, nil)
	slog.Info("Created conversation for new message", "conversation_id", conv.ID)
	return conv.ID, nil
}

func (s *ChatService) sendBlocking(ctx context.Context, attempt uint64, tempID string, req *backend.ChatRequest, grounding *rag.Grounding, firstMessage bool) (*SendResult, error) {
	resp, err := s.backend.SendMessage(ctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.attempt == attempt {
		s.store.SetPhase(model.PhaseIdle)
	}
	if err != nil {
		s.store.RemoveMessage(tempID)
		s.store.SetError(fmt.Sprintf("Failed to send message: %v", err))
		metrics.GenerationsTotal.WithLabelValues("send", "error").Inc()
		return nil, fmt.Errorf("failed to send message: %w", err)
	}

	s.store.ConfirmMessage(tempID, "")
	reply := resp.Message
	if len(reply.Sources) == 0 && grounding != nil {
		reply.Sources = grounding.Sources
	}
	s.store.AppendMessage(reply)
	metrics.GenerationsTotal.WithLabelValues("send", "success").Inc()

	if firstMessage {
		s.autoTitleLocked(req.ConversationID, req.Content)
	}
	s.refreshAsync()
	return &SendResult{
		ConversationID:     req.ConversationID,
		UserMessageID:      tempID,
		AssistantMessageID: reply.ID.String(),
	}, nil
}

func (s *ChatService) buildContext(ctx context.Context, query string, bucketIDs []string) *rag.Grounding {
	if len(bucketIDs) == 0 {
		return nil
	}
	start := time.Now()
	defer func() { metrics.RetrievalDuration.Observe(time.Since(start).Seconds()) }()
	return s.builder.Build(ctx, query, bucketIDs)
}

// pump feeds events from one subscription into the engine until it is closed.
func (s *ChatService) pump(sub *backend.Subscription) {
	for {
		select {
		case <-sub.Done():
			return
		case ev := <-sub.Events():
			s.HandleStreamEvent(ev)
		}
	}
}

// HandleStreamEvent folds one push event into the store. Events that do not
// belong to the active session of the selected conversation are dropped.
func (s *ChatService) HandleStreamEvent(ev model.StreamEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.applyEventLocked(ev)
}

func (s *ChatService) applyEventLocked(ev model.StreamEvent) {
	if s.store.Phase() == model.PhaseSending && s.sub != nil {
		// The start call has not returned yet, so the message id is unknown.
		if len(s.early) < maxEarlyEvents {
			s.early = append(s.early, ev)
			return
		}
		s.dropStale(ev, "early buffer full")
		return
	}

	session, ok := s.store.Session()
	if !ok || !session.Active {
		s.dropStale(ev, "no active session")
		return
	}
	if ev.ConversationID != s.store.SelectedConversationID() || ev.MessageID != session.MessageID {
		s.dropStale(ev, "session mismatch")
		return
	}

	if ev.IsError() {
		text := ev.Delta
		if text == "" {
			text = "The response stream failed."
		}
		slog.Warn("Stream failed", "conversation_id", ev.ConversationID, "message_id", ev.MessageID, "error", text)
		s.store.SetError(text)
		s.endSessionLocked("errored")
		return
	}

	if ev.Delta != "" {
		s.store.ApplyDelta(ev.MessageID, ev.Delta)
	}
	if ev.Done {
		slog.Info("Stream completed", "conversation_id", ev.ConversationID, "message_id", ev.MessageID)
		s.endSessionLocked("completed")
		s.refreshAsync()
	}
}

func (s *ChatService) dropStale(ev model.StreamEvent, reason string) {
	metrics.StaleEventsTotal.Inc()
	slog.Debug("Dropping stream event", "reason", reason,
		"conversation_id", ev.ConversationID, "message_id", ev.MessageID)
}

func (s *ChatService) endSessionLocked(outcome string) {
	s.store.ClearSession()
	s.store.SetPhase(model.PhaseIdle)
	s.closeSubLocked()
	metrics.StreamsTotal.WithLabelValues(outcome).Inc()
}

func (s *ChatService) closeSubLocked() {
	if s.sub != nil {
		s.sub.Close()
		s.sub = nil
	}
	s.early = nil
}

// Cancel stops listening to the in-flight response. The backend is not told;
// events that still arrive for it are dropped. It reports whether anything
// was cancelled.
func (s *ChatService) Cancel() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.abandonLocked("cancelled")
}

// abandonLocked ends a streaming session or invalidates a send whose start
// call has not returned. Non-streaming generations run to completion.
func (s *ChatService) abandonLocked(outcome string) bool {
	switch s.store.Phase() {
	case model.PhaseStreaming:
		session, _ := s.store.Session()
		slog.Info("Stream stopped", "outcome", outcome, "message_id", session.MessageID)
		s.endSessionLocked(outcome)
		return true
	case model.PhaseSending:
		slog.Info("Send abandoned before the stream started", "outcome", outcome)
		s.attempt++
		s.closeSubLocked()
		s.store.SetPhase(model.PhaseIdle)
		metrics.StreamsTotal.WithLabelValues(outcome).Inc()
		return true
	default:
		return false
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
