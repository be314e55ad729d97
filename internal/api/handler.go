package api

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"omnichat/client/internal/interfaces"
	"omnichat/client/internal/service"
)

// ChatHandler serves the engine state, conversations and messages.
type ChatHandler struct {
	service interfaces.ChatService
}

func NewChatHandler(svc interfaces.ChatService) *ChatHandler {
	return &ChatHandler{service: svc}
}

// GetState godoc
// @Summary      Get engine state
// @Description  Returns a snapshot of conversations, messages, engine phase and the error slot.
// @Tags         State
// @Produce      json
// @Success      200  {object}  store.Snapshot
// @Router       /v1/state [get]
func (h *ChatHandler) GetState(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.service.State())
}

// HandleStateStream godoc
// @Summary      Stream engine state
// @Description  Sends a snapshot immediately and again after every change.
// @Tags         State
// @Produce      text/event-stream
// @Success      200  {object}  store.Snapshot  "Stream of snapshots"
// @Router       /v1/state/stream [get]
func (h *ChatHandler) HandleStateStream(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	updates, unsubscribe := h.service.Subscribe()
	defer unsubscribe()

	if err := writeStreamEvent(w, "state", h.service.State()); err != nil {
		slog.Warn("Could not write to state stream, client likely disconnected.", "error", err)
		return
	}
	for {
		select {
		case <-r.Context().Done():
			slog.Debug("State stream closed by client")
			return
		case _, ok := <-updates:
			if !ok {
				return
			}
			if err := writeStreamEvent(w, "state", h.service.State()); err != nil {
				slog.Warn("Could not write to state stream, client likely disconnected.", "error", err)
				return
			}
		}
	}
}

// DismissError godoc
// @Summary      Clear the error slot
// @Tags         State
// @Success      204
// @Router       /v1/state/error [delete]
func (h *ChatHandler) DismissError(w http.ResponseWriter, r *http.Request) {
	h.service.DismissError()
	w.WriteHeader(http.StatusNoContent)
}

// GetTurns godoc
// @Summary      Group the selected conversation into turns
// @Tags         State
// @Produce      json
// @Success      200  {array}  model.Turn
// @Router       /v1/turns [get]
func (h *ChatHandler) GetTurns(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.service.Turns())
}

// GetConversations godoc
// @Summary      Reload and list conversations
// @Tags         Conversations
// @Produce      json
// @Success      200  {array}   model.Conversation
// @Failure      500  {object}  ErrorResponse
// @Router       /v1/conversations [get]
func (h *ChatHandler) GetConversations(w http.ResponseWriter, r *http.Request) {
	if err := h.service.RefreshConversations(r.Context()); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, h.service.State().Conversations)
}

// CreateConversation godoc
// @Summary      Create and select a conversation
// @Tags         Conversations
// @Accept       json
// @Produce      json
// @Param        request  body      CreateConversationRequest  false  "Optional title"
// @Success      201      {object}  model.Conversation
// @Failure      400      {object}  ErrorResponse
// @Router       /v1/conversations [post]
func (h *ChatHandler) CreateConversation(w http.ResponseWriter, r *http.Request) {
	var req CreateConversationRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	conv, err := h.service.CreateConversation(r.Context(), req.Title)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, conv)
}

// SearchConversations godoc
// @Summary      Search conversations
// @Tags         Conversations
// @Produce      json
// @Param        q    query     string  true  "Search text"
// @Success      200  {array}   model.ConversationSearchResult
// @Router       /v1/conversations/search [get]
func (h *ChatHandler) SearchConversations(w http.ResponseWriter, r *http.Request) {
	results, err := h.service.SearchConversations(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, results)
}

// SelectConversation godoc
// @Summary      Select a conversation and load its messages
// @Tags         Conversations
// @Produce      json
// @Param        conversationID  path      string  true  "Conversation ID"
// @Success      200             {array}   model.Message
// @Failure      404             {object}  ErrorResponse
// @Router       /v1/conversations/{conversationID}/select [post]
func (h *ChatHandler) SelectConversation(w http.ResponseWriter, r *http.Request) {
	messages, err := h.service.SelectConversation(r.Context(), chi.URLParam(r, "conversationID"))
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, messages)
}

// DeleteConversation godoc
// @Summary      Delete a conversation
// @Tags         Conversations
// @Param        conversationID  path  string  true  "Conversation ID"
// @Success      204
// @Failure      500  {object}  ErrorResponse
// @Router       /v1/conversations/{conversationID} [delete]
func (h *ChatHandler) DeleteConversation(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteConversation(r.Context(), chi.URLParam(r, "conversationID")); err != nil {
		respondWithError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CloneConversation godoc
// @Summary      Clone a conversation
// @Tags         Conversations
// @Accept       json
// @Produce      json
// @Param        conversationID  path      string                    true   "Conversation ID"
// @Param        request         body      CloneConversationRequest  false  "Title of the copy"
// @Success      201             {object}  model.Conversation
// @Failure      404             {object}  ErrorResponse
// @Router       /v1/conversations/{conversationID}/clone [post]
func (h *ChatHandler) CloneConversation(w http.ResponseWriter, r *http.Request) {
	var req CloneConversationRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	clone, err := h.service.CloneConversation(r.Context(), chi.URLParam(r, "conversationID"), req.Title)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, clone)
}

// ExportConversation godoc
// @Summary      Export a conversation as markdown
// @Tags         Conversations
// @Accept       json
// @Produce      json
// @Param        conversationID  path      string                     true  "Conversation ID"
// @Param        request         body      ExportConversationRequest  true  "Destination file"
// @Success      200             {object}  StatusResponse
// @Failure      400             {object}  ErrorResponse
// @Router       /v1/conversations/{conversationID}/export [post]
func (h *ChatHandler) ExportConversation(w http.ResponseWriter, r *http.Request) {
	var req ExportConversationRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	if err := h.service.ExportConversation(r.Context(), chi.URLParam(r, "conversationID"), req.Path); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

// UpdateTitle godoc
// @Summary      Rename a conversation
// @Tags         Conversations
// @Accept       json
// @Produce      json
// @Param        conversationID  path      string              true  "Conversation ID"
// @Param        request         body      UpdateTitleRequest  true  "New title"
// @Success      200             {object}  StatusResponse
// @Failure      400             {object}  ErrorResponse
// @Failure      404             {object}  ErrorResponse
// @Router       /v1/conversations/{conversationID}/title [put]
func (h *ChatHandler) UpdateTitle(w http.ResponseWriter, r *http.Request) {
	var req UpdateTitleRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	if err := h.service.UpdateTitle(r.Context(), chi.URLParam(r, "conversationID"), req.Title); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

// UpdatePinned godoc
// @Summary      Pin or unpin a conversation
// @Tags         Conversations
// @Accept       json
// @Produce      json
// @Param        conversationID  path      string               true  "Conversation ID"
// @Param        request         body      UpdatePinnedRequest  true  "Pinned flag"
// @Success      200             {object}  StatusResponse
// @Router       /v1/conversations/{conversationID}/pinned [put]
func (h *ChatHandler) UpdatePinned(w http.ResponseWriter, r *http.Request) {
	var req UpdatePinnedRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	if err := h.service.SetPinned(r.Context(), chi.URLParam(r, "conversationID"), *req.Pinned); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

// UpdateTags godoc
// @Summary      Replace a conversation's tags
// @Tags         Conversations
// @Accept       json
// @Produce      json
// @Param        conversationID  path      string             true  "Conversation ID"
// @Param        request         body      UpdateTagsRequest  true  "Tags"
// @Success      200             {object}  StatusResponse
// @Router       /v1/conversations/{conversationID}/tags [put]
func (h *ChatHandler) UpdateTags(w http.ResponseWriter, r *http.Request) {
	var req UpdateTagsRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	if err := h.service.SetTags(r.Context(), chi.URLParam(r, "conversationID"), req.Tags); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

// UpdateFolder godoc
// @Summary      Move a conversation into a folder
// @Tags         Conversations
// @Accept       json
// @Produce      json
// @Param        conversationID  path      string               true  "Conversation ID"
// @Param        request         body      UpdateFolderRequest  true  "Folder, null to remove"
// @Success      200             {object}  StatusResponse
// @Router       /v1/conversations/{conversationID}/folder [put]
func (h *ChatHandler) UpdateFolder(w http.ResponseWriter, r *http.Request) {
	var req UpdateFolderRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	if err := h.service.SetFolder(r.Context(), chi.URLParam(r, "conversationID"), req.Folder); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

// SendMessage godoc
// @Summary      Send a message
// @Description  Appends the user message and starts a reply. Streamed chunks are delivered through the state stream.
// @Tags         Messages
// @Accept       json
// @Produce      json
// @Param        request  body      SendMessageRequest  true  "Message"
// @Success      202      {object}  service.SendResult  "Stream started"
// @Success      200      {object}  service.SendResult  "Blocking reply received"
// @Failure      400      {object}  ErrorResponse
// @Failure      403      {object}  ErrorResponse
// @Failure      409      {object}  ErrorResponse
// @Router       /v1/messages [post]
func (h *ChatHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req SendMessageRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	result, err := h.service.Send(r.Context(), service.SendRequest{
		Content:  req.Content,
		Provider: req.Provider,
		Model:    req.Model,
		Blocking: req.Blocking,
	})
	if err != nil {
		respondWithError(w, err)
		return
	}
	status := http.StatusAccepted
	if req.Blocking {
		status = http.StatusOK
	}
	respondWithJSON(w, status, result)
}

// StopMessage godoc
// @Summary      Stop listening to the in-flight reply
// @Tags         Messages
// @Produce      json
// @Success      200  {object}  CancelResponse
// @Router       /v1/messages/stop [post]
func (h *ChatHandler) StopMessage(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, CancelResponse{Cancelled: h.service.Cancel()})
}

// RegenerateMessage godoc
// @Summary      Regenerate the last assistant reply
// @Tags         Messages
// @Accept       json
// @Produce      json
// @Param        request  body      GenerateRequest  true  "Provider and model"
// @Success      200      {object}  model.Message
// @Failure      400      {object}  ErrorResponse
// @Failure      409      {object}  ErrorResponse
// @Router       /v1/messages/regenerate [post]
func (h *ChatHandler) RegenerateMessage(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	reply, err := h.service.Regenerate(r.Context(), service.GenerateRequest{Provider: req.Provider, Model: req.Model})
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, reply)
}

// CompareMessage godoc
// @Summary      Answer the last user message with another model
// @Tags         Messages
// @Accept       json
// @Produce      json
// @Param        request  body      GenerateRequest  true  "Provider and model"
// @Success      200      {object}  model.Message
// @Failure      400      {object}  ErrorResponse
// @Failure      409      {object}  ErrorResponse
// @Router       /v1/messages/compare [post]
func (h *ChatHandler) CompareMessage(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	reply, err := h.service.Compare(r.Context(), service.GenerateRequest{Provider: req.Provider, Model: req.Model})
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, reply)
}

// EditLastUserMessage godoc
// @Summary      Edit the last user message and get a new reply
// @Tags         Messages
// @Accept       json
// @Produce      json
// @Param        request  body      EditMessageRequest  true  "New content"
// @Success      200      {object}  model.Message
// @Failure      400      {object}  ErrorResponse
// @Failure      409      {object}  ErrorResponse
// @Router       /v1/messages/last-user [put]
func (h *ChatHandler) EditLastUserMessage(w http.ResponseWriter, r *http.Request) {
	var req EditMessageRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	reply, err := h.service.EditLastUserMessage(r.Context(), req.Content,
		service.GenerateRequest{Provider: req.Provider, Model: req.Model})
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, reply)
}

// SelectBuckets godoc
// @Summary      Choose the knowledge buckets used for grounding
// @Tags         Knowledge
// @Accept       json
// @Produce      json
// @Param        request  body      SelectBucketsRequest  true  "Bucket IDs"
// @Success      200      {object}  BucketSelectionResponse
// @Router       /v1/buckets/selection [put]
func (h *ChatHandler) SelectBuckets(w http.ResponseWriter, r *http.Request) {
	var req SelectBucketsRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, BucketSelectionResponse{BucketIDs: h.service.SelectBuckets(req.BucketIDs)})
}

// Transcribe godoc
// @Summary      Transcribe WAV audio
// @Tags         Audio
// @Accept       json
// @Produce      json
// @Param        request  body      TranscriptionRequest  true  "Base64 WAV audio"
// @Success      200      {object}  TranscriptionResponse
// @Failure      400      {object}  ErrorResponse
// @Failure      403      {object}  ErrorResponse
// @Router       /v1/transcriptions [post]
func (h *ChatHandler) Transcribe(w http.ResponseWriter, r *http.Request) {
	var req TranscriptionRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	text, err := h.service.Transcribe(r.Context(), strings.TrimSpace(req.Audio))
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, TranscriptionResponse{Text: text})
}
