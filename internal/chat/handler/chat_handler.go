// Package handler exposes the request/response surface over the same
// operations the realtime channel uses.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"movieplus/internal/chat/realtime"
	"movieplus/internal/chat/service"
	"movieplus/internal/common"
)

type ChatHandler struct {
	convs    service.ConversationService
	messages service.MessageService
	manager  *realtime.Manager
	logger   *zap.Logger
}

func NewChatHandler(
	convs service.ConversationService,
	messages service.MessageService,
	manager *realtime.Manager,
	logger *zap.Logger,
) *ChatHandler {
	return &ChatHandler{convs: convs, messages: messages, manager: manager, logger: logger}
}

type createConversationRequest struct {
	IsGroup        bool     `json:"is_group"`
	Title          string   `json:"title"`
	ParticipantIDs []string `json:"participant_ids"`
}

type addParticipantRequest struct {
	UserID string `json:"user_id"`
}

type editMessageRequest struct {
	Content string `json:"content"`
}

type setReactionRequest struct {
	Reaction string `json:"reaction"`
}

func (h *ChatHandler) ListConversations(w http.ResponseWriter, r *http.Request) {
	userID := common.UserIDFromContext(r.Context())
	convs, err := h.convs.ListForUser(r.Context(), userID)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, convs)
}

func (h *ChatHandler) GetConversation(w http.ResponseWriter, r *http.Request) {
	userID := common.UserIDFromContext(r.Context())
	conversationID, ok := h.pathUint(w, r, "id")
	if !ok {
		return
	}
	conv, err := h.convs.GetByID(r.Context(), conversationID, userID)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, conv)
}

func (h *ChatHandler) CreateConversation(w http.ResponseWriter, r *http.Request) {
	userID := common.UserIDFromContext(r.Context())
	var req createConversationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, common.ValidationError("invalid request body"))
		return
	}

	var conv *service.ConversationDTO
	var err error
	if req.IsGroup {
		conv, err = h.convs.CreateGroup(r.Context(), userID, req.Title, req.ParticipantIDs)
	} else {
		if len(req.ParticipantIDs) != 1 {
			h.respondError(w, common.ValidationError("1-to-1 conversation requires exactly one participant"))
			return
		}
		conv, err = h.convs.CreateDirect(r.Context(), userID, req.ParticipantIDs[0])
	}
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, conv)
}

func (h *ChatHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	userID := common.UserIDFromContext(r.Context())
	conversationID, ok := h.pathUint(w, r, "id")
	if !ok {
		return
	}
	if !h.requireParticipant(w, r, conversationID, userID) {
		return
	}

	page := queryInt(r, "page", 1)
	pageSize := queryInt(r, "page_size", 50)
	messages, err := h.messages.List(r.Context(), conversationID, userID, page, pageSize)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, messages)
}

func (h *ChatHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	userID := common.UserIDFromContext(r.Context())
	conversationID, ok := h.pathUint(w, r, "id")
	if !ok {
		return
	}
	if !h.requireParticipant(w, r, conversationID, userID) {
		return
	}

	var in service.CreateMessageInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		h.respondError(w, common.ValidationError("invalid request body"))
		return
	}

	msg, err := h.messages.Create(r.Context(), conversationID, userID, in)
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.manager.PublishMessage(r.Context(), msg, userID)
	h.respondJSON(w, http.StatusCreated, msg)
}

func (h *ChatHandler) MarkConversationRead(w http.ResponseWriter, r *http.Request) {
	userID := common.UserIDFromContext(r.Context())
	conversationID, ok := h.pathUint(w, r, "id")
	if !ok {
		return
	}
	if !h.requireParticipant(w, r, conversationID, userID) {
		return
	}

	if err := h.messages.MarkConversationRead(r.Context(), conversationID, userID); err != nil {
		h.respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ChatHandler) UnreadCount(w http.ResponseWriter, r *http.Request) {
	userID := common.UserIDFromContext(r.Context())
	conversationID, ok := h.pathUint(w, r, "id")
	if !ok {
		return
	}
	if !h.requireParticipant(w, r, conversationID, userID) {
		return
	}

	count, err := h.messages.UnreadCount(r.Context(), conversationID, userID)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]int64{"unread_count": count})
}

func (h *ChatHandler) AddParticipant(w http.ResponseWriter, r *http.Request) {
	userID := common.UserIDFromContext(r.Context())
	conversationID, ok := h.pathUint(w, r, "id")
	if !ok {
		return
	}

	var req addParticipantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.UserID == "" {
		h.respondError(w, common.ValidationError("user_id is required"))
		return
	}

	conv, err := h.convs.AddParticipant(r.Context(), conversationID, req.UserID, userID)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, conv)
}

func (h *ChatHandler) RemoveParticipant(w http.ResponseWriter, r *http.Request) {
	userID := common.UserIDFromContext(r.Context())
	conversationID, ok := h.pathUint(w, r, "id")
	if !ok {
		return
	}
	target := mux.Vars(r)["userID"]

	if err := h.convs.RemoveParticipant(r.Context(), conversationID, target, userID); err != nil {
		h.respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ChatHandler) EditMessage(w http.ResponseWriter, r *http.Request) {
	userID := common.UserIDFromContext(r.Context())
	messageID, ok := h.pathUint64(w, r, "id")
	if !ok {
		return
	}

	var req editMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, common.ValidationError("invalid request body"))
		return
	}

	msg, err := h.messages.Edit(r.Context(), messageID, userID, req.Content)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, msg)
}

func (h *ChatHandler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	userID := common.UserIDFromContext(r.Context())
	messageID, ok := h.pathUint64(w, r, "id")
	if !ok {
		return
	}

	if err := h.messages.SoftDelete(r.Context(), messageID, userID); err != nil {
		h.respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ChatHandler) MarkMessageRead(w http.ResponseWriter, r *http.Request) {
	userID := common.UserIDFromContext(r.Context())
	messageID, ok := h.pathUint64(w, r, "id")
	if !ok {
		return
	}

	msg, err := h.messages.GetByID(r.Context(), messageID, userID)
	if err != nil {
		h.respondError(w, err)
		return
	}
	if !h.requireParticipant(w, r, msg.ConversationID, userID) {
		return
	}

	if err := h.messages.MarkRead(r.Context(), messageID, userID); err != nil {
		h.respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ChatHandler) SetReaction(w http.ResponseWriter, r *http.Request) {
	userID := common.UserIDFromContext(r.Context())
	messageID, ok := h.pathUint64(w, r, "id")
	if !ok {
		return
	}

	var req setReactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, common.ValidationError("invalid request body"))
		return
	}

	msg, err := h.messages.GetByID(r.Context(), messageID, userID)
	if err != nil {
		h.respondError(w, err)
		return
	}
	if !h.requireParticipant(w, r, msg.ConversationID, userID) {
		return
	}

	updated, err := h.messages.SetReaction(r.Context(), messageID, userID, req.Reaction)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, updated)
}

func (h *ChatHandler) ClearReaction(w http.ResponseWriter, r *http.Request) {
	userID := common.UserIDFromContext(r.Context())
	messageID, ok := h.pathUint64(w, r, "id")
	if !ok {
		return
	}

	msg, err := h.messages.GetByID(r.Context(), messageID, userID)
	if err != nil {
		h.respondError(w, err)
		return
	}
	if !h.requireParticipant(w, r, msg.ConversationID, userID) {
		return
	}

	if _, err := h.messages.ClearReaction(r.Context(), messageID, userID); err != nil {
		h.respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// requireParticipant enforces the directory check on REST routes. A
// non-participant gets the same 404 as a missing conversation so
// private conversations do not leak their existence.
func (h *ChatHandler) requireParticipant(w http.ResponseWriter, r *http.Request, conversationID uint, userID string) bool {
	ok, err := h.convs.IsParticipant(r.Context(), conversationID, userID)
	if err != nil {
		h.respondError(w, err)
		return false
	}
	if !ok {
		h.respondError(w, common.ErrNotFound)
		return false
	}
	return true
}

func (h *ChatHandler) pathUint(w http.ResponseWriter, r *http.Request, name string) (uint, bool) {
	raw := mux.Vars(r)[name]
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		h.respondError(w, common.ValidationError("invalid %s", name))
		return 0, false
	}
	return uint(value), true
}

func (h *ChatHandler) pathUint64(w http.ResponseWriter, r *http.Request, name string) (uint64, bool) {
	raw := mux.Vars(r)[name]
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		h.respondError(w, common.ValidationError("invalid %s", name))
		return 0, false
	}
	return value, true
}

func (h *ChatHandler) respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("response encoding failed", zap.Error(err))
	}
}

func (h *ChatHandler) respondError(w http.ResponseWriter, err error) {
	status := common.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		h.logger.Error("request failed", zap.Error(err))
		http.Error(w, "internal error", status)
		return
	}
	message := "request failed"
	switch {
	case errors.Is(err, common.ErrValidation):
		message = err.Error()
	case errors.Is(err, common.ErrPermissionDenied):
		message = "forbidden"
	case errors.Is(err, common.ErrNotFound):
		message = "not found"
	}
	http.Error(w, message, status)
}

func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return fallback
	}
	return value
}
