package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"movieplus/internal/chat/service"
	"movieplus/internal/common"
)

// Client actions accepted over the realtime channel.
const (
	ActionJoin                 = "join"
	ActionLeave                = "leave"
	ActionSendMessage          = "send_message"
	ActionTyping               = "typing"
	ActionStopTyping           = "stop_typing"
	ActionMarkSeen             = "mark_seen"
	ActionMarkConversationRead = "mark_conversation_read"
	ActionAddReaction          = "add_reaction"
	ActionRemoveReaction       = "remove_reaction"
)

const actionTimeout = 10 * time.Second

type clientFrame struct {
	Action         string  `json:"action"`
	ConversationID uint    `json:"conversation_id,omitempty"`
	MessageID      uint64  `json:"message_id,omitempty"`
	Content        *string `json:"content,omitempty"`
	MediaURL       *string `json:"media_url,omitempty"`
	MediaType      *string `json:"media_type,omitempty"`
	Reaction       string  `json:"reaction,omitempty"`
}

// Manager runs the realtime sessions: connect-time hydration, the
// per-action participation checks, and fan-out to broadcast groups and
// the push gateway. Participation is re-verified against the directory
// on every action; group membership is only a routing cache.
type Manager struct {
	hub      *Hub
	convs    service.ConversationService
	messages service.MessageService
	presence service.PresenceService
	push     service.PushService
	logger   *zap.Logger
	upgrader websocket.Upgrader
}

func NewManager(
	hub *Hub,
	convs service.ConversationService,
	messages service.MessageService,
	presence service.PresenceService,
	push service.PushService,
	logger *zap.Logger,
) *Manager {
	return &Manager{
		hub:      hub,
		convs:    convs,
		messages: messages,
		presence: presence,
		push:     push,
		logger:   logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// HandleWS upgrades the connection, registers presence, and subscribes
// the session to every conversation the user participates in. The
// request must already carry an authenticated identity; without one the
// connection is rejected before it joins anything.
func (m *Manager) HandleWS(w http.ResponseWriter, r *http.Request) {
	userID := common.UserIDFromContext(r.Context())
	if userID == "" {
		http.Error(w, "authorization required", http.StatusUnauthorized)
		return
	}

	handle := uuid.NewString()

	ctx, cancel := context.WithTimeout(r.Context(), actionTimeout)
	conversationIDs, err := m.convs.ConversationIDsForUser(ctx, userID)
	if err != nil {
		cancel()
		m.logger.Error("connect hydration failed", zap.String("user_id", userID), zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	var deviceInfo *string
	if ua := r.UserAgent(); ua != "" {
		deviceInfo = &ua
	}
	if err := m.presence.Connect(ctx, userID, handle, deviceInfo); err != nil {
		cancel()
		m.logger.Error("presence registration failed", zap.String("user_id", userID), zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	cancel()

	conn, err := m.upgrader.Upgrade(w, r, nil)
	if err != nil {
		m.disconnect(handle)
		return
	}

	session := newSession(handle, userID, conn)
	m.hub.Add(session)
	for _, id := range conversationIDs {
		m.hub.Join(session, id)
	}

	m.logger.Info("session joined",
		zap.String("user_id", userID),
		zap.String("handle", handle),
		zap.Int("groups", len(conversationIDs)))

	go session.writePump()
	session.readPump(
		func(data []byte) { m.dispatch(session, data) },
		func() { m.touchLastSeen(userID) },
	)

	// readPump returned: the connection is gone, whatever the cause.
	m.hub.Remove(session)
	session.Close()
	m.disconnect(handle)
	m.logger.Info("session closed", zap.String("user_id", userID), zap.String("handle", handle))
}

// dispatch routes one client frame. Action failures are reported to the
// initiating session only and never terminate the connection.
func (m *Manager) dispatch(session *Session, data []byte) {
	var frame clientFrame
	if err := json.Unmarshal(data, &frame); err != nil {
		m.sendError(session, "", "malformed frame")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), actionTimeout)
	defer cancel()

	var err error
	switch frame.Action {
	case ActionJoin:
		err = m.handleJoin(ctx, session, frame.ConversationID)
	case ActionLeave:
		m.hub.Leave(session, frame.ConversationID)
	case ActionSendMessage:
		err = m.handleSendMessage(ctx, session, frame)
	case ActionTyping:
		err = m.handleTyping(ctx, session, frame.ConversationID, true)
	case ActionStopTyping:
		err = m.handleTyping(ctx, session, frame.ConversationID, false)
	case ActionMarkSeen:
		err = m.handleMarkSeen(ctx, session, frame.MessageID)
	case ActionMarkConversationRead:
		err = m.handleMarkConversationRead(ctx, session, frame.ConversationID)
	case ActionAddReaction:
		err = m.handleAddReaction(ctx, session, frame.MessageID, frame.Reaction)
	case ActionRemoveReaction:
		err = m.handleRemoveReaction(ctx, session, frame.MessageID)
	default:
		m.sendError(session, frame.Action, "unknown action")
		return
	}

	if err != nil {
		m.sendError(session, frame.Action, reason(err))
		if !errors.Is(err, common.ErrPermissionDenied) &&
			!errors.Is(err, common.ErrNotFound) &&
			!errors.Is(err, common.ErrValidation) {
			m.logger.Error("action failed",
				zap.String("action", frame.Action),
				zap.String("user_id", session.UserID),
				zap.Error(err))
		}
	}
}

func (m *Manager) handleJoin(ctx context.Context, session *Session, conversationID uint) error {
	if err := m.requireParticipant(ctx, conversationID, session.UserID); err != nil {
		return err
	}
	m.hub.Join(session, conversationID)
	return nil
}

func (m *Manager) handleSendMessage(ctx context.Context, session *Session, frame clientFrame) error {
	if err := m.requireParticipant(ctx, frame.ConversationID, session.UserID); err != nil {
		return err
	}

	msg, err := m.messages.Create(ctx, frame.ConversationID, session.UserID, service.CreateMessageInput{
		Content:   frame.Content,
		MediaURL:  frame.MediaURL,
		MediaType: frame.MediaType,
	})
	if err != nil {
		return err
	}

	m.PublishMessage(ctx, msg, session.UserID)
	return nil
}

// PublishMessage fans a durably stored message out: a broadcast to the
// conversation's group (the sender's sessions included) and a push to
// every non-sender participant. Push is not suppressed for recipients
// with live sessions; it fires unconditionally, as a side channel.
func (m *Manager) PublishMessage(ctx context.Context, msg *service.MessageDTO, senderID string) {
	event := NewMessageEvent(msg)
	m.broadcast(msg.ConversationID, event, "")

	recipients, err := m.convs.ParticipantIDs(ctx, msg.ConversationID)
	if err != nil {
		m.logger.Warn("push recipient lookup failed",
			zap.Uint("conversation_id", msg.ConversationID), zap.Error(err))
		return
	}
	others := make([]string, 0, len(recipients))
	for _, id := range recipients {
		if id != senderID {
			others = append(others, id)
		}
	}
	if title, body, data, ok := event.PushRender(); ok {
		m.push.SendToMany(ctx, others, title, body, data)
	}
}

func (m *Manager) handleTyping(ctx context.Context, session *Session, conversationID uint, typing bool) error {
	if err := m.requireParticipant(ctx, conversationID, session.UserID); err != nil {
		return err
	}
	m.broadcast(conversationID, TypingEvent(conversationID, session.UserID, typing), session.Handle)
	return nil
}

func (m *Manager) handleMarkSeen(ctx context.Context, session *Session, messageID uint64) error {
	msg, err := m.messages.GetByID(ctx, messageID, session.UserID)
	if err != nil {
		return err
	}
	if err := m.requireParticipant(ctx, msg.ConversationID, session.UserID); err != nil {
		return err
	}
	if err := m.messages.MarkRead(ctx, messageID, session.UserID); err != nil {
		return err
	}
	m.broadcast(msg.ConversationID, MessageSeenEvent(msg.ConversationID, messageID, session.UserID), session.Handle)
	return nil
}

func (m *Manager) handleMarkConversationRead(ctx context.Context, session *Session, conversationID uint) error {
	if err := m.requireParticipant(ctx, conversationID, session.UserID); err != nil {
		return err
	}
	if err := m.messages.MarkConversationRead(ctx, conversationID, session.UserID); err != nil {
		return err
	}
	m.broadcast(conversationID, ConversationReadEvent(conversationID, session.UserID), session.Handle)
	return nil
}

// handleAddReaction resolves the message's own conversation for the
// participation check: the client is not trusted to name it.
func (m *Manager) handleAddReaction(ctx context.Context, session *Session, messageID uint64, reaction string) error {
	msg, err := m.messages.GetByID(ctx, messageID, session.UserID)
	if err != nil {
		return err
	}
	if err := m.requireParticipant(ctx, msg.ConversationID, session.UserID); err != nil {
		return err
	}
	updated, err := m.messages.SetReaction(ctx, messageID, session.UserID, reaction)
	if err != nil {
		return err
	}
	m.broadcast(msg.ConversationID, ReactionSetEvent(updated), "")
	return nil
}

func (m *Manager) handleRemoveReaction(ctx context.Context, session *Session, messageID uint64) error {
	msg, err := m.messages.GetByID(ctx, messageID, session.UserID)
	if err != nil {
		return err
	}
	if err := m.requireParticipant(ctx, msg.ConversationID, session.UserID); err != nil {
		return err
	}
	if _, err := m.messages.ClearReaction(ctx, messageID, session.UserID); err != nil {
		return err
	}
	m.broadcast(msg.ConversationID, ReactionClearedEvent(msg.ConversationID, messageID, session.UserID), "")
	return nil
}

func (m *Manager) requireParticipant(ctx context.Context, conversationID uint, userID string) error {
	ok, err := m.convs.IsParticipant(ctx, conversationID, userID)
	if err != nil {
		return err
	}
	if !ok {
		return common.ErrPermissionDenied
	}
	return nil
}

func (m *Manager) broadcast(conversationID uint, event *Event, exceptHandle string) {
	data, err := event.MarshalWS()
	if err != nil {
		m.logger.Error("event marshal failed", zap.String("event", event.Type), zap.Error(err))
		return
	}
	m.hub.Broadcast(conversationID, data, exceptHandle)
}

func (m *Manager) sendError(session *Session, action, errReason string) {
	data, err := ErrorEvent(action, errReason).MarshalWS()
	if err != nil {
		return
	}
	session.enqueue(data)
}

func (m *Manager) disconnect(handle string) {
	ctx, cancel := context.WithTimeout(context.Background(), actionTimeout)
	defer cancel()
	if err := m.presence.Disconnect(ctx, handle); err != nil {
		m.logger.Warn("presence cleanup failed", zap.String("handle", handle), zap.Error(err))
	}
}

func (m *Manager) touchLastSeen(userID string) {
	ctx, cancel := context.WithTimeout(context.Background(), actionTimeout)
	defer cancel()
	if err := m.presence.TouchLastSeen(ctx, userID); err != nil {
		m.logger.Debug("last-seen update failed", zap.String("user_id", userID), zap.Error(err))
	}
}

func reason(err error) string {
	switch {
	case errors.Is(err, common.ErrPermissionDenied):
		return "permission denied"
	case errors.Is(err, common.ErrNotFound):
		return "not found"
	case errors.Is(err, common.ErrValidation):
		return err.Error()
	default:
		return "internal error"
	}
}
