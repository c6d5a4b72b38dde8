package realtime

import (
	"encoding/json"
	"strconv"

	"movieplus/internal/chat/service"
)

// Event types emitted to subscribed sessions.
const (
	EventMessageNew       = "message.new"
	EventTypingStart      = "typing.start"
	EventTypingStop       = "typing.stop"
	EventMessageSeen      = "message.seen"
	EventConversationRead = "conversation.read"
	EventReactionSet      = "reaction.set"
	EventReactionCleared  = "reaction.cleared"
	EventError            = "error"
)

// Event is the single deliverable representation for both fan-out
// channels: MarshalWS renders the socket frame, PushRender the push
// payload. Only message events have a push rendering.
type Event struct {
	Type           string      `json:"event"`
	ConversationID uint        `json:"conversation_id,omitempty"`
	Payload        interface{} `json:"payload,omitempty"`

	message *service.MessageDTO
}

func (e *Event) MarshalWS() ([]byte, error) {
	return json.Marshal(e)
}

// PushRender produces the push-notification shape of the event. ok is
// false for event types that never reach the push channel.
func (e *Event) PushRender() (title, body string, data map[string]string, ok bool) {
	if e.Type != EventMessageNew || e.message == nil {
		return "", "", nil, false
	}
	body = "Media message"
	if e.message.Content != nil && *e.message.Content != "" {
		body = *e.message.Content
	}
	data = map[string]string{
		"conversation_id": strconv.FormatUint(uint64(e.message.ConversationID), 10),
		"message_id":      strconv.FormatUint(e.message.ID, 10),
	}
	return "New Message", body, data, true
}

func NewMessageEvent(msg *service.MessageDTO) *Event {
	return &Event{
		Type:           EventMessageNew,
		ConversationID: msg.ConversationID,
		Payload:        msg,
		message:        msg,
	}
}

func TypingEvent(conversationID uint, userID string, typing bool) *Event {
	eventType := EventTypingStart
	if !typing {
		eventType = EventTypingStop
	}
	return &Event{
		Type:           eventType,
		ConversationID: conversationID,
		Payload: map[string]interface{}{
			"conversation_id": conversationID,
			"user_id":         userID,
		},
	}
}

func MessageSeenEvent(conversationID uint, messageID uint64, userID string) *Event {
	return &Event{
		Type:           EventMessageSeen,
		ConversationID: conversationID,
		Payload: map[string]interface{}{
			"message_id": messageID,
			"user_id":    userID,
		},
	}
}

func ConversationReadEvent(conversationID uint, userID string) *Event {
	return &Event{
		Type:           EventConversationRead,
		ConversationID: conversationID,
		Payload: map[string]interface{}{
			"conversation_id": conversationID,
			"user_id":         userID,
		},
	}
}

func ReactionSetEvent(msg *service.MessageDTO) *Event {
	return &Event{
		Type:           EventReactionSet,
		ConversationID: msg.ConversationID,
		Payload:        msg,
	}
}

func ReactionClearedEvent(conversationID uint, messageID uint64, userID string) *Event {
	return &Event{
		Type:           EventReactionCleared,
		ConversationID: conversationID,
		Payload: map[string]interface{}{
			"message_id": messageID,
			"user_id":    userID,
		},
	}
}

func ErrorEvent(action, reason string) *Event {
	return &Event{
		Type: EventError,
		Payload: map[string]interface{}{
			"action": action,
			"reason": reason,
		},
	}
}
