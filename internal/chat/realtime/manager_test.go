package realtime

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"movieplus/internal/chat/handler/mocks"
	"movieplus/internal/chat/service"
)

type managerMocks struct {
	convs    *mocks.MockConversationService
	messages *mocks.MockMessageService
	presence *mocks.MockPresenceService
	push     *mocks.MockPushService
}

func newTestManager(t *testing.T) (*Manager, *Hub, managerMocks) {
	ctrl := gomock.NewController(t)
	m := managerMocks{
		convs:    mocks.NewMockConversationService(ctrl),
		messages: mocks.NewMockMessageService(ctrl),
		presence: mocks.NewMockPresenceService(ctrl),
		push:     mocks.NewMockPushService(ctrl),
	}
	hub := NewHub()
	manager := NewManager(hub, m.convs, m.messages, m.presence, m.push, zap.NewNop())
	return manager, hub, m
}

func decodeFrame(t *testing.T, data []byte) map[string]interface{} {
	t.Helper()
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	return decoded
}

func frame(t *testing.T, v interface{}) []byte {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return data
}

func TestManager_SendMessageFansOut(t *testing.T) {
	manager, hub, mm := newTestManager(t)

	sender := newSession("conn-sender", "user-a", nil)
	receiver := newSession("conn-receiver", "user-b", nil)
	hub.Add(sender)
	hub.Add(receiver)
	hub.Join(sender, 10)
	hub.Join(receiver, 10)

	content := "trailer just dropped"
	stored := &service.MessageDTO{ID: 7, ConversationID: 10, SenderID: "user-a", Content: &content, Kind: "text"}

	mm.convs.EXPECT().IsParticipant(gomock.Any(), uint(10), "user-a").Return(true, nil)
	mm.messages.EXPECT().
		Create(gomock.Any(), uint(10), "user-a", gomock.Any()).
		Return(stored, nil)
	mm.convs.EXPECT().ParticipantIDs(gomock.Any(), uint(10)).Return([]string{"user-a", "user-b"}, nil)
	mm.push.EXPECT().
		SendToMany(gomock.Any(), []string{"user-b"}, "New Message", content, gomock.Any()).
		Return(nil)

	manager.dispatch(sender, frame(t, map[string]interface{}{
		"action":          ActionSendMessage,
		"conversation_id": 10,
		"content":         content,
	}))

	// The full group receives the broadcast, the sender's own sessions
	// included; push goes only to the other participants.
	senderFrame := decodeFrame(t, recvFrame(t, sender))
	receiverFrame := decodeFrame(t, recvFrame(t, receiver))
	assert.Equal(t, EventMessageNew, senderFrame["event"])
	assert.Equal(t, EventMessageNew, receiverFrame["event"])
}

func TestManager_SendMessageNonParticipant(t *testing.T) {
	manager, hub, mm := newTestManager(t)

	intruder := newSession("conn-x", "outsider", nil)
	member := newSession("conn-m", "user-b", nil)
	hub.Add(intruder)
	hub.Add(member)
	hub.Join(member, 10)

	mm.convs.EXPECT().IsParticipant(gomock.Any(), uint(10), "outsider").Return(false, nil)
	// No Create, no broadcast, no push.

	manager.dispatch(intruder, frame(t, map[string]interface{}{
		"action":          ActionSendMessage,
		"conversation_id": 10,
		"content":         "let me in",
	}))

	errFrame := decodeFrame(t, recvFrame(t, intruder))
	assert.Equal(t, EventError, errFrame["event"])
	payload := errFrame["payload"].(map[string]interface{})
	assert.Equal(t, "send_message", payload["action"])
	assert.Equal(t, "permission denied", payload["reason"])

	assertNoFrame(t, member)
}

func TestManager_TypingExcludesInitiator(t *testing.T) {
	manager, hub, mm := newTestManager(t)

	typist := newSession("conn-t", "user-a", nil)
	watcher := newSession("conn-w", "user-b", nil)
	hub.Add(typist)
	hub.Add(watcher)
	hub.Join(typist, 10)
	hub.Join(watcher, 10)

	mm.convs.EXPECT().IsParticipant(gomock.Any(), uint(10), "user-a").Return(true, nil)

	manager.dispatch(typist, frame(t, map[string]interface{}{
		"action":          ActionTyping,
		"conversation_id": 10,
	}))

	assertNoFrame(t, typist)
	watcherFrame := decodeFrame(t, recvFrame(t, watcher))
	assert.Equal(t, EventTypingStart, watcherFrame["event"])
}

func TestManager_MarkSeenResolvesConversationFromMessage(t *testing.T) {
	manager, hub, mm := newTestManager(t)

	reader := newSession("conn-r", "user-b", nil)
	other := newSession("conn-o", "user-a", nil)
	hub.Add(reader)
	hub.Add(other)
	hub.Join(reader, 10)
	hub.Join(other, 10)

	mm.messages.EXPECT().
		GetByID(gomock.Any(), uint64(7), "user-b").
		Return(&service.MessageDTO{ID: 7, ConversationID: 10, SenderID: "user-a"}, nil)
	mm.convs.EXPECT().IsParticipant(gomock.Any(), uint(10), "user-b").Return(true, nil)
	mm.messages.EXPECT().MarkRead(gomock.Any(), uint64(7), "user-b").Return(nil)

	manager.dispatch(reader, frame(t, map[string]interface{}{
		"action":     ActionMarkSeen,
		"message_id": 7,
	}))

	assertNoFrame(t, reader)
	seen := decodeFrame(t, recvFrame(t, other))
	assert.Equal(t, EventMessageSeen, seen["event"])
}

func TestManager_AddReactionBroadcastsToFullGroup(t *testing.T) {
	manager, hub, mm := newTestManager(t)

	reactor := newSession("conn-r", "user-b", nil)
	hub.Add(reactor)
	hub.Join(reactor, 10)

	stored := &service.MessageDTO{ID: 7, ConversationID: 10, SenderID: "user-a"}
	updated := &service.MessageDTO{
		ID: 7, ConversationID: 10, SenderID: "user-a",
		Reactions: []service.ReactionDTO{{Reaction: "🎬", UserID: "user-b"}},
	}

	mm.messages.EXPECT().GetByID(gomock.Any(), uint64(7), "user-b").Return(stored, nil)
	mm.convs.EXPECT().IsParticipant(gomock.Any(), uint(10), "user-b").Return(true, nil)
	mm.messages.EXPECT().SetReaction(gomock.Any(), uint64(7), "user-b", "🎬").Return(updated, nil)

	manager.dispatch(reactor, frame(t, map[string]interface{}{
		"action":     ActionAddReaction,
		"message_id": 7,
		"reaction":   "🎬",
	}))

	// Reaction state changes go to everyone, the initiator included.
	got := decodeFrame(t, recvFrame(t, reactor))
	assert.Equal(t, EventReactionSet, got["event"])
}

func TestManager_UnknownActionReportsError(t *testing.T) {
	manager, hub, _ := newTestManager(t)

	session := newSession("conn-s", "user-a", nil)
	hub.Add(session)

	manager.dispatch(session, frame(t, map[string]interface{}{"action": "warp_drive"}))

	errFrame := decodeFrame(t, recvFrame(t, session))
	assert.Equal(t, EventError, errFrame["event"])
}

func TestManager_MalformedFrameReportsError(t *testing.T) {
	manager, hub, _ := newTestManager(t)

	session := newSession("conn-s", "user-a", nil)
	hub.Add(session)

	manager.dispatch(session, []byte("{not json"))

	errFrame := decodeFrame(t, recvFrame(t, session))
	assert.Equal(t, EventError, errFrame["event"])
}

func TestManager_PublishMessageSkipsPushOnLookupFailure(t *testing.T) {
	manager, _, mm := newTestManager(t)

	content := "hello"
	msg := &service.MessageDTO{ID: 7, ConversationID: 10, SenderID: "user-a", Content: &content}

	mm.convs.EXPECT().ParticipantIDs(gomock.Any(), uint(10)).Return(nil, assert.AnError)
	// Broadcast still happened (empty group here); push must not fire.

	manager.PublishMessage(context.Background(), msg, "user-a")
}
