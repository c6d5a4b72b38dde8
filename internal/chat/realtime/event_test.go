package realtime

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movieplus/internal/chat/service"
)

func TestEvent_MarshalWS(t *testing.T) {
	content := "popcorn ready"
	event := NewMessageEvent(&service.MessageDTO{
		ID:             7,
		ConversationID: 10,
		SenderID:       "user-a",
		Content:        &content,
		Kind:           "text",
	})

	data, err := event.MarshalWS()
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "message.new", decoded["event"])
	assert.Equal(t, float64(10), decoded["conversation_id"])

	payload, ok := decoded["payload"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "popcorn ready", payload["content"])
}

func TestEvent_PushRender(t *testing.T) {
	content := "movie starts at nine"

	t.Run("text message renders its content", func(t *testing.T) {
		event := NewMessageEvent(&service.MessageDTO{
			ID: 7, ConversationID: 10, Content: &content, Kind: "text",
		})

		title, body, data, ok := event.PushRender()
		require.True(t, ok)
		assert.Equal(t, "New Message", title)
		assert.Equal(t, content, body)
		assert.Equal(t, "10", data["conversation_id"])
		assert.Equal(t, "7", data["message_id"])
	})

	t.Run("media message falls back to a placeholder body", func(t *testing.T) {
		url := "https://cdn.example/clip.mp4"
		event := NewMessageEvent(&service.MessageDTO{
			ID: 8, ConversationID: 10, MediaURL: &url, Kind: "media",
		})

		_, body, _, ok := event.PushRender()
		require.True(t, ok)
		assert.Equal(t, "Media message", body)
	})

	t.Run("non-message events never reach the push channel", func(t *testing.T) {
		for _, event := range []*Event{
			TypingEvent(10, "user-a", true),
			MessageSeenEvent(10, 7, "user-a"),
			ConversationReadEvent(10, "user-a"),
			ReactionClearedEvent(10, 7, "user-a"),
			ErrorEvent("join", "permission denied"),
		} {
			_, _, _, ok := event.PushRender()
			assert.False(t, ok, event.Type)
		}
	})
}

func TestTypingEvent_Types(t *testing.T) {
	assert.Equal(t, EventTypingStart, TypingEvent(10, "user-a", true).Type)
	assert.Equal(t, EventTypingStop, TypingEvent(10, "user-a", false).Type)
}
