package service

import (
	"time"

	"movieplus/internal/dbmysql"
)

// DTOs returned to the REST and realtime surfaces. Hydrated once here so
// both channels render the same shape.

type ConversationDTO struct {
	ID            uint             `json:"id"`
	IsGroup       bool             `json:"is_group"`
	Title         *string          `json:"title,omitempty"`
	CreatedBy     string           `json:"created_by"`
	CreatedAt     time.Time        `json:"created_at"`
	LastMessageAt *time.Time       `json:"last_message_at,omitempty"`
	Participants  []ParticipantDTO `json:"participants"`
	LastMessage   *MessageDTO      `json:"last_message,omitempty"`
	UnreadCount   int64            `json:"unread_count"`
}

type ParticipantDTO struct {
	UserID     string    `json:"user_id"`
	Role       string    `json:"role"`
	JoinedAt   time.Time `json:"joined_at"`
	UserName   string    `json:"user_name,omitempty"`
	UserAvatar *string   `json:"user_avatar,omitempty"`
}

type MessageDTO struct {
	ID             uint64        `json:"id"`
	ConversationID uint          `json:"conversation_id"`
	SenderID       string        `json:"sender_id"`
	Content        *string       `json:"content,omitempty"`
	MediaURL       *string       `json:"media_url,omitempty"`
	MediaType      *string       `json:"media_type,omitempty"`
	Kind           string        `json:"kind"`
	CreatedAt      time.Time     `json:"created_at"`
	EditedAt       *time.Time    `json:"edited_at,omitempty"`
	SenderName     string        `json:"sender_name,omitempty"`
	SenderAvatar   *string       `json:"sender_avatar,omitempty"`
	IsRead         bool          `json:"is_read"`
	Reactions      []ReactionDTO `json:"reactions"`
}

type ReactionDTO struct {
	Reaction  string    `json:"reaction"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateMessageInput is the write shape for new messages. Kind is
// derived from the media reference when left empty.
type CreateMessageInput struct {
	Content   *string `json:"content,omitempty"`
	MediaURL  *string `json:"media_url,omitempty"`
	MediaType *string `json:"media_type,omitempty"`
	Kind      string  `json:"kind,omitempty"`
}

func messageToDTO(msg *dbmysql.Message, requesterID string, sender *dbmysql.User) *MessageDTO {
	dto := &MessageDTO{
		ID:             msg.ID,
		ConversationID: msg.ConversationID,
		SenderID:       msg.SenderID,
		Content:        msg.Content,
		MediaURL:       msg.MediaURL,
		MediaType:      msg.MediaType,
		Kind:           msg.Kind,
		CreatedAt:      msg.CreatedAt,
		EditedAt:       msg.EditedAt,
		Reactions:      make([]ReactionDTO, 0, len(msg.Reactions)),
	}
	if sender != nil {
		dto.SenderName = sender.Name()
		dto.SenderAvatar = sender.AvatarURL
	}
	for _, receipt := range msg.ReadReceipts {
		if receipt.UserID == requesterID {
			dto.IsRead = true
			break
		}
	}
	for _, reaction := range msg.Reactions {
		dto.Reactions = append(dto.Reactions, ReactionDTO{
			Reaction:  reaction.Reaction,
			UserID:    reaction.UserID,
			CreatedAt: reaction.CreatedAt,
		})
	}
	return dto
}
