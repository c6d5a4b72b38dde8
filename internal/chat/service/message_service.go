package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"movieplus/internal/chat/repository"
	"movieplus/internal/common"
	"movieplus/internal/dbmysql"
)

// MessageService owns message persistence, read receipts and reactions.
// Its contract stops at "durably written": broadcast and push fan-out
// are composed by the callers.
type MessageService interface {
	Create(ctx context.Context, conversationID uint, senderID string, in CreateMessageInput) (*MessageDTO, error)
	List(ctx context.Context, conversationID uint, requesterID string, page, pageSize int) ([]*MessageDTO, error)
	GetByID(ctx context.Context, messageID uint64, requesterID string) (*MessageDTO, error)
	Edit(ctx context.Context, messageID uint64, requesterID, newContent string) (*MessageDTO, error)
	SoftDelete(ctx context.Context, messageID uint64, requesterID string) error
	MarkRead(ctx context.Context, messageID uint64, readerID string) error
	MarkConversationRead(ctx context.Context, conversationID uint, readerID string) error
	UnreadCount(ctx context.Context, conversationID uint, userID string) (int64, error)
	SetReaction(ctx context.Context, messageID uint64, userID, reaction string) (*MessageDTO, error)
	ClearReaction(ctx context.Context, messageID uint64, userID string) (bool, error)
}

type messageService struct {
	messages repository.MessageRepository
	convs    repository.ConversationRepository
	users    repository.UserRepository
	logger   *zap.Logger
}

func NewMessageService(
	messages repository.MessageRepository,
	convs repository.ConversationRepository,
	users repository.UserRepository,
	logger *zap.Logger,
) MessageService {
	return &messageService{messages: messages, convs: convs, users: users, logger: logger}
}

const defaultPageSize = 50

// Create validates, persists and hydrates a new message. The parent
// conversation's last-message-at is a denormalized secondary update: a
// failure there is logged, never rolled into the caller's result.
func (s *messageService) Create(ctx context.Context, conversationID uint, senderID string, in CreateMessageInput) (*MessageDTO, error) {
	kind := in.Kind
	if kind == "" {
		if in.MediaURL != nil && *in.MediaURL != "" {
			kind = dbmysql.MessageKindMedia
		} else {
			kind = dbmysql.MessageKindText
		}
	}

	hasContent := in.Content != nil && strings.TrimSpace(*in.Content) != ""
	hasMedia := in.MediaURL != nil && *in.MediaURL != ""
	if kind != dbmysql.MessageKindSystem && !hasContent && !hasMedia {
		return nil, common.ValidationError("message needs content or a media reference")
	}

	msg := &dbmysql.Message{
		ConversationID: conversationID,
		SenderID:       senderID,
		Content:        in.Content,
		MediaURL:       in.MediaURL,
		MediaType:      in.MediaType,
		Kind:           kind,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.messages.Save(ctx, msg); err != nil {
		return nil, fmt.Errorf("save message: %w", err)
	}

	if err := s.convs.TouchLastMessageAt(ctx, conversationID, msg.CreatedAt); err != nil {
		s.logger.Warn("last-message-at update failed",
			zap.Uint("conversation_id", conversationID),
			zap.Uint64("message_id", msg.ID),
			zap.Error(err))
	}

	return s.hydrate(ctx, msg, senderID)
}

func (s *messageService) List(ctx context.Context, conversationID uint, requesterID string, page, pageSize int) ([]*MessageDTO, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}

	messages, err := s.messages.List(ctx, conversationID, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}

	senderIDs := make([]string, 0, len(messages))
	seen := map[string]bool{}
	for _, m := range messages {
		if !seen[m.SenderID] {
			seen[m.SenderID] = true
			senderIDs = append(senderIDs, m.SenderID)
		}
	}
	senders, err := s.users.ByIDs(ctx, senderIDs)
	if err != nil {
		return nil, fmt.Errorf("resolve senders: %w", err)
	}

	dtos := make([]*MessageDTO, 0, len(messages))
	for _, m := range messages {
		dtos = append(dtos, messageToDTO(m, requesterID, senders[m.SenderID]))
	}
	return dtos, nil
}

func (s *messageService) GetByID(ctx context.Context, messageID uint64, requesterID string) (*MessageDTO, error) {
	msg, err := s.fetch(ctx, messageID)
	if err != nil {
		return nil, err
	}
	return s.hydrate(ctx, msg, requesterID)
}

// Edit is sender-only and rejected on soft-deleted messages.
func (s *messageService) Edit(ctx context.Context, messageID uint64, requesterID, newContent string) (*MessageDTO, error) {
	if strings.TrimSpace(newContent) == "" {
		return nil, common.ValidationError("edited content cannot be empty")
	}

	msg, err := s.fetch(ctx, messageID)
	if err != nil {
		return nil, err
	}
	if msg.SenderID != requesterID {
		return nil, common.ErrPermissionDenied
	}

	now := time.Now().UTC()
	if err := s.messages.UpdateContent(ctx, messageID, newContent, now); err != nil {
		return nil, fmt.Errorf("edit message: %w", err)
	}
	msg.Content = &newContent
	msg.EditedAt = &now
	return s.hydrate(ctx, msg, requesterID)
}

// SoftDelete reports NotFound both for a missing message and for a
// non-sender caller; their indistinguishability is deliberate.
func (s *messageService) SoftDelete(ctx context.Context, messageID uint64, requesterID string) error {
	deleted, err := s.messages.SoftDelete(ctx, messageID, requesterID)
	if err != nil {
		return fmt.Errorf("delete message: %w", err)
	}
	if !deleted {
		return common.ErrNotFound
	}
	return nil
}

// MarkRead is an insert-or-ignore; marking twice leaves one receipt.
func (s *messageService) MarkRead(ctx context.Context, messageID uint64, readerID string) error {
	exists, err := s.messages.HasReadReceipt(ctx, messageID, readerID)
	if err != nil {
		return fmt.Errorf("check receipt: %w", err)
	}
	if exists {
		return nil
	}
	receipt := &dbmysql.MessageReadReceipt{
		MessageID: messageID,
		UserID:    readerID,
		ReadAt:    time.Now().UTC(),
	}
	if err := s.messages.CreateReadReceipt(ctx, receipt); err != nil {
		return fmt.Errorf("create receipt: %w", err)
	}
	return nil
}

// MarkConversationRead receipts every unread message from other senders
// with one shared timestamp.
func (s *messageService) MarkConversationRead(ctx context.Context, conversationID uint, readerID string) error {
	ids, err := s.messages.UnreadMessageIDs(ctx, conversationID, readerID)
	if err != nil {
		return fmt.Errorf("list unread: %w", err)
	}
	if len(ids) == 0 {
		return nil
	}

	readAt := time.Now().UTC()
	receipts := make([]dbmysql.MessageReadReceipt, 0, len(ids))
	for _, id := range ids {
		receipts = append(receipts, dbmysql.MessageReadReceipt{
			MessageID: id,
			UserID:    readerID,
			ReadAt:    readAt,
		})
	}
	if err := s.messages.CreateReadReceipts(ctx, receipts); err != nil {
		return fmt.Errorf("create receipts: %w", err)
	}
	return nil
}

func (s *messageService) UnreadCount(ctx context.Context, conversationID uint, userID string) (int64, error) {
	return s.messages.UnreadCount(ctx, conversationID, userID)
}

// SetReaction replaces any prior reaction by the same user and returns
// the message with its full reaction list.
func (s *messageService) SetReaction(ctx context.Context, messageID uint64, userID, reaction string) (*MessageDTO, error) {
	if strings.TrimSpace(reaction) == "" {
		return nil, common.ValidationError("reaction cannot be empty")
	}

	if _, err := s.fetch(ctx, messageID); err != nil {
		return nil, err
	}

	row := &dbmysql.MessageReaction{
		MessageID: messageID,
		UserID:    userID,
		Reaction:  reaction,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.messages.ReplaceReaction(ctx, row); err != nil {
		return nil, fmt.Errorf("set reaction: %w", err)
	}
	return s.GetByID(ctx, messageID, userID)
}

func (s *messageService) ClearReaction(ctx context.Context, messageID uint64, userID string) (bool, error) {
	removed, err := s.messages.DeleteReaction(ctx, messageID, userID)
	if err != nil {
		return false, fmt.Errorf("clear reaction: %w", err)
	}
	return removed, nil
}

// fetch loads a message visible to normal reads: soft-deleted rows are
// reported as missing.
func (s *messageService) fetch(ctx context.Context, messageID uint64) (*dbmysql.Message, error) {
	msg, err := s.messages.ByID(ctx, messageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("fetch message: %w", err)
	}
	if msg.Deleted {
		return nil, common.ErrNotFound
	}
	return msg, nil
}

func (s *messageService) hydrate(ctx context.Context, msg *dbmysql.Message, requesterID string) (*MessageDTO, error) {
	sender, err := s.users.ByID(ctx, msg.SenderID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("resolve sender: %w", err)
	}
	return messageToDTO(msg, requesterID, sender), nil
}
