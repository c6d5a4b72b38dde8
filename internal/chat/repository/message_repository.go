package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"movieplus/internal/dbmysql"
)

type MessageRepository interface {
	Save(ctx context.Context, msg *dbmysql.Message) error
	ByID(ctx context.Context, id uint64) (*dbmysql.Message, error)
	List(ctx context.Context, conversationID uint, page, pageSize int) ([]*dbmysql.Message, error)
	UpdateContent(ctx context.Context, id uint64, content string, editedAt time.Time) error
	SoftDelete(ctx context.Context, id uint64, senderID string) (bool, error)
	HasReadReceipt(ctx context.Context, messageID uint64, userID string) (bool, error)
	CreateReadReceipt(ctx context.Context, receipt *dbmysql.MessageReadReceipt) error
	CreateReadReceipts(ctx context.Context, receipts []dbmysql.MessageReadReceipt) error
	UnreadMessageIDs(ctx context.Context, conversationID uint, userID string) ([]uint64, error)
	UnreadCount(ctx context.Context, conversationID uint, userID string) (int64, error)
	LastMessage(ctx context.Context, conversationID uint) (*dbmysql.Message, error)
	ReplaceReaction(ctx context.Context, reaction *dbmysql.MessageReaction) error
	DeleteReaction(ctx context.Context, messageID uint64, userID string) (bool, error)
}

type messageRepo struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepo{db: db}
}

func (r *messageRepo) Save(ctx context.Context, msg *dbmysql.Message) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

// ByID returns the message with receipts and reactions loaded.
// Soft-deleted messages are returned too; callers that must not see
// them filter on Deleted.
func (r *messageRepo) ByID(ctx context.Context, id uint64) (*dbmysql.Message, error) {
	var msg dbmysql.Message
	err := r.db.WithContext(ctx).
		Preload("ReadReceipts").
		Preload("Reactions").
		First(&msg, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

// List pages newest-first over the id ordering key, excluding
// soft-deleted messages. page is 1-based.
func (r *messageRepo) List(ctx context.Context, conversationID uint, page, pageSize int) ([]*dbmysql.Message, error) {
	var messages []*dbmysql.Message
	err := r.db.WithContext(ctx).
		Preload("ReadReceipts").
		Preload("Reactions").
		Where("conversation_id = ? AND deleted = ?", conversationID, false).
		Order("id DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&messages).Error
	return messages, err
}

func (r *messageRepo) UpdateContent(ctx context.Context, id uint64, content string, editedAt time.Time) error {
	return r.db.WithContext(ctx).
		Model(&dbmysql.Message{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"content":   content,
			"edited_at": editedAt,
		}).Error
}

// SoftDelete flips the deleted flag on the sender's own message. The
// sender-scoped predicate makes a repeat call (or a non-sender call)
// report false without touching anything.
func (r *messageRepo) SoftDelete(ctx context.Context, id uint64, senderID string) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&dbmysql.Message{}).
		Where("id = ? AND sender_id = ? AND deleted = ?", id, senderID, false).
		Update("deleted", true)
	return result.RowsAffected > 0, result.Error
}

func (r *messageRepo) HasReadReceipt(ctx context.Context, messageID uint64, userID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.MessageReadReceipt{}).
		Where("message_id = ? AND user_id = ?", messageID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *messageRepo) CreateReadReceipt(ctx context.Context, receipt *dbmysql.MessageReadReceipt) error {
	return r.db.WithContext(ctx).Create(receipt).Error
}

func (r *messageRepo) CreateReadReceipts(ctx context.Context, receipts []dbmysql.MessageReadReceipt) error {
	if len(receipts) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&receipts).Error
}

// UnreadMessageIDs lists messages in the conversation authored by
// someone else, not soft-deleted, with no receipt for the user.
func (r *messageRepo) UnreadMessageIDs(ctx context.Context, conversationID uint, userID string) ([]uint64, error) {
	var ids []uint64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.Message{}).
		Where("conversation_id = ? AND sender_id != ? AND deleted = ?", conversationID, userID, false).
		Where("id NOT IN (?)",
			r.db.Model(&dbmysql.MessageReadReceipt{}).
				Select("message_id").
				Where("user_id = ?", userID)).
		Pluck("id", &ids).Error
	return ids, err
}

func (r *messageRepo) UnreadCount(ctx context.Context, conversationID uint, userID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.Message{}).
		Where("conversation_id = ? AND sender_id != ? AND deleted = ?", conversationID, userID, false).
		Where("id NOT IN (?)",
			r.db.Model(&dbmysql.MessageReadReceipt{}).
				Select("message_id").
				Where("user_id = ?", userID)).
		Count(&count).Error
	return count, err
}

func (r *messageRepo) LastMessage(ctx context.Context, conversationID uint) (*dbmysql.Message, error) {
	var msg dbmysql.Message
	err := r.db.WithContext(ctx).
		Where("conversation_id = ? AND deleted = ?", conversationID, false).
		Order("id DESC").
		First(&msg).Error
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

// ReplaceReaction deletes any prior reaction by the same user before
// inserting, keeping at most one row per (message, user).
func (r *messageRepo) ReplaceReaction(ctx context.Context, reaction *dbmysql.MessageReaction) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("message_id = ? AND user_id = ?", reaction.MessageID, reaction.UserID).
			Delete(&dbmysql.MessageReaction{}).Error; err != nil {
			return err
		}
		return tx.Create(reaction).Error
	})
}

func (r *messageRepo) DeleteReaction(ctx context.Context, messageID uint64, userID string) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("message_id = ? AND user_id = ?", messageID, userID).
		Delete(&dbmysql.MessageReaction{})
	return result.RowsAffected > 0, result.Error
}
