package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"movieplus/internal/dbmysql"
)

type ConversationRepository interface {
	Create(ctx context.Context, conv *dbmysql.Conversation, participants []dbmysql.ConversationParticipant) error
	ByID(ctx context.Context, id uint) (*dbmysql.Conversation, error)
	FindDirectBetween(ctx context.Context, userA, userB string) (*dbmysql.Conversation, error)
	ListForUser(ctx context.Context, userID string) ([]*dbmysql.Conversation, error)
	ConversationIDsForUser(ctx context.Context, userID string) ([]uint, error)
	IsParticipant(ctx context.Context, conversationID uint, userID string) (bool, error)
	Participant(ctx context.Context, conversationID uint, userID string) (*dbmysql.ConversationParticipant, error)
	ParticipantIDs(ctx context.Context, conversationID uint) ([]string, error)
	AddParticipant(ctx context.Context, participant *dbmysql.ConversationParticipant) error
	RemoveParticipant(ctx context.Context, conversationID uint, userID string) (bool, error)
	TouchLastMessageAt(ctx context.Context, conversationID uint, at time.Time) error
}

type conversationRepo struct {
	db *gorm.DB
}

func NewConversationRepository(db *gorm.DB) ConversationRepository {
	return &conversationRepo{db: db}
}

// Create stores the conversation and its initial participant rows in one
// transaction. A conversation never exists without explicit participant
// rows, the creator's included.
func (r *conversationRepo) Create(ctx context.Context, conv *dbmysql.Conversation, participants []dbmysql.ConversationParticipant) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(conv).Error; err != nil {
			return err
		}
		for i := range participants {
			participants[i].ConversationID = conv.ID
		}
		return tx.Create(&participants).Error
	})
}

func (r *conversationRepo) ByID(ctx context.Context, id uint) (*dbmysql.Conversation, error) {
	var conv dbmysql.Conversation
	err := r.db.WithContext(ctx).
		Preload("Participants").
		First(&conv, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &conv, nil
}

// FindDirectBetween matches on the participant set, not on who created
// the conversation, so createDirect(A,B) and createDirect(B,A) resolve
// to the same row.
func (r *conversationRepo) FindDirectBetween(ctx context.Context, userA, userB string) (*dbmysql.Conversation, error) {
	var conv dbmysql.Conversation
	err := r.db.WithContext(ctx).
		Preload("Participants").
		Where("is_group = ?", false).
		Where("id IN (?)",
			r.db.Model(&dbmysql.ConversationParticipant{}).
				Select("conversation_id").
				Where("user_id = ?", userA)).
		Where("id IN (?)",
			r.db.Model(&dbmysql.ConversationParticipant{}).
				Select("conversation_id").
				Where("user_id = ?", userB)).
		First(&conv).Error
	if err != nil {
		return nil, err
	}
	return &conv, nil
}

func (r *conversationRepo) ListForUser(ctx context.Context, userID string) ([]*dbmysql.Conversation, error) {
	var convs []*dbmysql.Conversation
	err := r.db.WithContext(ctx).
		Preload("Participants").
		Where("id IN (?)",
			r.db.Model(&dbmysql.ConversationParticipant{}).
				Select("conversation_id").
				Where("user_id = ?", userID)).
		Order("COALESCE(last_message_at, created_at) DESC").
		Find(&convs).Error
	return convs, err
}

func (r *conversationRepo) ConversationIDsForUser(ctx context.Context, userID string) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&dbmysql.ConversationParticipant{}).
		Where("user_id = ?", userID).
		Pluck("conversation_id", &ids).Error
	return ids, err
}

// IsParticipant checks Participant rows only. Being the conversation's
// creator grants nothing by itself.
func (r *conversationRepo) IsParticipant(ctx context.Context, conversationID uint, userID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.ConversationParticipant{}).
		Where("conversation_id = ? AND user_id = ?", conversationID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *conversationRepo) Participant(ctx context.Context, conversationID uint, userID string) (*dbmysql.ConversationParticipant, error) {
	var p dbmysql.ConversationParticipant
	err := r.db.WithContext(ctx).
		Where("conversation_id = ? AND user_id = ?", conversationID, userID).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *conversationRepo) ParticipantIDs(ctx context.Context, conversationID uint) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&dbmysql.ConversationParticipant{}).
		Where("conversation_id = ?", conversationID).
		Pluck("user_id", &ids).Error
	return ids, err
}

func (r *conversationRepo) AddParticipant(ctx context.Context, participant *dbmysql.ConversationParticipant) error {
	return r.db.WithContext(ctx).Create(participant).Error
}

func (r *conversationRepo) RemoveParticipant(ctx context.Context, conversationID uint, userID string) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("conversation_id = ? AND user_id = ?", conversationID, userID).
		Delete(&dbmysql.ConversationParticipant{})
	return result.RowsAffected > 0, result.Error
}

func (r *conversationRepo) TouchLastMessageAt(ctx context.Context, conversationID uint, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&dbmysql.Conversation{}).
		Where("id = ?", conversationID).
		Update("last_message_at", at).Error
}
