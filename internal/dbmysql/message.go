package dbmysql

import (
	"time"
)

// Message kinds. System messages carry neither content nor media.
const (
	MessageKindText   = "text"
	MessageKindMedia  = "media"
	MessageKindSystem = "system"
)

type Message struct {
	ID             uint64  `gorm:"primaryKey;autoIncrement"`
	ConversationID uint    `gorm:"index;not null"`
	SenderID       string  `gorm:"index;not null;size:36"`
	Content        *string `gorm:"type:text"`
	MediaURL       *string `gorm:"size:1000"`
	MediaType      *string `gorm:"size:50"`
	Kind           string  `gorm:"not null;size:50;default:'text'"`
	CreatedAt      time.Time
	EditedAt       *time.Time
	Deleted        bool `gorm:"not null;default:false"`

	ReadReceipts []MessageReadReceipt `gorm:"foreignKey:MessageID;constraint:OnDelete:CASCADE"`
	Reactions    []MessageReaction    `gorm:"foreignKey:MessageID;constraint:OnDelete:CASCADE"`
}

func (Message) TableName() string {
	return "messages"
}
