package dbmysql

import (
	"time"
)

type Conversation struct {
	ID            uint    `gorm:"primaryKey;autoIncrement"`
	IsGroup       bool    `gorm:"not null;default:false"`
	Title         *string `gorm:"size:200"`
	CreatedBy     string  `gorm:"not null;size:36"`
	CreatedAt     time.Time
	LastMessageAt *time.Time `gorm:"index"`

	Participants []ConversationParticipant `gorm:"foreignKey:ConversationID;constraint:OnDelete:CASCADE"`
	Messages     []Message                 `gorm:"foreignKey:ConversationID;constraint:OnDelete:CASCADE"`
}

func (Conversation) TableName() string {
	return "conversations"
}
