package dbmysql

import (
	"time"
)

// MessageReaction holds at most one row per (message, user): setting a
// new reaction replaces the previous one rather than accumulating.
type MessageReaction struct {
	MessageID uint64 `gorm:"primaryKey;autoIncrement:false"`
	UserID    string `gorm:"primaryKey;size:36"`
	Reaction  string `gorm:"not null;size:50"`
	CreatedAt time.Time
}

func (MessageReaction) TableName() string {
	return "message_reactions"
}
