package dbmysql

import (
	"time"
)

// Role values for conversation participants. Only admins (and the
// distinguished owner, if present) may manage other participants.
const (
	RoleOwner  = "owner"
	RoleAdmin  = "admin"
	RoleMember = "member"
)

type ConversationParticipant struct {
	ConversationID uint   `gorm:"primaryKey;autoIncrement:false"`
	UserID         string `gorm:"primaryKey;size:36"`
	Role           string `gorm:"not null;size:50;default:'member'"`
	JoinedAt       time.Time
}

func (ConversationParticipant) TableName() string {
	return "conversation_participants"
}

// CanManageParticipants reports whether this participant may add or
// remove other participants.
func (p *ConversationParticipant) CanManageParticipants() bool {
	return p.Role == RoleAdmin || p.Role == RoleOwner
}
