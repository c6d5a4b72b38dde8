package dbmysql

import (
	"time"
)

// UserConnection is one live realtime connection. A user may hold several
// rows at once (multi-device). Rows are removed only by an explicit
// disconnect; there is no TTL, so "online" is advisory.
type UserConnection struct {
	ConnectionID string  `gorm:"primaryKey;size:200"`
	UserID       string  `gorm:"not null;index;size:36"`
	DeviceInfo   *string `gorm:"size:500"`
	ConnectedAt  time.Time
	LastSeenAt   time.Time
}

func (UserConnection) TableName() string {
	return "user_connections"
}
