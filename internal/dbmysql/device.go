package dbmysql

import (
	"time"
)

// DeviceToken is a push-provider registration. Tokens are globally
// unique: registering a token held by another user steals it.
type DeviceToken struct {
	Token     string  `gorm:"primaryKey;size:500"`
	UserID    string  `gorm:"not null;index;size:36"`
	Platform  *string `gorm:"size:50"`
	CreatedAt time.Time
}

func (DeviceToken) TableName() string {
	return "device_tokens"
}
