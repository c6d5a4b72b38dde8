package dbmysql

import (
	"time"
)

// User is the slice of the accounts table the messaging core reads for
// hydration (display names, avatars). Account management, credentials
// and roles live in the user service, not here.
type User struct {
	ID          string  `gorm:"primaryKey;size:36"`
	Handle      string  `gorm:"uniqueIndex;size:50;not null"`
	DisplayName *string `gorm:"size:100"`
	AvatarURL   *string `gorm:"size:512"`
	CreatedAt   time.Time
}

func (User) TableName() string {
	return "users"
}

// Name returns the best available human-readable name.
func (u *User) Name() string {
	if u.DisplayName != nil && *u.DisplayName != "" {
		return *u.DisplayName
	}
	return u.Handle
}
