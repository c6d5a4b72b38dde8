package dbmysql

import (
	"time"
)

type MessageReadReceipt struct {
	MessageID uint64 `gorm:"primaryKey;autoIncrement:false"`
	UserID    string `gorm:"primaryKey;size:36"`
	ReadAt    time.Time
}

func (MessageReadReceipt) TableName() string {
	return "message_read_receipts"
}
