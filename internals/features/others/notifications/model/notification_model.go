package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Notification struct {
	NotificationID      uuid.UUID      `gorm:"column:notification_id;type:uuid;default:gen_random_uuid();primaryKey" json:"notification_id"`
	NotificationUserID  uuid.UUID      `gorm:"column:notification_user_id;type:uuid;not null;index" json:"notification_user_id"`
	NotificationTitle   string         `gorm:"column:notification_title;type:varchar(150);not null" json:"notification_title"`
	NotificationBody    string         `gorm:"column:notification_body;type:text;not null" json:"notification_body"`
	NotificationPayload datatypes.JSON `gorm:"column:notification_payload;type:jsonb" json:"notification_payload,omitempty"`
	NotificationIsRead  bool           `gorm:"column:notification_is_read;not null;default:false" json:"notification_is_read"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Notification) TableName() string {
	return "notifications"
}
