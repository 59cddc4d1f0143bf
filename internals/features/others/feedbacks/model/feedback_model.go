package model

import (
	"time"

	"github.com/google/uuid"
)

// Feedback: satu ulasan per pesanan yang sudah selesai
type Feedback struct {
	FeedbackID      uuid.UUID `gorm:"column:feedback_id;type:uuid;default:gen_random_uuid();primaryKey" json:"feedback_id"`
	FeedbackOrderID uuid.UUID `gorm:"column:feedback_order_id;type:uuid;not null;uniqueIndex" json:"feedback_order_id"`
	FeedbackUserID  uuid.UUID `gorm:"column:feedback_user_id;type:uuid;not null;index" json:"feedback_user_id"`
	FeedbackRating  int       `gorm:"column:feedback_rating;not null;check:feedback_rating BETWEEN 1 AND 5" json:"feedback_rating"`
	FeedbackBody    *string   `gorm:"column:feedback_body;type:text" json:"feedback_body,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Feedback) TableName() string {
	return "feedbacks"
}
