package models

import "time"

// Notification types written by the content and relationship handlers.
const (
	NotificationLike          = "like"
	NotificationComment       = "comment"
	NotificationShare         = "share"
	NotificationFriendRequest = "friend_request"
	NotificationFriendAccept  = "friend_accept"
)

// Notification represents a user notification
type Notification struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Type        string    `json:"type" gorm:"size:30;index"`
	ActorID     uint      `json:"actor_id" gorm:"index"`
	RecipientID uint      `json:"recipient_id" gorm:"index"`
	TargetID    uint      `json:"target_id"` // post, comment or edge ID depending on Type
	Message     string    `json:"message"`
	IsRead      bool      `json:"is_read" gorm:"default:false;index"`
	CreatedAt   time.Time `json:"created_at" gorm:"index"`
}
