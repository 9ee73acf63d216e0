package models

import "time"

// SharedPost is a reshare join record; at most one per (post, user) pair,
// deletion is unshare
type SharedPost struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	PostID    uint      `json:"post_id" gorm:"index;uniqueIndex:idx_post_user_share"`
	UserID    uint      `json:"user_id" gorm:"index;uniqueIndex:idx_post_user_share"`
	CreatedAt time.Time `json:"created_at"`
}

// SharedPostView is a share joined with its post for listing a user's shares.
// The post inside has already passed the viewer's visibility predicate.
type SharedPostView struct {
	Post     Post      `json:"post"`
	SharedBy uint      `json:"shared_by"`
	SharedAt time.Time `json:"shared_at"`
}
