package models

import (
	"time"

	"gorm.io/gorm"
)

// FriendEdge statuses. The status column is the sole source of truth for the
// relationship state of a pair.
const (
	FriendStatusPending  = "pending"
	FriendStatusAccepted = "accepted"
)

// Pair status values reported to clients, relative to the requesting user.
const (
	PairStatusNone            = "none"
	PairStatusPendingSent     = "pending_sent"
	PairStatusPendingReceived = "pending_received"
	PairStatusAccepted        = "accepted"
)

// FriendEdge is the single relationship record between two profiles.
// PairLow/PairHigh hold the canonicalized (min, max) of the two user IDs so
// the unique index structurally forbids a reverse-direction duplicate, not
// just an identical one.
type FriendEdge struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	RequesterID uint      `json:"requester_id" gorm:"index"`
	RecipientID uint      `json:"recipient_id" gorm:"index"`
	Status      string    `json:"status" gorm:"type:varchar(10);default:'pending';index"`
	PairLow     uint      `json:"-" gorm:"uniqueIndex:idx_friend_pair"`
	PairHigh    uint      `json:"-" gorm:"uniqueIndex:idx_friend_pair"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BeforeCreate canonicalizes the unordered pair columns
func (e *FriendEdge) BeforeCreate(tx *gorm.DB) error {
	e.PairLow, e.PairHigh = e.RequesterID, e.RecipientID
	if e.PairLow > e.PairHigh {
		e.PairLow, e.PairHigh = e.PairHigh, e.PairLow
	}
	return nil
}

// Involves reports whether userID is one of the edge's two parties
func (e *FriendEdge) Involves(userID uint) bool {
	return e.RequesterID == userID || e.RecipientID == userID
}

// CreateFriendRequest defines the request body for sending a friend request
type CreateFriendRequest struct {
	RecipientID uint `json:"recipient_id" validate:"required"`
}
