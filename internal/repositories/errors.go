package repositories

import "errors"

// Domain errors surfaced by the repositories. Handlers map these onto HTTP
// status codes: ownership and recipient errors to 403, duplicates to 409,
// not-found to 404. Anything else is treated as a store failure.
var (
	ErrSelfRequest    = errors.New("cannot send a friend request to yourself")
	ErrDuplicateEdge  = errors.New("a pending friend request already exists between these users")
	ErrAlreadyFriends = errors.New("users are already friends")
	ErrNotRecipient   = errors.New("only the recipient can accept a friend request")
	ErrEdgeNotFound   = errors.New("friend relationship not found")

	ErrAlreadyLiked  = errors.New("post already liked by this user")
	ErrLikeNotFound  = errors.New("like not found")
	ErrAlreadyShared = errors.New("post already shared by this user")
	ErrShareNotFound = errors.New("share not found")

	ErrNotOwner = errors.New("record is owned by another user")
)
