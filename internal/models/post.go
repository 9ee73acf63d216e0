package models

import "time"

// Post visibility values. The flag drives the read predicate on every fetch path.
const (
	VisibilityPublic  = "public"
	VisibilityFriends = "friends"
)

// Post is authored content. Mutation is author-only; reads go through the
// visibility scope in the post repository.
type Post struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	AuthorID   uint      `json:"author_id" gorm:"index"`
	Body       string    `json:"body"`
	ImageURL   string    `json:"image_url,omitempty"`
	Visibility string    `json:"visibility" gorm:"type:varchar(10);default:'public';index"`
	CreatedAt  time.Time `json:"created_at" gorm:"index"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CreatePostRequest defines the request body for creating a new post
type CreatePostRequest struct {
	Body       string `json:"body" validate:"required,min=1,max=2000"`
	ImageURL   string `json:"image_url,omitempty" validate:"omitempty,url"`
	Visibility string `json:"visibility" validate:"required,oneof=public friends"`
}

// UpdatePostRequest defines the request body for updating an existing post
type UpdatePostRequest struct {
	Body       string `json:"body,omitempty" validate:"omitempty,min=1,max=2000"`
	ImageURL   string `json:"image_url,omitempty" validate:"omitempty,url"`
	Visibility string `json:"visibility,omitempty" validate:"omitempty,oneof=public friends"`
}
