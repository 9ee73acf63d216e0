package repositories

import (
	"errors"

	"github.com/okabanov/socialite/internal/models"
	"gorm.io/gorm"
)

// AnonymousID is the viewer ID carried by unauthenticated requests. No
// profile row ever has ID 0, so the visibility predicate reduces to
// public-only for it.
const AnonymousID uint = 0

// PostRepository defines the interface for post data operations. Every read
// takes the viewer's identity and applies the same visibility predicate.
type PostRepository interface {
	CreatePost(post *models.Post) error
	GetPostByID(id, viewerID uint) (*models.Post, error)
	ListFeed(viewerID uint, offset, limit int) ([]models.Post, error)
	ListByAuthor(authorID, viewerID uint, offset, limit int) ([]models.Post, error)
	CountFeed(viewerID uint) (int64, error)
	UpdatePost(post *models.Post, actorID uint) error
	DeletePost(id, actorID uint) error
}

// PostgresPostRepository implements PostRepository for PostgreSQL
type PostgresPostRepository struct {
	db *gorm.DB
}

// NewPostgresPostRepository creates a new PostgresPostRepository
func NewPostgresPostRepository(db *gorm.DB) *PostgresPostRepository {
	return &PostgresPostRepository{db: db}
}

// VisibleTo is the single visibility predicate for posts. A post passes when
// it is public, the viewer authored it, or it is friends-only and an accepted
// edge connects viewer and author in either direction. Feed, single fetch and
// the shared-post join all compose this scope.
func VisibleTo(viewerID uint) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(
			`posts.visibility = ? OR posts.author_id = ? OR (posts.visibility = ? AND EXISTS (
				SELECT 1 FROM friend_edges
				WHERE friend_edges.status = ?
				AND ((friend_edges.requester_id = posts.author_id AND friend_edges.recipient_id = ?)
				  OR (friend_edges.recipient_id = posts.author_id AND friend_edges.requester_id = ?))))`,
			models.VisibilityPublic, viewerID, models.VisibilityFriends,
			models.FriendStatusAccepted, viewerID, viewerID,
		)
	}
}

// CreatePost creates a new post
func (r *PostgresPostRepository) CreatePost(post *models.Post) error {
	return r.db.Create(post).Error
}

// GetPostByID retrieves a post by ID, subject to the viewer's visibility.
// A post hidden from the viewer is indistinguishable from a missing one.
func (r *PostgresPostRepository) GetPostByID(id, viewerID uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.Scopes(VisibleTo(viewerID)).First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// ListFeed retrieves the posts visible to the viewer, newest first
func (r *PostgresPostRepository) ListFeed(viewerID uint, offset, limit int) ([]models.Post, error) {
	var posts []models.Post
	if err := r.db.Scopes(VisibleTo(viewerID)).
		Order("posts.created_at DESC").Offset(offset).Limit(limit).
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// ListByAuthor retrieves an author's posts as seen by the viewer, newest first
func (r *PostgresPostRepository) ListByAuthor(authorID, viewerID uint, offset, limit int) ([]models.Post, error) {
	var posts []models.Post
	if err := r.db.Scopes(VisibleTo(viewerID)).
		Where("posts.author_id = ?", authorID).
		Order("posts.created_at DESC").Offset(offset).Limit(limit).
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// CountFeed counts the posts visible to the viewer
func (r *PostgresPostRepository) CountFeed(viewerID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Post{}).Scopes(VisibleTo(viewerID)).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// UpdatePost saves changes to a post after verifying the actor authored it
func (r *PostgresPostRepository) UpdatePost(post *models.Post, actorID uint) error {
	var existing models.Post
	if err := r.db.First(&existing, post.ID).Error; err != nil {
		return err
	}
	if existing.AuthorID != actorID {
		return ErrNotOwner
	}
	return r.db.Save(post).Error
}

// DeletePost deletes a post after verifying the actor authored it
func (r *PostgresPostRepository) DeletePost(id, actorID uint) error {
	var existing models.Post
	if err := r.db.First(&existing, id).Error; err != nil {
		return err
	}
	if existing.AuthorID != actorID {
		return ErrNotOwner
	}
	return r.db.Delete(&models.Post{}, id).Error
}

// IsNotFound reports whether err is the store's missing-record error
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
