package repositories

import (
	"github.com/okabanov/socialite/internal/models"
	"gorm.io/gorm"
)

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	CreateComment(comment *models.Comment) error
	GetCommentByID(id uint) (*models.Comment, error)
	GetCommentsByPostID(postID uint) ([]models.Comment, error)
	GetCommentsCountByPostID(postID uint) (int64, error)
	UpdateComment(id, actorID uint, body string) (*models.Comment, error)
	DeleteComment(id, actorID uint) error
}

// PostgresCommentRepository implements CommentRepository for PostgreSQL
type PostgresCommentRepository struct {
	db *gorm.DB
}

// NewPostgresCommentRepository creates a new PostgresCommentRepository
func NewPostgresCommentRepository(db *gorm.DB) *PostgresCommentRepository {
	return &PostgresCommentRepository{db: db}
}

// CreateComment creates a new comment
func (r *PostgresCommentRepository) CreateComment(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

// GetCommentByID retrieves a comment by ID
func (r *PostgresCommentRepository) GetCommentByID(id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.First(&comment, id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// GetCommentsByPostID retrieves all comments for a specific post, oldest first
func (r *PostgresCommentRepository) GetCommentsByPostID(postID uint) ([]models.Comment, error) {
	var comments []models.Comment
	if err := r.db.Where("post_id = ?", postID).Order("created_at ASC").Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// GetCommentsCountByPostID retrieves the count of comments for a specific post
func (r *PostgresCommentRepository) GetCommentsCountByPostID(postID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Comment{}).Where("post_id = ?", postID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// UpdateComment changes a comment's body after verifying the actor wrote it
func (r *PostgresCommentRepository) UpdateComment(id, actorID uint, body string) (*models.Comment, error) {
	comment, err := r.GetCommentByID(id)
	if err != nil {
		return nil, err
	}
	if comment.AuthorID != actorID {
		return nil, ErrNotOwner
	}
	comment.Body = body
	if err := r.db.Save(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// DeleteComment deletes a comment after verifying the actor wrote it
func (r *PostgresCommentRepository) DeleteComment(id, actorID uint) error {
	comment, err := r.GetCommentByID(id)
	if err != nil {
		return err
	}
	if comment.AuthorID != actorID {
		return ErrNotOwner
	}
	return r.db.Delete(&models.Comment{}, id).Error
}
