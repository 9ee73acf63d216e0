package repositories

import (
	"errors"

	"github.com/okabanov/socialite/internal/models"
	"gorm.io/gorm"
)

// ShareRepository defines the interface for shared-post data operations
type ShareRepository interface {
	CreateShare(share *models.SharedPost) error
	DeleteShare(postID, userID uint) error
	HasUserSharedPost(postID, userID uint) (bool, error)
	GetSharesCountByPostID(postID uint) (int64, error)
	ListSharesByUser(userID, viewerID uint, offset, limit int) ([]models.SharedPostView, error)
	GetSharedPostIDs(userID uint, postIDs []uint) (map[uint]bool, error)
}

// PostgresShareRepository implements ShareRepository for PostgreSQL
type PostgresShareRepository struct {
	db *gorm.DB
}

// NewPostgresShareRepository creates a new PostgresShareRepository
func NewPostgresShareRepository(db *gorm.DB) *PostgresShareRepository {
	return &PostgresShareRepository{db: db}
}

// CreateShare inserts the share row, rejecting a duplicate (post, user) pair
func (r *PostgresShareRepository) CreateShare(share *models.SharedPost) error {
	var count int64
	if err := r.db.Model(&models.SharedPost{}).
		Where("post_id = ? AND user_id = ?", share.PostID, share.UserID).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrAlreadyShared
	}
	if err := r.db.Create(share).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAlreadyShared
		}
		return err
	}
	return nil
}

// DeleteShare removes the share row for the (post, user) pair
func (r *PostgresShareRepository) DeleteShare(postID, userID uint) error {
	res := r.db.Where("post_id = ? AND user_id = ?", postID, userID).Delete(&models.SharedPost{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrShareNotFound
	}
	return nil
}

// HasUserSharedPost checks if a user has shared a specific post
func (r *PostgresShareRepository) HasUserSharedPost(postID, userID uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.SharedPost{}).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetSharesCountByPostID retrieves the count of shares for a specific post
func (r *PostgresShareRepository) GetSharesCountByPostID(postID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.SharedPost{}).Where("post_id = ?", postID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ListSharesByUser retrieves a user's shares joined with the underlying
// posts. The join reapplies the viewer's visibility scope, so a friends-only
// post reshared by its author's friend stays hidden from strangers.
func (r *PostgresShareRepository) ListSharesByUser(userID, viewerID uint, offset, limit int) ([]models.SharedPostView, error) {
	var shares []models.SharedPost
	if err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").Offset(offset).Limit(limit).
		Find(&shares).Error; err != nil {
		return nil, err
	}
	if len(shares) == 0 {
		return []models.SharedPostView{}, nil
	}

	postIDs := make([]uint, len(shares))
	for i, s := range shares {
		postIDs[i] = s.PostID
	}

	var posts []models.Post
	if err := r.db.Scopes(VisibleTo(viewerID)).Where("posts.id IN ?", postIDs).
		Find(&posts).Error; err != nil {
		return nil, err
	}
	visible := make(map[uint]models.Post, len(posts))
	for _, p := range posts {
		visible[p.ID] = p
	}

	views := make([]models.SharedPostView, 0, len(shares))
	for _, s := range shares {
		post, ok := visible[s.PostID]
		if !ok {
			continue
		}
		views = append(views, models.SharedPostView{
			Post:     post,
			SharedBy: s.UserID,
			SharedAt: s.CreatedAt,
		})
	}
	return views, nil
}

// GetSharedPostIDs returns which of the given posts the user has shared
func (r *PostgresShareRepository) GetSharedPostIDs(userID uint, postIDs []uint) (map[uint]bool, error) {
	shared := make(map[uint]bool)
	if len(postIDs) == 0 {
		return shared, nil
	}
	var rows []models.SharedPost
	if err := r.db.Where("user_id = ? AND post_id IN ?", userID, postIDs).Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		shared[row.PostID] = true
	}
	return shared, nil
}
