package repositories

import (
	"errors"

	"github.com/okabanov/socialite/internal/models"
	"gorm.io/gorm"
)

// FriendRepository owns the relationship state machine for unordered user
// pairs: none -> pending -> accepted -> none. The edge row's status column is
// the sole source of truth, and at most one edge exists per pair.
type FriendRepository interface {
	SendRequest(requesterID, recipientID uint) (*models.FriendEdge, error)
	Accept(edgeID, actorID uint) (*models.FriendEdge, error)
	Remove(actorID, otherID uint) error
	GetEdgeByID(id uint) (*models.FriendEdge, error)
	GetEdgeBetween(userA, userB uint) (*models.FriendEdge, error)
	ListPendingReceived(userID uint) ([]models.FriendEdge, error)
	ListPendingSent(userID uint) ([]models.FriendEdge, error)
	ListFriends(userID uint) ([]models.Profile, error)
	PairStatus(userID, otherID uint) (string, error)
	AreFriends(userA, userB uint) (bool, error)
}

// PostgresFriendRepository implements FriendRepository for PostgreSQL
type PostgresFriendRepository struct {
	db *gorm.DB
}

// NewPostgresFriendRepository creates a new PostgresFriendRepository
func NewPostgresFriendRepository(db *gorm.DB) *PostgresFriendRepository {
	return &PostgresFriendRepository{db: db}
}

// SendRequest creates a pending edge from requester to recipient. Any
// existing edge between the pair, in either direction, rejects the request;
// the canonical-pair unique index backstops a concurrent double insert.
func (r *PostgresFriendRepository) SendRequest(requesterID, recipientID uint) (*models.FriendEdge, error) {
	if requesterID == recipientID {
		return nil, ErrSelfRequest
	}

	existing, err := r.GetEdgeBetween(requesterID, recipientID)
	if err == nil {
		if existing.Status == models.FriendStatusAccepted {
			return nil, ErrAlreadyFriends
		}
		return nil, ErrDuplicateEdge
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	edge := &models.FriendEdge{
		RequesterID: requesterID,
		RecipientID: recipientID,
		Status:      models.FriendStatusPending,
	}
	if err := r.db.Create(edge).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateEdge
		}
		return nil, err
	}
	return edge, nil
}

// Accept transitions a pending edge to accepted. Only the edge's recipient
// may perform the transition.
func (r *PostgresFriendRepository) Accept(edgeID, actorID uint) (*models.FriendEdge, error) {
	edge, err := r.GetEdgeByID(edgeID)
	if err != nil {
		return nil, err
	}
	if edge.RecipientID != actorID {
		return nil, ErrNotRecipient
	}
	if edge.Status != models.FriendStatusPending {
		return nil, ErrAlreadyFriends
	}
	if err := r.db.Model(edge).Update("status", models.FriendStatusAccepted).Error; err != nil {
		return nil, err
	}
	edge.Status = models.FriendStatusAccepted
	return edge, nil
}

// Remove deletes the edge between actor and the other user regardless of
// status. Cancel, reject and unfriend all collapse to this deletion; the
// symmetric query guarantees the actor is one of the two parties.
func (r *PostgresFriendRepository) Remove(actorID, otherID uint) error {
	edge, err := r.GetEdgeBetween(actorID, otherID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEdgeNotFound
		}
		return err
	}
	return r.db.Delete(&models.FriendEdge{}, edge.ID).Error
}

// GetEdgeByID retrieves an edge by its ID
func (r *PostgresFriendRepository) GetEdgeByID(id uint) (*models.FriendEdge, error) {
	var edge models.FriendEdge
	if err := r.db.First(&edge, id).Error; err != nil {
		return nil, err
	}
	return &edge, nil
}

// GetEdgeBetween retrieves the edge connecting two users in either direction
func (r *PostgresFriendRepository) GetEdgeBetween(userA, userB uint) (*models.FriendEdge, error) {
	var edge models.FriendEdge
	if err := r.db.Where("(requester_id = ? AND recipient_id = ?) OR (requester_id = ? AND recipient_id = ?)",
		userA, userB, userB, userA).First(&edge).Error; err != nil {
		return nil, err
	}
	return &edge, nil
}

// ListPendingReceived retrieves the pending requests addressed to a user
func (r *PostgresFriendRepository) ListPendingReceived(userID uint) ([]models.FriendEdge, error) {
	var edges []models.FriendEdge
	if err := r.db.Where("recipient_id = ? AND status = ?", userID, models.FriendStatusPending).
		Find(&edges).Error; err != nil {
		return nil, err
	}
	return edges, nil
}

// ListPendingSent retrieves the pending requests a user has sent
func (r *PostgresFriendRepository) ListPendingSent(userID uint) ([]models.FriendEdge, error) {
	var edges []models.FriendEdge
	if err := r.db.Where("requester_id = ? AND status = ?", userID, models.FriendStatusPending).
		Find(&edges).Error; err != nil {
		return nil, err
	}
	return edges, nil
}

// ListFriends retrieves the profiles connected to a user by an accepted edge
func (r *PostgresFriendRepository) ListFriends(userID uint) ([]models.Profile, error) {
	var friends []models.Profile
	sent := r.db.Table("friend_edges").Select("recipient_id").
		Where("requester_id = ? AND status = ?", userID, models.FriendStatusAccepted)
	received := r.db.Table("friend_edges").Select("requester_id").
		Where("recipient_id = ? AND status = ?", userID, models.FriendStatusAccepted)

	if err := r.db.Where("id IN (?) OR id IN (?)", sent, received).Find(&friends).Error; err != nil {
		return nil, err
	}
	return friends, nil
}

// PairStatus reports the relationship state between userID and otherID from
// userID's point of view
func (r *PostgresFriendRepository) PairStatus(userID, otherID uint) (string, error) {
	edge, err := r.GetEdgeBetween(userID, otherID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.PairStatusNone, nil
		}
		return "", err
	}
	if edge.Status == models.FriendStatusAccepted {
		return models.PairStatusAccepted, nil
	}
	if edge.RequesterID == userID {
		return models.PairStatusPendingSent, nil
	}
	return models.PairStatusPendingReceived, nil
}

// AreFriends reports whether an accepted edge connects the two users
func (r *PostgresFriendRepository) AreFriends(userA, userB uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.FriendEdge{}).
		Where("status = ? AND ((requester_id = ? AND recipient_id = ?) OR (requester_id = ? AND recipient_id = ?))",
			models.FriendStatusAccepted, userA, userB, userB, userA).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
