package repositories

import (
	"testing"

	"github.com/okabanov/socialite/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendRequestCreatesPendingEdge(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresFriendRepository(db)
	alice := newTestProfile(t, db, "alice")
	bob := newTestProfile(t, db, "bob")

	edge, err := repo.SendRequest(alice, bob)
	require.NoError(t, err)
	assert.Equal(t, models.FriendStatusPending, edge.Status)
	assert.Equal(t, alice, edge.RequesterID)
	assert.Equal(t, bob, edge.RecipientID)

	status, err := repo.PairStatus(alice, bob)
	require.NoError(t, err)
	assert.Equal(t, models.PairStatusPendingSent, status)

	status, err = repo.PairStatus(bob, alice)
	require.NoError(t, err)
	assert.Equal(t, models.PairStatusPendingReceived, status)
}

func TestSendRequestRejectsSelf(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresFriendRepository(db)
	alice := newTestProfile(t, db, "alice")

	_, err := repo.SendRequest(alice, alice)
	assert.ErrorIs(t, err, ErrSelfRequest)
}

func TestSendRequestRejectsDuplicateInBothDirections(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresFriendRepository(db)
	alice := newTestProfile(t, db, "alice")
	bob := newTestProfile(t, db, "bob")

	_, err := repo.SendRequest(alice, bob)
	require.NoError(t, err)

	_, err = repo.SendRequest(alice, bob)
	assert.ErrorIs(t, err, ErrDuplicateEdge)

	// Counter-request in the reverse direction is also rejected.
	_, err = repo.SendRequest(bob, alice)
	assert.ErrorIs(t, err, ErrDuplicateEdge)
}

func TestSendRequestRejectsWhenAlreadyFriends(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresFriendRepository(db)
	alice := newTestProfile(t, db, "alice")
	bob := newTestProfile(t, db, "bob")
	befriend(t, db, alice, bob)

	_, err := repo.SendRequest(alice, bob)
	assert.ErrorIs(t, err, ErrAlreadyFriends)
	_, err = repo.SendRequest(bob, alice)
	assert.ErrorIs(t, err, ErrAlreadyFriends)
}

func TestPairUniqueIndexBlocksReverseEdge(t *testing.T) {
	db := newTestDB(t)
	alice := newTestProfile(t, db, "alice")
	bob := newTestProfile(t, db, "bob")

	require.NoError(t, db.Create(&models.FriendEdge{
		RequesterID: alice, RecipientID: bob, Status: models.FriendStatusPending,
	}).Error)

	// A direct reverse-direction insert that bypasses the repository check
	// must still fail on the canonicalized pair index.
	err := db.Create(&models.FriendEdge{
		RequesterID: bob, RecipientID: alice, Status: models.FriendStatusPending,
	}).Error
	assert.Error(t, err)
}

func TestSendRequestTranslatesIndexCollision(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresFriendRepository(db)
	alice := newTestProfile(t, db, "alice")
	bob := newTestProfile(t, db, "bob")

	// Seed a row holding the pair slot without matching the requester and
	// recipient lookup, the shape a concurrent insert leaves behind between
	// the existence check and the write.
	low, high := alice, bob
	if low > high {
		low, high = high, low
	}
	require.NoError(t, db.Exec(
		"INSERT INTO friend_edges (requester_id, recipient_id, status, pair_low, pair_high, created_at, updated_at) VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)",
		0, 0, models.FriendStatusPending, low, high,
	).Error)

	_, err := repo.SendRequest(alice, bob)
	assert.ErrorIs(t, err, ErrDuplicateEdge)
}

func TestAcceptOnlyByRecipient(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresFriendRepository(db)
	alice := newTestProfile(t, db, "alice")
	bob := newTestProfile(t, db, "bob")

	edge, err := repo.SendRequest(alice, bob)
	require.NoError(t, err)

	_, err = repo.Accept(edge.ID, alice)
	assert.ErrorIs(t, err, ErrNotRecipient)

	accepted, err := repo.Accept(edge.ID, bob)
	require.NoError(t, err)
	assert.Equal(t, models.FriendStatusAccepted, accepted.Status)

	friends, err := repo.AreFriends(alice, bob)
	require.NoError(t, err)
	assert.True(t, friends)
}

func TestRemoveCoversCancelRejectAndUnfriend(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresFriendRepository(db)
	alice := newTestProfile(t, db, "alice")
	bob := newTestProfile(t, db, "bob")

	// Cancel: requester deletes their own pending request.
	_, err := repo.SendRequest(alice, bob)
	require.NoError(t, err)
	require.NoError(t, repo.Remove(alice, bob))
	status, err := repo.PairStatus(alice, bob)
	require.NoError(t, err)
	assert.Equal(t, models.PairStatusNone, status)

	// Reject: recipient deletes a pending request.
	_, err = repo.SendRequest(alice, bob)
	require.NoError(t, err)
	require.NoError(t, repo.Remove(bob, alice))
	status, err = repo.PairStatus(alice, bob)
	require.NoError(t, err)
	assert.Equal(t, models.PairStatusNone, status)

	// Unfriend: either party deletes an accepted edge.
	edge, err := repo.SendRequest(alice, bob)
	require.NoError(t, err)
	_, err = repo.Accept(edge.ID, bob)
	require.NoError(t, err)
	require.NoError(t, repo.Remove(bob, alice))
	friends, err := repo.AreFriends(alice, bob)
	require.NoError(t, err)
	assert.False(t, friends)

	// After removal the pair can start over.
	_, err = repo.SendRequest(bob, alice)
	assert.NoError(t, err)
}

func TestRemoveWithoutEdge(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresFriendRepository(db)
	alice := newTestProfile(t, db, "alice")
	bob := newTestProfile(t, db, "bob")

	assert.ErrorIs(t, repo.Remove(alice, bob), ErrEdgeNotFound)
}

func TestListFriendsAndPending(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresFriendRepository(db)
	alice := newTestProfile(t, db, "alice")
	bob := newTestProfile(t, db, "bob")
	carol := newTestProfile(t, db, "carol")
	dave := newTestProfile(t, db, "dave")

	// alice <-> bob accepted in one direction, carol <-> alice in the other.
	befriend(t, db, alice, bob)
	befriend(t, db, carol, alice)

	// dave -> alice still pending.
	_, err := repo.SendRequest(dave, alice)
	require.NoError(t, err)

	friends, err := repo.ListFriends(alice)
	require.NoError(t, err)
	handles := make([]string, len(friends))
	for i, f := range friends {
		handles[i] = f.Handle
	}
	assert.ElementsMatch(t, []string{"bob", "carol"}, handles)

	received, err := repo.ListPendingReceived(alice)
	require.NoError(t, err)
	require.Len(t, received, 1)
	assert.Equal(t, dave, received[0].RequesterID)

	sent, err := repo.ListPendingSent(dave)
	require.NoError(t, err)
	require.Len(t, sent, 1)
	assert.Equal(t, alice, sent[0].RecipientID)
}
