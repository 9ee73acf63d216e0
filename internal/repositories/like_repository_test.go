package repositories

import (
	"testing"

	"github.com/okabanov/socialite/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLikeToggleRoundTrip(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresLikeRepository(db)
	alice := newTestProfile(t, db, "alice")
	bob := newTestProfile(t, db, "bob")
	post := newTestPost(t, db, alice, models.VisibilityPublic)

	before, err := repo.GetLikesCountByPostID(post.ID)
	require.NoError(t, err)

	require.NoError(t, repo.CreateLike(&models.Like{PostID: post.ID, UserID: bob}))
	count, err := repo.GetLikesCountByPostID(post.ID)
	require.NoError(t, err)
	assert.Equal(t, before+1, count)

	liked, err := repo.HasUserLikedPost(post.ID, bob)
	require.NoError(t, err)
	assert.True(t, liked)

	// Unliking restores the original state.
	require.NoError(t, repo.DeleteLike(post.ID, bob))
	count, err = repo.GetLikesCountByPostID(post.ID)
	require.NoError(t, err)
	assert.Equal(t, before, count)

	liked, err = repo.HasUserLikedPost(post.ID, bob)
	require.NoError(t, err)
	assert.False(t, liked)
}

func TestDuplicateLikeRejected(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresLikeRepository(db)
	alice := newTestProfile(t, db, "alice")
	bob := newTestProfile(t, db, "bob")
	post := newTestPost(t, db, alice, models.VisibilityPublic)

	require.NoError(t, repo.CreateLike(&models.Like{PostID: post.ID, UserID: bob}))
	err := repo.CreateLike(&models.Like{PostID: post.ID, UserID: bob})
	assert.ErrorIs(t, err, ErrAlreadyLiked)

	count, err := repo.GetLikesCountByPostID(post.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestUnlikeWithoutLike(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresLikeRepository(db)
	alice := newTestProfile(t, db, "alice")
	post := newTestPost(t, db, alice, models.VisibilityPublic)

	assert.ErrorIs(t, repo.DeleteLike(post.ID, alice), ErrLikeNotFound)
}

func TestGetLikedPostIDs(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresLikeRepository(db)
	alice := newTestProfile(t, db, "alice")
	bob := newTestProfile(t, db, "bob")
	first := newTestPost(t, db, alice, models.VisibilityPublic)
	second := newTestPost(t, db, alice, models.VisibilityPublic)

	require.NoError(t, repo.CreateLike(&models.Like{PostID: first.ID, UserID: bob}))

	liked, err := repo.GetLikedPostIDs(bob, []uint{first.ID, second.ID})
	require.NoError(t, err)
	assert.True(t, liked[first.ID])
	assert.False(t, liked[second.ID])
}
