package repositories

import (
	"testing"

	"github.com/okabanov/socialite/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestPublicPostVisibleToEveryone(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresPostRepository(db)
	alice := newTestProfile(t, db, "alice")
	stranger := newTestProfile(t, db, "stranger")
	post := newTestPost(t, db, alice, models.VisibilityPublic)

	for _, viewer := range []uint{AnonymousID, stranger, alice} {
		got, err := repo.GetPostByID(post.ID, viewer)
		require.NoError(t, err, "viewer %d", viewer)
		assert.Equal(t, post.ID, got.ID)
	}
}

func TestFriendsPostHiddenUntilAccepted(t *testing.T) {
	db := newTestDB(t)
	postRepo := NewPostgresPostRepository(db)
	friendRepo := NewPostgresFriendRepository(db)
	alice := newTestProfile(t, db, "alice")
	bob := newTestProfile(t, db, "bob")
	post := newTestPost(t, db, alice, models.VisibilityFriends)

	// The author always sees their own post.
	_, err := postRepo.GetPostByID(post.ID, alice)
	require.NoError(t, err)

	// A stranger and an anonymous viewer see nothing.
	_, err = postRepo.GetPostByID(post.ID, bob)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	_, err = postRepo.GetPostByID(post.ID, AnonymousID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// A pending request is not enough.
	edge, err := friendRepo.SendRequest(bob, alice)
	require.NoError(t, err)
	_, err = postRepo.GetPostByID(post.ID, bob)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// Once accepted the post becomes visible, whichever direction the edge
	// was created in.
	_, err = friendRepo.Accept(edge.ID, alice)
	require.NoError(t, err)
	got, err := postRepo.GetPostByID(post.ID, bob)
	require.NoError(t, err)
	assert.Equal(t, post.ID, got.ID)

	// Unfriending hides it again.
	require.NoError(t, friendRepo.Remove(alice, bob))
	_, err = postRepo.GetPostByID(post.ID, bob)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestFeedAppliesVisibilityPerViewer(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresPostRepository(db)
	alice := newTestProfile(t, db, "alice")
	bob := newTestProfile(t, db, "bob")
	carol := newTestProfile(t, db, "carol")
	befriend(t, db, alice, bob)

	public := newTestPost(t, db, alice, models.VisibilityPublic)
	friendsOnly := newTestPost(t, db, alice, models.VisibilityFriends)

	feedIDs := func(viewer uint) []uint {
		posts, err := repo.ListFeed(viewer, 0, 10)
		require.NoError(t, err)
		ids := make([]uint, len(posts))
		for i, p := range posts {
			ids[i] = p.ID
		}
		return ids
	}

	assert.ElementsMatch(t, []uint{public.ID}, feedIDs(AnonymousID))
	assert.ElementsMatch(t, []uint{public.ID}, feedIDs(carol))
	assert.ElementsMatch(t, []uint{public.ID, friendsOnly.ID}, feedIDs(bob))
	assert.ElementsMatch(t, []uint{public.ID, friendsOnly.ID}, feedIDs(alice))

	count, err := repo.CountFeed(carol)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestListByAuthorRespectsVisibility(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresPostRepository(db)
	alice := newTestProfile(t, db, "alice")
	stranger := newTestProfile(t, db, "stranger")
	newTestPost(t, db, alice, models.VisibilityPublic)
	newTestPost(t, db, alice, models.VisibilityFriends)

	posts, err := repo.ListByAuthor(alice, stranger, 0, 10)
	require.NoError(t, err)
	assert.Len(t, posts, 1)

	posts, err = repo.ListByAuthor(alice, alice, 0, 10)
	require.NoError(t, err)
	assert.Len(t, posts, 2)
}

func TestPostMutationIsAuthorOnly(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresPostRepository(db)
	alice := newTestProfile(t, db, "alice")
	mallory := newTestProfile(t, db, "mallory")
	post := newTestPost(t, db, alice, models.VisibilityPublic)

	post.Body = "edited"
	assert.ErrorIs(t, repo.UpdatePost(post, mallory), ErrNotOwner)
	assert.ErrorIs(t, repo.DeletePost(post.ID, mallory), ErrNotOwner)

	require.NoError(t, repo.UpdatePost(post, alice))
	got, err := repo.GetPostByID(post.ID, alice)
	require.NoError(t, err)
	assert.Equal(t, "edited", got.Body)

	require.NoError(t, repo.DeletePost(post.ID, alice))
	_, err = repo.GetPostByID(post.ID, alice)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
