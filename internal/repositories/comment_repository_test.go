package repositories

import (
	"testing"

	"github.com/okabanov/socialite/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentLifecycle(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresCommentRepository(db)
	alice := newTestProfile(t, db, "alice")
	bob := newTestProfile(t, db, "bob")
	post := newTestPost(t, db, alice, models.VisibilityPublic)

	require.NoError(t, repo.CreateComment(&models.Comment{PostID: post.ID, AuthorID: bob, Body: "first"}))
	require.NoError(t, repo.CreateComment(&models.Comment{PostID: post.ID, AuthorID: alice, Body: "second"}))

	comments, err := repo.GetCommentsByPostID(post.ID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "first", comments[0].Body)

	count, err := repo.GetCommentsCountByPostID(post.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}

func TestCommentMutationIsAuthorOnly(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresCommentRepository(db)
	alice := newTestProfile(t, db, "alice")
	bob := newTestProfile(t, db, "bob")
	post := newTestPost(t, db, alice, models.VisibilityPublic)

	comment := &models.Comment{PostID: post.ID, AuthorID: bob, Body: "mine"}
	require.NoError(t, repo.CreateComment(comment))

	// The post's author does not own the comment.
	_, err := repo.UpdateComment(comment.ID, alice, "hijacked")
	assert.ErrorIs(t, err, ErrNotOwner)
	assert.ErrorIs(t, repo.DeleteComment(comment.ID, alice), ErrNotOwner)

	updated, err := repo.UpdateComment(comment.ID, bob, "edited")
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Body)

	require.NoError(t, repo.DeleteComment(comment.ID, bob))
	_, err = repo.GetCommentByID(comment.ID)
	assert.True(t, IsNotFound(err))
}
