package repositories

import (
	"testing"

	"github.com/okabanov/socialite/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationReadTracking(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresNotificationRepository(db)
	alice := newTestProfile(t, db, "alice")
	bob := newTestProfile(t, db, "bob")

	require.NoError(t, repo.CreateNotification(&models.Notification{
		Type: models.NotificationLike, ActorID: bob, RecipientID: alice, Message: "liked your post",
	}))
	require.NoError(t, repo.CreateNotification(&models.Notification{
		Type: models.NotificationComment, ActorID: bob, RecipientID: alice, Message: "commented on your post",
	}))

	count, err := repo.UnreadCount(alice)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	notifications, err := repo.ListByRecipient(alice, 0, 10)
	require.NoError(t, err)
	require.Len(t, notifications, 2)

	// Another user cannot mark someone else's notification read.
	err = repo.MarkRead(notifications[0].ID, bob)
	assert.True(t, IsNotFound(err))

	require.NoError(t, repo.MarkRead(notifications[0].ID, alice))
	count, err = repo.UnreadCount(alice)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	require.NoError(t, repo.MarkAllRead(alice))
	count, err = repo.UnreadCount(alice)
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)
}
