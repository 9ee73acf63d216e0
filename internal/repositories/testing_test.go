package repositories

import (
	"fmt"
	"testing"

	"github.com/okabanov/socialite/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory SQLite database with the full schema
// migrated. The named shared-cache DSN keeps the database alive across the
// pooled connections GORM opens.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Profile{},
		&models.Post{},
		&models.Like{},
		&models.Comment{},
		&models.FriendEdge{},
		&models.SharedPost{},
		&models.Notification{},
	))
	return db
}

// newTestProfile inserts a profile and returns its ID
func newTestProfile(t *testing.T, db *gorm.DB, handle string) uint {
	t.Helper()
	profile := &models.Profile{
		Handle:      handle,
		DisplayName: handle,
		Email:       handle + "@example.com",
	}
	require.NoError(t, db.Create(profile).Error)
	return profile.ID
}

// newTestPost inserts a post and returns it
func newTestPost(t *testing.T, db *gorm.DB, authorID uint, visibility string) *models.Post {
	t.Helper()
	post := &models.Post{
		AuthorID:   authorID,
		Body:       "hello from " + visibility,
		Visibility: visibility,
	}
	require.NoError(t, db.Create(post).Error)
	return post
}

// befriend inserts an accepted edge between two users
func befriend(t *testing.T, db *gorm.DB, a, b uint) {
	t.Helper()
	require.NoError(t, db.Create(&models.FriendEdge{
		RequesterID: a,
		RecipientID: b,
		Status:      models.FriendStatusAccepted,
	}).Error)
}
