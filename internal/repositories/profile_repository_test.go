package repositories

import (
	"testing"

	"github.com/okabanov/socialite/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateLocalProfilesWithoutFirebaseUID(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresProfileRepository(db)

	// Local signups carry no Firebase UID; the unique index on that column
	// must not collapse them onto each other.
	require.NoError(t, repo.CreateProfile(&models.Profile{
		Handle: "alice", DisplayName: "Alice", Email: "alice@example.com",
	}))
	require.NoError(t, repo.CreateProfile(&models.Profile{
		Handle: "bob", DisplayName: "Bob", Email: "bob@example.com",
	}))

	alice, err := repo.GetProfileByEmail("alice@example.com")
	require.NoError(t, err)
	bob, err := repo.GetProfileByEmail("bob@example.com")
	require.NoError(t, err)
	assert.Nil(t, alice.FirebaseUID)
	assert.Nil(t, bob.FirebaseUID)
}

func TestGetProfileByFirebaseUID(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresProfileRepository(db)

	uid := "fb-uid-1234"
	require.NoError(t, repo.CreateProfile(&models.Profile{
		Handle: "carol", DisplayName: "Carol", Email: "carol@example.com", FirebaseUID: &uid,
	}))

	profile, err := repo.GetProfileByFirebaseUID(uid)
	require.NoError(t, err)
	assert.Equal(t, "carol", profile.Handle)

	_, err = repo.GetProfileByFirebaseUID("missing")
	assert.True(t, IsNotFound(err))
}

func TestDeleteProfile(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresProfileRepository(db)
	alice := newTestProfile(t, db, "alice")

	require.NoError(t, repo.DeleteProfile(alice))

	_, err := repo.GetProfileByID(alice)
	assert.True(t, IsNotFound(err))
}
