package handlers

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/okabanov/socialite/internal/models"
	"github.com/okabanov/socialite/internal/repositories"
	"github.com/okabanov/socialite/validators"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteOwnProfile(t *testing.T) {
	db := newHandlerTestDB(t)
	e := echo.New()
	e.Validator = validators.NewValidator()

	alice := &models.Profile{Handle: "alice", DisplayName: "alice", Email: "alice@example.com"}
	require.NoError(t, db.Create(alice).Error)

	profileRepo := repositories.NewPostgresProfileRepository(db)
	h := NewProfileHandler(profileRepo, repositories.NewPostgresFriendRepository(db))

	c, rec := newRequestContext(t, e, http.MethodDelete, "/api/v1/profile", alice.ID)
	require.NoError(t, h.DeleteOwnProfile(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	_, err := profileRepo.GetProfileByID(alice.ID)
	assert.True(t, repositories.IsNotFound(err))
}
