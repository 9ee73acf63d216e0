package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/okabanov/socialite/internal/models"
	"github.com/okabanov/socialite/internal/repositories"
	"github.com/okabanov/socialite/validators"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetShareCountRespectsVisibility(t *testing.T) {
	db := newHandlerTestDB(t)
	e := echo.New()
	e.Validator = validators.NewValidator()

	alice := &models.Profile{Handle: "alice", DisplayName: "alice", Email: "alice@example.com"}
	bob := &models.Profile{Handle: "bob", DisplayName: "bob", Email: "bob@example.com"}
	require.NoError(t, db.Create(alice).Error)
	require.NoError(t, db.Create(bob).Error)

	public := &models.Post{AuthorID: alice.ID, Body: "hi", Visibility: models.VisibilityPublic}
	hidden := &models.Post{AuthorID: alice.ID, Body: "secret", Visibility: models.VisibilityFriends}
	require.NoError(t, db.Create(public).Error)
	require.NoError(t, db.Create(hidden).Error)

	shareRepo := repositories.NewPostgresShareRepository(db)
	require.NoError(t, shareRepo.CreateShare(&models.SharedPost{PostID: public.ID, UserID: bob.ID}))

	h := NewShareHandler(
		shareRepo,
		repositories.NewPostgresPostRepository(db),
		repositories.NewPostgresProfileRepository(db),
		repositories.NewPostgresNotificationRepository(db),
	)

	// Anonymous viewers can count shares of a public post.
	c, rec := newRequestContext(t, e, http.MethodGet, fmt.Sprintf("/api/v1/posts/%d/shares/count", public.ID), repositories.AnonymousID)
	c.SetParamNames("id")
	c.SetParamValues(fmt.Sprint(public.ID))
	require.NoError(t, h.GetShareCount(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"shares":1`)

	// A friends-only post looks missing to a stranger.
	c, _ = newRequestContext(t, e, http.MethodGet, fmt.Sprintf("/api/v1/posts/%d/shares/count", hidden.ID), bob.ID)
	c.SetParamNames("id")
	c.SetParamValues(fmt.Sprint(hidden.ID))
	err := h.GetShareCount(c)
	require.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, httpErr.Code)
}
