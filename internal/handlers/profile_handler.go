package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/okabanov/socialite/internal/middleware"
	"github.com/okabanov/socialite/internal/models"
	"github.com/okabanov/socialite/internal/repositories"
)

// ProfileHandler handles HTTP requests related to profiles
type ProfileHandler struct {
	profileRepository repositories.ProfileRepository
	friendRepository  repositories.FriendRepository
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(profileRepo repositories.ProfileRepository, friendRepo repositories.FriendRepository) *ProfileHandler {
	return &ProfileHandler{
		profileRepository: profileRepo,
		friendRepository:  friendRepo,
	}
}

// RegisterProfileRoutes registers routes that require authentication
func (h *ProfileHandler) RegisterProfileRoutes(g *echo.Group) {
	g.GET("/profile", h.GetOwnProfile)
	g.PUT("/profile", h.UpdateOwnProfile)
	g.DELETE("/profile", h.DeleteOwnProfile)
	g.GET("/users/search", h.SearchProfiles)
}

// RegisterPublicProfileRoutes registers routes readable without authentication
func (h *ProfileHandler) RegisterPublicProfileRoutes(g *echo.Group) {
	g.GET("/users/:id", h.GetProfile)
}

// GetOwnProfile retrieves the authenticated user's profile
func (h *ProfileHandler) GetOwnProfile(c echo.Context) error {
	userID := middleware.CurrentUserID(c)
	profile, err := h.profileRepository.GetProfileByID(userID)
	if err != nil {
		return repoError(err)
	}
	return c.JSON(http.StatusOK, profile)
}

// UpdateOwnProfile updates the authenticated user's profile. Only the owner
// ever reaches this path; other identities cannot address it.
func (h *ProfileHandler) UpdateOwnProfile(c echo.Context) error {
	userID := middleware.CurrentUserID(c)

	var req models.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	profile, err := h.profileRepository.GetProfileByID(userID)
	if err != nil {
		return repoError(err)
	}

	if req.Handle != "" && req.Handle != profile.Handle {
		if _, err := h.profileRepository.GetProfileByHandle(req.Handle); err == nil {
			return echo.NewHTTPError(http.StatusConflict, "This handle is already taken")
		}
		profile.Handle = req.Handle
	}
	if req.DisplayName != "" {
		profile.DisplayName = req.DisplayName
	}
	if req.AvatarURL != "" {
		profile.AvatarURL = req.AvatarURL
	}
	if req.Bio != "" {
		profile.Bio = req.Bio
	}

	if err := h.profileRepository.UpdateProfile(profile); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, profile)
}

// DeleteOwnProfile removes the authenticated user's account
func (h *ProfileHandler) DeleteOwnProfile(c echo.Context) error {
	userID := middleware.CurrentUserID(c)
	if err := h.profileRepository.DeleteProfile(userID); err != nil {
		return repoError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// GetProfile retrieves another user's public profile by ID, with the friend
// status relative to the viewer when one is authenticated
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	profile, err := h.profileRepository.GetProfileByID(uint(id))
	if err != nil {
		return repoError(err)
	}

	viewerID := middleware.CurrentUserID(c)
	friendStatus := models.PairStatusNone
	if viewerID != repositories.AnonymousID && viewerID != profile.ID {
		friendStatus, err = h.friendRepository.PairStatus(viewerID, profile.ID)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"profile":       profile.ToCompact(),
		"bio":           profile.Bio,
		"friend_status": friendStatus,
	})
}

// SearchProfiles searches profiles by handle or display name
func (h *ProfileHandler) SearchProfiles(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing search query")
	}

	profiles, err := h.profileRepository.SearchProfiles(query)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	results := make([]models.ProfileCompact, len(profiles))
	for i, p := range profiles {
		results[i] = p.ToCompact()
	}
	return c.JSON(http.StatusOK, results)
}
