package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/okabanov/socialite/internal/middleware"
	"github.com/okabanov/socialite/internal/models"
	"github.com/okabanov/socialite/internal/repositories"
)

// ShareHandler handles HTTP requests related to post sharing
type ShareHandler struct {
	shareRepository        repositories.ShareRepository
	postRepository         repositories.PostRepository
	profileRepository      repositories.ProfileRepository
	notificationRepository repositories.NotificationRepository
}

// NewShareHandler creates a new ShareHandler
func NewShareHandler(
	shareRepo repositories.ShareRepository,
	postRepo repositories.PostRepository,
	profileRepo repositories.ProfileRepository,
	notificationRepo repositories.NotificationRepository,
) *ShareHandler {
	return &ShareHandler{
		shareRepository:        shareRepo,
		postRepository:         postRepo,
		profileRepository:      profileRepo,
		notificationRepository: notificationRepo,
	}
}

// RegisterShareRoutes registers routes that require authentication
func (h *ShareHandler) RegisterShareRoutes(g *echo.Group) {
	g.POST("/posts/:id/share", h.SharePost)
	g.DELETE("/posts/:id/share", h.UnsharePost)
}

// RegisterPublicShareRoutes registers read paths that admit anonymous viewers
func (h *ShareHandler) RegisterPublicShareRoutes(g *echo.Group) {
	g.GET("/users/:id/shares", h.GetUserShares)
	g.GET("/posts/:id/shares/count", h.GetShareCount)
}

// SharePost reshares a post the caller can see onto their own timeline
func (h *ShareHandler) SharePost(c echo.Context) error {
	userID := middleware.CurrentUserID(c)
	postID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	post, err := h.postRepository.GetPostByID(postID, userID)
	if err != nil {
		if repositories.IsNotFound(err) {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	share := &models.SharedPost{PostID: postID, UserID: userID}
	if err := h.shareRepository.CreateShare(share); err != nil {
		return repoError(err)
	}

	if post.AuthorID != userID {
		_ = h.notificationRepository.CreateNotification(&models.Notification{
			Type:        models.NotificationShare,
			ActorID:     userID,
			RecipientID: post.AuthorID,
			TargetID:    postID,
			Message:     "shared your post",
		})
	}

	return c.JSON(http.StatusCreated, share)
}

// UnsharePost removes the caller's share of a post
func (h *ShareHandler) UnsharePost(c echo.Context) error {
	userID := middleware.CurrentUserID(c)
	postID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.shareRepository.DeleteShare(postID, userID); err != nil {
		return repoError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// GetShareCount reports how many times a post the viewer can see has been
// shared
func (h *ShareHandler) GetShareCount(c echo.Context) error {
	postID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	viewerID := middleware.CurrentUserID(c)

	if _, err := h.postRepository.GetPostByID(postID, viewerID); err != nil {
		if repositories.IsNotFound(err) {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	count, err := h.shareRepository.GetSharesCountByPostID(postID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"post_id": postID, "shares": count})
}

// GetUserShares lists a user's shared posts, filtered by what the viewer is
// allowed to see
func (h *ShareHandler) GetUserShares(c echo.Context) error {
	sharerID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	viewerID := middleware.CurrentUserID(c)
	offset, limit := pagination(c)

	if _, err := h.profileRepository.GetProfileByID(sharerID); err != nil {
		return repoError(err)
	}

	shares, err := h.shareRepository.ListSharesByUser(sharerID, viewerID, offset, limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, shares)
}
