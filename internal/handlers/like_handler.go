package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/okabanov/socialite/internal/middleware"
	"github.com/okabanov/socialite/internal/models"
	"github.com/okabanov/socialite/internal/repositories"
)

// LikeHandler handles HTTP requests related to likes
type LikeHandler struct {
	likeRepository         repositories.LikeRepository
	postRepository         repositories.PostRepository
	notificationRepository repositories.NotificationRepository
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(likeRepo repositories.LikeRepository, postRepo repositories.PostRepository, notificationRepo repositories.NotificationRepository) *LikeHandler {
	return &LikeHandler{
		likeRepository:         likeRepo,
		postRepository:         postRepo,
		notificationRepository: notificationRepo,
	}
}

// RegisterLikeRoutes registers routes that require authentication
func (h *LikeHandler) RegisterLikeRoutes(g *echo.Group) {
	g.POST("/posts/:id/like", h.LikePost)
	g.DELETE("/posts/:id/like", h.UnlikePost)
	g.GET("/posts/:id/like/status", h.GetLikeStatus)
}

// RegisterPublicLikeRoutes registers read paths that admit anonymous viewers
func (h *LikeHandler) RegisterPublicLikeRoutes(g *echo.Group) {
	g.GET("/posts/:id/likes/count", h.GetLikesCount)
}

// LikePost likes a post. The post is resolved through the viewer's
// visibility scope first, so a hidden post cannot be liked.
func (h *LikeHandler) LikePost(c echo.Context) error {
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

	like := &models.Like{PostID: postID, UserID: userID}
	if err := h.likeRepository.CreateLike(like); err != nil {
		return repoError(err)
	}

	if post.AuthorID != userID {
		// Best effort; a failed notification never fails the like.
		_ = h.notificationRepository.CreateNotification(&models.Notification{
			Type:        models.NotificationLike,
			ActorID:     userID,
			RecipientID: post.AuthorID,
			TargetID:    postID,
			Message:     "liked your post",
		})
	}

	return c.JSON(http.StatusCreated, like)
}

// UnlikePost removes the caller's like from a post
func (h *LikeHandler) UnlikePost(c echo.Context) error {
	userID := middleware.CurrentUserID(c)
	postID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if _, err := h.postRepository.GetPostByID(postID, userID); err != nil {
		if repositories.IsNotFound(err) {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if err := h.likeRepository.DeleteLike(postID, userID); err != nil {
		return repoError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// GetLikesCount retrieves the total number of likes for a post
func (h *LikeHandler) GetLikesCount(c echo.Context) error {
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

	count, err := h.likeRepository.GetLikesCountByPostID(postID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"post_id": postID, "likes_count": count})
}

// GetLikeStatus checks whether the caller has liked a post
func (h *LikeHandler) GetLikeStatus(c echo.Context) error {
	userID := middleware.CurrentUserID(c)
	postID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if _, err := h.postRepository.GetPostByID(postID, userID); err != nil {
		if repositories.IsNotFound(err) {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	hasLiked, err := h.likeRepository.HasUserLikedPost(postID, userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"post_id": postID, "has_liked": hasLiked})
}
