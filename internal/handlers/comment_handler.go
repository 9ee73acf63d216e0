package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/okabanov/socialite/internal/middleware"
	"github.com/okabanov/socialite/internal/models"
	"github.com/okabanov/socialite/internal/repositories"
)

// CommentHandler handles HTTP requests related to comments
type CommentHandler struct {
	commentRepository      repositories.CommentRepository
	postRepository         repositories.PostRepository
	profileRepository      repositories.ProfileRepository
	notificationRepository repositories.NotificationRepository
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(
	commentRepo repositories.CommentRepository,
	postRepo repositories.PostRepository,
	profileRepo repositories.ProfileRepository,
	notificationRepo repositories.NotificationRepository,
) *CommentHandler {
	return &CommentHandler{
		commentRepository:      commentRepo,
		postRepository:         postRepo,
		profileRepository:      profileRepo,
		notificationRepository: notificationRepo,
	}
}

// RegisterCommentRoutes registers routes that require authentication
func (h *CommentHandler) RegisterCommentRoutes(g *echo.Group) {
	g.POST("/posts/:id/comments", h.CreateComment)
	g.PUT("/comments/:id", h.UpdateComment)
	g.DELETE("/comments/:id", h.DeleteComment)
}

// RegisterPublicCommentRoutes registers read paths that admit anonymous viewers
func (h *CommentHandler) RegisterPublicCommentRoutes(g *echo.Group) {
	g.GET("/posts/:id/comments", h.GetComments)
}

// CommentView is a comment joined with its author's compact profile
type CommentView struct {
	models.Comment
	Author models.ProfileCompact `json:"author"`
}

// CreateComment adds a comment to a post the caller can see
func (h *CommentHandler) CreateComment(c echo.Context) error {
	userID := middleware.CurrentUserID(c)
	postID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	post, err := h.postRepository.GetPostByID(postID, userID)
	if err != nil {
		if repositories.IsNotFound(err) {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	comment := &models.Comment{
		PostID:   postID,
		AuthorID: userID,
		Body:     req.Body,
	}
	if err := h.commentRepository.CreateComment(comment); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if post.AuthorID != userID {
		_ = h.notificationRepository.CreateNotification(&models.Notification{
			Type:        models.NotificationComment,
			ActorID:     userID,
			RecipientID: post.AuthorID,
			TargetID:    postID,
			Message:     "commented on your post",
		})
	}

	return c.JSON(http.StatusCreated, comment)
}

// GetComments lists a post's comments, gated by the post's visibility for
// the requesting viewer
func (h *CommentHandler) GetComments(c echo.Context) error {
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

	comments, err := h.commentRepository.GetCommentsByPostID(postID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	views := make([]CommentView, len(comments))
	for i, comment := range comments {
		views[i] = CommentView{Comment: comment}
		if author, err := h.profileRepository.GetProfileByID(comment.AuthorID); err == nil {
			views[i].Author = author.ToCompact()
		}
	}
	return c.JSON(http.StatusOK, views)
}

// UpdateComment edits a comment; only its author may do so
func (h *CommentHandler) UpdateComment(c echo.Context) error {
	userID := middleware.CurrentUserID(c)
	commentID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req models.UpdateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	comment, err := h.commentRepository.UpdateComment(commentID, userID, req.Body)
	if err != nil {
		return repoError(err)
	}
	return c.JSON(http.StatusOK, comment)
}

// DeleteComment deletes a comment; only its author may do so
func (h *CommentHandler) DeleteComment(c echo.Context) error {
	userID := middleware.CurrentUserID(c)
	commentID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.commentRepository.DeleteComment(commentID, userID); err != nil {
		return repoError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
