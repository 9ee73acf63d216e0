package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/okabanov/socialite/internal/middleware"
	"github.com/okabanov/socialite/internal/models"
	"github.com/okabanov/socialite/internal/repositories"
)

// PostHandler handles HTTP requests related to posts
type PostHandler struct {
	postRepository    repositories.PostRepository
	profileRepository repositories.ProfileRepository
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postRepo repositories.PostRepository, profileRepo repositories.ProfileRepository) *PostHandler {
	return &PostHandler{
		postRepository:    postRepo,
		profileRepository: profileRepo,
	}
}

// RegisterPostRoutes registers routes that require authentication
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.POST("/posts", h.CreatePost)
	g.PUT("/posts/:id", h.UpdatePost)
	g.DELETE("/posts/:id", h.DeletePost)
}

// RegisterPublicPostRoutes registers read paths that admit anonymous viewers
func (h *PostHandler) RegisterPublicPostRoutes(g *echo.Group) {
	g.GET("/posts/:id", h.GetPost)
	g.GET("/users/:id/posts", h.GetUserPosts)
}

// CreatePost creates a new post authored by the caller
func (h *PostHandler) CreatePost(c echo.Context) error {
	userID := middleware.CurrentUserID(c)

	var req models.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	post := &models.Post{
		AuthorID:   userID,
		Body:       req.Body,
		ImageURL:   req.ImageURL,
		Visibility: req.Visibility,
	}
	if err := h.postRepository.CreatePost(post); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, post)
}

// GetPost retrieves a single post subject to the viewer's visibility
func (h *PostHandler) GetPost(c echo.Context) error {
	postID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	viewerID := middleware.CurrentUserID(c)

	post, err := h.postRepository.GetPostByID(postID, viewerID)
	if err != nil {
		if repositories.IsNotFound(err) {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, post)
}

// GetUserPosts retrieves a user's posts as seen by the viewer
func (h *PostHandler) GetUserPosts(c echo.Context) error {
	authorID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	viewerID := middleware.CurrentUserID(c)
	offset, limit := pagination(c)

	if _, err := h.profileRepository.GetProfileByID(authorID); err != nil {
		return repoError(err)
	}

	posts, err := h.postRepository.ListByAuthor(authorID, viewerID, offset, limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, posts)
}

// UpdatePost edits a post; only the author may do so
func (h *PostHandler) UpdatePost(c echo.Context) error {
	userID := middleware.CurrentUserID(c)
	postID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req models.UpdatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	post, err := h.postRepository.GetPostByID(postID, userID)
	if err != nil {
		return repoError(err)
	}
	if req.Body != "" {
		post.Body = req.Body
	}
	if req.ImageURL != "" {
		post.ImageURL = req.ImageURL
	}
	if req.Visibility != "" {
		post.Visibility = req.Visibility
	}

	if err := h.postRepository.UpdatePost(post, userID); err != nil {
		return repoError(err)
	}
	return c.JSON(http.StatusOK, post)
}

// DeletePost deletes a post; only the author may do so
func (h *PostHandler) DeletePost(c echo.Context) error {
	userID := middleware.CurrentUserID(c)
	postID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.postRepository.DeletePost(postID, userID); err != nil {
		return repoError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// parseID parses a numeric path parameter
func parseID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid "+name)
	}
	return uint(id), nil
}

// pagination reads page/limit query params with sane bounds
func pagination(c echo.Context) (offset, limit int) {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ = strconv.Atoi(c.QueryParam("limit"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 20
	}
	return (page - 1) * limit, limit
}
