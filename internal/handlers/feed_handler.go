package handlers

import (
	"math"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/okabanov/socialite/internal/middleware"
	"github.com/okabanov/socialite/internal/models"
	"github.com/okabanov/socialite/internal/repositories"
)

// FeedHandler assembles the visible-post feed with per-viewer decorations
type FeedHandler struct {
	postRepository    repositories.PostRepository
	profileRepository repositories.ProfileRepository
	likeRepository    repositories.LikeRepository
	commentRepository repositories.CommentRepository
	shareRepository   repositories.ShareRepository
}

// NewFeedHandler creates a new FeedHandler
func NewFeedHandler(
	postRepo repositories.PostRepository,
	profileRepo repositories.ProfileRepository,
	likeRepo repositories.LikeRepository,
	commentRepo repositories.CommentRepository,
	shareRepo repositories.ShareRepository,
) *FeedHandler {
	return &FeedHandler{
		postRepository:    postRepo,
		profileRepository: profileRepo,
		likeRepository:    likeRepo,
		commentRepository: commentRepo,
		shareRepository:   shareRepo,
	}
}

// RegisterFeedRoutes registers feed-related routes
func (h *FeedHandler) RegisterFeedRoutes(g *echo.Group) {
	g.GET("/feed", h.GetFeed)
}

// FeedItem is a post with author info, counts and viewer-specific flags
type FeedItem struct {
	models.Post
	Author        models.ProfileCompact `json:"author"`
	LikesCount    int64                 `json:"likes_count"`
	CommentsCount int64                 `json:"comments_count"`
	IsLiked       bool                  `json:"is_liked"`
	IsShared      bool                  `json:"is_shared"`
}

// GetFeed returns the posts visible to the viewer, newest first. An
// anonymous viewer sees public posts only; the visibility predicate is
// applied inside the repository, never here.
func (h *FeedHandler) GetFeed(c echo.Context) error {
	viewerID := middleware.CurrentUserID(c)

	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 20
	}

	posts, err := h.postRepository.ListFeed(viewerID, (page-1)*limit, limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	totalItems, err := h.postRepository.CountFeed(viewerID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	postIDs := make([]uint, len(posts))
	authorIDs := make(map[uint]bool)
	for i, p := range posts {
		postIDs[i] = p.ID
		authorIDs[p.AuthorID] = true
	}

	authorMap := make(map[uint]models.ProfileCompact)
	for id := range authorIDs {
		profile, err := h.profileRepository.GetProfileByID(id)
		if err == nil {
			authorMap[id] = profile.ToCompact()
		}
	}

	likedMap := make(map[uint]bool)
	sharedMap := make(map[uint]bool)
	if viewerID != repositories.AnonymousID {
		likedMap, _ = h.likeRepository.GetLikedPostIDs(viewerID, postIDs)
		sharedMap, _ = h.shareRepository.GetSharedPostIDs(viewerID, postIDs)
	}

	items := make([]FeedItem, len(posts))
	for i, p := range posts {
		likes, _ := h.likeRepository.GetLikesCountByPostID(p.ID)
		comments, _ := h.commentRepository.GetCommentsCountByPostID(p.ID)
		items[i] = FeedItem{
			Post:          p,
			Author:        authorMap[p.AuthorID],
			LikesCount:    likes,
			CommentsCount: comments,
			IsLiked:       likedMap[p.ID],
			IsShared:      sharedMap[p.ID],
		}
	}

	totalPages := int(math.Ceil(float64(totalItems) / float64(limit)))
	return c.JSON(http.StatusOK, echo.Map{
		"posts": items,
		"meta": echo.Map{
			"currentPage":  page,
			"totalPages":   totalPages,
			"totalItems":   totalItems,
			"itemsPerPage": limit,
		},
	})
}
