package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/okabanov/socialite/internal/middleware"
	"github.com/okabanov/socialite/internal/models"
	"github.com/okabanov/socialite/internal/repositories"
)

// FriendHandler handles HTTP requests related to friend relationships
type FriendHandler struct {
	friendRepository       repositories.FriendRepository
	profileRepository      repositories.ProfileRepository
	notificationRepository repositories.NotificationRepository
}

// NewFriendHandler creates a new FriendHandler
func NewFriendHandler(
	friendRepo repositories.FriendRepository,
	profileRepo repositories.ProfileRepository,
	notificationRepo repositories.NotificationRepository,
) *FriendHandler {
	return &FriendHandler{
		friendRepository:       friendRepo,
		profileRepository:      profileRepo,
		notificationRepository: notificationRepo,
	}
}

// RegisterFriendRoutes registers friend-related routes (all authenticated)
func (h *FriendHandler) RegisterFriendRoutes(g *echo.Group) {
	g.POST("/friends/requests", h.SendFriendRequest)
	g.POST("/friends/requests/:id/accept", h.AcceptFriendRequest)
	g.GET("/friends/requests/received", h.GetPendingReceived)
	g.GET("/friends/requests/sent", h.GetPendingSent)
	g.GET("/friends", h.GetFriends)
	g.GET("/friends/status/:user_id", h.GetFriendStatus)
	g.DELETE("/friends/:user_id", h.RemoveFriend)
}

// SendFriendRequest creates a pending edge toward another user
func (h *FriendHandler) SendFriendRequest(c echo.Context) error {
	userID := middleware.CurrentUserID(c)

	var req models.CreateFriendRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if _, err := h.profileRepository.GetProfileByID(req.RecipientID); err != nil {
		if repositories.IsNotFound(err) {
			return echo.NewHTTPError(http.StatusNotFound, "Recipient not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	edge, err := h.friendRepository.SendRequest(userID, req.RecipientID)
	if err != nil {
		return repoError(err)
	}

	_ = h.notificationRepository.CreateNotification(&models.Notification{
		Type:        models.NotificationFriendRequest,
		ActorID:     userID,
		RecipientID: req.RecipientID,
		TargetID:    edge.ID,
		Message:     "sent you a friend request",
	})

	return c.JSON(http.StatusCreated, edge)
}

// AcceptFriendRequest transitions a pending edge to accepted; only the
// recipient may do so
func (h *FriendHandler) AcceptFriendRequest(c echo.Context) error {
	userID := middleware.CurrentUserID(c)
	edgeID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	edge, err := h.friendRepository.Accept(edgeID, userID)
	if err != nil {
		return repoError(err)
	}

	_ = h.notificationRepository.CreateNotification(&models.Notification{
		Type:        models.NotificationFriendAccept,
		ActorID:     userID,
		RecipientID: edge.RequesterID,
		TargetID:    edge.ID,
		Message:     "accepted your friend request",
	})

	return c.JSON(http.StatusOK, edge)
}

// GetPendingReceived lists the pending requests addressed to the caller
func (h *FriendHandler) GetPendingReceived(c echo.Context) error {
	userID := middleware.CurrentUserID(c)
	edges, err := h.friendRepository.ListPendingReceived(userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, edges)
}

// GetPendingSent lists the pending requests the caller has sent
func (h *FriendHandler) GetPendingSent(c echo.Context) error {
	userID := middleware.CurrentUserID(c)
	edges, err := h.friendRepository.ListPendingSent(userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, edges)
}

// GetFriends lists the caller's accepted friends
func (h *FriendHandler) GetFriends(c echo.Context) error {
	userID := middleware.CurrentUserID(c)
	friends, err := h.friendRepository.ListFriends(userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	results := make([]models.ProfileCompact, len(friends))
	for i, f := range friends {
		results[i] = f.ToCompact()
	}
	return c.JSON(http.StatusOK, results)
}

// GetFriendStatus reports the relationship state between the caller and
// another user
func (h *FriendHandler) GetFriendStatus(c echo.Context) error {
	userID := middleware.CurrentUserID(c)
	otherID, err := parseID(c, "user_id")
	if err != nil {
		return err
	}

	status, err := h.friendRepository.PairStatus(userID, otherID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"user_id": otherID, "status": status})
}

// RemoveFriend deletes the edge between the caller and another user. The
// same route covers cancelling a sent request, rejecting a received one and
// unfriending.
func (h *FriendHandler) RemoveFriend(c echo.Context) error {
	userID := middleware.CurrentUserID(c)
	otherID, err := parseID(c, "user_id")
	if err != nil {
		return err
	}

	if err := h.friendRepository.Remove(userID, otherID); err != nil {
		return repoError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
