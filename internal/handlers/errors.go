package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/okabanov/socialite/internal/repositories"
)

// repoError maps repository errors onto HTTP status codes: ownership and
// recipient violations to 403, duplicate constraints to 409, missing records
// to 404. Everything else is a store failure and surfaces as 500.
func repoError(err error) error {
	switch {
	case repositories.IsNotFound(err),
		errors.Is(err, repositories.ErrEdgeNotFound),
		errors.Is(err, repositories.ErrLikeNotFound),
		errors.Is(err, repositories.ErrShareNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, repositories.ErrNotOwner),
		errors.Is(err, repositories.ErrNotRecipient):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, repositories.ErrDuplicateEdge),
		errors.Is(err, repositories.ErrAlreadyFriends),
		errors.Is(err, repositories.ErrAlreadyLiked),
		errors.Is(err, repositories.ErrAlreadyShared):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, repositories.ErrSelfRequest):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
