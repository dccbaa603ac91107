package handlers

import (
	"errors"
	"net/http"

	"github.com/campusgig/platform-go/response"
	"github.com/campusgig/platform-go/services"
	"github.com/gin-gonic/gin"
)

// respondError maps service sentinels onto HTTP status codes.
func respondError(c *gin.Context, err error) {
	var gwErr *services.GatewayError

	switch {
	case errors.Is(err, services.ErrUnauthorized):
		c.JSON(http.StatusForbidden, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrGigNotFound),
		errors.Is(err, services.ErrApplicantNotFound),
		errors.Is(err, services.ErrReviewNotFound),
		errors.Is(err, services.ErrUserNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrAlreadyApplied),
		errors.Is(err, services.ErrAlreadyDecided),
		errors.Is(err, services.ErrAlreadyReviewed),
		errors.Is(err, services.ErrConflict):
		c.JSON(http.StatusConflict, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrInvalidState),
		errors.Is(err, services.ErrInvalidRating),
		errors.Is(err, services.ErrInvalidCurrency):
		c.JSON(http.StatusUnprocessableEntity, response.ErrorResponse{Error: err.Error()})
	case errors.As(err, &gwErr):
		c.JSON(http.StatusBadGateway, response.ErrorResponse{Error: gwErr.Error()})
	default:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
	}
}
