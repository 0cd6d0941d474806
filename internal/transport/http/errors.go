package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/iamasit07/5-in-a-row/backend/internal/domain"
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrMatchNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrCellOccupied),
		errors.Is(err, domain.ErrNotYourTurn),
		errors.Is(err, domain.ErrGameFinished):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidColor),
		errors.Is(err, domain.ErrUnknownTier),
		errors.Is(err, domain.ErrOutOfRange),
		errors.Is(err, domain.ErrInvalidMove),
		errors.Is(err, domain.ErrInvalidBoard):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	_ = c.Error(err)
	if status == http.StatusInternalServerError {
		c.JSON(status, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
