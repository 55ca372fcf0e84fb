package handlers

import (
	"errors"
	"net/http"

	"phonebook-service/internal/core/domain"

	"github.com/gin-gonic/gin"
)

func mapDomainError(c *gin.Context, err error) {
	switch {
	// Not found errors
	case errors.Is(err, domain.ErrContactNotFound),
		errors.Is(err, domain.ErrPhoneNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	// Conflict errors
	case errors.Is(err, domain.ErrContactNameConflict),
		errors.Is(err, domain.ErrDuplicatePhone):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})

	// Bad request / validation errors
	case errors.Is(err, domain.ErrInvalidContactName),
		errors.Is(err, domain.ErrInvalidContactID),
		errors.Is(err, domain.ErrInvalidPhoneNumber):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
