package handlers

import (
	"errors"
	"net/http"

	"flowerdecor/database/repository"
	"flowerdecor/services/content"
	"flowerdecor/utils"

	"github.com/gin-gonic/gin"
)

// respondError maps service errors to the {error} body. Unknown errors become a 500
// with fallback as the message; details are only logged.
func respondError(c *gin.Context, err error, notFound, fallback string) {
	var vErr *content.ValidationError
	switch {
	case errors.As(err, &vErr):
		utils.JSONError(c, http.StatusBadRequest, vErr.Message, err)
	case errors.Is(err, repository.ErrInvalidID):
		utils.JSONError(c, http.StatusBadRequest, "Invalid ID", err)
	case errors.Is(err, repository.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, notFound, err)
	default:
		utils.JSONError(c, http.StatusInternalServerError, fallback, err)
	}
}
