package api

import (
	"errors"
	"net/http"

	"laundromat-api/internal/handler/httperr"
	"laundromat-api/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errMissingUser = errors.New("authenticated user missing from context")

// requireUser reads the user set by the auth middleware.
func requireUser(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingUser, "Unauthorized", nil)
	}
	return userID, ok
}

func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return uuid.Nil, false
	}
	return id, true
}
