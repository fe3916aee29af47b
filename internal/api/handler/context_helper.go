package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/habstrakT808/Sistem-Manajemen-Project-BPS-sub003/internal/service"
	"github.com/habstrakT808/Sistem-Manajemen-Project-BPS-sub003/pkg/response"
)

// MustGetUserID extracts user_id injected by the JWT middleware. On
// failure it writes a 401 and the caller should return immediately.
func MustGetUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		response.Unauthorized(c, 10002, "unauthenticated")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "unauthenticated")
		return "", false
	}
	return s, true
}

// MustGetRole extracts the role injected by the JWT middleware.
func MustGetRole(c *gin.Context) (string, bool) {
	v, exists := c.Get("role")
	if !exists {
		response.Unauthorized(c, 10002, "unauthenticated")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "unauthenticated")
		return "", false
	}
	return s, true
}

// handleServiceError translates service error categories to HTTP
// responses. Uncategorized errors become opaque 500s.
func handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		response.BadRequest(c, 10001, err.Error())
	case errors.Is(err, service.ErrUnauthorized):
		response.Unauthorized(c, 10002, err.Error())
	case errors.Is(err, service.ErrForbidden):
		response.Forbidden(c, 10003, err.Error())
	case errors.Is(err, service.ErrNotFound):
		response.NotFound(c, 10006, err.Error())
	case errors.Is(err, service.ErrConflict):
		response.Conflict(c, 10007, err.Error())
	default:
		_ = c.Error(err)
		response.InternalError(c)
	}
}
