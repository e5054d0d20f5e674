package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"customer-service-chatbot/internal/chat"
	"customer-service-chatbot/pkg/response"
)

// mapError translates domain errors into HTTP responses. Unknown errors
// become an opaque 500 so internals never leak to callers.
func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, chat.ErrEmptyUtterance), errors.Is(err, chat.ErrSessionRequired):
		response.Error(c, err)
	case errors.Is(err, chat.ErrSessionNotFound):
		response.NotFound(c, err)
	default:
		response.InternalError(c, err)
	}
}
