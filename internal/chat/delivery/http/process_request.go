package http

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"customer-service-chatbot/internal/chat"
	"customer-service-chatbot/internal/model"
)

// processSendMessageReq binds and validates the send message request body.
// A missing session_id mints a fresh one so the first message of a
// conversation needs no prior setup call.
func (h *handler) processSendMessageReq(c *gin.Context) (sendMessageReq, error) {
	var req sendMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	if strings.TrimSpace(req.Message) == "" {
		return req, chat.ErrEmptyUtterance
	}

	req.sessionID = strings.TrimSpace(req.SessionID)
	if req.sessionID == "" {
		req.sessionID = uuid.NewString()
	}
	req.requestID = uuid.NewString()

	return req, nil
}

// processSessionScope extracts the session id from the URI.
func (h *handler) processSessionScope(c *gin.Context) (model.Scope, error) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return model.Scope{}, chat.ErrSessionRequired
	}
	return model.Scope{SessionID: id, RequestID: uuid.NewString()}, nil
}
