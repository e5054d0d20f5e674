package http

import (
	"github.com/gin-gonic/gin"

	"customer-service-chatbot/internal/model"
	"customer-service-chatbot/pkg/response"
)

// SendMessage godoc
// @Summary     Send a chat message
// @Description Classifies the utterance, routes it to the matching backend, and returns a grounded answer. A missing session_id starts a new session.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body sendMessageReq true "Message"
// @Success     200 {object} sendMessageResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat/messages [POST]
func (h *handler) SendMessage(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSendMessageReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	sc := model.Scope{SessionID: req.sessionID, RequestID: req.requestID}
	output, err := h.uc.Handle(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Handle: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newSendMessageResp(sc, output))
}

// History godoc
// @Summary     Get session history
// @Description Returns the recorded conversation for a session, oldest message first.
// @Tags        Chat
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} historyResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/chat/sessions/{id}/history [GET]
func (h *handler) History(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processSessionScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.History(ctx, sc)
	if err != nil {
		h.l.Warnf(ctx, "uc.History: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newHistoryResp(sc, output))
}

// ClearHistory godoc
// @Summary     Clear session history
// @Description Resets one session's conversation. Other sessions are unaffected.
// @Tags        Chat
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/chat/sessions/{id}/history [DELETE]
func (h *handler) ClearHistory(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processSessionScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.ClearHistory(ctx, sc); err != nil {
		h.l.Warnf(ctx, "uc.ClearHistory: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, nil)
}

// Status godoc
// @Summary     Component status
// @Description Reports per-component health: response generator, guide retriever, contract database, and session memory.
// @Tags        Chat
// @Produce     json
// @Success     200 {object} statusResp
// @Router      /api/v1/chat/status [GET]
func (h *handler) Status(c *gin.Context) {
	ctx := c.Request.Context()

	output := h.uc.Status(ctx)

	response.OK(c, h.newStatusResp(output))
}
