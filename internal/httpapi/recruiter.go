package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *handler) startChat(c *gin.Context) {
	c.JSON(http.StatusOK, h.chat.Start(c.Request.Context(), sessionState(c).User.ID))
}

func (h *handler) chatHistory(c *gin.Context) {
	msgs, err := h.chat.History(sessionState(c).User.ID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, msgs)
}

type chatRequest struct {
	Text string `json:"text"`
}

func (h *handler) sendChat(c *gin.Context) {
	var req chatRequest
	if !bind(c, &req) {
		return
	}
	msgs, err := h.chat.Send(c.Request.Context(), sessionState(c).User.ID, req.Text)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, msgs)
}

func (h *handler) endChat(c *gin.Context) {
	h.chat.End(c.Request.Context(), sessionState(c).User.ID)
	c.Status(http.StatusNoContent)
}
