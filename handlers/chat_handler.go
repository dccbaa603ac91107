package handlers

import (
	"errors"
	"net/http"

	"github.com/campusgig/platform-go/dto"
	"github.com/campusgig/platform-go/response"
	"github.com/campusgig/platform-go/services"
	"github.com/campusgig/platform-go/utils"
	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	svc *services.ChatService
}

func NewChatHandler(svc *services.ChatService) *ChatHandler {
	return &ChatHandler{svc: svc}
}

// ListThreads godoc
// @Summary List the caller's chat threads
// @Tags chat
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.ChatThread
// @Router /chat/threads [get]
func (h *ChatHandler) ListThreads(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "unauthorized"})
		return
	}

	threads, err := h.svc.ListThreads(uid)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, threads)
}

// ListMessages godoc
// @Summary List messages in a thread
// @Tags chat
// @Security BearerAuth
// @Produce json
// @Param id path string true "Thread ID"
// @Success 200 {array} models.ChatMessage
// @Router /chat/threads/{id}/messages [get]
func (h *ChatHandler) ListMessages(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "unauthorized"})
		return
	}

	msgs, err := h.svc.ListMessages(c.Param("id"), uid, 0)
	if err != nil {
		if errors.Is(err, services.ErrNotParticipant) {
			c.JSON(http.StatusForbidden, response.ErrorResponse{Error: err.Error()})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, msgs)
}

// SendMessage godoc
// @Summary Send a chat message to another user
// @Tags chat
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path uint true "Peer user ID"
// @Param input body dto.SendMessageDTO true "Message body"
// @Success 201 {object} models.ChatMessage
// @Router /chat/with/{id}/messages [post]
func (h *ChatHandler) SendMessage(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "unauthorized"})
		return
	}
	peerID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid peer id"})
		return
	}

	var input dto.SendMessageDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	msg, err := h.svc.SendMessage(uid, peerID, input.Body)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, msg)
}
