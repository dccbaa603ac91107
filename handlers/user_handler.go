package handlers

import (
	"net/http"

	"github.com/campusgig/platform-go/dto"
	"github.com/campusgig/platform-go/response"
	"github.com/campusgig/platform-go/services"
	"github.com/campusgig/platform-go/utils"
	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	svc *services.UserService
}

func NewUserHandler(svc *services.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// GetUser godoc
// @Summary Get a user profile
// @Tags users
// @Security BearerAuth
// @Produce json
// @Param id path uint true "User ID"
// @Success 200 {object} models.User
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid user id"})
		return
	}

	user, err := h.svc.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateUser godoc
// @Summary Update own profile
// @Tags users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path uint true "User ID"
// @Param input body dto.UpdateUserInput true "Fields to update"
// @Success 200 {object} models.User
// @Router /users/{id} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid user id"})
		return
	}
	callerID, err := utils.GetUserIDFromContext(c)
	if err != nil || callerID != id {
		c.JSON(http.StatusForbidden, response.ErrorResponse{Error: "may only edit own profile"})
		return
	}

	var input dto.UpdateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.svc.Update(id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// FollowClient godoc
// @Summary Follow a client to boost their gigs in discovery
// @Tags users
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Client ID"
// @Success 200 {object} response.MessageResponse
// @Router /clients/{id}/follow [post]
func (h *UserHandler) FollowClient(c *gin.Context) {
	clientID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid client id"})
		return
	}
	studentID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "unauthorized"})
		return
	}

	if err := h.svc.FollowClient(studentID, clientID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Client followed"})
}

// UnfollowClient godoc
// @Summary Unfollow a client
// @Tags users
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Client ID"
// @Success 200 {object} response.MessageResponse
// @Router /clients/{id}/follow [delete]
func (h *UserHandler) UnfollowClient(c *gin.Context) {
	clientID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid client id"})
		return
	}
	studentID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "unauthorized"})
		return
	}

	if err := h.svc.UnfollowClient(studentID, clientID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Client unfollowed"})
}

// BlockClient godoc
// @Summary Hide a client's gigs from discovery
// @Tags users
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Client ID"
// @Success 200 {object} response.MessageResponse
// @Router /clients/{id}/block [post]
func (h *UserHandler) BlockClient(c *gin.Context) {
	clientID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid client id"})
		return
	}
	studentID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "unauthorized"})
		return
	}

	if err := h.svc.BlockClient(studentID, clientID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Client blocked"})
}

// UnblockClient godoc
// @Summary Unhide a client's gigs
// @Tags users
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Client ID"
// @Success 200 {object} response.MessageResponse
// @Router /clients/{id}/block [delete]
func (h *UserHandler) UnblockClient(c *gin.Context) {
	clientID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid client id"})
		return
	}
	studentID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "unauthorized"})
		return
	}

	if err := h.svc.UnblockClient(studentID, clientID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Client unblocked"})
}
