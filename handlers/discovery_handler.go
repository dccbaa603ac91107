package handlers

import (
	"net/http"

	"github.com/campusgig/platform-go/dto"
	"github.com/campusgig/platform-go/response"
	"github.com/campusgig/platform-go/services"
	"github.com/campusgig/platform-go/utils"
	"github.com/gin-gonic/gin"
)

type DiscoveryHandler struct {
	svc *services.DiscoveryService
}

func NewDiscoveryHandler(svc *services.DiscoveryService) *DiscoveryHandler {
	return &DiscoveryHandler{svc: svc}
}

// ListOpenGigs godoc
// @Summary Ranked open gigs for the viewing student
// @Tags discovery
// @Security BearerAuth
// @Produce json
// @Param skills query []string false "Skill filter"
// @Param min query string false "Minimum net payout"
// @Param max query string false "Maximum net payout"
// @Success 200 {array} models.Gig
// @Router /discovery/gigs [get]
func (h *DiscoveryHandler) ListOpenGigs(c *gin.Context) {
	studentID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "unauthorized"})
		return
	}

	var filter dto.DiscoveryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	gigs, err := h.svc.ListOpenGigs(studentID, filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gigs)
}
