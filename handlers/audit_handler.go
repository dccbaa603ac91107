package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/campusgig/platform-go/repositories"
	"github.com/campusgig/platform-go/response"
	"github.com/campusgig/platform-go/services"
	"github.com/campusgig/platform-go/utils"
	"github.com/gin-gonic/gin"
)

type AuditHandler struct {
	svc *services.AuditService
}

func NewAuditHandler(svc *services.AuditService) *AuditHandler {
	return &AuditHandler{svc: svc}
}

// GetAuditLogs godoc
// @Summary Query audit logs (admin only)
// @Tags audit
// @Security BearerAuth
// @Produce json
// @Param resource_type query string false "Resource type"
// @Param action query string false "Action"
// @Param limit query int false "Limit"
// @Param offset query int false "Offset"
// @Success 200 {array} models.AuditLog
// @Router /audit/logs [get]
func (h *AuditHandler) GetAuditLogs(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil || claims.Role != "admin" {
		c.JSON(http.StatusForbidden, response.ErrorResponse{Error: "admin only"})
		return
	}

	var params repositories.AuditQueryParams
	if v := c.Query("resource_type"); v != "" {
		params.ResourceType = &v
	}
	if v := c.Query("action"); v != "" {
		params.Action = &v
	}
	if v := c.Query("start"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			params.StartTime = &t
		}
	}
	if v := c.Query("end"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			params.EndTime = &t
		}
	}
	params.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "100"))
	params.Offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))

	logs, err := h.svc.Query(params)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}
