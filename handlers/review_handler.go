package handlers

import (
	"net/http"

	"github.com/campusgig/platform-go/dto"
	"github.com/campusgig/platform-go/response"
	"github.com/campusgig/platform-go/services"
	"github.com/campusgig/platform-go/utils"
	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	svc *services.ReviewService
}

func NewReviewHandler(svc *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{svc: svc}
}

// SubmitReview godoc
// @Summary Rate the student on a completed gig
// @Tags reviews
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path uint true "Gig ID"
// @Param input body dto.SubmitReviewDTO true "Rating and comment"
// @Success 201 {object} models.Review
// @Failure 409 {object} response.ErrorResponse "Already reviewed"
// @Router /gigs/{id}/reviews [post]
func (h *ReviewHandler) SubmitReview(c *gin.Context) {
	gigID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid gig id"})
		return
	}
	clientID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "unauthorized"})
		return
	}

	var input dto.SubmitReviewDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	review, _, err := h.svc.SubmitReview(gigID, clientID, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, review)
}

// Reply godoc
// @Summary Reply to a review (repeat calls overwrite the reply)
// @Tags reviews
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path uint true "Review ID"
// @Param input body dto.ReplyDTO true "Reply text"
// @Success 200 {object} models.Review
// @Router /reviews/{id}/reply [post]
func (h *ReviewHandler) Reply(c *gin.Context) {
	reviewID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid review id"})
		return
	}
	studentID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "unauthorized"})
		return
	}

	var input dto.ReplyDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	review, err := h.svc.ReplyToReview(reviewID, studentID, input.Text)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, review)
}

// ListForStudent godoc
// @Summary List reviews received by a student
// @Tags reviews
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Student ID"
// @Success 200 {array} models.Review
// @Router /users/{id}/reviews [get]
func (h *ReviewHandler) ListForStudent(c *gin.Context) {
	studentID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid user id"})
		return
	}

	reviews, err := h.svc.ListByStudent(studentID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}
