package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"

	"github.com/campusgig/platform-go/dto"
	"github.com/campusgig/platform-go/minio"
	"github.com/campusgig/platform-go/models"
	"github.com/campusgig/platform-go/response"
	"github.com/campusgig/platform-go/services"
	"github.com/campusgig/platform-go/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	minioSDK "github.com/minio/minio-go/v7"
)

type GigHandler struct {
	svc       *services.GigService
	applicant *services.ApplicantService
}

func NewGigHandler(svc *services.GigService, applicant *services.ApplicantService) *GigHandler {
	return &GigHandler{svc: svc, applicant: applicant}
}

// CreateGig godoc
// @Summary Post a new gig
// @Tags gigs
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body dto.CreateGigDTO true "Gig details"
// @Success 201 {object} response.GigResponse
// @Failure 400 {object} response.ErrorResponse
// @Router /gigs [post]
func (h *GigHandler) CreateGig(c *gin.Context) {
	clientID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "unauthorized"})
		return
	}

	var input dto.CreateGigDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	gig, err := h.svc.CreateGig(clientID, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.GigResponse{Message: "Gig posted", Gig: gig})
}

// GetGig godoc
// @Summary Get a gig with its applicants
// @Tags gigs
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Gig ID"
// @Success 200 {object} models.Gig
// @Failure 404 {object} response.ErrorResponse
// @Router /gigs/{id} [get]
func (h *GigHandler) GetGig(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid gig id"})
		return
	}

	gig, err := h.svc.GetGig(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gig)
}

// UpdateGig godoc
// @Summary Edit an open gig
// @Tags gigs
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path uint true "Gig ID"
// @Param input body dto.UpdateGigDTO true "Fields to update"
// @Success 200 {object} response.GigResponse
// @Router /gigs/{id} [put]
func (h *GigHandler) UpdateGig(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid gig id"})
		return
	}
	clientID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "unauthorized"})
		return
	}

	var input dto.UpdateGigDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	gig, err := h.svc.UpdateGig(id, clientID, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.GigResponse{Message: "Gig updated", Gig: gig})
}

// CloseGig godoc
// @Summary Close an open gig
// @Tags gigs
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Gig ID"
// @Success 200 {object} response.GigResponse
// @Router /gigs/{id}/close [post]
func (h *GigHandler) CloseGig(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid gig id"})
		return
	}
	clientID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "unauthorized"})
		return
	}

	gig, err := h.svc.CloseGig(id, clientID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.GigResponse{Message: "Gig closed", Gig: gig})
}

// ListMyGigs godoc
// @Summary List gigs posted by the caller
// @Tags gigs
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.Gig
// @Router /gigs/mine [get]
func (h *GigHandler) ListMyGigs(c *gin.Context) {
	clientID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "unauthorized"})
		return
	}

	gigs, err := h.svc.ListByClient(clientID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gigs)
}

// ListAppliedGigs godoc
// @Summary List gigs the caller has applied to
// @Tags gigs
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.Gig
// @Router /gigs/applied [get]
func (h *GigHandler) ListAppliedGigs(c *gin.Context) {
	studentID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "unauthorized"})
		return
	}

	gigs, err := h.svc.ListApplied(studentID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gigs)
}

// Apply godoc
// @Summary Apply to an open gig
// @Tags applicants
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path uint true "Gig ID"
// @Param input body dto.ApplyDTO false "Optional message"
// @Success 201 {object} models.Applicant
// @Failure 409 {object} response.ErrorResponse "Already applied"
// @Router /gigs/{id}/apply [post]
func (h *GigHandler) Apply(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid gig id"})
		return
	}
	studentID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "unauthorized"})
		return
	}

	// The body is optional, but a body that is present must parse.
	var input dto.ApplyDTO
	if err := c.ShouldBindJSON(&input); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid request body"})
		return
	}

	entry, err := h.applicant.Apply(id, studentID, input.Message)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// Decide godoc
// @Summary Accept or reject an applicant
// @Tags applicants
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path uint true "Gig ID"
// @Param studentId path uint true "Student ID"
// @Param input body dto.DecisionDTO true "Decision"
// @Success 200 {object} models.Gig
// @Failure 409 {object} response.ErrorResponse "Already decided"
// @Router /gigs/{id}/applicants/{studentId}/decision [post]
func (h *GigHandler) Decide(c *gin.Context) {
	gigID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid gig id"})
		return
	}
	studentID, err := utils.ParseIDParam(c, "studentId")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid student id"})
		return
	}
	clientID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "unauthorized"})
		return
	}

	var input dto.DecisionDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	gig, err := h.applicant.Decide(gigID, studentID, models.ApplicantStatus(input.Decision), clientID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gig)
}

// SubmitReport godoc
// @Summary Submit a progress report with an optional attachment
// @Tags reports
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path uint true "Gig ID"
// @Param seq formData int true "Checkpoint number"
// @Param note formData string false "Note"
// @Param file formData file false "Attachment"
// @Success 201 {object} models.ProgressReport
// @Router /gigs/{id}/reports [post]
func (h *GigHandler) SubmitReport(c *gin.Context) {
	gigID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid gig id"})
		return
	}
	studentID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "unauthorized"})
		return
	}

	var input dto.CreateReportDTO
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	attachmentURL := ""
	if file, err := c.FormFile("file"); err == nil {
		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "could not read attachment"})
			return
		}
		defer src.Close()

		objectName := fmt.Sprintf("gigs/%d/reports/%s%s", gigID, uuid.New().String(), filepath.Ext(file.Filename))
		_, err = minio.Client.PutObject(c.Request.Context(), minio.BucketName, objectName, src, file.Size,
			minioSDK.PutObjectOptions{ContentType: file.Header.Get("Content-Type")})
		if err != nil {
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "attachment upload failed"})
			return
		}
		attachmentURL = objectName
	}

	report, err := h.svc.SubmitReport(gigID, studentID, input.Seq, input.Note, attachmentURL)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, report)
}

// ListReports godoc
// @Summary List progress reports for a gig
// @Tags reports
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Gig ID"
// @Success 200 {array} models.ProgressReport
// @Router /gigs/{id}/reports [get]
func (h *GigHandler) ListReports(c *gin.Context) {
	gigID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid gig id"})
		return
	}
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "unauthorized"})
		return
	}

	reports, err := h.svc.ListReports(gigID, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reports)
}
