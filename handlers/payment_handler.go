package handlers

import (
	"io"
	"net/http"

	"github.com/campusgig/platform-go/config"
	"github.com/campusgig/platform-go/gateway"
	"github.com/campusgig/platform-go/response"
	"github.com/campusgig/platform-go/services"
	"github.com/campusgig/platform-go/utils"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"encoding/json"
)

type PaymentHandler struct {
	svc *services.PaymentService
}

func NewPaymentHandler(svc *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{svc: svc}
}

// InitiatePayment godoc
// @Summary Open a payment checkout for an in-progress gig
// @Tags payments
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Gig ID"
// @Success 201 {object} response.PaymentIntentResponse
// @Failure 422 {object} response.ErrorResponse "Gig not payable"
// @Failure 502 {object} response.ErrorResponse "Gateway error"
// @Router /gigs/{id}/payment [post]
func (h *PaymentHandler) InitiatePayment(c *gin.Context) {
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

	intent, gwIntent, err := h.svc.InitiatePayment(c.Request.Context(), gigID, clientID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.PaymentIntentResponse{
		Reference:   intent.Reference,
		CheckoutURL: gwIntent.CheckoutURL,
		AmountMinor: intent.AmountMinor,
		Currency:    intent.Currency,
	})
}

// Webhook godoc
// @Summary Payment gateway callback
// @Tags payments
// @Accept json
// @Produce json
// @Success 200 {object} response.MessageResponse
// @Failure 401 {object} response.ErrorResponse "Bad signature"
// @Router /payments/webhook [post]
func (h *PaymentHandler) Webhook(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "unreadable body"})
		return
	}

	if c.GetHeader("sign") != gateway.Sign(body, config.GatewayAPIKey) {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "invalid signature"})
		return
	}

	var payload gateway.WebhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "malformed payload"})
		return
	}
	// The gateway echoes the reference both at the top level and inside
	// the metadata we handed it; the two must agree.
	if payload.Metadata.Reference != payload.Reference {
		logrus.WithField("reference", payload.Reference).Warn("rejected payment callback: reference mismatch")
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "reference mismatch"})
		return
	}

	intent, err := h.svc.VerifyCallback(payload.Metadata)
	if err != nil {
		logrus.WithField("reference", payload.Reference).WithError(err).Warn("rejected payment callback")
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	switch payload.Status {
	case "paid":
		if _, err := h.svc.OnPaymentConfirmed(intent.GigID, intent.StudentID, intent.Reference); err != nil {
			respondError(c, err)
			return
		}
	case "failed":
		// Reported to the paying client out of band; the webhook
		// itself just acknowledges.
		_ = h.svc.OnPaymentFailed(intent.GigID, intent.Reference, payload.ErrorCode, payload.ErrorText)
	default:
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "unknown status"})
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: "ok"})
}

// ListTransactions godoc
// @Summary List transactions for a gig with derived commission and net
// @Tags payments
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Gig ID"
// @Success 200 {array} response.TransactionResponse
// @Router /gigs/{id}/transactions [get]
func (h *PaymentHandler) ListTransactions(c *gin.Context) {
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

	txns, err := h.svc.ListTransactions(gigID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]response.TransactionResponse, 0, len(txns))
	for _, txn := range txns {
		out = append(out, response.TransactionResponse{
			Transaction: txn,
			Commission:  h.svc.Commission(txn.Amount).String(),
			Net:         h.svc.Net(txn.Amount).String(),
		})
	}
	c.JSON(http.StatusOK, out)
}
