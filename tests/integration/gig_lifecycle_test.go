package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/campusgig/platform-go/db"
	"github.com/campusgig/platform-go/gateway"
	"github.com/campusgig/platform-go/models"
	"github.com/campusgig/platform-go/response"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createGigForTest(t *testing.T, token, title string) models.Gig {
	w := doRequest(t, "POST", "/gigs", token, map[string]interface{}{
		"title":             title,
		"description":       "End to end exercise",
		"required_skills":   []string{"design"},
		"budget":            "10000.00",
		"currency":          "INR",
		"deadline":          time.Now().Add(30 * 24 * time.Hour).Format(time.RFC3339),
		"number_of_reports": 1,
	}, http.StatusCreated)

	var created response.GigResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.Equal(t, models.GigStatusOpen, created.Gig.Status)
	return created.Gig
}

func getGig(t *testing.T, token string, gigID uint) models.Gig {
	w := doRequest(t, "GET", fmt.Sprintf("/gigs/%d", gigID), token, nil, http.StatusOK)
	var gig models.Gig
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &gig))
	return gig
}

func TestGigLifecycle(t *testing.T) {
	clientID, clientToken := registerAndLogin(t, "lifecycle_client", "client", nil)
	studentID, studentToken := registerAndLogin(t, "lifecycle_student", "student", []string{"design"})
	otherID, otherToken := registerAndLogin(t, "lifecycle_other", "student", nil)

	gig := createGigForTest(t, clientToken, "Design a campus poster")

	// Applications while open.
	doRequest(t, "POST", fmt.Sprintf("/gigs/%d/apply", gig.GID), studentToken,
		map[string]string{"message": "I have done this before"}, http.StatusCreated)
	doRequest(t, "POST", fmt.Sprintf("/gigs/%d/apply", gig.GID), otherToken,
		map[string]string{"message": "pick me"}, http.StatusCreated)

	// A second application from the same student is rejected.
	doRequest(t, "POST", fmt.Sprintf("/gigs/%d/apply", gig.GID), studentToken,
		map[string]string{"message": "again"}, http.StatusConflict)

	// Rejecting is final.
	doRequest(t, "POST", fmt.Sprintf("/gigs/%d/applicants/%d/decision", gig.GID, otherID), clientToken,
		map[string]string{"decision": "rejected"}, http.StatusOK)
	doRequest(t, "POST", fmt.Sprintf("/gigs/%d/applicants/%d/decision", gig.GID, otherID), clientToken,
		map[string]string{"decision": "accepted"}, http.StatusConflict)

	// Only the owner decides.
	doRequest(t, "POST", fmt.Sprintf("/gigs/%d/applicants/%d/decision", gig.GID, studentID), studentToken,
		map[string]string{"decision": "accepted"}, http.StatusForbidden)

	// Accept moves the gig to in_progress and pins the student.
	w := doRequest(t, "POST", fmt.Sprintf("/gigs/%d/applicants/%d/decision", gig.GID, studentID), clientToken,
		map[string]string{"decision": "accepted"}, http.StatusOK)
	var accepted models.Gig
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &accepted))
	require.Equal(t, models.GigStatusInProgress, accepted.Status)
	require.NotNil(t, accepted.SelectedStudentID)
	require.Equal(t, studentID, *accepted.SelectedStudentID)

	// No further applications once the gig left open.
	_, lateToken := registerAndLogin(t, "lifecycle_late", "student", nil)
	doRequest(t, "POST", fmt.Sprintf("/gigs/%d/apply", gig.GID), lateToken,
		map[string]string{"message": "too late"}, http.StatusUnprocessableEntity)

	// The selected student files a progress report.
	form := url.Values{"seq": {"1"}, "note": {"first draft attached"}}
	req := httptest.NewRequest("POST", fmt.Sprintf("/gigs/%d/reports", gig.GID), strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+studentToken)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	// Payment checkout only for the owner.
	doRequest(t, "POST", fmt.Sprintf("/gigs/%d/payment", gig.GID), studentToken, nil, http.StatusForbidden)

	w = doRequest(t, "POST", fmt.Sprintf("/gigs/%d/payment", gig.GID), clientToken, nil, http.StatusCreated)
	var intent response.PaymentIntentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &intent))
	require.NotEmpty(t, intent.Reference)
	require.Equal(t, int64(1000000), intent.AmountMinor)
	require.Equal(t, "INR", intent.Currency)

	paidPayload := gateway.WebhookPayload{
		Status:    "paid",
		Reference: intent.Reference,
		Metadata: gateway.Metadata{
			Reference: intent.Reference,
			GigID:     gig.GID,
			ClientID:  clientID,
			StudentID: studentID,
		},
	}

	// Unsigned callbacks are rejected.
	rawBody, err := json.Marshal(paidPayload)
	require.NoError(t, err)
	unsigned := httptest.NewRequest("POST", "/payments/webhook", bytes.NewReader(rawBody))
	unsigned.Header.Set("Content-Type", "application/json")
	unsignedRec := httptest.NewRecorder()
	router.ServeHTTP(unsignedRec, unsigned)
	require.Equal(t, http.StatusUnauthorized, unsignedRec.Code)

	// Metadata must match the recorded intent.
	tampered := paidPayload
	tampered.Metadata.StudentID = otherID
	signedWebhook(t, tampered, http.StatusUnauthorized)

	// The metadata echo must carry the same reference as the top level.
	crossed := paidPayload
	crossed.Metadata.Reference = "someone-elses-reference"
	signedWebhook(t, crossed, http.StatusUnauthorized)

	// A valid confirmation completes the gig.
	signedWebhook(t, paidPayload, http.StatusOK)
	require.Equal(t, models.GigStatusCompleted, getGig(t, clientToken, gig.GID).Status)

	// Re-delivery is idempotent: still one transaction.
	signedWebhook(t, paidPayload, http.StatusOK)

	w = doRequest(t, "GET", fmt.Sprintf("/gigs/%d/transactions", gig.GID), clientToken, nil, http.StatusOK)
	var txns []response.TransactionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &txns))
	require.Len(t, txns, 1)
	require.Equal(t, models.TransactionStatusSucceeded, txns[0].Transaction.Status)
	require.True(t, txns[0].Transaction.Amount.Equal(decimal.RequireFromString("10000")))
	require.True(t, decimal.RequireFromString(txns[0].Commission).Equal(decimal.RequireFromString("200")))
	require.True(t, decimal.RequireFromString(txns[0].Net).Equal(decimal.RequireFromString("9800")))

	// Checkout is gone once the gig completed.
	doRequest(t, "POST", fmt.Sprintf("/gigs/%d/payment", gig.GID), clientToken, nil, http.StatusUnprocessableEntity)

	// Review the student once.
	w = doRequest(t, "POST", fmt.Sprintf("/gigs/%d/reviews", gig.GID), clientToken,
		map[string]interface{}{"rating": 5, "comment": "excellent"}, http.StatusCreated)
	var review models.Review
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &review))

	doRequest(t, "POST", fmt.Sprintf("/gigs/%d/reviews", gig.GID), clientToken,
		map[string]interface{}{"rating": 1, "comment": "changed my mind"}, http.StatusConflict)

	// The rating is folded into the student profile.
	w = doRequest(t, "GET", fmt.Sprintf("/users/%d", studentID), clientToken, nil, http.StatusOK)
	var student models.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &student))
	require.Equal(t, 1, student.TotalRatings)
	require.InDelta(t, 5.0, student.AverageRating, 0.001)

	// Replies may be edited, unlike ratings.
	doRequest(t, "POST", fmt.Sprintf("/reviews/%d/reply", review.ID), studentToken,
		map[string]string{"text": "thank you"}, http.StatusOK)
	w = doRequest(t, "POST", fmt.Sprintf("/reviews/%d/reply", review.ID), studentToken,
		map[string]string{"text": "thank you very much"}, http.StatusOK)
	var replied models.Review
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &replied))
	require.Equal(t, "thank you very much", *replied.StudentReply)

	// Only the reviewed student replies.
	doRequest(t, "POST", fmt.Sprintf("/reviews/%d/reply", review.ID), otherToken,
		map[string]string{"text": "not mine"}, http.StatusForbidden)

	// Decisions and the payment confirmation each left a system
	// message in the client/student thread.
	threadID := threadIDFor(clientID, studentID)
	require.Eventually(t, func() bool {
		w := doRequest(t, "GET", fmt.Sprintf("/chat/threads/%s/messages", threadID), studentToken, nil, 0)
		if w.Code != http.StatusOK {
			return false
		}
		var msgs []models.ChatMessage
		if err := json.Unmarshal(w.Body.Bytes(), &msgs); err != nil {
			return false
		}
		system := 0
		for _, msg := range msgs {
			if msg.System && msg.SenderID == models.SystemSenderID {
				system++
			}
		}
		return system >= 2
	}, 5*time.Second, 100*time.Millisecond)
}

func threadIDFor(a, b uint) string {
	if b < a {
		a, b = b, a
	}
	return fmt.Sprintf("chat-%d-%d", a, b)
}

func TestCloseOpenGig(t *testing.T) {
	_, clientToken := registerAndLogin(t, "close_client", "client", nil)
	gig := createGigForTest(t, clientToken, "Short lived gig")

	w := doRequest(t, "POST", fmt.Sprintf("/gigs/%d/close", gig.GID), clientToken, nil, http.StatusOK)
	var closed response.GigResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &closed))
	require.Equal(t, models.GigStatusClosed, closed.Gig.Status)

	// Closed gigs accept no applications and cannot be closed again.
	_, studentToken := registerAndLogin(t, "close_student", "student", nil)
	doRequest(t, "POST", fmt.Sprintf("/gigs/%d/apply", gig.GID), studentToken,
		map[string]string{"message": "hello"}, http.StatusUnprocessableEntity)
	doRequest(t, "POST", fmt.Sprintf("/gigs/%d/close", gig.GID), clientToken, nil, http.StatusUnprocessableEntity)
}

func TestDiscoveryRankingEndToEnd(t *testing.T) {
	followedID, followedToken := registerAndLogin(t, "disc_followed_client", "client", nil)
	_, otherClientToken := registerAndLogin(t, "disc_other_client", "client", nil)
	_, studentToken := registerAndLogin(t, "disc_student", "student", []string{"design"})

	followedGig := createGigForTest(t, followedToken, "Gig from followed client")
	skillGig := createGigForTest(t, otherClientToken, "Design needed")

	doRequest(t, "POST", fmt.Sprintf("/clients/%d/follow", followedID), studentToken, nil, http.StatusOK)

	w := doRequest(t, "GET", "/discovery/gigs", studentToken, nil, http.StatusOK)
	var ranked []models.Gig
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ranked))
	require.NotEmpty(t, ranked)

	// The followed client's gig precedes every other gig in the feed.
	followedPos, skillPos := -1, -1
	for i, g := range ranked {
		switch g.GID {
		case followedGig.GID:
			followedPos = i
		case skillGig.GID:
			skillPos = i
		}
	}
	require.NotEqual(t, -1, followedPos)
	require.NotEqual(t, -1, skillPos)
	require.Less(t, followedPos, skillPos)
}

func TestDuplicateKeyTranslation(t *testing.T) {
	review := models.Review{GigID: 999001, ClientID: 999002, StudentID: 999003, Rating: 5}
	require.NoError(t, db.DB.Create(&review).Error)

	dup := models.Review{GigID: 999001, ClientID: 999002, StudentID: 999003, Rating: 4}
	err := db.DB.Create(&dup).Error
	require.Error(t, err)
	// The driver's unique-violation must surface as gorm's sentinel so
	// the services can map it to a 409.
	require.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestApplyBodyValidation(t *testing.T) {
	_, clientToken := registerAndLogin(t, "applybody_client", "client", nil)
	_, studentToken := registerAndLogin(t, "applybody_student", "student", nil)
	gig := createGigForTest(t, clientToken, "Apply body validation")

	applyPath := fmt.Sprintf("/gigs/%d/apply", gig.GID)

	// A garbled body is rejected outright.
	req := httptest.NewRequest("POST", applyPath, strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+studentToken)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)

	// An empty body is fine, the message is optional.
	doRequest(t, "POST", applyPath, studentToken, nil, http.StatusCreated)
}
