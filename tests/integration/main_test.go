package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/campusgig/platform-go/config"
	"github.com/campusgig/platform-go/db"
	"github.com/campusgig/platform-go/gateway"
	"github.com/campusgig/platform-go/internal/testutils"
	"github.com/campusgig/platform-go/middleware"
	"github.com/campusgig/platform-go/response"
	"github.com/campusgig/platform-go/routes"

	_ "github.com/lib/pq"
)

var router *gin.Engine

// stubGateway stands in for the payment provider: every checkout
// succeeds immediately with a local URL.
type stubGateway struct {
	mu      sync.Mutex
	intents []gateway.Metadata
}

func (g *stubGateway) CreateIntent(ctx context.Context, amountMinor int64, currency, description string, md gateway.Metadata) (gateway.Intent, error) {
	g.mu.Lock()
	g.intents = append(g.intents, md)
	g.mu.Unlock()
	return gateway.Intent{Reference: md.Reference, CheckoutURL: "http://gateway.test/" + md.Reference}, nil
}

func TestMain(m *testing.M) {
	sqlDB, cleanup := testutils.SetupPostgresForIntegration()
	defer cleanup()

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: sqlDB,
	}), &gorm.Config{
		TranslateError: true,
		Logger: logger.New(
			log.New(io.Discard, "", log.LstdFlags),
			logger.Config{
				SlowThreshold:             time.Second,
				LogLevel:                  logger.Silent,
				IgnoreRecordNotFoundError: true,
				Colorful:                  false,
			},
		),
	})
	if err != nil {
		log.Fatal(err)
	}
	config.LoadConfig()
	middleware.Init()
	db.InitWithGormDB(gormDB)
	db.Migrate()

	gin.SetMode(gin.TestMode)
	router = gin.New()
	routes.RegisterRoutesWithGateway(router, &stubGateway{})

	code := m.Run()
	os.Exit(code)
}

// --- Helper functions ---

func doRequest(t *testing.T, method, path, token string, body interface{}, expectStatus int) *httptest.ResponseRecorder {
	var req *http.Request

	if body == nil {
		req = httptest.NewRequest(method, path, nil)
	} else {
		reqBody, err := json.Marshal(body)
		require.NoError(t, err)
		req = httptest.NewRequest(method, path, bytes.NewBuffer(reqBody))
		req.Header.Set("Content-Type", "application/json")
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if expectStatus != 0 {
		require.Equal(t, expectStatus, w.Code,
			fmt.Sprintf("expected %d, got %d, body=%s", expectStatus, w.Code, w.Body.String()))
	}

	return w
}

func registerAndLogin(t *testing.T, username, role string, skills []string) (uint, string) {
	reg := map[string]interface{}{
		"username": username,
		"password": "123456",
		"role":     role,
	}
	if len(skills) > 0 {
		reg["skills"] = skills
	}
	doRequest(t, "POST", "/register", "", reg, http.StatusCreated)

	w := doRequest(t, "POST", "/login", "", map[string]string{
		"username": username,
		"password": "123456",
	}, http.StatusOK)

	var tok response.TokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tok))
	require.NotEmpty(t, tok.Token)
	return tok.UID, tok.Token
}

// signedWebhook posts a gateway callback with a valid signature.
func signedWebhook(t *testing.T, payload gateway.WebhookPayload, expectStatus int) *httptest.ResponseRecorder {
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/payments/webhook", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("sign", gateway.Sign(body, config.GatewayAPIKey))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, expectStatus, w.Code, "webhook body=%s", w.Body.String())
	return w
}
