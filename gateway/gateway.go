package gateway

import (
	"bytes"
	"context"
	"crypto/md5"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Metadata identifies the gig/client/student triple a checkout was
// opened for. The provider echoes it back on callbacks so webhooks can
// be verified against the intent they originated from.
type Metadata struct {
	GigID     uint   `json:"gig_id"`
	ClientID  uint   `json:"client_id"`
	StudentID uint   `json:"student_id"`
	Reference string `json:"reference"`
}

type Intent struct {
	Reference   string
	CheckoutURL string
}

type Gateway interface {
	CreateIntent(ctx context.Context, amountMinor int64, currency, description string, md Metadata) (Intent, error)
}

type HTTPGateway struct {
	baseURL    string
	apiKey     string
	merchantID string
	httpClient *http.Client
}

func NewHTTPGateway(baseURL, apiKey, merchantID string) *HTTPGateway {
	return &HTTPGateway{
		baseURL:    baseURL,
		apiKey:     apiKey,
		merchantID: merchantID,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (g *HTTPGateway) CreateIntent(ctx context.Context, amountMinor int64, currency, description string, md Metadata) (Intent, error) {
	payload := map[string]interface{}{
		"amount_minor": amountMinor,
		"currency":     currency,
		"description":  description,
		"order_id":     md.Reference,
		"metadata":     md,
	}

	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return Intent{}, fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", g.baseURL+"/checkout", bytes.NewReader(payloadJSON))
	if err != nil {
		return Intent{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("merchant", g.merchantID)
	req.Header.Set("sign", Sign(payloadJSON, g.apiKey))

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return Intent{}, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Intent{}, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return Intent{}, fmt.Errorf("gateway returned %d: %s", resp.StatusCode, string(body))
	}

	var result struct {
		Result struct {
			URL  string `json:"url"`
			UUID string `json:"uuid"`
		} `json:"result"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return Intent{}, fmt.Errorf("unmarshal response: %w", err)
	}

	return Intent{Reference: md.Reference, CheckoutURL: result.Result.URL}, nil
}

// Sign computes the provider's request/callback signature: md5 over
// the base64 of the body concatenated with the API key.
func Sign(body []byte, apiKey string) string {
	encoded := base64.StdEncoding.EncodeToString(body)
	sum := md5.Sum([]byte(encoded + apiKey))
	return hex.EncodeToString(sum[:])
}

// WebhookPayload is the callback body the provider posts on payment
// completion or failure.
type WebhookPayload struct {
	Status    string   `json:"status"` // "paid" or "failed"
	Reference string   `json:"order_id"`
	ErrorCode string   `json:"error_code,omitempty"`
	ErrorText string   `json:"error_text,omitempty"`
	Metadata  Metadata `json:"metadata"`
}
