package gateway

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSign(t *testing.T) {
	body := []byte(`{"order_id":"ref-1"}`)

	sig := Sign(body, "secret")
	assert.Len(t, sig, 32)
	assert.Equal(t, sig, Sign(body, "secret"), "signature must be deterministic")
	assert.NotEqual(t, sig, Sign(body, "other-key"))
	assert.NotEqual(t, sig, Sign([]byte(`{"order_id":"ref-2"}`), "secret"))
}

func TestHTTPGateway_CreateIntent(t *testing.T) {
	var gotSign, gotMerchant string
	var gotBody []byte

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/checkout", r.URL.Path)
		gotSign = r.Header.Get("sign")
		gotMerchant = r.Header.Get("merchant")

		var err error
		gotBody, err = io.ReadAll(r.Body)
		assert.NoError(t, err)

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"result":{"url":"https://pay.example.com/abc","uuid":"abc"}}`))
	}))
	defer srv.Close()

	gw := NewHTTPGateway(srv.URL, "apikey", "merchant-1")
	md := Metadata{GigID: 1, ClientID: 3, StudentID: 7, Reference: "ref-1"}

	intent, err := gw.CreateIntent(context.Background(), 1000000, "INR", "Gig #1", md)
	assert.NoError(t, err)
	assert.Equal(t, "ref-1", intent.Reference)
	assert.Equal(t, "https://pay.example.com/abc", intent.CheckoutURL)
	assert.Equal(t, "merchant-1", gotMerchant)
	assert.Equal(t, Sign(gotBody, "apikey"), gotSign, "request must carry a signature over the exact body")

	var payload map[string]interface{}
	assert.NoError(t, json.Unmarshal(gotBody, &payload))
	assert.Equal(t, "ref-1", payload["order_id"])
}

func TestHTTPGateway_CreateIntentServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"down"}`))
	}))
	defer srv.Close()

	gw := NewHTTPGateway(srv.URL, "apikey", "merchant-1")
	_, err := gw.CreateIntent(context.Background(), 100, "INR", "x", Metadata{Reference: "ref"})
	assert.Error(t, err)
}
