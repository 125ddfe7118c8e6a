package mpesa

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartque/smartque-api/internal/config"
)

func TestTimestamp(t *testing.T) {
	at := time.Date(2026, 9, 1, 14, 5, 9, 0, time.UTC)
	assert.Equal(t, "20260901140509", Timestamp(at))
}

func TestPassword(t *testing.T) {
	got := Password("174379", "passkey", "20260901140509")

	decoded, err := base64.StdEncoding.DecodeString(got)
	require.NoError(t, err)
	assert.Equal(t, "174379passkey20260901140509", string(decoded))
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func testClient(baseURL string) *Client {
	return NewClient(&config.Config{
		MpesaBaseURL:        baseURL,
		MpesaConsumerKey:    "key",
		MpesaConsumerSecret: "secret",
		MpesaShortcode:      "174379",
		MpesaPasskey:        "passkey",
		MpesaCallbackURL:    "https://example.com/api/payments/mpesa/callback",
	}, quietLogger())
}

func TestSTKPush(t *testing.T) {
	var pushBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/oauth/v1/generate":
			user, pass, ok := r.BasicAuth()
			require.True(t, ok)
			assert.Equal(t, "key", user)
			assert.Equal(t, "secret", pass)
			json.NewEncoder(w).Encode(map[string]string{
				"access_token": "token-123",
				"expires_in":   "3599",
			})
		case "/mpesa/stkpush/v1/processrequest":
			assert.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&pushBody))
			json.NewEncoder(w).Encode(map[string]string{
				"MerchantRequestID":   "mr-1",
				"CheckoutRequestID":   "cr-1",
				"ResponseCode":        "0",
				"ResponseDescription": "Success. Request accepted for processing",
				"CustomerMessage":     "Success. Request accepted for processing",
			})
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	client := testClient(srv.URL)

	resp, err := client.STKPush(context.Background(), STKPushInput{
		Amount:      1500.4,
		PhoneNumber: "254712345678",
	})
	require.NoError(t, err)

	assert.Equal(t, "cr-1", resp.CheckoutRequestID)
	assert.Equal(t, "mr-1", resp.MerchantRequestID)

	// Daraja takes whole shillings; amounts round to nearest.
	assert.Equal(t, float64(1500), pushBody["Amount"])
	assert.Equal(t, "174379", pushBody["BusinessShortCode"])
	assert.Equal(t, "CustomerPayBillOnline", pushBody["TransactionType"])
	assert.Equal(t, "254712345678", pushBody["PartyA"])
	assert.Equal(t, "SmarTQue", pushBody["AccountReference"])
	assert.Equal(t, "Appointment Payment", pushBody["TransactionDesc"])
}

func TestSTKPushRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/oauth/v1/generate" {
			json.NewEncoder(w).Encode(map[string]string{
				"access_token": "token-123",
				"expires_in":   "3599",
			})
			return
		}
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{
			"errorCode":    "500.001.1001",
			"errorMessage": "Unable to lock subscriber",
		})
	}))
	defer srv.Close()

	client := testClient(srv.URL)

	_, err := client.STKPush(context.Background(), STKPushInput{
		Amount:      100,
		PhoneNumber: "254712345678",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unable to lock subscriber")
}

func TestSTKPushUnconfigured(t *testing.T) {
	client := NewClient(&config.Config{}, quietLogger())

	_, err := client.STKPush(context.Background(), STKPushInput{
		Amount:      100,
		PhoneNumber: "254712345678",
	})
	require.Error(t, err)
}

func TestAccessTokenCached(t *testing.T) {
	var tokenCalls int

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/oauth/v1/generate" {
			tokenCalls++
			json.NewEncoder(w).Encode(map[string]string{
				"access_token": "token-123",
				"expires_in":   "3599",
			})
			return
		}
		json.NewEncoder(w).Encode(map[string]string{
			"MerchantRequestID": "mr",
			"CheckoutRequestID": "cr",
			"ResponseCode":      "0",
		})
	}))
	defer srv.Close()

	client := testClient(srv.URL)

	in := STKPushInput{Amount: 50, PhoneNumber: "254712345678"}
	_, err := client.STKPush(context.Background(), in)
	require.NoError(t, err)
	_, err = client.STKPush(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, 1, tokenCalls)
}
