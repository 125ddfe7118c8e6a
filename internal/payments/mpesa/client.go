// Package mpesa talks to the Safaricom Daraja API: OAuth client-credentials
// token plus the Lipa na M-Pesa STK push.
package mpesa

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/smartque/smartque-api/internal/config"
	"github.com/smartque/smartque-api/internal/httperr"
)

type Client struct {
	httpClient *http.Client
	log        *logrus.Logger

	baseURL        string
	consumerKey    string
	consumerSecret string
	shortcode      string
	passkey        string
	callbackURL    string

	mu       sync.Mutex
	token    string
	tokenExp time.Time
}

func NewClient(cfg *config.Config, log *logrus.Logger) *Client {
	return &Client{
		httpClient:     &http.Client{Timeout: 30 * time.Second},
		log:            log,
		baseURL:        cfg.MpesaBaseURL,
		consumerKey:    cfg.MpesaConsumerKey,
		consumerSecret: cfg.MpesaConsumerSecret,
		shortcode:      cfg.MpesaShortcode,
		passkey:        cfg.MpesaPasskey,
		callbackURL:    cfg.MpesaCallbackURL,
	}
}

// Configured reports whether the gateway credentials are present.
func (c *Client) Configured() bool {
	return c.consumerKey != "" && c.consumerSecret != "" &&
		c.shortcode != "" && c.passkey != ""
}

// Timestamp is Daraja's YYYYMMDDHHMMSS format.
func Timestamp(t time.Time) string {
	return t.Format("20060102150405")
}

// Password is base64(shortcode + passkey + timestamp).
func Password(shortcode, passkey, timestamp string) string {
	return base64.StdEncoding.EncodeToString(
		[]byte(shortcode + passkey + timestamp),
	)
}

// --------------------------------------------------
// OAuth
// --------------------------------------------------

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   string `json:"expires_in"`
}

func (c *Client) accessToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && time.Now().Before(c.tokenExp) {
		return c.token, nil
	}

	url := c.baseURL + "/oauth/v1/generate?grant_type=client_credentials"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(c.consumerKey, c.consumerSecret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("mpesa token request: %w", err)
	}
	defer resp.Body.Close()

	var tr tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return "", fmt.Errorf("mpesa token decode: %w", err)
	}
	if resp.StatusCode != http.StatusOK || tr.AccessToken == "" {
		return "", fmt.Errorf("mpesa token request failed: status %d", resp.StatusCode)
	}

	ttl := int64(3599)
	if n, err := strconv.ParseInt(tr.ExpiresIn, 10, 64); err == nil && n > 0 {
		ttl = n
	}

	c.token = tr.AccessToken
	// renew a little early
	c.tokenExp = time.Now().Add(time.Duration(ttl-30) * time.Second)

	return c.token, nil
}

// --------------------------------------------------
// STK Push
// --------------------------------------------------

type STKPushInput struct {
	Amount           float64
	PhoneNumber      string
	AccountReference string
	TransactionDesc  string
}

type STKPushResponse struct {
	MerchantRequestID   string `json:"MerchantRequestID"`
	CheckoutRequestID   string `json:"CheckoutRequestID"`
	ResponseCode        string `json:"ResponseCode"`
	ResponseDescription string `json:"ResponseDescription"`
	CustomerMessage     string `json:"CustomerMessage"`

	ErrorCode    string `json:"errorCode"`
	ErrorMessage string `json:"errorMessage"`
}

func (c *Client) STKPush(ctx context.Context, in STKPushInput) (*STKPushResponse, error) {
	if !c.Configured() {
		return nil, httperr.ErrValidation("M-Pesa is not configured")
	}

	token, err := c.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	ts := Timestamp(time.Now())

	accountRef := in.AccountReference
	if accountRef == "" {
		accountRef = "SmarTQue"
	}
	desc := in.TransactionDesc
	if desc == "" {
		desc = "Appointment Payment"
	}

	payload := map[string]any{
		"BusinessShortCode": c.shortcode,
		"Password":          Password(c.shortcode, c.passkey, ts),
		"Timestamp":         ts,
		"TransactionType":   "CustomerPayBillOnline",
		"Amount":            int64(in.Amount + 0.5),
		"PartyA":            in.PhoneNumber,
		"PartyB":            c.shortcode,
		"PhoneNumber":       in.PhoneNumber,
		"CallBackURL":       c.callbackURL,
		"AccountReference":  accountRef,
		"TransactionDesc":   desc,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	url := c.baseURL + "/mpesa/stkpush/v1/processrequest"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	c.log.WithFields(logrus.Fields{
		"phone":  in.PhoneNumber,
		"amount": in.Amount,
	}).Info("initiating mpesa stk push")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("mpesa stk push: %w", err)
	}
	defer resp.Body.Close()

	var out STKPushResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("mpesa stk push decode: %w", err)
	}

	if resp.StatusCode != http.StatusOK || out.ResponseCode != "0" {
		msg := out.ErrorMessage
		if msg == "" {
			msg = out.ResponseDescription
		}
		if msg == "" {
			msg = "M-Pesa STK push failed"
		}
		return nil, fmt.Errorf("mpesa stk push rejected: %s", msg)
	}

	return &out, nil
}
