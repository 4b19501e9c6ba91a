package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"tripgenie/internal/domain"
)

// PaymentClient creates checkout sessions at the external payment provider.
// The provider owns settlement; this side only initiates and later receives
// the confirmation webhook.
type PaymentClient interface {
	CreateSession(ctx context.Context, req SessionRequest) (string, error)
}

// SessionRequest mirrors the provider's create-session payload.
type SessionRequest struct {
	Reference          string          `json:"reference"` // our payment_sessions id
	Amount             string          `json:"amount"`    // post-discount, item-native currency
	Currency           string          `json:"currency"`
	Description        string          `json:"description,omitempty"`
	PromoCode          string          `json:"promoCode,omitempty"`
	DiscountPercentage string          `json:"discountPercentage,omitempty"`
	Metadata           json.RawMessage `json:"metadata,omitempty"`
	SuccessURL         string          `json:"successUrl"`
	CancelURL          string          `json:"cancelUrl"`
}

type sessionResponse struct {
	ID    string `json:"id"`
	Error string `json:"error,omitempty"`
}

type HTTPPaymentClient struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

func (c HTTPPaymentClient) httpClient() *http.Client {
	if c.Client != nil {
		return c.Client
	}
	return &http.Client{Timeout: 15 * time.Second}
}

func (c HTTPPaymentClient) CreateSession(ctx context.Context, req SessionRequest) (string, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return "", domain.InternalError{Msg: "encode session request", Err: err}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL, bytes.NewReader(body))
	if err != nil {
		return "", domain.InternalError{Msg: "build session request", Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.APIKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.APIKey)
	}

	resp, err := c.httpClient().Do(httpReq)
	if err != nil {
		return "", domain.ExternalError{Service: "payments", Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", domain.ExternalError{Service: "payments", Err: err}
	}

	var parsed sessionResponse
	_ = json.Unmarshal(raw, &parsed)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Surface the provider's message verbatim when it gave one.
		msg := strings.TrimSpace(parsed.Error)
		if msg == "" {
			msg = fmt.Sprintf("payment provider returned status %d", resp.StatusCode)
		}
		return "", domain.ExternalError{Service: "payments", Msg: msg}
	}

	if parsed.ID == "" {
		return "", domain.ExternalError{Service: "payments", Msg: "payment provider returned no session id"}
	}
	return parsed.ID, nil
}
