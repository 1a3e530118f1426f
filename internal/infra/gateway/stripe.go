// Package gateway wraps the Stripe payment-intents REST API. It is the only
// component that talks to the payment processor and it never touches the
// relational store.
package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/steven-the-qa/coach-wire/internal/infra"
	"github.com/steven-the-qa/coach-wire/internal/pkg/config"
	"github.com/steven-the-qa/coach-wire/internal/usecase/commands"
)

// Intent statuses as reported by Stripe.
const (
	statusSucceeded             = "succeeded"
	statusRequiresCapture       = "requires_capture"
	statusCanceled              = "canceled"
	statusRequiresPaymentMethod = "requires_payment_method"
)

type StripeClient struct {
	httpClient      *http.Client
	baseURL         string
	secretKey       string
	confirmPoll     time.Duration
	confirmDeadline time.Duration
}

func NewStripeClient(cfg config.StripeConfig) *StripeClient {
	return &StripeClient{
		httpClient:      &http.Client{Timeout: cfg.RequestTimeout},
		baseURL:         strings.TrimRight(cfg.BaseURL, "/"),
		secretKey:       cfg.SecretKey,
		confirmPoll:     cfg.ConfirmPoll,
		confirmDeadline: cfg.ConfirmDeadline,
	}
}

type intentResponse struct {
	ID               string `json:"id"`
	ClientSecret     string `json:"client_secret"`
	Status           string `json:"status"`
	LastPaymentError *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"last_payment_error"`
}

type errorResponse struct {
	Error struct {
		Type    string `json:"type"`
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (c *StripeClient) CreateIntent(ctx context.Context, amountCents int64, currency string, metadata map[string]string) (*commands.PaymentIntent, error) {
	if amountCents <= 0 {
		return nil, infra.WrapErr("amount must be positive", nil, infra.KindInvalidArgument)
	}

	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amountCents, 10))
	form.Set("currency", currency)
	for k, v := range metadata {
		form.Set(fmt.Sprintf("metadata[%s]", k), v)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/payment_intents", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, infra.WrapErr("failed to build intent request", err, infra.KindUnavailable)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, infra.WrapErr("payment gateway unreachable", err, infra.KindUnavailable)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, infra.WrapErr("failed to read gateway response", err, infra.KindUnavailable)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, c.classifyError(resp.StatusCode, body)
	}

	var intent intentResponse
	if err := json.Unmarshal(body, &intent); err != nil {
		return nil, infra.WrapErr("failed to decode intent response", err, infra.KindUnavailable)
	}

	return &commands.PaymentIntent{
		ID:           intent.ID,
		ClientSecret: intent.ClientSecret,
	}, nil
}

// AwaitConfirmation polls the intent until the client-side confirmation step
// settles it. The poll budget is bounded; an abandoned confirmation surfaces
// as context.DeadlineExceeded, which the caller treats as a cancellation.
func (c *StripeClient) AwaitConfirmation(ctx context.Context, intentID string) (commands.PaymentDisposition, error) {
	ctx, cancel := context.WithTimeout(ctx, c.confirmDeadline)
	defer cancel()

	ticker := time.NewTicker(c.confirmPoll)
	defer ticker.Stop()

	for {
		disposition, terminal, err := c.pollIntent(ctx, intentID)
		if err != nil {
			return "", err
		}
		if terminal {
			return disposition, nil
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-ticker.C:
		}
	}
}

func (c *StripeClient) pollIntent(ctx context.Context, intentID string) (commands.PaymentDisposition, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/v1/payment_intents/"+intentID, nil)
	if err != nil {
		return "", false, infra.WrapErr("failed to build intent poll request", err, infra.KindUnavailable)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", false, ctx.Err()
		}
		return "", false, infra.WrapErr("payment gateway unreachable", err, infra.KindUnavailable)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", false, infra.WrapErr("failed to read gateway response", err, infra.KindUnavailable)
	}

	if resp.StatusCode != http.StatusOK {
		return "", false, c.classifyError(resp.StatusCode, body)
	}

	var intent intentResponse
	if err := json.Unmarshal(body, &intent); err != nil {
		return "", false, infra.WrapErr("failed to decode intent response", err, infra.KindUnavailable)
	}

	switch intent.Status {
	case statusSucceeded, statusRequiresCapture:
		return commands.DispositionAuthorized, true, nil
	case statusCanceled:
		return commands.DispositionCancelled, true, nil
	case statusRequiresPaymentMethod:
		// Stripe parks a declined intent back at requires_payment_method
		// with the failure recorded; without a failure it simply has not
		// been confirmed yet.
		if intent.LastPaymentError != nil {
			return commands.DispositionDeclined, true, nil
		}
		return "", false, nil
	default:
		return "", false, nil
	}
}

func (c *StripeClient) classifyError(statusCode int, body []byte) error {
	var gatewayErr errorResponse
	msg := "gateway error"
	if err := json.Unmarshal(body, &gatewayErr); err == nil && gatewayErr.Error.Message != "" {
		msg = gatewayErr.Error.Message
	}

	if statusCode == http.StatusBadRequest && gatewayErr.Error.Code == "parameter_invalid_integer" {
		return infra.WrapErr(msg, nil, infra.KindInvalidArgument)
	}

	return infra.WrapErr(fmt.Sprintf("%s (http %d)", msg, statusCode), nil, infra.KindUnavailable)
}
