//go:build unit

package gateway_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/steven-the-qa/coach-wire/internal/infra"
	"github.com/steven-the-qa/coach-wire/internal/infra/gateway"
	"github.com/steven-the-qa/coach-wire/internal/pkg/config"
	"github.com/steven-the-qa/coach-wire/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(baseURL string) *gateway.StripeClient {
	return gateway.NewStripeClient(config.StripeConfig{
		SecretKey:       "sk_test_dummy",
		BaseURL:         baseURL,
		Currency:        "usd",
		RequestTimeout:  time.Second,
		ConfirmPoll:     5 * time.Millisecond,
		ConfirmDeadline: 250 * time.Millisecond,
	})
}

func TestCreateIntent(t *testing.T) {
	t.Run("sends a form-encoded authorized request and decodes the intent", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v1/payment_intents", r.URL.Path)
			assert.Equal(t, "Bearer sk_test_dummy", r.Header.Get("Authorization"))

			require.NoError(t, r.ParseForm())
			assert.Equal(t, "2500", r.PostForm.Get("amount"))
			assert.Equal(t, "usd", r.PostForm.Get("currency"))
			assert.Equal(t, "class-1", r.PostForm.Get("metadata[class_id]"))

			_ = json.NewEncoder(w).Encode(map[string]any{
				"id":            "pi_123",
				"client_secret": "pi_123_secret",
				"status":        "requires_payment_method",
			})
		}))
		defer server.Close()

		client := newTestClient(server.URL)
		intent, err := client.CreateIntent(context.Background(), 2500, "usd", map[string]string{"class_id": "class-1"})
		require.NoError(t, err)
		assert.Equal(t, "pi_123", intent.ID)
		assert.Equal(t, "pi_123_secret", intent.ClientSecret)
	})

	t.Run("rejects a non-positive amount locally", func(t *testing.T) {
		client := newTestClient("http://unused.invalid")
		_, err := client.CreateIntent(context.Background(), 0, "usd", nil)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindInvalidArgument))
	})

	t.Run("classifies an invalid-integer rejection as invalid argument", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"error": map[string]any{
					"type":    "invalid_request_error",
					"code":    "parameter_invalid_integer",
					"message": "Invalid integer: -1",
				},
			})
		}))
		defer server.Close()

		client := newTestClient(server.URL)
		_, err := client.CreateIntent(context.Background(), 100, "usd", nil)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindInvalidArgument))
	})

	t.Run("classifies a 5xx as unavailable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := newTestClient(server.URL)
		_, err := client.CreateIntent(context.Background(), 100, "usd", nil)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindUnavailable))
	})

	t.Run("treats an unreachable gateway as unavailable", func(t *testing.T) {
		client := newTestClient("http://127.0.0.1:1")
		_, err := client.CreateIntent(context.Background(), 100, "usd", nil)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindUnavailable))
	})
}

func TestAwaitConfirmation(t *testing.T) {
	intentHandler := func(status string, lastErr bool) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/payment_intents/pi_123", r.URL.Path)
			resp := map[string]any{
				"id":     "pi_123",
				"status": status,
			}
			if lastErr {
				resp["last_payment_error"] = map[string]any{
					"code":    "card_declined",
					"message": "Your card was declined.",
				}
			}
			_ = json.NewEncoder(w).Encode(resp)
		}
	}

	terminal := []struct {
		name        string
		status      string
		lastErr     bool
		disposition commands.PaymentDisposition
	}{
		{"succeeded is authorized", "succeeded", false, commands.DispositionAuthorized},
		{"requires_capture is authorized", "requires_capture", false, commands.DispositionAuthorized},
		{"canceled is cancelled", "canceled", false, commands.DispositionCancelled},
		{"declined card is declined", "requires_payment_method", true, commands.DispositionDeclined},
	}

	for _, tc := range terminal {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(intentHandler(tc.status, tc.lastErr))
			defer server.Close()

			client := newTestClient(server.URL)
			disposition, err := client.AwaitConfirmation(context.Background(), "pi_123")
			require.NoError(t, err)
			assert.Equal(t, tc.disposition, disposition)
		})
	}

	t.Run("polls until the intent settles", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			status := "requires_payment_method"
			if calls.Add(1) >= 3 {
				status = "succeeded"
			}
			_ = json.NewEncoder(w).Encode(map[string]any{"id": "pi_123", "status": status})
		}))
		defer server.Close()

		client := newTestClient(server.URL)
		disposition, err := client.AwaitConfirmation(context.Background(), "pi_123")
		require.NoError(t, err)
		assert.Equal(t, commands.DispositionAuthorized, disposition)
		assert.GreaterOrEqual(t, calls.Load(), int32(3))
	})

	t.Run("an unconfirmed intent runs out the deadline", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]any{"id": "pi_123", "status": "requires_payment_method"})
		}))
		defer server.Close()

		client := newTestClient(server.URL)
		_, err := client.AwaitConfirmation(context.Background(), "pi_123")
		require.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("caller cancellation stops the poll", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]any{"id": "pi_123", "status": "requires_payment_method"})
		}))
		defer server.Close()

		ctx, cancel := context.WithCancel(context.Background())
		go func() {
			time.Sleep(20 * time.Millisecond)
			cancel()
		}()

		client := newTestClient(server.URL)
		_, err := client.AwaitConfirmation(ctx, "pi_123")
		require.ErrorIs(t, err, context.Canceled)
	})
}
