//go:build e2e

package e2e

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
)

// PaymentStub emulates the payment-intents REST surface the gateway client
// talks to: POST /v1/payment_intents creates an intent, GET polls it. By
// default every intent confirms immediately; DeclineNext and CancelNext
// script the next intent into the other terminal dispositions, and
// SettleAfterPolls delays confirmation to exercise the polling loop.
type PaymentStub struct {
	srv *httptest.Server

	mu              sync.Mutex
	seq             int
	intents         map[string]*stubIntent
	createCalls     int
	declineNext     bool
	cancelNext      bool
	pendingPolls    int
	failNextCreate  bool
	rejectedAmounts map[int64]bool
}

type stubIntent struct {
	id           string
	clientSecret string
	amount       int64
	declined     bool
	cancelled    bool
	pollsLeft    int
	polls        int
}

func NewPaymentStub() *PaymentStub {
	p := &PaymentStub{
		intents:         make(map[string]*stubIntent),
		rejectedAmounts: make(map[int64]bool),
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/payment_intents", p.handleCreate)
	mux.HandleFunc("/v1/payment_intents/", p.handlePoll)
	p.srv = httptest.NewServer(mux)
	return p
}

func (p *PaymentStub) URL() string { return p.srv.URL }

func (p *PaymentStub) Close() { p.srv.Close() }

func (p *PaymentStub) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.intents = make(map[string]*stubIntent)
	p.createCalls = 0
	p.declineNext = false
	p.cancelNext = false
	p.pendingPolls = 0
	p.failNextCreate = false
	p.rejectedAmounts = make(map[int64]bool)
}

// DeclineNext makes the next created intent settle as declined.
func (p *PaymentStub) DeclineNext() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.declineNext = true
}

// CancelNext makes the next created intent settle as canceled.
func (p *PaymentStub) CancelNext() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cancelNext = true
}

// SettleAfterPolls keeps newly created intents unconfirmed for n polls
// before they settle.
func (p *PaymentStub) SettleAfterPolls(n int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pendingPolls = n
}

// FailNextCreate makes the next intent creation return HTTP 503.
func (p *PaymentStub) FailNextCreate() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.failNextCreate = true
}

// CreateCalls reports how many intents have been created since the last Reset.
func (p *PaymentStub) CreateCalls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.createCalls
}

func (p *PaymentStub) handleCreate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		writeStubError(w, http.StatusBadRequest, "invalid_request_error", "", "could not parse form")
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.createCalls++

	if p.failNextCreate {
		p.failNextCreate = false
		writeStubError(w, http.StatusServiceUnavailable, "api_error", "", "service temporarily unavailable")
		return
	}

	amount, err := strconv.ParseInt(r.PostFormValue("amount"), 10, 64)
	if err != nil || amount <= 0 {
		writeStubError(w, http.StatusBadRequest, "invalid_request_error", "parameter_invalid_integer", "Invalid positive integer")
		return
	}

	p.seq++
	intent := &stubIntent{
		id:           fmt.Sprintf("pi_e2e_%03d", p.seq),
		clientSecret: fmt.Sprintf("pi_e2e_%03d_secret", p.seq),
		amount:       amount,
		declined:     p.declineNext,
		cancelled:    p.cancelNext,
		pollsLeft:    p.pendingPolls,
	}
	p.declineNext = false
	p.cancelNext = false
	p.intents[intent.id] = intent

	writeIntentJSON(w, intent, "requires_payment_method", false)
}

func (p *PaymentStub) handlePoll(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	id := strings.TrimPrefix(r.URL.Path, "/v1/payment_intents/")

	p.mu.Lock()
	defer p.mu.Unlock()

	intent, ok := p.intents[id]
	if !ok {
		writeStubError(w, http.StatusNotFound, "invalid_request_error", "resource_missing", "No such payment_intent: "+id)
		return
	}

	intent.polls++
	if intent.pollsLeft > 0 {
		intent.pollsLeft--
		writeIntentJSON(w, intent, "requires_payment_method", false)
		return
	}

	switch {
	case intent.declined:
		writeIntentJSON(w, intent, "requires_payment_method", true)
	case intent.cancelled:
		writeIntentJSON(w, intent, "canceled", false)
	default:
		writeIntentJSON(w, intent, "succeeded", false)
	}
}

func writeIntentJSON(w http.ResponseWriter, intent *stubIntent, status string, declined bool) {
	body := map[string]any{
		"id":            intent.id,
		"client_secret": intent.clientSecret,
		"status":        status,
		"amount":        intent.amount,
	}
	if declined {
		body["last_payment_error"] = map[string]any{
			"code":    "card_declined",
			"message": "Your card was declined.",
		}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(body)
}

func writeStubError(w http.ResponseWriter, status int, errType, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]any{
			"type":    errType,
			"code":    code,
			"message": message,
		},
	})
}
