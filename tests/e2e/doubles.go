//go:build e2e

package e2e

import (
	"context"
	"sync"

	"github.com/steven-the-qa/coach-wire/internal/usecase/commands"

	"github.com/google/uuid"
)

// MemoryIntentStore is a map-backed stand-in for the Redis intent store so
// the suite does not need a Redis server. Semantics match the real store:
// one pending intent per (client, class) pair.
type MemoryIntentStore struct {
	mu      sync.Mutex
	pending map[intentKey]commands.PaymentIntent
}

type intentKey struct {
	clientID uuid.UUID
	classID  uuid.UUID
}

func NewMemoryIntentStore() *MemoryIntentStore {
	return &MemoryIntentStore{pending: make(map[intentKey]commands.PaymentIntent)}
}

func (s *MemoryIntentStore) Pending(_ context.Context, clientID, classID uuid.UUID) (*commands.PaymentIntent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if intent, ok := s.pending[intentKey{clientID, classID}]; ok {
		cp := intent
		return &cp, nil
	}
	return nil, nil
}

func (s *MemoryIntentStore) Save(_ context.Context, clientID, classID uuid.UUID, intent *commands.PaymentIntent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending[intentKey{clientID, classID}] = *intent
	return nil
}

func (s *MemoryIntentStore) Clear(_ context.Context, clientID, classID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pending, intentKey{clientID, classID})
	return nil
}

// ReversalRecorder captures reversal alerts instead of publishing them to a
// broker, so tests can assert exactly which charges were flagged.
type ReversalRecorder struct {
	mu     sync.Mutex
	alerts []commands.ReversalAlert
}

func NewReversalRecorder() *ReversalRecorder {
	return &ReversalRecorder{}
}

func (r *ReversalRecorder) PublishReversal(_ context.Context, alert commands.ReversalAlert) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.alerts = append(r.alerts, alert)
	return nil
}

func (r *ReversalRecorder) Alerts() []commands.ReversalAlert {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]commands.ReversalAlert, len(r.alerts))
	copy(out, r.alerts)
	return out
}

func (r *ReversalRecorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.alerts = nil
}
