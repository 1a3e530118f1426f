// Package intentstore keeps the un-confirmed payment intent for a
// (client, class) pair in Redis so a retried booking attempt reuses it
// instead of authorizing the client's card a second time.
package intentstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/steven-the-qa/coach-wire/internal/pkg/errs"
	"github.com/steven-the-qa/coach-wire/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type RedisIntentStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisIntentStore(client *redis.Client, ttl time.Duration) *RedisIntentStore {
	return &RedisIntentStore{client: client, ttl: ttl}
}

func (s *RedisIntentStore) Pending(ctx context.Context, clientID, classID uuid.UUID) (*commands.PaymentIntent, error) {
	data, err := s.client.Get(ctx, intentKey(clientID, classID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, errs.Wrap(err, "failed to read pending intent")
	}

	var intent commands.PaymentIntent
	if err := json.Unmarshal([]byte(data), &intent); err != nil {
		return nil, errs.Wrap(err, "failed to decode pending intent")
	}
	return &intent, nil
}

func (s *RedisIntentStore) Save(ctx context.Context, clientID, classID uuid.UUID, intent *commands.PaymentIntent) error {
	data, err := json.Marshal(intent)
	if err != nil {
		return errs.Wrap(err, "failed to encode pending intent")
	}

	// TTL bounds how long an abandoned intent can be replayed.
	if err := s.client.Set(ctx, intentKey(clientID, classID), data, s.ttl).Err(); err != nil {
		return errs.Wrap(err, "failed to store pending intent")
	}
	return nil
}

func (s *RedisIntentStore) Clear(ctx context.Context, clientID, classID uuid.UUID) error {
	if err := s.client.Del(ctx, intentKey(clientID, classID)).Err(); err != nil {
		return errs.Wrap(err, "failed to clear pending intent")
	}
	return nil
}

func intentKey(clientID, classID uuid.UUID) string {
	return fmt.Sprintf("intent:%s:%s", clientID, classID)
}
