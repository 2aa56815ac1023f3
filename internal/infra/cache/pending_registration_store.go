package cache

import (
	"context"
	"encoding/json"
	"time"

	"inkwell/config"
	"inkwell/internal/domain/entity"
	"inkwell/internal/domain/repository"
	"inkwell/internal/errors"

	"github.com/redis/go-redis/v9"
)

const (
	fieldPayload = "payload"
	fieldCode    = "code"
)

// consumeLua deletes the entry only while it still carries the expected code.
// KEYS[1] = entry key, ARGV[1] = expected code. Returns 1 when deleted, else 0.
var consumeLua = redis.NewScript(`
if redis.call('HGET', KEYS[1], 'code') == ARGV[1] then
  return redis.call('DEL', KEYS[1])
end
return 0
`)

// pendingRegistrationStore keeps one Redis hash per email holding the staged
// payload and the current code, expiring with the code.
type pendingRegistrationStore struct {
	client redis.UniversalClient
	prefix string
}

// NewPendingRegistrationStore creates a Redis-backed pending registration store
func NewPendingRegistrationStore(client redis.UniversalClient, cfg *config.Config) repository.PendingRegistrationStore {
	prefix := "pending_registration:"
	if cfg.Redis != nil && cfg.Redis.KeyPrefix != "" {
		prefix = cfg.Redis.KeyPrefix
	}

	return &pendingRegistrationStore{client: client, prefix: prefix}
}

func (s *pendingRegistrationStore) key(email string) string {
	return s.prefix + email
}

// Save replaces the whole entry in one MULTI so readers never see a mix of
// old and new fields.
func (s *pendingRegistrationStore) Save(ctx context.Context, registration *entity.PendingRegistration, ttl time.Duration) error {
	payload, err := json.Marshal(registration.Payload)
	if err != nil {
		return errors.Wrap(err, "encode pending registration")
	}

	key := s.key(registration.Payload.Email)
	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		pipe.HSet(ctx, key, fieldPayload, payload, fieldCode, registration.Code)
		pipe.PExpire(ctx, key, ttl)

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "save pending registration")
	}

	return nil
}

func (s *pendingRegistrationStore) Find(ctx context.Context, email string) (*entity.PendingRegistration, error) {
	fields, err := s.client.HGetAll(ctx, s.key(email)).Result()
	if err != nil {
		return nil, errors.Wrap(err, "load pending registration")
	}

	raw, ok := fields[fieldPayload]
	if !ok {
		return nil, repository.ErrPendingRegistrationNotFound
	}

	registration := &entity.PendingRegistration{Code: fields[fieldCode]}
	if err := json.Unmarshal([]byte(raw), &registration.Payload); err != nil {
		return nil, errors.Wrap(err, "decode pending registration")
	}

	return registration, nil
}

func (s *pendingRegistrationStore) Consume(ctx context.Context, email, code string) (bool, error) {
	deleted, err := consumeLua.Run(ctx, s.client, []string{s.key(email)}, code).Int()
	if err != nil {
		return false, errors.Wrap(err, "consume pending registration")
	}

	return deleted == 1, nil
}
