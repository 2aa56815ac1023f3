package cache

import (
	"context"
	"sync"
	"testing"
	"time"

	"inkwell/config"
	"inkwell/internal/domain/entity"
	"inkwell/internal/domain/repository"

	"github.com/alicebob/miniredis/v2"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func newTestStore(t *testing.T) (repository.PendingRegistrationStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewPendingRegistrationStore(client, &config.Config{}), mr
}

func newRegistration(email, code string) *entity.PendingRegistration {
	return &entity.PendingRegistration{
		Payload: entity.RegistrationPayload{
			Email:        email,
			PasswordHash: "$2a$10$hash",
			FirstName:    "Ada",
			LastName:     "Lovelace",
			Phone:        "+441234567890",
			DateOfBirth:  time.Date(1990, 12, 10, 0, 0, 0, 0, time.UTC),
			Preferences:  []string{"tech"},
		},
		Code: code,
	}
}

func TestPendingRegistrationStore_SaveAndFind(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestStore(t)

	require.NoError(t, store.Save(ctx, newRegistration("a@x.com", "123456"), 10*time.Minute))

	got, err := store.Find(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "123456", got.Code)
	assert.Equal(t, "a@x.com", got.Payload.Email)
	assert.Equal(t, []string{"tech"}, got.Payload.Preferences)
	assert.True(t, got.Payload.DateOfBirth.Equal(time.Date(1990, 12, 10, 0, 0, 0, 0, time.UTC)))

	assert.True(t, mr.Exists("pending_registration:a@x.com"))
	assert.Equal(t, 10*time.Minute, mr.TTL("pending_registration:a@x.com"))
}

func TestPendingRegistrationStore_FindMissing(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Find(context.Background(), "nobody@x.com")
	assert.True(t, errors.Is(err, repository.ErrPendingRegistrationNotFound))
}

func TestPendingRegistrationStore_ExpiresWithTTL(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestStore(t)

	require.NoError(t, store.Save(ctx, newRegistration("a@x.com", "123456"), 600*time.Second))

	mr.FastForward(599 * time.Second)
	_, err := store.Find(ctx, "a@x.com")
	require.NoError(t, err)

	mr.FastForward(2 * time.Second)
	_, err = store.Find(ctx, "a@x.com")
	assert.True(t, errors.Is(err, repository.ErrPendingRegistrationNotFound))
}

func TestPendingRegistrationStore_SaveOverwritesAndResetsTTL(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestStore(t)

	require.NoError(t, store.Save(ctx, newRegistration("a@x.com", "111111"), 600*time.Second))
	mr.FastForward(500 * time.Second)

	require.NoError(t, store.Save(ctx, newRegistration("a@x.com", "222222"), 600*time.Second))
	assert.Equal(t, 600*time.Second, mr.TTL("pending_registration:a@x.com"))

	got, err := store.Find(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "222222", got.Code)

	deleted, err := store.Consume(ctx, "a@x.com", "111111")
	require.NoError(t, err)
	assert.False(t, deleted, "superseded code must not consume the entry")
}

func TestPendingRegistrationStore_ConsumeOnce(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	require.NoError(t, store.Save(ctx, newRegistration("a@x.com", "123456"), time.Minute))

	deleted, err := store.Consume(ctx, "a@x.com", "123456")
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = store.Consume(ctx, "a@x.com", "123456")
	require.NoError(t, err)
	assert.False(t, deleted)

	_, err = store.Find(ctx, "a@x.com")
	assert.True(t, errors.Is(err, repository.ErrPendingRegistrationNotFound))
}

func TestPendingRegistrationStore_ConcurrentConsumeHasOneWinner(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	require.NoError(t, store.Save(ctx, newRegistration("race@x.com", "654321"), time.Minute))

	const callers = 16
	var (
		mu      sync.Mutex
		winners int
	)

	var g errgroup.Group
	for range callers {
		g.Go(func() error {
			deleted, err := store.Consume(ctx, "race@x.com", "654321")
			if err != nil {
				return err
			}
			if deleted {
				mu.Lock()
				winners++
				mu.Unlock()
			}

			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.Equal(t, 1, winners)
}

func TestPendingRegistrationStore_ConfiguredPrefix(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	store := NewPendingRegistrationStore(client, &config.Config{Redis: &config.RedisConfig{KeyPrefix: "test:pending:"}})
	require.NoError(t, store.Save(context.Background(), newRegistration("a@x.com", "123456"), time.Minute))

	assert.True(t, mr.Exists("test:pending:a@x.com"))
}
