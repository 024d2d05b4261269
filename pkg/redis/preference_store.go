package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/areacalc/pkg/locale"
)

// Client is the subset of the go-redis API used by PreferenceStore.
// *redis.Client, *redis.ClusterClient and redis.UniversalClient satisfy it.
type Client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// PreferenceStore keeps language preferences in Redis, one key per visitor:
// prefix + scope + ":" + key.
type PreferenceStore struct {
	db     Client
	prefix string
	ttl    time.Duration
}

// NewPreferenceStore creates a store using the prefix and TTL from cfg.
func NewPreferenceStore(db Client, cfg Config) *PreferenceStore {
	return &PreferenceStore{db: db, prefix: cfg.KeyPrefix, ttl: max(cfg.PreferenceTTL, 0)}
}

// For returns the preferences of a single visitor.
func (s *PreferenceStore) For(scope string) locale.ReadWriter {
	return scopedPreferences{store: s, scope: scope}
}

func (s *PreferenceStore) key(scope, key string) string {
	return s.prefix + scope + ":" + key
}

type scopedPreferences struct {
	store *PreferenceStore
	scope string
}

func (p scopedPreferences) validate(key string) error {
	if p.scope == "" {
		return ErrEmptyScope
	}
	if key == "" {
		return locale.ErrEmptyKey
	}
	return nil
}

// Get maps redis.Nil to locale.ErrNotFound. Any other failure is joined
// with locale.ErrStoreUnavailable, as in Set and Delete.
func (p scopedPreferences) Get(ctx context.Context, key string) (string, error) {
	if err := p.validate(key); err != nil {
		return "", err
	}

	val, err := p.store.db.Get(ctx, p.store.key(p.scope, key)).Result()
	switch {
	case errors.Is(err, redis.Nil):
		return "", locale.ErrNotFound
	case err != nil:
		return "", unavailable(err)
	}
	return val, nil
}

func (p scopedPreferences) Set(ctx context.Context, key, value string) error {
	if err := p.validate(key); err != nil {
		return err
	}
	return unavailable(p.store.db.Set(ctx, p.store.key(p.scope, key), value, p.store.ttl).Err())
}

func (p scopedPreferences) Delete(ctx context.Context, key string) error {
	if err := p.validate(key); err != nil {
		return err
	}
	return unavailable(p.store.db.Del(ctx, p.store.key(p.scope, key)).Err())
}

func unavailable(err error) error {
	if err == nil {
		return nil
	}
	return errors.Join(locale.ErrStoreUnavailable, err)
}
