package pg

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrymomot/areacalc/pkg/locale"
)

// DB is the subset of *pgxpool.Pool used by PreferenceStore.
type DB interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

const (
	selectPreference = `SELECT value FROM preferences WHERE scope = $1 AND key = $2`
	upsertPreference = `INSERT INTO preferences (scope, key, value, updated_at)
VALUES ($1, $2, $3, now())
ON CONFLICT (scope, key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`
	deletePreference = `DELETE FROM preferences WHERE scope = $1 AND key = $2`
)

// PreferenceStore keeps language preferences in the preferences table
// created by Migrate, one row per (visitor, key).
type PreferenceStore struct {
	db DB
}

func NewPreferenceStore(db DB) *PreferenceStore {
	return &PreferenceStore{db: db}
}

// For returns the preferences of a single visitor.
func (s *PreferenceStore) For(scope string) locale.ReadWriter {
	return scopedPreferences{db: s.db, scope: scope}
}

type scopedPreferences struct {
	db    DB
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

// Get maps pgx.ErrNoRows to locale.ErrNotFound. Query failures are joined
// with locale.ErrStoreUnavailable, as in Set and Delete.
func (p scopedPreferences) Get(ctx context.Context, key string) (string, error) {
	if err := p.validate(key); err != nil {
		return "", err
	}

	var value string
	if err := p.db.QueryRow(ctx, selectPreference, p.scope, key).Scan(&value); err != nil {
		if IsNotFoundError(err) {
			return "", locale.ErrNotFound
		}
		return "", unavailable(err)
	}
	return value, nil
}

func (p scopedPreferences) Set(ctx context.Context, key, value string) error {
	if err := p.validate(key); err != nil {
		return err
	}
	_, err := p.db.Exec(ctx, upsertPreference, p.scope, key, value)
	return unavailable(err)
}

func (p scopedPreferences) Delete(ctx context.Context, key string) error {
	if err := p.validate(key); err != nil {
		return err
	}
	_, err := p.db.Exec(ctx, deletePreference, p.scope, key)
	return unavailable(err)
}

func unavailable(err error) error {
	if err == nil {
		return nil
	}
	return errors.Join(locale.ErrStoreUnavailable, err)
}
