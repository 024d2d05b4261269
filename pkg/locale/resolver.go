package locale

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/areacalc/pkg/logger"
)

// Source names the rule that produced a resolution.
type Source string

const (
	SourcePreference Source = "preference"
	SourceHint       Source = "hint"
	SourceDefault    Source = "default"
)

// Resolution is the outcome of resolving the session locale.
type Resolution struct {
	Locale LanguageCode `json:"locale"`
	Source Source       `json:"source"`
}

// Resolver picks the UI language for a session from a persisted preference,
// a browser language hint and the default. It never writes to the store and
// is safe for concurrent use.
type Resolver struct {
	store  Store
	key    string
	logger *slog.Logger
}

// New creates a Resolver reading the preference from store.
// A nil store is allowed: every read then counts as a store access failure.
func New(store Store, opts ...Option) *Resolver {
	r := &Resolver{
		store:  store,
		key:    PreferenceKey,
		logger: logger.Discard(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve is a shorthand for New(store).Resolve(ctx, hint).
func Resolve(ctx context.Context, store Store, hint string) LanguageCode {
	return New(store).Resolve(ctx, hint)
}

// Resolve returns the language for the session. The result is always a
// supported language; store failures are logged and never returned.
func (r *Resolver) Resolve(ctx context.Context, hint string) LanguageCode {
	return r.ResolveDetailed(ctx, hint).Locale
}

// ResolveDetailed is like Resolve but also reports which rule matched.
func (r *Resolver) ResolveDetailed(ctx context.Context, hint string) Resolution {
	pref := r.readPreference(ctx)
	switch {
	case pref.err != nil:
		r.logger.WarnContext(ctx, "could not read preferred language, falling back to browser hint",
			logger.Component("locale"),
			logger.Error(pref.err),
		)
	case pref.found:
		return Resolution{Locale: pref.code, Source: SourcePreference}
	}

	if LanguageCode(PrimarySubtag(hint)) == Hindi {
		return Resolution{Locale: Hindi, Source: SourceHint}
	}
	return Resolution{Locale: Default, Source: SourceDefault}
}

// lookup is the result of a single preference read. err is set only for a
// store access failure; an absent or unsupported value leaves found false.
type lookup struct {
	code  LanguageCode
	found bool
	err   error
}

func (r *Resolver) readPreference(ctx context.Context) (res lookup) {
	if r.store == nil {
		return lookup{err: errors.Join(ErrStoreAccess, ErrStoreUnavailable)}
	}

	defer func() {
		if p := recover(); p != nil {
			res = lookup{err: errors.Join(ErrStoreAccess, fmt.Errorf("store panicked: %v", p))}
		}
	}()

	value, err := r.store.Get(ctx, r.key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return lookup{}
		}
		return lookup{err: errors.Join(ErrStoreAccess, err)}
	}

	code, ok := Parse(value)
	if !ok {
		if value != "" {
			r.logger.DebugContext(ctx, "ignoring unsupported stored language",
				logger.Component("locale"),
				slog.String("value", value),
			)
		}
		return lookup{}
	}
	return lookup{code: code, found: true}
}
