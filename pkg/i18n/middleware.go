package i18n

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/areacalc/pkg/locale"
	"github.com/dmitrymomot/areacalc/pkg/logger"
)

// StoreFactory returns the preference store for a single request. It may
// return nil; the resolver then treats the store as unavailable.
type StoreFactory func(w http.ResponseWriter, r *http.Request) locale.Store

// HintFunc extracts the environment language hint from a request.
type HintFunc func(r *http.Request) string

type middlewareOptions struct {
	hint   HintFunc
	logger *slog.Logger
	key    string
}

type MiddlewareOption func(*middlewareOptions)

// WithHintFunc replaces HintFromRequest.
func WithHintFunc(fn HintFunc) MiddlewareOption {
	return func(o *middlewareOptions) {
		if fn != nil {
			o.hint = fn
		}
	}
}

// WithResolverLogger receives store failures reported by the resolver.
func WithResolverLogger(l *slog.Logger) MiddlewareOption {
	return func(o *middlewareOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithPreferenceKey overrides locale.PreferenceKey.
func WithPreferenceKey(key string) MiddlewareOption {
	return func(o *middlewareOptions) {
		if key != "" {
			o.key = key
		}
	}
}

// Middleware resolves the locale for every request and stores the bound
// Config in the request context. Resolution never fails; a broken store
// degrades to the Accept-Language hint.
func Middleware(translator *Translator, stores StoreFactory, opts ...MiddlewareOption) func(http.Handler) http.Handler {
	if translator == nil {
		panic("i18n: middleware requires a translator")
	}

	o := &middlewareOptions{
		hint:   HintFromRequest,
		logger: logger.Discard(),
		key:    locale.PreferenceKey,
	}
	for _, opt := range opts {
		opt(o)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var store locale.Store
			if stores != nil {
				store = stores(w, r)
			}

			resolver := locale.New(store, locale.WithLogger(o.logger), locale.WithKey(o.key))
			res := resolver.ResolveDetailed(r.Context(), o.hint(r))

			w.Header().Set("Content-Language", res.Locale.String())
			w.Header().Add("Vary", "Accept-Language")
			w.Header().Add("Vary", "Cookie")

			ctx := WithConfig(r.Context(), translator.Configure(res))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
