package visitor

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/dmitrymomot/areacalc/pkg/cookie"
	"github.com/dmitrymomot/areacalc/pkg/logger"
)

const (
	DefaultCookieName = "areacalc_vid"
	defaultMaxAge     = 365 * 24 * 60 * 60
)

type contextKey struct{}

func WithContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// FromContext returns "" outside Middleware.
func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(contextKey{}).(string)
	return id
}

type options struct {
	name   string
	maxAge int
	logger *slog.Logger
}

type Option func(*options)

func WithCookieName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.name = name
		}
	}
}

// WithMaxAge sets the cookie lifetime in seconds. Defaults to one year.
func WithMaxAge(seconds int) Option {
	return func(o *options) {
		if seconds > 0 {
			o.maxAge = seconds
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Middleware ensures every request carries a visitor ID. A cookie that
// fails signature verification or does not hold a UUID is replaced.
func Middleware(cookies *cookie.Manager, opts ...Option) func(http.Handler) http.Handler {
	if cookies == nil {
		panic("visitor: middleware requires a cookie manager")
	}

	o := &options{name: DefaultCookieName, maxAge: defaultMaxAge, logger: logger.Discard()}
	for _, opt := range opts {
		opt(o)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, err := cookies.GetSigned(r, o.name)
			if err == nil {
				if parsed, perr := uuid.Parse(id); perr == nil {
					next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), parsed.String())))
					return
				}
			}

			id = uuid.NewString()
			if err := cookies.SetSigned(w, o.name, id, cookie.WithMaxAge(o.maxAge)); err != nil {
				o.logger.WarnContext(r.Context(), "could not issue visitor cookie",
					logger.Component("visitor"),
					logger.Error(err),
				)
			}
			next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), id)))
		})
	}
}

// LoggerExtractor adds visitor_id to log records.
func LoggerExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if id := FromContext(ctx); id != "" {
			return logger.VisitorID(id), true
		}
		return slog.Attr{}, false
	}
}
