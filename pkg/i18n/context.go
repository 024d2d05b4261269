package i18n

import (
	"context"

	"github.com/dmitrymomot/areacalc/pkg/locale"
)

type configContextKey struct{}

func WithConfig(ctx context.Context, cfg Config) context.Context {
	return context.WithValue(ctx, configContextKey{}, cfg)
}

// ConfigFromContext returns the Config stored by Middleware.
func ConfigFromContext(ctx context.Context) (Config, bool) {
	cfg, ok := ctx.Value(configContextKey{}).(Config)
	return cfg, ok
}

// LocaleFromContext returns the resolved locale, or locale.Default when
// the request did not pass through Middleware.
func LocaleFromContext(ctx context.Context) locale.LanguageCode {
	if cfg, ok := ConfigFromContext(ctx); ok {
		return cfg.Locale()
	}
	return locale.Default
}
