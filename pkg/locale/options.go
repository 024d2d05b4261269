package locale

import "log/slog"

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger sets the logger used for store access diagnostics.
// Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(r *Resolver) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithKey overrides the store key the preference is read from.
// Empty keys are ignored.
func WithKey(key string) Option {
	return func(r *Resolver) {
		if key != "" {
			r.key = key
		}
	}
}
