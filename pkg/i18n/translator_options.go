package i18n

import (
	"log/slog"

	"github.com/dmitrymomot/areacalc/pkg/locale"
)

// Option configures a Translator.
type Option func(*Translator)

// WithFallbackLanguage sets the language consulted when a key is missing
// from the requested one. Defaults to locale.Default.
func WithFallbackLanguage(lang locale.LanguageCode) Option {
	return func(t *Translator) {
		if lang != "" {
			t.fallback = lang
		}
	}
}

// WithSupportedLanguages rejects catalogs for any other language at load time.
func WithSupportedLanguages(langs ...locale.LanguageCode) Option {
	return func(t *Translator) {
		t.supported = langs
	}
}

// WithFallbackToKey returns the key itself when no catalog has it. Default is true.
func WithFallbackToKey(fallback bool) Option {
	return func(t *Translator) {
		t.fallbackToKey = fallback
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(t *Translator) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithMissingTranslationsLogging logs every miss at warn level. Off by default.
func WithMissingTranslationsLogging(enabled bool) Option {
	return func(t *Translator) {
		t.missingLogMode = enabled
	}
}
