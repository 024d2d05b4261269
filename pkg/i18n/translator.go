package i18n

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"slices"
	"strings"

	"github.com/dmitrymomot/areacalc/pkg/locale"
	"github.com/dmitrymomot/areacalc/pkg/logger"
)

// Translator holds the loaded catalogs. It is read-only after construction
// and safe for concurrent use.
type Translator struct {
	catalogs       map[locale.LanguageCode]map[string]any
	fallback       locale.LanguageCode
	supported      []locale.LanguageCode
	fallbackToKey  bool
	missingLogMode bool
	logger         *slog.Logger
}

// NewTranslator loads catalogs through adapter and validates them.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, opts ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		fallback:      locale.Default,
		fallbackToKey: true,
		logger:        logger.Discard(),
	}
	for _, opt := range opts {
		opt(t)
	}

	raw, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}

	catalogs, err := t.validate(raw)
	if err != nil {
		return nil, err
	}
	t.catalogs = catalogs

	t.logger.InfoContext(ctx, "translations loaded",
		logger.Component("i18n"),
		slog.Any("languages", t.Languages()),
		logger.Locale(t.fallback),
	)
	return t, nil
}

func (t *Translator) validate(raw map[string]map[string]any) (map[locale.LanguageCode]map[string]any, error) {
	catalogs := make(map[locale.LanguageCode]map[string]any, len(raw))
	for lang, tree := range raw {
		code := locale.LanguageCode(lang)
		switch {
		case lang == "":
			return nil, ErrEmptyLanguage
		case tree == nil:
			return nil, fmt.Errorf("%w: %s", ErrNilCatalog, lang)
		case len(t.supported) > 0 && !slices.Contains(t.supported, code):
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedLanguage, lang)
		}
		catalogs[code] = tree
	}

	if len(catalogs) == 0 {
		t.logger.Warn("no translations provided", logger.Component("i18n"))
		return catalogs, nil
	}
	if _, ok := catalogs[t.fallback]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingFallback, t.fallback)
	}
	return catalogs, nil
}

// Languages lists the languages that have a catalog, sorted.
func (t *Translator) Languages() []locale.LanguageCode {
	langs := make([]locale.LanguageCode, 0, len(t.catalogs))
	for lang := range t.catalogs {
		langs = append(langs, lang)
	}
	slices.Sort(langs)
	return langs
}

// Fallback returns the language consulted for missing keys.
func (t *Translator) Fallback() locale.LanguageCode {
	return t.fallback
}

// HasTranslation reports whether lang itself defines key, ignoring fallbacks.
func (t *Translator) HasTranslation(lang locale.LanguageCode, key string) bool {
	v, ok := lookupKey(t.catalogs[lang], key)
	if !ok {
		return false
	}
	_, isString := v.(string)
	return isString
}

// T translates key for lang. Args are name/value pairs substituted into
// %{name} placeholders:
//
//	translator.T(locale.Hindi, "calculator.result", "value", "12.5")
//
// A key missing in lang is looked up in the fallback language, then the
// key itself is returned (or "" with WithFallbackToKey(false)).
func (t *Translator) T(lang locale.LanguageCode, key string, args ...string) string {
	return translate(t.catalogs, lang, t.fallback, key, args, t.miss)
}

// Configure binds the translator's catalogs to a resolved locale.
func (t *Translator) Configure(res locale.Resolution) Config {
	cfg := NewConfig(res.Locale, t.catalogs, t.fallback)
	cfg.source = res.Source
	return cfg
}

func (t *Translator) miss(lang locale.LanguageCode, key string) string {
	if t.missingLogMode {
		t.logger.Warn("translation not found",
			logger.Component("i18n"),
			logger.Locale(lang),
			slog.String("key", key),
		)
	}
	if t.fallbackToKey {
		return key
	}
	return ""
}

func translate(
	catalogs map[locale.LanguageCode]map[string]any,
	lang, fallback locale.LanguageCode,
	key string,
	args []string,
	miss func(locale.LanguageCode, string) string,
) string {
	for _, l := range []locale.LanguageCode{lang, fallback} {
		if v, ok := lookupKey(catalogs[l], key); ok {
			if s, ok := v.(string); ok {
				return substitute(s, args)
			}
		}
	}
	return substitute(miss(lang, key), args)
}

// lookupKey walks dot-separated segments: "calculator.units.sqft".
func lookupKey(tree map[string]any, key string) (any, bool) {
	if tree == nil || key == "" {
		return nil, false
	}

	current := tree
	for {
		part, rest, nested := strings.Cut(key, ".")
		val, ok := current[part]
		if !ok {
			return nil, false
		}
		if !nested {
			return val, true
		}
		if current, ok = val.(map[string]any); !ok {
			return nil, false
		}
		key = rest
	}
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// substitute replaces %{name} placeholders. Unknown placeholders are kept;
// a trailing unpaired arg is ignored.
func substitute(tmpl string, args []string) string {
	if len(args) < 2 || !strings.Contains(tmpl, "%{") {
		return tmpl
	}

	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}

	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}
