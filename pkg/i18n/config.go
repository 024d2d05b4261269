package i18n

import (
	"encoding/json"
	"maps"

	"github.com/dmitrymomot/areacalc/pkg/locale"
)

// Config is the i18n setup handed to the UI: the resolved locale, the
// catalogs for every language, and the fallback language. It owns a private
// copy of the catalogs and never changes after construction.
type Config struct {
	locale   locale.LanguageCode
	fallback locale.LanguageCode
	source   locale.Source
	catalogs map[locale.LanguageCode]map[string]any
}

// NewConfig copies catalogs. An empty resolved locale means the fallback.
func NewConfig(resolved locale.LanguageCode, catalogs map[locale.LanguageCode]map[string]any, fallback locale.LanguageCode) Config {
	if fallback == "" {
		fallback = locale.Default
	}
	if resolved == "" {
		resolved = fallback
	}
	return Config{
		locale:   resolved,
		fallback: fallback,
		catalogs: copyCatalogs(catalogs),
	}
}

func (c Config) Locale() locale.LanguageCode   { return c.locale }
func (c Config) Fallback() locale.LanguageCode { return c.fallback }

// Source is empty for configs built with NewConfig.
func (c Config) Source() locale.Source { return c.source }

// T translates key for the resolved locale with the same fallback chain as
// Translator.T, always falling back to the key.
func (c Config) T(key string, args ...string) string {
	return translate(c.catalogs, c.locale, c.fallback, key, args, func(_ locale.LanguageCode, key string) string {
		return key
	})
}

// Messages returns a copy of all catalogs.
func (c Config) Messages() map[locale.LanguageCode]map[string]any {
	return copyCatalogs(c.catalogs)
}

type configJSON struct {
	Locale   locale.LanguageCode                    `json:"locale"`
	Fallback locale.LanguageCode                    `json:"fallback"`
	Source   locale.Source                          `json:"source,omitempty"`
	Messages map[locale.LanguageCode]map[string]any `json:"messages"`
}

func (c Config) MarshalJSON() ([]byte, error) {
	messages := c.catalogs
	if messages == nil {
		messages = map[locale.LanguageCode]map[string]any{}
	}
	return json.Marshal(configJSON{
		Locale:   c.locale,
		Fallback: c.fallback,
		Source:   c.source,
		Messages: messages,
	})
}

func copyCatalogs(in map[locale.LanguageCode]map[string]any) map[locale.LanguageCode]map[string]any {
	out := make(map[locale.LanguageCode]map[string]any, len(in))
	for lang, tree := range in {
		out[lang] = copyTree(tree)
	}
	return out
}

func copyTree(in map[string]any) map[string]any {
	if in == nil {
		return nil
	}
	out := maps.Clone(in)
	for k, v := range out {
		out[k] = copyValue(v)
	}
	return out
}

func copyValue(v any) any {
	switch node := v.(type) {
	case map[string]any:
		return copyTree(node)
	case []any:
		out := make([]any, len(node))
		for i, child := range node {
			out[i] = copyValue(child)
		}
		return out
	default:
		return v
	}
}
