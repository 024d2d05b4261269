package i18n_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/areacalc/pkg/i18n"
	"github.com/dmitrymomot/areacalc/pkg/locale"
)

func catalogs() map[string]map[string]any {
	return map[string]map[string]any{
		"en": {
			"app": map[string]any{
				"title":       "Area Calculator",
				"description": "Calculate square feet and cubic feet",
			},
			"calculator": map[string]any{
				"result": "Result: %{value} %{unit}",
				"units":  map[string]any{"sqft": "sq ft"},
			},
			"only_en": "English only",
		},
		"hi": {
			"app": map[string]any{
				"title":       "क्षेत्रफल कैलकुलेटर",
				"description": "स्क्वायर फुट, गहन फुट निकाले",
			},
			"calculator": map[string]any{
				"result": "परिणाम: %{value} %{unit}",
			},
		},
	}
}

func newTranslator(t *testing.T, opts ...i18n.Option) *i18n.Translator {
	t.Helper()
	tr, err := i18n.NewTranslator(context.Background(), &i18n.MapAdapter{Data: catalogs()}, opts...)
	require.NoError(t, err)
	return tr
}

func TestNewTranslator(t *testing.T) {
	t.Parallel()

	t.Run("nil adapter", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.NewTranslator(context.Background(), nil)
		assert.ErrorIs(t, err, i18n.ErrNilAdapter)
	})

	t.Run("adapter error is returned", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("boom")
		_, err := i18n.NewTranslator(context.Background(), adapterFunc(func(context.Context) (map[string]map[string]any, error) {
			return nil, boom
		}))
		assert.ErrorIs(t, err, boom)
	})

	t.Run("unsupported language rejected", func(t *testing.T) {
		t.Parallel()
		data := catalogs()
		data["fr"] = map[string]any{"app": map[string]any{"title": "Calculatrice"}}
		_, err := i18n.NewTranslator(context.Background(), &i18n.MapAdapter{Data: data},
			i18n.WithSupportedLanguages(locale.Supported()...))
		assert.ErrorIs(t, err, i18n.ErrUnsupportedLanguage)
	})

	t.Run("fallback catalog required", func(t *testing.T) {
		t.Parallel()
		data := catalogs()
		delete(data, "en")
		_, err := i18n.NewTranslator(context.Background(), &i18n.MapAdapter{Data: data})
		assert.ErrorIs(t, err, i18n.ErrMissingFallback)
	})

	t.Run("empty language code", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.NewTranslator(context.Background(), &i18n.MapAdapter{Data: map[string]map[string]any{"": {}}})
		assert.ErrorIs(t, err, i18n.ErrEmptyLanguage)
	})

	t.Run("languages sorted", func(t *testing.T) {
		t.Parallel()
		tr := newTranslator(t)
		assert.Equal(t, []locale.LanguageCode{locale.English, locale.Hindi}, tr.Languages())
		assert.Equal(t, locale.English, tr.Fallback())
	})
}

func TestTranslator_T(t *testing.T) {
	t.Parallel()
	tr := newTranslator(t)

	tests := []struct {
		name string
		lang locale.LanguageCode
		key  string
		args []string
		want string
	}{
		{"hindi nested", locale.Hindi, "app.title", nil, "क्षेत्रफल कैलकुलेटर"},
		{"english nested", locale.English, "app.description", nil, "Calculate square feet and cubic feet"},
		{"placeholders", locale.Hindi, "calculator.result", []string{"value", "12", "unit", "m²"}, "परिणाम: 12 m²"},
		{"unknown placeholder kept", locale.English, "calculator.result", []string{"value", "3"}, "Result: 3 %{unit}"},
		{"missing key falls back to english", locale.Hindi, "only_en", nil, "English only"},
		{"missing nested falls back to english", locale.Hindi, "calculator.units.sqft", nil, "sq ft"},
		{"unknown language uses fallback", "fr", "app.title", nil, "Area Calculator"},
		{"missing everywhere returns key", locale.Hindi, "nope.nothing", nil, "nope.nothing"},
		{"non-string node returns key", locale.English, "calculator.units", nil, "calculator.units"},
		{"empty key", locale.English, "", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tr.T(tt.lang, tt.key, tt.args...))
		})
	}
}

func TestTranslator_FallbackToKeyDisabled(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	tr := newTranslator(t,
		i18n.WithFallbackToKey(false),
		i18n.WithMissingTranslationsLogging(true),
		i18n.WithLogger(slog.New(slog.NewTextHandler(&buf, nil))),
	)

	assert.Equal(t, "", tr.T(locale.Hindi, "missing.key"))
	assert.Contains(t, buf.String(), "translation not found")
	assert.Contains(t, buf.String(), "key=missing.key")
}

func TestTranslator_HasTranslation(t *testing.T) {
	t.Parallel()
	tr := newTranslator(t)

	assert.True(t, tr.HasTranslation(locale.Hindi, "app.title"))
	assert.False(t, tr.HasTranslation(locale.Hindi, "only_en"))
	assert.False(t, tr.HasTranslation(locale.English, "calculator.units"))
	assert.False(t, tr.HasTranslation("fr", "app.title"))
}

func TestTranslator_FallbackLanguage(t *testing.T) {
	t.Parallel()
	tr := newTranslator(t, i18n.WithFallbackLanguage(locale.Hindi))

	assert.Equal(t, locale.Hindi, tr.Fallback())
	assert.Equal(t, "क्षेत्रफल कैलकुलेटर", tr.T("fr", "app.title"))
}

type adapterFunc func(context.Context) (map[string]map[string]any, error)

func (f adapterFunc) Load(ctx context.Context) (map[string]map[string]any, error) { return f(ctx) }
