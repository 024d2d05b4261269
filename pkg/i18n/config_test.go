package i18n_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/areacalc/pkg/i18n"
	"github.com/dmitrymomot/areacalc/pkg/locale"
)

func TestTranslator_Configure(t *testing.T) {
	t.Parallel()
	tr := newTranslator(t)

	cfg := tr.Configure(locale.Resolution{Locale: locale.Hindi, Source: locale.SourceHint})
	assert.Equal(t, locale.Hindi, cfg.Locale())
	assert.Equal(t, locale.English, cfg.Fallback())
	assert.Equal(t, locale.SourceHint, cfg.Source())
	assert.Equal(t, "स्क्वायर फुट, गहन फुट निकाले", cfg.T("app.description"))
	assert.Equal(t, "English only", cfg.T("only_en"))
	assert.Equal(t, "missing", cfg.T("missing"))
}

func TestNewConfig(t *testing.T) {
	t.Parallel()

	catalogs := map[locale.LanguageCode]map[string]any{
		locale.English: {"app": map[string]any{"title": "Area Calculator"}},
		locale.Hindi:   {"app": map[string]any{"title": "क्षेत्रफल कैलकुलेटर"}},
	}

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()
		cfg := i18n.NewConfig("", nil, "")
		assert.Equal(t, locale.English, cfg.Locale())
		assert.Equal(t, locale.English, cfg.Fallback())
		assert.Empty(t, cfg.Source())
		assert.Empty(t, cfg.Messages())
	})

	t.Run("input catalogs are copied", func(t *testing.T) {
		t.Parallel()
		src := map[locale.LanguageCode]map[string]any{
			locale.Hindi: {"app": map[string]any{"title": "क्षेत्रफल कैलकुलेटर"}},
		}
		cfg := i18n.NewConfig(locale.Hindi, src, locale.English)
		src[locale.Hindi]["app"].(map[string]any)["title"] = "changed"
		assert.Equal(t, "क्षेत्रफल कैलकुलेटर", cfg.T("app.title"))
	})

	t.Run("messages are copies", func(t *testing.T) {
		t.Parallel()
		cfg := i18n.NewConfig(locale.Hindi, catalogs, locale.English)
		msgs := cfg.Messages()
		msgs[locale.Hindi]["app"].(map[string]any)["title"] = "changed"
		delete(msgs, locale.English)

		assert.Equal(t, "क्षेत्रफल कैलकुलेटर", cfg.T("app.title"))
		assert.Len(t, cfg.Messages(), 2)
	})

	t.Run("json bootstrap payload", func(t *testing.T) {
		t.Parallel()
		data, err := json.Marshal(i18n.NewConfig(locale.Hindi, catalogs, locale.English))
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"locale": "hi",
			"fallback": "en",
			"messages": {
				"en": {"app": {"title": "Area Calculator"}},
				"hi": {"app": {"title": "क्षेत्रफल कैलकुलेटर"}}
			}
		}`, string(data))
	})
}
