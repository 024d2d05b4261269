package i18n_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/areacalc/pkg/i18n"
)

func TestYAMLParser(t *testing.T) {
	t.Parallel()
	p := i18n.NewYAMLParser()

	t.Run("nested sections", func(t *testing.T) {
		t.Parallel()
		got, err := p.Parse(context.Background(), []byte(`
en:
  app:
    title: Area Calculator
hi:
  app:
    title: क्षेत्रफल कैलकुलेटर
`))
		require.NoError(t, err)
		require.Contains(t, got, "hi")
		app, ok := got["hi"]["app"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "क्षेत्रफल कैलकुलेटर", app["title"])
	})

	t.Run("non-map language section", func(t *testing.T) {
		t.Parallel()
		_, err := p.Parse(context.Background(), []byte("en: just a string\n"))
		assert.ErrorIs(t, err, i18n.ErrInvalidStructure)
	})

	t.Run("malformed", func(t *testing.T) {
		t.Parallel()
		_, err := p.Parse(context.Background(), []byte("en: [unclosed"))
		assert.ErrorIs(t, err, i18n.ErrFailedToParse)
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := p.Parse(ctx, []byte("en: {}"))
		assert.ErrorIs(t, err, i18n.ErrParsingCancelled)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestJSONParser(t *testing.T) {
	t.Parallel()
	p := i18n.NewJSONParser()

	got, err := p.Parse(context.Background(), []byte(`{"en":{"app":{"title":"Area Calculator"}}}`))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"title": "Area Calculator"}, got["en"]["app"])

	_, err = p.Parse(context.Background(), []byte(`{"en":"flat"}`))
	assert.ErrorIs(t, err, i18n.ErrInvalidStructure)

	_, err = p.Parse(context.Background(), []byte(`{`))
	assert.ErrorIs(t, err, i18n.ErrFailedToParse)
}

func TestParserExtensions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		file string
		want any
	}{
		{"en.yaml", &i18n.YAMLParser{}},
		{"en.YML", &i18n.YAMLParser{}},
		{"hi.json", &i18n.JSONParser{}},
		{"README.md", nil},
		{"noext", nil},
	}
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			t.Parallel()
			p := i18n.NewParserForFile(tt.file)
			if tt.want == nil {
				assert.Nil(t, p)
				return
			}
			assert.IsType(t, tt.want, p)
		})
	}

	assert.True(t, i18n.NewJSONParser().SupportsFileExtension(".json"))
	assert.True(t, i18n.NewYAMLParser().SupportsFileExtension("yml"))
	assert.False(t, i18n.NewYAMLParser().SupportsFileExtension("json"))
}
