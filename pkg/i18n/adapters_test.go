package i18n_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/areacalc/pkg/i18n"
)

func TestMapAdapter(t *testing.T) {
	t.Parallel()

	got, err := (&i18n.MapAdapter{}).Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)

	data := map[string]map[string]any{"en": {"a": "b"}}
	got, err = (&i18n.MapAdapter{Data: data}).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestFSAdapter(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"locales/en.yaml":    {Data: []byte("en:\n  app:\n    title: Area Calculator\n")},
		"locales/hi.json":    {Data: []byte(`{"hi":{"app":{"title":"क्षेत्रफल कैलकुलेटर"}}}`)},
		"locales/extra.yml":  {Data: []byte("en:\n  units:\n    sqft: sq ft\n")},
		"locales/notes.txt":  {Data: []byte("ignored")},
		"locales/sub/x.yaml": {Data: []byte("fr:\n  a: b\n")},
	}

	t.Run("parser by extension merges files", func(t *testing.T) {
		t.Parallel()
		got, err := i18n.NewFSAdapter(nil, fsys, "locales").Load(context.Background())
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"en", "hi"}, keys(got))
		assert.Contains(t, got["en"], "app")
		assert.Contains(t, got["en"], "units")
	})

	t.Run("fixed parser skips other extensions", func(t *testing.T) {
		t.Parallel()
		got, err := i18n.NewFSAdapter(i18n.NewJSONParser(), fsys, "locales").Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"hi"}, keys(got))
	})

	t.Run("no matching files", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.NewFSAdapter(nil, fstest.MapFS{"x/readme.md": {}}, "x").Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrNoTranslationFiles)
	})

	t.Run("missing directory", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.NewFSAdapter(nil, fsys, "nope").Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrFailedToReadDir)
	})

	t.Run("broken file fails the load", func(t *testing.T) {
		t.Parallel()
		broken := fstest.MapFS{"en.yaml": {Data: []byte("en: [")}}
		_, err := i18n.NewFSAdapter(nil, broken, "").Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrFailedToParseFile)
	})

	t.Run("empty file", func(t *testing.T) {
		t.Parallel()
		empty := fstest.MapFS{"en.yaml": {Data: nil}}
		_, err := i18n.NewFSAdapter(nil, empty, ".").Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrEmptyFile)
	})

	t.Run("nil filesystem", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.NewFSAdapter(nil, nil, ".").Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrEmptyPath)
	})
}

func TestFileAndDirectoryAdapters(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "en.yaml"), []byte("en:\n  a: b\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hi.yaml"), []byte("hi:\n  a: ख\n"), 0o600))

	got, err := i18n.NewFileAdapter(nil, filepath.Join(dir, "hi.yaml")).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ख", got["hi"]["a"])

	_, err = i18n.NewFileAdapter(nil, filepath.Join(dir, "missing.yaml")).Load(context.Background())
	assert.ErrorIs(t, err, i18n.ErrFailedToReadFile)

	_, err = i18n.NewFileAdapter(nil, filepath.Join(dir, "catalog.ini")).Load(context.Background())
	assert.ErrorIs(t, err, i18n.ErrNilParser)

	_, err = i18n.NewFileAdapter(nil, "").Load(context.Background())
	assert.ErrorIs(t, err, i18n.ErrEmptyPath)

	got, err = i18n.NewDirectoryAdapter(i18n.NewYAMLParser(), dir).Load(context.Background())
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"en", "hi"}, keys(got))

	_, err = i18n.NewDirectoryAdapter(nil, "").Load(context.Background())
	assert.ErrorIs(t, err, i18n.ErrEmptyPath)
}

func keys(m map[string]map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
