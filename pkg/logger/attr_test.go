package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/areacalc/pkg/locale"
	"github.com/dmitrymomot/areacalc/pkg/logger"
)

func TestGroup(t *testing.T) {
	attr := logger.Group("req", slog.String("id", "1"), slog.Int("n", 2))
	require.Equal(t, "req", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "id", g[0].Key)
	assert.Equal(t, "n", g[1].Key)
}

func TestError(t *testing.T) {
	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))

	attr := logger.Error(errors.New("boom"))
	assert.Equal(t, "error", attr.Key)
	assert.Equal(t, "boom", attr.Value.Any().(error).Error())
}

func TestIdentifiers(t *testing.T) {
	assert.True(t, logger.RequestID("").Equal(slog.Attr{}))
	assert.Equal(t, "request_id", logger.RequestID("r1").Key)

	assert.True(t, logger.VisitorID("").Equal(slog.Attr{}))
	assert.Equal(t, "v1", logger.VisitorID("v1").Value.String())
}

func TestLocaleAttrs(t *testing.T) {
	attr := logger.Locale(locale.Hindi)
	assert.Equal(t, "locale", attr.Key)
	assert.Equal(t, "hi", attr.Value.String())

	src := logger.Source(locale.SourceHint)
	assert.Equal(t, "locale_source", src.Key)
	assert.Equal(t, "hint", src.Value.String())
}
