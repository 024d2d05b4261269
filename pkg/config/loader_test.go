package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/areacalc/pkg/config"
)

type appConfig struct {
	Env             string        `env:"APP_ENV" envDefault:"development"`
	PreferenceStore string        `env:"PREFERENCE_STORE" envDefault:"cookie"`
	Languages       []string      `env:"LANGUAGES" envSeparator:"," envDefault:"en,hi"`
	Timeout         time.Duration `env:"TIMEOUT" envDefault:"5s"`
}

type requiredConfig struct {
	Secret string `env:"REQUIRED_SECRET,required"`
}

func TestLoad_Defaults(t *testing.T) {
	var cfg appConfig
	require.NoError(t, config.Load(&cfg, config.WithEnvironment(map[string]string{})))

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "cookie", cfg.PreferenceStore)
	assert.Equal(t, []string{"en", "hi"}, cfg.Languages)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
}

func TestLoad_FromProcessEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("PREFERENCE_STORE", "redis")
	t.Setenv("TIMEOUT", "250ms")

	var cfg appConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "redis", cfg.PreferenceStore)
	assert.Equal(t, 250*time.Millisecond, cfg.Timeout)
}

func TestLoad_WithPrefix(t *testing.T) {
	var cfg appConfig
	err := config.Load(&cfg,
		config.WithPrefix("AREACALC_"),
		config.WithEnvironment(map[string]string{"AREACALC_PREFERENCE_STORE": "postgres", "PREFERENCE_STORE": "memory"}),
	)
	require.NoError(t, err)
	assert.Equal(t, "postgres", cfg.PreferenceStore)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("nil pointer", func(t *testing.T) {
		var cfg *appConfig
		assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
	})

	t.Run("missing required", func(t *testing.T) {
		var cfg requiredConfig
		err := config.Load(&cfg, config.WithEnvironment(map[string]string{}))
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("invalid value", func(t *testing.T) {
		var cfg appConfig
		err := config.Load(&cfg, config.WithEnvironment(map[string]string{"TIMEOUT": "soon"}))
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})
}

func TestMustLoad(t *testing.T) {
	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg, config.WithEnvironment(map[string]string{}))
	})

	assert.NotPanics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg, config.WithEnvironment(map[string]string{"REQUIRED_SECRET": "x"}))
	})
}
