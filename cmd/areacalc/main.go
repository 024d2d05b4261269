// Command areacalc serves the bilingual area calculator shell.
package main

import (
	"context"
	"errors"
	"log/slog"
	"mime"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/areacalc/modules/shell"
	"github.com/dmitrymomot/areacalc/pkg/config"
	"github.com/dmitrymomot/areacalc/pkg/cookie"
	"github.com/dmitrymomot/areacalc/pkg/httpserver"
	"github.com/dmitrymomot/areacalc/pkg/i18n"
	"github.com/dmitrymomot/areacalc/pkg/locale"
	"github.com/dmitrymomot/areacalc/pkg/logger"
	"github.com/dmitrymomot/areacalc/pkg/requestid"
	"github.com/dmitrymomot/areacalc/pkg/visitor"
	"github.com/dmitrymomot/areacalc/translations"
)

// AppConfig is the process configuration. Store specific settings
// (REDIS_*, PG_*) are only loaded for the selected PREFERENCE_STORE.
type AppConfig struct {
	Env             string        `env:"APP_ENV" envDefault:"development"`
	Name            string        `env:"APP_NAME" envDefault:"areacalc"`
	PreferenceStore string        `env:"PREFERENCE_STORE" envDefault:"cookie"` // cookie, memory, redis or postgres
	AssetsDir       string        `env:"ASSETS_DIR"`                           // Serves /assets/ when set.
	Manifest        string        `env:"ASSETS_MANIFEST" envDefault:"manifest.webmanifest"`
	ReadyTimeout    time.Duration `env:"READY_TIMEOUT" envDefault:"2s"`

	HTTP   httpserver.Config
	Cookie cookie.Config
}

func init() {
	// Not in the default mime table, so FileServer would sniff it as text.
	_ = mime.AddExtensionType(".webmanifest", "application/manifest+json")
}

func main() {
	var cfg AppConfig
	config.MustLoad(&cfg)

	log := logger.New(
		logger.WithEnvironment(cfg.Env, cfg.Name),
		logger.WithContextExtractors(requestid.LoggerExtractor(), visitor.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	if err := run(context.Background(), cfg, log); err != nil {
		log.Error("areacalc stopped with error", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg AppConfig, log *slog.Logger) error {
	cookies, err := cookie.NewFromConfig(cfg.Cookie)
	if err != nil {
		return err
	}

	translator, err := i18n.NewTranslator(ctx,
		i18n.NewFSAdapter(nil, translations.FS, "."),
		i18n.WithSupportedLanguages(locale.Supported()...),
		i18n.WithFallbackLanguage(locale.English),
		i18n.WithLogger(log),
		i18n.WithMissingTranslationsLogging(logger.NormalizeEnvironment(cfg.Env) == logger.EnvDevelopment),
	)
	if err != nil {
		return err
	}

	backend, err := openStore(ctx, cfg.PreferenceStore, cookies, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := backend.close(); err != nil {
			log.Error("failed to close preference store", logger.Store(backend.name), logger.Error(err))
		}
	}()
	log.InfoContext(ctx, "preference store ready", logger.Store(backend.name))

	shellOpts := []shell.Option{shell.WithLogger(log)}
	if manifest, ok := manifestPath(cfg); ok {
		shellOpts = append(shellOpts, shell.WithManifestPath(manifest))
	}
	svc := shell.NewService(translator, backend.stores, shellOpts...)

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer,
		middleware.RealIP,
		requestid.Middleware,
		visitor.Middleware(cookies, visitor.WithLogger(log)),
	)

	r.Get("/healthz", httpserver.LivenessHandler())
	r.Get("/readyz", httpserver.ReadinessHandler(log, cfg.ReadyTimeout, backend.checks...))
	if cfg.AssetsDir != "" {
		r.Handle("/assets/*", http.StripPrefix("/assets/", http.FileServer(http.Dir(cfg.AssetsDir))))
	}

	r.With(i18n.Middleware(translator, svc.ReadStores(), i18n.WithResolverLogger(log))).
		Mount("/", svc.Handle())

	server := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	if err := server.Run(ctx, r); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// manifestPath returns the URL of the web app manifest when ASSETS_DIR ships one.
func manifestPath(cfg AppConfig) (string, bool) {
	if cfg.AssetsDir == "" || cfg.Manifest == "" {
		return "", false
	}
	if _, err := os.Stat(filepath.Join(cfg.AssetsDir, cfg.Manifest)); err != nil {
		return "", false
	}
	return path.Join("/assets", cfg.Manifest), true
}
