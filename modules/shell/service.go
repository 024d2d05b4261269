package shell

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/areacalc/handler"
	"github.com/dmitrymomot/areacalc/pkg/i18n"
	"github.com/dmitrymomot/areacalc/pkg/locale"
	"github.com/dmitrymomot/areacalc/pkg/logger"
)

// PreferenceStores returns the writable preference store of the visitor
// behind a request.
type PreferenceStores func(w http.ResponseWriter, r *http.Request) locale.ReadWriter

// Service serves the app shell and the language API.
type Service struct {
	translator   *i18n.Translator
	stores       PreferenceStores
	views        Views
	assetPath    string
	manifestPath string
	log          *slog.Logger
	errorHandler handler.ErrorHandler[Context]
}

type Option func(*Service)

func WithViews(v Views) Option {
	return func(s *Service) { s.views = v }
}

// WithAssetPath sets the client bundle loaded by the page.
func WithAssetPath(path string) Option {
	return func(s *Service) {
		if path != "" {
			s.assetPath = path
		}
	}
}

// WithManifestPath links the web app manifest from the page, which makes
// the calculator installable.
func WithManifestPath(path string) Option {
	return func(s *Service) { s.manifestPath = path }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

func NewService(translator *i18n.Translator, stores PreferenceStores, opts ...Option) *Service {
	if translator == nil {
		panic("shell: translator is required")
	}
	if stores == nil {
		panic("shell: preference stores are required")
	}

	s := &Service{
		translator: translator,
		stores:     stores,
		assetPath:  "/assets/app.js",
		log:        logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.views = s.views.withDefaults()
	s.errorHandler = handler.NewErrorHandler[Context](s.log, handler.ErrorHandlerConfig{ErrorPage: s.views.ErrorPage})
	return s
}

// ReadStores adapts the preference stores for i18n.Middleware.
func (s *Service) ReadStores() i18n.StoreFactory {
	return func(w http.ResponseWriter, r *http.Request) locale.Store {
		return s.stores(w, r)
	}
}

// ErrorHandler is shared with routes mounted outside the service.
func (s *Service) ErrorHandler() handler.ErrorHandler[Context] {
	return s.errorHandler
}

// Handle returns the shell routes. i18n.Middleware must run before it.
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	r.Get("/", wrap(s, s.page))
	r.Route("/api", func(r chi.Router) {
		r.Get("/i18n", wrap(s, s.i18nConfig))
		r.Get("/languages", wrap(s, s.languages))
		r.Put("/preference", wrap(s, s.setPreference,
			handler.WithBinders[Context, SetPreferenceRequest](handler.BindJSON())))
		r.Delete("/preference", wrap(s, s.clearPreference))
	})

	r.NotFound(wrap(s, func(Context, struct{}) handler.Response {
		return handler.JSONError(handler.ErrNotFound)
	}))
	r.MethodNotAllowed(wrap(s, func(Context, struct{}) handler.Response {
		return handler.JSONError(handler.ErrMethodNotAllowed)
	}))
	return r
}

func wrap[R any](s *Service, h handler.HandlerFunc[Context, R], opts ...handler.WrapOption[Context, R]) http.HandlerFunc {
	base := []handler.WrapOption[Context, R]{
		handler.WithContextFactory[Context, R](s.newContext),
		handler.WithErrorHandler[Context, R](s.errorHandler),
	}
	return handler.Wrap(h, append(base, opts...)...)
}

func (s *Service) page(ctx Context, _ struct{}) handler.Response {
	cfg := ctx.I18n()
	return handler.Templ(s.views.Page(PageParams{
		Config:       cfg,
		Languages:    LanguageOptions(cfg.Locale()),
		AssetPath:    s.assetPath,
		ManifestPath: s.manifestPath,
	}))
}

func (s *Service) i18nConfig(ctx Context, _ struct{}) handler.Response {
	return handler.JSON(ctx.I18n())
}

func (s *Service) languages(ctx Context, _ struct{}) handler.Response {
	return handler.JSON(LanguageOptions(ctx.I18n().Locale()))
}

type SetPreferenceRequest struct {
	Language string `json:"language"`
}

type PreferenceResponse struct {
	Locale  locale.LanguageCode `json:"locale"`
	Source  locale.Source       `json:"source"`
	Message string              `json:"message"`
}

func (s *Service) setPreference(ctx Context, req SetPreferenceRequest) handler.Response {
	r := ctx.Request()
	code, err := locale.SavePreference(ctx, s.stores(ctx.ResponseWriter(), r), req.Language)
	if err != nil {
		if errors.Is(err, locale.ErrInvalidLanguage) {
			verr := handler.NewValidationError()
			verr.Add("language", ctx.I18n().T("errors.unsupported_language"))
			return errorResponse{verr}
		}
		return errorResponse{storeError(err)}
	}

	s.log.InfoContext(ctx, "language preference saved",
		logger.Component("shell"),
		logger.Locale(code),
	)

	// Confirm in the newly chosen language.
	cfg := s.translator.Configure(locale.Resolution{Locale: code, Source: locale.SourcePreference})
	return handler.JSON(PreferenceResponse{
		Locale:  code,
		Source:  locale.SourcePreference,
		Message: cfg.T("language.saved"),
	})
}

func (s *Service) clearPreference(ctx Context, _ struct{}) handler.Response {
	if err := locale.ClearPreference(ctx, s.stores(ctx.ResponseWriter(), ctx.Request())); err != nil {
		return errorResponse{storeError(err)}
	}
	s.log.InfoContext(ctx, "language preference cleared", logger.Component("shell"))
	return handler.Empty()
}

func storeError(err error) error {
	if errors.Is(err, locale.ErrStoreUnavailable) {
		return errors.Join(handler.ErrServiceUnavailable, err)
	}
	return err
}

// errorResponse hands err to the service error handler so the client gets a
// localized, logged error instead of a bare JSON body.
type errorResponse struct{ err error }

func (e errorResponse) Render(http.ResponseWriter, *http.Request) error { return e.err }
