package shell

import (
	"net/http"

	"github.com/dmitrymomot/areacalc/handler"
	"github.com/dmitrymomot/areacalc/pkg/i18n"
	"github.com/dmitrymomot/areacalc/pkg/locale"
)

// Context exposes the request's i18n configuration to shell handlers.
type Context interface {
	handler.Context
	I18n() i18n.Config
}

type shellContext struct {
	handler.Context
	cfg i18n.Config
}

func (c *shellContext) I18n() i18n.Config { return c.cfg }

// newContext falls back to the default locale when the request did not go
// through i18n.Middleware.
func (s *Service) newContext(w http.ResponseWriter, r *http.Request) Context {
	cfg, ok := i18n.ConfigFromContext(r.Context())
	if !ok {
		cfg = s.translator.Configure(locale.Resolution{Locale: locale.Default, Source: locale.SourceDefault})
	}
	return &shellContext{Context: handler.NewContext(w, r), cfg: cfg}
}
