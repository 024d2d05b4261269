package shell

import (
	"github.com/a-h/templ"

	"github.com/dmitrymomot/areacalc/handler"
	"github.com/dmitrymomot/areacalc/pkg/i18n"
)

//go:generate templ generate

// PageParams feeds the app shell page.
type PageParams struct {
	// Config is embedded as JSON for the client UI.
	Config    i18n.Config
	Languages []LanguageOption
	AssetPath string
	// ManifestPath links the web app manifest when set.
	ManifestPath string
}

// Views lets the embedding application replace the built-in markup.
type Views struct {
	Page      func(PageParams) templ.Component
	ErrorPage func(handler.ErrorPageParams) templ.Component
}

func (v Views) withDefaults() Views {
	if v.Page == nil {
		v.Page = Page
	}
	if v.ErrorPage == nil {
		v.ErrorPage = ErrorPage
	}
	return v
}
