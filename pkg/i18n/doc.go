// Package i18n loads translation catalogs and binds them to the locale
// resolved for a request.
//
// Catalogs are nested key trees per language, loaded through a
// TranslationAdapter (MapAdapter, FileAdapter, DirectoryAdapter or FSAdapter
// over any fs.FS) and decoded by a YAML or JSON Parser:
//
//	translator, err := i18n.NewTranslator(ctx,
//		i18n.NewFSAdapter(nil, translations.FS, "."),
//		i18n.WithSupportedLanguages(locale.Supported()...),
//		i18n.WithFallbackLanguage(locale.English),
//	)
//
// Keys are dot-separated and values may contain %{name} placeholders:
//
//	translator.T(locale.Hindi, "app.title")
//	translator.T(locale.English, "calculator.result", "value", "42")
//
// A key missing in the requested language falls back to the fallback
// language, then to the key itself.
//
// # Config
//
// There is no package-level translator state. A Config is an immutable value
// that pairs one resolved locale with a copy of the catalogs:
//
//	cfg := translator.Configure(resolver.ResolveDetailed(ctx, hint))
//	cfg.T("app.title")
//	json.Marshal(cfg) // {"locale":"hi","fallback":"en","source":"hint","messages":{...}}
//
// # HTTP
//
// Middleware resolves the locale on every request from the visitor's
// preference store and the Accept-Language header (HintFromRequest), then
// stores the Config in the request context for ConfigFromContext and
// LocaleFromContext.
package i18n
