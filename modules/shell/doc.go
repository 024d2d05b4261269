// Package shell serves the calculator's HTML shell and its language API.
//
// Every route expects i18n.Middleware to have resolved the request locale.
// The shell page embeds the resolved i18n.Config as JSON so the client UI
// can render without a second round-trip, and the API lets the client read
// the same config, list the language switcher entries and persist or clear
// the visitor's language preference:
//
//	GET    /                 HTML shell in the resolved language
//	GET    /api/i18n         resolved locale, source and message catalogs
//	GET    /api/languages    language switcher entries
//	PUT    /api/preference   {"language":"hi"} stores the preference
//	DELETE /api/preference   removes the stored preference
//
// Usage:
//
//	svc := shell.NewService(translator, stores, shell.WithLogger(log))
//	r.With(i18n.Middleware(translator, svc.ReadStores())).Mount("/", svc.Handle())
package shell
