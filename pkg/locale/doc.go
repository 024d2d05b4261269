// Package locale decides which UI language a calculator session renders in.
//
// The supported set is closed: English ("en") and Hindi ("hi"). Resolution
// follows a fixed priority order where the first match wins:
//
//  1. The preference persisted under PreferenceKey, if it is exactly "en" or "hi".
//  2. The primary subtag of the browser language hint ("hi-IN" -> "hi"), if it is "hi".
//  3. Default ("en").
//
// Reading the preference is a single best-effort call. Any failure, including a
// missing store or a store that panics, is logged as a warning and resolution
// continues with the hint. The caller always receives a supported language.
//
// # Usage
//
//	store := locale.NewMemoryStore()
//	resolver := locale.New(store, locale.WithLogger(log))
//
//	lang := resolver.Resolve(ctx, "hi-IN") // locale.Hindi
//
// # Stores
//
// Any type implementing Store can back the resolver. MemoryStore and the
// request-bound CookieStore live here; Redis and Postgres stores are provided
// by the redis and pg packages. Writers validate values through SavePreference,
// the resolver itself never writes.
package locale
