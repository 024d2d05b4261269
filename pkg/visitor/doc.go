// Package visitor gives every browser a stable anonymous identifier.
//
// Middleware reads a signed visitor cookie, issues a fresh UUID when it is
// missing or tampered with, and stores the ID in the request context. Server
// side preference stores (Redis, Postgres, memory) use the ID as their scope:
//
//	r.Use(visitor.Middleware(cookies))
//	...
//	store := redisPrefs.For(visitor.FromContext(r.Context()))
package visitor
