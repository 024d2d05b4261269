// Package cookie wraps net/http cookies with shared defaults and HMAC signing.
//
// A Manager is created with one or more secrets of at least 32 characters. The
// first secret signs new cookies; every secret is tried when verifying, which
// allows rotating keys without invalidating cookies already issued.
//
//	mgr, err := cookie.New([]string{os.Getenv("COOKIE_SECRET")})
//	if err != nil {
//		return err
//	}
//
//	_ = mgr.Set(w, "calculatorPreferredLanguage", "hi", cookie.WithHTTPOnly(false))
//	_ = mgr.SetSigned(w, "visitor", id)
//
//	id, err := mgr.GetSigned(r, "visitor")
//	if errors.Is(err, cookie.ErrInvalidSignature) {
//		// tampered or signed with an unknown key
//	}
//
// Config can be populated from the environment (COOKIE_* variables) and turned
// into a Manager with NewFromConfig.
package cookie
