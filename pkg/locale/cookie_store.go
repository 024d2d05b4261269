package locale

import (
	"context"
	"errors"
	"net/http"

	"github.com/dmitrymomot/areacalc/pkg/cookie"
)

// preferenceCookieMaxAge keeps the preference for a year, close to how long
// browser local storage survives in practice.
const preferenceCookieMaxAge = 365 * 24 * 60 * 60

// CookieStore keeps the preference in a cookie named after the key.
// It is bound to a single request/response pair.
type CookieStore struct {
	mgr *cookie.Manager
	w   http.ResponseWriter
	r   *http.Request

	// written caches values set during this request so a later Get
	// observes them before the browser sends the cookie back.
	written map[string]*string
}

// NewCookieStore returns a store reading cookies from r and writing them to w.
// w may be nil for a read-only store.
func NewCookieStore(mgr *cookie.Manager, w http.ResponseWriter, r *http.Request) *CookieStore {
	return &CookieStore{mgr: mgr, w: w, r: r, written: make(map[string]*string)}
}

// Get implements Store.
func (s *CookieStore) Get(_ context.Context, key string) (string, error) {
	if key == "" {
		return "", ErrEmptyKey
	}
	if v, ok := s.written[key]; ok {
		if v == nil {
			return "", ErrNotFound
		}
		return *v, nil
	}
	if s.mgr == nil || s.r == nil {
		return "", ErrStoreUnavailable
	}

	v, err := s.mgr.Get(s.r, key)
	if err != nil {
		if errors.Is(err, cookie.ErrCookieNotFound) {
			return "", ErrNotFound
		}
		return "", err
	}
	return v, nil
}

// Set implements Writer. The cookie stays readable by client scripts,
// which read the same key on the client side.
func (s *CookieStore) Set(_ context.Context, key, value string) error {
	if key == "" {
		return ErrEmptyKey
	}
	if s.mgr == nil || s.w == nil {
		return ErrStoreUnavailable
	}

	if err := s.mgr.Set(s.w, key, value,
		cookie.WithMaxAge(preferenceCookieMaxAge),
		cookie.WithHTTPOnly(false),
	); err != nil {
		return err
	}
	s.written[key] = &value
	return nil
}

// Delete implements Writer.
func (s *CookieStore) Delete(_ context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	if s.mgr == nil || s.w == nil {
		return ErrStoreUnavailable
	}

	s.mgr.Delete(s.w, key)
	s.written[key] = nil
	return nil
}
