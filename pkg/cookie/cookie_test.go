package cookie_test

import (
	"encoding/base64"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dmitrymomot/areacalc/pkg/cookie"
)

const (
	secret    = "this-is-a-very-long-secret-key-32-chars-long"
	oldSecret = "this-is-old-very-long-secret-key-32-chars-ok"
)

func requestWith(w *httptest.ResponseRecorder) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range w.Result().Cookies() {
		r.AddCookie(c)
	}
	return r
}

func TestNew(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		secrets []string
		wantErr error
	}{
		{name: "no secrets", secrets: []string{}, wantErr: cookie.ErrNoSecret},
		{name: "empty secrets", secrets: []string{"", ""}, wantErr: cookie.ErrNoSecret},
		{name: "secret too short", secrets: []string{"short"}, wantErr: cookie.ErrSecretTooShort},
		{name: "valid secret", secrets: []string{secret}},
		{name: "multiple secrets with rotation", secrets: []string{secret, oldSecret}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := cookie.New(tt.secrets)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestManager_SetGet(t *testing.T) {
	t.Parallel()
	m, _ := cookie.New([]string{secret})

	w := httptest.NewRecorder()
	if err := m.Set(w, "calculatorPreferredLanguage", "hi"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	got, err := m.Get(requestWith(w), "calculatorPreferredLanguage")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != "hi" {
		t.Errorf("Get() = %v, want %v", got, "hi")
	}

	if _, err := m.Get(httptest.NewRequest(http.MethodGet, "/", nil), "missing"); !errors.Is(err, cookie.ErrCookieNotFound) {
		t.Errorf("Get() missing error = %v, want %v", err, cookie.ErrCookieNotFound)
	}

	if err := m.Set(w, "", "x"); !errors.Is(err, cookie.ErrEmptyName) {
		t.Errorf("Set() empty name error = %v, want %v", err, cookie.ErrEmptyName)
	}
}

func TestManager_SetGetSigned(t *testing.T) {
	t.Parallel()
	m, _ := cookie.New([]string{secret})

	w := httptest.NewRecorder()
	if err := m.SetSigned(w, "visitor", "6f1c2a"); err != nil {
		t.Fatalf("SetSigned() error = %v", err)
	}

	got, err := m.GetSigned(requestWith(w), "visitor")
	if err != nil {
		t.Fatalf("GetSigned() error = %v", err)
	}
	if got != "6f1c2a" {
		t.Errorf("GetSigned() = %v, want %v", got, "6f1c2a")
	}
}

func TestManager_SignedTamperDetection(t *testing.T) {
	t.Parallel()
	m, _ := cookie.New([]string{secret})

	w := httptest.NewRecorder()
	if err := m.SetSigned(w, "visitor", "original"); err != nil {
		t.Fatalf("SetSigned() error = %v", err)
	}

	signed, _ := m.Get(requestWith(w), "visitor")
	_, sig, ok := strings.Cut(signed, "|")
	if !ok {
		t.Fatalf("unexpected signed format %q", signed)
	}

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: "visitor", Value: base64.URLEncoding.EncodeToString([]byte("tampered")) + "|" + sig})
	if _, err := m.GetSigned(r, "visitor"); !errors.Is(err, cookie.ErrInvalidSignature) {
		t.Errorf("GetSigned() tampered error = %v, want %v", err, cookie.ErrInvalidSignature)
	}

	for _, v := range []string{"no-separator", "!!!|sig"} {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: "visitor", Value: v})
		if _, err := m.GetSigned(r, "visitor"); !errors.Is(err, cookie.ErrInvalidFormat) {
			t.Errorf("GetSigned(%q) error = %v, want %v", v, err, cookie.ErrInvalidFormat)
		}
	}
}

func TestManager_SecretRotation(t *testing.T) {
	t.Parallel()

	oldMgr, _ := cookie.New([]string{oldSecret})
	w := httptest.NewRecorder()
	if err := oldMgr.SetSigned(w, "visitor", "abc"); err != nil {
		t.Fatalf("SetSigned() error = %v", err)
	}

	rotated, _ := cookie.New([]string{secret, oldSecret})
	got, err := rotated.GetSigned(requestWith(w), "visitor")
	if err != nil {
		t.Fatalf("GetSigned() with rotated secrets error = %v", err)
	}
	if got != "abc" {
		t.Errorf("GetSigned() = %v, want %v", got, "abc")
	}

	fresh, _ := cookie.New([]string{secret})
	if _, err := fresh.GetSigned(requestWith(w), "visitor"); !errors.Is(err, cookie.ErrInvalidSignature) {
		t.Errorf("GetSigned() without old secret error = %v, want %v", err, cookie.ErrInvalidSignature)
	}
}

func TestManager_Delete(t *testing.T) {
	t.Parallel()
	m, _ := cookie.New([]string{secret}, cookie.WithPath("/app"))

	w := httptest.NewRecorder()
	m.Delete(w, "calculatorPreferredLanguage")

	cookies := w.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected 1 cookie, got %d", len(cookies))
	}
	if cookies[0].MaxAge != -1 {
		t.Errorf("MaxAge = %d, want -1", cookies[0].MaxAge)
	}
	if cookies[0].Path != "/app" {
		t.Errorf("Path = %q, want %q", cookies[0].Path, "/app")
	}
}

func TestManager_Options(t *testing.T) {
	t.Parallel()
	m, _ := cookie.New([]string{secret}, cookie.WithSecure(true), cookie.WithDomain("example.com"))

	w := httptest.NewRecorder()
	_ = m.Set(w, "lang", "en", cookie.WithMaxAge(3600), cookie.WithHTTPOnly(false), cookie.WithSameSite(http.SameSiteStrictMode))

	c := w.Result().Cookies()[0]
	if !c.Secure || c.Domain != "example.com" {
		t.Errorf("defaults not applied: secure=%v domain=%q", c.Secure, c.Domain)
	}
	if c.MaxAge != 3600 || c.HttpOnly || c.SameSite != http.SameSiteStrictMode {
		t.Errorf("per-call options not applied: %+v", c)
	}

	// per-call options must not leak into later cookies
	w = httptest.NewRecorder()
	_ = m.Set(w, "other", "x")
	c = w.Result().Cookies()[0]
	if c.MaxAge != 0 || !c.HttpOnly || c.SameSite != http.SameSiteLaxMode {
		t.Errorf("defaults mutated by per-call options: %+v", c)
	}
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	m, err := cookie.NewFromConfig(cookie.Config{Secrets: " " + secret + " , ", Path: "/", SameSite: http.SameSiteLaxMode})
	if err != nil {
		t.Fatalf("NewFromConfig() error = %v", err)
	}
	if m == nil {
		t.Fatal("NewFromConfig() returned nil manager")
	}

	if _, err := cookie.NewFromConfig(cookie.Config{}); !errors.Is(err, cookie.ErrNoSecret) {
		t.Errorf("NewFromConfig() without secrets error = %v, want %v", err, cookie.ErrNoSecret)
	}
}
