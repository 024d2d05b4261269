package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/areacalc/modules/shell"
	"github.com/dmitrymomot/areacalc/pkg/config"
	"github.com/dmitrymomot/areacalc/pkg/cookie"
	"github.com/dmitrymomot/areacalc/pkg/httpserver"
	"github.com/dmitrymomot/areacalc/pkg/locale"
	"github.com/dmitrymomot/areacalc/pkg/pg"
	"github.com/dmitrymomot/areacalc/pkg/redis"
	"github.com/dmitrymomot/areacalc/pkg/visitor"
)

// storeBackend is the preference store selected by PREFERENCE_STORE.
type storeBackend struct {
	name   string
	stores shell.PreferenceStores
	checks []httpserver.Check
	close  func() error
}

func openStore(ctx context.Context, name string, cookies *cookie.Manager, log *slog.Logger) (storeBackend, error) {
	noop := func() error { return nil }

	switch name {
	case "cookie":
		return storeBackend{
			name: name,
			stores: func(w http.ResponseWriter, r *http.Request) locale.ReadWriter {
				return locale.NewCookieStore(cookies, w, r)
			},
			close: noop,
		}, nil

	case "memory":
		mem := locale.NewMemoryStore()
		return storeBackend{
			name: name,
			stores: func(_ http.ResponseWriter, r *http.Request) locale.ReadWriter {
				return mem.Scoped(visitor.FromContext(r.Context()))
			},
			close: noop,
		}, nil

	case "redis":
		var cfg redis.Config
		if err := config.Load(&cfg); err != nil {
			return storeBackend{}, err
		}
		client, err := redis.Connect(ctx, cfg)
		if err != nil {
			return storeBackend{}, err
		}
		prefs := redis.NewPreferenceStore(client, cfg)
		return storeBackend{
			name: name,
			stores: func(_ http.ResponseWriter, r *http.Request) locale.ReadWriter {
				return prefs.For(visitor.FromContext(r.Context()))
			},
			checks: []httpserver.Check{{Name: "redis", Probe: redis.Healthcheck(client)}},
			close:  client.Close,
		}, nil

	case "postgres":
		var cfg pg.Config
		if err := config.Load(&cfg); err != nil {
			return storeBackend{}, err
		}
		pool, err := pg.Connect(ctx, cfg)
		if err != nil {
			return storeBackend{}, err
		}
		if err := pg.Migrate(ctx, pool, cfg, log); err != nil {
			pool.Close()
			return storeBackend{}, err
		}
		prefs := pg.NewPreferenceStore(pool)
		return storeBackend{
			name: name,
			stores: func(_ http.ResponseWriter, r *http.Request) locale.ReadWriter {
				return prefs.For(visitor.FromContext(r.Context()))
			},
			checks: []httpserver.Check{{Name: "postgres", Probe: pg.Healthcheck(pool)}},
			close:  func() error { pool.Close(); return nil },
		}, nil
	}
	return storeBackend{}, fmt.Errorf("unknown preference store %q", name)
}
