// Package redis connects to Redis and stores language preferences in it.
//
// Connect wraps github.com/redis/go-redis with retries bounded by a timeout,
// Healthcheck adapts a client to a readiness probe, and PreferenceStore
// implements locale.Store and locale.Writer on top of plain GET/SET/DEL.
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	prefs := redis.NewPreferenceStore(client, cfg)
//	lang := locale.Resolve(ctx, prefs.For(visitorID), hint)
//
// Configuration is read from REDIS_* environment variables, see Config.
package redis
