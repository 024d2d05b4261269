// Package pg connects to PostgreSQL with pgx/v5, applies the embedded goose
// migrations and stores language preferences in the preferences table.
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer pool.Close()
//
//	if err := pg.Migrate(ctx, pool, cfg, log); err != nil {
//		return err
//	}
//
//	prefs := pg.NewPreferenceStore(pool)
//	lang := locale.Resolve(ctx, prefs.For(visitorID), hint)
//
// Configuration is read from PG_* environment variables, see Config.
package pg
