// Package pg bootstraps PostgreSQL access on top of pgx/v5.
//
// Connect opens a pool with retries, Migrate applies embedded goose
// migrations, Healthcheck backs the readiness probe and WithTx scopes a
// function to a transaction. The Is*Error helpers classify driver errors.
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	if err := pg.Migrate(ctx, pool, cfg, migrations.FS, log); err != nil {
//		return err
//	}
package pg
