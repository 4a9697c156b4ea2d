// Package db provides the PostgreSQL connection pool and schema migrations
// for the provider registry.
//
// Example usage:
//
//	pg, err := db.New(ctx, cfg.Database, log)
//	if err != nil {
//	    return err
//	}
//	defer pg.Close()
//
//	if err := db.Migrate(ctx, pg, log); err != nil {
//	    return err
//	}
package db
