package cli

import (
	"context"
	"fmt"
	"log/slog"

	"ltask/internal/backend/filekv"
	"ltask/internal/backend/sqlitekv"
	"ltask/internal/codec"
	"ltask/internal/config"
	"ltask/internal/kv"
	"ltask/internal/service"
)

// OpenStore builds the task store for cfg: the file backend keeps one
// <key>.<format> file in the config directory, the sqlite backend one row in
// ltask.db. cfg must already be validated.
func OpenStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.Service, error) {
	c, err := codec.ForFormat(cfg.Format)
	if err != nil {
		return nil, err
	}

	var store kv.Store
	switch cfg.Backend {
	case config.BackendSQLite:
		var db *sqlitekv.Store
		db, err = sqlitekv.Open(ctx, cfg.DatabasePath())
		if err == nil {
			if at, ok, uerr := db.UpdatedAt(ctx, cfg.Key); uerr == nil && ok {
				logger.Debug("opened database", "path", cfg.DatabasePath(), "updated_at", at)
			}
			store = db
		}
	case config.BackendFile:
		store, err = filekv.New(cfg.DataDir(), c.Format())
	default:
		return nil, fmt.Errorf("unknown backend: %s", cfg.Backend)
	}
	if err != nil {
		return nil, err
	}

	return service.New(store,
		service.WithCodec(c),
		service.WithKey(cfg.Key),
		service.WithLogger(logger),
	), nil
}
