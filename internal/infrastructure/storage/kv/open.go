package kv

import (
	"context"
	"fmt"

	"resolucity/internal/app/server/config"
)

// Open builds the Store selected by the storage driver config. The caller
// should Close the result when the store implements io.Closer.
func Open(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.Storage.Driver {
	case config.DriverMemory:
		return NewMemory(), nil
	case config.DriverFile:
		return NewFile(cfg.Storage.Path)
	case config.DriverSQLite:
		return NewSQLite(cfg.Storage.Path)
	case config.DriverPostgres:
		return NewPostgres(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}
