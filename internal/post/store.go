package post

import (
	"context"

	"github.com/thenninge/aware/internal/config"
	"github.com/thenninge/aware/internal/db"
)

// Store persists posts. ID and CreatedAt are assigned by the backend;
// rows are never updated or deleted.
type Store interface {
	InitSchema(ctx context.Context) error
	Insert(ctx context.Context, p Post) (Post, error)
	List(ctx context.Context) ([]Post, error)
	Close() error
}

// OpenStore selects the backend once at startup based on configuration.
func OpenStore(cfg config.Config) (Store, error) {
	if cfg.UseSupabase {
		pool, err := db.ConnectPostgres(cfg)
		if err != nil {
			return nil, err
		}
		return NewPostgresStore(pool), nil
	}

	sqlDB, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		return nil, err
	}
	return NewSQLiteStore(sqlDB), nil
}
