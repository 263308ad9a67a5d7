package root

import (
	"context"
	"database/sql"

	"studytime/internal/engine"
	"studytime/internal/storage"
)

func openDB(ctx context.Context) (*sql.DB, func(), error) {
	path, err := storage.ResolveDBPath(cfg.DBPath)
	if err != nil {
		return nil, nil, err
	}
	db, err := storage.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = db.Close()
	}
	return db, cleanup, nil
}

// openService opens the store and loads the persisted state.
func openService(ctx context.Context, opts ...engine.Option) (*engine.Service, func(), error) {
	db, closeDB, err := openDB(ctx)
	if err != nil {
		return nil, nil, err
	}
	opts = append([]engine.Option{engine.WithNamespace(cfg.Namespace)}, opts...)
	svc := engine.NewService(db, opts...)
	svc.Load(ctx)
	cleanup := func() {
		svc.Close()
		closeDB()
	}
	return svc, cleanup, nil
}
