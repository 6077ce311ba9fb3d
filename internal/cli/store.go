package cli

import (
	"context"
	"fmt"
	"log/slog"

	"postboard/config"
	"postboard/database"
	"postboard/internal/repository"
	"postboard/internal/repository/gormstore"
	"postboard/internal/repository/mongostore"
)

// openStore connects the backend selected by DB_DRIVER.
func openStore(ctx context.Context, cfg config.Config, logger *slog.Logger) (*repository.Store, error) {
	switch cfg.DBDriver {
	case config.DriverMongo:
		client, err := database.ConnectMongo(ctx, cfg.MongoURI)
		if err != nil {
			return nil, err
		}
		logger.Info("Connected to MongoDB", "db", cfg.MongoDB)
		return mongostore.New(client, client.Database(cfg.MongoDB)), nil
	case config.DriverPostgres, config.DriverSQLite:
		db, err := database.OpenSQL(cfg.DBDriver, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		logger.Info("Connected to SQL database", "driver", cfg.DBDriver)
		return gormstore.New(db), nil
	default:
		return nil, fmt.Errorf("unknown DB_DRIVER %q", cfg.DBDriver)
	}
}
