package database

import (
	"github.com/fiskerit/intake_backend/config"
	"github.com/fiskerit/intake_backend/internal/repo"
)

// NewStoreClient opens the application database and wraps it in the repo
// client used by the services.
func NewStoreClient(cfg config.DatabaseConfig) (*repo.Client, error) {
	return NewStoreClientFromConfig(FromCentralConfig(cfg))
}

// NewStoreClientFromConfig opens the database from package Config.
func NewStoreClientFromConfig(cfg Config) (*repo.Client, error) {
	db, err := openSQLDB(cfg)
	if err != nil {
		return nil, err
	}

	return repo.NewClient(db), nil
}
