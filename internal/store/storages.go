package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-token-auth/internal/config"
	"github.com/MKhiriev/go-token-auth/internal/logger"
)

// Storages groups the persistence dependencies of the services.
type Storages struct {
	// Credentials resolves user records for login and token authentication.
	Credentials CredentialStore

	db *DB
}

// NewStorages builds the storage layer from cfg.
//
// Without a DSN the credential store is the in-memory demo store holding
// [DemoUser]. With a DSN the database is opened with the configured driver,
// migrated when cfg.DB.Migrate is set, and read by a SQL credential store.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	if cfg.DB.DSN == "" {
		logger.Warn().Str("username", DemoUser.Username).Msg("no database configured, serving the in-memory demo user")
		credentials, err := NewMemoryCredentials(DemoUser)
		if err != nil {
			return nil, fmt.Errorf("error creating in-memory credential store: %w", err)
		}
		return &Storages{Credentials: credentials}, nil
	}

	db, err := NewDB(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if cfg.DB.Migrate {
		if err = db.Migrate(); err != nil {
			db.Close()
			return nil, fmt.Errorf("error migrating database: %w", err)
		}
		logger.Info().Str("driver", db.driver).Msg("database migrated")
	}

	return &Storages{
		Credentials: NewSQLCredentials(db, logger),
		db:          db,
	}, nil
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Ping reports whether the credential backend can serve lookups.
// The in-memory store always can.
func (s *Storages) Ping(ctx context.Context) error {
	if s.db == nil {
		return nil
	}
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	return nil
}
