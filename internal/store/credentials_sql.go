package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-token-auth/internal/logger"
	"github.com/MKhiriev/go-token-auth/models"
	"github.com/jackc/pgerrcode"
)

// sqlCredentials is the database-backed implementation of [CredentialStore].
// It reads the "users" table and never writes to it.
type sqlCredentials struct {
	db     *DB
	logger *logger.Logger
}

// NewSQLCredentials constructs a [CredentialStore] reading from db.
func NewSQLCredentials(db *DB, logger *logger.Logger) CredentialStore {
	logger.Debug().Str("driver", db.driver).Msg("creating sql credential store")
	return &sqlCredentials{
		db:     db,
		logger: logger,
	}
}

// Lookup implements [CredentialStore].
//
// Error handling:
//   - no row, or PostgreSQL no_data_found (P0002) → [ErrUserNotFound];
//   - transient driver errors → [ErrStoreUnavailable];
//   - any other query error → [ErrExecutingQuery];
//   - scan failures → [ErrScanningRow].
func (r *sqlCredentials) Lookup(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildLookupQuery(r.db.placeholder, username)
	if err != nil {
		log.Err(err).Str("func", "*sqlCredentials.Lookup").Msg("error building query")
		return models.User{}, err
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	// run the lookup
	if err = row.Err(); err != nil {
		switch {
		case postgresError(err) == pgerrcode.NoDataFound:
			return models.User{}, ErrUserNotFound
		case r.db.classify(err) == Retryable:
			log.Err(err).Str("func", "*sqlCredentials.Lookup").Msg("transient database error")
			return models.User{}, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
		default:
			log.Err(err).Str("func", "*sqlCredentials.Lookup").Msg("unexpected DB error")
			return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	// scan found user
	var user models.User
	if err = row.Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*sqlCredentials.Lookup").Msg("error scanning user row")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}
