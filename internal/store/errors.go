package store

import "errors"

// Sentinel errors returned by credential stores. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrUserNotFound is returned when no record matches the requested username.
	ErrUserNotFound = errors.New("no user was found")

	// ErrDuplicateUsername is returned when an in-memory store is seeded with
	// two records sharing a username.
	ErrDuplicateUsername = errors.New("duplicate username")

	// ErrInvalidUserRecord is returned when a seeded record lacks an id,
	// username or password hash.
	ErrInvalidUserRecord = errors.New("invalid user record")

	// ErrStoreUnavailable is returned when the backing database fails with a
	// transient error (lost connection, deadlock, server starting up). The
	// lookup may succeed if repeated later.
	ErrStoreUnavailable = errors.New("credential store is temporarily unavailable")

	// ErrUnsupportedDriver is returned when the configured database driver is
	// neither pgx nor sqlite3.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails with a
	// non-transient error.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when column values cannot be scanned into a record.
	ErrScanningRow = errors.New("failed to scan user row")
)
