package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

const usersTable = "users"

var userColumns = []string{"id", "username", "email", "password_hash"}

// buildLookupQuery builds the SELECT resolving a single user by username
// in the placeholder dialect of the target database.
func buildLookupQuery(placeholder sq.PlaceholderFormat, username string) (string, []any, error) {
	query, args, err := sq.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"username": username}).
		PlaceholderFormat(placeholder).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
