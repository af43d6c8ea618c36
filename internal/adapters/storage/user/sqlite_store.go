package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"presenca/internal/adapters/storage"
	domain "presenca/internal/domain/user"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new user Store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// GetByEmail retrieves a User by exact email match.
// PRE: email is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	query := "SELECT id, name, email, password_hash, created_at FROM user WHERE email = ?"

	row := s.db.QueryRowContext(ctx, query, email)

	var entity domain.User
	var createdAt string
	err := row.Scan(
		&entity.ID,
		&entity.Name,
		&entity.Email,
		&entity.PasswordHash,
		&createdAt,
	)
	if err == sql.ErrNoRows {
		return domain.User{}, fmt.Errorf("user not found: %w", err)
	}
	if err == nil {
		entity.CreatedAt, err = parseStoredTime(createdAt)
		if err != nil {
			return domain.User{}, fmt.Errorf("failed to parse created_at: %w", err)
		}
	}
	return entity, err
}

// Create inserts a new User inside a transaction.
// A duplicate email rolls back entirely and is reported as
// domain.ErrDuplicateEmail, distinguished from other storage faults by the
// SQLite constraint code rather than a blanket catch.
// PRE: entity has been validated and has a password hash
// POST: Exactly one row is persisted, or none on conflict
func (s *SQLiteStore) Create(ctx context.Context, entity domain.User) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := "INSERT INTO user (id, name, email, password_hash, created_at) VALUES (?, ?, ?, ?, ?)"

	_, err = tx.ExecContext(ctx, query,
		entity.ID,
		entity.Name,
		entity.Email,
		entity.PasswordHash,
		entity.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		var se *sqlite.Error
		if errors.As(err, &se) && se.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE {
			return domain.ErrDuplicateEmail
		}
		return err
	}

	return tx.Commit()
}

// CountByEmail returns the number of rows stored for an email.
// PRE: email is non-empty
// POST: Returns count >= 0
func (s *SQLiteStore) CountByEmail(ctx context.Context, email string) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM user WHERE email = ?", email).Scan(&count)
	return count, err
}

func parseStoredTime(value string) (time.Time, error) {
	layouts := []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02 15:04:05",
	}
	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("unsupported time format: %q", value)
}
