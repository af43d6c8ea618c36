package member

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"presenca/internal/adapters/storage"
	domain "presenca/internal/domain/member"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new member Store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// GetByID retrieves a Member by its ID.
// PRE: id is non-empty
// POST: Returns the entity or domain.ErrNotFound
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Member, error) {
	query := "SELECT id, name, phone, email, address, birth_date FROM member WHERE id = ?"

	row := s.db.QueryRowContext(ctx, query, id)

	var entity domain.Member
	var phone, email, address, birthDate sql.NullString
	err := row.Scan(
		&entity.ID,
		&entity.Name,
		&phone,
		&email,
		&address,
		&birthDate,
	)
	if err == sql.ErrNoRows {
		return domain.Member{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Member{}, err
	}
	entity.Phone = phone.String
	entity.Email = email.String
	entity.Address = address.String
	entity.BirthDate = birthDate.String
	return entity, nil
}

// Save persists a Member to the database.
// PRE: entity has been validated
// POST: Entity is persisted (insert or full-field update)
func (s *SQLiteStore) Save(ctx context.Context, entity domain.Member) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// Upsert implementation
	fields := []string{"id", "name", "phone", "email", "address", "birth_date"}
	placeholders := []string{"?", "?", "?", "?", "?", "?"}
	updates := []string{"name=excluded.name", "phone=excluded.phone", "email=excluded.email", "address=excluded.address", "birth_date=excluded.birth_date"}

	query := fmt.Sprintf(
		"INSERT INTO member (%s) VALUES (%s) ON CONFLICT(id) DO UPDATE SET %s",
		strings.Join(fields, ", "),
		strings.Join(placeholders, ", "),
		strings.Join(updates, ", "),
	)

	_, err = tx.ExecContext(ctx, query,
		entity.ID,
		entity.Name,
		entity.Phone,
		entity.Email,
		entity.Address,
		entity.BirthDate,
	)
	if err != nil {
		return err
	}

	return tx.Commit()
}

// Delete removes a Member; attendance rows cascade via the foreign key.
// PRE: id is non-empty
// POST: Returns true if a row was deleted, false if nothing matched
func (s *SQLiteStore) Delete(ctx context.Context, id string) (bool, error) {
	result, err := s.db.ExecContext(ctx, "DELETE FROM member WHERE id = ?", id)
	if err != nil {
		return false, err
	}
	n, err := result.RowsAffected()
	return n > 0, err
}

// List retrieves all Members ordered by name.
// POST: Returns every stored member; order is stable within a call
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Member, error) {
	query := "SELECT id, name, phone, email, address, birth_date FROM member ORDER BY name ASC"

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Member
	for rows.Next() {
		var entity domain.Member
		var phone, email, address, birthDate sql.NullString
		if err := rows.Scan(
			&entity.ID,
			&entity.Name,
			&phone,
			&email,
			&address,
			&birthDate,
		); err != nil {
			return nil, err
		}
		entity.Phone = phone.String
		entity.Email = email.String
		entity.Address = address.String
		entity.BirthDate = birthDate.String
		results = append(results, entity)
	}
	return results, rows.Err()
}
