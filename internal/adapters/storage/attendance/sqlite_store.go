package attendance

import (
	"context"

	"presenca/internal/adapters/storage"
	domain "presenca/internal/domain/attendance"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new attendance Store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// ReplaceDay deletes every record for the date and inserts the given records
// in a single transaction, so a re-submitted day roster is swapped wholesale.
// PRE: all records carry the same serviceDate and have been validated
// POST: The date holds exactly the given records, or is untouched on error
func (s *SQLiteStore) ReplaceDay(ctx context.Context, serviceDate string, records []domain.Record) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM attendance_record WHERE service_date = ?", serviceDate); err != nil {
		return err
	}

	query := "INSERT INTO attendance_record (id, member_id, service_date, present) VALUES (?, ?, ?, ?)"
	for _, r := range records {
		if _, err := tx.ExecContext(ctx, query, r.ID, r.MemberID, r.ServiceDate, r.Present); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// UpsertDay inserts or updates each record keyed by (member_id, service_date)
// in a single transaction. Existing rows keep their ID; only the present flag
// changes.
// PRE: records have been validated
// POST: One row per (member, date) with the given present flag, or no change on error
func (s *SQLiteStore) UpsertDay(ctx context.Context, records []domain.Record) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO attendance_record (id, member_id, service_date, present) VALUES (?, ?, ?, ?)
		ON CONFLICT(member_id, service_date) DO UPDATE SET present=excluded.present`
	for _, r := range records {
		if _, err := tx.ExecContext(ctx, query, r.ID, r.MemberID, r.ServiceDate, r.Present); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// ListByDate retrieves all records for one service date.
// PRE: serviceDate is YYYY-MM-DD format
// POST: Returns the date's records (possibly none)
func (s *SQLiteStore) ListByDate(ctx context.Context, serviceDate string) ([]domain.Record, error) {
	query := "SELECT id, member_id, service_date, present FROM attendance_record WHERE service_date = ?"

	rows, err := s.db.QueryContext(ctx, query, serviceDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Record
	for rows.Next() {
		var entity domain.Record
		if err := rows.Scan(
			&entity.ID,
			&entity.MemberID,
			&entity.ServiceDate,
			&entity.Present,
		); err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}

// ListPresentWithNames retrieves every present=true record joined with the
// member's name, dates descending and names ascending within a date.
// POST: Returns rows ready for day-grouping; absentees are never included
func (s *SQLiteStore) ListPresentWithNames(ctx context.Context) ([]PresentRow, error) {
	query := `SELECT ar.service_date, m.name
		FROM attendance_record ar
		JOIN member m ON m.id = ar.member_id
		WHERE ar.present = 1
		ORDER BY ar.service_date DESC, m.name ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []PresentRow
	for rows.Next() {
		var row PresentRow
		if err := rows.Scan(&row.ServiceDate, &row.MemberName); err != nil {
			return nil, err
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// DeleteByDate removes every record for one service date.
// PRE: serviceDate is YYYY-MM-DD format
// POST: Returns the number of deleted records; 0 is a no-op, not an error
func (s *SQLiteStore) DeleteByDate(ctx context.Context, serviceDate string) (int, error) {
	result, err := s.db.ExecContext(ctx, "DELETE FROM attendance_record WHERE service_date = ?", serviceDate)
	if err != nil {
		return 0, err
	}
	n, err := result.RowsAffected()
	return int(n), err
}
