package orchestrators

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"presenca/internal/domain/attendance"
)

// AttendanceStore defines the interface for attendance persistence.
type AttendanceStore interface {
	ReplaceDay(ctx context.Context, serviceDate string, records []attendance.Record) error
	UpsertDay(ctx context.Context, records []attendance.Record) error
	DeleteByDate(ctx context.Context, serviceDate string) (int, error)
}

// RecordDayInput carries input for the record-day orchestrator.
type RecordDayInput struct {
	Date       string          // user-supplied YYYY-MM-DD
	PresentIDs map[string]bool // member IDs marked present
}

// RecordDayDeps holds dependencies for RecordDay.
type RecordDayDeps struct {
	MemberStore     MemberStore
	AttendanceStore AttendanceStore
}

// ExecuteRecordDay replaces the date's roster wholesale: one record per
// currently known member, present when listed in PresentIDs. Members created
// after a date was first recorded appear (absent) when it is re-submitted —
// the ledger reflects the current roster, not a snapshot.
// PRE: Date parses as a calendar date
// POST: The date holds exactly one record per current member
func ExecuteRecordDay(ctx context.Context, input RecordDayInput, deps RecordDayDeps) error {
	date, err := attendance.ParseServiceDate(input.Date)
	if err != nil {
		return err
	}

	records, err := buildDayRoster(ctx, date, input.PresentIDs, deps.MemberStore)
	if err != nil {
		return err
	}

	if err := deps.AttendanceStore.ReplaceDay(ctx, date, records); err != nil {
		return err
	}

	slog.Info("attendance_event", "event", "day_recorded", "service_date", date, "records", len(records))
	return nil
}

// buildDayRoster creates one fresh record per current member for the date.
func buildDayRoster(ctx context.Context, date string, presentIDs map[string]bool, members MemberStore) ([]attendance.Record, error) {
	all, err := members.List(ctx)
	if err != nil {
		return nil, err
	}

	records := make([]attendance.Record, 0, len(all))
	for _, m := range all {
		r := attendance.Record{
			ID:          uuid.New().String(),
			MemberID:    m.ID,
			ServiceDate: date,
			Present:     presentIDs[m.ID],
		}
		if err := r.Validate(); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, nil
}
