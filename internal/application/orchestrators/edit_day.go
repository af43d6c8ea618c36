package orchestrators

import (
	"context"
	"log/slog"

	"presenca/internal/domain/attendance"
)

// EditDayInput carries input for the edit-day orchestrator.
type EditDayInput struct {
	Date       string
	PresentIDs map[string]bool
}

// EditDayDeps holds dependencies for EditDay.
type EditDayDeps struct {
	MemberStore     MemberStore
	AttendanceStore AttendanceStore
}

// ExecuteEditDay upserts one record per current member for the date: existing
// rows get their present flag updated in place, missing rows are inserted.
// The net effect converges to the same state ExecuteRecordDay produces for
// the same inputs.
// PRE: Date parses as a calendar date
// POST: The date holds one record per current member with the given flags
func ExecuteEditDay(ctx context.Context, input EditDayInput, deps EditDayDeps) error {
	date, err := attendance.ParseServiceDate(input.Date)
	if err != nil {
		return err
	}

	records, err := buildDayRoster(ctx, date, input.PresentIDs, deps.MemberStore)
	if err != nil {
		return err
	}

	if err := deps.AttendanceStore.UpsertDay(ctx, records); err != nil {
		return err
	}

	slog.Info("attendance_event", "event", "day_edited", "service_date", date, "records", len(records))
	return nil
}
