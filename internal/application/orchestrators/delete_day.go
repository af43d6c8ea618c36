package orchestrators

import (
	"context"
	"log/slog"

	"presenca/internal/domain/attendance"
)

// DeleteDayDeps holds dependencies for DeleteDay.
type DeleteDayDeps struct {
	AttendanceStore AttendanceStore
}

// ExecuteDeleteDay clears every attendance record for a date. A date with no
// records is a no-op, not an error.
// PRE: date parses as a calendar date
// POST: Returns the number of removed records (0 for the no-op case)
func ExecuteDeleteDay(ctx context.Context, date string, deps DeleteDayDeps) (int, error) {
	serviceDate, err := attendance.ParseServiceDate(date)
	if err != nil {
		return 0, err
	}

	n, err := deps.AttendanceStore.DeleteByDate(ctx, serviceDate)
	if err != nil {
		return 0, err
	}

	if n > 0 {
		slog.Info("attendance_event", "event", "day_deleted", "service_date", serviceDate, "records", n)
	}
	return n, nil
}
