package projections

import (
	"context"

	attendanceStore "presenca/internal/adapters/storage/attendance"
	"presenca/internal/domain/attendance"
)

// PresenceAttendanceStore defines the attendance store interface for the
// grouped presence view.
type PresenceAttendanceStore interface {
	ListPresentWithNames(ctx context.Context) ([]attendanceStore.PresentRow, error)
}

// DayGroup is one service date with the members who were present.
type DayGroup struct {
	ServiceDate string   // YYYY-MM-DD
	DisplayDate string   // DD/MM/YYYY, the grouping key shown to users
	Names       []string // present members, name ascending
}

// GetPresenceByDayResult carries the query result.
type GetPresenceByDayResult struct {
	Days []DayGroup
}

// GetPresenceByDayDeps holds dependencies for GetPresenceByDay.
type GetPresenceByDayDeps struct {
	AttendanceStore PresenceAttendanceStore
}

// QueryGetPresenceByDay groups present=true records by date, most recent date
// first and names ascending within a date. Absentees never appear; a date
// whose records are all absent produces no group.
// POST: Days ordered date-descending; each group's names ordered ascending
func QueryGetPresenceByDay(ctx context.Context, deps GetPresenceByDayDeps) (GetPresenceByDayResult, error) {
	rows, err := deps.AttendanceStore.ListPresentWithNames(ctx)
	if err != nil {
		return GetPresenceByDayResult{}, err
	}

	// Rows arrive ordered (date desc, name asc); fold into groups preserving order.
	var days []DayGroup
	for _, row := range rows {
		if len(days) == 0 || days[len(days)-1].ServiceDate != row.ServiceDate {
			days = append(days, DayGroup{
				ServiceDate: row.ServiceDate,
				DisplayDate: attendance.DisplayDate(row.ServiceDate),
			})
		}
		last := &days[len(days)-1]
		last.Names = append(last.Names, row.MemberName)
	}

	return GetPresenceByDayResult{Days: days}, nil
}
