package projections

import (
	"context"
	"sort"

	"presenca/internal/domain/attendance"
)

// RosterAttendanceStore defines the attendance store interface for the day roster.
type RosterAttendanceStore interface {
	ListByDate(ctx context.Context, serviceDate string) ([]attendance.Record, error)
}

// GetDayRosterQuery carries query parameters.
type GetDayRosterQuery struct {
	Date string // user-supplied YYYY-MM-DD
}

// RosterEntry is one member's presence status for the date.
type RosterEntry struct {
	MemberID   string
	MemberName string
	Present    bool
}

// GetDayRosterResult carries the query result.
type GetDayRosterResult struct {
	ServiceDate string // normalized YYYY-MM-DD
	DisplayDate string // DD/MM/YYYY
	Entries     []RosterEntry
}

// GetDayRosterDeps holds dependencies for GetDayRoster.
type GetDayRosterDeps struct {
	MemberStore     MemberStore
	AttendanceStore RosterAttendanceStore
}

// QueryGetDayRoster surfaces every current member for one date, defaulting
// present=false where no record exists. This is the editable-roster view:
// unlike the grouped presence query it reports absentees too.
// PRE: query.Date parses as a calendar date
// POST: One entry per current member, ordered by name ascending
func QueryGetDayRoster(ctx context.Context, query GetDayRosterQuery, deps GetDayRosterDeps) (GetDayRosterResult, error) {
	date, err := attendance.ParseServiceDate(query.Date)
	if err != nil {
		return GetDayRosterResult{}, err
	}

	members, err := deps.MemberStore.List(ctx)
	if err != nil {
		return GetDayRosterResult{}, err
	}

	records, err := deps.AttendanceStore.ListByDate(ctx, date)
	if err != nil {
		return GetDayRosterResult{}, err
	}

	presentByMember := make(map[string]bool, len(records))
	for _, r := range records {
		presentByMember[r.MemberID] = r.Present
	}

	entries := make([]RosterEntry, 0, len(members))
	for _, m := range members {
		entries = append(entries, RosterEntry{
			MemberID:   m.ID,
			MemberName: m.Name,
			Present:    presentByMember[m.ID],
		})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].MemberName < entries[j].MemberName })

	return GetDayRosterResult{
		ServiceDate: date,
		DisplayDate: attendance.DisplayDate(date),
		Entries:     entries,
	}, nil
}
