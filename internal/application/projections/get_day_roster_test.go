package projections

import (
	"context"
	"errors"
	"testing"

	"presenca/internal/domain/attendance"
	"presenca/internal/domain/member"
)

// mockRosterAttendanceStore implements RosterAttendanceStore.
type mockRosterAttendanceStore struct {
	records []attendance.Record
}

// ListByDate returns the seeded records matching serviceDate.
func (m *mockRosterAttendanceStore) ListByDate(_ context.Context, serviceDate string) ([]attendance.Record, error) {
	var out []attendance.Record
	for _, r := range m.records {
		if r.ServiceDate == serviceDate {
			out = append(out, r)
		}
	}
	return out, nil
}

func TestQueryGetDayRoster(t *testing.T) {
	members := &mockMemberStore{members: []member.Member{
		{ID: "m1", Name: "Ana"},
		{ID: "m2", Name: "Bruno"},
		{ID: "m3", Name: "Carla"},
	}}
	att := &mockRosterAttendanceStore{records: []attendance.Record{
		{ID: "r1", MemberID: "m2", ServiceDate: "2024-03-10", Present: true},
		{ID: "r2", MemberID: "m3", ServiceDate: "2024-03-10", Present: false},
	}}

	res, err := QueryGetDayRoster(context.Background(), GetDayRosterQuery{Date: "2024-03-10"},
		GetDayRosterDeps{MemberStore: members, AttendanceStore: att})
	if err != nil {
		t.Fatalf("QueryGetDayRoster failed: %v", err)
	}

	if res.ServiceDate != "2024-03-10" {
		t.Errorf("ServiceDate = %q, want 2024-03-10", res.ServiceDate)
	}
	if res.DisplayDate != "10/03/2024" {
		t.Errorf("DisplayDate = %q, want 10/03/2024", res.DisplayDate)
	}
	if len(res.Entries) != 3 {
		t.Fatalf("entries = %d, want 3 (all members, recorded or not)", len(res.Entries))
	}

	// Name-ascending; m1 has no record and defaults to absent.
	want := []RosterEntry{
		{MemberID: "m1", MemberName: "Ana", Present: false},
		{MemberID: "m2", MemberName: "Bruno", Present: true},
		{MemberID: "m3", MemberName: "Carla", Present: false},
	}
	for i, w := range want {
		if res.Entries[i] != w {
			t.Errorf("entry[%d] = %+v, want %+v", i, res.Entries[i], w)
		}
	}
}

func TestQueryGetDayRoster_InvalidDate(t *testing.T) {
	_, err := QueryGetDayRoster(context.Background(), GetDayRosterQuery{Date: "amanhã"},
		GetDayRosterDeps{MemberStore: &mockMemberStore{}, AttendanceStore: &mockRosterAttendanceStore{}})
	if !errors.Is(err, attendance.ErrInvalidDate) {
		t.Fatalf("error = %v, want ErrInvalidDate", err)
	}
}

// TestQueryGetDayRoster_VirginDate verifies a never-recorded date still
// surfaces the full roster, everyone absent.
func TestQueryGetDayRoster_VirginDate(t *testing.T) {
	members := &mockMemberStore{members: []member.Member{
		{ID: "m1", Name: "Ana"},
		{ID: "m2", Name: "Bruno"},
	}}

	res, err := QueryGetDayRoster(context.Background(), GetDayRosterQuery{Date: "2024-12-25"},
		GetDayRosterDeps{MemberStore: members, AttendanceStore: &mockRosterAttendanceStore{}})
	if err != nil {
		t.Fatalf("QueryGetDayRoster failed: %v", err)
	}
	if len(res.Entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(res.Entries))
	}
	for _, e := range res.Entries {
		if e.Present {
			t.Errorf("member %s marked present on a virgin date", e.MemberName)
		}
	}
}
