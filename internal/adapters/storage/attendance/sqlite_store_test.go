package attendance

import (
	"context"
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"

	"presenca/internal/adapters/storage"
	memberStore "presenca/internal/adapters/storage/member"
	domain "presenca/internal/domain/attendance"
	domainMember "presenca/internal/domain/member"
)

func openTestStore(t *testing.T) (*SQLiteStore, *memberStore.SQLiteStore) {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	if err := storage.InitDB(db); err != nil {
		t.Fatalf("InitDB: %v", err)
	}
	return NewSQLiteStore(db), memberStore.NewSQLiteStore(db)
}

func seedMembers(t *testing.T, store *memberStore.SQLiteStore, names map[string]string) {
	t.Helper()
	for id, name := range names {
		if err := store.Save(context.Background(), domainMember.Member{ID: id, Name: name}); err != nil {
			t.Fatalf("seed member %s: %v", id, err)
		}
	}
}

func TestReplaceDay(t *testing.T) {
	att, members := openTestStore(t)
	ctx := context.Background()
	seedMembers(t, members, map[string]string{"m1": "Ana", "m2": "Bruno"})

	first := []domain.Record{
		{ID: "a1", MemberID: "m1", ServiceDate: "2024-03-10", Present: true},
		{ID: "a2", MemberID: "m2", ServiceDate: "2024-03-10", Present: false},
	}
	if err := att.ReplaceDay(ctx, "2024-03-10", first); err != nil {
		t.Fatalf("first ReplaceDay failed: %v", err)
	}

	// Re-submitting swaps the day wholesale, reversed flags and all.
	second := []domain.Record{
		{ID: "b1", MemberID: "m1", ServiceDate: "2024-03-10", Present: false},
		{ID: "b2", MemberID: "m2", ServiceDate: "2024-03-10", Present: true},
	}
	if err := att.ReplaceDay(ctx, "2024-03-10", second); err != nil {
		t.Fatalf("second ReplaceDay failed: %v", err)
	}

	records, err := att.ListByDate(ctx, "2024-03-10")
	if err != nil {
		t.Fatalf("ListByDate failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("records = %d, want 2", len(records))
	}
	byMember := make(map[string]domain.Record)
	for _, r := range records {
		byMember[r.MemberID] = r
	}
	if byMember["m1"].Present || !byMember["m2"].Present {
		t.Errorf("flags not replaced: %v", byMember)
	}
}

// TestReplaceDay_OtherDatesUntouched verifies the replace is scoped to one date.
func TestReplaceDay_OtherDatesUntouched(t *testing.T) {
	att, members := openTestStore(t)
	ctx := context.Background()
	seedMembers(t, members, map[string]string{"m1": "Ana"})

	if err := att.ReplaceDay(ctx, "2024-03-10", []domain.Record{
		{ID: "a1", MemberID: "m1", ServiceDate: "2024-03-10", Present: true},
	}); err != nil {
		t.Fatalf("ReplaceDay failed: %v", err)
	}
	if err := att.ReplaceDay(ctx, "2024-03-17", []domain.Record{
		{ID: "a2", MemberID: "m1", ServiceDate: "2024-03-17", Present: false},
	}); err != nil {
		t.Fatalf("ReplaceDay failed: %v", err)
	}

	records, err := att.ListByDate(ctx, "2024-03-10")
	if err != nil {
		t.Fatalf("ListByDate failed: %v", err)
	}
	if len(records) != 1 || !records[0].Present {
		t.Errorf("first date changed: %v", records)
	}
}

// TestUpsertDay verifies existing rows keep their ID and only the present
// flag changes, while missing rows are inserted.
func TestUpsertDay(t *testing.T) {
	att, members := openTestStore(t)
	ctx := context.Background()
	seedMembers(t, members, map[string]string{"m1": "Ana", "m2": "Bruno"})

	if err := att.ReplaceDay(ctx, "2024-03-10", []domain.Record{
		{ID: "a1", MemberID: "m1", ServiceDate: "2024-03-10", Present: false},
	}); err != nil {
		t.Fatalf("ReplaceDay failed: %v", err)
	}

	if err := att.UpsertDay(ctx, []domain.Record{
		{ID: "b1", MemberID: "m1", ServiceDate: "2024-03-10", Present: true},
		{ID: "b2", MemberID: "m2", ServiceDate: "2024-03-10", Present: true},
	}); err != nil {
		t.Fatalf("UpsertDay failed: %v", err)
	}

	records, err := att.ListByDate(ctx, "2024-03-10")
	if err != nil {
		t.Fatalf("ListByDate failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("records = %d, want 2", len(records))
	}
	byMember := make(map[string]domain.Record)
	for _, r := range records {
		byMember[r.MemberID] = r
	}
	if byMember["m1"].ID != "a1" {
		t.Errorf("existing row ID = %q, want preserved a1", byMember["m1"].ID)
	}
	if !byMember["m1"].Present {
		t.Error("existing row flag not updated")
	}
	if byMember["m2"].ID != "b2" {
		t.Errorf("inserted row ID = %q, want b2", byMember["m2"].ID)
	}
}

// TestListPresentWithNames verifies the grouped-view ordering: date
// descending, names ascending, absentees excluded.
func TestListPresentWithNames(t *testing.T) {
	att, members := openTestStore(t)
	ctx := context.Background()
	seedMembers(t, members, map[string]string{"m1": "Carla", "m2": "Ana", "m3": "Bruno"})

	if err := att.UpsertDay(ctx, []domain.Record{
		{ID: "a1", MemberID: "m1", ServiceDate: "2024-03-10", Present: true},
		{ID: "a2", MemberID: "m2", ServiceDate: "2024-03-10", Present: true},
		{ID: "a3", MemberID: "m3", ServiceDate: "2024-03-10", Present: false},
		{ID: "a4", MemberID: "m3", ServiceDate: "2024-03-17", Present: true},
	}); err != nil {
		t.Fatalf("UpsertDay failed: %v", err)
	}

	rows, err := att.ListPresentWithNames(ctx)
	if err != nil {
		t.Fatalf("ListPresentWithNames failed: %v", err)
	}

	want := []PresentRow{
		{ServiceDate: "2024-03-17", MemberName: "Bruno"},
		{ServiceDate: "2024-03-10", MemberName: "Ana"},
		{ServiceDate: "2024-03-10", MemberName: "Carla"},
	}
	if len(rows) != len(want) {
		t.Fatalf("rows = %d, want %d: %v", len(rows), len(want), rows)
	}
	for i, w := range want {
		if rows[i] != w {
			t.Errorf("rows[%d] = %+v, want %+v", i, rows[i], w)
		}
	}
}

func TestDeleteByDate(t *testing.T) {
	att, members := openTestStore(t)
	ctx := context.Background()
	seedMembers(t, members, map[string]string{"m1": "Ana", "m2": "Bruno"})

	if err := att.UpsertDay(ctx, []domain.Record{
		{ID: "a1", MemberID: "m1", ServiceDate: "2024-03-10", Present: true},
		{ID: "a2", MemberID: "m2", ServiceDate: "2024-03-10", Present: false},
		{ID: "a3", MemberID: "m1", ServiceDate: "2024-03-17", Present: true},
	}); err != nil {
		t.Fatalf("UpsertDay failed: %v", err)
	}

	n, err := att.DeleteByDate(ctx, "2024-03-10")
	if err != nil {
		t.Fatalf("DeleteByDate failed: %v", err)
	}
	if n != 2 {
		t.Errorf("deleted = %d, want 2", n)
	}

	remaining, err := att.ListByDate(ctx, "2024-03-17")
	if err != nil {
		t.Fatalf("ListByDate failed: %v", err)
	}
	if len(remaining) != 1 {
		t.Errorf("other date lost records: %v", remaining)
	}

	n, err = att.DeleteByDate(ctx, "2024-12-25")
	if err != nil {
		t.Fatalf("virgin-date delete errored: %v", err)
	}
	if n != 0 {
		t.Errorf("deleted = %d, want 0", n)
	}
}
