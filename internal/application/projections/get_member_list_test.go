package projections

import (
	"context"
	"errors"
	"testing"

	"presenca/internal/domain/member"
)

// mockMemberStore implements MemberStore with a fixed, pre-ordered slice.
type mockMemberStore struct {
	members []member.Member
	err     error
}

// List returns the seeded members in order.
func (m *mockMemberStore) List(_ context.Context) ([]member.Member, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.members, nil
}

func TestQueryGetMemberList(t *testing.T) {
	store := &mockMemberStore{members: []member.Member{
		{ID: "m1", Name: "Ana"},
		{ID: "m2", Name: "Bruno"},
	}}

	res, err := QueryGetMemberList(context.Background(), GetMemberListDeps{MemberStore: store})
	if err != nil {
		t.Fatalf("QueryGetMemberList failed: %v", err)
	}
	if len(res.Members) != 2 {
		t.Fatalf("members = %d, want 2", len(res.Members))
	}
	if res.Members[0].Name != "Ana" || res.Members[1].Name != "Bruno" {
		t.Errorf("order wrong: %v", res.Members)
	}
}

func TestQueryGetMemberList_EmptyIsNotNil(t *testing.T) {
	store := &mockMemberStore{}

	res, err := QueryGetMemberList(context.Background(), GetMemberListDeps{MemberStore: store})
	if err != nil {
		t.Fatalf("QueryGetMemberList failed: %v", err)
	}
	if res.Members == nil {
		t.Error("empty list must be a non-nil slice")
	}
	if len(res.Members) != 0 {
		t.Errorf("members = %d, want 0", len(res.Members))
	}
}

func TestQueryGetMemberList_StoreError(t *testing.T) {
	store := &mockMemberStore{err: errors.New("db down")}

	_, err := QueryGetMemberList(context.Background(), GetMemberListDeps{MemberStore: store})
	if err == nil {
		t.Fatal("expected store error to propagate")
	}
}
