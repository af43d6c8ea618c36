package projections

import (
	"context"

	"presenca/internal/domain/member"
)

// MemberStore defines the member store interface used by projections.
type MemberStore interface {
	List(ctx context.Context) ([]member.Member, error)
}

// GetMemberListResult carries the query result.
type GetMemberListResult struct {
	Members []member.Member
}

// GetMemberListDeps holds dependencies for GetMemberList.
type GetMemberListDeps struct {
	MemberStore MemberStore
}

// QueryGetMemberList retrieves every registered member.
// POST: Returns all members; never nil
func QueryGetMemberList(ctx context.Context, deps GetMemberListDeps) (GetMemberListResult, error) {
	members, err := deps.MemberStore.List(ctx)
	if err != nil {
		return GetMemberListResult{}, err
	}
	if members == nil {
		members = []member.Member{}
	}
	return GetMemberListResult{Members: members}, nil
}
