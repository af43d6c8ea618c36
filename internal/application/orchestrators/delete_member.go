package orchestrators

import (
	"context"
	"log/slog"
)

// DeleteMemberDeps holds dependencies for DeleteMember.
type DeleteMemberDeps struct {
	MemberStore MemberStore
}

// ExecuteDeleteMember removes a member; their attendance records go with them
// via the storage-level cascade. Deleting a non-existent id is a no-op.
// PRE: id is non-empty
// POST: Returns true if a member was deleted, false for the no-op case
func ExecuteDeleteMember(ctx context.Context, id string, deps DeleteMemberDeps) (bool, error) {
	deleted, err := deps.MemberStore.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		slog.Info("member_event", "event", "member_deleted", "member_id", id)
	}
	return deleted, nil
}
