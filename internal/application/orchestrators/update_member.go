package orchestrators

import (
	"context"
	"log/slog"

	"presenca/internal/domain/member"
)

// UpdateMemberInput carries input for the orchestrator. All mutable fields
// are overwritten; there is no partial-patch semantics.
type UpdateMemberInput struct {
	ID        string
	Name      string
	Phone     string
	Email     string
	Address   string
	BirthDate string
}

// UpdateMemberDeps holds dependencies for UpdateMember.
type UpdateMemberDeps struct {
	MemberStore MemberStore
}

// ExecuteUpdateMember overwrites a member's fields.
// PRE: ID refers to an existing member
// POST: All fields replaced; member.ErrNotFound if the id does not exist
func ExecuteUpdateMember(ctx context.Context, input UpdateMemberInput, deps UpdateMemberDeps) (member.Member, error) {
	m, err := deps.MemberStore.GetByID(ctx, input.ID)
	if err != nil {
		return member.Member{}, err
	}

	m.Name = input.Name
	m.Phone = input.Phone
	m.Email = input.Email
	m.Address = input.Address
	m.BirthDate = input.BirthDate

	if err := m.Validate(); err != nil {
		return member.Member{}, err
	}

	if err := deps.MemberStore.Save(ctx, m); err != nil {
		return member.Member{}, err
	}

	slog.Info("member_event", "event", "member_updated", "member_id", m.ID)

	return m, nil
}
