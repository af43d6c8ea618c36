package orchestrators

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"presenca/internal/domain/member"
)

// MemberStore defines the interface for member persistence.
type MemberStore interface {
	Save(ctx context.Context, m member.Member) error
	GetByID(ctx context.Context, id string) (member.Member, error)
	Delete(ctx context.Context, id string) (bool, error)
	List(ctx context.Context) ([]member.Member, error)
}

// CreateMemberInput carries input for the orchestrator.
type CreateMemberInput struct {
	Name      string
	Phone     string
	Email     string
	Address   string
	BirthDate string
}

// CreateMemberDeps holds dependencies for CreateMember.
type CreateMemberDeps struct {
	MemberStore MemberStore
}

// ExecuteCreateMember registers a youth member. No deduplication is applied;
// two members with the same name are two members.
// PRE: Name is non-empty (checked again by the domain)
// POST: Member persisted with a generated ID
func ExecuteCreateMember(ctx context.Context, input CreateMemberInput, deps CreateMemberDeps) (member.Member, error) {
	m := member.Member{
		ID:        uuid.New().String(),
		Name:      input.Name,
		Phone:     input.Phone,
		Email:     input.Email,
		Address:   input.Address,
		BirthDate: input.BirthDate,
	}

	if err := m.Validate(); err != nil {
		return member.Member{}, err
	}

	if err := deps.MemberStore.Save(ctx, m); err != nil {
		return member.Member{}, err
	}

	slog.Info("member_event", "event", "member_created", "member_id", m.ID, "name", m.Name)

	return m, nil
}
