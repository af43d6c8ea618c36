package user

import (
	"context"

	domain "presenca/internal/domain/user"
)

// Store persists User state.
type Store interface {
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	Create(ctx context.Context, value domain.User) error
	CountByEmail(ctx context.Context, email string) (int, error)
}
