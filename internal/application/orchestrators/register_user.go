package orchestrators

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"presenca/internal/adapters/email"
	"presenca/internal/domain/user"
)

// UserStoreForRegister defines the store interface needed by RegisterUser.
type UserStoreForRegister interface {
	Create(ctx context.Context, u user.User) error
}

// RegisterUserInput carries input for the registration orchestrator.
type RegisterUserInput struct {
	Name     string
	Email    string
	Password string
}

// RegisterUserDeps holds dependencies for RegisterUser.
type RegisterUserDeps struct {
	UserStore   UserStoreForRegister
	EmailSender email.Sender // optional: nil skips the welcome email
}

// ExecuteRegisterUser creates a login identity with a hashed password.
// A duplicate email surfaces as user.ErrDuplicateEmail with no partial row
// persisted. The welcome email is best-effort and never fails the registration.
// PRE: Name, email and password provided
// POST: Exactly one user row on success; none on conflict
func ExecuteRegisterUser(ctx context.Context, input RegisterUserInput, deps RegisterUserDeps) (user.User, error) {
	u := user.User{
		ID:        uuid.New().String(),
		Name:      input.Name,
		Email:     input.Email,
		CreatedAt: time.Now(),
	}

	if err := u.Validate(); err != nil {
		return user.User{}, err
	}
	if err := u.SetPassword(input.Password); err != nil {
		return user.User{}, err
	}

	if err := deps.UserStore.Create(ctx, u); err != nil {
		return user.User{}, err
	}

	slog.Info("auth_event", "event", "user_registered", "email", u.Email)

	if deps.EmailSender != nil {
		_, err := deps.EmailSender.Send(ctx, email.SendRequest{
			To:      []string{u.Email},
			Subject: "Bem-vindo ao Presença",
			HTML:    fmt.Sprintf("<p>Olá %s, seu cadastro foi realizado com sucesso.</p>", u.Name),
		})
		if err != nil {
			slog.Warn("welcome_email_failed", "email", u.Email, "error", err.Error())
		}
	}

	return u, nil
}
