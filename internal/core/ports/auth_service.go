package ports

import (
	"context"

	"github.com/taskify/taskify-server/internal/core/domain"
)

// AuthService defines the registration and sign-in use cases.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*domain.User, error)
	// Login returns a signed bearer token and the authenticated user.
	// Unknown email and wrong password fail identically with
	// domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
