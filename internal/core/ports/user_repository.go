package ports

import (
	"context"

	"github.com/taskify/taskify-server/internal/core/domain"
)

// UserUpdate carries a partial profile update. Nil fields are left
// unchanged by the repository.
type UserUpdate struct {
	Name  *string
	Email *string
}

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// FindByEmailExcluding returns the user holding email whose ID differs
	// from excludeID. Used for the uniqueness check on profile updates.
	FindByEmailExcluding(ctx context.Context, email, excludeID string) (*domain.User, error)
	Update(ctx context.Context, id string, update UserUpdate) (*domain.User, error)
}
