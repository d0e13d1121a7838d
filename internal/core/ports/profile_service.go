package ports

import (
	"context"

	"github.com/taskify/taskify-server/internal/core/domain"
)

// UpdateProfileInput carries a partial profile update. Nil fields are
// left unchanged.
type UpdateProfileInput struct {
	UserID string
	Name   *string
	Email  *string
}

// ProfileService defines the profile read/update use cases.
type ProfileService interface {
	Get(ctx context.Context, userID string) (*domain.User, error)
	Update(ctx context.Context, input UpdateProfileInput) (*domain.User, error)
}
