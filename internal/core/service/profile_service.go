package service

import (
	"context"
	"errors"
	"strings"

	"github.com/taskify/taskify-server/internal/core/domain"
	"github.com/taskify/taskify-server/internal/core/ports"
)

// ProfileService implements profile read and partial update.
type ProfileService struct {
	repo ports.UserRepository
}

func NewProfileService(repo ports.UserRepository) *ProfileService {
	return &ProfileService{repo: repo}
}

func (s *ProfileService) Get(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.FindByID(ctx, userID)
}

// Update applies the present fields only. Changing the email to one held
// by a different account fails; re-submitting the caller's own email is
// a no-op success.
func (s *ProfileService) Update(ctx context.Context, input ports.UpdateProfileInput) (*domain.User, error) {
	update := ports.UserUpdate{}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		update.Name = &name
	}

	if input.Email != nil {
		email := domain.NormalizeEmail(*input.Email)
		if !domain.ValidEmail(email) {
			return nil, domain.ErrInvalidInput
		}

		_, err := s.repo.FindByEmailExcluding(ctx, email, input.UserID)
		if err == nil {
			return nil, domain.ErrEmailTaken
		}
		if !errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		update.Email = &email
	}

	return s.repo.Update(ctx, input.UserID, update)
}
