package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/taskify/taskify-server/internal/core/domain"
	"github.com/taskify/taskify-server/internal/core/ports"
)

func seedUser(t *testing.T, repo *stubUserRepo, name, email string) *domain.User {
	t.Helper()
	now := time.Now().UTC()
	user, err := repo.Create(context.Background(), &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: "hash",
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		t.Fatalf("seed user %s: %v", email, err)
	}
	return user
}

func TestProfileService_Get(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewProfileService(repo)
	alice := seedUser(t, repo, "alice", "alice@example.com")

	got, err := svc.Get(context.Background(), alice.ID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got.ID != alice.ID || got.Name != "alice" || got.Email != "alice@example.com" {
		t.Fatalf("unexpected profile: %+v", got)
	}
}

func TestProfileService_Update_Name(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewProfileService(repo)
	alice := seedUser(t, repo, "alice", "alice@example.com")

	updated, err := svc.Update(context.Background(), ports.UpdateProfileInput{
		UserID: alice.ID,
		Name:   strPtr("  Alice Smith  "),
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Name != "Alice Smith" {
		t.Fatalf("expected trimmed name, got %q", updated.Name)
	}
	if updated.Email != "alice@example.com" {
		t.Fatalf("absent email was changed: %q", updated.Email)
	}
}

func TestProfileService_Update_EmptyName(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewProfileService(repo)
	alice := seedUser(t, repo, "alice", "alice@example.com")

	_, err := svc.Update(context.Background(), ports.UpdateProfileInput{UserID: alice.ID, Name: strPtr("   ")})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestProfileService_Update_InvalidEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewProfileService(repo)
	alice := seedUser(t, repo, "alice", "alice@example.com")

	_, err := svc.Update(context.Background(), ports.UpdateProfileInput{UserID: alice.ID, Email: strPtr("nope")})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestProfileService_Update_EmailConflict(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewProfileService(repo)
	alice := seedUser(t, repo, "alice", "alice@example.com")
	seedUser(t, repo, "bob", "bob@example.com")

	_, err := svc.Update(context.Background(), ports.UpdateProfileInput{UserID: alice.ID, Email: strPtr("bob@example.com")})
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

// Re-submitting the caller's own email is idempotent, not a conflict.
func TestProfileService_Update_OwnEmailIdempotent(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewProfileService(repo)
	alice := seedUser(t, repo, "alice", "alice@example.com")

	updated, err := svc.Update(context.Background(), ports.UpdateProfileInput{UserID: alice.ID, Email: strPtr("Alice@Example.com")})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Email != "alice@example.com" {
		t.Fatalf("expected normalized email, got %q", updated.Email)
	}
}

func TestProfileService_Update_NormalizesEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewProfileService(repo)
	alice := seedUser(t, repo, "alice", "alice@example.com")

	updated, err := svc.Update(context.Background(), ports.UpdateProfileInput{UserID: alice.ID, Email: strPtr("  New@Example.COM ")})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Email != "new@example.com" {
		t.Fatalf("expected normalized email, got %q", updated.Email)
	}
}
