package ports

import (
	"context"

	"github.com/taskify/taskify-server/internal/core/domain"
)

// CreateTaskInput carries the data needed to create a task.
type CreateTaskInput struct {
	OwnerID     string
	Title       string
	Description string
	Status      string // empty means pending
}

// UpdateTaskInput carries a partial task update. Nil fields are left
// unchanged; an invalid Status value is ignored rather than rejected.
type UpdateTaskInput struct {
	OwnerID     string
	TaskID      string
	Title       *string
	Description *string
	Status      *string
}

// ListTasksInput carries the list query parameters for one owner.
type ListTasksInput struct {
	OwnerID string
	Status  string
	Search  string
}

// TaskStats is the aggregate view backing the status dashboard.
type TaskStats struct {
	Total          int64
	Pending        int64
	InProgress     int64
	Completed      int64
	CompletionRate float64
}

// TaskService defines use-case operations for tasks. Every operation is
// scoped to the owner carried in its input.
type TaskService interface {
	Create(ctx context.Context, input CreateTaskInput) (*domain.Task, error)
	List(ctx context.Context, input ListTasksInput) ([]*domain.Task, error)
	Update(ctx context.Context, input UpdateTaskInput) (*domain.Task, error)
	Delete(ctx context.Context, ownerID, taskID string) error
	Stats(ctx context.Context, ownerID string) (*TaskStats, error)
}
