package ports

import (
	"context"

	"github.com/taskify/taskify-server/internal/core/domain"
)

// ListTasksFilter carries all query parameters for listing tasks.
// OwnerID is mandatory: the repository must never run an unscoped query.
type ListTasksFilter struct {
	OwnerID string // required: scopes every result to this user
	Status  string // optional: one of the TaskStatus values
	Search  string // optional: case-insensitive substring on title or description
}

// TaskUpdate carries a partial task update. Nil fields are left
// unchanged by the repository.
type TaskUpdate struct {
	Title       *string
	Description *string
	Status      *domain.TaskStatus
}

// TaskStatusCounts is the per-status breakdown returned by CountByStatus.
type TaskStatusCounts struct {
	Total      int64
	Pending    int64
	InProgress int64
	Completed  int64
}

// TaskRepository defines persistence operations for tasks. Every method
// takes the owner explicitly so scoping cannot be forgotten at a call
// site; lookups for a task owned by someone else behave exactly like
// lookups for a task that does not exist.
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	List(ctx context.Context, filter ListTasksFilter) ([]*domain.Task, error)
	Update(ctx context.Context, ownerID, taskID string, update TaskUpdate) (*domain.Task, error)
	Delete(ctx context.Context, ownerID, taskID string) error
	CountByStatus(ctx context.Context, ownerID string) (*TaskStatusCounts, error)
}
