package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskify/taskify-server/internal/core/domain"
	"github.com/taskify/taskify-server/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub task repository
// ---------------------------------------------------------------------------

type stubTaskRepo struct {
	tasks  map[string]*domain.Task // keyed by ID
	nextID int
}

func newStubTaskRepo() *stubTaskRepo {
	return &stubTaskRepo{tasks: make(map[string]*domain.Task)}
}

func cloneTask(t *domain.Task) *domain.Task {
	clone := *t
	return &clone
}

func (r *stubTaskRepo) Create(_ context.Context, task *domain.Task) (*domain.Task, error) {
	r.nextID++
	created := cloneTask(task)
	created.ID = fmt.Sprintf("task_%d", r.nextID)
	r.tasks[created.ID] = cloneTask(created)
	return created, nil
}

// List applies the same filters the real Mongo repository would use.
func (r *stubTaskRepo) List(_ context.Context, f ports.ListTasksFilter) ([]*domain.Task, error) {
	out := make([]*domain.Task, 0)
	for _, task := range r.tasks {
		if task.OwnerID != f.OwnerID {
			continue
		}
		if f.Status != "" && string(task.Status) != f.Status {
			continue
		}
		if f.Search != "" {
			needle := strings.ToLower(f.Search)
			title := strings.ToLower(task.Title)
			desc := strings.ToLower(task.Description)
			if !strings.Contains(title, needle) && !strings.Contains(desc, needle) {
				continue
			}
		}
		out = append(out, cloneTask(task))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *stubTaskRepo) Update(_ context.Context, ownerID, taskID string, update ports.TaskUpdate) (*domain.Task, error) {
	task, ok := r.tasks[taskID]
	if !ok || task.OwnerID != ownerID {
		return nil, domain.ErrTaskNotFound
	}
	if update.Title != nil {
		task.Title = *update.Title
	}
	if update.Description != nil {
		task.Description = *update.Description
	}
	if update.Status != nil {
		task.Status = *update.Status
	}
	task.UpdatedAt = time.Now().UTC()
	return cloneTask(task), nil
}

func (r *stubTaskRepo) Delete(_ context.Context, ownerID, taskID string) error {
	task, ok := r.tasks[taskID]
	if !ok || task.OwnerID != ownerID {
		return domain.ErrTaskNotFound
	}
	delete(r.tasks, taskID)
	return nil
}

func (r *stubTaskRepo) CountByStatus(_ context.Context, ownerID string) (*ports.TaskStatusCounts, error) {
	counts := &ports.TaskStatusCounts{}
	for _, task := range r.tasks {
		if task.OwnerID != ownerID {
			continue
		}
		counts.Total++
		switch task.Status {
		case domain.StatusPending:
			counts.Pending++
		case domain.StatusInProgress:
			counts.InProgress++
		case domain.StatusCompleted:
			counts.Completed++
		}
	}
	return counts, nil
}

func newTaskService(repo ports.TaskRepository) *TaskService {
	return NewTaskService(repo, zerolog.Nop())
}

func strPtr(s string) *string { return &s }

// ---------------------------------------------------------------------------

func TestTaskService_Create_Defaults(t *testing.T) {
	svc := newTaskService(newStubTaskRepo())

	task, err := svc.Create(context.Background(), ports.CreateTaskInput{
		OwnerID: "u1",
		Title:   "  buy milk  ",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if task.ID == "" {
		t.Fatalf("expected assigned ID")
	}
	if task.Title != "buy milk" {
		t.Fatalf("expected trimmed title, got %q", task.Title)
	}
	if task.Description != "" {
		t.Fatalf("expected empty description, got %q", task.Description)
	}
	if task.Status != domain.StatusPending {
		t.Fatalf("expected pending status, got %q", task.Status)
	}
	if task.CreatedAt.IsZero() {
		t.Fatalf("expected creation timestamp")
	}
}

func TestTaskService_Create_EmptyTitle(t *testing.T) {
	svc := newTaskService(newStubTaskRepo())

	for _, title := range []string{"", "   ", "\t\n"} {
		if _, err := svc.Create(context.Background(), ports.CreateTaskInput{OwnerID: "u1", Title: title}); !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("title %q: expected ErrInvalidInput, got %v", title, err)
		}
	}
}

func TestTaskService_Create_InvalidStatus(t *testing.T) {
	svc := newTaskService(newStubTaskRepo())

	if _, err := svc.Create(context.Background(), ports.CreateTaskInput{OwnerID: "u1", Title: "x", Status: "done"}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestTaskService_List_StatusFilter(t *testing.T) {
	repo := newStubTaskRepo()
	svc := newTaskService(repo)
	ctx := context.Background()

	_, _ = svc.Create(ctx, ports.CreateTaskInput{OwnerID: "u1", Title: "a", Status: "completed"})
	_, _ = svc.Create(ctx, ports.CreateTaskInput{OwnerID: "u1", Title: "b", Status: "pending"})
	_, _ = svc.Create(ctx, ports.CreateTaskInput{OwnerID: "u1", Title: "c", Status: "completed"})

	tasks, err := svc.List(ctx, ports.ListTasksInput{OwnerID: "u1", Status: "completed"})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("expected 2 completed tasks, got %d", len(tasks))
	}
	for _, task := range tasks {
		if task.Status != domain.StatusCompleted {
			t.Fatalf("unexpected status %q in filtered list", task.Status)
		}
	}
}

// An unknown status value is ignored, so the full list comes back.
func TestTaskService_List_UnknownStatusIgnored(t *testing.T) {
	svc := newTaskService(newStubTaskRepo())
	ctx := context.Background()

	_, _ = svc.Create(ctx, ports.CreateTaskInput{OwnerID: "u1", Title: "a"})
	_, _ = svc.Create(ctx, ports.CreateTaskInput{OwnerID: "u1", Title: "b", Status: "completed"})

	tasks, err := svc.List(ctx, ports.ListTasksInput{OwnerID: "u1", Status: "archived"})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}
}

func TestTaskService_List_SearchCaseInsensitive(t *testing.T) {
	svc := newTaskService(newStubTaskRepo())
	ctx := context.Background()

	_, _ = svc.Create(ctx, ports.CreateTaskInput{OwnerID: "u1", Title: "Buy Groceries"})
	_, _ = svc.Create(ctx, ports.CreateTaskInput{OwnerID: "u1", Title: "laundry", Description: "wash GROCERY bags"})
	_, _ = svc.Create(ctx, ports.CreateTaskInput{OwnerID: "u1", Title: "unrelated"})

	tasks, err := svc.List(ctx, ports.ListTasksInput{OwnerID: "u1", Search: "grocer"})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("expected 2 matches on title or description, got %d", len(tasks))
	}
}

func TestTaskService_List_NewestFirst(t *testing.T) {
	repo := newStubTaskRepo()
	svc := newTaskService(repo)
	ctx := context.Background()

	// Seed directly so creation times are distinct and known.
	base := time.Now().UTC().Add(-time.Hour)
	for i := 0; i < 3; i++ {
		repo.nextID++
		id := fmt.Sprintf("task_%d", repo.nextID)
		repo.tasks[id] = &domain.Task{
			ID: id, Title: fmt.Sprintf("t%d", i), OwnerID: "u1",
			Status: domain.StatusPending, CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
	}

	tasks, err := svc.List(ctx, ports.ListTasksInput{OwnerID: "u1"})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	for i := 1; i < len(tasks); i++ {
		if tasks[i].CreatedAt.After(tasks[i-1].CreatedAt) {
			t.Fatalf("tasks not sorted newest first: %v", tasks)
		}
	}
}

func TestTaskService_OwnerIsolation(t *testing.T) {
	svc := newTaskService(newStubTaskRepo())
	ctx := context.Background()

	created, err := svc.Create(ctx, ports.CreateTaskInput{OwnerID: "alice", Title: "private"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// Bob cannot see it in a list.
	tasks, _ := svc.List(ctx, ports.ListTasksInput{OwnerID: "bob"})
	if len(tasks) != 0 {
		t.Fatalf("expected empty list for other owner, got %d tasks", len(tasks))
	}

	// Bob cannot update it even with the exact identifier.
	_, err = svc.Update(ctx, ports.UpdateTaskInput{OwnerID: "bob", TaskID: created.ID, Title: strPtr("stolen")})
	if !errors.Is(err, domain.ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound for foreign update, got %v", err)
	}

	// Bob cannot delete it either.
	if err := svc.Delete(ctx, "bob", created.ID); !errors.Is(err, domain.ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound for foreign delete, got %v", err)
	}

	// Alice still has it, untouched.
	remaining, _ := svc.List(ctx, ports.ListTasksInput{OwnerID: "alice"})
	if len(remaining) != 1 || remaining[0].Title != "private" {
		t.Fatalf("owner's task was affected: %+v", remaining)
	}
}

func TestTaskService_Update_PartialFields(t *testing.T) {
	svc := newTaskService(newStubTaskRepo())
	ctx := context.Background()

	created, _ := svc.Create(ctx, ports.CreateTaskInput{OwnerID: "u1", Title: "orig", Description: "desc"})

	updated, err := svc.Update(ctx, ports.UpdateTaskInput{
		OwnerID: "u1",
		TaskID:  created.ID,
		Title:   strPtr("  renamed  "),
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Title != "renamed" {
		t.Fatalf("expected trimmed updated title, got %q", updated.Title)
	}
	if updated.Description != "desc" {
		t.Fatalf("absent field was changed: %q", updated.Description)
	}
}

func TestTaskService_Update_EmptyTitle(t *testing.T) {
	svc := newTaskService(newStubTaskRepo())
	ctx := context.Background()

	created, _ := svc.Create(ctx, ports.CreateTaskInput{OwnerID: "u1", Title: "orig"})

	if _, err := svc.Update(ctx, ports.UpdateTaskInput{OwnerID: "u1", TaskID: created.ID, Title: strPtr("   ")}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

// An invalid status leaves the stored status unchanged and the call
// still succeeds.
func TestTaskService_Update_InvalidStatusIgnored(t *testing.T) {
	svc := newTaskService(newStubTaskRepo())
	ctx := context.Background()

	created, _ := svc.Create(ctx, ports.CreateTaskInput{OwnerID: "u1", Title: "x", Status: "in-progress"})

	updated, err := svc.Update(ctx, ports.UpdateTaskInput{
		OwnerID: "u1",
		TaskID:  created.ID,
		Status:  strPtr("archived"),
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Status != domain.StatusInProgress {
		t.Fatalf("expected status unchanged, got %q", updated.Status)
	}
}

func TestTaskService_Update_NotFound(t *testing.T) {
	svc := newTaskService(newStubTaskRepo())

	_, err := svc.Update(context.Background(), ports.UpdateTaskInput{OwnerID: "u1", TaskID: "missing", Title: strPtr("x")})
	if !errors.Is(err, domain.ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestTaskService_RoundTrip(t *testing.T) {
	svc := newTaskService(newStubTaskRepo())
	ctx := context.Background()

	created, err := svc.Create(ctx, ports.CreateTaskInput{OwnerID: "u1", Title: "step one"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	listed, _ := svc.List(ctx, ports.ListTasksInput{OwnerID: "u1"})
	if len(listed) != 1 || listed[0].ID != created.ID {
		t.Fatalf("created task missing from list: %+v", listed)
	}

	updated, err := svc.Update(ctx, ports.UpdateTaskInput{
		OwnerID:     "u1",
		TaskID:      created.ID,
		Title:       strPtr("step two"),
		Description: strPtr("rewritten"),
		Status:      strPtr("completed"),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Title != "step two" || updated.Description != "rewritten" || updated.Status != domain.StatusCompleted {
		t.Fatalf("update not reflected: %+v", updated)
	}

	listed, _ = svc.List(ctx, ports.ListTasksInput{OwnerID: "u1"})
	if len(listed) != 1 || listed[0].Title != "step two" || listed[0].Status != domain.StatusCompleted {
		t.Fatalf("list does not reflect update: %+v", listed)
	}

	if err := svc.Delete(ctx, "u1", created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, err := svc.Update(ctx, ports.UpdateTaskInput{OwnerID: "u1", TaskID: created.ID, Title: strPtr("ghost")}); !errors.Is(err, domain.ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound after delete, got %v", err)
	}
}

func TestTaskService_Stats(t *testing.T) {
	svc := newTaskService(newStubTaskRepo())
	ctx := context.Background()

	_, _ = svc.Create(ctx, ports.CreateTaskInput{OwnerID: "u1", Title: "a"})
	_, _ = svc.Create(ctx, ports.CreateTaskInput{OwnerID: "u1", Title: "b", Status: "completed"})
	_, _ = svc.Create(ctx, ports.CreateTaskInput{OwnerID: "u1", Title: "c", Status: "completed"})
	_, _ = svc.Create(ctx, ports.CreateTaskInput{OwnerID: "u1", Title: "d", Status: "in-progress"})
	_, _ = svc.Create(ctx, ports.CreateTaskInput{OwnerID: "someone-else", Title: "e"})

	stats, err := svc.Stats(ctx, "u1")
	if err != nil {
		t.Fatalf("Stats returned error: %v", err)
	}
	if stats.Total != 4 || stats.Pending != 1 || stats.InProgress != 1 || stats.Completed != 2 {
		t.Fatalf("unexpected counts: %+v", stats)
	}
	if stats.CompletionRate != 0.5 {
		t.Fatalf("expected completion rate 0.5, got %v", stats.CompletionRate)
	}
}

func TestTaskService_Stats_Empty(t *testing.T) {
	svc := newTaskService(newStubTaskRepo())

	stats, err := svc.Stats(context.Background(), "u1")
	if err != nil {
		t.Fatalf("Stats returned error: %v", err)
	}
	if stats.Total != 0 || stats.CompletionRate != 0 {
		t.Fatalf("expected zero stats, got %+v", stats)
	}
}
