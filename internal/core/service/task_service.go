package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskify/taskify-server/internal/api/metrics"
	"github.com/taskify/taskify-server/internal/core/domain"
	"github.com/taskify/taskify-server/internal/core/ports"
)

// TaskService implements task use cases. Every repository call carries
// the owner from the input, never from stored state.
type TaskService struct {
	repo   ports.TaskRepository
	logger zerolog.Logger
}

func NewTaskService(repo ports.TaskRepository, logger zerolog.Logger) *TaskService {
	return &TaskService{repo: repo, logger: logger}
}

func (s *TaskService) Create(ctx context.Context, input ports.CreateTaskInput) (*domain.Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domain.ErrInvalidInput
	}

	status := domain.StatusPending
	if input.Status != "" {
		status = domain.TaskStatus(input.Status)
		if !status.IsValid() {
			return nil, domain.ErrInvalidInput
		}
	}

	now := time.Now().UTC()
	task := &domain.Task{
		Title:       title,
		Description: strings.TrimSpace(input.Description),
		Status:      status,
		OwnerID:     input.OwnerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, task)
	if err != nil {
		s.logger.Error().Err(err).Str("owner_id", input.OwnerID).Msg("failed to create task")
		return nil, err
	}

	metrics.TaskOperationsTotal.WithLabelValues("create").Inc()
	s.logger.Info().Str("task_id", created.ID).Str("owner_id", created.OwnerID).Msg("task created")
	return created, nil
}

func (s *TaskService) List(ctx context.Context, input ports.ListTasksInput) ([]*domain.Task, error) {
	filter := ports.ListTasksFilter{
		OwnerID: input.OwnerID,
		Search:  input.Search,
	}
	// An unknown status value is ignored, not an error.
	if domain.TaskStatus(input.Status).IsValid() {
		filter.Status = input.Status
	}

	return s.repo.List(ctx, filter)
}

func (s *TaskService) Update(ctx context.Context, input ports.UpdateTaskInput) (*domain.Task, error) {
	update := ports.TaskUpdate{}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, domain.ErrInvalidInput
		}
		update.Title = &title
	}

	if input.Description != nil {
		desc := strings.TrimSpace(*input.Description)
		update.Description = &desc
	}

	// An invalid status leaves the stored status untouched; the update
	// still succeeds for the remaining fields.
	if input.Status != nil {
		status := domain.TaskStatus(*input.Status)
		if status.IsValid() {
			update.Status = &status
		}
	}

	updated, err := s.repo.Update(ctx, input.OwnerID, input.TaskID, update)
	if err != nil {
		return nil, err
	}

	metrics.TaskOperationsTotal.WithLabelValues("update").Inc()
	return updated, nil
}

func (s *TaskService) Delete(ctx context.Context, ownerID, taskID string) error {
	if err := s.repo.Delete(ctx, ownerID, taskID); err != nil {
		return err
	}

	metrics.TaskOperationsTotal.WithLabelValues("delete").Inc()
	s.logger.Info().Str("task_id", taskID).Str("owner_id", ownerID).Msg("task deleted")
	return nil
}

func (s *TaskService) Stats(ctx context.Context, ownerID string) (*ports.TaskStats, error) {
	counts, err := s.repo.CountByStatus(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	stats := &ports.TaskStats{
		Total:      counts.Total,
		Pending:    counts.Pending,
		InProgress: counts.InProgress,
		Completed:  counts.Completed,
	}
	if counts.Total > 0 {
		stats.CompletionRate = float64(counts.Completed) / float64(counts.Total)
	}
	return stats, nil
}
