package handler

import (
	"github.com/taskify/taskify-server/internal/core/domain"
	"github.com/taskify/taskify-server/internal/core/ports"
)

// --- Service result → HTTP response ---

func toTaskResponse(t *domain.Task) taskResponse {
	return taskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		CreatedAt:   t.CreatedAt.UTC(),
		UpdatedAt:   t.UpdatedAt.UTC(),
	}
}

func toListResponse(tasks []*domain.Task) listTasksResponse {
	items := make([]taskResponse, len(tasks))
	for i, t := range tasks {
		items[i] = toTaskResponse(t)
	}
	return listTasksResponse{Tasks: items}
}

func toStatsResponse(s *ports.TaskStats) taskStatsResponse {
	return taskStatsResponse{
		Total:          s.Total,
		Pending:        s.Pending,
		InProgress:     s.InProgress,
		Completed:      s.Completed,
		CompletionRate: s.CompletionRate,
	}
}
