package handler

import "time"

type createTaskRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description"`
	Status      string `json:"status"      validate:"omitempty,oneof=pending in-progress completed"`
}

// updateTaskRequest uses pointers so absent fields can be told apart
// from empty ones. Status deliberately carries no oneof tag: an invalid
// value is ignored by the service, not rejected.
type updateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

type taskResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type taskEnvelope struct {
	Task taskResponse `json:"task"`
}

type listTasksResponse struct {
	Tasks []taskResponse `json:"tasks"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type taskStatsResponse struct {
	Total          int64   `json:"total"`
	Pending        int64   `json:"pending"`
	InProgress     int64   `json:"in_progress"`
	Completed      int64   `json:"completed"`
	CompletionRate float64 `json:"completion_rate"`
}
