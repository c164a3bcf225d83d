package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"capacitajun_backend/internals/features/tools/kanban/model"
)

type CreateTaskRequest struct {
	Title       string     `json:"title" validate:"required,min=1,max=200"`
	Description *string    `json:"description" validate:"omitempty,max=5000"`
	Status      string     `json:"status" validate:"omitempty,oneof=todo doing done"`
	DueDate     *time.Time `json:"due_date"`
}

type UpdateTaskRequest struct {
	Title       *string    `json:"title" validate:"omitempty,min=1,max=200"`
	Description *string    `json:"description" validate:"omitempty,max=5000"`
	DueDate     *time.Time `json:"due_date"`
}

type MoveTaskRequest struct {
	Status   string `json:"status" validate:"required,oneof=todo doing done"`
	Position int    `json:"position" validate:"min=0"`
}

func (r *CreateTaskRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	if r.Status == "" {
		r.Status = model.StatusTodo
	}
}

func (r UpdateTaskRequest) Apply(m *model.KanbanTaskModel) {
	if r.Title != nil {
		m.KanbanTaskTitle = strings.TrimSpace(*r.Title)
	}
	if r.Description != nil {
		m.KanbanTaskDescription = r.Description
	}
	if r.DueDate != nil {
		m.KanbanTaskDueDate = r.DueDate
	}
}

type TaskResponse struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	Status      string     `json:"status"`
	Position    int        `json:"position"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Board groups tasks by column.
type Board struct {
	Todo  []TaskResponse `json:"todo"`
	Doing []TaskResponse `json:"doing"`
	Done  []TaskResponse `json:"done"`
}

func ToTaskResponse(m model.KanbanTaskModel) TaskResponse {
	return TaskResponse{
		ID:          m.KanbanTaskID,
		Title:       m.KanbanTaskTitle,
		Description: m.KanbanTaskDescription,
		Status:      m.KanbanTaskStatus,
		Position:    m.KanbanTaskPosition,
		DueDate:     m.KanbanTaskDueDate,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// ToBoard expects tasks already ordered by position.
func ToBoard(tasks []model.KanbanTaskModel) Board {
	b := Board{Todo: []TaskResponse{}, Doing: []TaskResponse{}, Done: []TaskResponse{}}
	for _, t := range tasks {
		r := ToTaskResponse(t)
		switch t.KanbanTaskStatus {
		case model.StatusDoing:
			b.Doing = append(b.Doing, r)
		case model.StatusDone:
			b.Done = append(b.Done, r)
		default:
			b.Todo = append(b.Todo, r)
		}
	}
	return b
}
