package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusTodo  = "todo"
	StatusDoing = "doing"
	StatusDone  = "done"
)

type KanbanTaskModel struct {
	KanbanTaskID          uuid.UUID      `gorm:"column:kanban_task_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"kanban_task_id"`
	KanbanTaskUserID      uuid.UUID      `gorm:"column:kanban_task_user_id;type:uuid;not null;index:idx_kanban_user_status" json:"kanban_task_user_id"`
	KanbanTaskTitle       string         `gorm:"column:kanban_task_title;type:varchar(200);not null" json:"kanban_task_title"`
	KanbanTaskDescription *string        `gorm:"column:kanban_task_description;type:text" json:"kanban_task_description,omitempty"`
	KanbanTaskStatus      string         `gorm:"column:kanban_task_status;type:varchar(10);not null;default:'todo';index:idx_kanban_user_status" json:"kanban_task_status"`
	KanbanTaskPosition    int            `gorm:"column:kanban_task_position;not null;default:0" json:"kanban_task_position"`
	KanbanTaskDueDate     *time.Time     `gorm:"column:kanban_task_due_date;type:date" json:"kanban_task_due_date,omitempty"`
	CreatedAt             time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt             time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt             gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (KanbanTaskModel) TableName() string {
	return "kanban_tasks"
}
