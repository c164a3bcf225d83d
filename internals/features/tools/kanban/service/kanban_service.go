package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"capacitajun_backend/internals/features/tools/kanban/model"
)

func ListBoard(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]model.KanbanTaskModel, error) {
	var rows []model.KanbanTaskModel
	err := db.WithContext(ctx).
		Where("kanban_task_user_id = ?", userID).
		Order("kanban_task_status ASC, kanban_task_position ASC, created_at ASC").
		Find(&rows).Error
	return rows, err
}

// GetOwned returns the task only when userID owns it.
func GetOwned(tx *gorm.DB, userID, taskID uuid.UUID) (model.KanbanTaskModel, error) {
	var m model.KanbanTaskModel
	err := tx.Where("kanban_task_id = ? AND kanban_task_user_id = ?", taskID, userID).Take(&m).Error
	return m, err
}

// Create appends the task at the end of its column.
func Create(ctx context.Context, db *gorm.DB, m *model.KanbanTaskModel) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var max *int
		if err := tx.Model(&model.KanbanTaskModel{}).
			Select("MAX(kanban_task_position)").
			Where("kanban_task_user_id = ? AND kanban_task_status = ?", m.KanbanTaskUserID, m.KanbanTaskStatus).
			Scan(&max).Error; err != nil {
			return err
		}
		m.KanbanTaskPosition = 0
		if max != nil {
			m.KanbanTaskPosition = *max + 1
		}
		return tx.Create(m).Error
	})
}

// ClampPosition bounds position to [0, others], others being the number of
// other tasks in the target column.
func ClampPosition(position, others int) int {
	if position < 0 {
		return 0
	}
	if position > others {
		return others
	}
	return position
}

// Move puts a task at position in status, closing the gap it leaves and
// shifting the target column down. Out-of-range positions are clamped.
func Move(ctx context.Context, db *gorm.DB, userID, taskID uuid.UUID, status string, position int) (model.KanbanTaskModel, error) {
	var out model.KanbanTaskModel
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		t, err := GetOwned(tx.Clauses(clause.Locking{Strength: "UPDATE"}), userID, taskID)
		if err != nil {
			return err
		}

		column := tx.Model(&model.KanbanTaskModel{}).Where("kanban_task_user_id = ? AND kanban_task_id <> ?", userID, taskID)

		if err := column.Session(&gorm.Session{}).
			Where("kanban_task_status = ? AND kanban_task_position > ?", t.KanbanTaskStatus, t.KanbanTaskPosition).
			UpdateColumn("kanban_task_position", gorm.Expr("kanban_task_position - 1")).Error; err != nil {
			return err
		}
		var others int64
		if err := column.Session(&gorm.Session{}).
			Where("kanban_task_status = ?", status).
			Count(&others).Error; err != nil {
			return err
		}
		position = ClampPosition(position, int(others))

		if err := column.Session(&gorm.Session{}).
			Where("kanban_task_status = ? AND kanban_task_position >= ?", status, position).
			UpdateColumn("kanban_task_position", gorm.Expr("kanban_task_position + 1")).Error; err != nil {
			return err
		}

		t.KanbanTaskStatus = status
		t.KanbanTaskPosition = position
		if err := tx.Model(&t).Updates(map[string]any{
			"kanban_task_status":   status,
			"kanban_task_position": position,
		}).Error; err != nil {
			return err
		}
		out = t
		return nil
	})
	return out, err
}

// Delete soft-deletes the task and closes the gap in its column.
func Delete(ctx context.Context, db *gorm.DB, userID, taskID uuid.UUID) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		t, err := GetOwned(tx.Clauses(clause.Locking{Strength: "UPDATE"}), userID, taskID)
		if err != nil {
			return err
		}
		if err := tx.Delete(&t).Error; err != nil {
			return err
		}
		return tx.Model(&model.KanbanTaskModel{}).
			Where("kanban_task_user_id = ? AND kanban_task_status = ? AND kanban_task_position > ?",
				userID, t.KanbanTaskStatus, t.KanbanTaskPosition).
			UpdateColumn("kanban_task_position", gorm.Expr("kanban_task_position - 1")).Error
	})
}
