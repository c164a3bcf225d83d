package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"capacitajun_backend/internals/features/tools/kanban/dto"
	"capacitajun_backend/internals/features/tools/kanban/model"
	"capacitajun_backend/internals/features/tools/kanban/service"
	helper "capacitajun_backend/internals/helpers"
)

type KanbanController struct {
	DB *gorm.DB
}

func NewKanbanController(db *gorm.DB) *KanbanController {
	return &KanbanController{DB: db}
}

// 🟢 GET /api/u/kanban
func (ctrl *KanbanController) Board(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	rows, err := service.ListBoard(c.UserContext(), ctrl.DB, userID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Quadro carregado", dto.ToBoard(rows))
}

// 🟡 POST /api/u/kanban
func (ctrl *KanbanController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var req dto.CreateTaskRequest
	if ok, err := helper.ParseAndValidate(c, &req); !ok {
		return err
	}
	req.Normalize()

	m := model.KanbanTaskModel{
		KanbanTaskUserID:      userID,
		KanbanTaskTitle:       req.Title,
		KanbanTaskDescription: req.Description,
		KanbanTaskStatus:      req.Status,
		KanbanTaskDueDate:     req.DueDate,
	}
	if err := service.Create(c.UserContext(), ctrl.DB, &m); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Tarefa criada", dto.ToTaskResponse(m))
}

// 🟠 PUT /api/u/kanban/:id
func (ctrl *KanbanController) Update(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var req dto.UpdateTaskRequest
	if ok, err := helper.ParseAndValidate(c, &req); !ok {
		return err
	}

	db := ctrl.DB.WithContext(c.UserContext())
	m, err := service.GetOwned(db, userID, id)
	if err != nil {
		return notFoundOr(c, err)
	}
	req.Apply(&m)
	if err := db.Save(&m).Error; err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Tarefa atualizada", dto.ToTaskResponse(m))
}

// 🟠 PATCH /api/u/kanban/:id/move
func (ctrl *KanbanController) Move(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var req dto.MoveTaskRequest
	if ok, err := helper.ParseAndValidate(c, &req); !ok {
		return err
	}

	m, err := service.Move(c.UserContext(), ctrl.DB, userID, id, req.Status, req.Position)
	if err != nil {
		return notFoundOr(c, err)
	}
	return helper.JsonUpdated(c, "Tarefa movida", dto.ToTaskResponse(m))
}

// 🔴 DELETE /api/u/kanban/:id
func (ctrl *KanbanController) Delete(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := service.Delete(c.UserContext(), ctrl.DB, userID, id); err != nil {
		return notFoundOr(c, err)
	}
	return helper.JsonDeleted(c, "Tarefa removida", nil)
}

func notFoundOr(c *fiber.Ctx, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Tarefa não encontrada")
	}
	return helper.FromFiberError(c, err)
}
