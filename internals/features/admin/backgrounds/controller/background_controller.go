package controller

import (
	"errors"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"

	"capacitajun_backend/internals/features/admin/backgrounds/dto"
	"capacitajun_backend/internals/features/admin/backgrounds/service"
	helper "capacitajun_backend/internals/helpers"
	"capacitajun_backend/internals/helpers/imagex"
	"capacitajun_backend/internals/helpers/logger"
)

const maxUploadBytes = 8 << 20

type BackgroundController struct {
	Svc *service.Service
}

func NewBackgroundController(svc *service.Service) *BackgroundController {
	return &BackgroundController{Svc: svc}
}

func pickImageFile(c *fiber.Ctx, names ...string) *multipart.FileHeader {
	for _, n := range names {
		if fh, err := c.FormFile(n); err == nil && fh != nil && fh.Size > 0 {
			return fh
		}
	}
	return nil
}

// 🌐 GET /api/public/backgrounds
func (ctrl *BackgroundController) Active(c *fiber.Ctx) error {
	rows, err := ctrl.Svc.List(c.UserContext(), true)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Imagens de fundo", dto.ToBackgroundResponses(rows))
}

// 📄 GET /api/a/backgrounds
func (ctrl *BackgroundController) List(c *fiber.Ctx) error {
	rows, err := ctrl.Svc.List(c.UserContext(), false)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Imagens de fundo", dto.ToBackgroundResponses(rows))
}

// 🖼️ POST /api/a/backgrounds (multipart: image|file)
func (ctrl *BackgroundController) Upload(c *fiber.Ctx) error {
	fh := pickImageFile(c, "image", "file")
	if fh == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Envie uma imagem no campo 'image'")
	}
	if fh.Size > maxUploadBytes {
		return helper.JsonError(c, fiber.StatusRequestEntityTooLarge, "Imagem maior que 8MB")
	}
	f, err := fh.Open()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Não foi possível ler a imagem")
	}
	defer f.Close()

	m, err := ctrl.Svc.Upload(c.UserContext(), f, fh.Filename)
	if err != nil {
		if errors.Is(err, imagex.ErrUnsupportedFormat) {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		if errors.Is(err, service.ErrStorageUnavailable) {
			return helper.JsonError(c, fiber.StatusServiceUnavailable, "Armazenamento de imagens não configurado")
		}
		logger.Log.WithError(err).WithField("filename", fh.Filename).Error("background upload failed")
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Falha ao enviar a imagem")
	}
	return helper.JsonCreated(c, "Imagem enviada", dto.ToBackgroundResponse(*m))
}

// 🔁 PATCH /api/a/backgrounds/:id
func (ctrl *BackgroundController) Patch(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var req dto.PatchBackgroundRequest
	if ok, err := helper.ParseAndValidate(c, &req); !ok {
		return err
	}
	m, err := ctrl.Svc.Patch(c.UserContext(), id, req.IsActive, req.Order)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Imagem não encontrada")
		}
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Imagem atualizada", dto.ToBackgroundResponse(*m))
}

// 🔴 DELETE /api/a/backgrounds/:id
func (ctrl *BackgroundController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := ctrl.Svc.Delete(c.UserContext(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Imagem não encontrada")
		}
		return helper.FromFiberError(c, err)
	}
	return helper.JsonDeleted(c, "Imagem removida", nil)
}
