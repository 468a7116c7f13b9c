package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Impacto-api/internal/application/dto"
	"github.com/jhoicas/Impacto-api/internal/application/usecase"
	"github.com/jhoicas/Impacto-api/internal/domain"
)

// ActivityHandler maneja las peticiones HTTP para actividades CSR (protegido).
type ActivityHandler struct {
	uc *usecase.ActivityUseCase
}

// NewActivityHandler construye el handler.
func NewActivityHandler(uc *usecase.ActivityUseCase) *ActivityHandler {
	return &ActivityHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar actividad (draft)
// @Tags         activities
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateActivityRequest  true  "Datos de la actividad"
// @Success      201   {object}  dto.ActivityResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/activities [post]
func (h *ActivityHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateActivityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	// Empleado sin profile_id explícito registra sobre su propio perfil.
	if in.ProfileID == "" {
		in.ProfileID = GetProfileID(c)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return activityError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener actividad por ID
// @Tags         activities
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la actividad"
// @Success      200  {object}  dto.ActivityResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/activities/{id} [get]
func (h *ActivityHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return activityError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar actividades
// @Tags         activities
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.ActivityListResponse
// @Router       /api/activities [get]
func (h *ActivityHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	out, err := h.uc.List(c.Context(), page)
	if err != nil {
		return activityError(c, err)
	}
	return c.JSON(out)
}

// ListByProfile godoc
// @Summary      Listar actividades de un perfil
// @Tags         profiles
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del perfil"
// @Success      200  {object}  dto.ActivityListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/profiles/{id}/activities [get]
func (h *ActivityHandler) ListByProfile(c *fiber.Ctx) error {
	out, err := h.uc.ListByProfile(c.Context(), c.Params("id"))
	if err != nil {
		return activityError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar actividad (solo draft/submitted)
// @Tags         activities
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la actividad"
// @Param        body  body  dto.UpdateActivityRequest  true  "Campos a editar"
// @Success      200   {object}  dto.ActivityResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/activities/{id} [put]
func (h *ActivityHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateActivityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return activityError(c, err)
	}
	return c.JSON(out)
}

// Submit godoc
// @Summary      Enviar actividad a revisión (draft -> submitted)
// @Tags         activities
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la actividad"
// @Success      200  {object}  dto.ActivityResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/activities/{id}/submit [post]
func (h *ActivityHandler) Submit(c *fiber.Ctx) error {
	out, err := h.uc.Submit(c.Context(), c.Params("id"))
	if err != nil {
		return activityError(c, err)
	}
	return c.JSON(out)
}

// Approve godoc
// @Summary      Aprobar actividad (submitted -> approved)
// @Tags         activities
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la actividad"
// @Success      200  {object}  dto.ActivityResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/activities/{id}/approve [post]
func (h *ActivityHandler) Approve(c *fiber.Ctx) error {
	out, err := h.uc.Approve(c.Context(), c.Params("id"))
	if err != nil {
		return activityError(c, err)
	}
	return c.JSON(out)
}

// Reject godoc
// @Summary      Rechazar actividad (submitted -> rejected)
// @Tags         activities
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la actividad"
// @Success      200  {object}  dto.ActivityResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/activities/{id}/reject [post]
func (h *ActivityHandler) Reject(c *fiber.Ctx) error {
	out, err := h.uc.Reject(c.Context(), c.Params("id"))
	if err != nil {
		return activityError(c, err)
	}
	return c.JSON(out)
}

func activityError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos de actividad inválidos"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "actividad o perfil no encontrado"})
	case errors.Is(err, domain.ErrInvalidTransition):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INVALID_TRANSITION", Message: "transición de estado inválida"})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NOT_EDITABLE", Message: "la actividad ya fue aprobada o rechazada"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
