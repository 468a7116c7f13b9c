package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Impacto-api/internal/application/auth"
	"github.com/jhoicas/Impacto-api/internal/application/dto"
	"github.com/jhoicas/Impacto-api/internal/application/usecase"
	"github.com/jhoicas/Impacto-api/internal/domain"
)

// ProfileHandler maneja las peticiones HTTP para perfiles CSR (protegido).
type ProfileHandler struct {
	uc     *usecase.ProfileUseCase
	authUC *auth.AuthUseCase
}

// NewProfileHandler construye el handler.
func NewProfileHandler(uc *usecase.ProfileUseCase, authUC *auth.AuthUseCase) *ProfileHandler {
	return &ProfileHandler{uc: uc, authUC: authUC}
}

// Create godoc
// @Summary      Crear perfil CSR del empleado
// @Tags         profiles
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProfileRequest  true  "Datos del perfil"
// @Success      201   {object}  dto.ProfileResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/profiles [post]
func (h *ProfileHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProfileRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return profileError(c, err)
	}
	// Vincular el perfil al usuario autenticado si aún no tiene uno.
	if userID := GetUserID(c); userID != "" && GetProfileID(c) == "" {
		_ = h.authUC.LinkProfile(c.Context(), userID, out.ID)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener perfil con ranking
// @Tags         profiles
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del perfil"
// @Success      200  {object}  dto.ProfileResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/profiles/{id} [get]
func (h *ProfileHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return profileError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar perfiles
// @Tags         profiles
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ProfileListResponse
// @Router       /api/profiles [get]
func (h *ProfileHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return profileError(c, err)
	}
	return c.JSON(out)
}

// Leaderboard godoc
// @Summary      Leaderboard por puntos de impacto
// @Tags         profiles
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.LeaderboardResponse
// @Router       /api/profiles/leaderboard [get]
func (h *ProfileHandler) Leaderboard(c *fiber.Ctx) error {
	out, err := h.uc.Leaderboard(c.Context())
	if err != nil {
		return profileError(c, err)
	}
	return c.JSON(out)
}

// Share godoc
// @Summary      Compartir resumen de impacto (publicación simulada)
// @Tags         profiles
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del perfil"
// @Success      200  {object}  dto.ShareResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/profiles/{id}/share [post]
func (h *ProfileHandler) Share(c *fiber.Ctx) error {
	out, err := h.uc.Share(c.Context(), c.Params("id"))
	if err != nil {
		return profileError(c, err)
	}
	return c.JSON(out)
}

// Redeem godoc
// @Summary      Vista de canje: saldo y premios alcanzables
// @Tags         profiles
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del perfil"
// @Success      200  {object}  dto.RedeemViewResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/profiles/{id}/redeem [post]
func (h *ProfileHandler) Redeem(c *fiber.Ctx) error {
	out, err := h.uc.RedeemView(c.Context(), c.Params("id"))
	if err != nil {
		return profileError(c, err)
	}
	return c.JSON(out)
}

// Rewards godoc
// @Summary      Catálogo de premios activos
// @Tags         rewards
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.RewardListResponse
// @Router       /api/rewards [get]
func (h *ProfileHandler) Rewards(c *fiber.Ctx) error {
	out, err := h.uc.ListRewards(c.Context())
	if err != nil {
		return profileError(c, err)
	}
	return c.JSON(out)
}

func profileError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "employee_id y name son requeridos"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "perfil no encontrado"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el empleado ya tiene perfil CSR"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
