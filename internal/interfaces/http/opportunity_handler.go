package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Impacto-api/internal/application/dto"
	"github.com/jhoicas/Impacto-api/internal/application/usecase"
	"github.com/jhoicas/Impacto-api/internal/domain"
)

// OpportunityHandler maneja la consulta del catálogo de oportunidades (protegido).
type OpportunityHandler struct {
	uc *usecase.OpportunityUseCase
}

// NewOpportunityHandler construye el handler.
func NewOpportunityHandler(uc *usecase.OpportunityUseCase) *OpportunityHandler {
	return &OpportunityHandler{uc: uc}
}

// List godoc
// @Summary      Listar oportunidades externas
// @Tags         opportunities
// @Security     Bearer
// @Produce      json
// @Param        sdg  query  string  false  "Filtrar por código SDG (ej. sdg14)"
// @Success      200  {object}  dto.OpportunityListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/opportunities [get]
func (h *OpportunityHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), c.Query("sdg"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "código SDG inválido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
