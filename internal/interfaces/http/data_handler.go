package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Shaikh-Javeriya/ClientIQ-PWA/internal/application/dto"
	"github.com/Shaikh-Javeriya/ClientIQ-PWA/internal/application/usecase"
)

// DataHandler regenera los datos de ejemplo del usuario (protegido).
type DataHandler struct {
	uc *usecase.SampleDataUseCase
}

// NewDataHandler construye el handler.
func NewDataHandler(uc *usecase.SampleDataUseCase) *DataHandler {
	return &DataHandler{uc: uc}
}

// GenerateSample godoc
// @Summary      Regenerar datos de ejemplo
// @Description  Borra los datos del usuario y genera un portafolio de demostración.
// @Tags         data
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/data/generate-sample [post]
func (h *DataHandler) GenerateSample(c *fiber.Ctx) error {
	if err := h.uc.Generate(c.Context(), GetUserID(c), nil); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "datos de ejemplo generados"})
}
