package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/saborurbano/backoffice/internal/application/usecase"
)

// DashboardHandler expone el resumen del panel y el estado de la API.
type DashboardHandler struct {
	uc     *usecase.DashboardUseCase
	inicio time.Time
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc, inicio: time.Now()}
}

// Resumen devuelve los indicadores del panel principal.
func (h *DashboardHandler) Resumen(c *fiber.Ctx) error {
	out, err := h.uc.Resumen()
	if err != nil {
		return fallo(c, err, "No se pudo armar el resumen")
	}
	return ok(c, out)
}

// Status devuelve metadatos de la API.
func (h *DashboardHandler) Status(c *fiber.Ctx) error {
	return ok(c, fiber.Map{
		"nombre":    "Sabor Urbano API",
		"version":   "1.0.0",
		"timestamp": time.Now().Format(time.RFC3339),
		"uptime":    time.Since(h.inicio).Round(time.Second).String(),
	})
}
