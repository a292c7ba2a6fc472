package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/recruitkit/candidatesdb/internal/config"
	"github.com/recruitkit/candidatesdb/internal/services"
	"gorm.io/gorm"
)

// HealthHandler handles the service status routes
type HealthHandler struct {
	Cfg *config.Config
	DB  *gorm.DB
}

// Root handles GET /
// @Summary API greeting
// @Tags Health
// @Produce plain
// @Success 200 {string} string
// @Router / [get]
func (h *HealthHandler) Root(c *fiber.Ctx) error {
	return c.SendString("Candidate and document tracking API")
}

// Health handles GET /health
// @Summary Health check
// @Description Report service and database health
// @Tags Health
// @Produce json
// @Success 200 {object} services.HealthCheckResult
// @Failure 503 {object} services.HealthCheckResult
// @Router /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	result := services.HealthCheck(h.Cfg, h.DB)

	status := fiber.StatusOK
	if result.Status != "OK" {
		status = fiber.StatusServiceUnavailable
	}
	return c.Status(status).JSON(result)
}
