package server

import (
	"errors"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
	"github.com/recruitkit/candidatesdb/internal/config"
	"github.com/recruitkit/candidatesdb/internal/handlers"
	"github.com/recruitkit/candidatesdb/internal/middleware"
	"github.com/recruitkit/candidatesdb/internal/services"
	"github.com/recruitkit/candidatesdb/internal/types"
	"github.com/recruitkit/candidatesdb/internal/utils"
	"gorm.io/gorm"

	_ "github.com/recruitkit/candidatesdb/docs/api" // Swagger docs
)

// New builds the Fiber application with all routes wired against the given
// database handle. The caller owns the handle's lifecycle.
func New(cfg *config.Config, db *gorm.DB) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigin,
		AllowCredentials: true,
	}))
	app.Use(middleware.VersionMiddleware())

	// Prometheus metrics
	prometheus := fiberprometheus.New("candidatesdb")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Domain services share the one injected handle
	candidateService := services.NewCandidateService(db)
	documentService := services.NewDocumentService(db)

	healthHandler := &handlers.HealthHandler{Cfg: cfg, DB: db}
	candidateHandler := &handlers.CandidateHandler{Candidates: candidateService}
	documentHandler := &handlers.DocumentHandler{
		Documents:  documentService,
		Candidates: candidateService,
	}

	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.Health)

	candidates := app.Group("/candidates")
	candidates.Post("/", candidateHandler.CreateCandidate)
	candidates.Get("/", candidateHandler.ListCandidates)
	candidates.Get("/:id", candidateHandler.GetCandidate)
	candidates.Put("/:id", candidateHandler.UpdateCandidate)
	candidates.Delete("/:id", candidateHandler.DeleteCandidate)

	documents := app.Group("/documents")
	// the static "candidate" segment must register before the :id routes
	documents.Get("/candidate/:candidateId", documentHandler.ListDocumentsByCandidate)
	documents.Post("/:candidateId", documentHandler.CreateDocument)
	documents.Get("/:id", documentHandler.GetDocument)
	documents.Put("/:id/status", documentHandler.UpdateDocumentStatus)
	documents.Delete("/:id", documentHandler.DeleteDocument)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return utils.NotFoundResponse(c, "[404] Resource Not Found")
	})

	return app
}

// errorHandler translates typed domain errors to transport responses so a
// low-level persistence error never leaks unmapped.
func errorHandler(c *fiber.Ctx, err error) error {
	var notFound *types.NotFoundError
	if errors.As(err, &notFound) {
		return utils.NotFoundResponse(c, notFound.Error())
	}

	var validation *types.ValidationError
	if errors.As(err, &validation) {
		return utils.ValidationFailedResponse(c, validation.Error(), validation.Fields)
	}

	var constraint *types.ConstraintError
	if errors.As(err, &constraint) {
		return utils.ErrorResponse(c, constraint.Error(), fiber.StatusConflict, "constraint")
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return utils.ErrorResponse(c, fiberErr.Message, fiberErr.Code, "transport")
	}

	return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "unknown")
}
