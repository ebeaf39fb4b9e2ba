// Package main provides the intake API server implementation.
package main

import (
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/gofiber/fiber/v3/middleware/logger"

	"github.com/leadflow/intake/pkg/catalog"
	"github.com/leadflow/intake/pkg/eventbus"
	"github.com/leadflow/intake/pkg/persistence"
	"github.com/leadflow/intake/pkg/services"
	"github.com/leadflow/intake/pkg/submission"
	"github.com/leadflow/intake/pkg/web"
)

type API struct {
	logger    *slog.Logger
	store     persistence.IntakeStore
	catalog   *catalog.Catalog
	eventBus  eventbus.EventBus
	generator services.Generator
}

func NewAPI(
	logger *slog.Logger,
	store persistence.IntakeStore,
	cat *catalog.Catalog,
	eventBus eventbus.EventBus,
	generator services.Generator,
) *API {
	return &API{
		logger:    logger,
		store:     store,
		catalog:   cat,
		eventBus:  eventBus,
		generator: generator,
	}
}

func (a *API) App() *fiber.App {
	orchestrator := submission.NewOrchestrator(a.store, a.catalog, a.eventBus, submission.DefaultPolicy(), a.logger)
	intakeService := services.NewIntake(a.catalog, a.store, orchestrator, a.generator, a.logger)
	handlers := web.NewAPIHandlers(intakeService)

	app := fiber.New()
	app.Use(cors.New())
	app.Use(logger.New(logger.Config{
		DisableColors: true,
	}))

	app.Get(healthcheck.DefaultLivenessEndpoint, healthcheck.NewHealthChecker())
	app.Get(healthcheck.DefaultReadinessEndpoint, healthcheck.NewHealthChecker())

	app.Get("/", func(c fiber.Ctx) error {
		return c.SendString("Intake API")
	})

	web.RegisterRoutes(app, handlers)

	return app
}

func (a *API) Start(port int) error {
	app := a.App()

	return app.Listen(":" + strconv.Itoa(port))
}
