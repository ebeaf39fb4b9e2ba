package web

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/leadflow/intake/pkg/services"
)

type APIHandlers struct {
	intakeService *services.Intake
}

func NewAPIHandlers(intakeService *services.Intake) *APIHandlers {
	return &APIHandlers{intakeService: intakeService}
}

func (h *APIHandlers) GetAutomations(c fiber.Ctx) error {
	return c.JSON(h.intakeService.ListAutomations(c.Context()))
}

func (h *APIHandlers) GetAutomation(c fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return badRequest(c, "Automation ID must be an integer")
	}

	automation, err := h.intakeService.AutomationByID(c.Context(), id)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(automation)
}

func (h *APIHandlers) GetStepOptions(c fiber.Ctx) error {
	triggers, actions := h.intakeService.StepOptions(c.Context())

	return c.JSON(fiber.Map{
		"triggers": triggers,
		"actions":  actions,
	})
}

func (h *APIHandlers) GetCampaignSources(c fiber.Ctx) error {
	return c.JSON(h.intakeService.CampaignSources(c.Context()))
}

func (h *APIHandlers) SubmitIntake(c fiber.Ctx) error {
	var req services.SubmitIntakeRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	result, err := h.intakeService.SubmitIntake(c.Context(), req)
	if err != nil {
		return handleServiceError(c, err)
	}

	response := SubmitIntakeResponse{
		WorkflowID: result.WorkflowID,
		Report:     result.Report,
	}
	if result.Client != nil {
		response.ClientID = result.Client.ID
		response.ClientToken = result.Client.ClientToken
	}

	return c.Status(fiber.StatusCreated).JSON(response)
}

func (h *APIHandlers) GenerateMessage(c fiber.Ctx) error {
	var req services.AssistFieldRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	message, err := h.intakeService.AssistField(c.Context(), req)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(GenerateMessageResponse{Message: message})
}

func (h *APIHandlers) GetClients(c fiber.Ctx) error {
	clients, err := h.intakeService.ListClients(c.Context())
	if err != nil {
		return internalError(c, err)
	}

	return c.JSON(clients)
}

func (h *APIHandlers) GetClient(c fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "Client ID is required")
	}

	client, err := h.intakeService.ClientByID(c.Context(), id)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(client)
}

func (h *APIHandlers) GetClientWorkflows(c fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "Client ID is required")
	}

	workflows, err := h.intakeService.ClientWorkflows(c.Context(), id)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(workflows)
}

func (h *APIHandlers) HealthCheck(c fiber.Ctx) error {
	storeCheck, storeOk := h.intakeService.HealthCheck(c.Context())

	status := "unhealthy"
	message := "Intake API is unhealthy"
	httpStatus := http.StatusInternalServerError

	if storeOk {
		status = "healthy"
		message = "Intake API is healthy"
		httpStatus = http.StatusOK
	}

	return c.Status(httpStatus).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"checkers": fiber.Map{
			"store": storeCheck,
		},
		"timestamp": time.Now().UTC(),
	})
}

// RegisterRoutes mounts the intake API onto the given fiber app.
func RegisterRoutes(app *fiber.App, handlers *APIHandlers) {
	app.Get("/health", handlers.HealthCheck)

	app.Get("/automations", handlers.GetAutomations)
	app.Get("/automations/:id", handlers.GetAutomation)
	app.Get("/catalog/options", handlers.GetStepOptions)
	app.Get("/catalog/campaign-sources", handlers.GetCampaignSources)

	app.Post("/intake", handlers.SubmitIntake)
	app.Post("/generate-message", handlers.GenerateMessage)

	app.Get("/clients", handlers.GetClients)
	app.Get("/clients/:id", handlers.GetClient)
	app.Get("/clients/:id/workflows", handlers.GetClientWorkflows)
}
