package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/leadflow/intake/pkg/catalog"
	"github.com/leadflow/intake/pkg/generation"
	"github.com/leadflow/intake/pkg/models"
	"github.com/leadflow/intake/pkg/persistence"
	"github.com/leadflow/intake/pkg/session"
	"github.com/leadflow/intake/pkg/submission"
)

// Generator produces marketing copy for assisted fields.
type Generator interface {
	Generate(ctx context.Context, req generation.Request) (string, error)
}

// Intake is the application service behind the HTTP handlers.
type Intake struct {
	catalog   *catalog.Catalog
	store     persistence.IntakeStore
	submitter session.Submitter
	generator Generator
	validate  *validator.Validate
	logger    *slog.Logger
}

func NewIntake(cat *catalog.Catalog, store persistence.IntakeStore, submitter session.Submitter, generator Generator, logger *slog.Logger) *Intake {
	return &Intake{
		catalog:   cat,
		store:     store,
		submitter: submitter,
		generator: generator,
		validate:  validator.New(),
		logger:    logger.With("module", "services"),
	}
}

// HealthCheck reports whether the persistence layer is reachable.
func (s *Intake) HealthCheck(ctx context.Context) (string, bool) {
	if s.store == nil {
		return "Persistence layer not initialized", false
	}

	if err := s.store.HealthCheck(ctx); err != nil {
		return "Persistence layer is unhealthy: " + err.Error(), false
	}

	return "Persistence layer is healthy", true
}

// ListAutomations returns the full automation catalog.
func (s *Intake) ListAutomations(_ context.Context) []models.Automation {
	return s.catalog.Automations()
}

// AutomationByID returns one automation or ErrAutomationNotFound.
func (s *Intake) AutomationByID(_ context.Context, id int) (*models.Automation, error) {
	return s.catalog.AutomationByID(id)
}

// StepOptions returns the trigger and action templates for the builder.
func (s *Intake) StepOptions(_ context.Context) (triggers, actions []catalog.StepOption) {
	return s.catalog.TriggerOptions(), s.catalog.ActionOptions()
}

// CampaignSources returns the selectable campaign source list.
func (s *Intake) CampaignSources(_ context.Context) []catalog.CampaignSource {
	return s.catalog.CampaignSources()
}

// SubmitStep is one builder step as received from the client. The server
// regenerates ids; only role, option and config are trusted.
type SubmitStep struct {
	Role     models.StepRole `json:"role"      validate:"required,oneof=trigger action"`
	OptionID string          `json:"option_id" validate:"required"`
	Config   map[string]any  `json:"config"`
}

// SubmitIntakeRequest is the complete payload of one intake submission.
type SubmitIntakeRequest struct {
	FullName           string          `json:"full_name"`
	Phone              string          `json:"phone"`
	Email              string          `json:"email"`
	BusinessName       string          `json:"business_name"`
	Website            string          `json:"website,omitempty"`
	WebsiteCredentials string          `json:"website_credentials,omitempty"`
	CampaignSources    []string        `json:"campaign_sources"`
	AutomationID       int             `json:"automation_id"`
	Values             models.ValueMap `json:"values"`
	Steps              []SubmitStep    `json:"steps,omitempty"`
}

// SubmitIntake replays the request through a fresh form session so every
// submission passes the same step gates an interactive client would, then
// runs the persistence sequence.
func (s *Intake) SubmitIntake(ctx context.Context, req SubmitIntakeRequest) (*submission.Result, error) {
	const op = "SubmitIntake"

	controller := session.NewController(s.catalog, s.submitter, s.logger)

	if req.AutomationID != 0 {
		if err := controller.SelectAutomation(req.AutomationID); err != nil {
			return nil, &ServiceError{Op: op, Err: err}
		}
	}

	values := models.ValueMap{
		session.FieldFullName:     models.StringValue(strings.TrimSpace(req.FullName)),
		session.FieldPhone:        models.StringValue(strings.TrimSpace(req.Phone)),
		session.FieldEmail:        models.StringValue(strings.TrimSpace(req.Email)),
		session.FieldBusinessName: models.StringValue(strings.TrimSpace(req.BusinessName)),
	}

	if req.Website != "" {
		values[session.FieldWebsite] = models.StringValue(req.Website)
	}

	if req.WebsiteCredentials != "" {
		values[session.FieldWebsiteCreds] = models.StringValue(req.WebsiteCredentials)
	}

	if req.CampaignSources != nil {
		values[session.FieldActiveCampaigns] = models.StringSetValue(req.CampaignSources...)
	}

	for id, value := range req.Values {
		values[id] = value
	}

	if err := controller.UpdateValues(values); err != nil {
		return nil, NewValidationError(op, map[string]string{"values": err.Error()})
	}

	for _, submitted := range req.Steps {
		if err := s.validate.Struct(submitted); err != nil {
			return nil, NewValidationError(op, map[string]string{"steps": err.Error()})
		}

		if err := s.catalog.ValidateStepConfig(submitted.Role, submitted.OptionID, submitted.Config); err != nil {
			return nil, NewValidationError(op, map[string]string{"steps": err.Error()})
		}

		step := controller.AddStep(submitted.Role)
		if err := controller.UpdateStep(step.ID, submitted.OptionID, submitted.Config); err != nil {
			return nil, &ServiceError{Op: op, Err: err}
		}
	}

	result, err := controller.Submit(ctx)
	if err != nil {
		if errors.Is(err, session.ErrValidationFailed) {
			return nil, NewValidationError(op, controller.Snapshot().Errors)
		}

		return result, &ServiceError{Op: op, Message: "submission failed", Err: err}
	}

	return result, nil
}

// AssistFieldRequest asks for generated copy for one assisted field.
type AssistFieldRequest struct {
	AutomationID  int              `json:"automation_id" validate:"required"`
	FieldID       string           `json:"field_id"      validate:"required"`
	BusinessInfo  string           `json:"business_info" validate:"required,max=500"`
	Style         generation.Style `json:"style"         validate:"omitempty,oneof=professional casual funny sensitive formal"`
	IncludeEmojis bool             `json:"include_emojis"`
}

// AssistField generates marketing copy for the given automation field. Only
// fields declared as AI-assisted are eligible; the generated text is returned
// to the caller and never written into any session.
func (s *Intake) AssistField(ctx context.Context, req AssistFieldRequest) (string, error) {
	const op = "AssistField"

	if err := s.validate.Struct(req); err != nil {
		return "", NewValidationError(op, map[string]string{"request": err.Error()})
	}

	automation, err := s.catalog.AutomationByID(req.AutomationID)
	if err != nil {
		return "", &ServiceError{Op: op, Err: err}
	}

	field, ok := automation.FieldByID(req.FieldID)
	if !ok || !field.SupportsAI {
		return "", &ServiceError{Op: op, Message: req.FieldID, Err: ErrFieldNotAssistable}
	}

	text, err := s.generator.Generate(ctx, generation.Request{
		BusinessInfo:  req.BusinessInfo,
		Category:      string(automation.Category),
		Title:         automation.Title,
		Description:   automation.Description,
		Style:         req.Style,
		IncludeEmojis: req.IncludeEmojis,
	})
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return text, nil
}

// ListClients returns all stored clients, newest last.
func (s *Intake) ListClients(ctx context.Context) ([]*models.ClientRecord, error) {
	clients, err := s.store.ListClients(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}

	return clients, nil
}

// ClientByID returns one client or ErrClientNotFound.
func (s *Intake) ClientByID(ctx context.Context, id string) (*models.ClientRecord, error) {
	client, err := s.store.ClientByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return client, nil
}

// ClientWorkflow pairs a workflow with its ordered steps.
type ClientWorkflow struct {
	Workflow *models.WorkflowRecord       `json:"workflow"`
	Steps    []*models.WorkflowStepRecord `json:"steps"`
}

// ClientWorkflows returns every workflow configured for a client together
// with its steps.
func (s *Intake) ClientWorkflows(ctx context.Context, clientID string) ([]ClientWorkflow, error) {
	if _, err := s.store.ClientByID(ctx, clientID); err != nil {
		return nil, err
	}

	workflows, err := s.store.WorkflowsByClient(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list workflows for client %s: %w", clientID, err)
	}

	result := make([]ClientWorkflow, 0, len(workflows))

	for _, workflow := range workflows {
		steps, err := s.store.WorkflowStepsByWorkflow(ctx, workflow.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list steps for workflow %s: %w", workflow.ID, err)
		}

		result = append(result, ClientWorkflow{Workflow: workflow, Steps: steps})
	}

	return result, nil
}
