// Package submission runs the multi-record persistence sequence that turns a
// completed intake form into client, campaign and workflow records.
package submission

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/leadflow/intake/pkg/catalog"
	"github.com/leadflow/intake/pkg/eventbus"
	"github.com/leadflow/intake/pkg/events"
	"github.com/leadflow/intake/pkg/models"
	"github.com/leadflow/intake/pkg/otelhelper"
	"github.com/leadflow/intake/pkg/persistence"
)

const (
	fallbackBusinessName = "Unknown Business"
	fallbackContactName  = "Unknown Contact"
	defaultTriggerType   = "manual"
)

// Contact carries the identifying details collected on the contact step.
type Contact struct {
	FullName     string
	Phone        string
	Email        string
	BusinessName string
}

// Input is everything a submission run needs, assembled by the caller from
// the session. The orchestrator never reaches back into session state.
type Input struct {
	Contact            Contact
	CampaignSources    []string
	WebsiteURL         string
	WebsiteCredentials string
	Automation         *models.Automation
	Values             models.ValueMap
	Steps              []models.WorkflowStep
}

// Policy controls which stage failures abort the run. Client insertion always
// aborts; everything else is auxiliary unless escalated here.
type Policy struct {
	// EscalateWorkflowFailure aborts the run when the workflow or its steps
	// cannot be written, so the caller never reports success for a
	// submission whose configured workflow was silently lost.
	EscalateWorkflowFailure bool
}

func DefaultPolicy() Policy {
	return Policy{EscalateWorkflowFailure: true}
}

// Result is the outcome of a submission run. On a critical failure it still
// carries the locally-built client record and the stage report so callers can
// surface what happened.
type Result struct {
	Client     *models.ClientRecord `json:"client"`
	WorkflowID string               `json:"workflow_id,omitempty"`
	Report     Report               `json:"report"`
}

// Orchestrator persists one submission as an ordered sequence of record
// writes against the intake store.
type Orchestrator struct {
	store   persistence.IntakeStore
	catalog *catalog.Catalog
	bus     eventbus.EventPublisher
	policy  Policy
	logger  *slog.Logger
	tracer  trace.Tracer
}

func NewOrchestrator(store persistence.IntakeStore, cat *catalog.Catalog, bus eventbus.EventPublisher, policy Policy, logger *slog.Logger) *Orchestrator {
	return &Orchestrator{
		store:   store,
		catalog: cat,
		bus:     bus,
		policy:  policy,
		logger:  logger.With("module", "submission"),
		tracer:  otel.Tracer("intake.submission"),
	}
}

// Submit runs the full persistence sequence. A non-nil error means the
// critical path failed and nothing downstream of the failing stage ran; the
// returned Result is still populated with the stage report gathered so far.
func (o *Orchestrator) Submit(ctx context.Context, input Input) (*Result, error) {
	ctx, span := otelhelper.StartSpan(ctx, o.tracer, "submission.submit")
	defer span.End()

	result := &Result{Client: buildClientRecord(input)}

	span.SetAttributes(
		attribute.String(otelhelper.ClientTokenKey, result.Client.ClientToken),
		attribute.Int("campaign.sources", len(input.CampaignSources)),
	)

	client, err := o.store.InsertClient(ctx, *result.Client)
	result.Report.record(StageClient, "", err)

	if err != nil {
		return o.fail(ctx, span, result, StageClient, err)
	}

	result.Client = client
	span.SetAttributes(attribute.String(otelhelper.ClientIDKey, client.ID))
	o.logger.InfoContext(ctx, "Client record created", "client_id", client.ID, "business_name", client.BusinessName)

	o.insertCampaigns(ctx, client.ID, input, result)
	o.insertCampaignSummary(ctx, client.ID, input, result)

	if input.Automation != nil {
		workflow, err := o.insertWorkflow(ctx, client.ID, input, result)
		if err != nil && o.policy.EscalateWorkflowFailure {
			return o.fail(ctx, span, result, StageWorkflow, err)
		}

		if workflow != nil {
			result.WorkflowID = workflow.ID
			span.SetAttributes(attribute.String(otelhelper.WorkflowIDKey, workflow.ID))

			o.insertWorkflowDetail(ctx, client.ID, workflow, input, result)

			if err := o.insertWorkflowSteps(ctx, workflow.ID, input, result); err != nil && o.policy.EscalateWorkflowFailure {
				return o.fail(ctx, span, result, StageWorkflowSteps, err)
			}
		}
	}

	o.publishSubmitted(ctx, client, input, result)

	span.SetAttributes(attribute.Int("stage.failures", result.Report.FailureCount()))

	return result, nil
}

// fail finalizes a critical-path failure: the run stops, the failure is
// published best-effort, and the error escapes to the caller.
func (o *Orchestrator) fail(ctx context.Context, span trace.Span, result *Result, stage Stage, err error) (*Result, error) {
	o.logger.ErrorContext(ctx, "Submission failed", "stage", string(stage), "error", err)

	otelhelper.SetError(span, err, attribute.String(otelhelper.StageKey, string(stage)))

	failed := events.IntakeFailed{
		BaseEvent: events.NewBaseEvent(events.IntakeFailedEvent, ""),
		Stage:     string(stage),
		Reason:    err.Error(),
	}
	if result.Client != nil {
		failed.ClientID = result.Client.ID
	}

	if o.bus != nil {
		if pubErr := o.bus.Publish(ctx, result.Client.ClientToken, failed); pubErr != nil {
			o.logger.WarnContext(ctx, "Failed to publish intake failure event", "error", pubErr)
		}
	}

	return result, fmt.Errorf("submission stage %s: %w", stage, err)
}

// buildClientRecord derives the client row from contact details, falling back
// to placeholder names so a sparse form still produces a usable record.
func buildClientRecord(input Input) *models.ClientRecord {
	businessName := input.Contact.BusinessName
	if businessName == "" {
		businessName = fallbackBusinessName
	}

	contactName := input.Contact.FullName
	if contactName == "" {
		contactName = fallbackContactName
	}

	return &models.ClientRecord{
		ClientToken:  fmt.Sprintf("client_%d", time.Now().UnixMilli()),
		BusinessName: businessName,
		ContactName:  contactName,
		Email:        input.Contact.Email,
		Phone:        input.Contact.Phone,
		WebsiteURL:   input.WebsiteURL,
		Status:       models.ClientStatusActive,
	}
}

// insertCampaigns writes one campaign row per selected source. Each write is
// isolated: a failed source is recorded and the loop continues.
func (o *Orchestrator) insertCampaigns(ctx context.Context, clientID string, input Input, result *Result) {
	var settings map[string]any
	if input.WebsiteCredentials != "" {
		settings = map[string]any{"website_credentials": input.WebsiteCredentials}
	}

	for _, source := range input.CampaignSources {
		record := models.CampaignRecord{
			ClientID:     clientID,
			CampaignType: source,
			Name:         fmt.Sprintf("%s - %s", source, result.Client.BusinessName),
			Settings:     settings,
		}

		_, err := o.store.InsertCampaign(ctx, record)
		result.Report.record(StageCampaign, source, err)

		if err != nil {
			o.logger.WarnContext(ctx, "Failed to insert campaign", "source", source, "error", err)
		}
	}
}

func (o *Orchestrator) insertCampaignSummary(ctx context.Context, clientID string, input Input, result *Result) {
	summary := models.CampaignSummaryRecord{
		ClientID: clientID,
		Flags:    map[string]bool{},
	}

	for _, source := range o.catalog.CampaignSources() {
		summary.Flags[source.Value] = false
	}

	for _, source := range input.CampaignSources {
		if o.catalog.KnownSource(source) {
			summary.Flags[source] = true
		} else {
			summary.Other = append(summary.Other, source)
		}
	}

	_, err := o.store.InsertActiveCampaignsSummary(ctx, summary)
	result.Report.record(StageCampaignSummary, "", err)

	if err != nil {
		o.logger.WarnContext(ctx, "Failed to insert campaign summary", "error", err)
	}
}

func (o *Orchestrator) insertWorkflow(ctx context.Context, clientID string, input Input, result *Result) (*models.WorkflowRecord, error) {
	record := models.WorkflowRecord{
		ClientID:    clientID,
		Name:        fmt.Sprintf("%s - %s", input.Automation.Category, input.Automation.Title),
		TriggerType: defaultTriggerType,
	}

	if trigger, ok := firstStep(input.Steps, models.StepTrigger); ok && trigger.OptionID != "" {
		record.TriggerType = trigger.OptionID
		record.TriggerConfig = trigger.Config
	}

	workflow, err := o.store.InsertWorkflow(ctx, record)
	result.Report.record(StageWorkflow, "", err)

	if err != nil {
		o.logger.ErrorContext(ctx, "Failed to insert workflow", "error", err)

		return nil, err
	}

	return workflow, nil
}

// insertWorkflowDetail writes the denormalized automation snapshot. Form
// inputs are allow-listed against the automation's declared field ids so
// arbitrary session values never leak into storage.
func (o *Orchestrator) insertWorkflowDetail(ctx context.Context, clientID string, workflow *models.WorkflowRecord, input Input, result *Result) {
	automation := input.Automation

	record := models.WorkflowDetailRecord{
		ClientID:           clientID,
		WorkflowID:         workflow.ID,
		AutomationID:       automation.ID,
		AutomationTitle:    automation.Title,
		AutomationCategory: automation.Category,
		ActionType:         catalog.OptionSendMessage,
		MessageContent:     resolveMessageContent(automation, input.Values),
		TriggerType:        workflow.TriggerType,
		FormInputs:         map[string]any{},
	}

	if action, ok := firstStep(input.Steps, models.StepAction); ok && action.OptionID != "" {
		record.ActionType = action.OptionID
	}

	if workflow.TriggerType == catalog.OptionSchedule {
		if spec, ok := workflow.TriggerConfig["cron_expression"].(string); ok {
			record.ScheduleSpec = spec
		}
	}

	for _, id := range automation.FieldIDs() {
		if value, ok := input.Values[id]; ok && !value.IsAbsent() {
			record.FormInputs[id] = value.Interface()
		}
	}

	_, err := o.store.InsertActiveWorkflowDetail(ctx, record)
	result.Report.record(StageWorkflowDetail, "", err)

	if err != nil {
		o.logger.WarnContext(ctx, "Failed to insert workflow detail", "error", err)
	}
}

// insertWorkflowSteps writes the user-authored action steps in order. When
// the builder produced none, a single send_message step is synthesized from
// the automation's primary message field so the workflow is never empty.
func (o *Orchestrator) insertWorkflowSteps(ctx context.Context, workflowID string, input Input, result *Result) error {
	records := make([]models.WorkflowStepRecord, 0, len(input.Steps))
	order := 1

	for _, step := range input.Steps {
		if step.Role != models.StepAction || step.OptionID == "" {
			continue
		}

		records = append(records, models.WorkflowStepRecord{
			WorkflowID:   workflowID,
			StepOrder:    order,
			ActionType:   step.OptionID,
			ActionConfig: step.Config,
			IsActive:     true,
		})
		order++
	}

	if len(records) == 0 {
		records = append(records, models.WorkflowStepRecord{
			WorkflowID: workflowID,
			StepOrder:  1,
			ActionType: catalog.OptionSendMessage,
			ActionConfig: map[string]any{
				"message": resolveMessageContent(input.Automation, input.Values),
			},
			IsActive: true,
		})
	}

	_, err := o.store.InsertWorkflowSteps(ctx, records)
	result.Report.record(StageWorkflowSteps, "", err)

	if err != nil {
		o.logger.ErrorContext(ctx, "Failed to insert workflow steps", "count", len(records), "error", err)
	}

	return err
}

func (o *Orchestrator) publishSubmitted(ctx context.Context, client *models.ClientRecord, input Input, result *Result) {
	if o.bus == nil {
		return
	}

	event := events.IntakeSubmitted{
		BaseEvent:     events.NewBaseEvent(events.IntakeSubmittedEvent, client.ID),
		ClientToken:   client.ClientToken,
		BusinessName:  client.BusinessName,
		WorkflowID:    result.WorkflowID,
		CampaignCount: len(input.CampaignSources),
	}

	if input.Automation != nil {
		event.AutomationID = input.Automation.ID
		event.AutomationTitle = input.Automation.Title
	}

	err := o.bus.Publish(ctx, client.ClientToken, event)
	result.Report.record(StagePublish, "", err)

	if err != nil {
		o.logger.WarnContext(ctx, "Failed to publish intake submitted event", "error", err)
	}
}

// resolveMessageContent returns the user's text for the automation's primary
// message field, or the field's placeholder when the user left it blank.
func resolveMessageContent(automation *models.Automation, values models.ValueMap) string {
	field, ok := automation.PrimaryMessageField()
	if !ok {
		return ""
	}

	if value, found := values[field.ID]; found {
		if text, isString := value.AsString(); isString && text != "" {
			return text
		}
	}

	return field.Placeholder
}

func firstStep(steps []models.WorkflowStep, role models.StepRole) (models.WorkflowStep, bool) {
	for _, step := range steps {
		if step.Role == role {
			return step, true
		}
	}

	return models.WorkflowStep{}, false
}
