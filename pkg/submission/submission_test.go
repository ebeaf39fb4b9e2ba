package submission

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadflow/intake/pkg/catalog"
	"github.com/leadflow/intake/pkg/eventbus"
	"github.com/leadflow/intake/pkg/events"
	"github.com/leadflow/intake/pkg/models"
)

type mockStore struct {
	clients   []models.ClientRecord
	campaigns []models.CampaignRecord
	summaries []models.CampaignSummaryRecord
	workflows []models.WorkflowRecord
	details   []models.WorkflowDetailRecord
	steps     []models.WorkflowStepRecord

	clientErr       error
	campaignErrFor  string
	campaignErr     error
	summaryErr      error
	workflowErr     error
	detailErr       error
	stepsErr        error
	clientCalls     int
	workflowCalls   int
	stepBatchCalls  int
	summaryCalls    int
	campaignCalls   int
	detailCalls     int
}

func (m *mockStore) InsertClient(_ context.Context, record models.ClientRecord) (*models.ClientRecord, error) {
	m.clientCalls++
	if m.clientErr != nil {
		return nil, m.clientErr
	}

	record.ID = uuid.New().String()
	m.clients = append(m.clients, record)

	return &record, nil
}

func (m *mockStore) InsertCampaign(_ context.Context, record models.CampaignRecord) (*models.CampaignRecord, error) {
	m.campaignCalls++
	if m.campaignErr != nil && (m.campaignErrFor == "" || m.campaignErrFor == record.CampaignType) {
		return nil, m.campaignErr
	}

	record.ID = uuid.New().String()
	m.campaigns = append(m.campaigns, record)

	return &record, nil
}

func (m *mockStore) InsertActiveCampaignsSummary(_ context.Context, record models.CampaignSummaryRecord) (*models.CampaignSummaryRecord, error) {
	m.summaryCalls++
	if m.summaryErr != nil {
		return nil, m.summaryErr
	}

	record.ID = uuid.New().String()
	m.summaries = append(m.summaries, record)

	return &record, nil
}

func (m *mockStore) InsertWorkflow(_ context.Context, record models.WorkflowRecord) (*models.WorkflowRecord, error) {
	m.workflowCalls++
	if m.workflowErr != nil {
		return nil, m.workflowErr
	}

	record.ID = uuid.New().String()
	m.workflows = append(m.workflows, record)

	return &record, nil
}

func (m *mockStore) InsertActiveWorkflowDetail(_ context.Context, record models.WorkflowDetailRecord) (*models.WorkflowDetailRecord, error) {
	m.detailCalls++
	if m.detailErr != nil {
		return nil, m.detailErr
	}

	record.ID = uuid.New().String()
	m.details = append(m.details, record)

	return &record, nil
}

func (m *mockStore) InsertWorkflowSteps(_ context.Context, records []models.WorkflowStepRecord) ([]models.WorkflowStepRecord, error) {
	m.stepBatchCalls++
	if m.stepsErr != nil {
		return nil, m.stepsErr
	}

	for i := range records {
		records[i].ID = uuid.New().String()
	}

	m.steps = append(m.steps, records...)

	return records, nil
}

func (m *mockStore) ListClients(context.Context) ([]*models.ClientRecord, error) { return nil, nil }

func (m *mockStore) ClientByID(context.Context, string) (*models.ClientRecord, error) {
	return nil, nil
}

func (m *mockStore) WorkflowsByClient(context.Context, string) ([]*models.WorkflowRecord, error) {
	return nil, nil
}

func (m *mockStore) WorkflowStepsByWorkflow(context.Context, string) ([]*models.WorkflowStepRecord, error) {
	return nil, nil
}

func (m *mockStore) HealthCheck(context.Context) error { return nil }
func (m *mockStore) Close(context.Context) error       { return nil }

type capturePublisher struct {
	published []eventbus.Event
	err       error
}

func (p *capturePublisher) Publish(_ context.Context, _ string, event eventbus.Event) error {
	if p.err != nil {
		return p.err
	}

	p.published = append(p.published, event)

	return nil
}

func newTestOrchestrator(t *testing.T, store *mockStore, bus eventbus.EventPublisher, policy Policy) *Orchestrator {
	t.Helper()

	return NewOrchestrator(store, catalog.MustNew(), bus, policy, slog.Default())
}

func fullInput(t *testing.T) Input {
	t.Helper()

	automation, err := catalog.MustNew().AutomationByID(1)
	require.NoError(t, err)

	return Input{
		Contact: Contact{
			FullName:     "דנה לוי",
			Phone:        "050-1234567",
			Email:        "dana@example.com",
			BusinessName: "סטודיו דנה",
		},
		CampaignSources: []string{"facebook_instagram", "tiktok"},
		Automation:      automation,
		Values: models.ValueMap{
			"enable_facebook_automation": models.BoolValue(true),
			"facebook_lead_message":      models.StringValue("תודה על הפנייה!"),
		},
	}
}

func TestSubmitFullRun(t *testing.T) {
	store := &mockStore{}
	bus := &capturePublisher{}
	orchestrator := newTestOrchestrator(t, store, bus, DefaultPolicy())

	result, err := orchestrator.Submit(context.Background(), fullInput(t))
	require.NoError(t, err)
	require.NotNil(t, result)

	require.Len(t, store.clients, 1)
	assert.Equal(t, "סטודיו דנה", store.clients[0].BusinessName)
	assert.True(t, strings.HasPrefix(store.clients[0].ClientToken, "client_"))
	assert.Equal(t, models.ClientStatusActive, store.clients[0].Status)

	require.Len(t, store.campaigns, 2)
	assert.Equal(t, "facebook_instagram", store.campaigns[0].CampaignType)
	assert.Equal(t, store.clients[0].ID, store.campaigns[0].ClientID)

	require.Len(t, store.summaries, 1)
	assert.True(t, store.summaries[0].Flags["facebook_instagram"])
	assert.True(t, store.summaries[0].Flags["tiktok"])
	assert.False(t, store.summaries[0].Flags["linkedin"])
	assert.Empty(t, store.summaries[0].Other)

	require.Len(t, store.workflows, 1)
	assert.Equal(t, "manual", store.workflows[0].TriggerType)
	assert.Equal(t, result.WorkflowID, store.workflows[0].ID)

	require.Len(t, store.details, 1)
	assert.Equal(t, 1, store.details[0].AutomationID)
	assert.Equal(t, "תודה על הפנייה!", store.details[0].MessageContent)
	assert.Contains(t, store.details[0].FormInputs, "facebook_lead_message")

	require.Len(t, store.steps, 1)
	assert.Equal(t, catalog.OptionSendMessage, store.steps[0].ActionType)
	assert.Equal(t, 1, store.steps[0].StepOrder)
	assert.Equal(t, "תודה על הפנייה!", store.steps[0].ActionConfig["message"])

	assert.Zero(t, result.Report.FailureCount())

	require.Len(t, bus.published, 1)
	submitted, ok := bus.published[0].(events.IntakeSubmitted)
	require.True(t, ok)
	assert.NotEmpty(t, submitted.ID)
	assert.Equal(t, events.IntakeSubmittedEvent, submitted.Type)
	assert.Equal(t, store.clients[0].ID, submitted.ClientID)
	assert.Equal(t, store.clients[0].ClientToken, submitted.ClientToken)
	assert.Equal(t, 1, submitted.AutomationID)
	assert.Equal(t, 2, submitted.CampaignCount)
}

func TestSubmitClientFailureAbortsRun(t *testing.T) {
	store := &mockStore{clientErr: errors.New("connection refused")}
	bus := &capturePublisher{}
	orchestrator := newTestOrchestrator(t, store, bus, DefaultPolicy())

	result, err := orchestrator.Submit(context.Background(), fullInput(t))
	require.Error(t, err)
	require.NotNil(t, result)

	assert.True(t, result.Report.Failed(StageClient))
	assert.Zero(t, store.campaignCalls)
	assert.Zero(t, store.summaryCalls)
	assert.Zero(t, store.workflowCalls)

	require.NotNil(t, result.Client)
	assert.True(t, strings.HasPrefix(result.Client.ClientToken, "client_"))

	require.Len(t, bus.published, 1)
	failed, ok := bus.published[0].(events.IntakeFailed)
	require.True(t, ok)
	assert.NotEmpty(t, failed.ID)
	assert.Equal(t, string(StageClient), failed.Stage)
}

func TestSubmitSummaryFailureIsIsolated(t *testing.T) {
	store := &mockStore{summaryErr: errors.New("disk full")}
	orchestrator := newTestOrchestrator(t, store, &capturePublisher{}, DefaultPolicy())

	result, err := orchestrator.Submit(context.Background(), fullInput(t))
	require.NoError(t, err)

	assert.True(t, result.Report.Failed(StageCampaignSummary))
	assert.Equal(t, 1, result.Report.FailureCount())

	require.Len(t, store.workflows, 1, "workflow must still be written after a summary failure")
	require.Len(t, store.steps, 1)
}

func TestSubmitCampaignFailureSkipsOnlyThatSource(t *testing.T) {
	store := &mockStore{campaignErr: errors.New("timeout"), campaignErrFor: "tiktok"}
	orchestrator := newTestOrchestrator(t, store, &capturePublisher{}, DefaultPolicy())

	result, err := orchestrator.Submit(context.Background(), fullInput(t))
	require.NoError(t, err)

	assert.Equal(t, 2, store.campaignCalls)
	require.Len(t, store.campaigns, 1)
	assert.Equal(t, "facebook_instagram", store.campaigns[0].CampaignType)
	assert.True(t, result.Report.Failed(StageCampaign))
}

func TestSubmitCampaignSettingsCarryWebsiteCredentials(t *testing.T) {
	store := &mockStore{}
	orchestrator := newTestOrchestrator(t, store, &capturePublisher{}, DefaultPolicy())

	input := fullInput(t)
	input.WebsiteCredentials = "user: studio-dana / pass: 1234"

	_, err := orchestrator.Submit(context.Background(), input)
	require.NoError(t, err)

	require.Len(t, store.campaigns, 2)

	for _, campaign := range store.campaigns {
		assert.Equal(t, "user: studio-dana / pass: 1234", campaign.Settings["website_credentials"])
	}
}

func TestSubmitCampaignSettingsOmittedWithoutCredentials(t *testing.T) {
	store := &mockStore{}
	orchestrator := newTestOrchestrator(t, store, &capturePublisher{}, DefaultPolicy())

	_, err := orchestrator.Submit(context.Background(), fullInput(t))
	require.NoError(t, err)

	require.Len(t, store.campaigns, 2)
	assert.Nil(t, store.campaigns[0].Settings)
}

func TestSubmitWorkflowFailureEscalatedByDefault(t *testing.T) {
	store := &mockStore{workflowErr: errors.New("constraint violation")}
	orchestrator := newTestOrchestrator(t, store, &capturePublisher{}, DefaultPolicy())

	result, err := orchestrator.Submit(context.Background(), fullInput(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), string(StageWorkflow))
	assert.True(t, result.Report.Failed(StageWorkflow))
	assert.Zero(t, store.detailCalls)
	assert.Zero(t, store.stepBatchCalls)
}

func TestSubmitWorkflowFailureToleratedWhenNotEscalated(t *testing.T) {
	store := &mockStore{workflowErr: errors.New("constraint violation")}
	bus := &capturePublisher{}
	orchestrator := newTestOrchestrator(t, store, bus, Policy{EscalateWorkflowFailure: false})

	result, err := orchestrator.Submit(context.Background(), fullInput(t))
	require.NoError(t, err)

	assert.True(t, result.Report.Failed(StageWorkflow))
	assert.Empty(t, result.WorkflowID)
	assert.Zero(t, store.detailCalls, "detail write is skipped without a workflow id")
	require.Len(t, bus.published, 1)
}

func TestSubmitStepsFailureEscalatedByDefault(t *testing.T) {
	store := &mockStore{stepsErr: errors.New("write failed")}
	orchestrator := newTestOrchestrator(t, store, &capturePublisher{}, DefaultPolicy())

	_, err := orchestrator.Submit(context.Background(), fullInput(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), string(StageWorkflowSteps))
}

func TestSubmitFallbackNamesForSparseContact(t *testing.T) {
	store := &mockStore{}
	orchestrator := newTestOrchestrator(t, store, &capturePublisher{}, DefaultPolicy())

	_, err := orchestrator.Submit(context.Background(), Input{})
	require.NoError(t, err)

	require.Len(t, store.clients, 1)
	assert.Equal(t, "Unknown Business", store.clients[0].BusinessName)
	assert.Equal(t, "Unknown Contact", store.clients[0].ContactName)
	assert.Zero(t, store.workflowCalls, "no automation selected means no workflow write")
}

func TestSubmitPlaceholderMessageWhenFieldBlank(t *testing.T) {
	store := &mockStore{}
	orchestrator := newTestOrchestrator(t, store, &capturePublisher{}, DefaultPolicy())

	input := fullInput(t)
	delete(input.Values, "facebook_lead_message")

	_, err := orchestrator.Submit(context.Background(), input)
	require.NoError(t, err)

	field, ok := input.Automation.PrimaryMessageField()
	require.True(t, ok)

	require.Len(t, store.steps, 1)
	assert.Equal(t, field.Placeholder, store.steps[0].ActionConfig["message"])
	assert.Equal(t, field.Placeholder, store.details[0].MessageContent)
}

func TestSubmitUserAuthoredStepsAreOrdered(t *testing.T) {
	store := &mockStore{}
	orchestrator := newTestOrchestrator(t, store, &capturePublisher{}, DefaultPolicy())

	input := fullInput(t)
	input.Steps = []models.WorkflowStep{
		{ID: "trigger_1", Role: models.StepTrigger, OptionID: "facebook_lead", Config: map[string]any{}},
		{ID: "action_1", Role: models.StepAction, OptionID: "send_message", Config: map[string]any{"message": "היי"}},
		{ID: "action_2", Role: models.StepAction, OptionID: "notify_team", Config: map[string]any{"notify_target": "מנהל מכירות"}},
	}

	_, err := orchestrator.Submit(context.Background(), input)
	require.NoError(t, err)

	require.Len(t, store.workflows, 1)
	assert.Equal(t, "facebook_lead", store.workflows[0].TriggerType)

	require.Len(t, store.steps, 2)
	assert.Equal(t, "send_message", store.steps[0].ActionType)
	assert.Equal(t, 1, store.steps[0].StepOrder)
	assert.Equal(t, "notify_team", store.steps[1].ActionType)
	assert.Equal(t, 2, store.steps[1].StepOrder)
}

func TestSubmitUnknownSourceGoesToOther(t *testing.T) {
	store := &mockStore{}
	orchestrator := newTestOrchestrator(t, store, &capturePublisher{}, DefaultPolicy())

	input := fullInput(t)
	input.CampaignSources = append(input.CampaignSources, "carrier_pigeon")

	_, err := orchestrator.Submit(context.Background(), input)
	require.NoError(t, err)

	require.Len(t, store.summaries, 1)
	assert.Equal(t, []string{"carrier_pigeon"}, store.summaries[0].Other)
	assert.False(t, store.summaries[0].Flags["carrier_pigeon"])
}

func TestSubmitPublishFailureIsRecordedNotFatal(t *testing.T) {
	store := &mockStore{}
	bus := &capturePublisher{err: errors.New("broker down")}
	orchestrator := newTestOrchestrator(t, store, bus, DefaultPolicy())

	result, err := orchestrator.Submit(context.Background(), fullInput(t))
	require.NoError(t, err)
	assert.True(t, result.Report.Failed(StagePublish))
}
