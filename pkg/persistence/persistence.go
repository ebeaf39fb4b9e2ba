// Package persistence provides the storage abstraction for intake records.
package persistence

import (
	"context"

	"github.com/leadflow/intake/pkg/models"
)

// IntakeStore is the write surface the submission orchestrator depends on,
// plus the read-back projections served by the API. Implementations assign
// record ids and creation timestamps on insert.
type IntakeStore interface {
	InsertClient(ctx context.Context, record models.ClientRecord) (*models.ClientRecord, error)
	InsertCampaign(ctx context.Context, record models.CampaignRecord) (*models.CampaignRecord, error)
	InsertActiveCampaignsSummary(ctx context.Context, record models.CampaignSummaryRecord) (*models.CampaignSummaryRecord, error)
	InsertWorkflow(ctx context.Context, record models.WorkflowRecord) (*models.WorkflowRecord, error)
	InsertActiveWorkflowDetail(ctx context.Context, record models.WorkflowDetailRecord) (*models.WorkflowDetailRecord, error)
	InsertWorkflowSteps(ctx context.Context, records []models.WorkflowStepRecord) ([]models.WorkflowStepRecord, error)

	ListClients(ctx context.Context) ([]*models.ClientRecord, error)
	ClientByID(ctx context.Context, id string) (*models.ClientRecord, error)
	WorkflowsByClient(ctx context.Context, clientID string) ([]*models.WorkflowRecord, error)
	WorkflowStepsByWorkflow(ctx context.Context, workflowID string) ([]*models.WorkflowStepRecord, error)

	HealthCheck(ctx context.Context) error
	Close(ctx context.Context) error
}
