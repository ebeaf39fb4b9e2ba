package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/leadflow/intake/pkg/models"
)

// MockIntakeStore is a mock implementation of the persistence.IntakeStore
// interface.
type MockIntakeStore struct {
	mock.Mock
}

func (m *MockIntakeStore) InsertClient(ctx context.Context, record models.ClientRecord) (*models.ClientRecord, error) {
	args := m.Called(ctx, record)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.ClientRecord), args.Error(1)
}

func (m *MockIntakeStore) InsertCampaign(ctx context.Context, record models.CampaignRecord) (*models.CampaignRecord, error) {
	args := m.Called(ctx, record)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.CampaignRecord), args.Error(1)
}

func (m *MockIntakeStore) InsertActiveCampaignsSummary(ctx context.Context, record models.CampaignSummaryRecord) (*models.CampaignSummaryRecord, error) {
	args := m.Called(ctx, record)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.CampaignSummaryRecord), args.Error(1)
}

func (m *MockIntakeStore) InsertWorkflow(ctx context.Context, record models.WorkflowRecord) (*models.WorkflowRecord, error) {
	args := m.Called(ctx, record)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.WorkflowRecord), args.Error(1)
}

func (m *MockIntakeStore) InsertActiveWorkflowDetail(ctx context.Context, record models.WorkflowDetailRecord) (*models.WorkflowDetailRecord, error) {
	args := m.Called(ctx, record)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.WorkflowDetailRecord), args.Error(1)
}

func (m *MockIntakeStore) InsertWorkflowSteps(ctx context.Context, records []models.WorkflowStepRecord) ([]models.WorkflowStepRecord, error) {
	args := m.Called(ctx, records)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]models.WorkflowStepRecord), args.Error(1)
}

func (m *MockIntakeStore) ListClients(ctx context.Context) ([]*models.ClientRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*models.ClientRecord), args.Error(1)
}

func (m *MockIntakeStore) ClientByID(ctx context.Context, id string) (*models.ClientRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.ClientRecord), args.Error(1)
}

func (m *MockIntakeStore) WorkflowsByClient(ctx context.Context, clientID string) ([]*models.WorkflowRecord, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*models.WorkflowRecord), args.Error(1)
}

func (m *MockIntakeStore) WorkflowStepsByWorkflow(ctx context.Context, workflowID string) ([]*models.WorkflowStepRecord, error) {
	args := m.Called(ctx, workflowID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*models.WorkflowStepRecord), args.Error(1)
}

func (m *MockIntakeStore) HealthCheck(ctx context.Context) error {
	args := m.Called(ctx)

	return args.Error(0)
}

func (m *MockIntakeStore) Close(ctx context.Context) error {
	args := m.Called(ctx)

	return args.Error(0)
}
