// Package redis provides a Redis backed implementation of the intake store.
// Records are stored as JSON strings with per-entity index lists so the
// read-back projections stay cheap.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/leadflow/intake/pkg/models"
	"github.com/leadflow/intake/pkg/persistence"
)

type Store struct {
	client *goredis.Client
}

// NewStore connects to the Redis instance named by the URL
// (redis://host:port/db).
func NewStore(databaseURL string) (*Store, error) {
	opts, err := goredis.ParseURL(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing redis url: %w", err)
	}

	return &Store{client: goredis.NewClient(opts)}, nil
}

// NewStoreWithClient wraps an existing client, used by tests.
func NewStoreWithClient(client *goredis.Client) *Store {
	return &Store{client: client}
}

func recordKey(entity, id string) string {
	return fmt.Sprintf("intake:%s:%s", entity, id)
}

func indexKey(entity string) string {
	return fmt.Sprintf("intake:%s", entity)
}

func (s *Store) insert(ctx context.Context, entity, id string, record any) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encoding %s %s: %w", entity, id, err)
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, recordKey(entity, id), data, 0)
	pipe.RPush(ctx, indexKey(entity), id)

	_, err = pipe.Exec(ctx)

	return err
}

func (s *Store) get(ctx context.Context, entity, id string, record any) error {
	data, err := s.client.Get(ctx, recordKey(entity, id)).Bytes()
	if err != nil {
		return err
	}

	return json.Unmarshal(data, record)
}

func (s *Store) InsertClient(ctx context.Context, record models.ClientRecord) (*models.ClientRecord, error) {
	record.ID = uuid.New().String()
	record.CreatedAt = time.Now().UTC()

	if err := s.insert(ctx, "clients", record.ID, record); err != nil {
		return nil, persistence.NewStoreError("InsertClient", "client", record.ID, err)
	}

	return &record, nil
}

func (s *Store) InsertCampaign(ctx context.Context, record models.CampaignRecord) (*models.CampaignRecord, error) {
	record.ID = uuid.New().String()
	record.CreatedAt = time.Now().UTC()

	if err := s.insert(ctx, "campaigns", record.ID, record); err != nil {
		return nil, persistence.NewStoreError("InsertCampaign", "campaign", record.ID, err)
	}

	return &record, nil
}

func (s *Store) InsertActiveCampaignsSummary(ctx context.Context, record models.CampaignSummaryRecord) (*models.CampaignSummaryRecord, error) {
	record.ID = uuid.New().String()
	record.CreatedAt = time.Now().UTC()

	if err := s.insert(ctx, "campaign_summaries", record.ID, record); err != nil {
		return nil, persistence.NewStoreError("InsertActiveCampaignsSummary", "campaign_summary", record.ID, err)
	}

	return &record, nil
}

func (s *Store) InsertWorkflow(ctx context.Context, record models.WorkflowRecord) (*models.WorkflowRecord, error) {
	record.ID = uuid.New().String()
	record.CreatedAt = time.Now().UTC()

	if err := s.insert(ctx, "workflows", record.ID, record); err != nil {
		return nil, persistence.NewStoreError("InsertWorkflow", "workflow", record.ID, err)
	}

	if err := s.client.RPush(ctx, recordKey("clients", record.ClientID)+":workflows", record.ID).Err(); err != nil {
		return nil, persistence.NewStoreError("InsertWorkflow", "workflow", record.ID, err)
	}

	return &record, nil
}

func (s *Store) InsertActiveWorkflowDetail(ctx context.Context, record models.WorkflowDetailRecord) (*models.WorkflowDetailRecord, error) {
	record.ID = uuid.New().String()
	record.CreatedAt = time.Now().UTC()

	if err := s.insert(ctx, "workflow_details", record.ID, record); err != nil {
		return nil, persistence.NewStoreError("InsertActiveWorkflowDetail", "workflow_detail", record.ID, err)
	}

	return &record, nil
}

func (s *Store) InsertWorkflowSteps(ctx context.Context, records []models.WorkflowStepRecord) ([]models.WorkflowStepRecord, error) {
	inserted := make([]models.WorkflowStepRecord, 0, len(records))

	for _, record := range records {
		record.ID = uuid.New().String()
		record.CreatedAt = time.Now().UTC()

		if err := s.insert(ctx, "workflow_steps", record.ID, record); err != nil {
			return nil, persistence.NewStoreError("InsertWorkflowSteps", "workflow_step", record.ID, err)
		}

		key := recordKey("workflows", record.WorkflowID) + ":steps"
		if err := s.client.RPush(ctx, key, record.ID).Err(); err != nil {
			return nil, persistence.NewStoreError("InsertWorkflowSteps", "workflow_step", record.ID, err)
		}

		inserted = append(inserted, record)
	}

	return inserted, nil
}

func (s *Store) ListClients(ctx context.Context) ([]*models.ClientRecord, error) {
	ids, err := s.client.LRange(ctx, indexKey("clients"), 0, -1).Result()
	if err != nil {
		return nil, persistence.NewStoreError("ListClients", "client", "", err)
	}

	clients := make([]*models.ClientRecord, 0, len(ids))

	for _, id := range ids {
		var record models.ClientRecord
		if err := s.get(ctx, "clients", id, &record); err != nil {
			return nil, persistence.NewStoreError("ListClients", "client", id, err)
		}

		clients = append(clients, &record)
	}

	return clients, nil
}

func (s *Store) ClientByID(ctx context.Context, id string) (*models.ClientRecord, error) {
	var record models.ClientRecord

	if err := s.get(ctx, "clients", id, &record); err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, persistence.NewStoreError("ClientByID", "client", id, persistence.ErrClientNotFound)
		}

		return nil, persistence.NewStoreError("ClientByID", "client", id, err)
	}

	return &record, nil
}

func (s *Store) WorkflowsByClient(ctx context.Context, clientID string) ([]*models.WorkflowRecord, error) {
	ids, err := s.client.LRange(ctx, recordKey("clients", clientID)+":workflows", 0, -1).Result()
	if err != nil {
		return nil, persistence.NewStoreError("WorkflowsByClient", "workflow", "", err)
	}

	workflows := make([]*models.WorkflowRecord, 0, len(ids))

	for _, id := range ids {
		var record models.WorkflowRecord
		if err := s.get(ctx, "workflows", id, &record); err != nil {
			return nil, persistence.NewStoreError("WorkflowsByClient", "workflow", id, err)
		}

		workflows = append(workflows, &record)
	}

	return workflows, nil
}

func (s *Store) WorkflowStepsByWorkflow(ctx context.Context, workflowID string) ([]*models.WorkflowStepRecord, error) {
	ids, err := s.client.LRange(ctx, recordKey("workflows", workflowID)+":steps", 0, -1).Result()
	if err != nil {
		return nil, persistence.NewStoreError("WorkflowStepsByWorkflow", "workflow_step", "", err)
	}

	steps := make([]*models.WorkflowStepRecord, 0, len(ids))

	for _, id := range ids {
		var record models.WorkflowStepRecord
		if err := s.get(ctx, "workflow_steps", id, &record); err != nil {
			return nil, persistence.NewStoreError("WorkflowStepsByWorkflow", "workflow_step", id, err)
		}

		steps = append(steps, &record)
	}

	return steps, nil
}

func (s *Store) HealthCheck(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *Store) Close(_ context.Context) error {
	return s.client.Close()
}
