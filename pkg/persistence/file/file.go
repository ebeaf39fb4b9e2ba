// Package file provides a file-system backed implementation of the intake
// store. Each record is one JSON file under a per-entity directory.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/leadflow/intake/pkg/models"
	"github.com/leadflow/intake/pkg/persistence"
)

const (
	dirClients           = "clients"
	dirCampaigns         = "campaigns"
	dirCampaignSummaries = "campaign_summaries"
	dirWorkflows         = "workflows"
	dirWorkflowDetails   = "workflow_details"
	dirWorkflowSteps     = "workflow_steps"
)

// Store implements persistence.IntakeStore on the local file system.
type Store struct {
	root string
}

// NewStore creates a file store rooted at the given directory. A
// "file://" prefix is stripped so database URLs can be passed verbatim.
func NewStore(root string) *Store {
	return &Store{root: strings.Replace(root, "file://", "", 1)}
}

func (s *Store) entityDir(entity string) string {
	return filepath.Join(s.root, entity)
}

func (s *Store) write(entity, id string, record any) error {
	dir := s.entityDir(entity)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s directory: %w", entity, err)
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s %s: %w", entity, id, err)
	}

	return os.WriteFile(filepath.Join(dir, id+".json"), data, 0o644)
}

func (s *Store) read(entity, id string, record any) error {
	data, err := os.ReadFile(filepath.Join(s.entityDir(entity), id+".json"))
	if err != nil {
		return err
	}

	return json.Unmarshal(data, record)
}

func (s *Store) ids(entity string) ([]string, error) {
	dir := s.entityDir(entity)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil, nil
	}

	files, err := fs.Glob(os.DirFS(dir), "*.json")
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", entity, err)
	}

	ids := make([]string, 0, len(files))
	for _, f := range files {
		ids = append(ids, strings.TrimSuffix(f, ".json"))
	}

	return ids, nil
}

func (s *Store) InsertClient(ctx context.Context, record models.ClientRecord) (*models.ClientRecord, error) {
	record.ID = uuid.New().String()
	record.CreatedAt = time.Now().UTC()

	if err := s.write(dirClients, record.ID, record); err != nil {
		return nil, persistence.NewStoreError("InsertClient", "client", record.ID, err)
	}

	return &record, nil
}

func (s *Store) InsertCampaign(ctx context.Context, record models.CampaignRecord) (*models.CampaignRecord, error) {
	record.ID = uuid.New().String()
	record.CreatedAt = time.Now().UTC()

	if err := s.write(dirCampaigns, record.ID, record); err != nil {
		return nil, persistence.NewStoreError("InsertCampaign", "campaign", record.ID, err)
	}

	return &record, nil
}

func (s *Store) InsertActiveCampaignsSummary(ctx context.Context, record models.CampaignSummaryRecord) (*models.CampaignSummaryRecord, error) {
	record.ID = uuid.New().String()
	record.CreatedAt = time.Now().UTC()

	if err := s.write(dirCampaignSummaries, record.ID, record); err != nil {
		return nil, persistence.NewStoreError("InsertActiveCampaignsSummary", "campaign_summary", record.ID, err)
	}

	return &record, nil
}

func (s *Store) InsertWorkflow(ctx context.Context, record models.WorkflowRecord) (*models.WorkflowRecord, error) {
	record.ID = uuid.New().String()
	record.CreatedAt = time.Now().UTC()

	if err := s.write(dirWorkflows, record.ID, record); err != nil {
		return nil, persistence.NewStoreError("InsertWorkflow", "workflow", record.ID, err)
	}

	return &record, nil
}

func (s *Store) InsertActiveWorkflowDetail(ctx context.Context, record models.WorkflowDetailRecord) (*models.WorkflowDetailRecord, error) {
	record.ID = uuid.New().String()
	record.CreatedAt = time.Now().UTC()

	if err := s.write(dirWorkflowDetails, record.ID, record); err != nil {
		return nil, persistence.NewStoreError("InsertActiveWorkflowDetail", "workflow_detail", record.ID, err)
	}

	return &record, nil
}

func (s *Store) InsertWorkflowSteps(ctx context.Context, records []models.WorkflowStepRecord) ([]models.WorkflowStepRecord, error) {
	inserted := make([]models.WorkflowStepRecord, 0, len(records))

	for _, record := range records {
		record.ID = uuid.New().String()
		record.CreatedAt = time.Now().UTC()

		if err := s.write(dirWorkflowSteps, record.ID, record); err != nil {
			return nil, persistence.NewStoreError("InsertWorkflowSteps", "workflow_step", record.ID, err)
		}

		inserted = append(inserted, record)
	}

	return inserted, nil
}

func (s *Store) ListClients(ctx context.Context) ([]*models.ClientRecord, error) {
	ids, err := s.ids(dirClients)
	if err != nil {
		return nil, persistence.NewStoreError("ListClients", "client", "", err)
	}

	clients := make([]*models.ClientRecord, 0, len(ids))

	for _, id := range ids {
		var record models.ClientRecord
		if err := s.read(dirClients, id, &record); err != nil {
			return nil, persistence.NewStoreError("ListClients", "client", id, err)
		}

		clients = append(clients, &record)
	}

	sort.Slice(clients, func(i, j int) bool {
		return clients[i].CreatedAt.Before(clients[j].CreatedAt)
	})

	return clients, nil
}

func (s *Store) ClientByID(ctx context.Context, id string) (*models.ClientRecord, error) {
	var record models.ClientRecord

	if err := s.read(dirClients, id, &record); err != nil {
		if os.IsNotExist(err) {
			return nil, persistence.NewStoreError("ClientByID", "client", id, persistence.ErrClientNotFound)
		}

		return nil, persistence.NewStoreError("ClientByID", "client", id, err)
	}

	return &record, nil
}

func (s *Store) WorkflowsByClient(ctx context.Context, clientID string) ([]*models.WorkflowRecord, error) {
	ids, err := s.ids(dirWorkflows)
	if err != nil {
		return nil, persistence.NewStoreError("WorkflowsByClient", "workflow", "", err)
	}

	workflows := make([]*models.WorkflowRecord, 0)

	for _, id := range ids {
		var record models.WorkflowRecord
		if err := s.read(dirWorkflows, id, &record); err != nil {
			return nil, persistence.NewStoreError("WorkflowsByClient", "workflow", id, err)
		}

		if record.ClientID == clientID {
			workflows = append(workflows, &record)
		}
	}

	sort.Slice(workflows, func(i, j int) bool {
		return workflows[i].CreatedAt.Before(workflows[j].CreatedAt)
	})

	return workflows, nil
}

func (s *Store) WorkflowStepsByWorkflow(ctx context.Context, workflowID string) ([]*models.WorkflowStepRecord, error) {
	ids, err := s.ids(dirWorkflowSteps)
	if err != nil {
		return nil, persistence.NewStoreError("WorkflowStepsByWorkflow", "workflow_step", "", err)
	}

	steps := make([]*models.WorkflowStepRecord, 0)

	for _, id := range ids {
		var record models.WorkflowStepRecord
		if err := s.read(dirWorkflowSteps, id, &record); err != nil {
			return nil, persistence.NewStoreError("WorkflowStepsByWorkflow", "workflow_step", id, err)
		}

		if record.WorkflowID == workflowID {
			steps = append(steps, &record)
		}
	}

	sort.Slice(steps, func(i, j int) bool {
		return steps[i].StepOrder < steps[j].StepOrder
	})

	return steps, nil
}

// HealthCheck verifies the root directory exists.
func (s *Store) HealthCheck(_ context.Context) error {
	if _, err := os.Stat(s.root); os.IsNotExist(err) {
		return os.ErrNotExist
	}

	return nil
}

// Close performs any necessary cleanup. Nothing to clean up for files.
func (s *Store) Close(_ context.Context) error {
	return nil
}
