package models

import "time"

// Persisted record shapes handed to the intake store at submission time.
// The store assigns ID and CreatedAt on insert.

type ClientStatus string

const (
	ClientStatusActive  ClientStatus = "active"
	ClientStatusPending ClientStatus = "pending"
)

// ClientRecord is the record of truth created first during submission; every
// other record references its generated id.
type ClientRecord struct {
	ID           string       `json:"id"`
	ClientToken  string       `json:"client_token"  validate:"required"` // locally generated, known before the store id
	BusinessName string       `json:"business_name" validate:"required"`
	ContactName  string       `json:"contact_name"  validate:"required"`
	Email        string       `json:"email"         validate:"omitempty,email"`
	Phone        string       `json:"phone"`
	WebsiteURL   string       `json:"website_url,omitempty"`
	Status       ClientStatus `json:"status"`
	CreatedAt    time.Time    `json:"created_at"`
}

// CampaignRecord is one per-source campaign row, written best-effort.
type CampaignRecord struct {
	ID           string         `json:"id"`
	ClientID     string         `json:"client_id"     validate:"required"`
	CampaignType string         `json:"campaign_type" validate:"required"`
	Name         string         `json:"name"          validate:"required"`
	Settings     map[string]any `json:"settings,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
}

// CampaignSummaryRecord aggregates all recognized campaign sources as boolean
// flags, with unrecognized source names collected into Other. Auxiliary
// telemetry, never on the critical path.
type CampaignSummaryRecord struct {
	ID        string          `json:"id"`
	ClientID  string          `json:"client_id"`
	Flags     map[string]bool `json:"flags"`
	Other     []string        `json:"other,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// WorkflowRecord names the configured workflow and its trigger metadata.
type WorkflowRecord struct {
	ID            string         `json:"id"`
	ClientID      string         `json:"client_id"    validate:"required"`
	Name          string         `json:"name"         validate:"required"`
	TriggerType   string         `json:"trigger_type"`
	TriggerConfig map[string]any `json:"trigger_config,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
}

// WorkflowDetailRecord is the denormalized projection of a submitted
// automation: metadata plus an allow-listed snapshot of the per-automation
// form inputs. Auxiliary, not the record of truth.
type WorkflowDetailRecord struct {
	ID                 string         `json:"id"`
	ClientID           string         `json:"client_id"`
	WorkflowID         string         `json:"workflow_id"`
	AutomationID       int            `json:"automation_id"`
	AutomationTitle    string         `json:"automation_title"`
	AutomationCategory Category       `json:"automation_category"`
	ActionType         string         `json:"action_type"`
	MessageContent     string         `json:"message_content,omitempty"`
	TriggerType        string         `json:"trigger_type"`
	ScheduleSpec       string         `json:"schedule_spec,omitempty"`
	FormInputs         map[string]any `json:"form_inputs"`
	CreatedAt          time.Time      `json:"created_at"`
}

// WorkflowStepRecord is one ordered trigger/action node tied to a workflow.
type WorkflowStepRecord struct {
	ID           string         `json:"id"`
	WorkflowID   string         `json:"workflow_id" validate:"required"`
	StepOrder    int            `json:"step_order"`
	ActionType   string         `json:"action_type" validate:"required"`
	ActionConfig map[string]any `json:"action_config,omitempty"`
	IsActive     bool           `json:"is_active"`
	CreatedAt    time.Time      `json:"created_at"`
}
