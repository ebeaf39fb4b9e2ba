// Package events defines event types for intake lifecycle notifications.
package events

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type EventType string

const Topic = "intake.events"

const EventMetadataKey = "key"
const EventTypeMetadataKey = "event_type"

const (
	IntakeSubmittedEvent EventType = "intake.submitted"
	IntakeFailedEvent    EventType = "intake.failed"
)

type BaseEvent struct {
	ID        string         `json:"id"`
	Type      EventType      `json:"type"`
	Timestamp time.Time      `json:"timestamp"`
	ClientID  string         `json:"client_id"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

func NewBaseEvent(eventType EventType, clientID string) BaseEvent {
	return BaseEvent{
		ID:        uuid.New().String(),
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		ClientID:  clientID,
	}
}

// IntakeSubmitted is published after a submission run finishes, whether or
// not auxiliary writes succeeded. Consumers (CRM sync, notifications) pick
// it up from here.
type IntakeSubmitted struct {
	BaseEvent

	ClientToken     string `json:"client_token"`
	BusinessName    string `json:"business_name"`
	AutomationID    int    `json:"automation_id,omitempty"`
	AutomationTitle string `json:"automation_title,omitempty"`
	WorkflowID      string `json:"workflow_id,omitempty"`
	CampaignCount   int    `json:"campaign_count"`
}

func (e IntakeSubmitted) GetType() EventType {
	return IntakeSubmittedEvent
}

func (e IntakeSubmitted) Validate() error {
	if e.ClientToken == "" {
		return errors.New("intake submitted event requires a client token")
	}

	return nil
}

// IntakeFailed is published when the critical path of a submission fails.
type IntakeFailed struct {
	BaseEvent

	Stage  string `json:"stage"`
	Reason string `json:"reason"`
}

func (e IntakeFailed) GetType() EventType {
	return IntakeFailedEvent
}

func (e IntakeFailed) Validate() error {
	if e.Stage == "" {
		return errors.New("intake failed event requires a stage")
	}

	return nil
}
