package models

import (
	"fmt"
	"time"
)

// StepRole distinguishes trigger nodes from action nodes in the builder.
type StepRole string

const (
	StepTrigger StepRole = "trigger"
	StepAction  StepRole = "action"
)

// WorkflowStep is a user-authored node in the ordered workflow being
// configured. The id is generated at creation time and stays stable for the
// step's lifetime so update/remove can target it.
type WorkflowStep struct {
	ID       string         `json:"id"        validate:"required"`
	Role     StepRole       `json:"role"      validate:"required,oneof=trigger action"`
	OptionID string         `json:"option_id,omitempty"`
	Config   map[string]any `json:"config"`
}

// NewWorkflowStep creates an empty step with a role-prefixed unique id.
func NewWorkflowStep(role StepRole) WorkflowStep {
	return WorkflowStep{
		ID:     fmt.Sprintf("%s_%d", role, time.Now().UnixNano()),
		Role:   role,
		Config: map[string]any{},
	}
}

// Configured reports whether the user has filled in any configuration.
func (s WorkflowStep) Configured() bool {
	return len(s.Config) > 0
}
