// Package session owns the mutable state of one intake form run: the current
// step, the collected values, the chosen automation and the authored workflow
// steps. All mutation goes through the Controller.
package session

import (
	"errors"

	"github.com/leadflow/intake/pkg/models"
)

// SubmissionState tracks where the session is in its submit lifecycle.
type SubmissionState string

const (
	StateIdle       SubmissionState = "idle"
	StateSubmitting SubmissionState = "submitting"
	StateComplete   SubmissionState = "complete"
)

// Step indices of the intake flow. The welcome step carries no inputs and is
// never validated.
const (
	StepWelcome = iota
	StepContact
	StepCampaigns
	StepAutomation
	StepWorkflow

	TerminalStep = StepWorkflow
)

// Field and error-map keys used by the fixed steps of the flow.
const (
	FieldFullName        = "fullName"
	FieldPhone           = "phone"
	FieldEmail           = "email"
	FieldBusinessName    = "businessName"
	FieldWebsite         = "website"
	FieldWebsiteCreds    = "websiteCredentials"
	FieldActiveCampaigns = "active_campaigns"

	ErrorKeyAutomation = "automation"
	ErrorKeySteps      = "steps"
)

var (
	ErrStepNotFound         = errors.New("workflow step not found")
	ErrSubmissionInProgress = errors.New("submission already in progress")
	ErrValidationFailed     = errors.New("session validation failed")
)

// Session is the aggregate state of one form run. Errors is replaced
// wholesale on every validation pass, never merged.
type Session struct {
	CurrentStep int                   `json:"current_step"`
	Automation  *models.Automation    `json:"automation,omitempty"`
	Values      models.ValueMap       `json:"values"`
	Steps       []models.WorkflowStep `json:"steps"`
	Errors      map[string]string     `json:"errors"`
	State       SubmissionState       `json:"state"`
}

// NewSession returns an empty session positioned at the welcome step.
func NewSession() Session {
	return Session{
		CurrentStep: StepWelcome,
		Values:      models.ValueMap{},
		Steps:       []models.WorkflowStep{},
		Errors:      map[string]string{},
		State:       StateIdle,
	}
}

// Clone deep-copies the session so callers can inspect a snapshot without
// holding the controller's lock.
func (s Session) Clone() Session {
	clone := s
	clone.Values = s.Values.Clone()

	clone.Steps = make([]models.WorkflowStep, len(s.Steps))
	for i, step := range s.Steps {
		clone.Steps[i] = step
		clone.Steps[i].Config = make(map[string]any, len(step.Config))

		for k, v := range step.Config {
			clone.Steps[i].Config[k] = v
		}
	}

	clone.Errors = make(map[string]string, len(s.Errors))
	for k, v := range s.Errors {
		clone.Errors[k] = v
	}

	return clone
}
