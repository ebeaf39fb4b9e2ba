package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/leadflow/intake/pkg/catalog"
	"github.com/leadflow/intake/pkg/models"
	"github.com/leadflow/intake/pkg/submission"
)

// Submitter runs the persistence sequence for a finished session.
type Submitter interface {
	Submit(ctx context.Context, input submission.Input) (*submission.Result, error)
}

// AlertFunc is invoked when the critical path of a submission fails, so a
// hosting surface can show a blocking retry prompt.
type AlertFunc func(ctx context.Context, err error)

// Policy names the navigation rules the controller enforces. Backward jumps
// skip validation when CanNavigateBackFreely is set; forward progression is
// always gated.
type Policy struct {
	CanNavigateBackFreely bool
}

func DefaultPolicy() Policy {
	return Policy{CanNavigateBackFreely: true}
}

// Controller is the single owner of a Session. All reads hand out clones and
// all writes are serialized, so concurrent HTTP handlers can share one
// controller per session token.
type Controller struct {
	catalog   *catalog.Catalog
	submitter Submitter
	policy    Policy
	alert     AlertFunc
	logger    *slog.Logger

	mu      sync.Mutex
	session Session
}

type ControllerOption func(*Controller)

func WithPolicy(policy Policy) ControllerOption {
	return func(c *Controller) { c.policy = policy }
}

func WithAlertFunc(alert AlertFunc) ControllerOption {
	return func(c *Controller) { c.alert = alert }
}

func NewController(cat *catalog.Catalog, submitter Submitter, logger *slog.Logger, opts ...ControllerOption) *Controller {
	controller := &Controller{
		catalog:   cat,
		submitter: submitter,
		policy:    DefaultPolicy(),
		logger:    logger.With("module", "session"),
		session:   NewSession(),
	}

	for _, opt := range opts {
		opt(controller)
	}

	return controller
}

// Snapshot returns a deep copy of the current session.
func (c *Controller) Snapshot() Session {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.session.Clone()
}

// SetStep moves the session to the given index, clamped to the declared step
// range. It performs no validation; forward gating is Next's job.
func (c *Controller) SetStep(index int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.session.CurrentStep = clampStep(index)
}

// Back retreats one step without validating. Backward navigation is free by
// policy; with the policy disabled Back validates the current step first.
func (c *Controller) Back() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session.CurrentStep == StepWelcome {
		return false
	}

	if !c.policy.CanNavigateBackFreely {
		if errs := evaluateStep(c.session.CurrentStep, c.session.Values, c.session.Automation, c.session.Steps); len(errs) > 0 {
			c.session.Errors = errs

			return false
		}
	}

	c.session.CurrentStep--

	return true
}

// Next validates the current step and advances on success. The error map is
// replaced wholesale either way.
func (c *Controller) Next() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	errs := evaluateStep(c.session.CurrentStep, c.session.Values, c.session.Automation, c.session.Steps)
	c.session.Errors = errs

	if len(errs) > 0 {
		return false
	}

	if c.session.CurrentStep < TerminalStep {
		c.session.CurrentStep++
	}

	return true
}

// SelectAutomation sets the chosen automation. Entered values survive the
// switch because field ids are global, and declared defaults are seeded only
// for ids the user has not touched.
func (c *Controller) SelectAutomation(id int) error {
	automation, err := c.catalog.AutomationByID(id)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.session.Automation = automation

	for _, field := range automation.Fields {
		if field.DefaultValue == nil {
			continue
		}

		if _, present := c.session.Values[field.ID]; !present {
			c.session.Values[field.ID] = *field.DefaultValue
		}
	}

	return nil
}

// UpdateValues shallow-merges the partial map into the session values,
// last write wins. Values for fields the selected automation declares are
// checked against the field's kind before anything is merged.
func (c *Controller) UpdateValues(partial models.ValueMap) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session.Automation != nil {
		for id, value := range partial {
			field, declared := c.session.Automation.FieldByID(id)
			if !declared {
				continue
			}

			if err := field.CheckValue(value); err != nil {
				return fmt.Errorf("field %s: %w", id, err)
			}
		}
	}

	c.session.Values.Merge(partial)

	return nil
}

// AddStep appends a new empty step and returns it.
func (c *Controller) AddStep(role models.StepRole) models.WorkflowStep {
	c.mu.Lock()
	defer c.mu.Unlock()

	step := models.NewWorkflowStep(role)
	c.session.Steps = append(c.session.Steps, step)

	return step
}

// UpdateStep replaces the config of the step with the given id, leaving its
// position and every other step untouched.
func (c *Controller) UpdateStep(id string, optionID string, config map[string]any) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.session.Steps {
		if c.session.Steps[i].ID != id {
			continue
		}

		if optionID != "" {
			if _, err := c.catalog.OptionByID(c.session.Steps[i].Role, optionID); err != nil {
				return err
			}

			c.session.Steps[i].OptionID = optionID
		}

		c.session.Steps[i].Config = config

		return nil
	}

	return ErrStepNotFound
}

// RemoveStep deletes the step with the given id, preserving the relative
// order of the remainder.
func (c *Controller) RemoveStep(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	remaining := c.session.Steps[:0]
	found := false

	for _, step := range c.session.Steps {
		if step.ID == id {
			found = true

			continue
		}

		remaining = append(remaining, step)
	}

	if !found {
		return ErrStepNotFound
	}

	c.session.Steps = remaining

	return nil
}

// ValidateStep recomputes the error map for the given step and stores it,
// replacing any previous errors.
func (c *Controller) ValidateStep(index int) (bool, map[string]string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	errs := evaluateStep(index, c.session.Values, c.session.Automation, c.session.Steps)
	c.session.Errors = errs

	return len(errs) == 0, errs
}

// VisibleFields returns the selected automation's fields filtered by their
// visibility predicates against the current values.
func (c *Controller) VisibleFields() []models.FieldDefinition {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session.Automation == nil {
		return nil
	}

	return c.session.Automation.VisibleFields(c.session.Values)
}

// Submit validates the whole flow, runs the persistence sequence and drives
// the idle -> submitting -> complete state machine. A second call while
// submitting is rejected without starting another run. On a critical-path
// failure the state reverts to idle and the alert callback fires.
func (c *Controller) Submit(ctx context.Context) (*submission.Result, error) {
	c.mu.Lock()

	if c.session.State == StateSubmitting {
		c.mu.Unlock()

		return nil, ErrSubmissionInProgress
	}

	errs := c.evaluateForSubmit()
	c.session.Errors = errs

	if len(errs) > 0 {
		c.mu.Unlock()

		return nil, ErrValidationFailed
	}

	c.session.State = StateSubmitting
	input := c.buildInput()
	c.mu.Unlock()

	result, err := c.submitter.Submit(ctx, input)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		c.session.State = StateIdle
		c.logger.ErrorContext(ctx, "Submission failed, session reverted to idle", "error", err)

		if c.alert != nil {
			c.alert(ctx, err)
		}

		return result, err
	}

	c.session.State = StateComplete
	c.session.CurrentStep = TerminalStep

	return result, nil
}

// Reset restores the session to its initial empty state.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.session = NewSession()
}

// evaluateForSubmit merges the gates of every input-bearing step. The
// workflow builder gate applies only when steps were authored; a run with no
// authored steps falls back to the synthesized default step downstream.
func (c *Controller) evaluateForSubmit() map[string]string {
	errs := map[string]string{}

	for _, index := range []int{StepContact, StepCampaigns, StepAutomation} {
		for key, message := range evaluateStep(index, c.session.Values, c.session.Automation, c.session.Steps) {
			errs[key] = message
		}
	}

	if len(c.session.Steps) > 0 {
		for key, message := range evaluateStep(StepWorkflow, c.session.Values, c.session.Automation, c.session.Steps) {
			errs[key] = message
		}
	}

	return errs
}

func (c *Controller) buildInput() submission.Input {
	snapshot := c.session.Clone()

	return submission.Input{
		Contact: submission.Contact{
			FullName:     snapshot.Values.StringOr(FieldFullName, ""),
			Phone:        snapshot.Values.StringOr(FieldPhone, ""),
			Email:        snapshot.Values.StringOr(FieldEmail, ""),
			BusinessName: snapshot.Values.StringOr(FieldBusinessName, ""),
		},
		CampaignSources:    selectedSources(snapshot.Values),
		WebsiteURL:         snapshot.Values.StringOr(FieldWebsite, ""),
		WebsiteCredentials: snapshot.Values.StringOr(FieldWebsiteCreds, ""),
		Automation:         snapshot.Automation,
		Values:             snapshot.Values,
		Steps:              snapshot.Steps,
	}
}

func clampStep(index int) int {
	if index < StepWelcome {
		return StepWelcome
	}

	if index > TerminalStep {
		return TerminalStep
	}

	return index
}
