// Package catalog holds the static intake catalog: the selectable automation
// definitions, the workflow-builder trigger/action option templates, and the
// campaign source list. The catalog is built once at process start and is
// immutable afterwards.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/robfig/cron/v3"
	"github.com/xeipuuv/gojsonschema"

	"github.com/leadflow/intake/pkg/models"
)

var (
	ErrAutomationNotFound = errors.New("automation not found")
	ErrOptionNotFound     = errors.New("step option not found")
)

// StepOption is one trigger or action template selectable in the workflow
// builder. Its sub-fields define the per-step configuration schema.
type StepOption struct {
	ID          string                   `json:"id"`
	Role        models.StepRole          `json:"role"`
	Label       string                   `json:"label"`
	Description string                   `json:"description"`
	Fields      []models.FieldDefinition `json:"fields"`
}

// CampaignSource is one selectable campaign origin on the campaign step.
type CampaignSource struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type Catalog struct {
	automations []models.Automation
	byID        map[int]*models.Automation

	triggerOptions []StepOption
	actionOptions  []StepOption
	optionSchemas  map[string]*gojsonschema.Schema

	sources []CampaignSource
}

// New builds and checks the default catalog. Field ids must be unique per
// automation, every showWhen predicate must reference another declared field,
// and the dependency graph must be acyclic.
func New() (*Catalog, error) {
	c := &Catalog{
		automations:    defaultAutomations(),
		byID:           make(map[int]*models.Automation),
		triggerOptions: defaultTriggerOptions(),
		actionOptions:  defaultActionOptions(),
		optionSchemas:  make(map[string]*gojsonschema.Schema),
		sources:        defaultCampaignSources(),
	}

	validate := validator.New(validator.WithRequiredStructEnabled())

	for i := range c.automations {
		automation := &c.automations[i]

		if err := validate.Struct(automation); err != nil {
			return nil, fmt.Errorf("automation %d: %w", automation.ID, err)
		}

		if _, dup := c.byID[automation.ID]; dup {
			return nil, fmt.Errorf("duplicate automation id %d", automation.ID)
		}

		if err := checkFieldGraph(automation.Fields); err != nil {
			return nil, fmt.Errorf("automation %d (%s): %w", automation.ID, automation.Title, err)
		}

		c.byID[automation.ID] = automation
	}

	for _, option := range append(append([]StepOption{}, c.triggerOptions...), c.actionOptions...) {
		schema, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(configSchemaFor(option)))
		if err != nil {
			return nil, fmt.Errorf("option %s: compiling config schema: %w", option.ID, err)
		}

		c.optionSchemas[option.ID] = schema
	}

	return c, nil
}

// MustNew is New for wiring paths where a broken catalog is a programming
// error.
func MustNew() *Catalog {
	c, err := New()
	if err != nil {
		panic(err)
	}

	return c
}

func (c *Catalog) Automations() []models.Automation {
	return c.automations
}

func (c *Catalog) AutomationByID(id int) (*models.Automation, error) {
	automation, ok := c.byID[id]
	if !ok {
		return nil, fmt.Errorf("automation %d: %w", id, ErrAutomationNotFound)
	}

	return automation, nil
}

func (c *Catalog) TriggerOptions() []StepOption {
	return c.triggerOptions
}

func (c *Catalog) ActionOptions() []StepOption {
	return c.actionOptions
}

func (c *Catalog) OptionByID(role models.StepRole, id string) (StepOption, error) {
	options := c.actionOptions
	if role == models.StepTrigger {
		options = c.triggerOptions
	}

	for _, option := range options {
		if option.ID == id {
			return option, nil
		}
	}

	return StepOption{}, fmt.Errorf("%s option %q: %w", role, id, ErrOptionNotFound)
}

func (c *Catalog) CampaignSources() []CampaignSource {
	return c.sources
}

// KnownSource reports whether value is one of the declared campaign sources.
func (c *Catalog) KnownSource(value string) bool {
	for _, source := range c.sources {
		if source.Value == value {
			return true
		}
	}

	return false
}

// ValidateStepConfig checks a step's field config against the selected
// option's generated JSON Schema. Schedule triggers additionally get their
// cron expression parsed.
func (c *Catalog) ValidateStepConfig(role models.StepRole, optionID string, config map[string]any) error {
	option, err := c.OptionByID(role, optionID)
	if err != nil {
		return err
	}

	schema := c.optionSchemas[option.ID]

	result, err := schema.Validate(gojsonschema.NewGoLoader(config))
	if err != nil {
		return fmt.Errorf("option %s: validating config: %w", option.ID, err)
	}

	if !result.Valid() {
		details := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			details = append(details, desc.String())
		}

		return fmt.Errorf("option %s: invalid config: %s", option.ID, strings.Join(details, "; "))
	}

	if option.ID == OptionSchedule {
		spec, _ := config["cron_expression"].(string)
		if _, err := cron.ParseStandard(spec); err != nil {
			return fmt.Errorf("option %s: invalid cron expression %q: %w", option.ID, spec, err)
		}
	}

	return nil
}

// configSchemaFor derives a JSON Schema from an option's field definitions:
// one property per field, required fields listed, select/radio constrained to
// their option values.
func configSchemaFor(option StepOption) map[string]any {
	properties := make(map[string]any, len(option.Fields))
	required := make([]string, 0)

	for _, field := range option.Fields {
		property := map[string]any{}

		switch field.ValueKindFor() {
		case models.KindStringSet:
			property["type"] = "array"
			property["items"] = map[string]any{"type": "string"}
		case models.KindBool:
			property["type"] = "boolean"
		case models.KindNumber:
			property["type"] = "number"
		default:
			property["type"] = "string"
		}

		if len(field.Options) > 0 && field.Kind != models.FieldMultiSelect {
			enum := make([]any, 0, len(field.Options))
			for _, opt := range field.Options {
				enum = append(enum, opt.Value)
			}

			property["enum"] = enum
		}

		properties[field.ID] = property

		if field.Required {
			required = append(required, field.ID)
		}
	}

	schema := map[string]any{
		"type":       "object",
		"title":      option.Label,
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}

	return schema
}

// checkFieldGraph verifies showWhen references and guards against dependency
// cycles.
func checkFieldGraph(fields []models.FieldDefinition) error {
	dependsOn := make(map[string]string)
	declared := make(map[string]bool, len(fields))

	for _, field := range fields {
		if declared[field.ID] {
			return fmt.Errorf("duplicate field id %q", field.ID)
		}

		declared[field.ID] = true
	}

	for _, field := range fields {
		if field.ShowWhen == nil {
			continue
		}

		if field.ShowWhen.Field == field.ID {
			return fmt.Errorf("field %q: showWhen references itself", field.ID)
		}

		if !declared[field.ShowWhen.Field] {
			return fmt.Errorf("field %q: showWhen references undeclared field %q", field.ID, field.ShowWhen.Field)
		}

		dependsOn[field.ID] = field.ShowWhen.Field
	}

	for start := range dependsOn {
		seen := map[string]bool{start: true}

		for current := dependsOn[start]; current != ""; current = dependsOn[current] {
			if seen[current] {
				return fmt.Errorf("field %q: showWhen dependency cycle", start)
			}

			seen[current] = true
		}
	}

	return nil
}
