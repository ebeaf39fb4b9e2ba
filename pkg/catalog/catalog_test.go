package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadflow/intake/pkg/models"
)

func TestNew_DefaultCatalogIsValid(t *testing.T) {
	c, err := New()
	require.NoError(t, err)

	assert.Len(t, c.Automations(), 13)
	assert.Len(t, c.CampaignSources(), 8)
	assert.NotEmpty(t, c.TriggerOptions())
	assert.NotEmpty(t, c.ActionOptions())
}

func TestAutomationByID(t *testing.T) {
	c := MustNew()

	automation, err := c.AutomationByID(9)
	require.NoError(t, err)
	assert.Equal(t, "תגובה באינסטגרם + הודעה בפרטי", automation.Title)
	assert.Equal(t, models.CategoryMarketing, automation.Category)

	_, err = c.AutomationByID(999)
	assert.ErrorIs(t, err, ErrAutomationNotFound)
}

func TestOptionByID_RoleScoped(t *testing.T) {
	c := MustNew()

	trigger, err := c.OptionByID(models.StepTrigger, "facebook_lead")
	require.NoError(t, err)
	assert.Equal(t, models.StepTrigger, trigger.Role)

	_, err = c.OptionByID(models.StepAction, "facebook_lead")
	assert.ErrorIs(t, err, ErrOptionNotFound)

	action, err := c.OptionByID(models.StepAction, OptionSendMessage)
	require.NoError(t, err)
	assert.Equal(t, "שליחת הודעה", action.Label)
}

func TestKnownSource(t *testing.T) {
	c := MustNew()

	assert.True(t, c.KnownSource("facebook_instagram"))
	assert.True(t, c.KnownSource("other"))
	assert.False(t, c.KnownSource("carrier_pigeon"))
}

func TestValidateStepConfig_RequiredFields(t *testing.T) {
	c := MustNew()

	err := c.ValidateStepConfig(models.StepTrigger, "instagram_comment", map[string]any{
		"trigger_keywords": "שולחת, רוצה",
	})
	require.Error(t, err, "required message fields are missing")

	err = c.ValidateStepConfig(models.StepTrigger, "instagram_comment", map[string]any{
		"trigger_keywords":         "שולחת, רוצה",
		"public_reply":             "שלחנו לך הודעה בפרטי",
		"private_message":          "היי!",
		"invalid_response_message": "לא קיבלנו מספר",
		"success_response_message": "תודה!",
	})
	assert.NoError(t, err)
}

func TestValidateStepConfig_SelectEnum(t *testing.T) {
	c := MustNew()

	assert.NoError(t, c.ValidateStepConfig(models.StepAction, "assign_rep", map[string]any{"rep": "auto"}))
	assert.Error(t, c.ValidateStepConfig(models.StepAction, "assign_rep", map[string]any{"rep": "rep9"}))
}

func TestValidateStepConfig_CronExpression(t *testing.T) {
	c := MustNew()

	assert.NoError(t, c.ValidateStepConfig(models.StepTrigger, OptionSchedule, map[string]any{
		"cron_expression": "0 9 * * 0",
	}))
	assert.Error(t, c.ValidateStepConfig(models.StepTrigger, OptionSchedule, map[string]any{
		"cron_expression": "not a cron spec",
	}))
}

func TestValidateStepConfig_UnknownOption(t *testing.T) {
	c := MustNew()

	err := c.ValidateStepConfig(models.StepAction, "launch_rocket", map[string]any{})
	assert.ErrorIs(t, err, ErrOptionNotFound)
}

func TestCheckFieldGraph_RejectsCycles(t *testing.T) {
	fields := []models.FieldDefinition{
		{ID: "a", Label: "a", Kind: models.FieldText, ShowWhen: &models.Visibility{Field: "b", Value: models.StringValue("x")}},
		{ID: "b", Label: "b", Kind: models.FieldText, ShowWhen: &models.Visibility{Field: "a", Value: models.StringValue("y")}},
	}

	assert.Error(t, checkFieldGraph(fields))
}

func TestCheckFieldGraph_RejectsUndeclaredReference(t *testing.T) {
	fields := []models.FieldDefinition{
		{ID: "a", Label: "a", Kind: models.FieldText, ShowWhen: &models.Visibility{Field: "missing", Value: models.StringValue("x")}},
	}

	assert.Error(t, checkFieldGraph(fields))
}

func TestPrimaryMessageField(t *testing.T) {
	c := MustNew()

	automation, err := c.AutomationByID(1)
	require.NoError(t, err)

	field, ok := automation.PrimaryMessageField()
	require.True(t, ok)
	assert.Equal(t, "facebook_lead_message", field.ID)

	notes, err := c.AutomationByID(13)
	require.NoError(t, err)

	_, ok = notes.PrimaryMessageField()
	assert.False(t, ok, "implementer notes has no AI-assisted message field")
}
