package models

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShouldShow_NoPredicateAlwaysVisible(t *testing.T) {
	field := FieldDefinition{ID: "deal_closed_message", Label: "message", Kind: FieldTextarea}

	assert.True(t, ShouldShow(field, ValueMap{}))
	assert.True(t, ShouldShow(field, ValueMap{"anything": BoolValue(false)}))
}

func TestShouldShow_ScalarEquality(t *testing.T) {
	field := FieldDefinition{
		ID:       "signed_quote_message",
		Label:    "message",
		Kind:     FieldTextarea,
		ShowWhen: &Visibility{Field: "enable_price_quote_tracking", Value: StringValue("yes")},
	}

	assert.True(t, ShouldShow(field, ValueMap{"enable_price_quote_tracking": StringValue("yes")}))
	assert.False(t, ShouldShow(field, ValueMap{"enable_price_quote_tracking": StringValue("no")}))
	assert.False(t, ShouldShow(field, ValueMap{}), "missing dependency hides the field")
}

func TestShouldShow_BooleanEqualityIsStrict(t *testing.T) {
	field := FieldDefinition{
		ID:       "facebook_lead_message",
		Label:    "message",
		Kind:     FieldTextarea,
		ShowWhen: &Visibility{Field: "enable_facebook_automation", Value: BoolValue(true)},
	}

	assert.True(t, ShouldShow(field, ValueMap{"enable_facebook_automation": BoolValue(true)}))
	assert.False(t, ShouldShow(field, ValueMap{"enable_facebook_automation": BoolValue(false)}))
	assert.False(t, ShouldShow(field, ValueMap{"enable_facebook_automation": StringValue("true")}),
		"string payloads never match boolean expectations")
}

func TestShouldShow_SetIntersection(t *testing.T) {
	field := FieldDefinition{
		ID:       "campaign_details",
		Label:    "details",
		Kind:     FieldText,
		ShowWhen: &Visibility{Field: "campaigns", Value: StringSetValue("a", "b")},
	}

	assert.True(t, ShouldShow(field, ValueMap{"campaigns": StringSetValue("b", "c")}))
	assert.False(t, ShouldShow(field, ValueMap{"campaigns": StringSetValue("c", "d")}))
}

func TestShouldShow_SetMembershipForScalarCurrent(t *testing.T) {
	field := FieldDefinition{
		ID:       "campaign_details",
		Label:    "details",
		Kind:     FieldText,
		ShowWhen: &Visibility{Field: "campaigns", Value: StringSetValue("a", "b")},
	}

	assert.True(t, ShouldShow(field, ValueMap{"campaigns": StringValue("a")}))
	assert.False(t, ShouldShow(field, ValueMap{"campaigns": StringValue("c")}))
}

func TestShouldShow_Idempotent(t *testing.T) {
	field := FieldDefinition{
		ID:       "instagram_public_reply",
		Label:    "reply",
		Kind:     FieldTextarea,
		ShowWhen: &Visibility{Field: "enable_instagram_automation", Value: BoolValue(true)},
	}
	values := ValueMap{"enable_instagram_automation": BoolValue(true)}

	first := ShouldShow(field, values)
	second := ShouldShow(field, values)

	assert.Equal(t, first, second)
	assert.True(t, first)
}

func TestFieldDefinition_CheckValue_KindMismatch(t *testing.T) {
	checkbox := FieldDefinition{ID: "enable_ai_scheduling", Label: "ai", Kind: FieldCheckbox}

	assert.NoError(t, checkbox.CheckValue(BoolValue(true)))
	assert.NoError(t, checkbox.CheckValue(Value{}), "absent values pass through")

	err := checkbox.CheckValue(StringValue("true"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "enable_ai_scheduling")
}

func TestFieldDefinition_CheckValue_SelectOptions(t *testing.T) {
	radio := FieldDefinition{
		ID:    "enable_auto_dialer",
		Label: "dialer",
		Kind:  FieldRadio,
		Options: []FieldOption{
			{Value: "yes", Label: "כן"},
			{Value: "no", Label: "לא"},
		},
	}

	assert.NoError(t, radio.CheckValue(StringValue("yes")))
	assert.Error(t, radio.CheckValue(StringValue("maybe")))
}

func TestFieldDefinition_CheckValue_MultiSelect(t *testing.T) {
	multi := FieldDefinition{ID: "active_campaigns", Label: "campaigns", Kind: FieldMultiSelect}

	assert.NoError(t, multi.CheckValue(StringSetValue("tiktok")))
	assert.Error(t, multi.CheckValue(StringValue("tiktok")))
}

func TestAutomation_Validation(t *testing.T) {
	automation := &Automation{
		ID:          1,
		Title:       "אוטומציית ליד מפייסבוק",
		Description: "אוטומציה להפעלה כאשר ליד נכנס מפייסבוק",
		Category:    CategoryLeads,
		Icon:        "facebook",
		Fields: []FieldDefinition{
			{ID: "enable_facebook_automation", Label: "enable", Kind: FieldCheckbox},
		},
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	assert.NoError(t, validate.Struct(automation))

	automation.Category = "billing"
	assert.Error(t, validate.Struct(automation))
}

func TestAutomation_VisibleFields(t *testing.T) {
	automation := &Automation{
		ID:          1,
		Title:       "t",
		Description: "d",
		Category:    CategoryLeads,
		Fields: []FieldDefinition{
			{ID: "enable_facebook_automation", Label: "enable", Kind: FieldCheckbox},
			{
				ID:       "facebook_lead_message",
				Label:    "message",
				Kind:     FieldTextarea,
				ShowWhen: &Visibility{Field: "enable_facebook_automation", Value: BoolValue(true)},
			},
		},
	}

	hidden := automation.VisibleFields(ValueMap{})
	require.Len(t, hidden, 1)
	assert.Equal(t, "enable_facebook_automation", hidden[0].ID)

	shown := automation.VisibleFields(ValueMap{"enable_facebook_automation": BoolValue(true)})
	require.Len(t, shown, 2)
	assert.Equal(t, "facebook_lead_message", shown[1].ID, "schema order is preserved")
}
