package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue_Equal_StrictKinds(t *testing.T) {
	assert.True(t, StringValue("yes").Equal(StringValue("yes")))
	assert.True(t, BoolValue(true).Equal(BoolValue(true)))
	assert.False(t, BoolValue(true).Equal(StringValue("true")))
	assert.False(t, StringValue("1").Equal(NumberValue(1)))
	assert.False(t, BoolValue(false).Equal(Value{}))
}

func TestValue_Equal_SetsIgnoreOrder(t *testing.T) {
	a := StringSetValue("facebook_instagram", "tiktok")
	b := StringSetValue("tiktok", "facebook_instagram")

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(StringSetValue("tiktok")))
}

func TestValue_Intersects(t *testing.T) {
	assert.True(t, StringSetValue("a", "b").Intersects(StringSetValue("b", "c")))
	assert.False(t, StringSetValue("a", "b").Intersects(StringSetValue("c", "d")))
	assert.False(t, StringSetValue("a").Intersects(StringValue("a")))
}

func TestValue_IsEmpty(t *testing.T) {
	assert.True(t, Value{}.IsEmpty())
	assert.True(t, StringValue("   ").IsEmpty())
	assert.True(t, StringSetValue().IsEmpty())
	assert.False(t, StringValue("Acme").IsEmpty())
	assert.False(t, BoolValue(false).IsEmpty())
	assert.False(t, NumberValue(0).IsEmpty())
}

func TestValueMap_Merge_KeepsUnmentionedKeys(t *testing.T) {
	values := ValueMap{}

	values.Merge(ValueMap{"x": NumberValue(1)})
	values.Merge(ValueMap{"y": NumberValue(2)})

	assert.True(t, values["x"].Equal(NumberValue(1)))
	assert.True(t, values["y"].Equal(NumberValue(2)))

	values.Merge(ValueMap{"x": NumberValue(3)})

	assert.True(t, values["x"].Equal(NumberValue(3)))
	assert.True(t, values["y"].Equal(NumberValue(2)), "merge must not drop keys absent from the partial")
}

func TestValueMap_UnmarshalJSON_MixedPayloads(t *testing.T) {
	raw := `{
		"fullName": "דנה לוי",
		"active_campaigns": ["facebook_instagram", "tiktok"],
		"enable_facebook_automation": true,
		"budget": 1500
	}`

	var values ValueMap

	require.NoError(t, json.Unmarshal([]byte(raw), &values))

	name, ok := values["fullName"].AsString()
	require.True(t, ok)
	assert.Equal(t, "דנה לוי", name)

	sources, ok := values["active_campaigns"].AsStringSet()
	require.True(t, ok)
	assert.Equal(t, []string{"facebook_instagram", "tiktok"}, sources)

	enabled, ok := values["enable_facebook_automation"].AsBool()
	require.True(t, ok)
	assert.True(t, enabled)

	budget, ok := values["budget"].AsNumber()
	require.True(t, ok)
	assert.InDelta(t, 1500, budget, 0.001)
}

func TestValueMap_StringOr(t *testing.T) {
	values := ValueMap{
		"businessName": StringValue("Acme"),
		"blank":        StringValue("  "),
	}

	assert.Equal(t, "Acme", values.StringOr("businessName", "Unknown Business"))
	assert.Equal(t, "Unknown Business", values.StringOr("blank", "Unknown Business"))
	assert.Equal(t, "Unknown Business", values.StringOr("missing", "Unknown Business"))
}
