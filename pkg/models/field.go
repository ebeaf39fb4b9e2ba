package models

import "fmt"

// FieldKind enumerates the input control types an automation field can use.
type FieldKind string

const (
	FieldText        FieldKind = "text"
	FieldTextarea    FieldKind = "textarea"
	FieldSelect      FieldKind = "select"
	FieldMultiSelect FieldKind = "multiselect"
	FieldNumber      FieldKind = "number"
	FieldEmail       FieldKind = "email"
	FieldURL         FieldKind = "url"
	FieldCheckbox    FieldKind = "checkbox"
	FieldRadio       FieldKind = "radio"
	FieldFile        FieldKind = "file"
)

// FieldOption is one selectable (value, label) pair for select/radio fields.
type FieldOption struct {
	Value string `json:"value" validate:"required"`
	Label string `json:"label" validate:"required"`
}

// Visibility is a showWhen predicate: the owning field is rendered only when
// the referenced field's current value matches the expected value. When the
// expected value is a set, matching means set intersection (or membership
// when the current value is a scalar).
type Visibility struct {
	Field string `json:"field" validate:"required"`
	Value Value  `json:"value"`
}

// FieldDefinition describes one input within an automation's schema.
type FieldDefinition struct {
	ID           string        `json:"id"            validate:"required"`
	Label        string        `json:"label"         validate:"required"`
	Kind         FieldKind     `json:"kind"          validate:"required"`
	Placeholder  string        `json:"placeholder,omitempty"`
	Description  string        `json:"description,omitempty"`
	Options      []FieldOption `json:"options,omitempty"`
	DefaultValue *Value        `json:"default_value,omitempty"`
	SupportsAI   bool          `json:"supports_ai,omitempty"`
	Required     bool          `json:"required,omitempty"`
	Accept       string        `json:"accept,omitempty"`
	ShowWhen     *Visibility   `json:"show_when,omitempty"`
}

// ValueKindFor maps a field kind to the value kind it accepts.
func (f FieldDefinition) ValueKindFor() ValueKind {
	switch f.Kind {
	case FieldMultiSelect:
		return KindStringSet
	case FieldCheckbox:
		return KindBool
	case FieldNumber:
		return KindNumber
	default:
		return KindString
	}
}

// CheckValue rejects payloads whose kind does not match the field's declared
// kind, and select/radio payloads outside the declared option values.
func (f FieldDefinition) CheckValue(v Value) error {
	if v.IsAbsent() {
		return nil
	}

	want := f.ValueKindFor()
	if v.Kind() != want {
		return fmt.Errorf("field %q (%s) expects a %s value, got %s", f.ID, f.Kind, want, v.Kind())
	}

	if (f.Kind == FieldSelect || f.Kind == FieldRadio) && len(f.Options) > 0 {
		s, _ := v.AsString()
		if s == "" {
			return nil
		}

		for _, opt := range f.Options {
			if opt.Value == s {
				return nil
			}
		}

		return fmt.Errorf("field %q: %q is not one of the declared options", f.ID, s)
	}

	return nil
}

// ShouldShow evaluates a field's showWhen predicate against the current
// value map. Pure function: same inputs always yield the same answer.
func ShouldShow(field FieldDefinition, values ValueMap) bool {
	if field.ShowWhen == nil {
		return true
	}

	current := values[field.ShowWhen.Field]
	expected := field.ShowWhen.Value

	if expected.Kind() == KindStringSet {
		if current.Kind() == KindStringSet {
			return expected.Intersects(current)
		}

		return expected.Contains(current)
	}

	return current.Equal(expected)
}
