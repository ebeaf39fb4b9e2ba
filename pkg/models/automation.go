package models

// Category groups automations in the selection step.
type Category string

const (
	CategoryLeads      Category = "leads"
	CategorySales      Category = "sales"
	CategoryClients    Category = "clients"
	CategoryMarketing  Category = "marketing"
	CategoryMeetings   Category = "meetings"
	CategoryCallCenter Category = "call_center"
	CategoryGeneral    Category = "general"
)

// Automation is one selectable template describing a marketing scenario and
// the fields the user must configure for it. The catalog is defined once at
// process start and never mutated.
type Automation struct {
	ID          int               `json:"id"          validate:"required"`
	Title       string            `json:"title"       validate:"required"`
	Description string            `json:"description" validate:"required"`
	Category    Category          `json:"category"    validate:"required,oneof=leads sales clients marketing meetings call_center general"`
	Icon        string            `json:"icon"`
	Fields      []FieldDefinition `json:"fields"      validate:"dive"`
}

// FieldByID returns the field definition with the given id, if present.
func (a *Automation) FieldByID(id string) (FieldDefinition, bool) {
	for _, field := range a.Fields {
		if field.ID == id {
			return field, true
		}
	}

	return FieldDefinition{}, false
}

// FieldIDs returns the ids of all declared fields in schema order.
func (a *Automation) FieldIDs() []string {
	ids := make([]string, 0, len(a.Fields))
	for _, field := range a.Fields {
		ids = append(ids, field.ID)
	}

	return ids
}

// PrimaryMessageField returns the automation's main outgoing-message field:
// the first AI-assisted textarea in schema order. Its placeholder doubles as
// the default message content when the user leaves it blank.
func (a *Automation) PrimaryMessageField() (FieldDefinition, bool) {
	for _, field := range a.Fields {
		if field.Kind == FieldTextarea && field.SupportsAI {
			return field, true
		}
	}

	return FieldDefinition{}, false
}

// VisibleFields returns the automation's fields in schema order, filtered by
// their showWhen predicates against the current value map.
func (a *Automation) VisibleFields(values ValueMap) []FieldDefinition {
	visible := make([]FieldDefinition, 0, len(a.Fields))

	for _, field := range a.Fields {
		if ShouldShow(field, values) {
			visible = append(visible, field)
		}
	}

	return visible
}
