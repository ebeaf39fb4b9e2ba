// Package models defines the core domain models for the intake configuration engine.
package models

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

// ValueKind discriminates the payload held by a Value.
type ValueKind string

const (
	KindAbsent    ValueKind = ""
	KindString    ValueKind = "string"
	KindStringSet ValueKind = "string_set"
	KindBool      ValueKind = "bool"
	KindNumber    ValueKind = "number"
)

// Value is the tagged union carried by the session's value map. A field
// declared as a checkbox can only ever hold a Bool payload, a multiselect a
// string set, and so on; FieldDefinition.CheckValue enforces the pairing.
type Value struct {
	kind ValueKind
	str  string
	set  []string
	b    bool
	num  float64
}

func StringValue(s string) Value {
	return Value{kind: KindString, str: s}
}

func StringSetValue(members ...string) Value {
	return Value{kind: KindStringSet, set: slices.Clone(members)}
}

func BoolValue(b bool) Value {
	return Value{kind: KindBool, b: b}
}

func NumberValue(n float64) Value {
	return Value{kind: KindNumber, num: n}
}

func (v Value) Kind() ValueKind {
	return v.kind
}

func (v Value) IsAbsent() bool {
	return v.kind == KindAbsent
}

// IsEmpty reports whether the value counts as "not filled in" for required
// field validation. Booleans and numbers are always considered filled.
func (v Value) IsEmpty() bool {
	switch v.kind {
	case KindAbsent:
		return true
	case KindString:
		return strings.TrimSpace(v.str) == ""
	case KindStringSet:
		return len(v.set) == 0
	default:
		return false
	}
}

func (v Value) AsString() (string, bool) {
	return v.str, v.kind == KindString
}

func (v Value) AsStringSet() ([]string, bool) {
	if v.kind != KindStringSet {
		return nil, false
	}

	return slices.Clone(v.set), true
}

func (v Value) AsBool() (bool, bool) {
	return v.b, v.kind == KindBool
}

func (v Value) AsNumber() (float64, bool) {
	return v.num, v.kind == KindNumber
}

// Equal compares by kind first, payload second. There is no cross-kind
// coercion: BoolValue(true) never equals StringValue("true").
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}

	switch v.kind {
	case KindString:
		return v.str == other.str
	case KindStringSet:
		if len(v.set) != len(other.set) {
			return false
		}

		for _, m := range v.set {
			if !slices.Contains(other.set, m) {
				return false
			}
		}

		return true
	case KindBool:
		return v.b == other.b
	case KindNumber:
		return v.num == other.num
	default:
		return true
	}
}

// Contains reports whether a set value contains the given scalar string
// value. False for any other kind pairing.
func (v Value) Contains(member Value) bool {
	if v.kind != KindStringSet || member.kind != KindString {
		return false
	}

	return slices.Contains(v.set, member.str)
}

// Intersects reports whether two set values share at least one member.
func (v Value) Intersects(other Value) bool {
	if v.kind != KindStringSet || other.kind != KindStringSet {
		return false
	}

	for _, m := range v.set {
		if slices.Contains(other.set, m) {
			return true
		}
	}

	return false
}

// Interface returns the raw payload for serialization into persisted records.
func (v Value) Interface() any {
	switch v.kind {
	case KindString:
		return v.str
	case KindStringSet:
		return slices.Clone(v.set)
	case KindBool:
		return v.b
	case KindNumber:
		return v.num
	default:
		return nil
	}
}

func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Interface())
}

func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	parsed, err := ValueFrom(raw)
	if err != nil {
		return err
	}

	*v = parsed

	return nil
}

// ValueFrom converts a decoded JSON payload into a Value.
func ValueFrom(raw any) (Value, error) {
	switch t := raw.(type) {
	case nil:
		return Value{}, nil
	case string:
		return StringValue(t), nil
	case bool:
		return BoolValue(t), nil
	case float64:
		return NumberValue(t), nil
	case int:
		return NumberValue(float64(t)), nil
	case []string:
		return StringSetValue(t...), nil
	case []any:
		members := make([]string, 0, len(t))

		for _, m := range t {
			s, ok := m.(string)
			if !ok {
				return Value{}, fmt.Errorf("set member must be a string, got %T", m)
			}

			members = append(members, s)
		}

		return StringSetValue(members...), nil
	default:
		return Value{}, fmt.Errorf("unsupported value type %T", raw)
	}
}

// ValueMap is the flat, session-global mapping of field id to value. It is
// owned by the session controller and mutated only through Merge.
type ValueMap map[string]Value

// Merge shallow-merges partial into the map. Keys absent from partial are
// left untouched; colliding keys are overwritten (last write wins).
func (m ValueMap) Merge(partial ValueMap) {
	for id, value := range partial {
		m[id] = value
	}
}

func (m ValueMap) Clone() ValueMap {
	clone := make(ValueMap, len(m))
	for id, value := range m {
		clone[id] = value
	}

	return clone
}

// StringOr returns the string payload for id, or fallback when the key is
// missing, empty or not a string.
func (m ValueMap) StringOr(id, fallback string) string {
	s, ok := m[id].AsString()
	if !ok || strings.TrimSpace(s) == "" {
		return fallback
	}

	return s
}

func (m ValueMap) MarshalJSON() ([]byte, error) {
	raw := make(map[string]any, len(m))
	for id, value := range m {
		raw[id] = value.Interface()
	}

	return json.Marshal(raw)
}

func (m *ValueMap) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	result := make(ValueMap, len(raw))

	for id, rawValue := range raw {
		value, err := ValueFrom(rawValue)
		if err != nil {
			return fmt.Errorf("field %q: %w", id, err)
		}

		result[id] = value
	}

	*m = result

	return nil
}
