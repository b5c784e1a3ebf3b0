// Package schema has models, constants and wire shapes for all parts of compareview.
package schema

import (
	"fmt"
	"strconv"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// valueKind tags which half of a MetricValue is populated.
type valueKind uint8

const (
	missingValue valueKind = iota
	numberValue
	textValue
)

// MetricValue is a metric cell: a number, a piece of text, or missing.
// The zero value is missing.
type MetricValue struct {
	kind valueKind
	num  float64
	text string
}

// Number returns a numeric metric value.
func Number(v float64) MetricValue {
	return MetricValue{kind: numberValue, num: v}
}

// Text returns a textual metric value.
func Text(s string) MetricValue {
	return MetricValue{kind: textValue, text: s}
}

// IsNumber reports whether the value is numeric.
func (v MetricValue) IsNumber() bool { return v.kind == numberValue }

// IsText reports whether the value is textual.
func (v MetricValue) IsText() bool { return v.kind == textValue }

// IsMissing reports whether no value was provided.
func (v MetricValue) IsMissing() bool { return v.kind == missingValue }

// Float returns the numeric value, or false when the value is not a number.
func (v MetricValue) Float() (float64, bool) {
	return v.num, v.kind == numberValue
}

// String returns the raw representation without any display rule applied.
func (v MetricValue) String() string {
	switch v.kind {
	case numberValue:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case textValue:
		return v.text
	default:
		return ""
	}
}

// MarshalJSON encodes numbers as JSON numbers, text as strings and missing as null.
func (v MetricValue) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case numberValue:
		return json.Marshal(v.num)
	case textValue:
		return json.Marshal(v.text)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON accepts a JSON number, string or null.
func (v *MetricValue) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("invalid metric value %s: %w", string(data), err)
	}
	switch t := raw.(type) {
	case nil:
		*v = MetricValue{}
	case float64:
		*v = Number(t)
	case string:
		*v = Text(t)
	default:
		return fmt.Errorf("metric value must be a number or string, got %s", string(data))
	}
	return nil
}

// MarshalYAML encodes the value as a YAML scalar.
func (v MetricValue) MarshalYAML() (any, error) {
	switch v.kind {
	case numberValue:
		return v.num, nil
	case textValue:
		return v.text, nil
	default:
		return nil, nil
	}
}

// UnmarshalYAML treats !!int and !!float scalars as numbers and everything else as text.
func (v *MetricValue) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: metric value must be a scalar", node.Line)
	}
	switch node.ShortTag() {
	case "!!null":
		*v = MetricValue{}
	case "!!int", "!!float":
		f, err := strconv.ParseFloat(node.Value, 64)
		if err != nil {
			return fmt.Errorf("line %d: invalid number %q: %w", node.Line, node.Value, err)
		}
		*v = Number(f)
	default:
		*v = Text(node.Value)
	}
	return nil
}

// Item is one comparable entity. Identity is ID, which must carry no
// surrounding whitespace. An empty Label displays as the ID.
type Item struct {
	ID      string                 `json:"id" yaml:"id"`
	Label   string                 `json:"label" yaml:"label"`
	Metrics map[string]MetricValue `json:"metrics" yaml:"metrics"`
}

// Metric returns the value stored under key, missing when absent.
func (i Item) Metric(key string) MetricValue {
	return i.Metrics[key]
}

// MetricDefinition declares how one metric key is labelled and displayed.
type MetricDefinition struct {
	Key    string     `json:"key" yaml:"key"`
	Label  string     `json:"label" yaml:"label"`
	Format FormatKind `json:"format,omitempty" yaml:"format,omitempty"`
}

// FormatOrDefault returns the declared format, defaulting to number.
func (d MetricDefinition) FormatOrDefault() FormatKind {
	if d.Format == "" {
		return NumberFormat
	}
	return d.Format
}
