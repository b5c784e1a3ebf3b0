package core

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/huangsam/compareview/schema"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter turns metric values into display strings using one locale's
// digit grouping.
type Formatter struct {
	tag     language.Tag
	printer *message.Printer
}

// NewFormatter returns a formatter for the given locale.
func NewFormatter(tag language.Tag) *Formatter {
	return &Formatter{tag: tag, printer: message.NewPrinter(tag)}
}

// ParseLocale resolves a BCP 47 tag such as "en-US" or "de" into a formatter.
func ParseLocale(locale string) (*Formatter, error) {
	if strings.TrimSpace(locale) == "" {
		return defaultFormatter, nil
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	return NewFormatter(tag), nil
}

var defaultFormatter = NewFormatter(language.English)

// DefaultFormatter returns the English formatter used when no locale is configured.
func DefaultFormatter() *Formatter { return defaultFormatter }

// Locale returns the formatter's language tag.
func (f *Formatter) Locale() language.Tag { return f.tag }

// Format renders v under kind. Text values always pass through unchanged,
// missing values render as an empty cell, and unknown kinds fall back to number.
func (f *Formatter) Format(v schema.MetricValue, kind schema.FormatKind) string {
	if v.IsMissing() {
		return ""
	}
	num, ok := v.Float()
	if !ok {
		return v.String()
	}
	switch kind {
	case schema.PercentageFormat:
		return v.String() + "%"
	case schema.CurrencyFormat:
		return "$" + f.Number(num)
	case schema.TimeFormat, schema.TextFormat:
		return v.String()
	default:
		return f.Number(num)
	}
}

// Number renders v with locale digit grouping and at most three fraction digits.
func (f *Formatter) Number(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "0"
	}
	return f.printer.Sprint(number.Decimal(v, number.MaxFractionDigits(3)))
}

// FormatValue formats v under kind with the default formatter.
func FormatValue(v schema.MetricValue, kind schema.FormatKind) string {
	return defaultFormatter.Format(v, kind)
}

// FormatShare renders a percentage with one decimal place, e.g. "30.0%".
func FormatShare(p float64) string {
	if math.IsNaN(p) || math.IsInf(p, 0) {
		p = 0
	}
	return strconv.FormatFloat(p, 'f', 1, 64) + "%"
}

// ParseFormatKind validates a format name. Empty means number.
func ParseFormatKind(s string) (schema.FormatKind, error) {
	if s == "" {
		return schema.NumberFormat, nil
	}
	kind := schema.FormatKind(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := schema.ValidFormatKinds[kind]; !ok {
		return "", fmt.Errorf("%w %q", ErrUnknownFormat, s)
	}
	return kind, nil
}

// ValidateDefinitions rejects duplicate keys and unknown format kinds.
func ValidateDefinitions(defs []schema.MetricDefinition) error {
	seen := make(map[string]struct{}, len(defs))
	for _, d := range defs {
		if strings.TrimSpace(d.Key) == "" {
			return fmt.Errorf("metric definition %q has no key", d.Label)
		}
		if _, ok := seen[d.Key]; ok {
			return fmt.Errorf("%w %q", ErrDuplicateMetric, d.Key)
		}
		seen[d.Key] = struct{}{}
		if _, err := ParseFormatKind(string(d.Format)); err != nil {
			return fmt.Errorf("metric %q: %w", d.Key, err)
		}
	}
	return nil
}

// FormatExamples documents every format kind with a sample conversion through f.
func FormatExamples(f *Formatter) []schema.FormatExample {
	if f == nil {
		f = defaultFormatter
	}
	samples := []struct {
		kind  schema.FormatKind
		rule  string
		value schema.MetricValue
	}{
		{schema.NumberFormat, "locale digit grouping, up to 3 decimals", schema.Number(1234567.891)},
		{schema.PercentageFormat, "raw value followed by %", schema.Number(45.5)},
		{schema.CurrencyFormat, "$ followed by the grouped number", schema.Number(1234567)},
		{schema.TimeFormat, "raw value unchanged", schema.Text("2m 30s")},
		{schema.TextFormat, "raw value unchanged", schema.Text("N/A")},
	}
	out := make([]schema.FormatExample, len(samples))
	for i, s := range samples {
		out[i] = schema.FormatExample{
			Kind:   s.kind,
			Rule:   s.rule,
			Input:  s.value.String(),
			Output: f.Format(s.value, s.kind),
		}
	}
	return out
}
