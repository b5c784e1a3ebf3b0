package core

import (
	"math"
	"testing"

	"github.com/huangsam/compareview/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatterFormat(t *testing.T) {
	tests := []struct {
		name  string
		value schema.MetricValue
		kind  schema.FormatKind
		want  string
	}{
		{"currency groups digits", schema.Number(1234567), schema.CurrencyFormat, "$1,234,567"},
		{"number groups digits", schema.Number(1234567.891), schema.NumberFormat, "1,234,567.891"},
		{"number trims fraction", schema.Number(2.5), schema.NumberFormat, "2.5"},
		{"percentage appends sign", schema.Number(45.5), schema.PercentageFormat, "45.5%"},
		{"time is raw", schema.Number(150), schema.TimeFormat, "150"},
		{"text is raw", schema.Number(1234), schema.TextFormat, "1234"},
		{"text value passes through", schema.Text("N/A"), schema.CurrencyFormat, "N/A"},
		{"missing is blank", schema.MetricValue{}, schema.NumberFormat, ""},
		{"unknown kind falls back", schema.Number(1000), schema.FormatKind("weird"), "1,000"},
		{"default kind", schema.Number(1000), "", "1,000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatValue(tt.value, tt.kind))
		})
	}
}

func TestFormatterLocale(t *testing.T) {
	f, err := ParseLocale("de")
	require.NoError(t, err)
	assert.Equal(t, "1.234.567", f.Number(1234567))
	assert.Equal(t, "de", f.Locale().String())

	_, err = ParseLocale("not a locale!")
	assert.Error(t, err)

	def, err := ParseLocale("")
	require.NoError(t, err)
	assert.Same(t, DefaultFormatter(), def)
}

func TestNumberNonFinite(t *testing.T) {
	assert.Equal(t, "0", DefaultFormatter().Number(math.NaN()))
	assert.Equal(t, "0", DefaultFormatter().Number(math.Inf(1)))
}

func TestFormatShare(t *testing.T) {
	assert.Equal(t, "30.0%", FormatShare(30))
	assert.Equal(t, "0.0%", FormatShare(math.NaN()))
}

func TestParseFormatKind(t *testing.T) {
	kind, err := ParseFormatKind(" Currency ")
	require.NoError(t, err)
	assert.Equal(t, schema.CurrencyFormat, kind)

	kind, err = ParseFormatKind("")
	require.NoError(t, err)
	assert.Equal(t, schema.NumberFormat, kind)

	_, err = ParseFormatKind("bytes")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestValidateDefinitions(t *testing.T) {
	tests := []struct {
		name    string
		defs    []schema.MetricDefinition
		wantErr error
	}{
		{"valid", []schema.MetricDefinition{{Key: "a"}, {Key: "b", Format: schema.TimeFormat}}, nil},
		{"duplicate", []schema.MetricDefinition{{Key: "a"}, {Key: "a"}}, ErrDuplicateMetric},
		{"unknown format", []schema.MetricDefinition{{Key: "a", Format: "bytes"}}, ErrUnknownFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDefinitions(tt.defs)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
	assert.Error(t, ValidateDefinitions([]schema.MetricDefinition{{Label: "No key"}}))
}

func TestFormatExamples(t *testing.T) {
	examples := FormatExamples(nil)
	require.Len(t, examples, len(schema.AllFormatKinds))
	byKind := map[schema.FormatKind]string{}
	for _, e := range examples {
		byKind[e.Kind] = e.Output
	}
	assert.Equal(t, "$1,234,567", byKind[schema.CurrencyFormat])
	assert.Equal(t, "45.5%", byKind[schema.PercentageFormat])
	assert.Equal(t, "N/A", byKind[schema.TextFormat])
}
