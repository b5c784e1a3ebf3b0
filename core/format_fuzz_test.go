package core

import (
	"strings"
	"testing"

	"github.com/huangsam/compareview/schema"
)

// FuzzFormatText checks that text values are never altered by any format kind.
func FuzzFormatText(f *testing.F) {
	for _, seed := range []string{"N/A", "", "1,234", "$5", "45%"} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, s string) {
		for _, kind := range schema.AllFormatKinds {
			if got := FormatValue(schema.Text(s), kind); got != s {
				t.Fatalf("kind %s changed %q to %q", kind, s, got)
			}
		}
	})
}

// FuzzFormatCurrency checks that currency output is the number output with a dollar sign.
func FuzzFormatCurrency(f *testing.F) {
	for _, seed := range []float64{0, 1234567, -42.5, 0.0001} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, v float64) {
		got := FormatValue(schema.Number(v), schema.CurrencyFormat)
		if !strings.HasPrefix(got, "$") {
			t.Fatalf("currency %v rendered as %q", v, got)
		}
		if got[1:] != DefaultFormatter().Number(v) {
			t.Fatalf("currency %q does not wrap number %q", got, DefaultFormatter().Number(v))
		}
	})
}
