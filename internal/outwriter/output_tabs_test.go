package outwriter

import (
	"bytes"
	"testing"

	"github.com/huangsam/compareview/internal/contract"
	"github.com/huangsam/compareview/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTabs() []schema.TabState {
	return []schema.TabState{
		{Tab: schema.Tab{ID: "overview", Label: "Overview", Icon: "📊"}, Active: true},
		{Tab: schema.Tab{ID: "compare", Label: "Compare"}},
	}
}

func TestWriteTabsText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeTabsText(&buf, sampleTabs(), &contract.Config{}))
	assert.Equal(t, "[📊 Overview]  Compare \n#overview\n", buf.String())
}

func TestWriteTabsCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeTabsCSV(&buf, sampleTabs()))
	assert.Equal(t, "id,label,icon,active\noverview,Overview,📊,true\ncompare,Compare,,false\n", buf.String())
}

func TestWriteFormatsCSV(t *testing.T) {
	examples := []schema.FormatExample{{Kind: schema.CurrencyFormat, Rule: "dollar sign", Input: "1234567", Output: "$1,234,567"}}
	var buf bytes.Buffer
	require.NoError(t, writeFormatsCSV(&buf, examples))
	assert.Equal(t, "format,rule,input,output\ncurrency,dollar sign,1234567,\"$1,234,567\"\n", buf.String())
}

func TestWriteFormatsText(t *testing.T) {
	examples := []schema.FormatExample{{Kind: schema.PercentageFormat, Rule: "raw value with %", Input: "45.5", Output: "45.5%"}}
	var buf bytes.Buffer
	require.NoError(t, writeFormatsText(&buf, examples))
	assert.Contains(t, buf.String(), "45.5%")
}
