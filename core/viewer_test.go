package core

import (
	"testing"

	"github.com/huangsam/compareview/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var viewerDefs = []schema.MetricDefinition{
	{Key: "revenue", Label: "Revenue", Format: schema.CurrencyFormat},
	{Key: "conversion", Label: "Conversion", Format: schema.PercentageFormat},
	{Key: "status", Label: "Status", Format: schema.TextFormat},
}

func viewerItems(t *testing.T) *ItemSet {
	t.Helper()
	set, err := NewItemSet([]schema.Item{
		{ID: "a", Label: "Alpha", Metrics: map[string]schema.MetricValue{"revenue": schema.Number(1234567), "conversion": schema.Number(12.5), "status": schema.Text("N/A")}},
		{ID: "b", Label: "Beta", Metrics: map[string]schema.MetricValue{"revenue": schema.Number(500), "conversion": schema.Text("pending")}},
		{ID: "c", Label: "Gamma", Metrics: map[string]schema.MetricValue{"revenue": schema.Number(10)}},
		{ID: "d", Label: "Delta"},
	})
	require.NoError(t, err)
	return set
}

func newTestViewer(t *testing.T, opts ...ViewerOption) *Viewer {
	t.Helper()
	v, err := NewViewer(viewerDefs, opts...)
	require.NoError(t, err)
	v.Load(viewerItems(t))
	return v
}

func TestViewerDefaults(t *testing.T) {
	v := newTestViewer(t)
	assert.Equal(t, schema.TableView, v.Mode())
	assert.Equal(t, []string{"a", "b", "c"}, v.Selection().IDs())

	view := v.Render()
	assert.Equal(t, "Compare Items", view.Title)
	assert.Equal(t, "Select up to 6 items to compare", view.Subtitle)
	assert.True(t, view.ShowModeTabs)
	require.Len(t, view.Candidates, 4)
	assert.True(t, view.Candidates[0].Selected)
	assert.False(t, view.Candidates[3].Selected)
}

func TestViewerTable(t *testing.T) {
	v := newTestViewer(t)
	table := v.Render().Table
	require.NotNil(t, table)

	require.Len(t, table.Columns, 3)
	assert.Equal(t, schema.ComparisonPalette.At(1), table.Columns[1].Color)
	require.Len(t, table.Rows, 3)
	assert.Equal(t, []string{"$1,234,567", "$500", "$10"}, table.Rows[0].Cells)
	assert.Equal(t, []string{"12.5%", "pending", ""}, table.Rows[1].Cells)
	assert.Equal(t, []string{"N/A", "", ""}, table.Rows[2].Cells)
}

func TestViewerEmptySelection(t *testing.T) {
	v := newTestViewer(t, WithInitialSelections(0))
	view := v.Render()
	assert.True(t, view.Empty)
	assert.Equal(t, schema.EmptySelectionMessage, view.EmptyMessage)
	assert.False(t, view.ShowModeTabs)
	assert.Nil(t, view.Table)

	empty, err := NewViewer(viewerDefs)
	require.NoError(t, err)
	assert.True(t, empty.Render().Empty, "no candidates loaded yet")
}

func TestViewerChartPanels(t *testing.T) {
	v := newTestViewer(t)
	require.NoError(t, v.SetMode(schema.ChartView))
	view := v.Render()

	assert.Nil(t, view.Table)
	require.Len(t, view.Charts, 2, "status is not numeric for the first item")
	assert.Equal(t, "revenue", view.Charts[0].Key)
	conv := view.Charts[1]
	assert.Equal(t, []schema.DataPoint{{Label: "Alpha", Value: 12.5}, {Label: "Beta", Value: 0}, {Label: "Gamma", Value: 0}}, conv.Points)
	assert.Equal(t, schema.BrandBlue.WithAlpha(0.8), conv.Spec.FillAt(0))
}

func TestViewerRadar(t *testing.T) {
	v := newTestViewer(t)
	require.NoError(t, v.SetMode(schema.RadarView))
	radar := v.Render().Radar
	require.NotNil(t, radar)

	assert.Equal(t, "Overall Performance Comparison", radar.Spec.Title)
	require.Len(t, radar.Scores, 3)
	assert.InDelta(t, (1234567+12.5)/2, radar.Scores[0].Score, 1e-9)
	assert.InDelta(t, 500.0, radar.Scores[1].Score, 0)
}

func TestViewerModeSwitchKeepsSelection(t *testing.T) {
	v := newTestViewer(t)
	v.Toggle("b")
	before := v.Selection().IDs()

	for _, mode := range []schema.ViewMode{schema.ChartView, schema.RadarView, schema.TableView, schema.RadarView} {
		require.NoError(t, v.SetMode(mode))
		assert.Equal(t, before, v.Selection().IDs())
	}
	assert.ErrorIs(t, v.SetMode("pie"), ErrUnknownViewMode)
	assert.Equal(t, schema.RadarView, v.Mode())
}

func TestViewerLoadIdentity(t *testing.T) {
	v, err := NewViewer(viewerDefs)
	require.NoError(t, err)
	set := viewerItems(t)

	assert.True(t, v.Load(set))
	v.Toggle("a")
	assert.Equal(t, []string{"b", "c"}, v.Selection().IDs())

	assert.False(t, v.Load(set), "same set keeps the selection")
	assert.Equal(t, []string{"b", "c"}, v.Selection().IDs())

	assert.True(t, v.Load(viewerItems(t)), "a new set resets it")
	assert.Equal(t, []string{"a", "b", "c"}, v.Selection().IDs())
}

func TestViewerMaxSelections(t *testing.T) {
	v := newTestViewer(t, WithMaxSelections(1))
	assert.Equal(t, []string{"a"}, v.Selection().IDs())
	assert.False(t, v.Toggle("b"))
	assert.Equal(t, "Select up to 1 items to compare", v.Render().Subtitle)
}

func TestViewerSelect(t *testing.T) {
	v := newTestViewer(t)
	v.Select([]string{"d", "a"})
	items := v.SelectedItems()
	require.Len(t, items, 2)
	assert.Equal(t, "Alpha", items[0].Label)
	assert.Equal(t, "Delta", items[1].Label)
}

func TestNewViewerRejectsBadDefinitions(t *testing.T) {
	_, err := NewViewer([]schema.MetricDefinition{{Key: "x", Format: "bytes"}})
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestParseViewMode(t *testing.T) {
	mode, err := ParseViewMode("")
	require.NoError(t, err)
	assert.Equal(t, schema.TableView, mode)
	mode, err = ParseViewMode(" Radar ")
	require.NoError(t, err)
	assert.Equal(t, schema.RadarView, mode)
	_, err = ParseViewMode("grid")
	assert.ErrorIs(t, err, ErrUnknownViewMode)
}
