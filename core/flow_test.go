package core

import (
	"testing"

	"github.com/huangsam/compareview/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathExploration(t *testing.T) {
	steps := []schema.PathStep{
		{Step: 1, TopPages: []schema.PageVisit{{Path: "/home", Users: 400}, {Path: "/pricing", Users: 100}}},
		{Step: 2, TopPages: []schema.PageVisit{{Path: "/contact", Users: 200}, {Path: "5 More", Users: 50}}},
	}
	view := PathExploration(steps, "/thank-you", 1200, nil)

	assert.Equal(t, "Path to Form Submission", view.Title)
	assert.Equal(t, "User journey leading to 1,200 form submissions", view.Subtitle)
	assert.InDelta(t, 400.0, view.MaxUsers, 0)
	require.Len(t, view.Steps, 2)
	assert.InDelta(t, 100.0, view.Steps[0].Pages[0].WidthPercent, 0)
	assert.InDelta(t, 50.0, view.Steps[1].Pages[0].WidthPercent, 0, "widths use the peak across every step")
	assert.False(t, view.Steps[1].Pages[0].Highlight)
	assert.True(t, view.Steps[1].Pages[1].Highlight)
	assert.Equal(t, "/thank-you", view.EndingPoint)
}

func TestPathExplorationNoUsers(t *testing.T) {
	view := PathExploration([]schema.PathStep{{Step: 1, TopPages: []schema.PageVisit{{Path: "/", Users: 0}}}}, "", 0, nil)
	assert.InDelta(t, 0.0, view.Steps[0].Pages[0].WidthPercent, 0)
}

func TestSankeyFlow(t *testing.T) {
	view := SankeyFlow([]schema.FlowLink{
		{From: "Google", To: "/home", Users: 300},
		{From: "Direct", To: "/home", Users: 100},
	}, "Traffic Flow")

	assert.Equal(t, "Traffic Flow", view.Title)
	require.Len(t, view.Bars, 2)
	assert.InDelta(t, 100.0, view.Bars[0].WidthPercent, 0)
	assert.InDelta(t, 100.0/3, view.Bars[1].WidthPercent, 1e-9)
	assert.InDelta(t, 75.0, view.Bars[0].Share, 0)
	assert.InDelta(t, 25.0, view.Bars[1].Share, 0)
}

func TestUserJourney(t *testing.T) {
	paths := []schema.DataPoint{{Label: "Home → Contact", Value: 250}, {Label: "Blog → Contact", Value: 125}}
	view := UserJourney(paths, 1000, nil)

	assert.Equal(t, "Top conversion paths • 1,000 total users", view.Subtitle)
	require.Len(t, view.Rows, 2)
	assert.InDelta(t, 25.0, view.Rows[0].Share, 0)
	assert.InDelta(t, 12.5, view.Rows[1].Share, 0)
	assert.Equal(t, schema.JourneyPalette.At(1), view.Rows[1].Color)
	assert.Equal(t, schema.DoughnutChart, view.Chart.Kind)
}

func TestUserJourneyZeroTotal(t *testing.T) {
	view := UserJourney([]schema.DataPoint{{Label: "A", Value: 5}}, 0, nil)
	assert.InDelta(t, 0.0, view.Rows[0].Share, 0)
}
