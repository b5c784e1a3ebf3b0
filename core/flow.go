package core

import (
	"fmt"
	"strings"

	"github.com/huangsam/compareview/schema"
)

// highlightMarker flags aggregation buckets like "3 More" in the path timeline.
const highlightMarker = "More"

// PathExploration lays out the step timeline leading to a conversion. Bar
// widths are relative to the busiest page across every step.
func PathExploration(steps []schema.PathStep, endingPoint string, totalConversions float64, f *Formatter) schema.PathExplorationView {
	if f == nil {
		f = defaultFormatter
	}
	var peak float64
	for _, s := range steps {
		for _, p := range s.TopPages {
			peak = max(peak, p.Users)
		}
	}

	view := schema.PathExplorationView{
		Title:            "Path to Form Submission",
		Subtitle:         fmt.Sprintf("User journey leading to %s form submissions", f.Number(totalConversions)),
		Steps:            make([]schema.PathColumn, len(steps)),
		EndingPoint:      endingPoint,
		TotalConversions: totalConversions,
		MaxUsers:         peak,
	}
	for i, s := range steps {
		col := schema.PathColumn{Step: s.Step, Pages: make([]schema.PageBar, len(s.TopPages))}
		for j, p := range s.TopPages {
			var width float64
			if peak > 0 {
				width = p.Users / peak * 100
			}
			col.Pages[j] = schema.PageBar{
				Path:         p.Path,
				Users:        p.Users,
				WidthPercent: width,
				Highlight:    strings.Contains(p.Path, highlightMarker),
			}
		}
		view.Steps[i] = col
	}
	return view
}

// SankeyFlow turns flow links into bars scaled to the largest link, each with
// its share of all flow users.
func SankeyFlow(links []schema.FlowLink, title string) schema.SankeyView {
	values := make([]float64, len(links))
	for i, l := range links {
		values[i] = l.Users
	}
	widths := WidthsOfMax(values)
	shares := Shares(values)

	view := schema.SankeyView{Title: title, Bars: make([]schema.FlowBar, len(links))}
	for i, l := range links {
		view.Bars[i] = schema.FlowBar{
			From:         l.From,
			To:           l.To,
			Users:        l.Users,
			WidthPercent: widths[i],
			Share:        shares[i],
		}
	}
	return view
}

// UserJourney renders the journey legend against totalUsers plus a doughnut
// of the same paths.
func UserJourney(paths []schema.DataPoint, totalUsers float64, f *Formatter) schema.JourneyView {
	if f == nil {
		f = defaultFormatter
	}
	view := schema.JourneyView{
		Title:      "User Journey Distribution",
		Subtitle:   fmt.Sprintf("Top conversion paths • %s total users", f.Number(totalUsers)),
		TotalUsers: totalUsers,
		Rows:       make([]schema.JourneyRow, len(paths)),
		Chart:      DoughnutSpec(paths, ChartOptions{Formatter: f}),
	}
	for i, p := range paths {
		view.Rows[i] = schema.JourneyRow{
			Label: p.Label,
			Users: p.Value,
			Share: ShareOf(p.Value, totalUsers),
			Color: schema.JourneyPalette.At(i),
		}
	}
	return view
}
