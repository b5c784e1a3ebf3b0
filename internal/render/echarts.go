package render

import (
	"fmt"
	"io"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/goccy/go-json"
	"github.com/huangsam/compareview/internal/contract"
	"github.com/huangsam/compareview/schema"
)

// EChartsSurface renders charts as interactive HTML pages.
type EChartsSurface struct {
	Size Size
}

// renderer is what every go-echarts chart can do.
type renderer interface {
	Render(w io.Writer) error
}

// Acquire builds the go-echarts chart for spec.
func (s *EChartsSurface) Acquire(spec schema.ChartSpec) (contract.Canvas, error) {
	spec = scriptSafe(spec)
	size := s.Size.orDefault()
	init := charts.WithInitializationOpts(opts.Initialization{
		PageTitle: pageTitle(spec),
		Width:     strconv.Itoa(size.Width) + "px",
		Height:    strconv.Itoa(size.Height) + "px",
	})
	title := charts.WithTitleOpts(opts.Title{Title: spec.Title})
	tooltip := charts.WithTooltipOpts(opts.Tooltip{
		Show:      opts.Bool(true),
		Trigger:   "item",
		Formatter: opts.FuncOpts(tooltipFunc(spec.Tooltips)),
	})
	legend := charts.WithLegendOpts(opts.Legend{Show: opts.Bool(spec.ShowLegend)})

	var chart renderer
	switch spec.Kind {
	case schema.BarChart, schema.FunnelChart:
		chart = barChart(spec, init, title, tooltip, legend)
	case schema.LineChart:
		chart = lineChart(spec, init, title, tooltip, legend)
	case schema.RadarChart:
		chart = radarChart(spec, init, title, tooltip, legend)
	case schema.DoughnutChart:
		chart = doughnutChart(spec, init, title, tooltip)
	default:
		return nil, fmt.Errorf("no html renderer for chart kind %q", spec.Kind)
	}
	return &echartsCanvas{chart: chart}, nil
}

type echartsCanvas struct {
	chart renderer
}

func (c *echartsCanvas) WriteTo(w io.Writer) (int64, error) {
	if c.chart == nil {
		return 0, ErrClosed
	}
	cw := &countingWriter{w: w}
	err := c.chart.Render(cw)
	return cw.n, err
}

func (c *echartsCanvas) Close() error {
	c.chart = nil
	return nil
}

func pageTitle(spec schema.ChartSpec) string {
	if spec.Title != "" {
		return spec.Title
	}
	return string(spec.Kind) + " chart"
}

func barChart(spec schema.ChartSpec, global ...charts.GlobalOpts) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(global...)
	data := make([]opts.BarData, len(spec.Points))
	for i, p := range spec.Points {
		data[i] = opts.BarData{
			Name:  p.Label,
			Value: p.Value,
			ItemStyle: &opts.ItemStyle{
				Color:       spec.FillAt(i).CSS(),
				BorderColor: spec.StrokeAt(i).CSS(),
			},
		}
	}
	bar.SetXAxis(spec.Labels()).AddSeries(spec.SeriesLabel, data)
	if spec.Horizontal() {
		bar.XYReversal()
	}
	return bar
}

func lineChart(spec schema.ChartSpec, global ...charts.GlobalOpts) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(global...)
	data := make([]opts.LineData, len(spec.Points))
	for i, p := range spec.Points {
		data[i] = opts.LineData{Name: p.Label, Value: p.Value}
	}
	seriesOpts := []charts.SeriesOpts{
		charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(spec.Tension > 0)}),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: spec.StrokeAt(0).CSS()}),
	}
	if spec.AreaFill {
		seriesOpts = append(seriesOpts, charts.WithAreaStyleOpts(opts.AreaStyle{Color: spec.FillAt(0).CSS()}))
	}
	line.SetXAxis(spec.Labels()).AddSeries(spec.SeriesLabel, data, seriesOpts...)
	return line
}

func radarChart(spec schema.ChartSpec, global ...charts.GlobalOpts) *charts.Radar {
	radar := charts.NewRadar()
	top := float32(axisMax(spec))
	indicators := make([]*opts.Indicator, len(spec.Points))
	values := make([]float32, len(spec.Points))
	for i, p := range spec.Points {
		indicators[i] = &opts.Indicator{Name: p.Label, Max: top}
		values[i] = float32(p.Value)
	}
	global = append(global, charts.WithRadarComponentOpts(opts.RadarComponent{
		Indicator:   indicators,
		SplitNumber: splitNumber(spec),
	}))
	radar.SetGlobalOptions(global...)
	radar.AddSeries(spec.SeriesLabel, []opts.RadarData{{Name: spec.SeriesLabel, Value: values}},
		charts.WithItemStyleOpts(opts.ItemStyle{Color: spec.StrokeAt(0).CSS()}),
		charts.WithAreaStyleOpts(opts.AreaStyle{Color: spec.FillAt(0).CSS()}),
	)
	return radar
}

func doughnutChart(spec schema.ChartSpec, global ...charts.GlobalOpts) *charts.Pie {
	pie := charts.NewPie()
	global = append(global, charts.WithLegendOpts(opts.Legend{
		Show:   opts.Bool(spec.ShowLegend),
		Orient: "vertical",
		Right:  spec.LegendPosition,
	}))
	pie.SetGlobalOptions(global...)
	data := make([]opts.PieData, len(spec.Points))
	for i, p := range spec.Points {
		name := p.Label
		if i < len(spec.Legend) {
			name = spec.Legend[i]
		}
		data[i] = opts.PieData{
			Name:      name,
			Value:     p.Value,
			ItemStyle: &opts.ItemStyle{Color: spec.FillAt(i).CSS(), BorderColor: spec.StrokeAt(i).CSS()},
		}
	}
	pie.AddSeries(spec.SeriesLabel, data, charts.WithPieChartOpts(opts.PieChart{Radius: []string{"50%", "70%"}}))
	return pie
}

func splitNumber(spec schema.ChartSpec) int {
	if spec.AxisStep <= 0 || spec.AxisMax <= 0 {
		return 5
	}
	return int(spec.AxisMax / spec.AxisStep)
}

// scriptBreaker defuses "<" in text that go-echarts writes unescaped into the
// page's inline script, so a label can never open or close an HTML tag there.
var scriptBreaker = strings.NewReplacer("<", "<\u200b")

// scriptSafe returns a copy of spec whose display text is safe inside a script element.
func scriptSafe(spec schema.ChartSpec) schema.ChartSpec {
	spec.Title = scriptBreaker.Replace(spec.Title)
	spec.SeriesLabel = scriptBreaker.Replace(spec.SeriesLabel)
	spec.Points = slices.Clone(spec.Points)
	for i := range spec.Points {
		spec.Points[i].Label = scriptBreaker.Replace(spec.Points[i].Label)
	}
	spec.Legend = replaceAll(spec.Legend)
	return spec
}

func replaceAll(texts []string) []string {
	if texts == nil {
		return nil
	}
	out := make([]string, len(texts))
	for i, t := range texts {
		out[i] = scriptBreaker.Replace(t)
	}
	return out
}

// tooltipFunc wraps the prebuilt tooltips in a JS formatter indexed by data position.
// go-echarts stores the function source as a JSON string and only strips its
// quotes afterwards, so the source must hold no character JSON would escape:
// the tooltips travel as a percent-encoded JSON array decoded in the browser.
func tooltipFunc(tooltips []string) string {
	if tooltips == nil {
		tooltips = []string{}
	}
	list, err := json.Marshal(tooltips)
	if err != nil {
		list = []byte("[]")
	}
	return "function (p) { var t = JSON.parse(decodeURIComponent('" + url.PathEscape(string(list)) + "')); " +
		"return t[p.dataIndex] !== undefined ? t[p.dataIndex] : p.name; }"
}
