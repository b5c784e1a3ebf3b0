package schema

// Custom string types for type safety.
type (
	// FormatKind represents the display rule applied to a metric value.
	FormatKind string

	// ViewMode represents the active presentation of the selected items.
	ViewMode string

	// OutputMode represents the format of the output.
	OutputMode string

	// ChartKind represents the chart family a spec is drawn as.
	ChartKind string

	// VisualFormat represents the drawing surface a chart is rendered on.
	VisualFormat string

	// Orientation represents the direction bars grow in.
	Orientation string

	// FlowKind represents one of the traffic flow presentations.
	FlowKind string
)

// All format kinds supported.
const (
	NumberFormat     FormatKind = "number" // default
	PercentageFormat FormatKind = "percentage"
	TimeFormat       FormatKind = "time"
	CurrencyFormat   FormatKind = "currency"
	TextFormat       FormatKind = "text"
)

// All view modes supported.
const (
	TableView ViewMode = "table" // default
	ChartView ViewMode = "chart"
	RadarView ViewMode = "radar"
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
	HTMLOut    OutputMode = "html"
	SVGOut     OutputMode = "svg"
	PNGOut     OutputMode = "png"
)

// All chart kinds supported.
const (
	BarChart      ChartKind = "bar"
	LineChart     ChartKind = "line"
	RadarChart    ChartKind = "radar"
	DoughnutChart ChartKind = "doughnut"
	FunnelChart   ChartKind = "funnel"
)

// All drawing surfaces supported.
const (
	HTMLVisual VisualFormat = "html" // default
	SVGVisual  VisualFormat = "svg"
	PNGVisual  VisualFormat = "png"
)

// Bar orientations.
const (
	Vertical   Orientation = "vertical" // default
	Horizontal Orientation = "horizontal"
)

// All flow presentations supported.
const (
	PathsFlow    FlowKind = "paths"
	SankeyFlow   FlowKind = "sankey"
	JourneysFlow FlowKind = "journeys"
)

// ValidFlowKinds lists all valid flow presentations.
var ValidFlowKinds = map[FlowKind]struct{}{
	PathsFlow:    {},
	SankeyFlow:   {},
	JourneysFlow: {},
}

// Selection defaults.
const (
	DefaultMaxSelections     = 6
	DefaultInitialSelections = 3
)

// DefaultTabID is the tab that is active when no fragment names one.
const DefaultTabID = "overview"

// EmptySelectionMessage is shown instead of any view when nothing is selected.
const EmptySelectionMessage = "Select items above to compare"

// AllViewModes lists the view modes in toggle-row order.
var AllViewModes = []ViewMode{TableView, ChartView, RadarView}

// AllFormatKinds lists the format kinds in documentation order.
var AllFormatKinds = []FormatKind{NumberFormat, PercentageFormat, CurrencyFormat, TimeFormat, TextFormat}

// AllChartKinds lists the chart kinds in documentation order.
var AllChartKinds = []ChartKind{BarChart, LineChart, RadarChart, DoughnutChart, FunnelChart}

// ValidFormatKinds lists all valid format kinds.
var ValidFormatKinds = map[FormatKind]struct{}{
	NumberFormat:     {},
	PercentageFormat: {},
	TimeFormat:       {},
	CurrencyFormat:   {},
	TextFormat:       {},
}

// ValidViewModes lists all valid view modes.
var ValidViewModes = map[ViewMode]struct{}{
	TableView: {},
	ChartView: {},
	RadarView: {},
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
	HTMLOut:    {},
	SVGOut:     {},
	PNGOut:     {},
}

// ValidChartKinds lists all valid chart kinds.
var ValidChartKinds = map[ChartKind]struct{}{
	BarChart:      {},
	LineChart:     {},
	RadarChart:    {},
	DoughnutChart: {},
	FunnelChart:   {},
}

// ValidVisualFormats lists all valid drawing surfaces.
var ValidVisualFormats = map[VisualFormat]struct{}{
	HTMLVisual: {},
	SVGVisual:  {},
	PNGVisual:  {},
}

// Visual reports the drawing surface an output mode renders charts on.
// Tabular modes return false.
func (o OutputMode) Visual() (VisualFormat, bool) {
	switch o {
	case HTMLOut:
		return HTMLVisual, true
	case SVGOut:
		return SVGVisual, true
	case PNGOut:
		return PNGVisual, true
	default:
		return "", false
	}
}

// ViewModeLabel returns the toggle button caption for a view mode.
func ViewModeLabel(mode ViewMode) string {
	switch mode {
	case ChartView:
		return "📊 Chart View"
	case RadarView:
		return "🎯 Radar View"
	default:
		return "📋 Table View"
	}
}
