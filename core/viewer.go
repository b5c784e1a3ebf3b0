package core

import (
	"fmt"
	"strings"

	"github.com/huangsam/compareview/schema"
)

// Viewer owns one comparison's state: the candidate set, the selection and
// the active view mode. Render derives everything else on demand.
type Viewer struct {
	title     string
	defs      []schema.MetricDefinition
	set       *ItemSet
	selection *Selection
	mode      schema.ViewMode
	formatter *Formatter
	initial   int
}

// ViewerOption customizes a Viewer.
type ViewerOption func(*Viewer)

// WithMaxSelections bounds the selection. Non-positive values keep the default.
func WithMaxSelections(n int) ViewerOption {
	return func(v *Viewer) {
		if n > 0 {
			v.selection = NewSelection(v.set, n)
		}
	}
}

// WithInitialSelections sets how many leading items are pre-selected on load.
func WithInitialSelections(k int) ViewerOption {
	return func(v *Viewer) {
		if k >= 0 {
			v.initial = k
		}
	}
}

// WithFormatter sets the locale formatter used for table cells and tooltips.
func WithFormatter(f *Formatter) ViewerOption {
	return func(v *Viewer) {
		if f != nil {
			v.formatter = f
		}
	}
}

// WithTitle sets the heading shown above the comparison.
func WithTitle(title string) ViewerOption {
	return func(v *Viewer) { v.title = title }
}

// NewViewer validates defs and returns a viewer in table mode with no candidates.
func NewViewer(defs []schema.MetricDefinition, opts ...ViewerOption) (*Viewer, error) {
	if err := ValidateDefinitions(defs); err != nil {
		return nil, err
	}
	v := &Viewer{
		title:     "Compare Items",
		defs:      append([]schema.MetricDefinition(nil), defs...),
		selection: NewSelection(nil, schema.DefaultMaxSelections),
		mode:      schema.TableView,
		formatter: defaultFormatter,
		initial:   schema.DefaultInitialSelections,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v, nil
}

// Load hands the viewer a candidate set. The selection is re-initialized only
// when set is a different set than the one already loaded; it reports whether
// that happened.
func (v *Viewer) Load(set *ItemSet) bool {
	if set == v.set && v.set != nil {
		return false
	}
	v.set = set
	v.selection.Initialize(set, v.initial)
	return true
}

// Toggle flips id in the selection. See Selection.Toggle.
func (v *Viewer) Toggle(id string) bool {
	return v.selection.Toggle(id)
}

// Select replaces the selection with ids. See Selection.Replace.
func (v *Viewer) Select(ids []string) {
	v.selection.Replace(ids)
}

// SetMode switches the active view. The selection is never touched.
func (v *Viewer) SetMode(mode schema.ViewMode) error {
	if _, ok := schema.ValidViewModes[mode]; !ok {
		return fmt.Errorf("%w %q", ErrUnknownViewMode, mode)
	}
	v.mode = mode
	return nil
}

// Mode returns the active view.
func (v *Viewer) Mode() schema.ViewMode { return v.mode }

// Selection exposes the selection for inspection.
func (v *Viewer) Selection() *Selection { return v.selection }

// Definitions returns the metric definitions.
func (v *Viewer) Definitions() []schema.MetricDefinition {
	return append([]schema.MetricDefinition(nil), v.defs...)
}

// Candidates returns the loaded candidate set, nil before the first Load.
func (v *Viewer) Candidates() *ItemSet { return v.set }

// SelectedItems returns the selected items in selection order.
func (v *Viewer) SelectedItems() []schema.Item {
	ids := v.selection.IDs()
	out := make([]schema.Item, 0, len(ids))
	for _, id := range ids {
		if item, ok := v.set.Lookup(id); ok {
			out = append(out, item)
		}
	}
	return out
}

// Render builds the view for the current state. Only the variant matching
// the active mode is populated, and none when nothing is selected.
func (v *Viewer) Render() schema.View {
	selected := v.SelectedItems()
	view := schema.View{
		Title:         v.title,
		Subtitle:      fmt.Sprintf("Select up to %d items to compare", v.selection.Max()),
		Mode:          v.mode,
		ShowModeTabs:  len(selected) > 0,
		Candidates:    v.candidates(),
		MaxSelections: v.selection.Max(),
	}
	if len(selected) == 0 {
		view.Empty = true
		view.EmptyMessage = schema.EmptySelectionMessage
		return view
	}

	switch v.mode {
	case schema.ChartView:
		view.Charts = v.chartPanels(selected)
	case schema.RadarView:
		view.Radar = v.radar(selected)
	default:
		view.Table = v.table(selected)
	}
	return view
}

func (v *Viewer) candidates() []schema.Candidate {
	items := v.set.Items()
	out := make([]schema.Candidate, len(items))
	for i, item := range items {
		out[i] = schema.Candidate{ID: item.ID, Label: item.Label, Selected: v.selection.Contains(item.ID)}
	}
	return out
}

func (v *Viewer) table(selected []schema.Item) *schema.Table {
	t := &schema.Table{Columns: make([]schema.Column, len(selected))}
	for i, item := range selected {
		t.Columns[i] = schema.Column{ID: item.ID, Label: item.Label, Color: schema.ComparisonPalette.At(i)}
	}
	for _, d := range v.defs {
		row := schema.TableRow{
			Key:    d.Key,
			Label:  d.Label,
			Format: d.FormatOrDefault(),
			Cells:  make([]string, len(selected)),
			Values: make([]schema.MetricValue, len(selected)),
		}
		for i, item := range selected {
			row.Values[i] = item.Metric(d.Key)
			row.Cells[i] = v.formatter.Format(row.Values[i], row.Format)
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// chartPanels includes a metric when the first selected item holds a number
// for it. Other items with non-numeric values plot as zero.
func (v *Viewer) chartPanels(selected []schema.Item) []schema.ChartPanel {
	var panels []schema.ChartPanel
	first := selected[0]
	for _, d := range v.defs {
		if !first.Metric(d.Key).IsNumber() {
			continue
		}
		points := make([]schema.DataPoint, len(selected))
		for i, item := range selected {
			val, _ := item.Metric(d.Key).Float()
			points[i] = schema.DataPoint{Label: item.Label, Value: val}
		}
		accent := schema.BrandBlue.WithAlpha(0.8)
		panels = append(panels, schema.ChartPanel{
			Key:    d.Key,
			Label:  d.Label,
			Points: points,
			Spec: BarSpec(points, ChartOptions{
				Title:       d.Label,
				SeriesLabel: d.Label,
				Color:       &accent,
				Formatter:   v.formatter,
			}),
		})
	}
	return panels
}

func (v *Viewer) radar(selected []schema.Item) *schema.Radar {
	scores := RadarScores(selected, v.defs)
	points := make([]schema.DataPoint, len(scores))
	for i, s := range scores {
		points[i] = schema.DataPoint{Label: s.Label, Value: s.Score}
	}
	return &schema.Radar{
		Scores: scores,
		Spec:   RadarSpec(points, ChartOptions{Title: "Overall Performance Comparison", Formatter: v.formatter}),
	}
}

// ParseViewMode validates a view mode name. Empty means table.
func ParseViewMode(s string) (schema.ViewMode, error) {
	if s == "" {
		return schema.TableView, nil
	}
	mode := schema.ViewMode(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := schema.ValidViewModes[mode]; !ok {
		return "", fmt.Errorf("%w %q", ErrUnknownViewMode, s)
	}
	return mode, nil
}
