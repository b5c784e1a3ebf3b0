package schema

// Document is one dashboard input file. Every section is optional; each
// command reads the sections it renders.
type Document struct {
	Title         string             `json:"title" yaml:"title"`
	MaxSelections int                `json:"max_selections,omitempty" yaml:"max_selections,omitempty"`
	Metrics       []MetricDefinition `json:"metrics,omitempty" yaml:"metrics,omitempty"`
	Items         []Item             `json:"items,omitempty" yaml:"items,omitempty"`

	Points []DataPoint  `json:"points,omitempty" yaml:"points,omitempty"`
	Funnel []FunnelStep `json:"funnel,omitempty" yaml:"funnel,omitempty"`

	Links            []FlowLink  `json:"links,omitempty" yaml:"links,omitempty"`
	Paths            []PathStep  `json:"paths,omitempty" yaml:"paths,omitempty"`
	EndingPoint      string      `json:"ending_point,omitempty" yaml:"ending_point,omitempty"`
	TotalConversions float64     `json:"total_conversions,omitempty" yaml:"total_conversions,omitempty"`
	Journeys         []DataPoint `json:"journeys,omitempty" yaml:"journeys,omitempty"`
	TotalUsers       float64     `json:"total_users,omitempty" yaml:"total_users,omitempty"`

	Tabs      []Tab  `json:"tabs,omitempty" yaml:"tabs,omitempty"`
	ActiveTab string `json:"active_tab,omitempty" yaml:"active_tab,omitempty"`
}

// FunnelPoints converts funnel stages into chart points.
func (d Document) FunnelPoints() []DataPoint {
	out := make([]DataPoint, len(d.Funnel))
	for i, f := range d.Funnel {
		out[i] = DataPoint{Label: f.Step, Value: f.Users}
	}
	return out
}
