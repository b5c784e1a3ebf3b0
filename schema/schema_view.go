package schema

// Column is one selected item rendered as a table column or chart series entry.
type Column struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Color Color  `json:"color"`
}

// TableRow is one metric definition across every selected item.
type TableRow struct {
	Key    string        `json:"key"`
	Label  string        `json:"label"`
	Format FormatKind    `json:"format"`
	Cells  []string      `json:"cells"`  // formatted, one per column
	Values []MetricValue `json:"values"` // raw, one per column
}

// Table is the tabular comparison: one row per metric, one column per item.
type Table struct {
	Columns []Column   `json:"columns"`
	Rows    []TableRow `json:"rows"`
}

// ChartPanel is one grouped bar chart for a single numeric metric.
type ChartPanel struct {
	Key    string      `json:"key"`
	Label  string      `json:"label"`
	Points []DataPoint `json:"points"` // raw values, one per selected item
	Spec   ChartSpec   `json:"spec"`
}

// RadarScore is the derived single score of one selected item.
type RadarScore struct {
	ID    string  `json:"id"`
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Radar is the aggregate presentation: one point per selected item.
type Radar struct {
	Scores []RadarScore `json:"scores"`
	Spec   ChartSpec    `json:"spec"`
}

// View is the rendered comparison. Mode selects which variant is populated;
// when Empty is set none of them are.
type View struct {
	Title         string       `json:"title"`
	Subtitle      string       `json:"subtitle"`
	Mode          ViewMode     `json:"mode"`
	ShowModeTabs  bool         `json:"show_mode_tabs"`
	Empty         bool         `json:"empty"`
	EmptyMessage  string       `json:"empty_message,omitempty"`
	Candidates    []Candidate  `json:"candidates"`
	Table         *Table       `json:"table,omitempty"`
	Charts        []ChartPanel `json:"charts,omitempty"`
	Radar         *Radar       `json:"radar,omitempty"`
	MaxSelections int          `json:"max_selections"`
}

// Candidate is one selectable button in the item selection row.
type Candidate struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Selected bool   `json:"selected"`
}

// FormatExample documents one format kind with a sample conversion.
type FormatExample struct {
	Kind   FormatKind `json:"kind"`
	Rule   string     `json:"rule"`
	Input  string     `json:"input"`
	Output string     `json:"output"`
}
