package schema

// PageVisit is one page reached at a path step.
type PageVisit struct {
	Path  string  `json:"path" yaml:"path"`
	Users float64 `json:"users" yaml:"users"`
}

// PathStep is one step of the path exploration with its top pages.
type PathStep struct {
	Step     int         `json:"step" yaml:"step"`
	TopPages []PageVisit `json:"top_pages" yaml:"top_pages"`
}

// FlowLink is one from -> to transition with its user count.
type FlowLink struct {
	From  string  `json:"from" yaml:"from"`
	To    string  `json:"to" yaml:"to"`
	Users float64 `json:"users" yaml:"users"`
}

// FunnelStep is one funnel stage.
type FunnelStep struct {
	Step  string  `json:"step" yaml:"step"`
	Users float64 `json:"users" yaml:"users"`
}

// PageBar is a rendered path exploration entry.
type PageBar struct {
	Path         string  `json:"path"`
	Users        float64 `json:"users"`
	WidthPercent float64 `json:"width_percent"`
	Highlight    bool    `json:"highlight"` // aggregation bucket such as "3 More"
}

// PathColumn is a rendered path exploration step.
type PathColumn struct {
	Step  int       `json:"step"`
	Pages []PageBar `json:"pages"`
}

// PathExplorationView is the step timeline leading to a conversion.
type PathExplorationView struct {
	Title            string       `json:"title"`
	Subtitle         string       `json:"subtitle"`
	Steps            []PathColumn `json:"steps"`
	EndingPoint      string       `json:"ending_point"`
	TotalConversions float64      `json:"total_conversions"`
	MaxUsers         float64      `json:"max_users"`
}

// FlowBar is a rendered flow link.
type FlowBar struct {
	From         string  `json:"from"`
	To           string  `json:"to"`
	Users        float64 `json:"users"`
	WidthPercent float64 `json:"width_percent"`
	Share        float64 `json:"share"` // percent of all flow users, one decimal
}

// SankeyView is the list of flow bars.
type SankeyView struct {
	Title string    `json:"title,omitempty"`
	Bars  []FlowBar `json:"bars"`
}

// JourneyRow is one legend row of the journey distribution.
type JourneyRow struct {
	Label string  `json:"label"`
	Users float64 `json:"users"`
	Share float64 `json:"share"` // percent of total users, one decimal
	Color Color   `json:"color"`
}

// JourneyView is the journey distribution legend plus its doughnut chart.
type JourneyView struct {
	Title      string       `json:"title"`
	Subtitle   string       `json:"subtitle"`
	TotalUsers float64      `json:"total_users"`
	Rows       []JourneyRow `json:"rows"`
	Chart      ChartSpec    `json:"chart"`
}
