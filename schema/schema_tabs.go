package schema

// Tab is one dashboard section in the tab navigator.
type Tab struct {
	ID    string `json:"id" yaml:"id"`
	Label string `json:"label" yaml:"label"`
	Icon  string `json:"icon" yaml:"icon"`
}

// TabChange is published whenever the user selects a tab.
type TabChange struct {
	TabID string `json:"tab_id"`
}

// TabState is a tab plus whether it is highlighted.
type TabState struct {
	Tab
	Active bool `json:"active"`
}
