package core

import (
	"slices"
	"strings"

	"github.com/huangsam/compareview/schema"
)

// TabBus delivers tab changes to subscribers in subscription order.
type TabBus struct {
	nextID    int
	order     []int
	listeners map[int]func(schema.TabChange)
}

// NewTabBus returns an empty bus.
func NewTabBus() *TabBus {
	return &TabBus{listeners: make(map[int]func(schema.TabChange))}
}

// Subscribe registers fn and returns the function that removes it.
func (b *TabBus) Subscribe(fn func(schema.TabChange)) (unsubscribe func()) {
	id := b.nextID
	b.nextID++
	b.order = append(b.order, id)
	b.listeners[id] = fn
	return func() {
		if _, ok := b.listeners[id]; !ok {
			return
		}
		delete(b.listeners, id)
		b.order = slices.DeleteFunc(b.order, func(v int) bool { return v == id })
	}
}

// Publish sends ev to every current subscriber.
func (b *TabBus) Publish(ev schema.TabChange) {
	for _, id := range slices.Clone(b.order) {
		if fn, ok := b.listeners[id]; ok {
			fn(ev)
		}
	}
}

// TabNavigator tracks the active dashboard tab.
type TabNavigator struct {
	tabs     []schema.Tab
	active   string
	bus      *TabBus
	onChange func(string)
}

// TabOption customizes a TabNavigator.
type TabOption func(*TabNavigator)

// WithTabBus publishes user selections on bus.
func WithTabBus(bus *TabBus) TabOption {
	return func(n *TabNavigator) { n.bus = bus }
}

// WithOnTabChange calls fn after every user selection.
func WithOnTabChange(fn func(string)) TabOption {
	return func(n *TabNavigator) { n.onChange = fn }
}

// NewTabNavigator returns a navigator over tabs with initial active.
// An empty initial falls back to schema.DefaultTabID.
func NewTabNavigator(tabs []schema.Tab, initial string, opts ...TabOption) *TabNavigator {
	if initial == "" {
		initial = schema.DefaultTabID
	}
	n := &TabNavigator{tabs: slices.Clone(tabs), active: initial}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// SyncFragment adopts the tab named by a URL fragment such as "#metrics".
// It never publishes; the change did not come from the user.
func (n *TabNavigator) SyncFragment(fragment string) string {
	id := strings.TrimPrefix(strings.TrimSpace(fragment), "#")
	if id == "" {
		id = schema.DefaultTabID
	}
	n.active = id
	return n.active
}

// Select makes id active, publishes the change and then runs the callback.
func (n *TabNavigator) Select(id string) {
	n.active = id
	if n.bus != nil {
		n.bus.Publish(schema.TabChange{TabID: id})
	}
	if n.onChange != nil {
		n.onChange(id)
	}
}

// Step selects the tab delta positions away from the active one, wrapping
// around. An active id outside the tabs sits just before the first tab, so
// stepping right lands on the first tab and stepping left on the last.
// It does nothing without tabs or for a zero delta.
func (n *TabNavigator) Step(delta int) {
	if len(n.tabs) == 0 || delta == 0 {
		return
	}
	i := slices.IndexFunc(n.tabs, func(t schema.Tab) bool { return t.ID == n.active })
	if i < 0 && delta < 0 {
		i = 0
	}
	next := ((i+delta)%len(n.tabs) + len(n.tabs)) % len(n.tabs)
	n.Select(n.tabs[next].ID)
}

// Active returns the active tab id.
func (n *TabNavigator) Active() string { return n.active }

// Fragment returns the URL fragment for the active tab.
func (n *TabNavigator) Fragment() string { return "#" + n.active }

// States returns every tab with its highlight flag.
func (n *TabNavigator) States() []schema.TabState {
	out := make([]schema.TabState, len(n.tabs))
	for i, t := range n.tabs {
		out[i] = schema.TabState{Tab: t, Active: t.ID == n.active}
	}
	return out
}

// DefaultTabs are the dashboard sections used when a document names none.
var DefaultTabs = []schema.Tab{
	{ID: "overview", Label: "Overview", Icon: "📊"},
	{ID: "sources", Label: "Traffic Sources", Icon: "🌐"},
	{ID: "funnel", Label: "Conversion Funnel", Icon: "🎯"},
	{ID: "journeys", Label: "User Journeys", Icon: "🗺️"},
	{ID: "compare", Label: "Compare", Icon: "⚖️"},
}
