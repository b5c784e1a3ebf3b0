package tui

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/huangsam/compareview/core"
	"github.com/huangsam/compareview/internal/loader"
	"github.com/huangsam/compareview/internal/watcher"
	"github.com/huangsam/compareview/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDefs = []schema.MetricDefinition{
	{Key: "revenue", Label: "Revenue", Format: schema.CurrencyFormat},
	{Key: "conversion", Label: "Conversion", Format: schema.PercentageFormat},
}

func testDocument() schema.Document {
	return schema.Document{
		Title:   "Campaigns",
		Metrics: testDefs,
		Items: []schema.Item{
			{ID: "a", Label: "Alpha", Metrics: map[string]schema.MetricValue{"revenue": schema.Number(1200), "conversion": schema.Number(12.5)}},
			{ID: "b", Label: "Beta", Metrics: map[string]schema.MetricValue{"revenue": schema.Number(800), "conversion": schema.Number(9)}},
			{ID: "c", Label: "Gamma", Metrics: map[string]schema.MetricValue{"revenue": schema.Number(400), "conversion": schema.Number(4)}},
		},
	}
}

func newTestModel(t *testing.T, opts ...Option) Model {
	t.Helper()
	doc := testDocument()
	set, err := core.NewItemSet(doc.Items)
	require.NoError(t, err)
	v, err := core.NewViewer(doc.Metrics, core.WithMaxSelections(2), core.WithInitialSelections(1), core.WithTitle(doc.Title))
	require.NoError(t, err)
	v.Load(set)
	return NewModel(v, doc, opts...)
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "left":
			msg = tea.KeyMsg{Type: tea.KeyLeft}
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "space":
			msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		updated, _ := m.Update(msg)
		m = updated.(Model)
	}
	return m
}

// drain runs cmd and feeds every message it yields back into m.
func drain(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	if cmd == nil {
		return m
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			m = drain(t, m, c)
		}
		return m
	}
	updated, _ := m.Update(msg)
	return updated.(Model)
}

func TestCursorAndToggle(t *testing.T) {
	m := newTestModel(t)
	assert.Equal(t, []string{"a"}, m.Viewer().Selection().IDs())

	m = press(t, m, "down", "space")
	assert.Equal(t, 1, m.Cursor())
	assert.Equal(t, []string{"a", "b"}, m.Viewer().Selection().IDs())

	m = press(t, m, "down", "space")
	assert.Equal(t, []string{"a", "b"}, m.Viewer().Selection().IDs())
	assert.Contains(t, m.Status(), "at most 2")

	m = press(t, m, "up", "up", "up", "space")
	assert.Equal(t, 0, m.Cursor())
	assert.Equal(t, []string{"b"}, m.Viewer().Selection().IDs())
	assert.Empty(t, m.Status())

	m = press(t, m, "down", "down", "down", "down")
	assert.Equal(t, 2, m.Cursor())
}

func TestModeKeys(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "c")
	assert.Equal(t, schema.ChartView, m.Viewer().Mode())
	m = press(t, m, "r")
	assert.Equal(t, schema.RadarView, m.Viewer().Mode())
	m = press(t, m, "tab")
	assert.Equal(t, schema.TableView, m.Viewer().Mode())
	m = press(t, m, "tab")
	assert.Equal(t, schema.ChartView, m.Viewer().Mode())
	m = press(t, m, "t")
	assert.Equal(t, schema.TableView, m.Viewer().Mode())
}

func TestModeSwitchKeepsSelection(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "down", "space", "r", "t")
	assert.Equal(t, []string{"a", "b"}, m.Viewer().Selection().IDs())
}

func TestSectionKeys(t *testing.T) {
	m := newTestModel(t)
	assert.Equal(t, "overview", m.Navigator().Active())
	m = press(t, m, "right")
	assert.Equal(t, "sources", m.Navigator().Active())
	m = press(t, m, "left", "left")
	assert.Equal(t, "compare", m.Navigator().Active())
}

func TestQuit(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestViewShowsState(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = updated.(Model)

	out := m.View()
	assert.Contains(t, out, "Campaigns")
	assert.Contains(t, out, "Select up to 2 items to compare")
	assert.Contains(t, out, "[x]")
	assert.Contains(t, out, "Table View")
	assert.Contains(t, out, "Revenue")
	assert.Contains(t, out, "Overview")
}

func TestViewEmptySelection(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "space")
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = updated.(Model)

	out := m.View()
	assert.Contains(t, out, schema.EmptySelectionMessage)
	assert.NotContains(t, out, "Table View")
}

func TestRadarAndChartBodies(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "down", "space", "r")
	body := renderBody(m.Viewer().Render(), 100)
	assert.Contains(t, body, "Overall Performance Comparison")
	assert.Contains(t, body, "Beta")

	m = press(t, m, "c")
	body = renderBody(m.Viewer().Render(), 100)
	assert.Contains(t, body, "Revenue")
	assert.Contains(t, body, "Conversion")
	assert.Contains(t, body, "█")
}

func TestReloadResetsSelection(t *testing.T) {
	doc := testDocument()
	doc.Items = append(doc.Items, schema.Item{ID: "d", Label: "Delta"})
	m := newTestModel(t, WithSource(loader.StaticSource{Document: doc}))
	m = press(t, m, "down", "space")
	assert.Equal(t, []string{"a", "b"}, m.Viewer().Selection().IDs())

	updated, cmd := m.Update(FileChangedMsg{})
	m = drain(t, updated.(Model), cmd)

	assert.Equal(t, []string{"a"}, m.Viewer().Selection().IDs())
	assert.Equal(t, 4, m.Viewer().Candidates().Len())
	assert.Equal(t, "Reloaded 4 items", m.Status())
	assert.NoError(t, m.Err())
}

func TestReloadRebuildsViewerForNewMetrics(t *testing.T) {
	doc := testDocument()
	doc.Metrics = append(doc.Metrics, schema.MetricDefinition{Key: "clicks", Label: "Clicks"})
	built := 0
	build := func(d schema.Document) (*core.Viewer, error) {
		built++
		set, err := core.NewItemSet(d.Items)
		if err != nil {
			return nil, err
		}
		v, err := core.NewViewer(d.Metrics)
		if err != nil {
			return nil, err
		}
		v.Load(set)
		return v, nil
	}
	m := newTestModel(t, WithSource(loader.StaticSource{Document: doc}), WithBuilder(build))
	m = press(t, m, "r")

	updated, cmd := m.Update(FileChangedMsg{})
	m = drain(t, updated.(Model), cmd)

	assert.Equal(t, 1, built)
	assert.Len(t, m.Viewer().Definitions(), 3)
	assert.Equal(t, schema.RadarView, m.Viewer().Mode())
}

type failingSource struct{}

func (failingSource) Load() (schema.Document, error) {
	return schema.Document{}, errors.New("bad yaml")
}

func TestReloadFailureKeepsState(t *testing.T) {
	m := newTestModel(t, WithSource(failingSource{}))
	updated, cmd := m.Update(FileChangedMsg{})
	m = drain(t, updated.(Model), cmd)

	assert.Error(t, m.Err())
	assert.True(t, strings.HasPrefix(m.Status(), "Reload failed"))
	assert.Equal(t, []string{"a"}, m.Viewer().Selection().IDs())
}

func TestInitWithoutWatcher(t *testing.T) {
	assert.Nil(t, newTestModel(t).Init())
}

func TestWatchFileCmdEndsWhenWatcherStops(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dashboard.yaml")
	require.NoError(t, os.WriteFile(path, []byte("title: one\n"), 0o644))
	w, err := watcher.New(path)
	require.NoError(t, err)
	require.NoError(t, w.Start())

	msgs := make(chan tea.Msg, 1)
	go func() { msgs <- WatchFileCmd(w)() }()
	w.Stop()

	select {
	case msg := <-msgs:
		assert.Nil(t, msg)
	case <-time.After(3 * time.Second):
		t.Fatal("watch command still blocked after Stop")
	}
}

func TestBar(t *testing.T) {
	assert.Equal(t, "", bar(0))
	assert.Equal(t, "▏", bar(1))
	assert.Equal(t, strings.Repeat("█", barCells), bar(150))
	assert.Equal(t, "ab  ", pad("ab", 4))
}
