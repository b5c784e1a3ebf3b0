// Package tui is the interactive terminal browser for a dashboard document.
package tui

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/huangsam/compareview/core"
	"github.com/huangsam/compareview/internal/contract"
	"github.com/huangsam/compareview/internal/watcher"
	"github.com/huangsam/compareview/schema"
)

// FileChangedMsg is sent when the watched document changed on disk.
type FileChangedMsg struct{}

// documentLoadedMsg carries the result of re-reading the document.
type documentLoadedMsg struct {
	doc schema.Document
	err error
}

// WatchFileCmd waits for the next change signaled by w. It yields no message
// once w stops.
func WatchFileCmd(w *watcher.Watcher) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-w.Changed():
			return FileChangedMsg{}
		case <-w.Done():
			return nil
		}
	}
}

// reloadCmd reads the document again from source.
func reloadCmd(source contract.DocumentSource) tea.Cmd {
	return func() tea.Msg {
		doc, err := source.Load()
		return documentLoadedMsg{doc: doc, err: err}
	}
}

// Model is the bubbletea model behind the browse command.
type Model struct {
	viewer *core.Viewer
	nav    *core.TabNavigator
	source contract.DocumentSource
	watch  *watcher.Watcher
	build  func(schema.Document) (*core.Viewer, error)

	cursor int
	width  int
	height int
	ready  bool
	body   viewport.Model
	status string
	err    error
}

// Option customizes a Model.
type Option func(*Model)

// WithWatcher reloads the document whenever w signals a change.
func WithWatcher(w *watcher.Watcher) Option {
	return func(m *Model) { m.watch = w }
}

// WithSource sets where reloads read the document from.
func WithSource(source contract.DocumentSource) Option {
	return func(m *Model) { m.source = source }
}

// WithBuilder sets how a reloaded document whose metric definitions changed
// becomes a new viewer.
func WithBuilder(build func(schema.Document) (*core.Viewer, error)) Option {
	return func(m *Model) { m.build = build }
}

// NewModel returns a browser over viewer and the dashboard tabs of doc.
func NewModel(viewer *core.Viewer, doc schema.Document, opts ...Option) Model {
	m := Model{viewer: viewer, body: viewport.New(80, 20)}
	for _, opt := range opts {
		opt(&m)
	}
	bus := core.NewTabBus()
	bus.Subscribe(func(ev schema.TabChange) {
		contract.Debugf("tab changed to %s", ev.TabID)
	})
	m.nav = core.NavigatorFor(doc, core.WithTabBus(bus))
	m.refresh()
	return m
}

// Viewer returns the viewer being browsed.
func (m Model) Viewer() *core.Viewer { return m.viewer }

// Navigator returns the dashboard tab navigator.
func (m Model) Navigator() *core.TabNavigator { return m.nav }

// Cursor returns the highlighted candidate position.
func (m Model) Cursor() int { return m.cursor }

// Status returns the last status line message.
func (m Model) Status() string { return m.status }

// Err returns the last reload error.
func (m Model) Err() error { return m.err }

// Init starts waiting for file changes when a watcher is set.
func (m Model) Init() tea.Cmd {
	if m.watch == nil {
		return nil
	}
	return WatchFileCmd(m.watch)
}

// Update handles key presses, resizes and document reloads.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.ready = true
		m.body.Width = msg.Width
		m.body.Height = max(msg.Height-m.chromeHeight(), 3)
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case FileChangedMsg:
		var cmds []tea.Cmd
		if m.source != nil {
			cmds = append(cmds, reloadCmd(m.source))
		}
		if m.watch != nil {
			cmds = append(cmds, WatchFileCmd(m.watch))
		}
		return m, tea.Batch(cmds...)

	case documentLoadedMsg:
		m.applyDocument(msg)
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.body, cmd = m.body.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	count := m.candidateCount()
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < count-1 {
			m.cursor++
		}
	case " ", "space", "enter", "x":
		if count == 0 {
			break
		}
		item := m.viewer.Candidates().At(m.cursor)
		if !m.viewer.Toggle(item.ID) {
			m.status = fmt.Sprintf("Cannot select %s: at most %d items", item.Label, m.viewer.Selection().Max())
		} else {
			m.status = ""
		}
	case "t":
		m.setMode(schema.TableView)
	case "c":
		m.setMode(schema.ChartView)
	case "r":
		m.setMode(schema.RadarView)
	case "tab":
		m.setMode(nextMode(m.viewer.Mode(), 1))
	case "shift+tab":
		m.setMode(nextMode(m.viewer.Mode(), -1))
	case "left", "h":
		m.nav.Step(-1)
	case "right", "l":
		m.nav.Step(1)
	default:
		var cmd tea.Cmd
		m.body, cmd = m.body.Update(msg)
		return m, cmd
	}
	m.refresh()
	return m, nil
}

func (m *Model) setMode(mode schema.ViewMode) {
	if err := m.viewer.SetMode(mode); err != nil {
		m.status = err.Error()
	}
}

var modeOrder = []schema.ViewMode{schema.TableView, schema.ChartView, schema.RadarView}

func nextMode(mode schema.ViewMode, delta int) schema.ViewMode {
	i := max(slices.Index(modeOrder, mode), 0)
	return modeOrder[((i+delta)%len(modeOrder)+len(modeOrder))%len(modeOrder)]
}

// applyDocument loads a re-read document. Item changes reset the selection.
// Changed metric definitions need a new viewer, which keeps the active mode.
func (m *Model) applyDocument(msg documentLoadedMsg) {
	if msg.err != nil {
		m.err = msg.err
		m.status = "Reload failed: " + msg.err.Error()
		return
	}
	m.err = nil
	if !slices.Equal(msg.doc.Metrics, m.viewer.Definitions()) && m.build != nil {
		viewer, err := m.build(msg.doc)
		if err != nil {
			m.err = err
			m.status = "Reload failed: " + err.Error()
			return
		}
		_ = viewer.SetMode(m.viewer.Mode())
		m.viewer = viewer
	} else {
		set, err := core.NewItemSet(msg.doc.Items)
		if err != nil {
			m.err = err
			m.status = "Reload failed: " + err.Error()
			return
		}
		m.viewer.Load(set)
	}
	m.cursor = min(m.cursor, max(m.candidateCount()-1, 0))
	m.status = fmt.Sprintf("Reloaded %d items", m.candidateCount())
}

func (m Model) candidateCount() int {
	if set := m.viewer.Candidates(); set != nil {
		return set.Len()
	}
	return 0
}

// refresh re-renders the scrollable body for the current state.
func (m *Model) refresh() {
	m.body.SetContent(renderBody(m.viewer.Render(), m.width))
}
