package cmd

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/huangsam/compareview/core"
	"github.com/huangsam/compareview/internal/contract"
	"github.com/huangsam/compareview/internal/loader"
	"github.com/huangsam/compareview/internal/tui"
	"github.com/huangsam/compareview/internal/watcher"
	"github.com/huangsam/compareview/schema"
	"github.com/spf13/cobra"
)

// browseCmd opens the interactive comparison browser.
var browseCmd = &cobra.Command{
	Use:   "browse <file>",
	Short: "Browse the comparison interactively.",
	Long: `Open a terminal browser over a dashboard document.

Move with the arrow keys, toggle items with space, switch views with t, c
and r (or tab), and step through the dashboard sections with left and right.
With --watch the document is reloaded whenever it changes on disk; a reload
that changes the items resets the selection.

Examples:
  compareview browse dashboard.yaml
  compareview browse dashboard.yaml --watch --max-selections 4`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := runBrowse(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run browser", err)
		}
	},
}

func runBrowse(ctx context.Context, cfg *contract.Config) error {
	source := loader.FileSource{Path: cfg.InputPath}
	doc, err := source.Load()
	if err != nil {
		return err
	}
	f := core.FormatterFor(cfg)
	build := func(d schema.Document) (*core.Viewer, error) {
		return core.BuildViewer(d, cfg, f)
	}
	viewer, err := build(doc)
	if err != nil {
		return err
	}

	opts := []tui.Option{tui.WithSource(source), tui.WithBuilder(build)}
	if cfg.Watch {
		w, err := watcher.New(cfg.InputPath, watcher.WithOnError(func(err error) {
			if errors.Is(err, watcher.ErrFileRemoved) {
				contract.Debugf("document removed: %s", cfg.InputPath)
				return
			}
			contract.Debugf("watch error: %v", err)
		}))
		if err != nil {
			return err
		}
		if err := w.Start(); err != nil {
			return err
		}
		defer w.Stop()
		opts = append(opts, tui.WithWatcher(w))
	}

	p := tea.NewProgram(tui.NewModel(viewer, doc, opts...), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err = p.Run()
	return err
}
