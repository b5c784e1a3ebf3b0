// Package core has core logic for selection, formatting, chart specs and flows.
package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/huangsam/compareview/internal/contract"
	"github.com/huangsam/compareview/internal/loader"
	"github.com/huangsam/compareview/internal/outwriter"
	"github.com/huangsam/compareview/internal/render"
	"github.com/huangsam/compareview/schema"
	"golang.org/x/text/language"
)

// ExecutorFunc defines the function signature for executing different commands.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config) error

// errNoInput is returned by commands that need a dashboard document.
var errNoInput = errors.New("an input document is required")

// ExecuteCompare renders the item comparison and prints it.
// It serves as the main entry point for the 'compare' command.
func ExecuteCompare(ctx context.Context, cfg *contract.Config) error {
	doc, err := loadDocument(ctx, cfg)
	if err != nil {
		return err
	}
	f := FormatterFor(cfg)
	viewer, err := BuildViewer(doc, cfg, f)
	if err != nil {
		return err
	}
	view := viewer.Render()
	ow := outwriter.NewOutWriter(f)

	if _, ok := cfg.Output.Visual(); !ok {
		return ow.WriteView(view, cfg)
	}
	spec, err := visualSpecOf(view)
	if err != nil {
		return err
	}
	return writeVisual(spec, cfg, ow)
}

// ChartExecutor returns the executor for the 'chart <kind>' command.
func ChartExecutor(kind schema.ChartKind) ExecutorFunc {
	return func(ctx context.Context, cfg *contract.Config) error {
		doc, err := loadDocument(ctx, cfg)
		if err != nil {
			return err
		}
		f := FormatterFor(cfg)
		spec, err := ChartOf(doc, kind, cfg, f)
		if err != nil {
			return err
		}
		ow := outwriter.NewOutWriter(f)
		if _, ok := cfg.Output.Visual(); ok {
			return writeVisual(spec, cfg, ow)
		}
		return ow.WriteChart(spec, PointShares(spec.Points), cfg)
	}
}

// FlowExecutor returns the executor for the 'flow <kind>' command.
func FlowExecutor(kind schema.FlowKind) ExecutorFunc {
	return func(ctx context.Context, cfg *contract.Config) error {
		doc, err := loadDocument(ctx, cfg)
		if err != nil {
			return err
		}
		f := FormatterFor(cfg)
		ow := outwriter.NewOutWriter(f)
		switch kind {
		case schema.PathsFlow:
			return ow.WritePaths(PathExploration(doc.Paths, doc.EndingPoint, doc.TotalConversions, f), cfg)
		case schema.SankeyFlow:
			return ow.WriteSankey(SankeyFlow(doc.Links, titleOf(cfg, doc, "Traffic Flow")), cfg)
		case schema.JourneysFlow:
			view := UserJourney(doc.Journeys, doc.TotalUsers, f)
			if _, ok := cfg.Output.Visual(); ok {
				return writeVisual(view.Chart, cfg, ow)
			}
			return ow.WriteJourney(view, cfg)
		default:
			return fmt.Errorf("unknown flow %q (want paths, sankey or journeys)", kind)
		}
	}
}

// TabsExecutor returns the executor for the 'tabs' command. A non-empty
// fragment overrides the document's active tab.
func TabsExecutor(fragment string) ExecutorFunc {
	return func(ctx context.Context, cfg *contract.Config) error {
		var doc schema.Document
		if cfg.InputPath != "" {
			var err error
			if doc, err = loadDocument(ctx, cfg); err != nil {
				return err
			}
		}
		nav := NavigatorFor(doc)
		if fragment != "" {
			nav.SyncFragment(fragment)
		}
		return outwriter.NewOutWriter(FormatterFor(cfg)).WriteTabs(nav.States(), cfg)
	}
}

// ExecuteFormats prints every format kind with a sample conversion.
func ExecuteFormats(ctx context.Context, cfg *contract.Config) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f := FormatterFor(cfg)
	return outwriter.NewOutWriter(f).WriteFormats(FormatExamples(f), cfg)
}

// FormatterFor returns the formatter for the configured locale.
func FormatterFor(cfg *contract.Config) *Formatter {
	if cfg == nil || cfg.Locale == language.Und {
		return defaultFormatter
	}
	return NewFormatter(cfg.Locale)
}

// BuildViewer loads doc's items into a viewer configured by cfg. An explicit
// --select list replaces the default leading selection.
func BuildViewer(doc schema.Document, cfg *contract.Config, f *Formatter) (*Viewer, error) {
	set, err := NewItemSet(doc.Items)
	if err != nil {
		return nil, err
	}
	maxSel := cfg.MaxSelections
	if maxSel <= 0 {
		maxSel = doc.MaxSelections
	}
	viewer, err := NewViewer(doc.Metrics,
		WithMaxSelections(maxSel),
		WithInitialSelections(cfg.InitialSelections),
		WithFormatter(f),
		WithTitle(titleOf(cfg, doc, "Compare Items")),
	)
	if err != nil {
		return nil, err
	}
	viewer.Load(set)
	if len(cfg.Select) > 0 {
		viewer.Select(cfg.Select)
	}
	if cfg.View != "" {
		if err := viewer.SetMode(cfg.View); err != nil {
			return nil, err
		}
	}
	contract.Debugf("viewer loaded %d candidates, %d selected, mode %s", set.Len(), viewer.Selection().Len(), viewer.Mode())
	return viewer, nil
}

// ChartOf builds the chart spec for kind from doc. Funnel charts read the
// funnel section when present and the points section otherwise.
func ChartOf(doc schema.Document, kind schema.ChartKind, cfg *contract.Config, f *Formatter) (schema.ChartSpec, error) {
	points := doc.Points
	if kind == schema.FunnelChart && len(doc.Funnel) > 0 {
		points = doc.FunnelPoints()
	}
	orientation := schema.Vertical
	if cfg.Horizontal {
		orientation = schema.Horizontal
	}
	return BuildSpec(kind, points, ChartOptions{
		Title:       titleOf(cfg, doc, ""),
		Orientation: orientation,
		Formatter:   f,
	})
}

// NavigatorFor returns a navigator over doc's tabs, or DefaultTabs when it names none.
func NavigatorFor(doc schema.Document, opts ...TabOption) *TabNavigator {
	tabs := doc.Tabs
	if len(tabs) == 0 {
		tabs = DefaultTabs
	}
	return NewTabNavigator(tabs, doc.ActiveTab, opts...)
}

func loadDocument(ctx context.Context, cfg *contract.Config) (schema.Document, error) {
	if err := ctx.Err(); err != nil {
		return schema.Document{}, err
	}
	if cfg.InputPath == "" {
		return schema.Document{}, errNoInput
	}
	return loader.FileSource{Path: cfg.InputPath}.Load()
}

func titleOf(cfg *contract.Config, doc schema.Document, fallback string) string {
	switch {
	case cfg.Title != "":
		return cfg.Title
	case doc.Title != "":
		return doc.Title
	default:
		return fallback
	}
}

// visualSpecOf picks the chart a comparison draws on a visual surface.
func visualSpecOf(view schema.View) (schema.ChartSpec, error) {
	switch {
	case view.Empty:
		return schema.ChartSpec{}, errors.New(schema.EmptySelectionMessage)
	case view.Radar != nil:
		return view.Radar.Spec, nil
	case len(view.Charts) > 0:
		if len(view.Charts) > 1 {
			contract.LogWarn("visual output", fmt.Errorf("drawing %q only, %d more chart panels skipped", view.Charts[0].Label, len(view.Charts)-1))
		}
		return view.Charts[0].Spec, nil
	case view.Mode == schema.ChartView:
		return schema.ChartSpec{}, errors.New("no numeric metrics to chart")
	default:
		return schema.ChartSpec{}, errors.New("visual output needs --view chart or --view radar")
	}
}

// writeVisual draws spec on the configured surface and writes the result.
func writeVisual(spec schema.ChartSpec, cfg *contract.Config, ow *outwriter.OutWriter) error {
	format, _ := cfg.Output.Visual()
	surface, err := render.NewSurface(format, render.DefaultSize)
	if err != nil {
		return err
	}
	chart := NewChart(surface)
	defer func() { _ = chart.Close() }()
	if err := chart.Update(spec); err != nil {
		return err
	}
	return ow.WriteCanvas(chart, cfg)
}
