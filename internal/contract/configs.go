package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/huangsam/compareview/schema"
	"golang.org/x/text/language"
)

// Default values for configuration.
const (
	DefaultLocale = "en-US"
	MaxSelections = 50 // upper bound accepted for --max-selections
)

// ProfileConfig holds profiling settings.
type ProfileConfig struct {
	Enabled bool
	Prefix  string
}

// Config holds the runtime configuration for a command.
// This struct remains the "final, validated" config.
type Config struct {
	InputPath string

	MaxSelections     int
	InitialSelections int
	View              schema.ViewMode
	Select            []string // explicit initial selection, overrides InitialSelections
	Title             string

	Output     schema.OutputMode
	OutputFile string
	Locale     language.Tag
	Width      int  // Terminal width override (0 = auto-detect)
	Horizontal bool // Draw bar charts horizontally
	Watch      bool // Reload the input file on change (browse only)

	UseColors bool // Enable colored labels in table output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	InputPathStr string

	// --- Fields from rootCmd.PersistentFlags() ---
	MaxSelections     int    `mapstructure:"max-selections"`
	DefaultSelections int    `mapstructure:"default-selections"`
	View              string `mapstructure:"view"`
	Select            string `mapstructure:"select"`
	Title             string `mapstructure:"title"`
	Output            string `mapstructure:"output"`
	OutputFile        string `mapstructure:"output-file"`
	Format            string `mapstructure:"format"`
	Locale            string `mapstructure:"locale"`
	Width             int    `mapstructure:"width"`
	Color             string `mapstructure:"color"`

	// --- Fields from chartCmd.Flags() ---
	Horizontal bool `mapstructure:"horizontal"`

	// --- Fields from browseCmd.Flags() ---
	Watch bool `mapstructure:"watch"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.Select != nil {
		clone.Select = make([]string, len(c.Select))
		copy(clone.Select, c.Select)
	}
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processSelection(cfg, input); err != nil {
		return err
	}
	if err := processOutput(cfg, input); err != nil {
		return err
	}
	if err := resolveInputPath(cfg, input); err != nil {
		return err
	}
	return nil
}

// validateSimpleInputs processes and validates the fields that need no lookups.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.Title = strings.TrimSpace(input.Title)
	cfg.Horizontal = input.Horizontal
	cfg.Watch = input.Watch

	if input.Width < 0 {
		return fmt.Errorf("width cannot be negative (received %d)", input.Width)
	}
	cfg.Width = input.Width

	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	locale := input.Locale
	if locale == "" {
		locale = DefaultLocale
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return fmt.Errorf("invalid locale '%s': %w", input.Locale, err)
	}
	cfg.Locale = tag

	cfg.View = schema.ViewMode(strings.ToLower(input.View))
	if cfg.View == "" {
		cfg.View = schema.TableView
	}
	if _, ok := schema.ValidViewModes[cfg.View]; !ok {
		return fmt.Errorf("invalid view '%s'. must be table, chart, radar", input.View)
	}
	return nil
}

// processSelection validates the selection bounds.
func processSelection(cfg *Config, input *ConfigRawInput) error {
	if input.MaxSelections <= 0 || input.MaxSelections > MaxSelections {
		return fmt.Errorf("max-selections must be greater than 0 and cannot exceed %d (received %d)", MaxSelections, input.MaxSelections)
	}
	cfg.MaxSelections = input.MaxSelections

	if input.DefaultSelections < 0 {
		return fmt.Errorf("default-selections cannot be negative (received %d)", input.DefaultSelections)
	}
	cfg.InitialSelections = min(input.DefaultSelections, cfg.MaxSelections)

	cfg.Select = SplitList(input.Select)
	if len(cfg.Select) > cfg.MaxSelections {
		return fmt.Errorf("--select names %d items but max-selections is %d", len(cfg.Select), cfg.MaxSelections)
	}
	return nil
}

// processOutput resolves the output mode. A --format value picks the chart
// surface and takes precedence over --output.
func processOutput(cfg *Config, input *ConfigRawInput) error {
	cfg.OutputFile = input.OutputFile

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if cfg.Output == "" {
		cfg.Output = schema.TextOut
	}
	if input.Format != "" {
		visual := schema.VisualFormat(strings.ToLower(input.Format))
		if _, ok := schema.ValidVisualFormats[visual]; !ok {
			return fmt.Errorf("invalid format '%s'. must be html, svg, png", input.Format)
		}
		cfg.Output = schema.OutputMode(visual)
	}
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet, html, svg, png", input.Output)
	}
	if (cfg.Output == schema.ParquetOut || cfg.Output == schema.PNGOut) && cfg.OutputFile == "" {
		return fmt.Errorf("%s output is binary and requires --output-file", cfg.Output)
	}
	return nil
}

// resolveInputPath makes the positional input path absolute and checks its extension.
// An empty path is allowed for commands that need no document.
func resolveInputPath(cfg *Config, input *ConfigRawInput) error {
	if input.InputPathStr == "" {
		cfg.InputPath = ""
		return nil
	}
	abs, err := filepath.Abs(input.InputPathStr)
	if err != nil {
		return err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("cannot read input %q: %w", input.InputPathStr, err)
	}
	if info.IsDir() {
		return fmt.Errorf("input %q is a directory", input.InputPathStr)
	}
	switch strings.ToLower(filepath.Ext(abs)) {
	case ".yaml", ".yml", ".json":
	default:
		return fmt.Errorf("input %q must be .yaml, .yml or .json", input.InputPathStr)
	}
	cfg.InputPath = filepath.Clean(abs)
	return nil
}

// ProcessProfilingConfig handles the profiling flag and sets up profiling configuration.
func ProcessProfilingConfig(profile *ProfileConfig, profilePrefix string) error {
	if profilePrefix != "" {
		profile.Enabled = true
		profile.Prefix = profilePrefix
	}
	return nil
}
