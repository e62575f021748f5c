package config

import (
	"fmt"
	"strings"

	"github.com/yildizm/ClinicInfo/internal/roster"
)

// Config holds the complete application configuration
type Config struct {
	Version string       `yaml:"version" json:"version"`
	Roster  RosterConfig `yaml:"roster" json:"roster"`
	Output  OutputConfig `yaml:"output" json:"output"`
	UI      UIConfig     `yaml:"ui" json:"ui"`
}

// RosterConfig configures where and how the clinic roster is read
type RosterConfig struct {
	Path        string `yaml:"path" json:"path"`                 // workbook path
	Sheet       string `yaml:"sheet" json:"sheet"`               // sheet holding the roster
	ClinicOrder string `yaml:"clinic_order" json:"clinic_order"` // numeric|lexical
	Watch       bool   `yaml:"watch" json:"watch"`               // reload when the workbook changes
}

// OutputConfig configures output formatting and display
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format" json:"default_format"` // text|json|markdown|csv
	ColorMode     string `yaml:"color_mode" json:"color_mode"`         // auto|always|never
	Verbose       bool   `yaml:"verbose" json:"verbose"`               // default verbosity
}

// UIConfig configures the interactive browser
type UIConfig struct {
	Theme               string `yaml:"theme" json:"theme"`                                 // default|high-contrast|minimal
	ShowRepresentatives bool   `yaml:"show_representatives" json:"show_representatives"` // show GVP/RVP/DO next to list entries
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Version: "1.0",
		Roster: RosterConfig{
			Path:        "",
			Sheet:       roster.DefaultSheet,
			ClinicOrder: "numeric",
			Watch:       false,
		},
		Output: OutputConfig{
			DefaultFormat: "text",
			ColorMode:     "auto",
			Verbose:       false,
		},
		UI: UIConfig{
			Theme:               "default",
			ShowRepresentatives: true,
		},
	}
}

// ClinicOrder returns the parsed clinic sort order
func (c *Config) ClinicOrder() roster.ClinicOrder {
	order, err := roster.ParseClinicOrder(c.Roster.ClinicOrder)
	if err != nil {
		return roster.OrderNumeric
	}
	return order
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.validateRosterConfig(); err != nil {
		return err
	}
	if err := c.validateOutputConfig(); err != nil {
		return err
	}
	if err := c.validateUIConfig(); err != nil {
		return err
	}
	return nil
}

// validateRosterConfig validates roster-related configuration
func (c *Config) validateRosterConfig() error {
	if strings.TrimSpace(c.Roster.Sheet) == "" {
		return fmt.Errorf("roster sheet must not be empty")
	}
	if _, err := roster.ParseClinicOrder(c.Roster.ClinicOrder); err != nil {
		return err
	}
	if c.Roster.Path != "" {
		if err := validateRosterPath(c.Roster.Path); err != nil {
			return fmt.Errorf("invalid roster path: %w", err)
		}
	}
	return nil
}

// validateOutputConfig validates output-related configuration
func (c *Config) validateOutputConfig() error {
	if c.Output.DefaultFormat != "" {
		validFormats := map[string]bool{
			"json":     true,
			"text":     true,
			"markdown": true,
			"csv":      true,
		}
		if !validFormats[c.Output.DefaultFormat] {
			return fmt.Errorf("invalid output format: %s (must be one of: json, text, markdown, csv)", c.Output.DefaultFormat)
		}
	}
	if c.Output.ColorMode != "" {
		validColorModes := map[string]bool{
			"auto":   true,
			"always": true,
			"never":  true,
		}
		if !validColorModes[c.Output.ColorMode] {
			return fmt.Errorf("invalid color mode: %s (must be one of: auto, always, never)", c.Output.ColorMode)
		}
	}
	return nil
}

// validateUIConfig validates UI-related configuration
func (c *Config) validateUIConfig() error {
	if c.UI.Theme != "" {
		validThemes := map[string]bool{
			"default":       true,
			"high-contrast": true,
			"minimal":       true,
		}
		if !validThemes[c.UI.Theme] {
			return fmt.Errorf("invalid theme: %s (must be one of: default, high-contrast, minimal)", c.UI.Theme)
		}
	}
	return nil
}
