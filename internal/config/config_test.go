package config

import (
	"strings"
	"testing"

	"github.com/yildizm/ClinicInfo/internal/roster"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Version != "1.0" {
		t.Errorf("Expected version 1.0, got %s", cfg.Version)
	}
	if cfg.Roster.Sheet != roster.DefaultSheet {
		t.Errorf("Expected sheet %q, got %q", roster.DefaultSheet, cfg.Roster.Sheet)
	}
	if cfg.Roster.ClinicOrder != "numeric" {
		t.Errorf("Expected clinic order numeric, got %s", cfg.Roster.ClinicOrder)
	}
	if cfg.Output.DefaultFormat != "text" {
		t.Errorf("Expected output format text, got %s", cfg.Output.DefaultFormat)
	}
	if !cfg.UI.ShowRepresentatives {
		t.Error("Expected representatives to be shown by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config should be valid: %v", err)
	}
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid config",
			modify:  func(*Config) {},
			wantErr: false,
		},
		{
			name:    "empty sheet",
			modify:  func(c *Config) { c.Roster.Sheet = "  " },
			wantErr: true,
			errMsg:  "roster sheet must not be empty",
		},
		{
			name:    "invalid clinic order",
			modify:  func(c *Config) { c.Roster.ClinicOrder = "random" },
			wantErr: true,
			errMsg:  "invalid clinic order: random (must be one of: numeric, lexical)",
		},
		{
			name:    "lexical clinic order",
			modify:  func(c *Config) { c.Roster.ClinicOrder = "lexical" },
			wantErr: false,
		},
		{
			name:    "roster is not a workbook",
			modify:  func(c *Config) { c.Roster.Path = "clinics.csv" },
			wantErr: true,
			errMsg:  "invalid roster path",
		},
		{
			name:    "roster workbook",
			modify:  func(c *Config) { c.Roster.Path = "data/Clinics.XLSX" },
			wantErr: false,
		},
		{
			name:    "invalid output format",
			modify:  func(c *Config) { c.Output.DefaultFormat = "invalid" },
			wantErr: true,
			errMsg:  "invalid output format: invalid (must be one of: json, text, markdown, csv)",
		},
		{
			name:    "invalid color mode",
			modify:  func(c *Config) { c.Output.ColorMode = "invalid" },
			wantErr: true,
			errMsg:  "invalid color mode: invalid (must be one of: auto, always, never)",
		},
		{
			name:    "invalid theme",
			modify:  func(c *Config) { c.UI.Theme = "neon" },
			wantErr: true,
			errMsg:  "invalid theme: neon (must be one of: default, high-contrast, minimal)",
		},
		{
			name:    "empty optional fields",
			modify:  func(c *Config) { c.Output = OutputConfig{}; c.UI = UIConfig{} },
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				if err == nil {
					t.Error("Expected validation error but got none")
				} else if tt.errMsg != "" && !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("Expected error message to contain %q, got %q", tt.errMsg, err.Error())
				}
			} else if err != nil {
				t.Errorf("Unexpected validation error: %v", err)
			}
		})
	}
}

func TestConfigClinicOrder(t *testing.T) {
	tests := []struct {
		value string
		want  roster.ClinicOrder
	}{
		{"", roster.OrderNumeric},
		{"numeric", roster.OrderNumeric},
		{"lexical", roster.OrderLexical},
		{"bogus", roster.OrderNumeric},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Roster.ClinicOrder = tt.value
			if got := cfg.ClinicOrder(); got != tt.want {
				t.Errorf("ClinicOrder() = %v, want %v", got, tt.want)
			}
		})
	}
}
