package ui

import (
	"github.com/yildizm/ClinicInfo/internal/logger"
	"github.com/yildizm/ClinicInfo/internal/roster"
)

// View represents different UI views
type View int

const (
	ViewLoading View = iota
	ViewBrowse
	ViewHelp
	ViewError
)

// Pane is a focusable region of the browse view
type Pane int

const (
	PaneInput Pane = iota
	PaneGroups
	PaneRegions
	PaneAreas
	PaneClinics
	paneCount
)

// String returns the pane name
func (p Pane) String() string {
	switch p {
	case PaneInput:
		return "input"
	case PaneGroups:
		return "groups"
	case PaneRegions:
		return "regions"
	case PaneAreas:
		return "areas"
	case PaneClinics:
		return "clinics"
	default:
		return "unknown"
	}
}

// Options configures the browser
type Options struct {
	// Path is the roster workbook
	Path        string
	LoadOptions []roster.LoadOption
	// Watch reloads the roster when the workbook changes
	Watch               bool
	ShowRepresentatives bool
	Color               bool
	Logger              *logger.Logger
}
