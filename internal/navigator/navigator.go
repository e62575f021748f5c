// Package navigator keeps the Group → Region → Area → Clinic drill-down
// consistent. It owns the selection state and the four option lists; the
// presentation layer only reads them and forwards user actions.
package navigator

import (
	"fmt"
	"slices"
	"strings"

	"github.com/yildizm/ClinicInfo/internal/logger"
	"github.com/yildizm/ClinicInfo/internal/report"
	"github.com/yildizm/ClinicInfo/internal/roster"
)

// Status describes what the detail view currently shows
type Status int

const (
	StatusEmpty Status = iota
	StatusFound
	StatusNotFound
)

// State is the current selection. Each level is roster.All or a
// normalized key; Clinic is 0 when no clinic is selected.
type State struct {
	Group  string
	Region string
	Area   string
	Clinic int
}

// Navigator owns the selection state over one roster
type Navigator struct {
	roster *roster.Roster
	log    *logger.Logger

	state   State
	groups  []roster.Option
	regions []roster.Option
	areas   []roster.Option
	clinics []*roster.Record

	status  Status
	detail  *report.Document
	missing int
}

// Option configures a Navigator
type Option func(*Navigator)

// WithLogger sets the navigator's logger
func WithLogger(l *logger.Logger) Option {
	return func(n *Navigator) {
		n.log = l
	}
}

// New creates a navigator in the initial (All, All, All) state
func New(r *roster.Roster, opts ...Option) *Navigator {
	n := &Navigator{roster: r}
	for _, opt := range opts {
		opt(n)
	}
	n.Reset()
	return n
}

// Roster returns the roster being navigated
func (n *Navigator) Roster() *roster.Roster {
	return n.roster
}

// State returns the current selection
func (n *Navigator) State() State {
	return n.state
}

func (n *Navigator) Groups() []roster.Option {
	return slices.Clone(n.groups)
}

func (n *Navigator) Regions() []roster.Option {
	return slices.Clone(n.regions)
}

func (n *Navigator) Areas() []roster.Option {
	return slices.Clone(n.areas)
}

func (n *Navigator) Clinics() []*roster.Record {
	return slices.Clone(n.clinics)
}

// Status returns what the detail view shows
func (n *Navigator) Status() Status {
	return n.status
}

// Detail returns the rendered clinic, nil unless Status is StatusFound
func (n *Navigator) Detail() *report.Document {
	return n.detail
}

// Missing returns the number of the last failed lookup while Status is
// StatusNotFound
func (n *Navigator) Missing() int {
	return n.missing
}

// SelectGroup filters by group and clears the region and area selections
func (n *Navigator) SelectGroup(group string) {
	group = roster.Normalize(group)
	n.state = State{Group: group}
	n.regions = n.roster.Regions(group)
	n.areas = n.roster.Areas(group, roster.All)
	n.clinics = n.roster.Clinics(group, roster.All, roster.All)
	n.log.Debug("group selected: %q (%d regions, %d clinics)", group, len(n.regions), len(n.clinics))
}

// SelectRegion filters by region within the current group and clears the
// area selection
func (n *Navigator) SelectRegion(region string) {
	region = roster.Normalize(region)
	n.state.Region = region
	n.state.Area = roster.All
	n.state.Clinic = 0
	n.areas = n.roster.Areas(n.state.Group, region)
	n.clinics = n.roster.Clinics(n.state.Group, region, roster.All)
	n.log.Debug("region selected: %q (%d areas, %d clinics)", region, len(n.areas), len(n.clinics))
}

// SelectArea filters the clinic list by area within the current group and
// region
func (n *Navigator) SelectArea(area string) {
	area = roster.Normalize(area)
	n.state.Area = area
	n.state.Clinic = 0
	n.clinics = n.roster.Clinics(n.state.Group, n.state.Region, area)
	n.log.Debug("area selected: %q (%d clinics)", area, len(n.clinics))
}

// LookupNumber shows clinic number and moves the Group, Region and Area
// selections onto the clinic's own keys. The lookup ignores the current
// filters. An unknown number returns *NotFoundError and leaves the
// selection and lists untouched.
func (n *Navigator) LookupNumber(number int) error {
	rec, ok := n.roster.Find(number)
	if !ok {
		n.status = StatusNotFound
		n.detail = nil
		n.missing = number
		n.log.DebugWithFields("clinic not found", []logger.Field{logger.Facility(number)})
		return &NotFoundError{Number: number}
	}

	n.detail = report.Render(rec)
	n.status = StatusFound
	n.missing = 0
	n.follow(rec)
	n.state.Clinic = number
	return nil
}

// follow selects rec's keys level by level. A key that the level does not
// offer leaves that level at All.
func (n *Navigator) follow(rec *roster.Record) {
	group := rec.Key(roster.LevelGroup)
	if !offered(n.groups, group) {
		group = roster.All
	}
	n.SelectGroup(group)

	if region := rec.Key(roster.LevelRegion); offered(n.regions, region) {
		n.SelectRegion(region)
	}
	if area := rec.Key(roster.LevelArea); offered(n.areas, area) {
		n.SelectArea(area)
	}
}

func offered(options []roster.Option, key string) bool {
	if key == roster.All {
		return false
	}
	return slices.ContainsFunc(options, func(o roster.Option) bool { return o.Key == key })
}

// LookupText handles typed lookup input. Blank or non-numeric text returns
// ErrEmptyInput or ErrInvalidInput without touching any state. Any integer,
// including zero and negatives, goes to LookupNumber and can be not found.
func (n *Navigator) LookupText(text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return ErrEmptyInput
	}
	number, ok := roster.ParseNumber(text)
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidInput, text)
	}
	return n.LookupNumber(number)
}

// SelectClinic shows a clinic picked from the clinic list
func (n *Navigator) SelectClinic(rec *roster.Record) error {
	if rec == nil || !rec.Selectable() {
		return ErrEmptyInput
	}
	return n.LookupNumber(rec.FacilityNumber())
}

// Reset returns to (All, All, All), clears the detail view and rebuilds
// every list from the whole roster
func (n *Navigator) Reset() {
	n.state = State{}
	n.status = StatusEmpty
	n.detail = nil
	n.missing = 0
	n.groups = n.roster.Groups()
	n.regions = n.roster.Regions(roster.All)
	n.areas = n.roster.Areas(roster.All, roster.All)
	n.clinics = n.roster.Clinics(roster.All, roster.All, roster.All)
}

// Replace swaps in a newly loaded roster and resets
func (n *Navigator) Replace(r *roster.Roster) {
	n.roster = r
	n.Reset()
	n.log.InfoWithFields("roster replaced", []logger.Field{
		logger.Path(r.Path()),
		logger.Count(r.Len()),
	})
}
