package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/yildizm/ClinicInfo/internal/emoji"
	"github.com/yildizm/ClinicInfo/internal/formatter"
	"github.com/yildizm/ClinicInfo/internal/logger"
	"github.com/yildizm/ClinicInfo/internal/navigator"
	"github.com/yildizm/ClinicInfo/internal/roster"
	"github.com/yildizm/ClinicInfo/internal/ui/components"
)

// Model is the interactive roster browser
type Model struct {
	opts   Options
	log    *logger.Logger
	styles *Styles
	format formatter.Formatter

	nav       *navigator.Navigator
	watcher   *Watcher
	reloadSeq int

	view   View
	focus  Pane
	width  int
	height int

	input      textinput.Model
	detail     viewport.Model
	detailText string
	spinner    spinner.Model
	lists      map[Pane]*components.List

	status   string
	err      error
	quitting bool
}

// NewModel creates a browser that loads opts.Path on Init
func NewModel(opts Options) *Model {
	styles := GetStyles()

	ti := textinput.New()
	ti.Placeholder = "Facility #"
	ti.Prompt = emoji.GetEmoji("search") + " "
	ti.CharLimit = 12
	ti.Width = 16

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Progress

	listStyles := components.ListStyles{
		Header:  styles.Header,
		Item:    styles.Body,
		Cursor:  styles.Header.Reverse(true),
		Muted:   styles.Muted,
		Panel:   styles.Panel,
		Focused: styles.Focused,
	}

	m := &Model{
		opts:    opts,
		log:     opts.Logger.WithComponent("ui"),
		styles:  styles,
		format:  formatter.NewTerminal(opts.Color),
		view:    ViewLoading,
		focus:   PaneInput,
		input:   ti,
		detail:  viewport.New(80, 10),
		spinner: sp,
		lists: map[Pane]*components.List{
			PaneGroups:  components.NewList("Groups", 24, 10),
			PaneRegions: components.NewList("Regions", 24, 10),
			PaneAreas:   components.NewList("Areas", 24, 10),
			PaneClinics: components.NewList("Clinics", 24, 10),
		},
	}
	for _, l := range m.lists {
		l.Styles = listStyles
	}
	m.input.Focus()
	return m
}

// Init starts the roster load
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		LoadRosterCommand(m.opts.Path, m.opts.LoadOptions),
		textinput.Blink,
	)
}

// Update handles messages and navigation
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case spinner.TickMsg:
		if m.view != ViewLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case rosterLoadedMsg:
		return m.handleRosterLoaded(msg)
	case rosterErrorMsg:
		return m.handleRosterError(msg)
	case rosterChangedMsg:
		m.reloadSeq++
		return m, tea.Batch(scheduleReload(m.reloadSeq), m.watchNext())
	case reloadMsg:
		if msg.seq != m.reloadSeq {
			return m, nil
		}
		m.status = emoji.GetEmoji("reload") + " Reloading roster..."
		return m, LoadRosterCommand(m.opts.Path, m.opts.LoadOptions)
	case watchErrorMsg:
		m.log.Warn("roster watch error: %v", msg.err)
		m.status = fmt.Sprintf("%s Watch error: %v", emoji.GetEmoji("warning"), msg.err)
		return m, m.watchNext()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the model
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.view {
	case ViewLoading:
		return m.renderLoadingScreen()
	case ViewError:
		return m.renderErrorScreen()
	case ViewHelp:
		return m.renderHelpView()
	default:
		return m.renderBrowseView()
	}
}

// Err returns the fatal load error, if any
func (m *Model) Err() error {
	return m.err
}

// Close stops the roster watcher
func (m *Model) Close() {
	m.watcher.Close()
}

func (m *Model) watchNext() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	return m.watcher.Next()
}

// handleRosterLoaded installs a loaded roster. The first load builds the
// navigator; later loads replace its roster and reset the selection.
func (m *Model) handleRosterLoaded(msg rosterLoadedMsg) (tea.Model, tea.Cmd) {
	first := m.nav == nil
	if first {
		m.nav = navigator.New(msg.roster, navigator.WithLogger(m.log.WithComponent("navigator")))
	} else {
		m.nav.Replace(msg.roster)
		m.status = fmt.Sprintf("%s Roster reloaded: %d clinics", emoji.GetEmoji("reload"), msg.roster.ClinicCount())
	}
	if m.view == ViewLoading {
		m.view = ViewBrowse
	}
	m.refresh()

	if first && m.opts.Watch {
		w, err := NewWatcher(m.opts.Path, m.log)
		if err != nil {
			m.log.Warn("roster watch disabled: %v", err)
			m.status = fmt.Sprintf("%s Watch disabled: %v", emoji.GetEmoji("warning"), err)
			return m, nil
		}
		m.watcher = w
		return m, w.Next()
	}
	return m, nil
}

// handleRosterError is fatal before the first load; afterwards the
// previous roster stays active
func (m *Model) handleRosterError(msg rosterErrorMsg) (tea.Model, tea.Cmd) {
	if m.nav == nil {
		m.log.Error("%v", msg.err)
		m.err = msg.err
		m.view = ViewError
		return m, nil
	}

	m.log.Warn("reload failed, keeping previous roster: %v", msg.err)
	m.status = fmt.Sprintf("%s Reload failed: %v", emoji.GetEmoji("error"), msg.err)
	return m, nil
}

// handleKeyPress handles keyboard input
func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		return m.handleQuit()
	}

	switch m.view {
	case ViewLoading:
		if key == "q" {
			return m.handleQuit()
		}
		return m, nil
	case ViewError:
		return m.handleQuit()
	case ViewHelp:
		switch key {
		case "q":
			return m.handleQuit()
		case "esc", "?":
			m.view = ViewBrowse
		}
		return m, nil
	}

	if m.focus == PaneInput {
		return m.handleInputKey(msg)
	}
	return m.handleListKey(key)
}

// handleInputKey handles keys while the clinic number input has focus.
// Printable keys go to the input.
func (m *Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.handleLookup()
		return m, nil
	case "esc":
		return m, m.setFocus(PaneGroups)
	case "tab":
		return m, m.setFocus(m.focus.next())
	case "shift+tab":
		return m, m.setFocus(m.focus.prev())
	case "ctrl+r":
		m.handleReset()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleListKey handles keys while one of the lists has focus
func (m *Model) handleListKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "q":
		return m.handleQuit()
	case "?":
		m.view = ViewHelp
	case "/":
		return m, m.setFocus(PaneInput)
	case "tab":
		return m, m.setFocus(m.focus.next())
	case "shift+tab":
		return m, m.setFocus(m.focus.prev())
	case "up", "k":
		m.lists[m.focus].MoveUp()
	case "down", "j":
		m.lists[m.focus].MoveDown()
	case "enter", " ":
		m.handleActivate()
	case "ctrl+r":
		m.handleReset()
	case "pgup":
		m.detail.HalfViewUp()
	case "pgdown":
		m.detail.HalfViewDown()
	}
	return m, nil
}

// handleQuit handles quit commands
func (m *Model) handleQuit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

// handleLookup looks up the typed facility number
func (m *Model) handleLookup() {
	m.handleNavError(m.nav.LookupText(m.input.Value()))
	m.refresh()
}

// handleActivate applies the item under the cursor of the focused list
func (m *Model) handleActivate() {
	item := m.lists[m.focus].GetSelectedItem()
	if item == nil {
		return
	}

	switch data := item.Data.(type) {
	case roster.Option:
		switch data.Level {
		case roster.LevelGroup:
			m.nav.SelectGroup(data.Key)
		case roster.LevelRegion:
			m.nav.SelectRegion(data.Key)
		case roster.LevelArea:
			m.nav.SelectArea(data.Key)
		}
		m.status = ""
	case *roster.Record:
		m.handleNavError(m.nav.SelectClinic(data))
	}
	m.refresh()
}

// handleNavError surfaces unexpected navigation errors. Ignorable input
// and unknown numbers are reflected by the detail pane alone.
func (m *Model) handleNavError(err error) {
	switch {
	case err == nil, navigator.IsNotFound(err):
		m.status = ""
	case navigator.IsIgnorable(err):
		m.log.Debug("lookup ignored: %v", err)
	default:
		m.log.Warn("navigation failed: %v", err)
		m.status = fmt.Sprintf("%s %v", emoji.GetEmoji("error"), err)
	}
}

// handleReset returns to the unfiltered roster
func (m *Model) handleReset() {
	m.nav.Reset()
	m.input.SetValue("")
	m.status = ""
	m.refresh()
}

func (m *Model) setFocus(p Pane) tea.Cmd {
	m.focus = p
	for pane, l := range m.lists {
		l.SetFocused(pane == p)
	}
	if p == PaneInput {
		return m.input.Focus()
	}
	m.input.Blur()
	return nil
}

func (p Pane) next() Pane {
	return (p + 1) % paneCount
}

func (p Pane) prev() Pane {
	return (p + paneCount - 1) % paneCount
}

// refresh rebuilds every list and the detail pane from the navigator and
// puts each list's cursor on the current selection
func (m *Model) refresh() {
	state := m.nav.State()

	m.setOptions(PaneGroups, roster.LevelGroup, m.nav.Groups(), state.Group)
	m.setOptions(PaneRegions, roster.LevelRegion, m.nav.Regions(), state.Region)
	m.setOptions(PaneAreas, roster.LevelArea, m.nav.Areas(), state.Area)
	m.setClinics(m.nav.Clinics(), state.Clinic)

	m.detailText = m.renderDetail()
	m.detail.SetContent(m.detailText)
	m.detail.GotoTop()
}

func (m *Model) setOptions(pane Pane, level roster.Level, options []roster.Option, current string) {
	items := make([]components.ListItem, 0, len(options)+1)
	items = append(items, components.ListItem{
		Title: level.AllLabel(),
		Icon:  emoji.ForLevel(level),
		Data:  roster.Option{Level: level, Key: roster.All, Label: level.AllLabel()},
	})
	for _, o := range options {
		title := o.Label
		if m.opts.ShowRepresentatives {
			title = o.Display()
		}
		items = append(items, components.ListItem{Title: title, Data: o})
	}

	l := m.lists[pane]
	l.SetItems(items)
	l.SelectFunc(func(item components.ListItem) bool {
		o, ok := item.Data.(roster.Option)
		return ok && o.Key == current
	})
}

func (m *Model) setClinics(clinics []*roster.Record, current int) {
	items := make([]components.ListItem, 0, len(clinics))
	for _, rec := range clinics {
		items = append(items, components.ListItem{Title: rec.Label(), Data: rec})
	}

	l := m.lists[PaneClinics]
	l.SetItems(items)
	if current != 0 {
		l.SelectFunc(func(item components.ListItem) bool {
			rec, ok := item.Data.(*roster.Record)
			return ok && rec.FacilityNumber() == current
		})
	}
}

func (m *Model) renderDetail() string {
	switch m.nav.Status() {
	case navigator.StatusFound:
		out, err := m.format.FormatDocument(m.nav.Detail())
		if err != nil {
			return m.styles.Error.Render(err.Error())
		}
		return string(out)
	case navigator.StatusNotFound:
		return m.styles.Error.Render(emoji.GetEmoji("not_found") + " Clinic not found.")
	default:
		return m.styles.Muted.Render("Enter a facility number or pick a clinic from the list.")
	}
}

// resize lays the panes out for a width x height terminal
func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height

	listWidth := max(16, width/4)
	listHeight := max(6, (height-6)*2/5)
	for _, l := range m.lists {
		l.SetSize(listWidth, listHeight)
	}

	// title, input and spacer above; detail border and footer below
	m.detail.Width = max(10, width-4)
	m.detail.Height = max(3, height-listHeight-6)
	m.input.Width = max(8, min(24, width-6))
}

func (m *Model) renderLoadingScreen() string {
	loading := lipgloss.JoinHorizontal(lipgloss.Center,
		m.spinner.View(),
		m.styles.Header.Render(" Loading roster "+filepath.Base(m.opts.Path)+"..."),
	)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, loading)
}

func (m *Model) renderErrorScreen() string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Error.Render(emoji.GetEmoji("error")+" Failed to load roster"),
		"",
		m.styles.Body.Render(fmt.Sprintf("%v", m.err)),
		"",
		m.styles.Muted.Render("Press any key to exit"),
	)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.styles.Box.Render(content))
}

func (m *Model) renderBrowseView() string {
	r := m.nav.Roster()
	header := lipgloss.JoinHorizontal(lipgloss.Top,
		m.styles.Title.Render(emoji.GetEmoji("clinic")+" ClinicInfo"),
		m.styles.Muted.Render(fmt.Sprintf("%s · %d clinics", filepath.Base(r.Path()), r.ClinicCount())),
	)

	lists := lipgloss.JoinHorizontal(lipgloss.Top,
		m.lists[PaneGroups].Render(),
		m.lists[PaneRegions].Render(),
		m.lists[PaneAreas].Render(),
		m.lists[PaneClinics].Render(),
	)

	detail := m.styles.Panel.Render(m.detail.View())

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		m.input.View(),
		"",
		lists,
		detail,
		m.renderFooter(),
	)
}

func (m *Model) renderFooter() string {
	if m.status != "" {
		return m.styles.Warning.Render(m.status)
	}

	hints := []string{
		m.styles.Key.Render("tab") + " focus",
		m.styles.Key.Render("↑/↓") + " move",
		m.styles.Key.Render("enter") + " select",
		m.styles.Key.Render("/") + " number",
		m.styles.Key.Render("ctrl+r") + " reset",
		m.styles.Key.Render("?") + " help",
		m.styles.Key.Render("q") + " quit",
	}
	return m.styles.Muted.Render(strings.Join(hints, " • "))
}

func (m *Model) renderHelpView() string {
	title := m.styles.Header.Render(emoji.GetEmoji("help") + " ClinicInfo Help")

	sections := []struct {
		heading string
		lines   []string
	}{
		{emoji.GetEmoji("search") + " Lookup:", []string{
			"  /    Focus the facility number input",
			"  Enter    Show the typed clinic",
			"  Esc    Leave the input",
		}},
		{emoji.GetEmoji("roster") + " Navigation:", []string{
			"  Tab / Shift+Tab    Cycle focus",
			"  ↑↓ or j/k    Move in the focused list",
			"  Enter    Select the item under the cursor",
			"  PgUp / PgDn    Scroll the clinic details",
			"  Ctrl+R    Reset all selections",
		}},
		{emoji.GetEmoji("door") + " Exit:", []string{
			"  q    Quit application",
			"  Ctrl+C    Force quit",
		}},
	}

	var lines []string
	for i, section := range sections {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, m.styles.Header.Render(section.heading))
		for _, line := range section.lines {
			lines = append(lines, m.styles.Muted.Render(line))
		}
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		lipgloss.JoinVertical(lipgloss.Left, lines...),
		"",
		m.styles.Warning.Render("Press Esc to go back"),
	)

	box := m.styles.Box.Width(min(max(m.width-4, 40), 80))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box.Render(content))
}

// Run runs the browser until the user quits. A roster that fails to load
// is returned as the error.
func Run(opts Options) error {
	SetColorDisabled(!opts.Color)
	model := NewModel(opts)
	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	model.Close()
	if err != nil {
		return err
	}
	if m, ok := final.(*Model); ok && m.Err() != nil {
		return m.Err()
	}
	return nil
}
