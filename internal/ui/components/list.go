package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ListItem represents an item in a list
type ListItem struct {
	Title string
	Icon  string
	Data  any // roster.Option or *roster.Record
}

// ListStyles are the styles a list renders with
type ListStyles struct {
	Header  lipgloss.Style
	Item    lipgloss.Style
	Cursor  lipgloss.Style
	Muted   lipgloss.Style
	Panel   lipgloss.Style
	Focused lipgloss.Style
}

// DefaultListStyles returns the styles used when none are given
func DefaultListStyles() ListStyles {
	primaryColor := lipgloss.AdaptiveColor{Light: "#3B82F6", Dark: "#60A5FA"}
	secondaryColor := lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}
	selectedColor := lipgloss.AdaptiveColor{Light: "#DBEAFE", Dark: "#1E3A8A"}

	return ListStyles{
		Header:  lipgloss.NewStyle().Foreground(primaryColor).Bold(true),
		Item:    lipgloss.NewStyle(),
		Cursor:  lipgloss.NewStyle().Background(selectedColor).Foreground(primaryColor).Bold(true),
		Muted:   lipgloss.NewStyle().Foreground(secondaryColor),
		Panel:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(secondaryColor),
		Focused: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(primaryColor),
	}
}

// List represents a navigable list component
type List struct {
	Title    string
	Items    []ListItem
	Selected int
	Focused  bool
	Width    int
	Height   int
	Styles   ListStyles
}

// NewList creates a new list component
func NewList(title string, width, height int) *List {
	return &List{
		Title:  title,
		Width:  width,
		Height: height,
		Styles: DefaultListStyles(),
	}
}

// SetItems replaces the items and moves the cursor to the top
func (l *List) SetItems(items []ListItem) {
	l.Items = items
	l.Selected = 0
}

// SetFocused sets the focus state of the list
func (l *List) SetFocused(focused bool) {
	l.Focused = focused
}

// SetSize sets the outer size of the list panel
func (l *List) SetSize(width, height int) {
	l.Width = width
	l.Height = height
}

// GetSelectedItem returns the item under the cursor
func (l *List) GetSelectedItem() *ListItem {
	if l.Selected < 0 || l.Selected >= len(l.Items) {
		return nil
	}
	return &l.Items[l.Selected]
}

// SelectFunc moves the cursor to the first item match accepts. It reports
// whether one was found; otherwise the cursor stays where it was.
func (l *List) SelectFunc(match func(ListItem) bool) bool {
	for i, item := range l.Items {
		if match(item) {
			l.Selected = i
			return true
		}
	}
	return false
}

// MoveUp moves selection up
func (l *List) MoveUp() {
	if l.Selected > 0 {
		l.Selected--
	}
}

// MoveDown moves selection down
func (l *List) MoveDown() {
	if l.Selected < len(l.Items)-1 {
		l.Selected++
	}
}

// Render renders the list
func (l *List) Render() string {
	content := []string{
		l.Styles.Header.Render(fmt.Sprintf("%s (%d)", l.Title, len(l.Items))),
	}

	// title row plus the panel border
	maxVisible := l.Height - 3
	if maxVisible < 1 {
		maxVisible = 1
	}

	startIndex := 0
	if l.Selected >= maxVisible {
		startIndex = l.Selected - maxVisible + 1
	}

	endIndex := startIndex + maxVisible
	if endIndex > len(l.Items) {
		endIndex = len(l.Items)
	}

	if len(l.Items) == 0 {
		content = append(content, l.Styles.Muted.Render("(none)"))
	}

	for i := startIndex; i < endIndex; i++ {
		content = append(content, l.renderItem(&l.Items[i], i == l.Selected))
	}

	joined := lipgloss.JoinVertical(lipgloss.Left, content...)

	panel := l.Styles.Panel
	if l.Focused {
		panel = l.Styles.Focused
	}
	return panel.Width(l.innerWidth()).Height(l.Height - 2).Render(joined)
}

// renderItem renders a single list item truncated to the panel width
func (l *List) renderItem(item *ListItem, selected bool) string {
	line := item.Title
	if item.Icon != "" {
		line = item.Icon + " " + line
	}
	line = truncate(line, l.innerWidth())

	style := l.Styles.Item
	if selected && l.Focused {
		style = l.Styles.Cursor
	} else if selected {
		style = l.Styles.Header
	}
	return style.Render(line)
}

func (l *List) innerWidth() int {
	if l.Width < 4 {
		return 1
	}
	return l.Width - 2
}

func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return strings.TrimRight(string(runes), " ") + "…"
}
