package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/yildizm/ClinicInfo/internal/emoji"
	"github.com/yildizm/ClinicInfo/internal/report"
	"github.com/yildizm/ClinicInfo/internal/roster"
	"github.com/yildizm/go-termfmt"
)

// terminalFormatter formats output as plain text for terminal display using go-termfmt
type terminalFormatter struct {
	opts  *termfmt.TerminalOptions
	title lipgloss.Style
}

// NewTerminal creates a new terminal formatter with optional color support
func NewTerminal(color bool) Formatter {
	opts := termfmt.DefaultOptions()
	opts.Color = color
	opts.Emoji = !emoji.IsEmojiDisabled()

	title := lipgloss.NewStyle()
	if color {
		title = title.Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#0066CC", Dark: "#00D4FF"})
	}
	return &terminalFormatter{opts: opts, title: title}
}

func (f *terminalFormatter) FormatDocument(doc *report.Document) ([]byte, error) {
	var b strings.Builder

	f.writeHeader(&b, fmt.Sprintf("%s %d - %s", emoji.GetEmoji("clinic"), doc.FacilityNumber, doc.ClinicName))

	for i, section := range doc.Sections {
		b.WriteString(f.title.Render(section.Title) + "\n")

		items := make([]termfmt.TreeItem, 0, len(section.Fields))
		for j, field := range section.Fields {
			items = append(items, termfmt.TreeItem{
				Label: field.Label,
				Value: field.Value,
				Last:  j == len(section.Fields)-1,
			})
		}
		b.WriteString(termfmt.TreeViewWithOptions(items, f.opts) + "\n")
		if i < len(doc.Sections)-1 {
			b.WriteString("\n")
		}
	}

	return []byte(b.String()), nil
}

func (f *terminalFormatter) FormatOptions(title string, options []roster.Option) ([]byte, error) {
	symbol := emoji.GetEmoji("roster")
	if len(options) > 0 {
		symbol = emoji.ForLevel(options[0].Level)
	}

	labels := make([]string, 0, len(options))
	for _, o := range options {
		labels = append(labels, o.Display())
	}
	return []byte(f.list(symbol, title, labels)), nil
}

func (f *terminalFormatter) FormatClinics(clinics []*roster.Record) ([]byte, error) {
	labels := make([]string, 0, len(clinics))
	for _, rec := range clinics {
		labels = append(labels, rec.Label())
	}
	return []byte(f.list(emoji.GetEmoji("clinic"), "Clinics", labels)), nil
}

// list writes a titled tree of plain labels
func (f *terminalFormatter) list(symbol, title string, labels []string) string {
	var b strings.Builder
	b.WriteString(f.title.Render(fmt.Sprintf("%s %s (%d)", symbol, title, len(labels))) + "\n")

	if len(labels) == 0 {
		b.WriteString("└─ (none)\n")
		return b.String()
	}

	items := make([]termfmt.TreeItem, 0, len(labels))
	for i, label := range labels {
		items = append(items, termfmt.TreeItem{Label: label, Last: i == len(labels)-1})
	}
	b.WriteString(termfmt.TreeViewWithOptions(items, f.opts) + "\n")
	return b.String()
}

// writeHeader writes a boxed header sized to its display width
func (f *terminalFormatter) writeHeader(b *strings.Builder, header string) {
	width := lipgloss.Width(header)

	b.WriteString("╔" + strings.Repeat("═", width+2) + "╗\n")
	b.WriteString("║ " + header + " ║\n")
	b.WriteString("╚" + strings.Repeat("═", width+2) + "╝\n\n")
}
