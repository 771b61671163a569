// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/datelens/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/datelens/internal/core/domain"
)

// linesPerRow is the height of one rendered report: sentence plus dates line.
const linesPerRow = 2

// SentenceList displays date-bearing sentences in a navigable list.
type SentenceList struct {
	reports  []domain.SentenceReport
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewSentenceList creates a new sentence list component.
func NewSentenceList(s *styles.Styles) *SentenceList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &SentenceList{
		styles: s,
		width:  80,
		height: 10,
	}
}

// Init initialises the list.
func (l *SentenceList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (l *SentenceList) Update(msg tea.Msg) (*SentenceList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			l.MoveUp()
		case "down", "j":
			l.MoveDown()
		case "home", "g":
			l.SetSelected(0)
		case "end", "G":
			l.SetSelected(len(l.reports) - 1)
		}
	}
	return l, nil
}

// View renders the visible window of the list.
func (l *SentenceList) View() string {
	if len(l.reports) == 0 {
		return l.styles.Muted.Render("No date-bearing sentences")
	}

	visible := (l.height - 2) / linesPerRow
	if visible < 1 {
		visible = 1
	}

	start := 0
	if l.selected >= visible {
		start = l.selected - visible + 1
	}
	end := min(start+visible, len(l.reports))

	lines := make([]string, 0, (end-start)*linesPerRow+2)
	lines = append(lines, l.styles.Title.Render(fmt.Sprintf("Sentences (%d)", len(l.reports))), "")
	for i := start; i < end; i++ {
		lines = append(lines, l.renderRow(i, &l.reports[i]))
	}

	return strings.Join(lines, "\n")
}

// renderRow formats one report as a sentence line and a dates line.
func (l *SentenceList) renderRow(index int, rep *domain.SentenceReport) string {
	indicator := "  "
	if index == l.selected {
		indicator = "> "
	}

	label := fmt.Sprintf("%s%06d  %s", indicator, rep.Index, Truncate(rep.Result.Sentence, l.width-12))
	var row string
	if index == l.selected {
		row = l.styles.Selected.Render(label)
	} else {
		row = l.styles.Normal.Render(label)
	}

	entries := rep.Result.Dates.Entries()
	parts := make([]string, len(entries))
	for i, e := range entries {
		parts[i] = l.styles.Offset(e.Date.DayOffset).Render(fmt.Sprintf("%s (%+d)", e.Date.Date, e.Date.DayOffset))
	}
	source := ""
	if rep.Segment != "" {
		source = l.styles.Muted.Render("  " + rep.Segment)
	}

	return row + "\n          " + strings.Join(parts, " ") + source
}

// Truncate shortens s to at most width runes, marking the cut with "...".
func Truncate(s string, width int) string {
	if width < 10 {
		width = 10
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-3]) + "..."
}

// SetReports replaces the list contents and resets the selection.
func (l *SentenceList) SetReports(reports []domain.SentenceReport) {
	l.reports = reports
	l.selected = 0
}

// Reports returns the current reports.
func (l *SentenceList) Reports() []domain.SentenceReport {
	return l.reports
}

// Selected returns the index of the selected report.
func (l *SentenceList) Selected() int {
	return l.selected
}

// SetSelected sets the selected index, ignoring out-of-range values.
func (l *SentenceList) SetSelected(index int) {
	if index >= 0 && index < len(l.reports) {
		l.selected = index
	}
}

// SelectedReport returns the currently selected report, or nil if none.
func (l *SentenceList) SelectedReport() *domain.SentenceReport {
	if len(l.reports) == 0 || l.selected < 0 || l.selected >= len(l.reports) {
		return nil
	}
	return &l.reports[l.selected]
}

// MoveUp moves selection up.
func (l *SentenceList) MoveUp() {
	if l.selected > 0 {
		l.selected--
	}
}

// MoveDown moves selection down.
func (l *SentenceList) MoveDown() {
	if l.selected < len(l.reports)-1 {
		l.selected++
	}
}

// SetDimensions sets the component dimensions.
func (l *SentenceList) SetDimensions(width, height int) {
	l.width = width
	l.height = height
}

// Count returns the number of reports.
func (l *SentenceList) Count() int {
	return len(l.reports)
}

// IsEmpty returns whether the list is empty.
func (l *SentenceList) IsEmpty() bool {
	return len(l.reports) == 0
}
