// Package detail provides the sentence detail pane: the full sentence,
// its tagged tokens and the resolved dates with their offsets.
package detail

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/datelens/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/datelens/internal/core/domain"
	"github.com/custodia-labs/datelens/internal/report"
)

// headerHeight is the number of lines above the scrolling body.
const headerHeight = 2

// View renders one sentence report in a scrollable viewport.
type View struct {
	styles   *styles.Styles
	viewport viewport.Model
	report   *domain.SentenceReport
	width    int
	height   int
}

// NewView creates a detail view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:   s,
		viewport: viewport.New(80, 20),
		width:    80,
		height:   20,
	}
}

// SetReport shows rep and scrolls to the top.
func (v *View) SetReport(rep *domain.SentenceReport) {
	v.report = rep
	v.viewport.SetContent(v.body())
	v.viewport.GotoTop()
}

// Report returns the displayed report, or nil.
func (v *View) Report() *domain.SentenceReport {
	return v.report
}

// SetDimensions resizes the view and re-wraps the content.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.viewport.Width = width
	v.viewport.Height = max(height-headerHeight, 1)
	if v.report != nil {
		v.viewport.SetContent(v.body())
	}
}

// Update scrolls the viewport.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

// View renders the header and the visible part of the body.
func (v *View) View() string {
	if v.report == nil {
		return v.styles.Muted.Render("No sentence selected")
	}

	title := v.styles.Title.Render(fmt.Sprintf("Sentence %06d", v.report.Index))
	if src := source(v.report); src != "" {
		title += v.styles.Muted.Render("  " + src)
	}
	return title + "\n\n" + v.viewport.View()
}

func source(rep *domain.SentenceReport) string {
	switch {
	case rep.Segment != "" && rep.DocumentURI != "":
		return rep.Segment + " / " + rep.DocumentURI
	case rep.DocumentURI != "":
		return rep.DocumentURI
	default:
		return rep.Segment
	}
}

// body renders the scrollable content.
func (v *View) body() string {
	rep := v.report
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Width(max(v.width-2, 20)).Render(rep.Result.Sentence))
	b.WriteString("\n\n")

	b.WriteString(v.styles.Title.Render("Dates"))
	b.WriteByte('\n')
	for _, e := range rep.Result.Dates.Entries() {
		fmt.Fprintf(&b, "  %s  %s  %s  %s\n",
			v.styles.Muted.Render(e.ID),
			v.styles.Date.Render(fmt.Sprintf("%-20s", e.Date.Date.Long())),
			v.styles.Muted.Render(fmt.Sprintf("%q [%d:%d]", e.Date.Text, e.Date.Span.Start, e.Date.Span.End)),
			v.styles.Offset(e.Date.DayOffset).Render(report.OffsetPhrase(e.Date.DayOffset, rep.Result.Epoch)),
		)
	}

	b.WriteByte('\n')
	b.WriteString(v.styles.Title.Render("Tokens"))
	b.WriteByte('\n')
	col := 0
	for _, tok := range rep.Result.Tokens {
		col = max(col, len([]rune(tok.Text)))
	}
	for _, tok := range rep.Result.Tokens {
		text := fmt.Sprintf("%-*s", col, tok.Text)
		if tok.Tag == domain.DateTag {
			text = v.styles.Date.Render(text)
		}
		fmt.Fprintf(&b, "  %s  %s\n", text, v.styles.Tag.Render(tok.Tag))
	}

	return b.String()
}
