package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/datelens/internal/core/domain"
)

const longDateColumn = 20

var (
	dividerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED"))
	dateStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#06B6D4"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))
)

// TextRenderer prints one block per sentence: a numbered divider, the
// sentence, its tagged tokens and one line per resolved date.
type TextRenderer struct {
	width  int
	styled bool
}

// NewTextRenderer creates a text renderer. Widths below the divider label
// length fall back to domain.DefaultReportWidth.
func NewTextRenderer(opts Options) *TextRenderer {
	width := opts.Width
	if width <= 0 {
		width = domain.DefaultReportWidth
	}
	return &TextRenderer{width: width, styled: opts.Styled}
}

// Render writes every report in order.
func (r *TextRenderer) Render(w io.Writer, reports []domain.SentenceReport) error {
	for _, rep := range reports {
		if _, err := io.WriteString(w, r.Block(rep)); err != nil {
			return err
		}
	}
	return nil
}

// Block formats a single report.
func (r *TextRenderer) Block(rep domain.SentenceReport) string {
	var b strings.Builder

	b.WriteString(r.style(dividerStyle, Divider(fmt.Sprintf("Sentence: %06d", rep.Index), '=', r.width)))
	b.WriteByte('\n')
	b.WriteString(rep.Result.Sentence)
	b.WriteByte('\n')
	b.WriteString(r.tokens(rep.Result.Tokens))
	b.WriteString("\n\n")

	for _, entry := range rep.Result.Dates.Entries() {
		b.WriteString(r.style(dateStyle, padRight(entry.Date.Date.Long(), longDateColumn)))
		b.WriteString(OffsetPhrase(entry.Date.DayOffset, rep.Result.Epoch))
		b.WriteByte('\n')
	}
	b.WriteByte('\n')

	return b.String()
}

func (r *TextRenderer) tokens(tokens []domain.TaggedToken) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		part := fmt.Sprintf("(%q, %s)", tok.Text, tok.Tag)
		if tok.Tag == domain.DateTag {
			part = r.style(dateStyle, part)
		} else {
			part = r.style(mutedStyle, part)
		}
		parts[i] = part
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func (r *TextRenderer) style(s lipgloss.Style, text string) string {
	if !r.styled {
		return text
	}
	return s.Render(text)
}

// Divider centres label, padded with one space each side, in a line of
// fill characters. An odd margin puts the extra fill on the left when width
// is also odd and on the right otherwise.
func Divider(label string, fill rune, width int) string {
	if label != "" {
		label = " " + label + " "
	}
	margin := width - len([]rune(label))
	if margin <= 0 {
		return label
	}
	left := margin/2 + (margin & width & 1)
	return strings.Repeat(string(fill), left) + label + strings.Repeat(string(fill), margin-left)
}

// OffsetPhrase describes a day offset relative to epoch, e.g.
// "3 days since September 03, 1783" or "684 days until September 03, 1783".
func OffsetPhrase(offset int, epoch domain.CalendarDate) string {
	if offset < 0 {
		return fmt.Sprintf("%d days until %s", -offset, epoch.Long())
	}
	return fmt.Sprintf("%d days since %s", offset, epoch.Long())
}

func padRight(s string, width int) string {
	if n := len([]rune(s)); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
