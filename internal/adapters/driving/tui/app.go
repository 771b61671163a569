package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/datelens/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/datelens/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/datelens/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/datelens/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/datelens/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/datelens/internal/adapters/driving/tui/views/detail"
	"github.com/custodia-labs/datelens/internal/core/domain"
)

// statusHeight is the number of lines reserved for the status bar.
const statusHeight = 1

// App is the sentence browser following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides the extraction service and its segments.
	ports *Ports

	// ctx is the context extraction runs under.
	ctx context.Context

	styles *styles.Styles
	keymap *keymap.KeyMap

	list   *list.SentenceList
	detail *detail.View
	status *status.Bar

	// currentView tracks which view is active.
	currentView messages.ViewType

	// previousView is restored when help is closed.
	previousView messages.ViewType

	// loading is true while an extraction is running.
	loading bool

	// err holds the last extraction error.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates the first window size has arrived.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new browser with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		keymap:      km,
		list:        list.NewSentenceList(s),
		detail:      detail.NewView(s),
		status:      status.NewBar(s, km),
		currentView: messages.ViewList,
		loading:     true,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model. It starts the first extraction.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("datelens"),
		a.extract(),
	)
}

// extract runs the extraction in the background and reports the result
// as a messages.ExtractionCompleted.
func (a *App) extract() tea.Cmd {
	ctx := a.ctx
	extraction := a.ports.Extraction
	segments := a.ports.Segments
	return func() tea.Msg {
		reports, err := extraction.ExtractSegments(ctx, segments)
		return messages.ExtractionCompleted{Reports: reports, Err: err}
	}
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case messages.ExtractionCompleted:
		a.loading = false
		a.err = msg.Err
		if msg.Err != nil {
			a.status.SetState(status.StateError)
			a.status.SetMessage(msg.Err.Error())
			return a, nil
		}
		a.list.SetReports(msg.Reports)
		a.currentView = messages.ViewList
		a.syncStatus()
		return a, nil

	case messages.SentenceSelected:
		a.list.SetSelected(msg.Index)
		a.openSelected()
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	if a.currentView == messages.ViewDetail {
		var cmd tea.Cmd
		a.detail, cmd = a.detail.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	switch {
	case key.Matches(msg, a.keymap.Quit):
		return a, tea.Quit

	case key.Matches(msg, a.keymap.Help):
		if a.currentView == messages.ViewHelp {
			a.currentView = a.previousView
		} else {
			a.previousView = a.currentView
			a.currentView = messages.ViewHelp
		}
		a.syncStatus()
		return a, nil

	case key.Matches(msg, a.keymap.Back):
		switch a.currentView {
		case messages.ViewHelp:
			a.currentView = a.previousView
		case messages.ViewDetail:
			a.currentView = messages.ViewList
		case messages.ViewList:
		}
		a.syncStatus()
		return a, nil

	case key.Matches(msg, a.keymap.Reload):
		if a.loading {
			return a, nil
		}
		a.loading = true
		a.status.SetState(status.StateLoading)
		return a, a.extract()
	}

	var cmd tea.Cmd
	switch a.currentView {
	case messages.ViewList:
		if key.Matches(msg, a.keymap.Open) {
			return a, a.selectSentence()
		}
		a.list, cmd = a.list.Update(msg)
		a.syncStatus()
	case messages.ViewDetail:
		a.detail, cmd = a.detail.Update(msg)
	case messages.ViewHelp:
	}
	return a, cmd
}

// selectSentence emits a SentenceSelected for the highlighted row, or nil
// when the list is empty.
func (a *App) selectSentence() tea.Cmd {
	if a.list.SelectedReport() == nil {
		return nil
	}
	index := a.list.Selected()
	return func() tea.Msg {
		return messages.SentenceSelected{Index: index}
	}
}

// openSelected shows the selected report in the detail pane.
func (a *App) openSelected() {
	rep := a.list.SelectedReport()
	if rep == nil {
		return
	}
	a.detail.SetReport(rep)
	a.currentView = messages.ViewDetail
	a.syncStatus()
}

func (a *App) syncStatus() {
	if a.loading || a.err != nil {
		return
	}
	switch a.currentView {
	case messages.ViewDetail:
		a.status.SetState(status.StateDetail)
	case messages.ViewHelp:
		a.status.SetState(status.StateHelp)
	case messages.ViewList:
		a.status.SetState(status.StateReady)
	}
	a.status.SetCount(a.list.Count())
	a.status.SetPosition(a.list.Selected() + 1)
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	var body string
	switch a.currentView {
	case messages.ViewDetail:
		body = a.detail.View()
	case messages.ViewHelp:
		body = a.viewHelp()
	case messages.ViewList:
		body = a.viewList()
	}

	// Pin the status bar to the last line.
	lines := strings.Count(body, "\n") + 1
	if pad := a.height - statusHeight - lines; pad > 0 {
		body += strings.Repeat("\n", pad)
	}
	return body + "\n" + a.status.View()
}

func (a *App) viewList() string {
	switch {
	case a.loading && a.list.IsEmpty():
		return a.styles.Muted.Render(fmt.Sprintf("Extracting %d segment(s)...", len(a.ports.Segments)))
	case a.err != nil:
		return a.styles.Error.Render("Extraction failed: " + a.err.Error())
	default:
		return a.list.View()
	}
}

// viewHelp renders the keybindings from the keymap.
func (a *App) viewHelp() string {
	var b strings.Builder
	b.WriteString(a.styles.Title.Render("Help"))
	b.WriteString("\n\n")
	for _, group := range a.keymap.FullHelp() {
		for _, binding := range group {
			h := binding.Help()
			fmt.Fprintf(&b, "  %-10s %s\n", h.Key, h.Desc)
		}
		b.WriteByte('\n')
	}
	b.WriteString(a.styles.Muted.Render("[esc] back"))
	return b.String()
}

// Run starts the browser in the alternate screen.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Reports returns the listed reports.
func (a *App) Reports() []domain.SentenceReport {
	return a.list.Reports()
}

// Selected returns the index of the selected report.
func (a *App) Selected() int {
	return a.list.Selected()
}

// Loading reports whether an extraction is running.
func (a *App) Loading() bool {
	return a.loading
}

// Err returns the last extraction error.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has received its dimensions.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	body := max(height-statusHeight, 1)
	a.list.SetDimensions(width, body)
	a.detail.SetDimensions(width, body)
	a.status.SetWidth(width)
}
