// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/datelens/internal/core/domain"
)

// ExtractionCompleted carries the reports of an extraction run back to the model.
type ExtractionCompleted struct {
	Reports []domain.SentenceReport
	Err     error
}

// SentenceSelected asks the app to open the report at Index in the detail pane.
type SentenceSelected struct {
	Index int
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewList is the sentence list.
	ViewList ViewType = iota
	// ViewDetail shows the tokens and dates of one sentence.
	ViewDetail
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewList:
		return "list"
	case ViewDetail:
		return "detail"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}
