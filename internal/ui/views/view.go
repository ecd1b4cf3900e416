package views

import (
	"log/slog"
	"strings"

	"namesearch/internal/domain"
)

// StatusPrefix starts the status line shown once a query exists
const StatusPrefix = "Searching for: "

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width     int
	InputView string
	Query     string
	HasQuery  bool
	Records   []domain.Record
	ShowHelp  bool
	HelpView  string
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
	logger *slog.Logger
}

// NewRenderer creates a new renderer. A nil logger selects slog.Default.
func NewRenderer(logger *slog.Logger) *Renderer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{
		styles: NewStyles(),
		logger: logger,
	}
}

// StatusText returns the status line for query, exactly as typed
func StatusText(query string) string {
	return StatusPrefix + query
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.styles.Title.Render("namesearch"))
	content.WriteString("\n")
	content.WriteString(r.styles.Input.Render(state.InputView))
	content.WriteString("\n")

	if state.HasQuery {
		content.WriteString(r.styles.Status.Render(StatusText(state.Query)))
		content.WriteString("\n")
	}

	content.WriteString("\n")
	if list := NewRecordList(state.Records, r.styles, r.logger).View(); list != "" {
		content.WriteString(list)
		content.WriteString("\n")
	}

	if state.ShowHelp && state.HelpView != "" {
		content.WriteString(r.styles.Help.Render(state.HelpView))
		content.WriteString("\n")
	}

	main := r.styles.Main
	if state.Width > 0 {
		main = main.MaxWidth(state.Width)
	}
	return main.Render(content.String())
}
