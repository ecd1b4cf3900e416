package ui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"namesearch/internal/config"
	"namesearch/internal/domain"
	"namesearch/internal/eventbus"
	"namesearch/internal/ui/input"
	"namesearch/internal/ui/logic"
	"namesearch/internal/ui/state"
	"namesearch/internal/ui/views"
)

// Model is the root of the UI. It owns the seed list and the query and
// result state, and is the only writer of that state.
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	state  *state.AppState
	logger *slog.Logger

	width  int
	height int
	help   help.Model
	keys   keyMap

	filter   *logic.RecordFilter
	search   *input.SearchInput
	renderer *views.Renderer

	inPagerMode bool
	helpOps     *HelpOps

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates the root model over the seed records
func NewModel(bus eventbus.EventBus, cfg *config.Config, logger *slog.Logger) *Model {
	return NewModelWithRecords(bus, cfg, logger, domain.SeedRecords())
}

// NewModelWithRecords creates the root model over an explicit record list
func NewModelWithRecords(bus eventbus.EventBus, cfg *config.Config, logger *slog.Logger, records []domain.Record) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = slog.Default()
	}
	if bus == nil {
		bus = eventbus.NewWithLogger(logger)
	}

	m := &Model{
		bus:      bus,
		config:   cfg,
		state:    state.NewAppState(records),
		logger:   logger,
		help:     help.New(),
		keys:     defaultKeyMap(),
		filter:   logic.NewRecordFilter(records),
		renderer: views.NewRenderer(logger),
		helpOps:  NewHelpOps(nil),
	}
	m.search = input.New(m.onType)

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps = NewHelpOps(p)
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	m.bus.Publish(eventbus.AppReadyEvent{RecordCount: len(m.state.Seed)})
	return textinput.Blink
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.logger.Info("quit requested", "key", msg.String())
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			if m.program == nil {
				return m, nil
			}
			return m, m.fetchHelpPager(renderHelpContent())
		}
		// Everything else edits the search field; onType runs inside this call
		return m, m.search.Update(msg)

	case helpPagerMsg:
		if msg.err != nil {
			// Pager failed: log only; do not surface in the UI
			m.logger.Error("help pager failed", "err", msg.err)
		}
		m.bus.Publish(eventbus.HelpPagerClosedEvent{Err: msg.err})
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil
	}

	// Cursor blink and friends
	return m, m.search.Update(msg)
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}

	return m.renderer.Render(views.ViewState{
		Width:     m.width,
		InputView: m.search.View(),
		Query:     m.state.Query,
		HasQuery:  m.state.HasQuery,
		Records:   m.state.Displayed(),
		ShowHelp:  m.config.UISettings.ShowHelp,
		HelpView:  m.help.View(m.keys),
	})
}

// onType is the search field's callback: one filter step per input event
func (m *Model) onType(text string) {
	matches := m.filter.Apply(text)
	m.state.Apply(text, matches)

	ids := make([]int, len(matches))
	for i, r := range matches {
		ids[i] = r.ID
	}

	m.bus.Publish(eventbus.QueryChangedEvent{
		Query:      text,
		MatchCount: len(matches),
		MatchIDs:   ids,
	})
}

// Displayed returns the records currently shown
func (m *Model) Displayed() []domain.Record {
	return m.state.Displayed()
}

// Query returns the last typed text and whether anything was typed yet
func (m *Model) Query() (string, bool) {
	return m.state.Query, m.state.HasQuery
}
