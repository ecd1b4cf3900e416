package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Field constraints of the search box
const (
	FieldName = "name"
	MinLength = 0
	MaxLength = 20
	Size      = 20
)

// SearchInput is a single-line search field. Every change to its value is
// reported to the parent through the callback given to New.
type SearchInput struct {
	name      string
	textInput *textinput.Model
	onInput   func(text string)

	// mirror of the last emitted text, kept for redisplay only
	mirror string
}

// New creates a focused search field that calls onInput synchronously,
// once per value change.
func New(onInput func(text string)) *SearchInput {
	if onInput == nil {
		panic("input: SearchInput requires an onInput callback")
	}

	ti := textinput.New()
	ti.Prompt = "Search: "
	ti.Placeholder = "type a name"
	ti.CharLimit = MaxLength
	ti.Width = Size
	ti.ShowSuggestions = false
	ti.Validate = nil
	ti.Focus()

	return &SearchInput{
		name:      FieldName,
		textInput: &ti,
		onInput:   onInput,
	}
}

// Name returns the field identifier
func (s *SearchInput) Name() string {
	return s.name
}

// Update forwards msg to the field. If the value changed, the new text is
// mirrored and emitted before Update returns.
// The field stores pasted tabs and newlines as spaces.
func (s *SearchInput) Update(msg tea.Msg) tea.Cmd {
	field := s.target()

	before := field.Value()
	var cmd tea.Cmd
	*field, cmd = field.Update(msg)

	if after := field.Value(); after != before {
		s.handleInput(after)
	}
	return cmd
}

// SetValue replaces the field text as if the user had typed it.
// Text beyond MaxLength is cut off by the field.
func (s *SearchInput) SetValue(text string) {
	field := s.target()

	before := field.Value()
	field.SetValue(text)
	field.CursorEnd()

	if after := field.Value(); after != before {
		s.handleInput(after)
	}
}

// Value returns the current field text
func (s *SearchInput) Value() string {
	return s.target().Value()
}

// Mirror returns the last text emitted to the callback
func (s *SearchInput) Mirror() string {
	return s.mirror
}

// Focus gives the field keyboard focus
func (s *SearchInput) Focus() tea.Cmd {
	return s.target().Focus()
}

// View renders the field
func (s *SearchInput) View() string {
	return s.target().View()
}

func (s *SearchInput) handleInput(text string) {
	s.mirror = text
	s.onInput(text)
}

// target returns the underlying field. An event without a field means the
// component was not built with New; there is no way to recover from that.
func (s *SearchInput) target() *textinput.Model {
	if s == nil || s.textInput == nil {
		panic("input: event has no target field")
	}
	return s.textInput
}
