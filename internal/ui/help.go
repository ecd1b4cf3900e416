package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"namesearch/internal/ui/input"
)

// renderHelpContent renders the help information shown in the pager
func renderHelpContent() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder

	help.WriteString(titleStyle.Render("namesearch Help"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Searching"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render("any text"), descStyle.Render("Filter names containing the text")))
	help.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render("backspace"), descStyle.Render("Delete the previous character")))
	help.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render("←/→"), descStyle.Render("Move the cursor")))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Matching"))
	help.WriteString("\n")
	help.WriteString(descStyle.Render("  Names are compared in lower case, the typed text is used as-is."))
	help.WriteString("\n")
	help.WriteString(descStyle.Render(fmt.Sprintf("  The field holds at most %d characters.", input.MaxLength)))
	help.WriteString("\n\n")

	help.WriteString(sectionStyle.Render("General"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render("f1"), descStyle.Render("Show this help")))
	help.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render("esc, ctrl+c"), descStyle.Render("Quit")))
	help.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render("q"), descStyle.Render("Close this pager")))

	return help.String()
}

// HelpOps handles help operations
type HelpOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewHelpOps creates a new help operations instance
func NewHelpOps(program *tea.Program) *HelpOps {
	return &HelpOps{
		program: program,
	}
}

// ShowHelpInPager shows help content using ov pager
func (h *HelpOps) ShowHelpInPager(helpContent string) error {
	if h.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := h.program.ReleaseTerminal(); err != nil {
		return err
	}

	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(helpContent))
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	return func() tea.Msg {
		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})

		err := m.helpOps.ShowHelpInPager(helpContent)

		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})

		return helpPagerMsg{
			err: err,
		}
	}
}
