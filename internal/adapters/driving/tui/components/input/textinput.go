// Package input provides text input components for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/skosmap/internal/adapters/driving/tui/styles"
)

// historyLimit bounds the remembered command lines.
const historyLimit = 50

// CommandInput reads editor command lines and remembers recent ones.
type CommandInput struct {
	textinput textinput.Model
	styles    *styles.Styles
	width     int

	history []string
	cursor  int
}

// NewCommandInput creates a focused command input.
func NewCommandInput(s *styles.Styles) *CommandInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = "add left <concept-uri>, type exact, save ..."
	ti.Prompt = "> "
	ti.Focus()
	ti.CharLimit = 1024
	ti.Width = 60

	return &CommandInput{
		textinput: ti,
		styles:    s,
		width:     60,
	}
}

// Init starts the cursor blink.
func (c *CommandInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages. Up and down walk the history.
func (c *CommandInput) Update(msg tea.Msg) (*CommandInput, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyUp:
			c.recall(-1)
			return c, nil
		case tea.KeyDown:
			c.recall(1)
			return c, nil
		}
	}
	var cmd tea.Cmd
	c.textinput, cmd = c.textinput.Update(msg)
	return c, cmd
}

func (c *CommandInput) recall(step int) {
	if len(c.history) == 0 {
		return
	}
	c.cursor += step
	if c.cursor < 0 {
		c.cursor = 0
	}
	if c.cursor >= len(c.history) {
		c.cursor = len(c.history)
		c.textinput.SetValue("")
		return
	}
	c.textinput.SetValue(c.history[c.cursor])
	c.textinput.CursorEnd()
}

// Submit returns the typed line, records it in the history and clears the input.
func (c *CommandInput) Submit() string {
	line := c.textinput.Value()
	if line != "" {
		c.history = append(c.history, line)
		if len(c.history) > historyLimit {
			c.history = c.history[len(c.history)-historyLimit:]
		}
	}
	c.cursor = len(c.history)
	c.textinput.Reset()
	return line
}

// History returns the remembered lines, oldest first.
func (c *CommandInput) History() []string {
	return append([]string(nil), c.history...)
}

// View renders the command input.
func (c *CommandInput) View() string {
	field := c.styles.InputField.Width(c.width).Render(c.textinput.View())
	return lipgloss.JoinVertical(lipgloss.Left, c.styles.Subtitle.Render("Command"), field)
}

// Value returns the current input value.
func (c *CommandInput) Value() string {
	return c.textinput.Value()
}

// SetValue sets the input value.
func (c *CommandInput) SetValue(value string) {
	c.textinput.SetValue(value)
}

// Focus sets focus on the input.
func (c *CommandInput) Focus() tea.Cmd {
	return c.textinput.Focus()
}

// Blur removes focus from the input.
func (c *CommandInput) Blur() {
	c.textinput.Blur()
}

// Focused returns whether the input is focused.
func (c *CommandInput) Focused() bool {
	return c.textinput.Focused()
}

// SetWidth sets the width of the input.
func (c *CommandInput) SetWidth(width int) {
	if width < 24 {
		width = 24
	}
	c.width = width
	c.textinput.Width = width - 6
}

// Width returns the current width.
func (c *CommandInput) Width() int {
	return c.width
}

// Reset clears the input.
func (c *CommandInput) Reset() {
	c.textinput.Reset()
}
