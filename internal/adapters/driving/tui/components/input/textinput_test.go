package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/skosmap/internal/adapters/driving/tui/styles"
)

func typeText(c *CommandInput, text string) {
	for _, r := range text {
		c.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestNewCommandInput(t *testing.T) {
	c := NewCommandInput(styles.DefaultStyles())

	require.NotNil(t, c)
	assert.Equal(t, "", c.Value())
	assert.True(t, c.Focused())
}

func TestNewCommandInput_NilStyles(t *testing.T) {
	c := NewCommandInput(nil)

	require.NotNil(t, c)
	assert.NotNil(t, c.styles)
}

func TestCommandInput_Init(t *testing.T) {
	assert.NotNil(t, NewCommandInput(nil).Init())
}

func TestCommandInput_Typing(t *testing.T) {
	c := NewCommandInput(nil)

	typeText(c, "switch")

	assert.Equal(t, "switch", c.Value())
}

func TestCommandInput_Submit(t *testing.T) {
	c := NewCommandInput(nil)
	typeText(c, "type exact")

	line := c.Submit()

	assert.Equal(t, "type exact", line)
	assert.Equal(t, "", c.Value())
	assert.Equal(t, []string{"type exact"}, c.History())
}

func TestCommandInput_SubmitEmptySkipsHistory(t *testing.T) {
	c := NewCommandInput(nil)

	assert.Equal(t, "", c.Submit())
	assert.Empty(t, c.History())
}

func TestCommandInput_History(t *testing.T) {
	c := NewCommandInput(nil)
	c.SetValue("show")
	c.Submit()
	c.SetValue("switch")
	c.Submit()

	c.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, "switch", c.Value())

	c.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, "show", c.Value())

	c.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, "show", c.Value())

	c.Update(tea.KeyMsg{Type: tea.KeyDown})
	c.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, "", c.Value())
}

func TestCommandInput_HistoryLimit(t *testing.T) {
	c := NewCommandInput(nil)
	for i := 0; i < historyLimit+5; i++ {
		c.SetValue("show")
		c.Submit()
	}

	assert.Len(t, c.History(), historyLimit)
}

func TestCommandInput_View(t *testing.T) {
	assert.Contains(t, NewCommandInput(nil).View(), "Command")
}

func TestCommandInput_FocusBlur(t *testing.T) {
	c := NewCommandInput(nil)

	c.Blur()
	assert.False(t, c.Focused())

	c.Focus()
	assert.True(t, c.Focused())
}

func TestCommandInput_SetWidth(t *testing.T) {
	c := NewCommandInput(nil)

	c.SetWidth(100)
	assert.Equal(t, 100, c.Width())

	c.SetWidth(5)
	assert.Equal(t, 24, c.Width())
}
