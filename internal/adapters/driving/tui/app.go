package tui

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/skosmap/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/skosmap/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/skosmap/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/skosmap/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/skosmap/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/skosmap/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/skosmap/internal/core/domain"
	"github.com/custodia-labs/skosmap/internal/core/ports/driving"
	"github.com/custodia-labs/skosmap/internal/display"
	"github.com/custodia-labs/skosmap/internal/logger"
)

// focusArea identifies which component receives keys.
type focusArea int

const (
	focusInput focusArea = iota
	focusList
)

// App is the root Bubbletea model of the mapping editor.
type App struct {
	ctx   context.Context
	ports *Ports

	styles *styles.Styles
	keymap *keymap.KeyMap

	input     *input.CommandInput
	mappings  *list.MappingList
	statusBar *status.Bar

	focus    focusArea
	showHelp bool
	changes  <-chan struct{}

	width  int
	height int
	ready  bool
}

// NewApp creates the editor model.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	app := &App{
		ctx:       context.Background(),
		ports:     ports,
		styles:    s,
		keymap:    km,
		input:     input.NewCommandInput(s),
		mappings:  list.NewMappingList(s),
		statusBar: status.NewBar(s, km),
	}
	app.mappings.SetLanguage(app.language())
	return app, nil
}

// WithContext sets the context used for registry calls.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init starts the cursor blink and the settings watch.
func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.SetWindowTitle("skosmap - mapping editor"),
		a.input.Init(),
	}
	if a.ports.WatchSettings != nil {
		cmds = append(cmds, a.startWatch())
	}
	return tea.Batch(cmds...)
}

// Update handles messages.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.resize(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case messages.CommandApplied:
		if msg.Err != nil {
			a.statusBar.Set(status.StateError, msg.Err.Error())
			return a, nil
		}
		a.statusBar.Set(status.StateDone, "Applied: "+msg.Line)
		return a, nil

	case messages.MappingsLoaded:
		if msg.Err != nil {
			a.statusBar.Set(status.StateError, msg.Err.Error())
			return a, nil
		}
		a.mappings.SetMappings(msg.Mappings)
		a.statusBar.Set(status.StateDone, fmt.Sprintf("%d stored mapping(s)", len(msg.Mappings)))
		return a, nil

	case messages.MappingLoaded:
		if msg.Err != nil {
			a.statusBar.Set(status.StateError, msg.Err.Error())
			return a, nil
		}
		a.setFocus(focusInput)
		a.statusBar.Set(status.StateDone, "Loaded "+msg.Mapping.URI)
		return a, a.input.Focus()

	case messages.MappingSaved:
		if msg.Err != nil {
			a.statusBar.Set(status.StateError, msg.Err.Error())
			return a, nil
		}
		a.statusBar.Set(status.StateDone, "Saved "+msg.Mapping.URI)
		return a, nil

	case messages.WatchStarted:
		a.changes = msg.Changes
		return a, a.waitForChange()

	case messages.SettingsChanged:
		if a.ports.Settings != nil {
			if err := a.ports.Settings.Load(); err != nil {
				logger.Warn("reloading settings: %v", err)
			}
		}
		a.mappings.SetLanguage(a.language())
		return a, a.waitForChange()
	}

	var cmd tea.Cmd
	if a.focus == focusInput {
		a.input, cmd = a.input.Update(msg)
	}
	return a, cmd
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := msg.String()

	switch {
	case keymap.Matches(k, a.keymap.Quit):
		return a, tea.Quit
	case keymap.Matches(k, a.keymap.Help):
		a.showHelp = !a.showHelp
		return a, nil
	case keymap.Matches(k, a.keymap.Save):
		return a, a.save("")
	case keymap.Matches(k, a.keymap.Lookup):
		return a, a.lookup()
	case keymap.Matches(k, a.keymap.Switch):
		a.ports.Editor.Switch()
		return a, nil
	case keymap.Matches(k, a.keymap.Focus):
		if a.focus == focusInput && a.mappings.Len() > 0 {
			a.setFocus(focusList)
			return a, nil
		}
		a.setFocus(focusInput)
		return a, a.input.Focus()
	}

	if a.focus == focusList {
		switch {
		case keymap.Matches(k, a.keymap.Up):
			a.mappings.MoveUp()
		case keymap.Matches(k, a.keymap.Down):
			a.mappings.MoveDown()
		case keymap.Matches(k, a.keymap.Load):
			if selected, ok := a.mappings.Selected(); ok {
				return a, a.load(selected)
			}
		case keymap.Matches(k, a.keymap.Clear):
			a.setFocus(focusInput)
			return a, a.input.Focus()
		}
		return a, nil
	}

	switch {
	case keymap.Matches(k, a.keymap.Run):
		return a, a.run(a.input.Submit())
	case keymap.Matches(k, a.keymap.Clear):
		a.input.Reset()
		a.statusBar.Clear()
		return a, nil
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

func (a *App) setFocus(focus focusArea) {
	a.focus = focus
	a.statusBar.SetListMode(focus == focusList)
	if focus == focusList {
		a.input.Blur()
	}
}

func (a *App) resize(width, height int) {
	a.width = width
	a.height = height
	a.ready = true

	a.input.SetWidth(width - 2)
	a.statusBar.SetWidth(width)

	// Title, both sides, details, input and status take roughly 16 rows.
	rows := height - 16
	if rows < 3 {
		rows = 3
	}
	a.mappings.SetSize(width, rows)
}

// run applies one command line. Save lines go through the save path so the
// creator and clear-on-save settings apply.
func (a *App) run(line string) tea.Cmd {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	if strings.EqualFold(fields[0], "save") {
		registry := ""
		if len(fields) > 1 {
			registry = fields[1]
		}
		return a.save(registry)
	}
	if strings.EqualFold(fields[0], "help") {
		a.showHelp = !a.showHelp
		return nil
	}

	ctx := a.ctx
	runner := a.ports.Commands
	return func() tea.Msg {
		return messages.CommandApplied{Line: line, Err: runner.Run(ctx, line)}
	}
}

func (a *App) save(registry string) tea.Cmd {
	a.statusBar.Set(status.StateWorking, "Saving")

	ctx := a.ctx
	editor := a.ports.Editor
	settings := a.ports.Settings
	return func() tea.Msg {
		if settings != nil && len(editor.Mapping().Creator) == 0 {
			if creator := settings.Creator(); !creator.IsEmpty() {
				editor.SetCreator([]domain.Agent{creator})
			}
		}
		saved, err := editor.SaveCurrent(ctx, registry)
		if err != nil {
			return messages.MappingSaved{Err: err}
		}
		if saved == nil {
			return messages.MappingSaved{Err: errors.New("mapping was not saved")}
		}
		if settings != nil && settings.Get().MappingEditorClearOnSave {
			editor.Empty()
		}
		return messages.MappingSaved{Mapping: saved}
	}
}

// lookup lists stored mappings touching the first concept of the working
// mapping, preferring the left side.
func (a *App) lookup() tea.Cmd {
	concepts := a.ports.Editor.Concepts(true)
	if len(concepts) == 0 {
		concepts = a.ports.Editor.Concepts(false)
	}
	if len(concepts) == 0 {
		a.statusBar.Set(status.StateError, "add a concept before looking up mappings")
		return nil
	}
	a.statusBar.Set(status.StateWorking, "Looking up")

	ctx := a.ctx
	editor := a.ports.Editor
	query := domain.MappingQuery{From: concepts[0].URI, Direction: domain.DirectionBoth}
	return func() tea.Msg {
		mappings, err := editor.GetMappings(ctx, driving.GetMappingsOptions{Query: query})
		if err != nil {
			return messages.MappingsLoaded{Err: err}
		}
		sort.SliceStable(mappings, func(i, j int) bool {
			return display.CompareMappingsByConcepts(mappings[i], mappings[j], true) < 0
		})
		return messages.MappingsLoaded{Mappings: mappings}
	}
}

func (a *App) load(m domain.Mapping) tea.Cmd {
	if m.URI == "" {
		a.statusBar.Set(status.StateError, "mapping has no URI")
		return nil
	}
	a.statusBar.Set(status.StateWorking, "Loading")

	ctx := a.ctx
	editor := a.ports.Editor
	return func() tea.Msg {
		loaded, err := editor.LoadMapping(ctx, m.URI, "")
		return messages.MappingLoaded{Mapping: loaded, Err: err}
	}
}

func (a *App) startWatch() tea.Cmd {
	ctx := a.ctx
	watch := a.ports.WatchSettings
	return func() tea.Msg {
		changes, err := watch(ctx)
		if err != nil {
			logger.Warn("watching settings: %v", err)
			return nil
		}
		return messages.WatchStarted{Changes: changes}
	}
}

func (a *App) waitForChange() tea.Cmd {
	changes := a.changes
	if changes == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return messages.SettingsChanged{}
	}
}

func (a *App) language() string {
	if a.ports.Settings == nil {
		return display.FallbackLanguage
	}
	return a.ports.Settings.Get().Language()
}

// View renders the editor.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	sections := []string{a.viewHeader(), a.viewMapping(), a.viewDetails()}
	if a.showHelp {
		sections = append(sections, a.viewHelp())
	} else {
		sections = append(sections, a.styles.Subtitle.Render("Stored mappings"), a.mappings.View(a.focus == focusList))
	}
	sections = append(sections, a.input.View(), a.statusBar.View())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (a *App) viewHeader() string {
	header := a.styles.Title.Render("skosmap")
	if reg := a.ports.Editor.MappingRegistry(); reg != nil {
		name := display.PrefLabel(domain.Item{URI: reg.URI, PrefLabel: reg.PrefLabel}, a.language(), true)
		header += a.styles.Muted.Render("  registry: " + name)
	}
	return header
}

func (a *App) viewMapping() string {
	m := a.ports.Editor.Mapping()
	lang := a.language()

	sideWidth := (a.width - 16) / 2
	if sideWidth < 20 {
		sideWidth = 20
	}
	left := a.styles.Side.Width(sideWidth).Render(a.viewSide(m, true, lang))
	right := a.styles.Side.Width(sideWidth).Render(a.viewSide(m, false, lang))
	arrow := a.styles.Arrow.Render("--" + display.TypeName(m.PrimaryType()) + "-->")

	//nolint:misspell // lipgloss.Center is the correct constant from the library
	return lipgloss.JoinHorizontal(lipgloss.Center, left, arrow, right)
}

func (a *App) viewSide(m domain.Mapping, isLeft bool, lang string) string {
	scheme := m.ToScheme
	if isLeft {
		scheme = m.FromScheme
	}
	lines := []string{a.styles.Subtitle.Render(display.Scheme(scheme, lang))}

	concepts := m.Concepts(isLeft)
	if len(concepts) == 0 {
		lines = append(lines, a.styles.Muted.Render("(none)"))
	}
	for _, c := range concepts {
		lines = append(lines, a.styles.Normal.Render(display.Concept(c, lang)))
	}
	return strings.Join(lines, "\n")
}

func (a *App) viewDetails() string {
	m := a.ports.Editor.Mapping()
	lang := a.language()

	var lines []string
	if m.URI != "" {
		lines = append(lines, a.styles.Muted.Render("URI: ")+m.URI)
	}
	if len(m.Creator) > 0 {
		names := make([]string, 0, len(m.Creator))
		for _, c := range m.Creator {
			names = append(names, display.PrefLabel(domain.Item{URI: c.URI, PrefLabel: c.PrefLabel}, lang, true))
		}
		lines = append(lines, a.styles.Muted.Render("Creator: ")+strings.Join(names, ", "))
	}
	if notes := display.Note(m.Note, lang); len(notes) > 0 {
		lines = append(lines, a.styles.Muted.Render("Note: ")+strings.Join(notes, " "))
	}
	if len(lines) == 0 {
		return a.styles.Muted.Render("New mapping")
	}
	return strings.Join(lines, "\n")
}

func (a *App) viewHelp() string {
	return a.styles.Subtitle.Render("Commands") + "\n" + a.styles.Normal.Render(a.ports.Commands.Usage())
}
