// Package list provides list components for the TUI.
package list

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/skosmap/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/skosmap/internal/core/domain"
	"github.com/custodia-labs/skosmap/internal/display"
)

// MappingList shows stored mappings with a movable selection.
type MappingList struct {
	styles   *styles.Styles
	mappings []domain.Mapping
	selected int
	offset   int
	height   int
	width    int
	language string
}

// NewMappingList creates an empty mapping list.
func NewMappingList(s *styles.Styles) *MappingList {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &MappingList{
		styles:   s,
		height:   8,
		width:    80,
		language: "en",
	}
}

// SetMappings replaces the shown mappings and resets the selection.
func (l *MappingList) SetMappings(mappings []domain.Mapping) {
	l.mappings = mappings
	l.selected = 0
	l.offset = 0
}

// Mappings returns the shown mappings.
func (l *MappingList) Mappings() []domain.Mapping {
	return l.mappings
}

// Len returns the number of shown mappings.
func (l *MappingList) Len() int {
	return len(l.mappings)
}

// SelectedIndex returns the cursor position.
func (l *MappingList) SelectedIndex() int {
	return l.selected
}

// Selected returns the mapping under the cursor.
func (l *MappingList) Selected() (domain.Mapping, bool) {
	if l.selected < 0 || l.selected >= len(l.mappings) {
		return domain.Mapping{}, false
	}
	return l.mappings[l.selected], true
}

// MoveUp moves the cursor one row up.
func (l *MappingList) MoveUp() {
	if l.selected > 0 {
		l.selected--
	}
	if l.selected < l.offset {
		l.offset = l.selected
	}
}

// MoveDown moves the cursor one row down.
func (l *MappingList) MoveDown() {
	if l.selected < len(l.mappings)-1 {
		l.selected++
	}
	if l.selected >= l.offset+l.height {
		l.offset = l.selected - l.height + 1
	}
}

// SetSize sets the visible rows and the row width.
func (l *MappingList) SetSize(width, height int) {
	if height < 1 {
		height = 1
	}
	l.width = width
	l.height = height
}

// SetLanguage sets the label language.
func (l *MappingList) SetLanguage(lang string) {
	if lang != "" {
		l.language = lang
	}
}

// View renders the visible rows.
func (l *MappingList) View(focused bool) string {
	if len(l.mappings) == 0 {
		return l.styles.Muted.Render("No stored mappings")
	}

	end := l.offset + l.height
	if end > len(l.mappings) {
		end = len(l.mappings)
	}

	rows := make([]string, 0, end-l.offset+1)
	for i := l.offset; i < end; i++ {
		row := l.renderRow(l.mappings[i])
		switch {
		case i == l.selected && focused:
			rows = append(rows, l.styles.Selected.Render("> "+row))
		case i == l.selected:
			rows = append(rows, l.styles.Normal.Render("> "+row))
		default:
			rows = append(rows, l.styles.Muted.Render("  "+row))
		}
	}
	if len(l.mappings) > l.height {
		rows = append(rows, l.styles.Muted.Render(fmt.Sprintf("  %d/%d", l.selected+1, len(l.mappings))))
	}
	return strings.Join(rows, "\n")
}

func (l *MappingList) renderRow(m domain.Mapping) string {
	row := display.MappingSummary(m, l.language)
	if m.Local {
		row += " (local)"
	}
	if l.width > 4 && len([]rune(row)) > l.width-4 {
		row = string([]rune(row)[:l.width-5]) + "…"
	}
	return row
}
