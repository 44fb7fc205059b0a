package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/RustyDaemon/mandelbrot-plot/pkg/palette"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// swatchSteps is the number of color cells in a schema preview.
const swatchSteps = 12

// swatch renders a strip of colored cells sampling s across the escape range.
func swatch(s palette.Schema) string {
	const limit = 255
	var b strings.Builder
	for i := 0; i < swatchSteps; i++ {
		count := 1 + i*(limit-1)/(swatchSteps-1)
		c := palette.Color(count, true, limit, s)
		hex := fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2])
		b.WriteString(lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("  "))
	}
	return b.String()
}

// schemaTable renders every schema with its description and preview.
// The row at cursor is highlighted; a negative cursor highlights nothing.
func schemaTable(cursor int) string {
	rows := make([][]string, len(palette.Schemas))
	for i, s := range palette.Schemas {
		marker := "  "
		if i == cursor {
			marker = "▸ "
		}
		rows[i] = []string{marker, s.String(), s.Description(), swatch(s)}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Schema", "Description", "Preview").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle
			case col == 3:
				return lipgloss.NewStyle()
			case row == cursor:
				return listSelectedStyle
			case col == 2:
				return listDimStyle
			}
			return listNormalStyle
		}).
		Render()
}

// =============================================================================
// SchemaListModel - Interactive color schema selection
// =============================================================================

// SchemaListModel is the bubbletea model for interactive schema selection.
type SchemaListModel struct {
	Cursor   int
	Selected *palette.Schema
}

// NewSchemaListModel creates a schema list with the cursor on initial.
func NewSchemaListModel(initial palette.Schema) SchemaListModel {
	m := SchemaListModel{}
	for i, s := range palette.Schemas {
		if s == initial {
			m.Cursor = i
		}
	}
	return m
}

func (m SchemaListModel) Init() tea.Cmd {
	return nil
}

func (m SchemaListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(palette.Schemas)-1 {
				m.Cursor++
			}
		case "enter":
			s := palette.Schemas[m.Cursor]
			m.Selected = &s
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m SchemaListModel) View() string {
	var b strings.Builder
	b.WriteString(StyleTitle.Render("Select Color Schema"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")
	b.WriteString(schemaTable(m.Cursor))
	b.WriteString("\n")
	return b.String()
}

// pickSchema runs the interactive schema picker. ok is false when the user
// quits without choosing.
func pickSchema(initial palette.Schema) (schema palette.Schema, ok bool, err error) {
	final, err := tea.NewProgram(NewSchemaListModel(initial)).Run()
	if err != nil {
		return initial, false, fmt.Errorf("schema picker: %w", err)
	}
	m, _ := final.(SchemaListModel)
	if m.Selected == nil {
		return initial, false, nil
	}
	return *m.Selected, true, nil
}
