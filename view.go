package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#cf222e"))
	successStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#1a7f37"))
	disabledStyle = lipgloss.NewStyle().Faint(true)
	cursorStyle   = lipgloss.NewStyle().Bold(true)
)

func (m model) View() string {
	if m.help {
		return m.helpView()
	}

	p := m.config.Palette
	label := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Text))
	g := m.ctrl.Grid()

	var b strings.Builder
	b.WriteString(label.Render(monthHeader()))
	b.WriteByte('\n')
	for day := 0; day < Rows; day++ {
		b.WriteString(label.Render(fmt.Sprintf("%-*s", dayLabelWidth, dayLabels[day])))
		for week := 0; week < Cols; week++ {
			level, _ := g.Get(week, day)
			glyph := "■"
			style := p.Style(level)
			if week == m.cursorWeek && day == m.cursorDay {
				glyph = "▣"
				style = style.Copy().Inherit(cursorStyle)
			}
			b.WriteString(style.Render(glyph))
			if week < Cols-1 {
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	b.WriteString(m.paletteView())
	b.WriteString("\n\n")
	b.WriteString(m.controlsView())
	b.WriteByte('\n')
	b.WriteString(m.statusLine())
	return b.String()
}

// paletteView doubles as the legend. The selected color is bracketed.
func (m model) paletteView() string {
	p := m.config.Palette
	parts := []string{"Less"}
	for l := 0; l < NumLevels; l++ {
		swatch := p.Style(Level(l)).Render("■")
		if Level(l) == m.ctrl.SelectedColor() {
			swatch = "[" + swatch + "]"
		} else {
			swatch = " " + swatch + " "
		}
		parts = append(parts, swatch)
	}
	parts = append(parts, "More")
	return strings.Join(parts, " ")
}

// controlsView greys out actions that would do nothing.
func (m model) controlsView() string {
	control := func(text string, enabled bool) string {
		if enabled {
			return text
		}
		return disabledStyle.Render(text)
	}
	return strings.Join([]string{
		control("u undo", m.ctrl.CanUndo()),
		control("U redo", m.ctrl.CanRedo()),
		control("c clear", !m.ctrl.IsEmpty()),
		"S export PNG",
		"? help",
	}, "  ")
}

func (m model) modeString() string {
	switch m.mode {
	case ModePen:
		return "PEN"
	case ModeConfirm:
		return "CONFIRM"
	default:
		return "NORMAL"
	}
}

func (m model) statusLine() string {
	if m.mode == ModeConfirm {
		question := "Clear the whole graph?"
		if m.confirmAction == ConfirmQuit {
			question = "Quit and discard the graph?"
		}
		return fmt.Sprintf("Mode: CONFIRM | %s (y/n)", question)
	}

	status := fmt.Sprintf("Mode: %s | %s, week %d | Color: %d | Painted: %d",
		m.modeString(), dayNames[m.cursorDay], m.cursorWeek+1, m.ctrl.SelectedColor(), m.ctrl.Grid().Painted())
	if m.exporting > 0 {
		status += " | Exporting..."
	}
	if m.successMessage != "" {
		status += " | " + successStyle.Render(m.successMessage)
	}
	if m.errorMessage != "" {
		status += " | " + errorStyle.Render("ERROR: "+m.errorMessage)
	}
	return status
}

func (m model) helpView() string {
	helpLines := []string{
		"Contribution Graph Help",
		"=======================",
		"",
		"Painting:",
		"---------",
		"  mouse drag         Paint cells with the selected color",
		"  h/j/k/l, arrows    Move the cursor (Shift moves 2 cells)",
		"  space, enter       Paint the cell under the cursor",
		"  p                  Toggle pen mode: moving the cursor paints",
		"  0-4, [ ]           Select color level",
		"",
		"History:",
		"--------",
		"  u, ctrl+z          Undo",
		"  U, ctrl+r          Redo",
		"  c                  Clear the graph",
		"",
		"Export:",
		"-------",
		fmt.Sprintf("  S, e               Export %dx%d PNG (%s)", ExportWidth, ExportHeight, m.config.Filename),
		"  T                  Save the graph as text",
		"  y / P              Copy / paste the graph as text",
		"",
		"  ?, esc             Close help",
		"  q                  Quit",
	}
	return strings.Join(helpLines, "\n")
}
