package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	config := loadConfig()

	if config.LogFile != "" {
		f, err := os.OpenFile(config.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	p := tea.NewProgram(
		initialModel(config),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}

func initialModel(config *Config) model {
	ctrl := NewController(NewHistory(config.HistoryLimit), NewCompositor(config.Palette))
	ctrl.SelectColor(config.Color)
	return model{
		ctrl:   ctrl,
		config: config,
		mode:   ModeNormal,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

// waitExport resolves a pending export off the event loop.
func waitExport(p *PendingExport) tea.Cmd {
	return func() tea.Msg {
		data, err := p.Wait(context.Background())
		return exportDoneMsg{data: data, err: err}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case exportDoneMsg:
		m.exporting--
		if msg.err != nil {
			m.errorMessage = fmt.Sprintf("Export failed: %s", msg.err)
			m.successMessage = ""
			return m, nil
		}
		path, err := m.writePNG(msg.data)
		if err != nil {
			Logger().Warn("export write failed", "err", err)
			m.errorMessage = fmt.Sprintf("Error saving PNG: %s", err)
			m.successMessage = ""
			return m, nil
		}
		Logger().Info("export saved", "path", path)
		m.errorMessage = ""
		m.successMessage = fmt.Sprintf("Exported to %s", path)
		if err := clipboardWrite(path); err != nil {
			Logger().Warn("clipboard unavailable", "err", err)
		} else {
			m.successMessage += " (path copied)"
		}
		return m, nil

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg.String())
	}
	return m, nil
}

func (m *model) handleMouse(msg tea.MouseMsg) {
	// The grid is covered by help or a prompt; only let a running stroke end.
	if m.help || m.mode == ModeConfirm {
		if msg.Action == tea.MouseActionRelease {
			m.ctrl.PointerUp()
		}
		return
	}

	week, day, ok := cellAt(msg.X, msg.Y)
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !ok {
			return
		}
		m.cursorWeek, m.cursorDay = week, day
		m.clearMessages()
		m.ctrl.PointerDown(week, day)
	case tea.MouseActionMotion:
		if ok {
			m.ctrl.PointerEnter(week, day, msg.Button == tea.MouseButtonLeft)
		}
	case tea.MouseActionRelease:
		// Release is seen here wherever the pointer is, on or off the grid.
		m.endPen()
		m.ctrl.PointerUp()
	}
}

// endPen finishes a keyboard stroke, committing it.
func (m *model) endPen() {
	if m.mode == ModePen {
		m.ctrl.PointerUp()
		m.mode = ModeNormal
	}
}

func (m *model) clearMessages() {
	m.errorMessage = ""
	m.successMessage = ""
}

func (m model) handleKey(key string) (tea.Model, tea.Cmd) {
	if m.help {
		switch key {
		case "esc", "q", "?":
			m.help = false
		}
		return m, nil
	}

	if m.mode == ModeConfirm {
		return m.handleConfirm(key)
	}

	switch key {
	case "ctrl+c":
		return m, tea.Quit
	case "q":
		m.endPen()
		if m.config.Confirmations && !m.ctrl.IsEmpty() {
			m.mode = ModeConfirm
			m.confirmAction = ConfirmQuit
			return m, nil
		}
		return m, tea.Quit
	case "?":
		m.help = true
	case "h", "j", "k", "l", "left", "right", "up", "down",
		"H", "J", "K", "L", "shift+left", "shift+right", "shift+up", "shift+down":
		m.handleCursorMove(key, m.getMoveSpeed(key))
	case " ", "enter":
		m.clearMessages()
		if m.mode == ModePen {
			m.ctrl.PointerEnter(m.cursorWeek, m.cursorDay, true)
			break
		}
		m.ctrl.PointerDown(m.cursorWeek, m.cursorDay)
		m.ctrl.PointerUp()
	case "p":
		m.clearMessages()
		if m.mode == ModePen {
			m.endPen()
			break
		}
		m.ctrl.PointerDown(m.cursorWeek, m.cursorDay)
		m.mode = ModePen
	case "esc":
		m.endPen()
		m.clearMessages()
	case "0", "1", "2", "3", "4":
		m.ctrl.SelectColor(Level(key[0] - '0'))
	case "[":
		m.ctrl.SelectColor(Level((int(m.ctrl.SelectedColor()) + NumLevels - 1) % NumLevels))
	case "]":
		m.ctrl.SelectColor(Level((int(m.ctrl.SelectedColor()) + 1) % NumLevels))
	case "u", "ctrl+z":
		m.ctrl.Undo()
		m.mode = ModeNormal
	case "U", "ctrl+r", "ctrl+y":
		m.ctrl.Redo()
		m.mode = ModeNormal
	case "c":
		m.endPen()
		if m.ctrl.IsEmpty() {
			break
		}
		if m.config.Confirmations {
			m.mode = ModeConfirm
			m.confirmAction = ConfirmClear
			break
		}
		m.ctrl.Clear()
	case "S", "e":
		m.exporting++
		m.clearMessages()
		return m, waitExport(m.ctrl.ExportImage(context.Background()))
	case "T":
		name := strings.TrimSuffix(m.config.Filename, filepath.Ext(m.config.Filename)) + ".txt"
		path, err := m.exportVisualTXT(name)
		if err != nil {
			m.errorMessage = fmt.Sprintf("Error saving text: %s", err)
			m.successMessage = ""
			break
		}
		m.errorMessage = ""
		m.successMessage = fmt.Sprintf("Saved to %s", path)
	case "y":
		if err := clipboardWrite(strings.Join(gridText(m.ctrl.Grid()), "\n")); err != nil {
			m.errorMessage = fmt.Sprintf("Clipboard unavailable: %s", err)
			m.successMessage = ""
			break
		}
		m.errorMessage = ""
		m.successMessage = "Grid copied to clipboard"
	case "P":
		text, err := clipboardRead()
		if err != nil {
			m.errorMessage = fmt.Sprintf("Clipboard unavailable: %s", err)
			m.successMessage = ""
			break
		}
		g, err := parseGridText(text)
		if err != nil {
			m.errorMessage = fmt.Sprintf("Cannot paste: %s", err)
			m.successMessage = ""
			break
		}
		m.ctrl.Load(g)
		m.mode = ModeNormal
		m.errorMessage = ""
		m.successMessage = "Grid pasted"
	}
	return m, nil
}

func (m model) handleConfirm(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "y", "Y":
		m.mode = ModeNormal
		switch m.confirmAction {
		case ConfirmClear:
			m.ctrl.Clear()
		case ConfirmQuit:
			return m, tea.Quit
		}
	case "n", "N", "esc":
		m.mode = ModeNormal
	}
	return m, nil
}
