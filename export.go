package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// levelGlyphs stand in for palette colors in plain text.
var levelGlyphs = [NumLevels]string{"·", "░", "▒", "▓", "█"}

// monthHeader lays the month labels over the week columns.
func monthHeader() string {
	row := []rune(strings.Repeat(" ", dayLabelWidth+Cols*cellWidth))
	for _, m := range months {
		copy(row[dayLabelWidth+m.Start*cellWidth:], []rune(m.Label))
	}
	return strings.TrimRight(string(row), " ")
}

// gridText renders g without color, one line per day under a month header.
func gridText(g Grid) []string {
	lines := []string{monthHeader()}
	for day := 0; day < Rows; day++ {
		var sb strings.Builder
		sb.WriteString(fmt.Sprintf("%-*s", dayLabelWidth, dayLabels[day]))
		for week := 0; week < Cols; week++ {
			level, _ := g.Get(week, day)
			sb.WriteString(levelGlyphs[level])
			if week < Cols-1 {
				sb.WriteByte(' ')
			}
		}
		lines = append(lines, sb.String())
	}
	return lines
}

func (m *model) exportVisualTXT(filename string) (string, error) {
	path := m.config.GetSavePath(filename)
	file, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	for _, line := range gridText(m.ctrl.Grid()) {
		if _, err := fmt.Fprintln(file, line); err != nil {
			return "", err
		}
	}
	return absPath(path), nil
}

func (m *model) writePNG(data []byte) (string, error) {
	path := m.config.GetSavePath(m.config.Filename)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}
	return absPath(path), nil
}

func absPath(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}
