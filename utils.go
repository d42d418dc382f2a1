package main

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"
)

// Clipboard access is swapped out in tests.
var (
	clipboardRead  = readClipboardText
	clipboardWrite = writeClipboardText
)

func writeClipboardText(text string) error {
	return clipboard.WriteAll(text)
}

func readClipboardText() (string, error) {
	if runtime.GOOS == "darwin" {
		if output, err := exec.Command("pbpaste", "-Prefer", "txt").Output(); err == nil {
			return string(output), nil
		}
	}
	return clipboard.ReadAll()
}

func glyphLevel(r rune) (Level, bool) {
	for l, g := range levelGlyphs {
		if []rune(g)[0] == r {
			return Level(l), true
		}
	}
	return 0, false
}

// parseGridText reads the format written by gridText. The month header is
// optional and the day label column is ignored.
func parseGridText(text string) (Grid, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	var rows []string
	for _, line := range strings.Split(text, "\n") {
		if len(line) > dayLabelWidth && strings.ContainsAny(line, strings.Join(levelGlyphs[:], "")) {
			rows = append(rows, line)
		}
	}
	if len(rows) != Rows {
		return Grid{}, fmt.Errorf("expected %d grid rows, found %d", Rows, len(rows))
	}

	var g Grid
	for day, line := range rows {
		runes := []rune(line)
		if len(runes) < dayLabelWidth {
			return Grid{}, fmt.Errorf("row %d too short", day)
		}
		week := 0
		for _, r := range runes[dayLabelWidth:] {
			if r == ' ' {
				continue
			}
			level, ok := glyphLevel(r)
			if !ok {
				return Grid{}, fmt.Errorf("row %d: unexpected %q", day, r)
			}
			var err error
			if g, err = g.Set(week, day, level); err != nil {
				return Grid{}, fmt.Errorf("row %d: %w", day, err)
			}
			week++
		}
		if week != Cols {
			return Grid{}, fmt.Errorf("row %d has %d cells, want %d", day, week, Cols)
		}
	}
	return g, nil
}
