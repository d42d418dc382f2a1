package main

func (m *model) handleCursorMove(key string, speed int) {
	dw, dd := 0, 0
	switch key {
	case "h", "left", "H", "shift+left":
		dw = -1
	case "l", "right", "L", "shift+right":
		dw = 1
	case "k", "up", "K", "shift+up":
		dd = -1
	case "j", "down", "J", "shift+down":
		dd = 1
	}
	// Step one cell at a time so pen mode paints every cell it crosses.
	for i := 0; i < speed; i++ {
		m.cursorWeek += dw
		m.cursorDay += dd
		m.ensureCursorInBounds()
		if m.mode == ModePen {
			m.ctrl.PointerEnter(m.cursorWeek, m.cursorDay, true)
		}
	}
}

func (m *model) getMoveSpeed(key string) int {
	switch key {
	case "H", "L", "K", "J", "shift+left", "shift+right", "shift+up", "shift+down":
		return 2
	default:
		return 1
	}
}

func (m *model) ensureCursorInBounds() {
	m.cursorWeek = clamp(m.cursorWeek, 0, Cols-1)
	m.cursorDay = clamp(m.cursorDay, 0, Rows-1)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// cellAt maps a terminal position to the grid cell drawn there.
func cellAt(x, y int) (week, day int, ok bool) {
	if x < dayLabelWidth || y < headerRows {
		return 0, 0, false
	}
	week = (x - dayLabelWidth) / cellWidth
	day = y - headerRows
	return week, day, inBounds(week, day)
}
