package main

// History is a linear undo/redo log of grid snapshots. Committing while
// undone discards the redo tail; there is no branching.
type History struct {
	snapshots []Grid
	index     int
	limit     int
}

// NewHistory starts with a single empty snapshot. A positive limit caps the
// number of kept snapshots by dropping the oldest ones.
func NewHistory(limit int) *History {
	return &History{
		snapshots: []Grid{{}},
		limit:     limit,
	}
}

// Commit records g unless it equals the current snapshot. It reports whether
// a new entry was added.
func (h *History) Commit(g Grid) bool {
	if g.Equal(h.Current()) {
		return false
	}
	h.Record(g)
	return true
}

// Record appends g unconditionally, pruning anything after the current index.
func (h *History) Record(g Grid) {
	h.snapshots = append(h.snapshots[:h.index+1], g)
	if h.limit > 0 && len(h.snapshots) > h.limit {
		drop := len(h.snapshots) - h.limit
		h.snapshots = append(h.snapshots[:0], h.snapshots[drop:]...)
	}
	h.index = len(h.snapshots) - 1
	Logger().Debug("history recorded", "len", len(h.snapshots), "painted", g.Painted())
}

func (h *History) Undo() Grid {
	if h.CanUndo() {
		h.index--
		Logger().Debug("undo", "index", h.index)
	}
	return h.Current()
}

func (h *History) Redo() Grid {
	if h.CanRedo() {
		h.index++
		Logger().Debug("redo", "index", h.index)
	}
	return h.Current()
}

func (h *History) Current() Grid {
	return h.snapshots[h.index]
}

func (h *History) CanUndo() bool {
	return h.index > 0
}

func (h *History) CanRedo() bool {
	return h.index < len(h.snapshots)-1
}

func (h *History) Len() int {
	return len(h.snapshots)
}

func (h *History) Index() int {
	return h.index
}
