package main

import "context"

// Controller turns pointer gestures into grid edits. Each gesture becomes at
// most one history entry. It is driven from a single event loop and does no
// locking.
type Controller struct {
	history    *History
	compositor *Compositor
	working    Grid
	strokeBase Grid
	selected   Level
	drawing    bool
}

func NewController(history *History, compositor *Compositor) *Controller {
	return &Controller{
		history:    history,
		compositor: compositor,
		working:    history.Current(),
		selected:   1,
	}
}

func (c *Controller) SelectColor(level Level) error {
	if !level.Valid() {
		return ErrInvalidLevel
	}
	c.selected = level
	return nil
}

func (c *Controller) SelectedColor() Level {
	return c.selected
}

// PointerDown starts a stroke and paints the first cell. A second start
// while a stroke is active is ignored.
func (c *Controller) PointerDown(week, day int) error {
	if c.drawing {
		return nil
	}
	if err := checkCell(week, day); err != nil {
		return err
	}
	c.drawing = true
	c.strokeBase = c.history.Current()
	return c.paint(week, day)
}

// PointerEnter paints a newly entered cell while the primary button is held.
func (c *Controller) PointerEnter(week, day int, primaryPressed bool) error {
	if !c.drawing || !primaryPressed {
		return nil
	}
	return c.paint(week, day)
}

// PointerUp ends the stroke, committing the working grid when it differs
// from the snapshot the stroke started from.
func (c *Controller) PointerUp() bool {
	if !c.drawing {
		return false
	}
	c.drawing = false
	if c.working.Equal(c.strokeBase) {
		return false
	}
	return c.history.Commit(c.working)
}

func (c *Controller) paint(week, day int) error {
	cur, err := c.working.Get(week, day)
	if err != nil {
		return err
	}
	if cur == c.selected {
		return nil
	}
	g, err := c.working.Set(week, day, c.selected)
	if err != nil {
		return err
	}
	c.working = g
	return nil
}

// Clear empties the grid and records it even when it was already empty.
// Callers gate the action on IsEmpty.
func (c *Controller) Clear() {
	c.drawing = false
	c.working = Grid{}
	c.history.Record(c.working)
}

// Load replaces the whole grid as a single history entry.
func (c *Controller) Load(g Grid) bool {
	c.PointerUp()
	c.working = g
	return c.history.Commit(g)
}

func (c *Controller) Undo() {
	c.PointerUp()
	c.working = c.history.Undo()
}

func (c *Controller) Redo() {
	c.PointerUp()
	c.working = c.history.Redo()
}

func (c *Controller) CanUndo() bool { return c.history.CanUndo() }
func (c *Controller) CanRedo() bool { return c.history.CanRedo() }
func (c *Controller) IsEmpty() bool { return c.working.IsEmpty() }
func (c *Controller) Drawing() bool { return c.drawing }

// Grid returns the grid as currently displayed, including an uncommitted
// stroke.
func (c *Controller) Grid() Grid {
	return c.working
}

// ExportImage captures the displayed grid and composes the export image in
// the background. Later edits do not affect the pending export.
func (c *Controller) ExportImage(ctx context.Context) *PendingExport {
	return c.compositor.Request(ctx, c.working)
}
